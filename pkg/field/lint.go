package field

import (
	"fmt"
	"strings"
)

// Severity grades a lint Issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single lint finding on a descriptor.
type Issue struct {
	Severity Severity
	Location string
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s -> %s", i.Severity, i.Location, i.Message)
}

// Lint reports descriptor problems that decorators tolerate silently:
// misaligned enum arrays, empty image paths, and unrecognised selection
// types. Decoration never depends on Lint passing.
func Lint(desc Descriptor) []Issue {
	var issues []Issue
	add := func(sev Severity, location, format string, args ...any) {
		issues = append(issues, Issue{Severity: sev, Location: location, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(desc.Name) == "" {
		add(SeverityError, "name", "field name is empty")
	}
	if len(desc.Enum) == 0 {
		add(SeverityWarning, "enum", "no options; nothing will be rendered")
	}
	if len(desc.EnumNames) != len(desc.Enum) {
		add(SeverityWarning, "enumNames",
			"%d image paths for %d options; extra wrappers get images without a source",
			len(desc.EnumNames), len(desc.Enum))
	}
	for idx, path := range desc.EnumNames {
		if strings.TrimSpace(path) == "" {
			add(SeverityWarning, fmt.Sprintf("enumNames[%d]", idx), "image path is empty")
		}
	}
	if sel := desc.SelectionType(); sel != "" && !sel.Valid() {
		add(SeverityError, "properties.selectionType",
			"unsupported value %q (supported: %s, %s); input types are left unchanged",
			string(sel), SelectionSingle, SelectionMulti)
	}
	return issues
}
