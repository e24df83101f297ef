package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formdecor/pkg/field"
)

// Settings are the decoration inputs the CLI can ask for.
type Settings struct {
	Selection field.SelectionType
	Label     string
	FormID    string
}

var selectionChoices = []struct {
	label string
	value field.SelectionType
}{
	{label: "single (radio buttons)", value: field.SelectionSingle},
	{label: "multi (checkboxes)", value: field.SelectionMulti},
	{label: "keep the host input types", value: ""},
}

// Complete asks for every setting that is still empty and returns the filled
// copy. Values already set are never re-prompted.
func Complete(ctx context.Context, driver Driver, current Settings) (Settings, error) {
	if driver == nil {
		return current, errors.New("prompt: driver is required")
	}
	out := current

	if out.Selection == "" {
		options := make([]string, len(selectionChoices))
		for i, choice := range selectionChoices {
			options[i] = choice.label
		}
		idx, err := driver.Select(ctx, SelectConfig{
			Message: "Selection type",
			Options: options,
			Help:    "single renders radio buttons, multi renders checkboxes",
		})
		if err != nil {
			return current, err
		}
		if idx < 0 || idx >= len(selectionChoices) {
			return current, fmt.Errorf("prompt: selection index %d out of range", idx)
		}
		out.Selection = selectionChoices[idx].value
	}

	if strings.TrimSpace(out.Label) == "" {
		label, err := driver.Input(ctx, InputConfig{
			Message: "Field label",
			Default: "Team",
		})
		if err != nil {
			return current, err
		}
		out.Label = strings.TrimSpace(label)
	}

	if strings.TrimSpace(out.FormID) == "" {
		formID, err := driver.Input(ctx, InputConfig{
			Message: "Form id",
			Default: "form",
			Validator: func(v string) error {
				if strings.ContainsAny(strings.TrimSpace(v), " \t") {
					return errors.New("form id cannot contain whitespace")
				}
				return nil
			},
		})
		if err != nil {
			return current, err
		}
		out.FormID = strings.TrimSpace(formID)
	}
	return out, nil
}

// ConfirmOverwrite asks before replacing an existing output file.
func ConfirmOverwrite(ctx context.Context, driver Driver, path string) (bool, error) {
	if driver == nil {
		return false, errors.New("prompt: driver is required")
	}
	return driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Overwrite %s?", path),
	})
}
