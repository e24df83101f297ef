// Package sanitize cleans decorated form markup before it leaves the process.
// The policy keeps the form controls and responsive picture elements the
// decorators emit and strips everything else.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	formPolicyOnce sync.Once
	formPolicy     *bluemonday.Policy
)

// FormMarkup sanitises raw with the form policy. Whitespace-only input and
// input that sanitises to nothing both yield "".
func FormMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(Policy().Sanitize(trimmed))
}

// Policy returns the shared form markup policy. The policy is safe for
// concurrent use and must not be mutated by callers.
func Policy() *bluemonday.Policy {
	formPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"form", "fieldset", "legend", "div", "label", "input",
			"picture", "source", "img", "span", "p",
		)
		policy.AllowNoAttrs().OnElements("legend", "label", "form")

		policy.AllowAttrs("class", "id").Globally()
		policy.AllowDataAttributes()
		policy.AllowAttrs("style", "data-theme", "data-theme-variant").OnElements("form")

		policy.AllowAttrs("for").OnElements("label")
		policy.AllowAttrs(
			"type", "name", "value", "checked", "required", "disabled",
		).OnElements("input")

		policy.AllowAttrs("type", "srcset", "media").OnElements("source")
		policy.AllowAttrs("src", "alt", "loading", "width", "height").OnElements("img")

		policy.RequireParseableURLs(true)
		policy.AllowRelativeURLs(true)
		policy.AllowURLSchemes("http", "https")

		formPolicy = policy
	})
	return formPolicy
}
