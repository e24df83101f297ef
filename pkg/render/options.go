package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output.
type RenderOptions struct {
	// Values pre-checks options keyed by field name. A value may be a string
	// or a list of strings.
	Values map[string]any
	// Theme supplies partial overrides and CSS variables. Partials keyed
	// "forms.form" and "forms.choice-group" replace the built-in templates.
	Theme *theme.RendererConfig
}
