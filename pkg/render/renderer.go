package render

import (
	"context"

	"github.com/goliatone/go-formdecor/pkg/field"
)

// Renderer converts a Form into its baseline markup before field decorators
// run over it.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form Form, options RenderOptions) ([]byte, error)
}

// Form is the unit a Renderer emits: a form element wrapping one control per
// field, in order.
type Form struct {
	ID     string
	Fields []Field
}

// Field pairs a descriptor with the component name stamped on its wrapper as
// data-component. An empty Component renders a plain field.
type Field struct {
	Component  string
	Descriptor field.Descriptor
}

// Descriptors indexes the form's descriptors by name for the decorator
// pipeline.
func (f Form) Descriptors() map[string]field.Descriptor {
	out := make(map[string]field.Descriptor, len(f.Fields))
	for _, fld := range f.Fields {
		out[fld.Descriptor.Name] = fld.Descriptor
	}
	return out
}
