package decorator

import (
	"context"

	"github.com/goliatone/go-formdecor/pkg/dom"
	"github.com/goliatone/go-formdecor/pkg/field"
)

// FieldDecorator progressively enhances the rendered markup of one field
// instance. element is the field wrapper, parent its enclosing element, and
// formID the identifier of the form being decorated. Implementations mutate
// element in place and must not touch markup outside its subtree.
type FieldDecorator interface {
	Decorate(ctx context.Context, element *dom.Element, desc field.Descriptor, parent *dom.Element, formID string) error
}

// Func adapts a function into a FieldDecorator.
type Func func(ctx context.Context, element *dom.Element, desc field.Descriptor, parent *dom.Element, formID string) error

// Decorate calls the underlying function.
func (fn Func) Decorate(ctx context.Context, element *dom.Element, desc field.Descriptor, parent *dom.Element, formID string) error {
	return fn(ctx, element, desc, parent, formID)
}
