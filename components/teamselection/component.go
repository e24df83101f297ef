package teamselection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-formdecor/pkg/decorator"
	"github.com/goliatone/go-formdecor/pkg/dom"
	"github.com/goliatone/go-formdecor/pkg/field"
)

// PictureFactory builds the image element appended to each option wrapper.
// Errors are returned to the caller unchanged.
type PictureFactory interface {
	CreateOptimizedPicture(path, alt string) (*dom.Element, error)
}

// Component is the team-selection field decorator.
type Component struct {
	opts     Options
	wrappers dom.Selector
	inputs   dom.Selector
}

var _ decorator.FieldDecorator = (*Component)(nil)

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) (*Component, error) {
	opts := NewOptions(fns...)
	wrappers, err := dom.Compile(opts.WrapperSelector)
	if err != nil {
		return nil, fmt.Errorf("teamselection: wrapper selector: %w", err)
	}
	inputs, err := dom.Compile(opts.InputSelector)
	if err != nil {
		return nil, fmt.Errorf("teamselection: input selector: %w", err)
	}
	return &Component{opts: opts, wrappers: wrappers, inputs: inputs}, nil
}

// MustNew mirrors New but panics on error.
func MustNew(fns ...OptionFn) *Component {
	c, err := New(fns...)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultComponent = sync.OnceValue(func() *Component { return MustNew() })

// Decorate runs the default component against element.
func Decorate(ctx context.Context, element *dom.Element, desc field.Descriptor, parent *dom.Element, formID string) error {
	return defaultComponent().Decorate(ctx, element, desc, parent, formID)
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return NewOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Decorate marks element, sets input kinds from the selection type, and
// appends one picture per option wrapper. parent and formID are accepted for
// parity with other field decorators and are not used.
func (c *Component) Decorate(ctx context.Context, element *dom.Element, desc field.Descriptor, parent *dom.Element, formID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if element == nil {
		return errors.New("teamselection: element is nil")
	}

	element.AddClass(c.opts.MarkerClass)

	if inputType, ok := desc.SelectionType().InputType(); ok {
		for _, input := range element.Select(c.inputs) {
			input.SetAttr("type", inputType)
		}
	}

	wrappers := element.Select(c.wrappers)
	for idx, wrapper := range wrappers {
		path, _ := desc.ImagePath(idx)
		alt, _ := desc.AltText(idx)
		pic, err := c.opts.Pictures.CreateOptimizedPicture(path, alt)
		if err != nil {
			return err
		}
		wrapper.AppendChild(pic)
	}

	c.opts.Logger.Debug("decorated team selection",
		"field", desc.Name,
		"selection", string(desc.SelectionType()),
		"options", len(wrappers),
		"images", len(desc.EnumNames),
	)
	return nil
}

// Register adds the component to registry under Name with its stylesheet.
func Register(registry *decorator.Registry, fns ...OptionFn) error {
	if registry == nil {
		return errors.New("teamselection: registry is nil")
	}
	c, err := New(fns...)
	if err != nil {
		return err
	}
	return registry.Register(Name, decorator.Descriptor{
		Decorator:   c,
		Stylesheets: []string{Stylesheet},
	})
}
