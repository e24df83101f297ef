package decorator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formdecor/pkg/dom"
	"github.com/goliatone/go-formdecor/pkg/field"
)

// Attributes the host renderer places on field wrappers.
const (
	AttrComponent = "data-component"
	AttrField     = "data-field"
)

var wrapperSelector = dom.MustCompile("[" + AttrComponent + "]")

// Result summarises a pipeline run.
type Result struct {
	// Components lists the component names that were decorated, first-seen
	// order, without duplicates. Feed it to Registry.Assets.
	Components []string
	// Decorated counts decorator invocations.
	Decorated int
	// Skipped lists field names whose component had no registration.
	Skipped []string
}

// Pipeline walks rendered markup and hands every field wrapper to the
// decorator registered for its component name.
type Pipeline struct {
	registry        *Registry
	logger          *slog.Logger
	continueOnError bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger routes pipeline diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithContinueOnError keeps decorating after a failure and returns every
// error joined once the walk completes.
func WithContinueOnError(enabled bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = enabled
	}
}

// NewPipeline constructs a pipeline over registry. A nil registry behaves as
// an empty one.
func NewPipeline(registry *Registry, options ...Option) *Pipeline {
	if registry == nil {
		registry = NewRegistry()
	}
	p := &Pipeline{
		registry: registry,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Apply decorates every element under root that carries a data-component
// attribute, root included when it is itself a field wrapper. Descriptors are looked up in fields by the wrapper's data-field
// value; missing entries decorate with a descriptor holding only the name.
// Wrappers are collected before any decorator runs, so markup inserted by a
// decorator is not revisited.
func (p *Pipeline) Apply(ctx context.Context, root *dom.Element, formID string, fields map[string]field.Descriptor) (Result, error) {
	var result Result
	if root == nil {
		return result, errors.New("decorator: root element is nil")
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	seen := make(map[string]struct{})
	var errs []error

	wrappers := root.Select(wrapperSelector)
	if wrapperSelector.Matches(root) {
		wrappers = append([]*dom.Element{root}, wrappers...)
	}

	for _, wrapper := range wrappers {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		rawName, _ := wrapper.Attr(AttrComponent)
		name := normalize(rawName)
		fieldName, _ := wrapper.Attr(AttrField)
		fieldName = strings.TrimSpace(fieldName)

		decorate, err := p.registry.Decorator(name)
		if errors.Is(err, ErrDecoratorNotFound) {
			p.logger.Debug("skipping unregistered component",
				"component", name, "field", fieldName, "form", formID)
			result.Skipped = append(result.Skipped, fieldName)
			continue
		}

		desc, found := fields[fieldName]
		if !found {
			p.logger.Debug("no descriptor for field", "component", name, "field", fieldName)
		}
		if desc.Name == "" {
			desc.Name = fieldName
		}

		err = decorate.Decorate(ctx, wrapper, desc, wrapper.Parent(), formID)
		result.Decorated++
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			result.Components = append(result.Components, name)
		}
		if err != nil {
			wrapped := fmt.Errorf("decorator: %s field %q: %w", name, fieldName, err)
			if !p.continueOnError {
				return result, wrapped
			}
			p.logger.Warn("decorator failed", "component", name, "field", fieldName, "error", err)
			errs = append(errs, wrapped)
			continue
		}
		p.logger.Debug("decorated field", "component", name, "field", fieldName, "form", formID)
	}

	return result, errors.Join(errs...)
}
