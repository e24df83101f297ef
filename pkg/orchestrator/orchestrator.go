package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formdecor/components/teamselection"
	internalLoader "github.com/goliatone/go-formdecor/internal/loader"
	"github.com/goliatone/go-formdecor/pkg/decorator"
	"github.com/goliatone/go-formdecor/pkg/dom"
	"github.com/goliatone/go-formdecor/pkg/field"
	"github.com/goliatone/go-formdecor/pkg/picture"
	"github.com/goliatone/go-formdecor/pkg/render"
	"github.com/goliatone/go-formdecor/pkg/sanitize"
)

// DefaultComponent is stamped on fields whose request omits a component.
const DefaultComponent = teamselection.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom descriptor loader.
func WithLoader(loader field.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRenderer injects the baseline markup renderer.
func WithRenderer(renderer render.Renderer) Option {
	return func(o *Orchestrator) {
		o.renderer = renderer
	}
}

// WithRegistry injects the decorator registry. When omitted a registry with
// the team-selection component is built from the picture options.
func WithRegistry(registry *decorator.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithPictureOptions configures the picture factory used by the default
// registry. Ignored when WithRegistry is supplied.
func WithPictureOptions(opts ...picture.OptionFn) Option {
	return func(o *Orchestrator) {
		o.pictureOpts = append(o.pictureOpts, opts...)
	}
}

// WithTheme passes a go-theme renderer config to the renderer and to the
// default picture factory's asset resolver.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(o *Orchestrator) {
		o.theme = cfg
	}
}

// WithSanitizer replaces the output sanitizer. Pass nil to emit the decorated
// markup untouched.
func WithSanitizer(fn func(string) string) Option {
	return func(o *Orchestrator) {
		o.sanitizer = fn
		o.sanitizerSet = true
	}
}

// WithContinueOnError keeps decorating remaining fields after a failure.
func WithContinueOnError(enabled bool) Option {
	return func(o *Orchestrator) {
		o.continueOnError = enabled
	}
}

// WithLogger injects a structured logger shared with the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates the full pipeline from descriptor to decorated
// markup. Missing stages are initialised with the built-in implementations.
type Orchestrator struct {
	loader          field.Loader
	renderer        render.Renderer
	registry        *decorator.Registry
	pictureOpts     []picture.OptionFn
	theme           *theme.RendererConfig
	sanitizer       func(string) string
	sanitizerSet    bool
	continueOnError bool
	logger          *slog.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs for one Generate call.
type Request struct {
	// Source identifies where the descriptor lives. Optional when Descriptor
	// or Fields is supplied.
	Source field.Source

	// Descriptor bypasses the loader with an in-memory descriptor.
	Descriptor *field.Descriptor

	// Fields renders several fields at once and takes precedence over Source
	// and Descriptor.
	Fields []render.Field

	// Component is stamped on the single field built from Source or
	// Descriptor. Defaults to DefaultComponent.
	Component string

	// FormID is forwarded to the renderer and every decorator.
	FormID string

	// RenderOptions carries prefilled values for the renderer. The
	// orchestrator theme is used when RenderOptions.Theme is nil.
	RenderOptions render.RenderOptions
}

// Output is the result of a Generate call.
type Output struct {
	HTML   []byte
	Result decorator.Result
	// Stylesheets lists the assets of the components that ran.
	Stylesheets []string
}

// Generate executes the load → render → decorate → sanitize sequence.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Output, error) {
	if ctx == nil {
		return Output{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Output{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Output{}, err
	}

	form, err := o.resolveForm(ctx, req)
	if err != nil {
		return Output{}, err
	}

	opts := req.RenderOptions
	if opts.Theme == nil {
		opts.Theme = o.theme
	}
	markup, err := o.renderer.Render(ctx, form, opts)
	if err != nil {
		return Output{}, fmt.Errorf("orchestrator: render markup: %w", err)
	}

	root, err := dom.ParseFragment(string(markup))
	if err != nil {
		return Output{}, fmt.Errorf("orchestrator: parse markup: %w", err)
	}

	pipeline := decorator.NewPipeline(o.registry,
		decorator.WithLogger(o.logger),
		decorator.WithContinueOnError(o.continueOnError),
	)
	result, err := pipeline.Apply(ctx, root, form.ID, form.Descriptors())
	if err != nil {
		return Output{Result: result}, fmt.Errorf("orchestrator: decorate: %w", err)
	}

	html, err := root.InnerHTML()
	if err != nil {
		return Output{Result: result}, fmt.Errorf("orchestrator: render decorated markup: %w", err)
	}
	if o.sanitizer != nil {
		html = o.sanitizer(html)
	}

	stylesheets := o.registry.Assets(result.Components)
	o.logger.Debug("generated form",
		"form", form.ID,
		"fields", len(form.Fields),
		"decorated", result.Decorated,
	)
	return Output{
		HTML:        []byte(html),
		Result:      result,
		Stylesheets: stylesheets,
	}, nil
}

func (o *Orchestrator) resolveForm(ctx context.Context, req Request) (render.Form, error) {
	form := render.Form{ID: strings.TrimSpace(req.FormID)}
	if len(req.Fields) > 0 {
		form.Fields = append(form.Fields, req.Fields...)
		return form, nil
	}

	desc, err := o.resolveDescriptor(ctx, req)
	if err != nil {
		return render.Form{}, err
	}
	component := strings.TrimSpace(req.Component)
	if component == "" {
		component = DefaultComponent
	}
	form.Fields = []render.Field{{Component: component, Descriptor: desc}}
	return form, nil
}

func (o *Orchestrator) resolveDescriptor(ctx context.Context, req Request) (field.Descriptor, error) {
	if req.Descriptor != nil {
		return *req.Descriptor, nil
	}
	if req.Source == nil {
		return field.Descriptor{}, errors.New("orchestrator: source, descriptor, or fields are required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return field.Descriptor{}, fmt.Errorf("orchestrator: load descriptor: %w", err)
	}
	desc, err := doc.Descriptor()
	if err != nil {
		return field.Descriptor{}, fmt.Errorf("orchestrator: decode descriptor: %w", err)
	}
	return desc, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.loader == nil {
		o.loader = internalLoader.New(field.NewLoaderOptions())
	}
	if o.renderer == nil {
		renderer, err := render.NewHTMLRenderer()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.renderer = renderer
	}
	if o.registry == nil {
		opts := o.pictureOpts
		if o.theme != nil {
			opts = append([]picture.OptionFn{picture.WithTheme(o.theme)}, opts...)
		}
		factory, err := picture.New(opts...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: picture factory: %w", err)
			return
		}
		registry := decorator.NewRegistry()
		if err := teamselection.Register(registry,
			teamselection.WithPictureFactory(factory),
			teamselection.WithLogger(o.logger),
		); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: register components: %w", err)
			return
		}
		o.registry = registry
	}
	if !o.sanitizerSet {
		o.sanitizer = sanitize.FormMarkup
	}
}
