package picture

import (
	"slices"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Breakpoint pairs an optional media query with the rendition width requested
// from the image service.
type Breakpoint struct {
	Media string
	Width string
}

// DefaultBreakpoints matches the host's responsive defaults: a 2000px rendition
// for viewports of at least 600px and a 750px rendition otherwise.
var DefaultBreakpoints = []Breakpoint{
	{Media: "(min-width: 600px)", Width: "2000"},
	{Width: "750"},
}

// Options configures a Factory.
type Options struct {
	Breakpoints []Breakpoint
	Eager       bool
	// BaseURL resolves relative image paths. Only the resulting pathname is
	// used in the generated markup.
	BaseURL string
	// AssetURL resolves "theme:<key>" paths, usually from a go-theme
	// RendererConfig.
	AssetURL func(key string) string
	// Optimize is the optimize query value sent to the image service.
	Optimize string
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		Breakpoints: slices.Clone(DefaultBreakpoints),
		BaseURL:     "/",
		Optimize:    "medium",
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if len(opts.Breakpoints) == 0 {
		opts.Breakpoints = slices.Clone(DefaultBreakpoints)
	} else {
		opts.Breakpoints = slices.Clone(opts.Breakpoints)
	}
	if strings.TrimSpace(opts.BaseURL) == "" {
		opts.BaseURL = "/"
	}
	if strings.TrimSpace(opts.Optimize) == "" {
		opts.Optimize = "medium"
	}
	return opts
}

func WithBreakpoints(breakpoints ...Breakpoint) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Breakpoints = slices.Clone(breakpoints)
	}
}

func WithEager(eager bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Eager = eager
	}
}

func WithBaseURL(base string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.BaseURL = base
	}
}

func WithOptimize(level string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Optimize = level
	}
}

func WithAssetResolver(resolve func(key string) string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.AssetURL = resolve
	}
}

// WithTheme wires the theme's asset resolver so "theme:<key>" paths resolve
// against the selected theme and variant.
func WithTheme(cfg *theme.RendererConfig) OptionFn {
	return func(o *Options) {
		if o == nil || cfg == nil {
			return
		}
		o.AssetURL = cfg.AssetURL
	}
}
