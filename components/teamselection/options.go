package teamselection

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-formdecor/pkg/picture"
)

const (
	// Name is the component name the decorator registers under.
	Name = "team-selection"
	// Stylesheet is the stylesheet shipped alongside the component.
	Stylesheet = "/blocks/form/components/team-selection/team-selection.css"
)

type Options struct {
	MarkerClass     string
	WrapperSelector string
	InputSelector   string
	Pictures        PictureFactory
	Logger          *slog.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		MarkerClass:     Name,
		WrapperSelector: ".checkbox-wrapper",
		InputSelector:   "input",
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
	if opts.MarkerClass == "" {
		opts.MarkerClass = Name
	}
	if opts.WrapperSelector == "" {
		opts.WrapperSelector = ".checkbox-wrapper"
	}
	if opts.InputSelector == "" {
		opts.InputSelector = "input"
	}
	if opts.Pictures == nil {
		opts.Pictures = picture.Must()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return opts
}

func WithMarkerClass(class string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MarkerClass = class
	}
}

func WithWrapperSelector(selector string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.WrapperSelector = selector
	}
}

func WithInputSelector(selector string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.InputSelector = selector
	}
}

func WithPictureFactory(factory PictureFactory) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Pictures = factory
	}
}

func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
