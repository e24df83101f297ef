package picture

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formdecor/pkg/dom"
)

// ErrInvalidPath is returned when an image path cannot be resolved.
var ErrInvalidPath = errors.New("picture: invalid image path")

const themePrefix = "theme:"

// Factory builds optimized <picture> elements.
type Factory struct {
	opts Options
	base *url.URL
}

// FactoryFunc adapts a function into a picture factory.
type FactoryFunc func(path, alt string) (*dom.Element, error)

// CreateOptimizedPicture calls fn.
func (fn FactoryFunc) CreateOptimizedPicture(path, alt string) (*dom.Element, error) {
	return fn(path, alt)
}

// New constructs a Factory. It fails when the base URL cannot be parsed.
func New(fns ...OptionFn) (*Factory, error) {
	opts := NewOptions(fns...)
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("picture: parse base url %q: %w", opts.BaseURL, err)
	}
	return &Factory{opts: opts, base: base}, nil
}

// Must mirrors New but panics on error.
func Must(fns ...OptionFn) *Factory {
	factory, err := New(fns...)
	if err != nil {
		panic(err)
	}
	return factory
}

// Options returns a copy of the factory configuration.
func (f *Factory) Options() Options {
	return NewOptions(func(o *Options) { *o = f.opts })
}

// CreateOptimizedPicture builds a <picture> with one webp <source> per
// breakpoint, original-format fallbacks for every breakpoint but the last, and
// an <img> for the last breakpoint. An empty path yields a picture holding only
// an <img> with loading and alt set.
func (f *Factory) CreateOptimizedPicture(path, alt string) (*dom.Element, error) {
	picture := dom.NewElement("picture")
	loading := "lazy"
	if f.opts.Eager {
		loading = "eager"
	}

	if path == "" {
		picture.AppendChild(dom.NewElement("img",
			html.Attribute{Key: "loading", Val: loading},
			html.Attribute{Key: "alt", Val: alt},
		))
		return picture, nil
	}

	pathname, err := f.resolve(path)
	if err != nil {
		return nil, err
	}
	ext := extension(pathname)

	for _, br := range f.opts.Breakpoints {
		source := dom.NewElement("source")
		if br.Media != "" {
			source.SetAttr("media", br.Media)
		}
		source.SetAttr("type", "image/webp")
		source.SetAttr("srcset", f.rendition(pathname, br.Width, "webply"))
		picture.AppendChild(source)
	}

	last := len(f.opts.Breakpoints) - 1
	for idx, br := range f.opts.Breakpoints {
		if idx < last {
			source := dom.NewElement("source")
			if br.Media != "" {
				source.SetAttr("media", br.Media)
			}
			source.SetAttr("srcset", f.rendition(pathname, br.Width, ext))
			picture.AppendChild(source)
			continue
		}
		img := dom.NewElement("img",
			html.Attribute{Key: "loading", Val: loading},
			html.Attribute{Key: "alt", Val: alt},
		)
		img.SetAttr("src", f.rendition(pathname, br.Width, ext))
		picture.AppendChild(img)
	}

	return picture, nil
}

func (f *Factory) resolve(path string) (string, error) {
	if key, ok := strings.CutPrefix(path, themePrefix); ok {
		if f.opts.AssetURL == nil {
			return "", fmt.Errorf("%w: %q requires a theme asset resolver", ErrInvalidPath, path)
		}
		path = f.opts.AssetURL(key)
		if path == "" {
			return "", fmt.Errorf("%w: theme asset %q is not defined", ErrInvalidPath, key)
		}
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidPath, path, err)
	}
	resolved := f.base.ResolveReference(ref)
	pathname := resolved.EscapedPath()
	if pathname == "" {
		pathname = "/"
	}
	return pathname, nil
}

func (f *Factory) rendition(pathname, width, format string) string {
	query := "?width=" + url.QueryEscape(width)
	if format != "" {
		query += "&format=" + format
	}
	return pathname + query + "&optimize=" + url.QueryEscape(f.opts.Optimize)
}

// extension returns the text after the last '.' in the final path segment.
func extension(pathname string) string {
	segment := pathname
	if idx := strings.LastIndexByte(segment, '/'); idx >= 0 {
		segment = segment[idx+1:]
	}
	idx := strings.LastIndexByte(segment, '.')
	if idx < 0 {
		return ""
	}
	return segment[idx+1:]
}
