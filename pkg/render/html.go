package render

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formdecor/pkg/field"
	"github.com/goliatone/go-formdecor/pkg/render/template"
	"github.com/goliatone/go-formdecor/pkg/render/template/pongo"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const (
	htmlRendererName = "html"

	// PartialForm overrides the form shell template.
	PartialForm = "forms.form"
	// PartialChoiceGroup overrides the checkbox/radio group template.
	PartialChoiceGroup = "forms.choice-group"

	defaultFormTemplate        = "form"
	defaultChoiceGroupTemplate = "choice_group"

	fieldTypeRadioGroup = "radio-group"
)

// TemplatesFS exposes the built-in templates so custom engines can layer
// overrides on top of them.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// HTMLOption configures an HTMLRenderer.
type HTMLOption func(*HTMLRenderer)

// WithTemplateRenderer swaps the template engine. The engine must resolve the
// built-in template names or whatever partials the theme names.
func WithTemplateRenderer(engine template.TemplateRenderer) HTMLOption {
	return func(r *HTMLRenderer) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// HTMLRenderer emits the baseline markup a host form pipeline produces for
// checkbox and radio groups: a fieldset wrapping a legend and one
// wrapper div per enum entry.
type HTMLRenderer struct {
	engine template.TemplateRenderer
}

var _ Renderer = (*HTMLRenderer)(nil)

// NewHTMLRenderer builds a renderer backed by the embedded pongo2 templates
// unless WithTemplateRenderer supplies another engine.
func NewHTMLRenderer(opts ...HTMLOption) (*HTMLRenderer, error) {
	r := &HTMLRenderer{}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.engine == nil {
		engine, err := pongo.New(pongo.WithFS(TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("render: init template engine: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

// Name implements Renderer.
func (r *HTMLRenderer) Name() string { return htmlRendererName }

// ContentType implements Renderer.
func (r *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

// Render implements Renderer.
func (r *HTMLRenderer) Render(ctx context.Context, form Form, options RenderOptions) ([]byte, error) {
	if r == nil || r.engine == nil {
		return nil, errors.New("render: html renderer is not initialised")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	themeCtx := buildThemeContext(options.Theme)
	choiceTemplate := themeCtx.partial(PartialChoiceGroup, defaultChoiceGroupTemplate)

	var body strings.Builder
	for idx, fld := range form.Fields {
		name := strings.TrimSpace(fld.Descriptor.Name)
		if name == "" {
			return nil, fmt.Errorf("render: field %d has no name", idx)
		}
		out, err := r.engine.RenderTemplate(choiceTemplate, map[string]any{
			"field": choiceGroupData(form.ID, fld, options.Values[name]),
			"theme": themeCtx.data(),
		})
		if err != nil {
			return nil, fmt.Errorf("render: field %q: %w", name, err)
		}
		body.WriteString(out)
	}

	out, err := r.engine.RenderTemplate(themeCtx.partial(PartialForm, defaultFormTemplate), map[string]any{
		"form":  map[string]any{"id": form.ID},
		"body":  body.String(),
		"theme": themeCtx.data(),
	})
	if err != nil {
		return nil, fmt.Errorf("render: form %q: %w", form.ID, err)
	}
	return []byte(out), nil
}

func choiceGroupData(formID string, fld Field, prefill any) map[string]any {
	desc := fld.Descriptor
	inputType, wrapperClass, groupClass := "checkbox", "checkbox-wrapper", "checkbox-group-wrapper"
	if desc.FieldType == fieldTypeRadioGroup {
		inputType, wrapperClass, groupClass = "radio", "radio-wrapper", "radio-group-wrapper"
	}

	id := desc.Name
	if formID != "" {
		id = formID + "-" + desc.Name
	}

	checked := prefillSet(prefill)
	options := make([]any, 0, len(desc.Enum))
	for idx, value := range desc.Enum {
		_, isChecked := checked[value]
		options = append(options, map[string]any{
			"id":      fmt.Sprintf("%s-%d", id, idx),
			"value":   value,
			"label":   value,
			"checked": isChecked,
		})
	}

	return map[string]any{
		"id":            id,
		"name":          desc.Name,
		"label":         desc.Label,
		"component":     fld.Component,
		"classes":       "field-wrapper " + groupClass + " field-" + desc.Name,
		"wrapper_class": wrapperClass,
		"input_type":    inputType,
		"options":       options,
	}
}

func prefillSet(value any) map[string]struct{} {
	out := make(map[string]struct{})
	switch typed := value.(type) {
	case nil:
	case string:
		out[typed] = struct{}{}
	case []string:
		for _, v := range typed {
			out[v] = struct{}{}
		}
	case field.Values:
		for _, v := range typed {
			out[v] = struct{}{}
		}
	case []any:
		for _, v := range typed {
			out[fmt.Sprint(v)] = struct{}{}
		}
	default:
		out[fmt.Sprint(typed)] = struct{}{}
	}
	return out
}

type themeContext struct {
	Name     string
	Variant  string
	Partials map[string]string
	Style    string
}

func buildThemeContext(cfg *theme.RendererConfig) themeContext {
	if cfg == nil {
		return themeContext{}
	}
	return themeContext{
		Name:     cfg.Theme,
		Variant:  cfg.Variant,
		Partials: cfg.Partials,
		Style:    cssVarsStyle(cfg.CSSVars),
	}
}

func (t themeContext) partial(key, fallback string) string {
	if candidate := strings.TrimSpace(t.Partials[key]); candidate != "" {
		return candidate
	}
	return fallback
}

func (t themeContext) data() map[string]any {
	return map[string]any{
		"name":    t.Name,
		"variant": t.Variant,
		"style":   t.Style,
	}
}

// cssVarsStyle renders CSS variables as an inline style value, sorted by name.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+vars[key])
	}
	return strings.Join(parts, "; ")
}
