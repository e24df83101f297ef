// Package formdecor renders choice fields and decorates them with
// component-specific markup, such as the team-selection logo grid.
package formdecor

import (
	"context"
	"embed"
	"io/fs"

	internalLoader "github.com/goliatone/go-formdecor/internal/loader"
	"github.com/goliatone/go-formdecor/pkg/field"
	"github.com/goliatone/go-formdecor/pkg/orchestrator"
	"github.com/goliatone/go-formdecor/pkg/render"
)

// RenderOptions aliases render.RenderOptions for callers prefilling values
// or passing a theme.
type RenderOptions = render.RenderOptions

// Output aliases orchestrator.Output.
type Output = orchestrator.Output

//go:embed assets/blocks
var embeddedAssets embed.FS

// NewLoader constructs a descriptor loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...field.LoaderOption) field.Loader {
	cfg := field.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML loads the descriptor behind source, renders it as a
// team-selection field, and returns the decorated markup.
func GenerateHTML(ctx context.Context, source field.Source, formID string, options ...orchestrator.Option) ([]byte, error) {
	out, err := orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Source: source,
		FormID: formID,
	})
	if err != nil {
		return nil, err
	}
	return out.HTML, nil
}

// EmbeddedTemplates exposes the built-in baseline markup templates so callers
// can extend them.
func EmbeddedTemplates() fs.FS {
	return render.TemplatesFS()
}

// AssetsFS exposes component stylesheets laid out under the paths the
// registry advertises, for example
// blocks/form/components/team-selection/team-selection.css.
//
// Typical mount:
//
//	mux.Handle("/blocks/", http.FileServerFS(formdecor.AssetsFS()))
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
