package formdecor

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formdecor/components/teamselection"
	"github.com/goliatone/go-formdecor/pkg/field"
	"github.com/goliatone/go-formdecor/pkg/testsupport"
)

func TestAssetsFSServesComponentStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), strings.TrimPrefix(teamselection.Stylesheet, "/"))
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), ".team-selection") {
		t.Fatalf("stylesheet does not target the marker class")
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	for _, name := range []string{"form.tpl", "choice_group.tpl"} {
		if _, err := fs.Stat(EmbeddedTemplates(), name); err != nil {
			t.Fatalf("template %s missing: %v", name, err)
		}
	}
}

func TestGenerateHTML(t *testing.T) {
	files := fstest.MapFS{
		"team.yaml": {Data: []byte(`
name: team
enumNames: [/logos/a.svg, /logos/b.svg]
enum: [A, B]
properties:
  selectionType: multi
`)},
	}

	loader := NewLoader(field.WithFileSystem(files))
	doc, err := loader.Load(testsupport.Context(), field.SourceFromFS("team.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	desc, err := doc.Descriptor()
	if err != nil {
		t.Fatalf("descriptor: %v", err)
	}
	if desc.SelectionType() != field.SelectionMulti {
		t.Fatalf("selection = %q", desc.SelectionType())
	}

	html, err := GenerateHTML(testsupport.Context(), field.SourceFromFile("testdata/team.json"), "f")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	root := testsupport.MustParseFragment(t, string(html))
	pictures, _ := root.QueryAll(".checkbox-wrapper picture")
	if len(pictures) != 3 {
		t.Fatalf("expected 3 pictures, got %d:\n%s", len(pictures), html)
	}
}
