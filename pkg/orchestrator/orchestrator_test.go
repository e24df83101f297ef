package orchestrator_test

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formdecor/components/teamselection"
	internalLoader "github.com/goliatone/go-formdecor/internal/loader"
	"github.com/goliatone/go-formdecor/pkg/dom"
	"github.com/goliatone/go-formdecor/pkg/field"
	"github.com/goliatone/go-formdecor/pkg/orchestrator"
	"github.com/goliatone/go-formdecor/pkg/picture"
	"github.com/goliatone/go-formdecor/pkg/render"
	"github.com/goliatone/go-formdecor/pkg/testsupport"
)

const teamDescriptor = `{
  "name": "team",
  "label": "Favourite team",
  "fieldType": "checkbox-group",
  "enumNames": ["/logos/buffalo-bills-logo.svg", "/logos/new-york-jets-logo.svg"],
  "enum": ["Buffalo Bills", "New York Jets"],
  "properties": {"selectionType": "single"}
}`

func parseOutput(t *testing.T, out orchestrator.Output) *dom.Element {
	t.Helper()
	return testsupport.MustParseFragment(t, string(out.HTML))
}

func TestOrchestrator_GenerateFromFS(t *testing.T) {
	files := fstest.MapFS{"forms/team.json": {Data: []byte(teamDescriptor)}}
	orch := orchestrator.New(
		orchestrator.WithLoader(internalLoader.New(field.NewLoaderOptions(field.WithFileSystem(files)))),
	)

	out, err := orch.Generate(testsupport.Context(), orchestrator.Request{
		Source: field.SourceFromFS("forms/team.json"),
		FormID: "signup",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	root := parseOutput(t, out)
	fieldset, _ := root.Query(`form#signup fieldset[data-component="team-selection"]`)
	if fieldset == nil {
		t.Fatalf("decorated fieldset missing:\n%s", out.HTML)
	}
	if !fieldset.HasClass("team-selection") {
		t.Fatalf("marker class missing: %v", fieldset.Classes())
	}

	inputs, _ := fieldset.QueryAll("input")
	for _, input := range inputs {
		if typ, _ := input.Attr("type"); typ != "radio" {
			t.Fatalf("input type = %q, want radio", typ)
		}
	}

	images, _ := fieldset.QueryAll(".checkbox-wrapper picture img")
	var alts []string
	for _, img := range images {
		alt, _ := img.Attr("alt")
		alts = append(alts, alt)
	}
	if diff := cmp.Diff([]string{"Buffalo Bills", "New York Jets"}, alts); diff != "" {
		t.Fatalf("picture alts mismatch (-want +got):\n%s", diff)
	}

	if out.Result.Decorated != 1 {
		t.Fatalf("decorated = %d, want 1", out.Result.Decorated)
	}
	if diff := cmp.Diff([]string{teamselection.Stylesheet}, out.Stylesheets); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_GenerateFromDescriptorWithTheme(t *testing.T) {
	desc := field.Descriptor{
		Name:      "team",
		EnumNames: field.Values{"theme:logos/bills.svg"},
		Enum:      field.Values{"Buffalo Bills"},
	}
	orch := orchestrator.New(
		orchestrator.WithTheme(&theme.RendererConfig{
			Theme: "acme",
			AssetURL: func(key string) string {
				return "/themes/acme/" + key
			},
		}),
		orchestrator.WithPictureOptions(picture.WithEager(true)),
	)

	out, err := orch.Generate(testsupport.Context(), orchestrator.Request{Descriptor: &desc, FormID: "f"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	root := parseOutput(t, out)
	form, _ := root.Query("form")
	if got, _ := form.Attr("data-theme"); got != "acme" {
		t.Fatalf("data-theme = %q", got)
	}
	img, _ := root.Query("picture img")
	if img == nil {
		t.Fatalf("picture missing:\n%s", out.HTML)
	}
	if src, _ := img.Attr("src"); !strings.HasPrefix(src, "/themes/acme/logos/bills.svg?") {
		t.Fatalf("src = %q", src)
	}
	if loading, _ := img.Attr("loading"); loading != "eager" {
		t.Fatalf("loading = %q", loading)
	}
}

func TestOrchestrator_UnregisteredComponentIsSkipped(t *testing.T) {
	orch := orchestrator.New()

	out, err := orch.Generate(testsupport.Context(), orchestrator.Request{
		Fields: []render.Field{
			{Component: "rating", Descriptor: field.Descriptor{Name: "stars", Enum: field.Values{"1", "2"}}},
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if diff := cmp.Diff([]string{"stars"}, out.Result.Skipped); diff != "" {
		t.Fatalf("skipped mismatch (-want +got):\n%s", diff)
	}
	if pictures, _ := parseOutput(t, out).QueryAll("picture"); len(pictures) != 0 {
		t.Fatalf("unexpected pictures for skipped field")
	}
}

func TestOrchestrator_SanitizerOverride(t *testing.T) {
	desc := field.Descriptor{Name: "team", Enum: field.Values{"A"}}

	var seen string
	orch := orchestrator.New(orchestrator.WithSanitizer(func(s string) string {
		seen = s
		return "<p>clean</p>"
	}))
	out, err := orch.Generate(testsupport.Context(), orchestrator.Request{Descriptor: &desc})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(out.HTML) != "<p>clean</p>" {
		t.Fatalf("sanitizer output ignored: %s", out.HTML)
	}
	if !strings.Contains(seen, "team-selection") {
		t.Fatalf("sanitizer received undecorated markup: %s", seen)
	}
}

func TestOrchestrator_Errors(t *testing.T) {
	orch := orchestrator.New()

	if _, err := orch.Generate(testsupport.Context(), orchestrator.Request{}); err == nil {
		t.Fatalf("expected error without source")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	desc := field.Descriptor{Name: "team"}
	if _, err := orch.Generate(ctx, orchestrator.Request{Descriptor: &desc}); err == nil {
		t.Fatalf("expected context error")
	}

	if _, err := orch.Generate(testsupport.Context(), orchestrator.Request{
		Source: field.SourceFromFile("testdata/missing.json"),
	}); err == nil {
		t.Fatalf("expected load error")
	}
}

var interTagSpace = regexp.MustCompile(`>\s+<`)

func normalizeMarkup(markup string) string {
	return interTagSpace.ReplaceAllString(strings.TrimSpace(markup), "><")
}

func TestOrchestrator_TeamSelectionGolden(t *testing.T) {
	team := testsupport.LoadDescriptor(t, filepath.Join("testdata", "team.json"))
	rival := testsupport.LoadDescriptor(t, filepath.Join("testdata", "rival.yaml"))

	orch := orchestrator.New(orchestrator.WithSanitizer(nil))
	out, err := orch.Generate(testsupport.Context(), orchestrator.Request{
		FormID: "signup",
		Fields: []render.Field{
			{Component: teamselection.Name, Descriptor: team},
			{Component: teamselection.Name, Descriptor: rival},
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	got := normalizeMarkup(testsupport.MustInnerHTML(t, parseOutput(t, out)))
	goldenPath := filepath.Join("testdata", "team_selection.golden.html")
	if testsupport.WriteMaybeGolden(t, goldenPath, []byte(got+"\n")) {
		return
	}

	want := normalizeMarkup(testsupport.MustReadGoldenString(t, goldenPath))
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("decorated markup mismatch (-want +got):\n%s", diff)
	}
}
