package field

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeJSONDescriptor(t *testing.T) {
	payload := []byte(`{
	  "name": "team",
	  "fieldType": "checkbox-group",
	  "enumNames": ["/icons/a.svg", "/icons/b.svg"],
	  "enum": ["A", 2, true, null],
	  "properties": {"selectionType": "single", "variant": "compact"}
	}`)

	desc, err := Decode(payload, FormatAuto)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := Descriptor{
		Name:      "team",
		FieldType: "checkbox-group",
		EnumNames: Values{"/icons/a.svg", "/icons/b.svg"},
		Enum:      Values{"A", "2", "true", ""},
		Properties: Properties{
			SelectionType: SelectionSingle,
			Extra:         map[string]any{"variant": "compact"},
		},
	}
	if diff := cmp.Diff(want, desc); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeYAMLDescriptor(t *testing.T) {
	payload := []byte(`
name: team
enumNames:
  - /icons/a.svg
enum:
  - A
  - 3
properties:
  selectionType: multi
`)
	desc, err := Decode(payload, FormatYAML)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(Values{"A", "3"}, desc.Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
	if desc.SelectionType() != SelectionMulti {
		t.Fatalf("selection = %q", desc.SelectionType())
	}
	if desc.Properties.Extra != nil {
		t.Fatalf("unexpected extra properties: %v", desc.Properties.Extra)
	}
}

func TestDecodeRejectsEmptyAndInvalid(t *testing.T) {
	if _, err := Decode([]byte("   "), FormatAuto); err == nil {
		t.Fatalf("expected error for empty payload")
	}
	if _, err := Decode([]byte(`{"enum": "oops"}`), FormatJSON); err == nil {
		t.Fatalf("expected error for non-array enum")
	}
	if _, err := Decode([]byte(`{}`), Format("toml")); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestDescriptorIndexAccess(t *testing.T) {
	desc := Descriptor{EnumNames: Values{"/a.png"}, Enum: Values{"A", "B"}}

	if path, ok := desc.ImagePath(0); !ok || path != "/a.png" {
		t.Fatalf("ImagePath(0) = %q, %v", path, ok)
	}
	if _, ok := desc.ImagePath(1); ok {
		t.Fatalf("ImagePath(1) should be out of range")
	}
	if alt, ok := desc.AltText(1); !ok || alt != "B" {
		t.Fatalf("AltText(1) = %q, %v", alt, ok)
	}
	if _, ok := desc.AltText(-1); ok {
		t.Fatalf("negative index should be out of range")
	}
}

func TestSelectionTypeInputType(t *testing.T) {
	cases := map[SelectionType]string{
		SelectionSingle: "radio",
		SelectionMulti:  "checkbox",
		"Single":        "",
		"":              "",
		"dropdown":      "",
	}
	for selection, want := range cases {
		got, ok := selection.InputType()
		if got != want || ok != (want != "") {
			t.Fatalf("%q.InputType() = %q, %v", selection, got, ok)
		}
		if selection.Valid() != (want != "") {
			t.Fatalf("%q.Valid() mismatch", selection)
		}
	}
}

func TestPropertiesMarshalMergesExtra(t *testing.T) {
	props := Properties{SelectionType: SelectionMulti, Extra: map[string]any{"columns": float64(4)}}
	data, err := json.Marshal(props)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := map[string]any{"selectionType": "multi", "columns": float64(4)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("properties mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSetInheritsNames(t *testing.T) {
	payload := []byte(`
team:
  enum: [A]
  properties: {selectionType: single}
league:
  name: division
  enum: [X]
`)
	set, err := DecodeSet(payload, FormatAuto)
	if err != nil {
		t.Fatalf("decode set: %v", err)
	}
	if set["team"].Name != "team" {
		t.Fatalf("team name = %q", set["team"].Name)
	}
	if set["league"].Name != "division" {
		t.Fatalf("explicit name overwritten: %q", set["league"].Name)
	}
}

func TestDocumentFormatFromLocation(t *testing.T) {
	src, err := SourceFromURL("https://example.com/forms/team.yaml?v=2")
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	doc, err := NewDocument(src, []byte("enum: [A]\n"))
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	desc, err := doc.Descriptor()
	if err != nil {
		t.Fatalf("descriptor: %v", err)
	}
	if diff := cmp.Diff(Values{"A"}, desc.Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSource(t *testing.T) {
	src, err := ParseSource("https://example.com/team.json")
	if err != nil || src.Kind() != SourceKindURL {
		t.Fatalf("expected url source, got %v, %v", src, err)
	}
	src, err = ParseSource("fields/team.json")
	if err != nil || src.Kind() != SourceKindFile {
		t.Fatalf("expected file source, got %v, %v", src, err)
	}
	src, err = ParseSource("  ")
	if err != nil || src != nil {
		t.Fatalf("expected nil source for blank input")
	}
}
