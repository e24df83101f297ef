package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdecor/pkg/dom"
	"github.com/goliatone/go-formdecor/pkg/field"
)

// LoadDescriptor reads a JSON or YAML descriptor fixture. The format follows
// the file extension.
func LoadDescriptor(t *testing.T, path string) field.Descriptor {
	t.Helper()

	desc, err := LoadDescriptorFromPath(path)
	if err != nil {
		t.Fatalf("load descriptor: %v", err)
	}
	return desc
}

// LoadDescriptorFromPath returns a Descriptor without requiring testing.T so
// callers can wire fixtures in setup functions.
func LoadDescriptorFromPath(path string) (field.Descriptor, error) {
	if path == "" {
		return field.Descriptor{}, errors.New("testsupport: descriptor path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return field.Descriptor{}, fmt.Errorf("testsupport: read descriptor: %w", err)
	}
	doc, err := field.NewDocument(field.SourceFromFile(path), data)
	if err != nil {
		return field.Descriptor{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc.Descriptor()
}

// MustParseFragment parses markup into a detached root element.
func MustParseFragment(t *testing.T, markup string) *dom.Element {
	t.Helper()

	root, err := dom.ParseFragment(markup)
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	return root
}

// MustInnerHTML renders the children of el.
func MustInnerHTML(t *testing.T, el *dom.Element) string {
	t.Helper()

	out, err := el.InnerHTML()
	if err != nil {
		t.Fatalf("render inner html: %v", err)
	}
	return out
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
