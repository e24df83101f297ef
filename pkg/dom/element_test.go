package dom

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleMarkup = `
<fieldset class="field-wrapper checkbox-group-wrapper" data-component="team-selection" data-field="team">
  <legend>Team</legend>
  <div class="checkbox-wrapper" id="opt-a"><input type="checkbox" name="team" value="a"><label>A</label></div>
  <div class="checkbox-wrapper selected" id="opt-b"><input type="checkbox" name="team" value="b"><label>B</label></div>
  <p class="help">pick <span class="checkbox-wrapper">nested</span></p>
</fieldset>`

func mustParse(t *testing.T, markup string) *Element {
	t.Helper()
	root, err := ParseFragment(markup)
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	return root
}

func ids(elements []*Element) []string {
	out := make([]string, 0, len(elements))
	for _, el := range elements {
		id, _ := el.Attr("id")
		out = append(out, el.Tag()+"#"+id)
	}
	return out
}

func TestQueryAllDocumentOrder(t *testing.T) {
	root := mustParse(t, sampleMarkup)

	wrappers, err := root.QueryAll(".checkbox-wrapper")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	want := []string{"div#opt-a", "div#opt-b", "span#"}
	if diff := cmp.Diff(want, ids(wrappers)); diff != "" {
		t.Fatalf("wrappers mismatch (-want +got):\n%s", diff)
	}

	inputs, err := root.QueryAll("input")
	if err != nil {
		t.Fatalf("query inputs: %v", err)
	}
	if len(inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(inputs))
	}
}

func TestSelectorGrammar(t *testing.T) {
	root := mustParse(t, sampleMarkup)

	cases := []struct {
		selector string
		want     []string
	}{
		{selector: "div.checkbox-wrapper", want: []string{"div#opt-a", "div#opt-b"}},
		{selector: ".checkbox-wrapper.selected", want: []string{"div#opt-b"}},
		{selector: "#opt-a", want: []string{"div#opt-a"}},
		{selector: `[data-component="team-selection"]`, want: []string{"fieldset#"}},
		{selector: "[data-field]", want: []string{"fieldset#"}},
		{selector: "p .checkbox-wrapper", want: []string{"span#"}},
		{selector: "fieldset div input[value=b]", want: []string{"input#"}},
		{selector: "legend, #opt-b", want: []string{"legend#", "div#opt-b"}},
		{selector: "*.help", want: []string{"p#"}},
		{selector: "fieldset > .checkbox-wrapper", want: []string{"div#opt-a", "div#opt-b"}},
		{selector: "legend + div", want: []string{"div#opt-a"}},
		{selector: "section", want: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.selector, func(t *testing.T) {
			matches, err := root.QueryAll(tc.selector)
			if err != nil {
				t.Fatalf("query %q: %v", tc.selector, err)
			}
			if diff := cmp.Diff(tc.want, ids(matches)); diff != "" {
				t.Fatalf("matches mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileRejectsInvalidSyntax(t *testing.T) {
	for _, raw := range []string{"", "  ", ".", "[", "[data", `[a="b]`, "a,", "div >", "#"} {
		if _, err := Compile(raw); !errors.Is(err, ErrInvalidSelector) {
			t.Fatalf("Compile(%q) error = %v, want ErrInvalidSelector", raw, err)
		}
	}
}

func TestQueryExcludesRoot(t *testing.T) {
	root := mustParse(t, `<div class="checkbox-wrapper"><span></span></div>`)
	outer, err := root.Query("div")
	if err != nil || outer == nil {
		t.Fatalf("query div: %v", err)
	}
	nested, err := outer.QueryAll(".checkbox-wrapper")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(nested) != 0 {
		t.Fatalf("root matched its own query: %v", ids(nested))
	}
}

func TestAttributesAndClasses(t *testing.T) {
	el := NewElement("INPUT")
	if el.Tag() != "input" {
		t.Fatalf("tag = %q", el.Tag())
	}
	el.SetAttr("type", "checkbox")
	el.SetAttr("Type", "radio")
	if got, _ := el.Attr("type"); got != "radio" {
		t.Fatalf("type = %q, want radio", got)
	}
	el.AddClass("a", "b a")
	el.AddClass("b")
	if diff := cmp.Diff([]string{"a", "b"}, el.Classes()); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}
	el.RemoveAttr("type")
	if el.HasAttr("type") {
		t.Fatalf("type attribute not removed")
	}
}

func TestAppendChildMovesNode(t *testing.T) {
	root := mustParse(t, `<div id="a"><span id="s"></span></div><div id="b"></div>`)
	a, _ := root.Query("#a")
	b, _ := root.Query("#b")
	span, _ := root.Query("#s")

	b.AppendChild(span)

	if len(a.Children()) != 0 {
		t.Fatalf("span still attached to #a")
	}
	if !b.LastChild().Same(span) {
		t.Fatalf("span not last child of #b")
	}
	if !span.Parent().Same(b) {
		t.Fatalf("span parent not updated")
	}
}

func TestRenderRoundTrip(t *testing.T) {
	root := mustParse(t, `<p class="x">hi <b>there</b></p>`)
	inner, err := root.InnerHTML()
	if err != nil {
		t.Fatalf("inner html: %v", err)
	}
	if inner != `<p class="x">hi <b>there</b></p>` {
		t.Fatalf("unexpected inner html: %s", inner)
	}
	if got := root.Text(); got != "hi there" {
		t.Fatalf("text = %q", got)
	}
	if !strings.HasPrefix(root.String(), "<div>") {
		t.Fatalf("root should render as div: %s", root.String())
	}
}

func TestSelectorMatchesElement(t *testing.T) {
	root := mustParse(t, sampleMarkup)
	wrapper, err := root.Query("#opt-b")
	if err != nil || wrapper == nil {
		t.Fatalf("query: %v", err)
	}
	if !MustCompile(".checkbox-wrapper.selected").Matches(wrapper) {
		t.Fatalf("expected #opt-b to match")
	}
	if MustCompile("fieldset").Matches(wrapper) {
		t.Fatalf("#opt-b should not match fieldset")
	}
	if (Selector{}).Matches(wrapper) || MustCompile("div").Matches(nil) {
		t.Fatalf("zero selector and nil element never match")
	}
	if got := MustCompile(" div , p ").String(); got != "div , p" {
		t.Fatalf("String() = %q", got)
	}
}
