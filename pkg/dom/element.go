package dom

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is a mutable handle over an HTML element (or document) node.
type Element struct {
	node *html.Node
}

// NewElement constructs a detached element with the given tag and attributes.
func NewElement(tag string, attrs ...html.Attribute) *Element {
	tag = strings.ToLower(strings.TrimSpace(tag))
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if len(attrs) > 0 {
		node.Attr = slices.Clone(attrs)
	}
	return &Element{node: node}
}

// ParseFragment parses markup as the content of a synthetic <div> and returns
// that div. The root is detached so callers own the whole tree.
func ParseFragment(markup string) (*Element, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("dom: parse fragment: %w", err)
	}
	root := NewElement("div")
	for _, node := range nodes {
		root.node.AppendChild(node)
	}
	return root, nil
}

// Node exposes the wrapped node for interop with golang.org/x/net/html.
func (e *Element) Node() *html.Node {
	if e == nil {
		return nil
	}
	return e.node
}

// Tag returns the lowercase tag name, or an empty string for non-element nodes.
func (e *Element) Tag() string {
	if e == nil || e.node.Type != html.ElementNode {
		return ""
	}
	return e.node.Data
}

// Attr returns the attribute value and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	if e == nil {
		return "", false
	}
	return attrValue(e.node, strings.ToLower(key))
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(key string) bool {
	_, ok := e.Attr(key)
	return ok
}

// SetAttr replaces or appends the attribute.
func (e *Element) SetAttr(key, value string) {
	if e == nil {
		return
	}
	key = strings.ToLower(key)
	for idx := range e.node.Attr {
		attr := &e.node.Attr[idx]
		if attr.Namespace == "" && attr.Key == key {
			attr.Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttr deletes the attribute when present.
func (e *Element) RemoveAttr(key string) {
	if e == nil {
		return
	}
	key = strings.ToLower(key)
	e.node.Attr = slices.DeleteFunc(e.node.Attr, func(attr html.Attribute) bool {
		return attr.Namespace == "" && attr.Key == key
	})
}

// Classes returns the class tokens in declaration order.
func (e *Element) Classes() []string {
	value, _ := e.Attr("class")
	return strings.Fields(value)
}

// HasClass reports whether the class token is present.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.Classes(), name)
}

// AddClass appends class tokens that are not already present.
func (e *Element) AddClass(names ...string) {
	if e == nil {
		return
	}
	classes := e.Classes()
	changed := false
	for _, name := range names {
		for _, token := range strings.Fields(name) {
			if slices.Contains(classes, token) {
				continue
			}
			classes = append(classes, token)
			changed = true
		}
	}
	if changed {
		e.SetAttr("class", strings.Join(classes, " "))
	}
}

// AppendChild moves child to the end of e's children, detaching it from any
// previous parent first.
func (e *Element) AppendChild(child *Element) {
	if e == nil || child == nil {
		return
	}
	if parent := child.node.Parent; parent != nil {
		parent.RemoveChild(child.node)
	}
	e.node.AppendChild(child.node)
}

// AppendText appends a text node.
func (e *Element) AppendText(text string) {
	if e == nil {
		return
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Parent returns the parent element, or nil for roots.
func (e *Element) Parent() *Element {
	if e == nil || e.node.Parent == nil {
		return nil
	}
	parent := e.node.Parent
	if parent.Type != html.ElementNode && parent.Type != html.DocumentNode {
		return nil
	}
	return &Element{node: parent}
}

// Children returns the direct element children in document order.
func (e *Element) Children() []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for child := e.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			out = append(out, &Element{node: child})
		}
	}
	return out
}

// LastChild returns the last element child, or nil.
func (e *Element) LastChild() *Element {
	if e == nil {
		return nil
	}
	for child := e.node.LastChild; child != nil; child = child.PrevSibling {
		if child.Type == html.ElementNode {
			return &Element{node: child}
		}
	}
	return nil
}

// Text returns the concatenated text content of the subtree.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	var builder strings.Builder
	walk(e.node, func(node *html.Node) {
		if node.Type == html.TextNode {
			builder.WriteString(node.Data)
		}
	})
	return builder.String()
}

// Same reports whether both handles point at the same node.
func (e *Element) Same(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.node == other.node
}

// Render writes the element and its subtree as HTML.
func (e *Element) Render(w io.Writer) error {
	if e == nil {
		return nil
	}
	return html.Render(w, e.node)
}

// InnerHTML renders only the children of the element.
func (e *Element) InnerHTML() (string, error) {
	if e == nil {
		return "", nil
	}
	var buf bytes.Buffer
	for child := e.node.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&buf, child); err != nil {
			return "", fmt.Errorf("dom: render child: %w", err)
		}
	}
	return buf.String(), nil
}

// String renders the element, returning an empty string on render failure.
func (e *Element) String() string {
	var buf bytes.Buffer
	if err := e.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func attrValue(node *html.Node, key string) (string, bool) {
	for _, attr := range node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

func walk(node *html.Node, visit func(*html.Node)) {
	visit(node)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		walk(child, visit)
	}
}
