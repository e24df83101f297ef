package dom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ErrInvalidSelector reports a selector cascadia cannot parse.
var ErrInvalidSelector = errors.New("dom: invalid selector")

// Selector is a compiled CSS selector group.
type Selector struct {
	raw   string
	match cascadia.Selector
}

// Compile parses a selector group.
func Compile(raw string) (Selector, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Selector{}, fmt.Errorf("%w: empty selector", ErrInvalidSelector)
	}
	match, err := cascadia.Compile(trimmed)
	if err != nil {
		return Selector{}, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, trimmed, err)
	}
	return Selector{raw: trimmed, match: match}, nil
}

// MustCompile mirrors Compile but panics on error.
func MustCompile(raw string) Selector {
	sel, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return sel
}

// String returns the source text of the selector.
func (s Selector) String() string {
	return s.raw
}

// Matches reports whether the element itself satisfies the selector.
func (s Selector) Matches(e *Element) bool {
	if e == nil || s.match == nil || e.node.Type != html.ElementNode {
		return false
	}
	return s.match.Match(e.node)
}

// Select returns every descendant of e matching sel, in document order. The
// element itself is never part of the result.
func (e *Element) Select(sel Selector) []*Element {
	if e == nil || sel.match == nil {
		return nil
	}
	var out []*Element
	for child := e.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		for _, node := range sel.match.MatchAll(child) {
			out = append(out, &Element{node: node})
		}
	}
	return out
}

// QueryAll compiles raw and returns the matching descendants.
func (e *Element) QueryAll(raw string) ([]*Element, error) {
	sel, err := Compile(raw)
	if err != nil {
		return nil, err
	}
	return e.Select(sel), nil
}

// Query returns the first matching descendant or nil.
func (e *Element) Query(raw string) (*Element, error) {
	matches, err := e.QueryAll(raw)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}
