// Package dom wraps golang.org/x/net/html nodes in a small mutable element
// handle so field decorators can progressively enhance server-rendered markup
// without a browser. The handle covers what decorators need: attribute and
// class manipulation, child insertion, and descendant queries using a compact
// CSS selector subset (type, class, id, and attribute selectors joined by the
// descendant combinator, grouped with commas).
//
// Elements never copy the underlying tree. Mutations through one handle are
// visible through every other handle that shares the node, and rendering
// reflects the current state of the subtree.
package dom
