// Package htmldoc provides the parsed-document model for gosemlint.
//
// A DocumentSnapshot wraps the element tree produced by the HTML parser
// together with the raw source bytes and a pre-order position index. The
// snapshot is owned by a single analysis run and is never mutated after
// construction; rules only read from it.
package htmldoc

import (
	"golang.org/x/net/html"
)

// DocumentSnapshot is an immutable view of one parsed HTML document.
type DocumentSnapshot struct {
	// Path is the logical source path (for diagnostics only).
	Path string

	// Content is the raw document bytes.
	Content []byte

	// Root is the root of the parsed tree (an html.DocumentNode).
	Root *html.Node

	// positions maps each element to its pre-order index in the tree.
	positions map[*html.Node]int
}

// NewSnapshot builds a snapshot around a parsed tree.
// The position index covers element nodes only.
func NewSnapshot(path string, content []byte, root *html.Node) *DocumentSnapshot {
	snap := &DocumentSnapshot{
		Path:      path,
		Content:   content,
		Root:      root,
		positions: make(map[*html.Node]int),
	}

	idx := 0
	WalkElements(root, func(n *html.Node) error {
		snap.positions[n] = idx
		idx++
		return nil
	})

	return snap
}

// Position returns the pre-order index of an element within the document,
// or -1 if the node is not an element of this snapshot. Used to order
// diagnostics by document position.
func (s *DocumentSnapshot) Position(n *html.Node) int {
	if s == nil || n == nil {
		return -1
	}
	if pos, ok := s.positions[n]; ok {
		return pos
	}
	return -1
}

// ElementCount returns the number of elements in the document.
func (s *DocumentSnapshot) ElementCount() int {
	if s == nil {
		return 0
	}
	return len(s.positions)
}

// Body returns the <body> element, or nil if the tree has none.
func (s *DocumentSnapshot) Body() *html.Node {
	if s == nil {
		return nil
	}
	return FirstByTag(s.Root, "body")
}
