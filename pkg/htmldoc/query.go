package htmldoc

import (
	"strings"

	"golang.org/x/net/html"
)

// Element category sets. Keys are lowercase tag names.
//
//nolint:gochecknoglobals // Immutable lookup tables
var (
	landmarkTags = map[string]bool{
		"header": true,
		"nav":    true,
		"main":   true,
		"aside":  true,
		"footer": true,
	}

	sectioningTags = map[string]bool{
		"article": true,
		"section": true,
		"nav":     true,
		"aside":   true,
	}

	headingTags = map[string]bool{
		"h1": true,
		"h2": true,
		"h3": true,
		"h4": true,
		"h5": true,
		"h6": true,
	}
)

// IsElement returns true if the node is an element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// TagName returns the lowercase tag name of an element, or empty string
// for non-element nodes.
func TagName(n *html.Node) string {
	if !IsElement(n) {
		return ""
	}
	return strings.ToLower(n.Data)
}

// IsTag returns true if the node is an element with the given tag name.
func IsTag(n *html.Node, tag string) bool {
	return TagName(n) == tag
}

// IsLandmark returns true if the element is a landmark region
// (header, nav, main, aside, footer).
func IsLandmark(n *html.Node) bool {
	return landmarkTags[TagName(n)]
}

// IsSectioning returns true if the element establishes its own outline
// scope (article, section, nav, aside).
func IsSectioning(n *html.Node) bool {
	return sectioningTags[TagName(n)]
}

// IsHeading returns true if the element is h1 through h6.
func IsHeading(n *html.Node) bool {
	return headingTags[TagName(n)]
}

// HeadingLevel returns the level of a heading element (1-6), or 0 for
// anything else.
func HeadingLevel(n *html.Node) int {
	tag := TagName(n)
	if !headingTags[tag] {
		return 0
	}
	return int(tag[1] - '0')
}

// Attr returns the value of the named attribute and whether it is present.
// Attribute names are matched case-insensitively; the first occurrence
// wins, matching how browsers resolve duplicate attributes.
func Attr(n *html.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// AttrValue returns the attribute value, or empty string if absent.
func AttrValue(n *html.Node, name string) string {
	val, _ := Attr(n, name)
	return val
}

// HasAttr returns true if the element carries the named attribute.
func HasAttr(n *html.Node, name string) bool {
	_, ok := Attr(n, name)
	return ok
}

// Role returns the lowercase ARIA role of the element, or empty string.
func Role(n *html.Node) string {
	return strings.ToLower(strings.TrimSpace(AttrValue(n, "role")))
}

// ElementsByTag returns all elements with the given tag name, in
// document order.
func ElementsByTag(root *html.Node, tag string) []*html.Node {
	var out []*html.Node
	WalkElements(root, func(n *html.Node) error {
		if TagName(n) == tag {
			out = append(out, n)
		}
		return nil
	})
	return out
}

// FirstByTag returns the first element with the given tag name in
// document order, or nil.
func FirstByTag(root *html.Node, tag string) *html.Node {
	var found *html.Node
	errStop := stopWalk{}
	_ = Walk(root, func(n *html.Node) error {
		if TagName(n) == tag {
			found = n
			return errStop
		}
		return nil
	})
	return found
}

// Headings returns all heading elements (h1-h6) in document order.
func Headings(root *html.Node) []*html.Node {
	var out []*html.Node
	WalkElements(root, func(n *html.Node) error {
		if IsHeading(n) {
			out = append(out, n)
		}
		return nil
	})
	return out
}

// ElementChildren returns the direct element children of a node.
func ElementChildren(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var out []*html.Node
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			out = append(out, child)
		}
	}
	return out
}

// TextContent returns the concatenated text of the node's descendants.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	Walk(n, func(node *html.Node) error {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		return nil
	})
	return sb.String()
}

// stopWalk is a sentinel error used to terminate a walk early.
type stopWalk struct{}

func (stopWalk) Error() string { return "stop walk" }
