package lint

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/yaklabco/gosemlint/pkg/htmldoc"
)

// eventHandlerAttrs are inline attributes indicating the element is
// scripted to behave like a control.
//
//nolint:gochecknoglobals // Immutable lookup table
var eventHandlerAttrs = []string{
	"onclick",
	"ondblclick",
	"onkeydown",
	"onkeyup",
	"onkeypress",
	"onmousedown",
	"onmouseup",
	"ontouchstart",
	"ontouchend",
}

// HasClickHandler returns true if the element carries an inline event
// handler attribute that makes it behave like an interactive control.
func HasClickHandler(n *html.Node) bool {
	for _, attr := range eventHandlerAttrs {
		if htmldoc.HasAttr(n, attr) {
			return true
		}
	}
	return false
}

// NativeElementForRole maps an ARIA widget role to the native element
// that should be used instead, or empty string when there is none.
func NativeElementForRole(role string) string {
	switch strings.ToLower(role) {
	case "button":
		return "button"
	case "link":
		return "a"
	default:
		return ""
	}
}

// SectionHasEarlyHeading reports whether a sectioning element contains a
// heading among its descendants before any nested sectioning element.
//
// The scan is pre-order; the first nested sectioning element closes the
// search window, because headings inside it label the nested scope, not
// this one.
func SectionHasEarlyHeading(section *html.Node) bool {
	found := false
	stopped := false

	var scan func(n *html.Node)
	scan = func(n *html.Node) {
		if found || stopped {
			return
		}
		if htmldoc.IsHeading(n) {
			found = true
			return
		}
		if n != section && htmldoc.IsSectioning(n) {
			stopped = true
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			scan(child)
		}
	}
	scan(section)

	return found
}

// NearestAncestorTag walks parent links looking for an element with the
// given tag and returns it, or nil. The search starts at the immediate
// parent.
func NearestAncestorTag(n *html.Node, tag string) *html.Node {
	if n == nil {
		return nil
	}
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if htmldoc.IsTag(cur, tag) {
			return cur
		}
	}
	return nil
}
