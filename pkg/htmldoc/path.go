package htmldoc

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// ElementPath returns a rooted, slash-separated path identifying an
// element within its document, e.g. "/html/body/div[2]/h3".
//
// Each segment is the lowercase tag name; a 1-based index is appended
// when the element has siblings with the same tag, and omitted when it
// is the only one. The path is stable for an unchanged document and can
// be recomputed from any node via its parent back-references.
func ElementPath(n *html.Node) string {
	if !IsElement(n) {
		return ""
	}

	var segments []string
	for cur := n; cur != nil && cur.Type == html.ElementNode; cur = cur.Parent {
		segments = append(segments, pathSegment(cur))
	}

	// Segments were collected leaf-first.
	var sb strings.Builder
	for i := len(segments) - 1; i >= 0; i-- {
		sb.WriteByte('/')
		sb.WriteString(segments[i])
	}
	return sb.String()
}

// pathSegment returns the path component for a single element.
func pathSegment(n *html.Node) string {
	tag := TagName(n)

	index := 0
	sameTag := 0
	for sib := firstElementSibling(n); sib != nil; sib = nextElementSibling(sib) {
		if TagName(sib) == tag {
			sameTag++
			if sib == n {
				index = sameTag
			}
		}
	}

	if sameTag <= 1 {
		return tag
	}
	return tag + "[" + strconv.Itoa(index) + "]"
}

func firstElementSibling(n *html.Node) *html.Node {
	if n.Parent == nil {
		return n
	}
	for child := n.Parent.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			return child
		}
	}
	return nil
}

func nextElementSibling(n *html.Node) *html.Node {
	for sib := n.NextSibling; sib != nil; sib = sib.NextSibling {
		if sib.Type == html.ElementNode {
			return sib
		}
	}
	return nil
}
