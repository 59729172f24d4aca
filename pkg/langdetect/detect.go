// Package langdetect decides whether file content is HTML.
// It uses go-enry plus a few cheap structural checks, primarily so
// discovery can pick up extensionless files (CGI output, templates
// rendered to disk, downloaded pages).
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// sniffLimit bounds how much content the structural checks look at.
const sniffLimit = 4096

// IsHTML reports whether the content looks like an HTML document.
func IsHTML(content []byte) bool {
	if len(content) == 0 {
		return false
	}

	head := content
	if len(head) > sniffLimit {
		head = head[:sniffLimit]
	}

	// Strategy 1: unambiguous document markers.
	if hasDocumentMarker(head) {
		return true
	}

	// Strategy 2: the enry classifier, constrained to plausible candidates.
	candidates := []string{"HTML", "XML", "Markdown", "Text", "JavaScript", "CSS", "JSON"}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe {
		return strings.EqualFold(lang, "HTML")
	}

	return false
}

// hasDocumentMarker checks for markers that only HTML documents carry.
func hasDocumentMarker(head []byte) bool {
	lower := bytes.ToLower(bytes.TrimSpace(head))

	for _, marker := range [][]byte{
		[]byte("<!doctype html"),
		[]byte("<html"),
		[]byte("<head"),
		[]byte("<body"),
	} {
		if bytes.Contains(lower, marker) {
			return true
		}
	}
	return false
}
