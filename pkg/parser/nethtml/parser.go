// Package nethtml provides a Parser implementation using golang.org/x/net/html.
package nethtml

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/net/html"

	"github.com/yaklabco/gosemlint/pkg/htmldoc"
)

// Parser implements lint.Parser over the x/net/html tree builder.
//
// HTML5 parsing is deliberately error-tolerant: the tree builder recovers
// from almost any markup the way a browser would. Parse therefore rejects
// only input that cannot sensibly be treated as a text document at all
// (see CheckDecodable); everything else produces a tree for the rules to
// judge.
type Parser struct{}

// New creates a new parser.
func New() *Parser {
	return &Parser{}
}

// Parse converts raw HTML bytes into a DocumentSnapshot.
//
// The method:
//  1. Checks for context cancellation.
//  2. Rejects undecodable input (invalid UTF-8, NUL bytes, tokenizer failure).
//  3. Builds the element tree with the HTML5 parsing algorithm.
//  4. Wraps the tree in a snapshot with a pre-order position index.
//
// The returned snapshot satisfies snapshot.Path == path and
// bytes.Equal(snapshot.Content, content). The content slice is copied so
// later mutation by the caller cannot alias into the snapshot.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*htmldoc.DocumentSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	if err := CheckDecodable(content); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	owned := make([]byte, len(content))
	copy(owned, content)

	root, err := html.Parse(bytes.NewReader(owned))
	if err != nil {
		return nil, fmt.Errorf("%s: parse html: %w", path, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	return htmldoc.NewSnapshot(path, owned, root), nil
}
