package nethtml

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gosemlint/pkg/htmldoc"
)

func TestParseValidDocument(t *testing.T) {
	parser := New()
	content := []byte("<!DOCTYPE html><html><body><main><h1>Hi</h1></main></body></html>")

	snapshot, err := parser.Parse(context.Background(), "page.html", content)
	require.NoError(t, err)

	assert.Equal(t, "page.html", snapshot.Path)
	assert.Equal(t, content, snapshot.Content)
	require.NotNil(t, snapshot.Root)
	assert.NotNil(t, htmldoc.FirstByTag(snapshot.Root, "main"))
	assert.NotNil(t, htmldoc.FirstByTag(snapshot.Root, "h1"))
}

func TestParseCopiesContent(t *testing.T) {
	parser := New()
	content := []byte("<p>original</p>")

	snapshot, err := parser.Parse(context.Background(), "page.html", content)
	require.NoError(t, err)

	content[1] = 'q'
	assert.Equal(t, byte('p'), snapshot.Content[1])
}

func TestParseToleratesUnbalancedMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed tags", "<div><p>never closed"},
		{"stray close tags", "</div></p>text"},
		{"misnested inline", "<b><i>bold italic</b></i>"},
		{"empty input", ""},
		{"plain text", "no markup at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := New().Parse(context.Background(), "test.html", []byte(tt.input))
			require.NoError(t, err)
			// HTML5 recovery always yields html/head/body.
			assert.NotNil(t, htmldoc.FirstByTag(snapshot.Root, "body"))
		})
	}
}

func TestParseRejectsUndecodableInput(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{"invalid utf8", []byte{'<', 'p', '>', 0xff, 0xfe}},
		{"nul byte", []byte("<p>x\x00y</p>")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Parse(context.Background(), "bad.html", tt.content)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedInput)
			assert.Contains(t, err.Error(), "bad.html")
		})
	}
}

func TestParseCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Parse(ctx, "test.html", []byte("<p>x</p>"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckDecodable(t *testing.T) {
	assert.NoError(t, CheckDecodable([]byte("<p>fine</p>")))
	assert.NoError(t, CheckDecodable([]byte("")))
	assert.NoError(t, CheckDecodable([]byte("plain text")))
	assert.Error(t, CheckDecodable([]byte{0xff}))
	assert.Error(t, CheckDecodable([]byte{'a', 0x00, 'b'}))
}
