package htmldoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// parse builds a tree for query and path tests.
func parse(t *testing.T, input string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(input))
	require.NoError(t, err)
	return root
}
