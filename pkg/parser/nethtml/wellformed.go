package nethtml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// ErrMalformedInput indicates input that cannot be decoded as an HTML
// text document. Callers can use errors.Is to map it to an exit status.
var ErrMalformedInput = errors.New("malformed input")

// CheckDecodable verifies the input can be treated as an HTML document.
//
// It rejects invalid UTF-8, embedded NUL bytes (a strong signal of binary
// content), and any hard tokenizer failure. It does not enforce tag
// balance: the HTML5 algorithm defines recovery for unbalanced markup,
// and that recovered tree is exactly what the rules should see.
func CheckDecodable(content []byte) error {
	if !utf8.Valid(content) {
		return fmt.Errorf("%w: invalid UTF-8", ErrMalformedInput)
	}
	if bytes.IndexByte(content, 0) >= 0 {
		return fmt.Errorf("%w: NUL byte in input", ErrMalformedInput)
	}

	tokenizer := html.NewTokenizer(bytes.NewReader(content))
	for {
		if tokenizer.Next() == html.ErrorToken {
			err := tokenizer.Err()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	}
}
