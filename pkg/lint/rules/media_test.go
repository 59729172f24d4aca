package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImgAltRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
	}{
		{
			name:      "img with alt",
			input:     `<img src="cat.png" alt="A cat">`,
			wantDiags: 0,
		},
		{
			name:      "decorative img with empty alt",
			input:     `<img src="divider.png" alt="">`,
			wantDiags: 0,
		},
		{
			name:      "img with no alt",
			input:     `<img src="cat.png">`,
			wantDiags: 1,
		},
		{
			name:      "presentation role exempt",
			input:     `<img src="divider.png" role="presentation">`,
			wantDiags: 0,
		},
		{
			name:      "none role exempt",
			input:     `<img src="divider.png" role="none">`,
			wantDiags: 0,
		},
		{
			name:      "two missing alts",
			input:     `<img src="a.png"><img src="b.png">`,
			wantDiags: 2,
		},
		{
			name:      "no images",
			input:     `<p>text only</p>`,
			wantDiags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewImgAltRule()
			diags := applyRule(t, rule, tt.input, nil)
			assert.Len(t, diags, tt.wantDiags)
		})
	}
}
