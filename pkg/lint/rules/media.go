package rules

import (
	"github.com/yaklabco/gosemlint/pkg/config"
	"github.com/yaklabco/gosemlint/pkg/htmldoc"
	"github.com/yaklabco/gosemlint/pkg/lint"
)

// ImgAltRule checks that images declare alternative text.
type ImgAltRule struct {
	lint.BaseRule
}

// NewImgAltRule creates a new img-alt rule.
func NewImgAltRule() *ImgAltRule {
	return &ImgAltRule{
		BaseRule: lint.NewBaseRule(
			"SEM007",
			"img-alt",
			"Images must declare an alt attribute",
			[]string{"media", "accessibility"},
			config.SeverityError,
		),
	}
}

// Apply flags <img> elements with no alt attribute at all. An explicit
// empty alt is allowed: it marks the image as decorative and tells
// assistive technology to skip it.
func (r *ImgAltRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	for _, img := range htmldoc.ElementsByTag(ctx.Root, "img") {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		if htmldoc.HasAttr(img, "alt") {
			continue
		}
		if htmldoc.Role(img) == "presentation" || htmldoc.Role(img) == "none" {
			continue
		}

		diag := lint.NewDiagnostic(r.ID(), ctx.Document, img,
			"<img> has no alt attribute").
			WithSuggestion(`Describe the image in alt, or use alt="" for purely decorative images`).
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}
