package rules

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/yaklabco/gosemlint/pkg/config"
	"github.com/yaklabco/gosemlint/pkg/htmldoc"
	"github.com/yaklabco/gosemlint/pkg/lint"
)

// HeadingIncrementRule checks that heading levels increment by one.
type HeadingIncrementRule struct {
	lint.BaseRule
}

// NewHeadingIncrementRule creates a new heading increment rule.
func NewHeadingIncrementRule() *HeadingIncrementRule {
	return &HeadingIncrementRule{
		BaseRule: lint.NewBaseRule(
			"SEM003",
			"heading-increment",
			"Heading levels should only increment by one level at a time",
			[]string{"headings"},
			config.SeverityError,
		),
	}
}

// Apply checks that heading levels increase by at most one across the
// document in source order. The first heading may be any level;
// decreasing levels are always allowed.
func (r *HeadingIncrementRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	headings := ctx.Headings()
	if len(headings) == 0 {
		return nil, nil
	}

	var diags []lint.Diagnostic
	var prevLevel int

	for _, heading := range headings {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		level := htmldoc.HeadingLevel(heading)
		if level == 0 {
			continue
		}

		if prevLevel > 0 && level > prevLevel+1 {
			diag := lint.NewDiagnostic(r.ID(), ctx.Document, heading,
				fmt.Sprintf("Heading level jumped from h%d to h%d", prevLevel, level)).
				WithSuggestion(fmt.Sprintf("Use <h%d> instead", prevLevel+1)).
				Build()
			diags = append(diags, diag)
		}

		prevLevel = level
	}

	return diags, nil
}

// SingleH1Rule checks that there is at most one <h1> in a document.
type SingleH1Rule struct {
	lint.BaseRule
}

// NewSingleH1Rule creates a new single h1 rule.
func NewSingleH1Rule() *SingleH1Rule {
	return &SingleH1Rule{
		BaseRule: lint.NewBaseRule(
			"SEM011",
			"single-h1",
			"Multiple top-level headings in the same document",
			[]string{"headings"},
			config.SeverityWarning,
		),
	}
}

// Apply flags every <h1> after the first. A document with no <h1> is
// allowed by default; set require_h1 to demand one.
func (r *SingleH1Rule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	requireH1 := ctx.OptionBool("require_h1", false)

	var h1s []*html.Node
	for _, heading := range ctx.Headings() {
		if htmldoc.HeadingLevel(heading) == 1 {
			h1s = append(h1s, heading)
		}
	}

	var diags []lint.Diagnostic

	if requireH1 && len(h1s) == 0 {
		diag := lint.NewDocumentDiagnostic(r.ID(), ctx.Document,
			"Document should have an <h1> heading").
			WithSuggestion("Add a single <h1> naming the page").
			Build()
		diags = append(diags, diag)
	}

	for i := 1; i < len(h1s); i++ {
		diag := lint.NewDiagnostic(r.ID(), ctx.Document, h1s[i],
			fmt.Sprintf("Multiple <h1> headings found (this is h1 #%d)", i+1)).
			WithSuggestion("Use <h2> or lower for subsequent headings").
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}
