package rules

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/yaklabco/gosemlint/pkg/config"
	"github.com/yaklabco/gosemlint/pkg/htmldoc"
	"github.com/yaklabco/gosemlint/pkg/lint"
)

// SingleMainRule checks that a document has at most one <main> landmark.
type SingleMainRule struct {
	lint.BaseRule
}

// NewSingleMainRule creates a new single-main rule.
func NewSingleMainRule() *SingleMainRule {
	return &SingleMainRule{
		BaseRule: lint.NewBaseRule(
			"SEM001",
			"single-main",
			"A page must contain at most one <main> landmark",
			[]string{"landmarks"},
			config.SeverityError,
		),
	}
}

// Apply reports one finding, anchored at the second <main>, when the
// document has more than one visible <main> landmark.
func (r *SingleMainRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	// <main hidden> is the documented pattern for swapping content
	// regions in and out, so hidden mains don't count by default.
	ignoreHidden := ctx.OptionBool("ignore_hidden", true)

	var mains []*html.Node
	for _, m := range htmldoc.ElementsByTag(ctx.Root, "main") {
		if ignoreHidden && htmldoc.HasAttr(m, "hidden") {
			continue
		}
		mains = append(mains, m)
	}

	if len(mains) <= 1 {
		return nil, nil
	}

	diag := lint.NewDiagnostic(r.ID(), ctx.Document, mains[1],
		fmt.Sprintf("Found %d <main> landmarks; a page must have exactly one", len(mains))).
		WithSuggestion("Keep one <main> and convert the others to <section> or <div>").
		Build()

	return []lint.Diagnostic{diag}, nil
}

// LandmarkPresenceRule checks that the document declares at least one
// primary landmark.
type LandmarkPresenceRule struct {
	lint.BaseRule
}

// NewLandmarkPresenceRule creates a new landmark-presence rule.
func NewLandmarkPresenceRule() *LandmarkPresenceRule {
	return &LandmarkPresenceRule{
		BaseRule: lint.NewBaseRule(
			"SEM002",
			"landmark-presence",
			"A page should declare a <main> or <header> landmark",
			[]string{"landmarks"},
			config.SeverityError,
		),
	}
}

// Apply reports a document-level finding when the page has neither a
// <main> nor a <header> landmark. This is the only finding an empty
// document can produce.
func (r *LandmarkPresenceRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	if htmldoc.FirstByTag(ctx.Root, "main") != nil ||
		htmldoc.FirstByTag(ctx.Root, "header") != nil {
		return nil, nil
	}

	diag := lint.NewDocumentDiagnostic(r.ID(), ctx.Document,
		"Document has no <main> and no <header> landmark").
		WithSuggestion("Wrap the primary content in <main> and the masthead in <header>").
		Build()

	return []lint.Diagnostic{diag}, nil
}
