package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gosemlint/pkg/config"
	"github.com/yaklabco/gosemlint/pkg/htmldoc"
	"github.com/yaklabco/gosemlint/pkg/lint"
)

// InteractiveDivRule checks that generic containers are not scripted
// into controls.
type InteractiveDivRule struct {
	lint.BaseRule
}

// NewInteractiveDivRule creates a new no-interactive-div rule.
func NewInteractiveDivRule() *InteractiveDivRule {
	return &InteractiveDivRule{
		BaseRule: lint.NewBaseRule(
			"SEM005",
			"no-interactive-div",
			"<div> and <span> must not stand in for native interactive elements",
			[]string{"interactive", "accessibility"},
			config.SeverityError,
		),
	}
}

// Apply flags <div> and <span> elements that carry an inline click
// handler or a button/link widget role. Native elements bring keyboard
// focus and activation for free; a scripted div brings neither.
func (r *InteractiveDivRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	for _, tag := range []string{"div", "span"} {
		for _, el := range htmldoc.ElementsByTag(ctx.Root, tag) {
			if ctx.Cancelled() {
				return diags, ctx.Ctx.Err()
			}

			role := htmldoc.Role(el)
			native := lint.NativeElementForRole(role)
			scripted := lint.HasClickHandler(el)

			if native == "" && !scripted {
				continue
			}

			var msg, suggestion string
			switch {
			case native != "":
				msg = fmt.Sprintf("<%s role=%q> used instead of a native <%s>", tag, role, native)
				suggestion = fmt.Sprintf("Replace with <%s>; it is focusable and keyboard-operable by default", native)
			default:
				msg = fmt.Sprintf("<%s> carries a click handler but is not an interactive element", tag)
				suggestion = "Use <button> (or <a href> for navigation) instead"
			}

			diag := lint.NewDiagnostic(r.ID(), ctx.Document, el, msg).
				WithSuggestion(suggestion).
				Build()
			diags = append(diags, diag)
		}
	}

	return diags, nil
}

// AnchorHrefRule checks that anchors scripted as controls have a real
// destination.
type AnchorHrefRule struct {
	lint.BaseRule
}

// NewAnchorHrefRule creates a new anchor-href rule.
func NewAnchorHrefRule() *AnchorHrefRule {
	return &AnchorHrefRule{
		BaseRule: lint.NewBaseRule(
			"SEM008",
			"anchor-href",
			"Scripted <a> elements should have a real href destination",
			[]string{"interactive", "accessibility"},
			config.SeverityWarning,
		),
	}
}

// Apply flags <a> elements that carry a click handler while having no
// href, an empty href, or the href="#" placeholder. Such anchors are
// buttons in disguise.
func (r *AnchorHrefRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	for _, anchor := range htmldoc.ElementsByTag(ctx.Root, "a") {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		if !lint.HasClickHandler(anchor) {
			continue
		}

		href, ok := htmldoc.Attr(anchor, "href")
		href = strings.TrimSpace(href)
		if ok && href != "" && href != "#" {
			continue
		}

		diag := lint.NewDiagnostic(r.ID(), ctx.Document, anchor,
			"<a> with a click handler has no real destination").
			WithSuggestion("Use <button> for actions; reserve <a href> for navigation").
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}
