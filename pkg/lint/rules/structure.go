package rules

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/yaklabco/gosemlint/pkg/config"
	"github.com/yaklabco/gosemlint/pkg/htmldoc"
	"github.com/yaklabco/gosemlint/pkg/lint"
)

// DuplicateIDRule checks that id attribute values are unique.
type DuplicateIDRule struct {
	lint.BaseRule
}

// NewDuplicateIDRule creates a new no-duplicate-id rule.
func NewDuplicateIDRule() *DuplicateIDRule {
	return &DuplicateIDRule{
		BaseRule: lint.NewBaseRule(
			"SEM009",
			"no-duplicate-id",
			"id attribute values must be unique within a document",
			[]string{"structure"},
			config.SeverityError,
		),
	}
}

// Apply flags every element whose id repeats an earlier one. Fragment
// links and label/for associations silently resolve to the first
// occurrence, so only the later elements are reported.
func (r *DuplicateIDRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	seen := make(map[string]bool)
	var diags []lint.Diagnostic

	err := htmldoc.WalkElements(ctx.Root, func(n *html.Node) error {
		if ctx.Cancelled() {
			return ctx.Ctx.Err()
		}

		id := strings.TrimSpace(htmldoc.AttrValue(n, "id"))
		if id == "" {
			return nil
		}
		if !seen[id] {
			seen[id] = true
			return nil
		}

		diag := lint.NewDiagnostic(r.ID(), ctx.Document, n,
			fmt.Sprintf("Duplicate id %q", id)).
			WithSuggestion("Rename the id; fragment links and labels resolve to the first occurrence only").
			Build()
		diags = append(diags, diag)
		return nil
	})

	return diags, err
}

// ListStructureRule checks that lists contain only list items.
type ListStructureRule struct {
	lint.BaseRule
}

// NewListStructureRule creates a new list-structure rule.
func NewListStructureRule() *ListStructureRule {
	return &ListStructureRule{
		BaseRule: lint.NewBaseRule(
			"SEM010",
			"list-structure",
			"<ul> and <ol> must contain only <li> element children",
			[]string{"structure"},
			config.SeverityWarning,
		),
	}
}

// allowedListChildren are non-li children the HTML spec permits inside
// list containers.
//
//nolint:gochecknoglobals // Immutable lookup table
var allowedListChildren = map[string]bool{
	"li":       true,
	"script":   true,
	"template": true,
}

// Apply flags element children of <ul>/<ol> that are not list items.
// Assistive technology announces list size from the li count; stray
// children break that count.
func (r *ListStructureRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	for _, tag := range []string{"ul", "ol"} {
		for _, list := range htmldoc.ElementsByTag(ctx.Root, tag) {
			if ctx.Cancelled() {
				return diags, ctx.Ctx.Err()
			}

			for _, child := range htmldoc.ElementChildren(list) {
				childTag := htmldoc.TagName(child)
				if allowedListChildren[childTag] {
					continue
				}

				diag := lint.NewDiagnostic(r.ID(), ctx.Document, child,
					fmt.Sprintf("<%s> is not a valid child of <%s>", childTag, tag)).
					WithSuggestion("Wrap it in an <li>, or move it outside the list").
					Build()
				diags = append(diags, diag)
			}
		}
	}

	return diags, nil
}
