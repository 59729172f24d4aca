package rules

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/yaklabco/gosemlint/pkg/config"
	"github.com/yaklabco/gosemlint/pkg/htmldoc"
	"github.com/yaklabco/gosemlint/pkg/lint"
)

// SectionHeadingRule checks that every <section> is labelled by a heading.
type SectionHeadingRule struct {
	lint.BaseRule
}

// NewSectionHeadingRule creates a new section-heading rule.
func NewSectionHeadingRule() *SectionHeadingRule {
	return &SectionHeadingRule{
		BaseRule: lint.NewBaseRule(
			"SEM004",
			"section-heading",
			"A <section> should contain a heading before any nested sectioning element",
			[]string{"headings", "sections"},
			config.SeverityWarning,
		),
	}
}

// Apply flags sections whose own outline scope contains no heading.
// Headings inside a nested sectioning element label the nested scope,
// so the search stops at the first one.
func (r *SectionHeadingRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	for _, section := range htmldoc.ElementsByTag(ctx.Root, "section") {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		if lint.SectionHasEarlyHeading(section) {
			continue
		}

		diag := lint.NewDiagnostic(r.ID(), ctx.Document, section,
			"<section> has no heading to label it").
			WithSuggestion("Add an <h2>-<h6> as the section's first content, or use <div> for an unlabelled grouping").
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}

// ArticleInParagraphRule checks that <article> is never authored inside <p>.
type ArticleInParagraphRule struct {
	lint.BaseRule
}

// NewArticleInParagraphRule creates a new article-in-paragraph rule.
func NewArticleInParagraphRule() *ArticleInParagraphRule {
	return &ArticleInParagraphRule{
		BaseRule: lint.NewBaseRule(
			"SEM006",
			"article-in-paragraph",
			"<article> must not be nested directly inside a <p> element",
			[]string{"nesting", "sections"},
			config.SeverityError,
		),
	}
}

// pClosingTags are start tags that imply the end of an open <p> per the
// HTML parsing algorithm.
//
//nolint:gochecknoglobals // Immutable lookup table
var pClosingTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"details": true, "div": true, "dl": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hgroup": true, "hr": true, "main": true, "menu": true,
	"nav": true, "ol": true, "p": true, "pre": true, "section": true,
	"table": true, "ul": true,
}

// Apply detects <article> start tags authored inside an open <p>.
//
// The tree builder silently repairs this mistake by auto-closing the
// paragraph, so the parsed tree never shows the bad nesting. The rule
// therefore scans the token stream for an <article> start tag inside an
// open paragraph, then anchors the finding at the corresponding article
// element in the repaired tree (token order and tree order agree).
func (r *ArticleInParagraphRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Document == nil || len(ctx.Document.Content) == 0 {
		return nil, nil
	}

	badOrdinals := articlesInsideParagraphs(ctx.Document.Content)
	if len(badOrdinals) == 0 {
		return nil, nil
	}

	articles := htmldoc.ElementsByTag(ctx.Root, "article")

	var diags []lint.Diagnostic
	for _, ordinal := range badOrdinals {
		var node *html.Node
		if ordinal < len(articles) {
			node = articles[ordinal]
		}
		diag := lint.NewDiagnostic(r.ID(), ctx.Document, node,
			"<article> opened inside a <p>; the paragraph was implicitly closed").
			WithSuggestion("Close the paragraph before the article, or wrap the text in the article instead").
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}

// articlesInsideParagraphs tokenizes content and returns the 0-based
// ordinals of <article> start tags that appear while a <p> is open.
func articlesInsideParagraphs(content []byte) []int {
	tokenizer := html.NewTokenizer(strings.NewReader(string(content)))

	var bad []int
	articleOrdinal := -1
	pOpen := false

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return bad
		case html.StartTagToken, html.SelfClosingTagToken:
			// A self-closing slash on a non-void element like <article/> is
			// ignored by the tree builder; the token still opens an element.
			name, _ := tokenizer.TagName()
			tag := strings.ToLower(string(name))
			if tag == "article" {
				articleOrdinal++
				if pOpen {
					bad = append(bad, articleOrdinal)
				}
			}
			if pClosingTags[tag] {
				pOpen = tag == "p"
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if strings.EqualFold(string(name), "p") {
				pOpen = false
			}
		default:
		}
	}
}
