// Package lint provides the rule engine, diagnostics, and registry for gosemlint.
package lint

import (
	"github.com/yaklabco/gosemlint/pkg/config"
)

// Diagnostic represents a single semantic issue found in a document.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "single-main").
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path to the document containing the issue.
	FilePath string

	// ElementPath locates the offending element within the document,
	// e.g. "/html/body/div[2]/h3". Empty for document-level findings.
	ElementPath string

	// Position is the pre-order index of the offending element, used for
	// ordering. Document-level findings use -1 and sort first.
	Position int

	// Suggestion is an optional human-readable remediation hint.
	Suggestion string
}

// IsError returns true if the diagnostic has error severity.
func (d *Diagnostic) IsError() bool {
	return d.Severity == config.SeverityError
}

// Rule defines the interface that all semantic rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "SEM001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g., ["landmarks"]).
	Tags() []string

	// Apply executes the rule against the given context and returns diagnostics.
	//
	// Rules must:
	//   - Return diagnostics for each violation found.
	//   - Never mutate the document snapshot.
	//   - Respect context cancellation.
	//   - Return error only for internal failures, not violations.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}
