package lint

import (
	"golang.org/x/net/html"

	"github.com/yaklabco/gosemlint/pkg/config"
	"github.com/yaklabco/gosemlint/pkg/htmldoc"
)

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnostic starts building a diagnostic for the given rule and element.
// The element path and document position are derived from the node; pass a
// nil node for a document-level finding.
func NewDiagnostic(ruleID string, doc *htmldoc.DocumentSnapshot, node *html.Node, message string) *DiagnosticBuilder {
	var filePath, elementPath string
	position := -1

	if doc != nil {
		filePath = doc.Path
	}
	if node != nil {
		elementPath = htmldoc.ElementPath(node)
		position = doc.Position(node)
	}

	return &DiagnosticBuilder{
		diag: Diagnostic{
			RuleID:      ruleID,
			Message:     message,
			FilePath:    filePath,
			ElementPath: elementPath,
			Position:    position,
		},
	}
}

// NewDocumentDiagnostic starts building a document-level diagnostic,
// one that does not point at a specific element.
func NewDocumentDiagnostic(ruleID string, doc *htmldoc.DocumentSnapshot, message string) *DiagnosticBuilder {
	return NewDiagnostic(ruleID, doc, nil, message)
}

// WithSeverity sets the severity.
func (b *DiagnosticBuilder) WithSeverity(s config.Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

// WithSuggestion sets a human-readable remediation hint.
func (b *DiagnosticBuilder) WithSuggestion(s string) *DiagnosticBuilder {
	b.diag.Suggestion = s
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
