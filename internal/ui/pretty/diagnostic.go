package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gosemlint/pkg/config"
	"github.com/yaklabco/gosemlint/pkg/lint"
)

// FormatDiagnostic formats a single diagnostic for terminal output.
// One line per finding:
//
//	severity: rule at /html/body/div[2]/h3: message
//
// followed by an indented suggestion when present. Document-level
// findings render "(document)" in place of an element path.
func (s *Styles) FormatDiagnostic(diag *lint.Diagnostic, ruleFormat config.RuleFormat) string {
	var builder strings.Builder

	severity := s.FormatSeverity(diag.Severity)
	ruleIdentifier := config.FormatRuleID(ruleFormat, diag.RuleID, diag.RuleName)

	location := diag.ElementPath
	if location == "" {
		location = "(document)"
	}

	builder.WriteString("  ")
	builder.WriteString(severity)
	builder.WriteString(": ")
	builder.WriteString(s.RuleID.Render(ruleIdentifier))
	builder.WriteString(" at ")
	builder.WriteString(s.ElementPath.Render(location))
	builder.WriteString(": ")
	builder.WriteString(s.Message.Render(diag.Message))
	builder.WriteString("\n")

	if diag.Suggestion != "" {
		builder.WriteString("    " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(diag.Suggestion) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		word := "issues"
		if issueCount == 1 {
			word = "issue"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", issueCount, word))
	}
	return header
}
