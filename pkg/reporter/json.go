package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gosemlint/pkg/runner"
)

// severityWarning is the fallback severity for diagnostics that carry none.
const severityWarning = "warning"

// JSONFinding is the machine-readable shape of one finding. The output
// document is a flat, ordered array of these: ordered by file, then by
// document position, then rule ID, mirroring the report ordering rules.
type JSONFinding struct {
	Rule       string `json:"rule"`
	RuleName   string `json:"ruleName,omitempty"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Path       string `json:"path"`
	File       string `json:"file,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// JSONReporter formats results as a JSON array of findings.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	findings := BuildFindings(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(findings); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return len(findings), nil
}

// BuildFindings flattens a runner result into the JSON finding array.
// Always returns a non-nil slice so a clean run encodes as [] rather
// than null.
func BuildFindings(result *runner.Result) []JSONFinding {
	findings := make([]JSONFinding, 0)

	if result == nil {
		return findings
	}

	for _, file := range result.Files {
		if file.Result == nil {
			continue
		}

		for _, diag := range file.Result.Diagnostics {
			severity := string(diag.Severity)
			if severity == "" {
				severity = severityWarning
			}

			findings = append(findings, JSONFinding{
				Rule:       diag.RuleID,
				RuleName:   diag.RuleName,
				Severity:   severity,
				Message:    diag.Message,
				Path:       diag.ElementPath,
				File:       diag.FilePath,
				Suggestion: diag.Suggestion,
			})
		}
	}

	return findings
}

// ParseFindings decodes a JSON report back into findings. The decoded
// slice preserves the encoded order, so encode/decode round-trips
// losslessly.
func ParseFindings(data []byte) ([]JSONFinding, error) {
	var findings []JSONFinding
	if err := json.Unmarshal(data, &findings); err != nil {
		return nil, fmt.Errorf("parse findings: %w", err)
	}
	return findings, nil
}
