package lint

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/yaklabco/gosemlint/pkg/config"
	"github.com/yaklabco/gosemlint/pkg/htmldoc"
)

// DocumentResult contains the results of auditing a single document.
type DocumentResult struct {
	// Snapshot is the parsed document.
	Snapshot *htmldoc.DocumentSnapshot

	// Diagnostics contains all issues found, ordered by document
	// position then rule ID, with duplicate (rule, path) pairs removed.
	Diagnostics []Diagnostic

	// RuleErrors contains any errors from rule execution, keyed by rule ID.
	// A failing rule is excluded from the report; it never aborts the run.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (dr *DocumentResult) HasIssues() bool {
	return len(dr.Diagnostics) > 0
}

// IssueCount returns the total number of diagnostics.
func (dr *DocumentResult) IssueCount() int {
	return len(dr.Diagnostics)
}

// ErrorCount returns the number of error-severity diagnostics.
func (dr *DocumentResult) ErrorCount() int {
	count := 0
	for i := range dr.Diagnostics {
		if dr.Diagnostics[i].IsError() {
			count++
		}
	}
	return count
}

// Parser parses HTML content into a DocumentSnapshot.
//
// The lint package defines this interface in the consumer package;
// implementations (e.g. parser/nethtml) provide the concrete parsing.
//
// Implementations must be:
//   - deterministic for a given (path, content) pair,
//   - safe for concurrent use by multiple goroutines,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Parse converts raw HTML bytes into a DocumentSnapshot.
	// The path is logical, used for diagnostics only, never for I/O.
	// On error, no partial snapshot is returned.
	Parse(ctx context.Context, path string, content []byte) (*htmldoc.DocumentSnapshot, error)
}

// Engine coordinates parsing and rule execution.
type Engine struct {
	// Parser parses HTML documents into snapshots.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// LintDocument parses and audits a single document.
//
// Each resolved rule runs exactly once against the full snapshot. Rules
// share no mutable state, so adding a rule cannot change another rule's
// output. The snapshot is never mutated.
func (e *Engine) LintDocument(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*DocumentResult, error) {
	snapshot, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	resolved := ResolveRules(e.Registry, cfg)

	result := &DocumentResult{
		Snapshot:   snapshot,
		RuleErrors: make(map[string]error),
	}

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("lint cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, snapshot, cfg, rr.Config)
		ruleCtx.Registry = e.Registry

		diags, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for diagIdx := range diags {
			// Apply resolved severity.
			diags[diagIdx].Severity = rr.Severity

			if diags[diagIdx].FilePath == "" {
				diags[diagIdx].FilePath = path
			}
			if diags[diagIdx].RuleName == "" {
				diags[diagIdx].RuleName = rr.Rule.Name()
			}
		}

		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	result.Diagnostics = orderAndDedup(result.Diagnostics)

	return result, nil
}

// orderAndDedup sorts diagnostics by document position then rule ID and
// removes duplicate (rule, path) pairs. Document-level findings
// (position -1) sort before any element finding.
func orderAndDedup(diags []Diagnostic) []Diagnostic {
	if len(diags) == 0 {
		return diags
	}

	slices.SortStableFunc(diags, func(a, b Diagnostic) int {
		if c := cmp.Compare(a.Position, b.Position); c != 0 {
			return c
		}
		return cmp.Compare(a.RuleID, b.RuleID)
	})

	type key struct {
		ruleID string
		path   string
	}
	seen := make(map[key]bool, len(diags))
	out := diags[:0]
	for _, d := range diags {
		k := key{ruleID: d.RuleID, path: d.ElementPath}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, d)
	}

	return out
}
