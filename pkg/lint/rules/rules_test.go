package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gosemlint/pkg/config"
	"github.com/yaklabco/gosemlint/pkg/htmldoc"
	"github.com/yaklabco/gosemlint/pkg/lint"
	"github.com/yaklabco/gosemlint/pkg/parser/nethtml"
)

// parseDoc parses HTML into a snapshot for rule tests.
func parseDoc(t *testing.T, input string) *htmldoc.DocumentSnapshot {
	t.Helper()
	parser := nethtml.New()
	snapshot, err := parser.Parse(context.Background(), "test.html", []byte(input))
	require.NoError(t, err)
	return snapshot
}

// applyRule runs a rule against input with optional rule config.
func applyRule(t *testing.T, rule lint.Rule, input string, ruleCfg *config.RuleConfig) []lint.Diagnostic {
	t.Helper()
	snapshot := parseDoc(t, input)
	cfg := config.NewConfig()
	ruleCtx := lint.NewRuleContext(context.Background(), snapshot, cfg, ruleCfg)

	diags, err := rule.Apply(ruleCtx)
	require.NoError(t, err)
	return diags
}
