package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gosemlint/pkg/lint"
)

func TestRegisterAll(t *testing.T) {
	registry := lint.NewRegistry()
	RegisterAll(registry)

	wantIDs := []string{
		"SEM001", "SEM002", "SEM003", "SEM004", "SEM005", "SEM006",
		"SEM007", "SEM008", "SEM009", "SEM010", "SEM011",
	}
	assert.Equal(t, wantIDs, registry.IDs())
}

func TestRegisteredRulesResolveByName(t *testing.T) {
	registry := lint.NewRegistry()
	RegisterAll(registry)

	names := map[string]string{
		"single-main":          "SEM001",
		"landmark-presence":    "SEM002",
		"heading-increment":    "SEM003",
		"section-heading":      "SEM004",
		"no-interactive-div":   "SEM005",
		"article-in-paragraph": "SEM006",
		"img-alt":              "SEM007",
		"anchor-href":          "SEM008",
		"no-duplicate-id":      "SEM009",
		"list-structure":       "SEM010",
		"single-h1":            "SEM011",
	}

	for name, id := range names {
		rule, ok := registry.GetByName(name)
		require.True(t, ok, "rule %s not found by name", name)
		assert.Equal(t, id, rule.ID())
	}
}

func TestDefaultRegistryHasBuiltins(t *testing.T) {
	_, ok := lint.DefaultRegistry.Get("SEM001")
	assert.True(t, ok)
}

func TestRuleMetadata(t *testing.T) {
	registry := lint.NewRegistry()
	RegisterAll(registry)

	for _, rule := range registry.Rules() {
		assert.NotEmpty(t, rule.Name(), "rule %s has no name", rule.ID())
		assert.NotEmpty(t, rule.Description(), "rule %s has no description", rule.ID())
		assert.NotEmpty(t, rule.Tags(), "rule %s has no tags", rule.ID())
		assert.True(t, rule.DefaultSeverity().IsValid(), "rule %s has invalid severity", rule.ID())
		assert.True(t, rule.DefaultEnabled(), "rule %s should be enabled by default", rule.ID())
	}
}
