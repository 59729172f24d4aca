package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gosemlint/pkg/config"
)

func TestMergeNilHandling(t *testing.T) {
	base := config.NewConfig()

	assert.Equal(t, base, merge(base, nil))
	assert.Equal(t, base, merge(nil, base))
	assert.Nil(t, merge(nil, nil))
}

func TestMergeScalars(t *testing.T) {
	base := config.NewConfig()
	base.SeverityDefault = "warning"
	base.Jobs = 4

	override := &config.Config{
		SeverityDefault: "error",
		Format:          config.FormatJSON,
		Strict:          true,
	}

	merged := merge(base, override)

	assert.Equal(t, "error", merged.SeverityDefault)
	assert.Equal(t, config.FormatJSON, merged.Format)
	assert.True(t, merged.Strict)
	// Zero values in the override do not clobber base values.
	assert.Equal(t, 4, merged.Jobs)
	assert.Equal(t, config.RuleFormatName, merged.RuleFormat)
}

func TestMergeSlicesReplaceWholesale(t *testing.T) {
	base := config.NewConfig()
	base.Ignore = []string{"vendor/**"}

	merged := merge(base, &config.Config{Ignore: []string{"dist/**"}})
	assert.Equal(t, []string{"dist/**"}, merged.Ignore)

	// A nil slice in the override keeps the base slice.
	merged = merge(base, &config.Config{})
	assert.Equal(t, []string{"vendor/**"}, merged.Ignore)
}

func TestMergeRulesDeep(t *testing.T) {
	enabled := false
	baseSev := "info"
	overrideSev := "error"

	base := config.NewConfig()
	base.Rules["SEM001"] = config.RuleConfig{
		Severity: &baseSev,
		Options:  map[string]any{"ignore_hidden": true, "keep": 1},
	}
	base.Rules["SEM002"] = config.RuleConfig{Enabled: &enabled}

	override := &config.Config{Rules: map[string]config.RuleConfig{
		"SEM001": {
			Severity: &overrideSev,
			Options:  map[string]any{"ignore_hidden": false},
		},
		"SEM003": {Enabled: &enabled},
	}}

	merged := merge(base, override)

	require.Contains(t, merged.Rules, "SEM001")
	assert.Equal(t, "error", *merged.Rules["SEM001"].Severity)
	assert.Equal(t, false, merged.Rules["SEM001"].Options["ignore_hidden"])
	assert.Equal(t, 1, merged.Rules["SEM001"].Options["keep"])

	// Untouched base rules and new override rules both survive.
	assert.Contains(t, merged.Rules, "SEM002")
	assert.Contains(t, merged.Rules, "SEM003")
}

func TestMergeRuleConfigKeepsBaseWhenOverrideUnset(t *testing.T) {
	enabled := true
	sev := "error"

	base := config.RuleConfig{Enabled: &enabled, Severity: &sev}
	merged := mergeRuleConfig(base, config.RuleConfig{})

	assert.Equal(t, &enabled, merged.Enabled)
	assert.Equal(t, &sev, merged.Severity)
}

func TestMergeAll(t *testing.T) {
	assert.Nil(t, MergeAll())

	first := &config.Config{SeverityDefault: "info"}
	second := &config.Config{SeverityDefault: "warning"}
	third := &config.Config{Format: config.FormatJSON}

	merged := MergeAll(first, second, third)
	assert.Equal(t, "warning", merged.SeverityDefault)
	assert.Equal(t, config.FormatJSON, merged.Format)
}
