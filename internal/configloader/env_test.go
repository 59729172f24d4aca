package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gosemlint/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GOSEMLINT_SEVERITY_DEFAULT", "error")
	t.Setenv("GOSEMLINT_FORMAT", "json")
	t.Setenv("GOSEMLINT_RULE_FORMAT", "combined")
	t.Setenv("GOSEMLINT_JOBS", "8")
	t.Setenv("GOSEMLINT_STRICT", "true")
	t.Setenv("GOSEMLINT_IGNORE", "vendor/**, dist/**, ,node_modules")

	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, "error", cfg.SeverityDefault)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, config.RuleFormatCombined, cfg.RuleFormat)
	assert.Equal(t, 8, cfg.Jobs)
	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{"vendor/**", "dist/**", "node_modules"}, cfg.Ignore)
}

func TestLoadFromEnvUnsetLeavesDefaults(t *testing.T) {
	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, string(config.SeverityWarning), cfg.SeverityDefault)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.False(t, cfg.Strict)

	assert.NoError(t, LoadFromEnv(nil))
}

func TestLoadFromEnvInvalidBool(t *testing.T) {
	t.Setenv("GOSEMLINT_STRICT", "maybe")

	err := LoadFromEnv(config.NewConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOSEMLINT_STRICT")
}

func TestLoadFromEnvInvalidInt(t *testing.T) {
	t.Setenv("GOSEMLINT_JOBS", "many")

	err := LoadFromEnv(config.NewConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOSEMLINT_JOBS")
}

func TestParseSliceValue(t *testing.T) {
	assert.Nil(t, parseSliceValue(""))
	assert.Equal(t, []string{"a"}, parseSliceValue("a"))
	assert.Equal(t, []string{"a", "b"}, parseSliceValue(" a , b "))
	assert.Empty(t, parseSliceValue(" , ,"))
}

func TestGetEnvVarName(t *testing.T) {
	assert.Equal(t, "GOSEMLINT_FORMAT", GetEnvVarName("format"))
	assert.Equal(t, "GOSEMLINT_STRICT", GetEnvVarName("strict"))
	assert.Empty(t, GetEnvVarName("unknown"))
}

func TestListEnvVars(t *testing.T) {
	vars := ListEnvVars()
	assert.Len(t, vars, len(envMappings))
	for name := range vars {
		assert.Contains(t, name, "GOSEMLINT_")
	}
}
