package configloader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gosemlint/pkg/config"
)

// isolateConfigEnv keeps user and environment config out of loader tests.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadDefaultsOnly(t *testing.T) {
	isolateConfigEnv(t)
	dir := t.TempDir()

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, string(config.SeverityWarning), result.Config.SeverityDefault)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoadProjectConfig(t *testing.T) {
	isolateConfigEnv(t)
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, ".gosemlint.yml", "severity_default: error\nstrict: true\n")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, "error", result.Config.SeverityDefault)
	assert.True(t, result.Config.Strict)
	assert.Equal(t, []string{cfgPath}, result.LoadedFrom)
	assert.Equal(t, cfgPath, result.Paths.Project)
}

func TestLoadExplicitOverridesProject(t *testing.T) {
	isolateConfigEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".gosemlint.yml", "severity_default: info\n")
	explicit := writeFile(t, dir, "override.yml", "severity_default: error\n")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: explicit,
		IgnoreEnv:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, "error", result.Config.SeverityDefault)
	require.Len(t, result.LoadedFrom, 2)
	assert.Equal(t, explicit, result.LoadedFrom[1])
	assert.Equal(t, explicit, result.Paths.Explicit)
}

func TestLoadEnvOverridesFiles(t *testing.T) {
	isolateConfigEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".gosemlint.yml", "format: text\n")
	t.Setenv("GOSEMLINT_FORMAT", "json")

	result, err := Load(context.Background(), LoadOptions{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, config.FormatJSON, result.Config.Format)
}

func TestLoadCLIOverridesEverything(t *testing.T) {
	isolateConfigEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".gosemlint.yml", "format: text\nseverity_default: info\n")
	t.Setenv("GOSEMLINT_SEVERITY_DEFAULT", "warning")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: dir,
		CLIConfig:  &config.Config{SeverityDefault: "error", Format: config.FormatJSON},
	})
	require.NoError(t, err)

	assert.Equal(t, "error", result.Config.SeverityDefault)
	assert.Equal(t, config.FormatJSON, result.Config.Format)
}

func TestLoadIgnoreProjectConfig(t *testing.T) {
	isolateConfigEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".gosemlint.yml", "strict: true\n")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:          dir,
		IgnoreProjectConfig: true,
		IgnoreEnv:           true,
	})
	require.NoError(t, err)
	assert.False(t, result.Config.Strict)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoadNormalizesRuleNames(t *testing.T) {
	isolateConfigEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".gosemlint.yml", `rules:
  heading-increment:
    severity: error
`)

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	require.Contains(t, result.Config.Rules, "SEM003")
	assert.NotContains(t, result.Config.Rules, "heading-increment")
	assert.Equal(t, "error", *result.Config.Rules["SEM003"].Severity)
}

func TestLoadWarnsOnDuplicateRuleKeys(t *testing.T) {
	isolateConfigEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".gosemlint.yml", `rules:
  SEM003:
    severity: error
  heading-increment:
    severity: info
`)

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "SEM003")
}

func TestLoadUnknownRuleKeptWithWarning(t *testing.T) {
	isolateConfigEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".gosemlint.yml", "rules:\n  made-up-rule: {}\n")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)
	assert.Contains(t, result.Config.Rules, "made-up-rule")
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "made-up-rule")
}

func TestLoadInvalidConfigFails(t *testing.T) {
	isolateConfigEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".gosemlint.yml", "severity_default: fatal\n")

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "severity_default", vErr.Field)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolateConfigEnv(t)

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir:   t.TempDir(),
		ExplicitPath: "/nonexistent/gosemlint.yml",
		IgnoreEnv:    true,
	})
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	isolateConfigEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".gosemlint.yml", "rules: [broken\n")

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	assert.Error(t, err)
}
