package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with parent directories under dir.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFindProjectConfigInStartDir(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, ".gosemlint.yml", "severity_default: error\n")

	found, err := FindProjectConfig(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, found)
}

func TestFindProjectConfigWalksUpward(t *testing.T) {
	root := t.TempDir()
	cfgPath := writeFile(t, root, ".gosemlint.yaml", "strict: true\n")

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := FindProjectConfig(context.Background(), nested)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, found)
}

func TestFindProjectConfigNamePreference(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "gosemlint.yml", "jobs: 2\n")
	preferred := writeFile(t, dir, ".gosemlint.yml", "jobs: 4\n")

	found, err := FindProjectConfig(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, preferred, found)
}

func TestFindProjectConfigStopsAtVCSRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gosemlint.yml", "strict: true\n")

	// The repo boundary sits between the config and the search start.
	repo := filepath.Join(root, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))
	nested := filepath.Join(repo, "src")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := FindProjectConfig(context.Background(), nested)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindProjectConfigAtVCSRootItself(t *testing.T) {
	repo := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))
	cfgPath := writeFile(t, repo, ".gosemlint.yml", "strict: true\n")

	found, err := FindProjectConfig(context.Background(), repo)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, found)
}

func TestFindProjectConfigNone(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))

	found, err := FindProjectConfig(context.Background(), dir)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindProjectConfigCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FindProjectConfig(ctx, t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiscoverPaths(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, ".gosemlint.yml", "strict: true\n")

	// Point user config at a controlled location.
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	userCfg := writeFile(t, xdg, filepath.Join("gosemlint", "config.yaml"), "format: json\n")

	paths, err := DiscoverPaths(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, paths.Project)
	assert.Equal(t, userCfg, paths.User)
}

func TestIsVCSRoot(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, isVCSRoot(dir))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".hg"), 0o755))
	assert.True(t, isVCSRoot(dir))

	// A .git file (worktree pointer) is not a marker directory.
	other := t.TempDir()
	writeFile(t, other, ".git", "gitdir: elsewhere")
	assert.False(t, isVCSRoot(other))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "x.yml", "")

	assert.True(t, fileExists(path))
	assert.False(t, fileExists(filepath.Join(dir, "missing.yml")))
	assert.False(t, fileExists(dir))
}
