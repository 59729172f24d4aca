package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with parents under dir.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscoverMatchesExtensions(t *testing.T) {
	dir := t.TempDir()
	index := writeFile(t, dir, "index.html", "<p>x</p>")
	about := writeFile(t, dir, "about.htm", "<p>y</p>")
	writeFile(t, dir, "notes.txt", "plain")
	writeFile(t, dir, "style.css", "body{}")

	files, err := Discover(context.Background(), Options{Paths: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, []string{about, index}, files)
}

func TestDiscoverRecursesAndSorts(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "b.html", "<p>b</p>")
	nested := writeFile(t, dir, filepath.Join("sub", "a.html"), "<p>a</p>")

	files, err := Discover(context.Background(), Options{Paths: []string{dir}})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, b, files[0])
	assert.Equal(t, nested, files[1])
}

func TestDiscoverSkipsHiddenDirectories(t *testing.T) {
	dir := t.TempDir()
	visible := writeFile(t, dir, "page.html", "<p>x</p>")
	writeFile(t, dir, filepath.Join(".git", "hook.html"), "<p>x</p>")
	writeFile(t, dir, filepath.Join(".cache", "tmp.html"), "<p>x</p>")

	files, err := Discover(context.Background(), Options{Paths: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, []string{visible}, files)
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	keep := writeFile(t, dir, "index.html", "<p>x</p>")
	writeFile(t, dir, "draft.html", "<p>x</p>")
	writeFile(t, dir, filepath.Join("vendor", "dep.html"), "<p>x</p>")

	files, err := Discover(context.Background(), Options{
		Paths:        []string{dir},
		ExcludeGlobs: []string{"draft.html", "vendor"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{keep}, files)
}

func TestDiscoverExplicitFileBypassesExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	// Naming a file directly includes it even without an HTML extension.
	page := writeFile(t, dir, "page.txt", "<!DOCTYPE html><p>x</p>")

	files, err := Discover(context.Background(), Options{Paths: []string{page}})
	require.NoError(t, err)
	assert.Equal(t, []string{page}, files)
}

func TestDiscoverExplicitFileStillHonorsExcludes(t *testing.T) {
	dir := t.TempDir()
	page := writeFile(t, dir, "page.html", "<p>x</p>")

	files, err := Discover(context.Background(), Options{
		Paths:        []string{page},
		ExcludeGlobs: []string{"page.html"},
	})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDiscoverDeduplicates(t *testing.T) {
	dir := t.TempDir()
	page := writeFile(t, dir, "page.html", "<p>x</p>")

	files, err := Discover(context.Background(), Options{Paths: []string{page, page, dir}})
	require.NoError(t, err)
	assert.Equal(t, []string{page}, files)
}

func TestDiscoverSniffsExtensionless(t *testing.T) {
	dir := t.TempDir()
	htmlFile := writeFile(t, dir, "landing", "<!DOCTYPE html>\n<html><body></body></html>")
	writeFile(t, dir, "README", "just some prose, nothing markup-like")

	files, err := Discover(context.Background(), Options{
		Paths:               []string{dir},
		DetectExtensionless: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{htmlFile}, files)

	// Without sniffing, extensionless files are ignored.
	files, err = Discover(context.Background(), Options{Paths: []string{dir}})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDiscoverMissingPath(t *testing.T) {
	_, err := Discover(context.Background(), Options{
		Paths: []string{filepath.Join(t.TempDir(), "nope")},
	})
	assert.Error(t, err)
}

func TestDiscoverResolvesAgainstWorkingDir(t *testing.T) {
	dir := t.TempDir()
	page := writeFile(t, dir, "index.html", "<p>x</p>")

	files, err := Discover(context.Background(), Options{
		Paths:      []string{"index.html"},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{page}, files)
}

func TestDiscoverCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Discover(ctx, Options{Paths: []string{t.TempDir()}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMatchesExtension(t *testing.T) {
	exts := DefaultExtensions()
	assert.True(t, matchesExtension("a/b/index.html", exts))
	assert.True(t, matchesExtension("INDEX.HTML", exts))
	assert.True(t, matchesExtension("page.htm", exts))
	assert.False(t, matchesExtension("page.xhtml", exts))
	assert.False(t, matchesExtension("page", exts))
}
