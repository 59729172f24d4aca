package runner

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/gosemlint/pkg/langdetect"
)

// sniffBytes is how much of an extensionless file discovery reads to
// decide whether it is HTML.
const sniffBytes = 4096

// Discover resolves the option paths to a sorted, de-duplicated list of
// HTML files.
//
// Explicitly named files are always included regardless of extension:
// naming a file is a stronger signal than any sniffer. Directories are
// walked recursively; inside a walk, files are matched by extension, or
// by content sniffing when DetectExtensionless is set.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	extensions := opts.effectiveExtensions()

	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		resolved := path
		if !filepath.IsAbs(resolved) && opts.WorkingDir != "" {
			resolved = filepath.Join(opts.WorkingDir, resolved)
		}

		info, err := os.Stat(resolved)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if !info.IsDir() {
			if !excluded(resolved, opts.ExcludeGlobs) {
				add(resolved)
			}
			continue
		}

		err = filepath.WalkDir(resolved, func(walkPath string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			if entry.IsDir() {
				if excluded(walkPath, opts.ExcludeGlobs) || hiddenDir(entry.Name(), walkPath, resolved) {
					return filepath.SkipDir
				}
				return nil
			}

			if excluded(walkPath, opts.ExcludeGlobs) {
				return nil
			}

			if matchesExtension(walkPath, extensions) {
				add(walkPath)
				return nil
			}

			if opts.DetectExtensionless && filepath.Ext(walkPath) == "" && sniffHTML(walkPath) {
				add(walkPath)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}

	slices.Sort(files)
	return files, nil
}

// matchesExtension returns true if the path has one of the extensions.
func matchesExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(extensions, ext)
}

// excluded returns true if any glob matches the path or its base name.
func excluded(path string, globs []string) bool {
	base := filepath.Base(path)
	for _, glob := range globs {
		if ok, _ := filepath.Match(glob, base); ok {
			return true
		}
		if ok, _ := filepath.Match(glob, path); ok {
			return true
		}
	}
	return false
}

// hiddenDir returns true for dot-directories other than the walk root.
func hiddenDir(name, path, root string) bool {
	return path != root && strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// sniffHTML reads the head of a file and asks langdetect whether it is
// HTML. Unreadable files are simply skipped.
func sniffHTML(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, sniffBytes)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return false
	}

	return langdetect.IsHTML(head[:n])
}
