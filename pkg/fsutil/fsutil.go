// Package fsutil provides context-aware filesystem helpers.
package fsutil

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// FileInfo captures the metadata of a file at read time.
type FileInfo struct {
	// Path is the file path as given.
	Path string

	// Size is the file size in bytes.
	Size int64

	// ModTime is the modification time.
	ModTime time.Time

	// Mode is the file mode.
	Mode fs.FileMode
}

// ReadFile reads a file and returns its content plus metadata.
// The context is checked before and after the read so a cancelled run
// does not hand stale content to the caller.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read cancelled: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("read %s: is a directory", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read cancelled: %w", err)
	}

	info := &FileInfo{
		Path:    path,
		Size:    stat.Size(),
		ModTime: stat.ModTime(),
		Mode:    stat.Mode(),
	}

	return content, info, nil
}
