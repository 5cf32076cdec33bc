// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output writes the rendered document to disk.
package output

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pdiddy/hedgewatch/pkg/types"
)

// DefaultMode is the permission given to a newly created output file.
const DefaultMode fs.FileMode = 0o644

// Writer stores rendered output.
type Writer interface {
	Write(path, content string) error
}

// FileWriter replaces the destination file through a temporary file in the
// same directory and a rename, so readers see either the previous document
// or the new one.
type FileWriter struct{}

// Write implements Writer using the package-level Write.
func (FileWriter) Write(path, content string) error { return Write(path, content) }

// Write fully overwrites path with content. When path is a symlink the
// target file is overwritten and the link is left in place. The directory
// holding the file must be writable. An existing file keeps its permission
// bits; a new one gets DefaultMode. Every failure is a
// types.KindWrite error and leaves the previous file in place.
func Write(path, content string) error {
	if err := writeFile(path, content); err != nil {
		return types.NewError(types.KindWrite, "write "+path, err)
	}
	return nil
}

func writeFile(path, content string) error {
	// Replace the file a symlink points to, not the link.
	if real, err := filepath.EvalSymlinks(path); err == nil {
		path = real
	}

	mode := DefaultMode
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		mode = info.Mode().Perm()
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".hedgewatch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.WriteString(content)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting mode: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
