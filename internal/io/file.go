// Package ioutils provides file system utilities for marc-holdings.
package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644 and its parent directory with 0755. If
// the file already exists, it is truncated before writing.
//
// Example:
//
//	err := WriteFile(ctx, "/data/out/serials.txt", content)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0755)
}

// OutputPath derives the output file path for an input file.
//
// The input extension is replaced with ext. When that would overwrite the
// input itself, ".out" is inserted before the extension.
//
// Example:
//
//	OutputPath("/data/serials.mrc", ".txt") // "/data/serials.txt"
//	OutputPath("/data/serials.mrc", ".mrc") // "/data/serials.out.mrc"
func OutputPath(input, ext string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	out := base + ext
	if out == input {
		out = base + ".out" + ext
	}
	return out
}
