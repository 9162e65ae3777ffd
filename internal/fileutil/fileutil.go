// Package fileutil provides file and path helpers shared by the CLI and config loader.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "minutes" -> false (name)
//   - "./minutes.yaml" -> true (relative path)
//   - "C:\configs\minutes.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// FirstExisting returns the first candidate, joined to dir, that is a regular file.
// The second result lists every path tried, in order, for error hints.
func FirstExisting(dir string, candidates []string) (string, []string) {
	tried := make([]string, 0, len(candidates))
	for _, name := range candidates {
		path := name
		if dir != "" {
			path = filepath.Join(dir, name)
		}
		if FileExists(path) {
			return path, tried
		}
		tried = append(tried, path)
	}
	return "", tried
}

// HasExtension reports whether path ends in one of exts, ignoring case.
// Extensions include the leading dot.
func HasExtension(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// ReplaceExtension swaps the extension of path for ext.
func ReplaceExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}
