// Package fsops provides read-oriented filesystem access.
//
// All filesystem reads in monorun go through the FS interface: manifest
// loading, workspace glob expansion, and existence checks. Keeping the
// surface behind an interface lets the engine be exercised against
// fixture trees in tests.
package fsops

import (
	"os"
	"path/filepath"
)

// FS provides an abstraction for filesystem reads.
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// Exists checks if a path exists.
	Exists(path string) (bool, error)

	// Glob returns the names of all files matching pattern, in lexical
	// order. The pattern syntax is that of filepath.Match.
	Glob(pattern string) ([]string, error)
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Stat returns file info, following symlinks. Workspace directories are
// commonly symlinked in monorepos, so the link target's type is what
// matters.
func (fs *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire contents of a file.
func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Exists checks if a path exists.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Glob returns the names of all files matching pattern, in lexical order.
func (fs *RealFS) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}
