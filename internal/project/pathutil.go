package project

import (
	"fmt"
	"path/filepath"
	"strings"
)

// workspaceLocation resolves a glob-matched directory to a clean
// root-relative location. It rejects directories that escape the project
// root, which a glob such as "../elsewhere/*" would otherwise admit, and
// the root directory itself.
func workspaceLocation(rootPath, dir string) (string, error) {
	rel, err := filepath.Rel(rootPath, dir)
	if err != nil {
		return "", fmt.Errorf("failed to compute workspace location for %q: %w", dir, err)
	}

	// Reject directories outside the project
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("workspace directory %q is outside the project root", dir)
	}

	// Reject the project root itself
	if rel == "." {
		return "", fmt.Errorf("workspace directory %q is the project root, which cannot be a workspace", dir)
	}

	return rel, nil
}
