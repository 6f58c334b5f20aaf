// Package testutil builds monorepo fixture trees for tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ScriptDecl is one scripts entry for a fixture manifest. Declaration order
// is preserved in the rendered JSON.
type ScriptDecl struct {
	Name    string
	Command string
}

// PackageJSON renders a minimal package.json with the given name and
// scripts, scripts in declaration order.
func PackageJSON(name string, scripts ...ScriptDecl) string {
	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  %q: %q", "name", name)
	if len(scripts) > 0 {
		b.WriteString(",\n  \"scripts\": {\n")
		for i, s := range scripts {
			if i > 0 {
				b.WriteString(",\n")
			}
			fmt.Fprintf(&b, "    %q: %q", s.Name, s.Command)
		}
		b.WriteString("\n  }")
	}
	b.WriteString("\n}\n")
	return b.String()
}

// WriteTree writes a monorepo fixture under a temp directory and returns
// its root. The root package.json declares the given workspace globs;
// packages maps workspace directories (relative to the root) to raw
// package.json content. An empty content string creates the directory but
// no manifest.
func WriteTree(t *testing.T, globs []string, packages map[string]string) string {
	t.Helper()
	root := t.TempDir()

	globsJSON, err := json.Marshal(globs)
	if err != nil {
		t.Fatalf("failed to marshal workspace globs: %v", err)
	}
	rootManifest := fmt.Sprintf("{\n  \"name\": \"fixture-root\",\n  \"private\": true,\n  \"workspaces\": %s\n}\n", globsJSON)
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(rootManifest), 0644); err != nil {
		t.Fatalf("failed to write root manifest: %v", err)
	}

	for dir, content := range packages {
		abs := filepath.Join(root, dir)
		if err := os.MkdirAll(abs, 0755); err != nil {
			t.Fatalf("failed to create workspace dir %s: %v", dir, err)
		}
		if content == "" {
			continue
		}
		if err := os.WriteFile(filepath.Join(abs, "package.json"), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write workspace manifest %s: %v", dir, err)
		}
	}

	return root
}

// CreateSampleMonorepo writes the five-workspace fixture used across run
// tests: two applications and three libraries, where every workspace
// declares "all-workspaces" and only the -b workspaces declare
// "b-workspaces". Returns the project root.
func CreateSampleMonorepo(t *testing.T) string {
	t.Helper()
	return WriteTree(t, []string{"applications/*", "libraries/*"}, map[string]string{
		"applications/application-a": PackageJSON("application-a",
			ScriptDecl{Name: "all-workspaces", Command: "echo application-a"},
		),
		"applications/application-b": PackageJSON("application-b",
			ScriptDecl{Name: "all-workspaces", Command: "echo application-b"},
			ScriptDecl{Name: "b-workspaces", Command: "echo application-b"},
		),
		"libraries/library-a": PackageJSON("library-a",
			ScriptDecl{Name: "all-workspaces", Command: "echo library-a"},
		),
		"libraries/library-b": PackageJSON("library-b",
			ScriptDecl{Name: "all-workspaces", Command: "echo library-b"},
			ScriptDecl{Name: "b-workspaces", Command: "echo library-b"},
		),
		"libraries/library-c": PackageJSON("library-c",
			ScriptDecl{Name: "all-workspaces", Command: "echo library-c"},
		),
	})
}
