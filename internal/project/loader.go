package project

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/monorun/internal/fsops"
)

// Load reads the root package.json at rootPath, expands its workspace glob
// list into concrete directories, loads each workspace's manifest, and
// builds the Project model.
//
// Discovery order is glob list order, then lexical enumeration order within
// each glob. A directory matched by more than one glob is recorded once,
// attributed to the first matching glob. Non-directories are skipped. A
// matched directory whose manifest is missing, malformed, or nameless fails
// the whole load; a project with zero workspaces is valid and empty.
func Load(fs fsops.FS, rootPath string) (*Project, error) {
	rootPath = filepath.Clean(rootPath)
	manifestPath := filepath.Join(rootPath, "package.json")

	exists, err := fs.Exists(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check manifest: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: no package.json at '%s'", ErrManifestNotFound, rootPath)
	}

	data, err := fs.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	root, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestParse, manifestPath, err)
	}

	p := &Project{
		Root:   rootPath,
		byName: make(map[string]*Workspace),
	}

	seenDirs := make(map[string]bool)
	for _, pattern := range root.Workspaces {
		matches, err := fs.Glob(filepath.Join(rootPath, pattern))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid workspace pattern %q", ErrManifestParse, pattern)
		}

		for _, dir := range matches {
			dir = filepath.Clean(dir)
			if dir == rootPath || seenDirs[dir] {
				continue
			}

			info, err := fs.Stat(dir)
			if err != nil {
				return nil, fmt.Errorf("failed to stat '%s': %w", dir, err)
			}
			if !info.IsDir() {
				continue
			}
			seenDirs[dir] = true

			ws, err := loadWorkspace(fs, rootPath, dir, pattern)
			if err != nil {
				return nil, err
			}

			if prev, ok := p.byName[ws.Name]; ok {
				return nil, fmt.Errorf("%w: '%s' declared by both %s and %s",
					ErrDuplicateWorkspace, ws.Name, prev.Location, ws.Location)
			}
			p.byName[ws.Name] = ws
			p.Workspaces = append(p.Workspaces, ws)
		}
	}

	return p, nil
}

// loadWorkspace reads and validates one workspace directory's manifest.
func loadWorkspace(fs fsops.FS, rootPath, dir, pattern string) (*Workspace, error) {
	manifestPath := filepath.Join(dir, "package.json")

	exists, err := fs.Exists(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check workspace manifest: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: no package.json in workspace directory '%s'", ErrManifestNotFound, dir)
	}

	data, err := fs.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace manifest: %w", err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestParse, manifestPath, err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("%w: %s: name is required", ErrManifestParse, manifestPath)
	}

	location, err := workspaceLocation(rootPath, dir)
	if err != nil {
		return nil, err
	}

	return &Workspace{
		Name:         m.Name,
		Location:     location,
		MatchPattern: pattern,
		Manifest:     m,
	}, nil
}
