// Package project models a monorepo: the root manifest, the workspaces its
// glob list expands to, and the scripts those workspaces declare. A Project
// is built once by Load and is immutable afterwards, so concurrent reads
// during a parallel run need no locking.
package project

// Workspace is one addressable sub-package of the monorepo.
type Workspace struct {
	// Name is the package name from the workspace's manifest, unique
	// within the Project.
	Name string

	// Location is the workspace directory relative to the project root.
	Location string

	// MatchPattern is the root manifest glob entry that produced this
	// workspace.
	MatchPattern string

	// Manifest is the workspace's parsed package.json.
	Manifest *Manifest
}

// Project is the loaded monorepo model.
type Project struct {
	// Root is the absolute path of the project root.
	Root string

	// Workspaces holds every discovered workspace in discovery order:
	// root manifest glob order, then enumeration order within each glob.
	Workspaces []*Workspace

	byName map[string]*Workspace
}

// Workspace returns the workspace with the given name.
func (p *Project) Workspace(name string) (*Workspace, bool) {
	ws, ok := p.byName[name]
	return ws, ok
}
