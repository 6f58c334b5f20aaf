package project

import (
	"slices"
	"strings"
)

// Script is a named command aggregated across the workspaces declaring it.
// One logical script can have multiple owners, each with its own command
// line.
type Script struct {
	// Name is the script name as declared in workspace manifests.
	Name string

	// DefinedIn lists the owning workspaces in discovery order.
	DefinedIn []*Workspace
}

// Scripts returns every script declared by the project's workspaces,
// sorted by name. Owners within each script keep discovery order.
func Scripts(p *Project) []Script {
	index := make(map[string]int)
	var scripts []Script

	for _, ws := range p.Workspaces {
		for _, entry := range ws.Manifest.Scripts {
			i, ok := index[entry.Name]
			if !ok {
				i = len(scripts)
				index[entry.Name] = i
				scripts = append(scripts, Script{Name: entry.Name})
			}
			scripts[i].DefinedIn = append(scripts[i].DefinedIn, ws)
		}
	}

	slices.SortFunc(scripts, func(a, b Script) int {
		return strings.Compare(a.Name, b.Name)
	})

	return scripts
}

// ResolveScript looks up a script by exact name. The second return value
// reports whether any workspace declares it.
func ResolveScript(p *Project, name string) (Script, bool) {
	script := Script{Name: name}
	for _, ws := range p.Workspaces {
		if _, ok := ws.Manifest.Scripts.Get(name); ok {
			script.DefinedIn = append(script.DefinedIn, ws)
		}
	}
	if len(script.DefinedIn) == 0 {
		return Script{}, false
	}
	return script, true
}
