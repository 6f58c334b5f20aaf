package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/monorun/internal/match"
	"github.com/danieljhkim/monorun/internal/project"
)

// ListWorkspaces returns the project's workspaces in discovery order,
// optionally filtered by a name pattern.
func (e *Engine) ListWorkspaces(ctx context.Context, p *project.Project, pattern string) (*ListWorkspacesResult, error) {
	workspaces := []WorkspaceInfo{}
	for _, ws := range p.Workspaces {
		if pattern != "" && !match.Matches(pattern, ws.Name) {
			continue
		}
		workspaces = append(workspaces, WorkspaceInfo{
			Name:         ws.Name,
			Location:     ws.Location,
			MatchPattern: ws.MatchPattern,
			ScriptCount:  len(ws.Manifest.Scripts),
		})
	}
	return &ListWorkspacesResult{Workspaces: workspaces}, nil
}

// ListScripts returns every script declared across the project's
// workspaces, sorted by name, with the owning workspaces in discovery
// order.
func (e *Engine) ListScripts(ctx context.Context, p *project.Project) (*ListScriptsResult, error) {
	scripts := []ScriptInfo{}
	for _, script := range project.Scripts(p) {
		owners := make([]string, len(script.DefinedIn))
		for i, ws := range script.DefinedIn {
			owners[i] = ws.Name
		}
		scripts = append(scripts, ScriptInfo{
			Name:       script.Name,
			Workspaces: owners,
		})
	}
	return &ListScriptsResult{Scripts: scripts}, nil
}

// DescribeWorkspace returns detailed information about a single workspace.
func (e *Engine) DescribeWorkspace(ctx context.Context, p *project.Project, name string) (*DescribeWorkspaceResult, error) {
	ws, ok := p.Workspace(name)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrWorkspaceNotFound, name)
	}

	scripts := []ScriptCommand{}
	for _, entry := range ws.Manifest.Scripts {
		scripts = append(scripts, ScriptCommand{Name: entry.Name, Command: entry.Command})
	}

	return &DescribeWorkspaceResult{
		Name:         ws.Name,
		Location:     ws.Location,
		MatchPattern: ws.MatchPattern,
		Version:      ws.Manifest.Version,
		Private:      ws.Manifest.Private,
		Scripts:      scripts,
	}, nil
}

// DescribeScript returns a script's owning workspaces and the command
// each one declares.
func (e *Engine) DescribeScript(ctx context.Context, p *project.Project, name string) (*DescribeScriptResult, error) {
	script, ok := project.ResolveScript(p, name)
	if !ok {
		return nil, fmt.Errorf("%w '%s'", ErrScriptNotFound, name)
	}

	owners := make([]ScriptOwner, len(script.DefinedIn))
	for i, ws := range script.DefinedIn {
		command, _ := ws.Manifest.Scripts.Get(name)
		owners[i] = ScriptOwner{
			Workspace: ws.Name,
			Location:  ws.Location,
			Command:   command,
		}
	}

	return &DescribeScriptResult{Name: name, DefinedIn: owners}, nil
}
