package engine

import "errors"

var (
	// ErrScriptNotFound indicates no workspace defines the requested script.
	ErrScriptNotFound = errors.New("no workspaces found for script")

	// ErrWorkspaceNotFound indicates a named workspace does not exist in
	// the project.
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrNoMatchingWorkspaces indicates a workspace filter selected no
	// workspace defining the requested script.
	ErrNoMatchingWorkspaces = errors.New("no matching workspaces found for script")
)
