package engine

import "time"

// RunResult is the outcome of one workspace's script invocation.
type RunResult struct {
	// Workspace is the workspace name.
	Workspace string

	// Location is the workspace directory relative to the project root.
	Location string

	// Command is the command line the script resolved to in this
	// workspace's manifest.
	Command string

	// ExitCode is the process exit status. Zero for dry-run and skipped
	// entries.
	ExitCode int

	// Error is the spawn failure message, empty when the process ran.
	Error string

	// Skipped marks a target not attempted because an earlier failure
	// stopped a fail-fast sequential run.
	Skipped bool

	// Output is the captured combined output, when capture was requested.
	Output string

	// Duration is the wall-clock time of the invocation.
	Duration time.Duration

	err error
}

// Err returns the spawn failure, if any. Non-zero exits are not spawn
// failures.
func (r *RunResult) Err() error { return r.err }

// Success reports whether the invocation ran to completion with a zero
// exit status.
func (r *RunResult) Success() bool {
	return r.err == nil && !r.Skipped && r.ExitCode == 0
}

// RunOutcome aggregates a run request's per-workspace results.
type RunOutcome struct {
	// Script is the script that ran.
	Script string

	// Mode is the execution mode used.
	Mode Mode

	// DryRun marks an outcome that resolved targets without executing.
	DryRun bool

	// Results holds one entry per target workspace, in target-set order
	// regardless of completion order.
	Results []RunResult

	// Success is true only if every target succeeded.
	Success bool

	// Duration is the wall-clock time of the whole request.
	Duration time.Duration
}

// WorkspaceInfo summarizes one workspace for listing.
type WorkspaceInfo struct {
	Name         string
	Location     string
	MatchPattern string
	ScriptCount  int
}

// ListWorkspacesResult represents the result of listing workspaces.
type ListWorkspacesResult struct {
	Workspaces []WorkspaceInfo
}

// ScriptInfo summarizes one script for listing.
type ScriptInfo struct {
	Name       string
	Workspaces []string
}

// ListScriptsResult represents the result of listing scripts.
type ListScriptsResult struct {
	Scripts []ScriptInfo
}

// ScriptCommand pairs a script name with the command it runs.
type ScriptCommand struct {
	Name    string
	Command string
}

// DescribeWorkspaceResult represents the result of describing a workspace.
type DescribeWorkspaceResult struct {
	Name         string
	Location     string
	MatchPattern string
	Version      string
	Private      bool
	Scripts      []ScriptCommand
}

// ScriptOwner is one workspace's declaration of a script.
type ScriptOwner struct {
	Workspace string
	Location  string
	Command   string
}

// DescribeScriptResult represents the result of describing a script.
type DescribeScriptResult struct {
	Name      string
	DefinedIn []ScriptOwner
}
