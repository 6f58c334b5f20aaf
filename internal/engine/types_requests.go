package engine

import "io"

// RunRequest represents a request to run a script across workspaces.
type RunRequest struct {
	// Script is the script name to run.
	Script string

	// Workspaces optionally filters the target set. Each entry is a
	// workspace name or a wildcard pattern; empty means every workspace
	// defining the script.
	Workspaces []string

	// ExtraArgs are appended to each invocation's command line.
	ExtraArgs []string

	// Mode selects sequential or parallel execution (default sequential).
	Mode Mode

	// FailFast stops a sequential run at the first failure; remaining
	// targets are reported as skipped. Ignored in parallel mode.
	FailFast bool

	// DryRun resolves the target set without spawning anything.
	DryRun bool

	// CaptureOutput buffers each workspace's combined output into its
	// RunResult instead of streaming it.
	CaptureOutput bool

	// Progress enables the parallel completion counter on Stderr.
	Progress bool

	// Stdout and Stderr receive streamed process output. Nil discards.
	Stdout io.Writer
	Stderr io.Writer
}
