// Package engine provides the core business logic for monorun operations.
//
// The engine package acts as the orchestration layer between CLI commands
// and lower-level operations. It coordinates project loading, workspace and
// script resolution, and script execution across workspaces.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Run: Resolves a run request's target set and executes it
//   - List/Describe: Read-only views over the loaded project
package engine

import (
	"context"
	"io"
	"log/slog"

	"github.com/danieljhkim/monorun/internal/clock"
	"github.com/danieljhkim/monorun/internal/fsops"
	"github.com/danieljhkim/monorun/internal/procx"
	"github.com/danieljhkim/monorun/internal/project"
)

// Engine orchestrates all monorun operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs     fsops.FS
	runner procx.Runner
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new Engine with the given dependencies. A nil logger
// discards diagnostics.
func New(fs fsops.FS, runner procx.Runner, clk clock.Clock, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		fs:     fs,
		runner: runner,
		clock:  clk,
		logger: logger,
	}
}

// LoadProject builds the Project model for the monorepo rooted at rootPath.
func (e *Engine) LoadProject(ctx context.Context, rootPath string) (*project.Project, error) {
	p, err := project.Load(e.fs, rootPath)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("project loaded", "root", p.Root, "workspaces", len(p.Workspaces))
	return p, nil
}
