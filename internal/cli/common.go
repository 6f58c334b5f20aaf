package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/danieljhkim/monorun/internal/clock"
	"github.com/danieljhkim/monorun/internal/engine"
	"github.com/danieljhkim/monorun/internal/fsops"
	"github.com/danieljhkim/monorun/internal/procx"
	"github.com/danieljhkim/monorun/internal/project"
)

// newEngine creates a new engine with real implementations of all
// dependencies. Verbose mode attaches a debug-level text logger on stderr.
func newEngine() *engine.Engine {
	var logger *slog.Logger
	if verboseOutput {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	fs := fsops.NewRealFS()
	runner := procx.NewRealRunner()
	clk := &clock.RealClock{}

	return engine.New(fs, runner, clk, logger)
}

// resolveRoot returns the absolute project root from the --root flag.
func resolveRoot() (string, error) {
	path := projectRoot
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root: %w", err)
	}
	return abs, nil
}

// loadProject creates the engine and loads the project at the resolved
// root. Every verb that touches the monorepo goes through here.
func loadProject(ctx context.Context) (*engine.Engine, *project.Project, error) {
	root, err := resolveRoot()
	if err != nil {
		return nil, nil, err
	}

	eng := newEngine()
	p, err := eng.LoadProject(ctx, root)
	if err != nil {
		return nil, nil, err
	}
	return eng, p, nil
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// formatError formats an error for display.
func formatError(err error) string {
	initColors()
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
