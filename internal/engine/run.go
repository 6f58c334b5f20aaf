package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/danieljhkim/monorun/internal/match"
	"github.com/danieljhkim/monorun/internal/procx"
	"github.com/danieljhkim/monorun/internal/project"
	"github.com/danieljhkim/monorun/internal/ui"
)

// Run resolves a run request's target workspaces and executes the script
// in each of them.
// Algorithm steps:
// 1. Resolve the script by exact name across all workspace manifests
// 2. Resolve the filter against the full workspace set, then intersect
//    with the script's eligible set to form the target set
// 3. Execute the script per target, sequentially or all at once
// 4. Aggregate one RunResult per target, in target-set order
//
// Resolution failures are returned before any process spawns. A child
// process's non-zero exit is never an error here; it is recorded in its
// RunResult and folded into the outcome's Success flag.
func (e *Engine) Run(ctx context.Context, p *project.Project, req *RunRequest) (*RunOutcome, error) {
	// Step 1: Exact script lookup
	script, ok := project.ResolveScript(p, req.Script)
	if !ok {
		return nil, fmt.Errorf("%w '%s'", ErrScriptNotFound, req.Script)
	}

	// Step 2: Filter resolution
	targets, err := resolveTargets(p, script, req.Workspaces)
	if err != nil {
		return nil, err
	}

	mode := req.Mode
	if mode == "" {
		mode = ModeSequential
	}

	e.logger.Debug("targets resolved",
		"script", req.Script,
		"mode", string(mode),
		"targets", workspaceNames(targets))

	outcome := &RunOutcome{
		Script: req.Script,
		Mode:   mode,
		DryRun: req.DryRun,
	}

	// Step 3: Execution
	started := e.clock.Now()
	switch {
	case req.DryRun:
		outcome.Results = planResults(script.Name, targets)
	case mode == ModeParallel:
		outcome.Results = e.runParallel(ctx, p, script.Name, targets, req)
	default:
		outcome.Results = e.runSequential(ctx, p, script.Name, targets, req)
	}
	outcome.Duration = e.clock.Now().Sub(started)

	// Step 4: Aggregate
	outcome.Success = true
	for i := range outcome.Results {
		if !outcome.Results[i].Success() {
			outcome.Success = false
			break
		}
	}

	return outcome, nil
}

// resolveTargets computes the target workspace set for a filter. Every
// token is matched against the full workspace set, not just the script's
// owners: a token without wildcards that matches no workspace at all is a
// hard error, while the union of all matches is then narrowed to the
// eligible set in eligible order. An empty final set means the filter and
// the script's owners do not overlap.
func resolveTargets(p *project.Project, script project.Script, filter []string) ([]*project.Workspace, error) {
	if len(filter) == 0 {
		return script.DefinedIn, nil
	}

	selected := make(map[string]bool)
	for _, token := range filter {
		matched := false
		for _, ws := range p.Workspaces {
			if match.Matches(token, ws.Name) {
				selected[ws.Name] = true
				matched = true
			}
		}
		if !matched && !match.HasWildcard(token) {
			return nil, fmt.Errorf("%w: '%s'", ErrWorkspaceNotFound, token)
		}
	}

	var targets []*project.Workspace
	for _, ws := range script.DefinedIn {
		if selected[ws.Name] {
			targets = append(targets, ws)
		}
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w '%s'", ErrNoMatchingWorkspaces, script.Name)
	}
	return targets, nil
}

// runSequential executes targets one at a time in target-set order. The
// default policy attempts every target; with FailFast the first failure
// marks the remainder skipped.
func (e *Engine) runSequential(ctx context.Context, p *project.Project, scriptName string, targets []*project.Workspace, req *RunRequest) []RunResult {
	results := planResults(scriptName, targets)

	failed := false
	for i := range results {
		if failed && req.FailFast {
			results[i].Skipped = true
			continue
		}
		e.execute(ctx, p, &results[i], req, req.Stdout, req.Stderr)
		if !results[i].Success() {
			failed = true
		}
	}
	return results
}

// runParallel launches every target at once and waits for all of them.
// Fan-out width equals the target set size. Each goroutine writes into
// its own pre-assigned slot, so results keep target-set order regardless
// of completion order. Output lines are tagged per workspace and written
// whole, keeping overlapping streams attributable.
func (e *Engine) runParallel(ctx context.Context, p *project.Project, scriptName string, targets []*project.Workspace, req *RunRequest) []RunResult {
	results := planResults(scriptName, targets)

	var outMu sync.Mutex
	var progress *ui.Progress
	if req.Progress && req.Stderr != nil {
		progress = ui.NewProgress(req.Stderr, &outMu, len(targets))
	}

	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(r *RunResult) {
			defer wg.Done()

			stdout, stderr := req.Stdout, req.Stderr
			var flush func()
			if !req.CaptureOutput {
				tag := r.Workspace + " | "
				outW := ui.NewPrefixWriter(orDiscard(req.Stdout), &outMu, tag)
				errW := ui.NewPrefixWriter(orDiscard(req.Stderr), &outMu, tag)
				stdout, stderr = outW, errW
				flush = func() {
					_ = outW.Flush()
					_ = errW.Flush()
				}
			}

			e.execute(ctx, p, r, req, stdout, stderr)

			if flush != nil {
				flush()
			}
			if progress != nil {
				progress.Done(fmt.Sprintf("%s (%s)", r.Workspace, r.Duration.Round(time.Millisecond)))
			}
		}(&results[i])
	}
	wg.Wait()

	return results
}

// execute runs one target's command and records the result in place.
// A context that ended before the spawn fails the result without starting
// a process.
func (e *Engine) execute(ctx context.Context, p *project.Project, r *RunResult, req *RunRequest, stdout, stderr io.Writer) {
	if err := ctx.Err(); err != nil {
		r.err = err
		r.Error = err.Error()
		return
	}

	var capture *bytes.Buffer
	if req.CaptureOutput {
		capture = &bytes.Buffer{}
		// One buffer for both streams; os/exec serializes writes to an
		// identical writer.
		stdout, stderr = capture, capture
	}

	started := e.clock.Now()
	code, err := e.runner.Run(ctx, procx.Invocation{
		Dir:       filepath.Join(p.Root, r.Location),
		Command:   r.Command,
		ExtraArgs: req.ExtraArgs,
		Stdout:    orDiscard(stdout),
		Stderr:    orDiscard(stderr),
	})
	r.Duration = e.clock.Now().Sub(started)
	r.ExitCode = code
	if err != nil {
		r.err = err
		r.Error = err.Error()
	}
	if capture != nil {
		r.Output = capture.String()
	}

	e.logger.Debug("script finished",
		"workspace", r.Workspace,
		"exit", r.ExitCode,
		"duration", r.Duration)
}

// planResults seeds one result per target with its resolved command.
func planResults(scriptName string, targets []*project.Workspace) []RunResult {
	results := make([]RunResult, len(targets))
	for i, ws := range targets {
		command, _ := ws.Manifest.Scripts.Get(scriptName)
		results[i] = RunResult{
			Workspace: ws.Name,
			Location:  ws.Location,
			Command:   command,
		}
	}
	return results
}

func workspaceNames(targets []*project.Workspace) []string {
	names := make([]string, len(targets))
	for i, ws := range targets {
		names[i] = ws.Name
	}
	return names
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
