// Package procx provides the process execution capability used to run
// workspace scripts.
package procx

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"
)

// Invocation describes one script execution.
type Invocation struct {
	// Dir is the working directory the command runs in.
	Dir string

	// Command is the shell command line declared in the manifest.
	Command string

	// ExtraArgs are appended to the command line, each quoted so it
	// reaches the script as a single argument.
	ExtraArgs []string

	// Stdout and Stderr receive the process output streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Runner provides an abstraction for running workspace scripts.
type Runner interface {
	// Run executes the invocation and blocks until the process exits.
	// A non-zero exit status is not an error; the error is non-nil only
	// when the process could not be started or the context ended the run.
	Run(ctx context.Context, inv Invocation) (exitCode int, err error)
}

// RealRunner implements Runner by spawning the platform shell.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes the command line via "sh -c" ("cmd /C" on Windows) in the
// invocation's working directory. The environment is inherited from the
// calling process.
func (r *RealRunner) Run(ctx context.Context, inv Invocation) (int, error) {
	line := inv.Command
	if len(inv.ExtraArgs) > 0 {
		line += " " + quoteArgs(inv.ExtraArgs)
	}

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", line)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", line)
	}
	cmd.Dir = inv.Dir
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ctx.Err() != nil {
			return exitErr.ExitCode(), ctx.Err()
		}
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// quoteArgs joins extra args into a shell-safe suffix for the command line.
func quoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = quoteArg(a)
	}
	return strings.Join(quoted, " ")
}

// quoteArg single-quotes an argument unless it consists solely of
// characters that no POSIX shell interprets.
func quoteArg(s string) string {
	if s != "" && isShellSafe(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func isShellSafe(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("@%+=:,./_-", r):
		default:
			return false
		}
	}
	return true
}

// FakeRunner implements Runner with scripted results for testing.
// Results are keyed by the base name of the invocation's working
// directory. Configure before use; Run may be called concurrently.
type FakeRunner struct {
	mu      sync.Mutex
	calls   []Invocation
	exits   map[string]int
	outputs map[string]string
	err     error

	barrier chan struct{}
	arrived int
	parties int
}

// NewFakeRunner creates a new FakeRunner where every invocation succeeds
// with exit code 0.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		exits:   make(map[string]int),
		outputs: make(map[string]string),
	}
}

// SetExit sets the exit code for invocations keyed by working directory
// base name.
func (f *FakeRunner) SetExit(key string, code int) {
	f.exits[key] = code
}

// SetOutput sets text written to the invocation's stdout for the given key.
func (f *FakeRunner) SetOutput(key, text string) {
	f.outputs[key] = text
}

// SetError makes every invocation fail to spawn with err.
func (f *FakeRunner) SetError(err error) {
	f.err = err
}

// SetBarrier makes each Run block until parties invocations have started.
// A caller that launches invocations one at a time will time out instead
// of reaching the barrier, so tests can prove launches overlap.
func (f *FakeRunner) SetBarrier(parties int) {
	f.parties = parties
	f.barrier = make(chan struct{})
}

// Run records the invocation and returns the scripted result.
func (f *FakeRunner) Run(ctx context.Context, inv Invocation) (int, error) {
	f.mu.Lock()
	f.calls = append(f.calls, inv)
	key := filepath.Base(inv.Dir)
	code := f.exits[key]
	output := f.outputs[key]
	err := f.err
	barrier := f.barrier
	if barrier != nil {
		f.arrived++
		if f.arrived == f.parties {
			close(barrier)
		}
	}
	f.mu.Unlock()

	if barrier != nil {
		select {
		case <-barrier:
		case <-ctx.Done():
			return -1, ctx.Err()
		case <-time.After(5 * time.Second):
			return -1, errors.New("timed out waiting for concurrent launches")
		}
	}

	if err != nil {
		return -1, err
	}
	if output != "" && inv.Stdout != nil {
		_, _ = io.WriteString(inv.Stdout, output)
	}
	return code, nil
}

// Calls returns the recorded invocations in call order.
func (f *FakeRunner) Calls() []Invocation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}
