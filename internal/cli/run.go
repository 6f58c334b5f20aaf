package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/danieljhkim/monorun/internal/config"
	"github.com/danieljhkim/monorun/internal/engine"
)

var (
	runWorkspaces []string
	runParallel   bool
	runFailFast   bool
	runDryRun     bool
)

var runCmd = &cobra.Command{
	Use:   "run <script> [-- args...]",
	Short: "Run a script across the workspaces that define it",
	Long: `Run a script in every workspace whose manifest declares it.

Targets execute in workspace discovery order by default; --parallel launches
them all at once and keeps the reported results in the same order. Use
--workspace to narrow the target set by name or '*' pattern, and anything
after -- is appended to each workspace's command line.

A workspace's non-zero exit marks the run failed but does not abort the
other targets unless --fail-fast is set.`,
	Example: `  monorun run build
  monorun run test --parallel
  monorun run lint -w 'library-*' -w application-a
  monorun run test -- --update-snapshots`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extraArgs := []string{}
		if at := cmd.ArgsLenAtDash(); at >= 0 {
			extraArgs = args[at:]
			args = args[:at]
		}
		if len(args) != 1 {
			return fmt.Errorf("run accepts exactly one script name, got %d", len(args))
		}
		script := args[0]

		ctx := context.Background()
		eng, p, err := loadProject(ctx)
		if err != nil {
			return err
		}

		cfg, err := config.Load(p.Root)
		if err != nil {
			return err
		}
		if cfg.NoColor {
			color.NoColor = true
		}

		mode := engine.ModeSequential
		if cfg.Mode != "" {
			mode, _ = engine.ParseMode(cfg.Mode)
		}
		if cmd.Flags().Changed("parallel") {
			mode = engine.ModeSequential
			if runParallel {
				mode = engine.ModeParallel
			}
		}

		failFast := cfg.FailFast
		if cmd.Flags().Changed("fail-fast") {
			failFast = runFailFast
		}

		progress := mode == engine.ModeParallel && !jsonOutput &&
			term.IsTerminal(int(os.Stderr.Fd()))

		req := &engine.RunRequest{
			Script:        script,
			Workspaces:    runWorkspaces,
			ExtraArgs:     extraArgs,
			Mode:          mode,
			FailFast:      failFast,
			DryRun:        runDryRun,
			CaptureOutput: jsonOutput,
			Progress:      progress,
			Stdout:        cmd.OutOrStdout(),
			Stderr:        cmd.ErrOrStderr(),
		}

		outcome, err := eng.Run(ctx, p, req)
		if err != nil {
			return err
		}

		if jsonOutput {
			if err := outputJSON(cmd.OutOrStdout(), outcome); err != nil {
				return err
			}
			if !outcome.Success {
				return fmt.Errorf("script '%s' failed", script)
			}
			return nil
		}

		if runDryRun {
			PrintSection("Dry Run")
			PrintInfo(fmt.Sprintf("Would run '%s' in %s", script,
				PrintCount(len(outcome.Results), "workspace", "workspaces")))
			fmt.Println()
			rows := make([][]string, 0, len(outcome.Results))
			for _, r := range outcome.Results {
				rows = append(rows, []string{r.Workspace, r.Command})
			}
			PrintTable([]string{"Workspace", "Command"}, rows)
			return nil
		}

		printRunSummary(outcome)
		if !outcome.Success {
			return fmt.Errorf("script '%s' failed in %s", script,
				PrintCount(countFailed(outcome), "workspace", "workspaces"))
		}
		return nil
	},
}

// printRunSummary renders the per-workspace results table and the final
// verdict line.
func printRunSummary(outcome *engine.RunOutcome) {
	PrintSection("Run Summary")

	rows := make([][]string, 0, len(outcome.Results))
	for _, r := range outcome.Results {
		rows = append(rows, []string{r.Workspace, resultStatus(&r), resultDuration(&r)})
	}
	PrintTable([]string{"Workspace", "Status", "Duration"}, rows)
	fmt.Println()

	total := PrintCount(len(outcome.Results), "workspace", "workspaces")
	elapsed := outcome.Duration.Round(time.Millisecond)
	if outcome.Success {
		PrintSuccess(fmt.Sprintf("Ran '%s' in %s (%s, %s)",
			outcome.Script, total, outcome.Mode, elapsed))
		return
	}

	PrintError(fmt.Sprintf("'%s' failed in %d of %s",
		outcome.Script, countFailed(outcome), total))
	if skipped := countSkipped(outcome); skipped > 0 {
		PrintWarning(fmt.Sprintf("%s skipped after the first failure",
			PrintCount(skipped, "workspace", "workspaces")))
	}
}

func resultStatus(r *engine.RunResult) string {
	switch {
	case r.Skipped:
		return "skipped"
	case r.Err() != nil:
		return "error: " + r.Error
	case r.ExitCode != 0:
		return fmt.Sprintf("exit %d", r.ExitCode)
	default:
		return "ok"
	}
}

func resultDuration(r *engine.RunResult) string {
	if r.Skipped {
		return "-"
	}
	return r.Duration.Round(time.Millisecond).String()
}

func countFailed(outcome *engine.RunOutcome) int {
	n := 0
	for i := range outcome.Results {
		r := &outcome.Results[i]
		if !r.Skipped && !r.Success() {
			n++
		}
	}
	return n
}

func countSkipped(outcome *engine.RunOutcome) int {
	n := 0
	for i := range outcome.Results {
		if outcome.Results[i].Skipped {
			n++
		}
	}
	return n
}

func init() {
	runCmd.Flags().StringArrayVarP(&runWorkspaces, "workspace", "w", nil,
		"Target workspace name or pattern (repeatable)")
	runCmd.Flags().BoolVarP(&runParallel, "parallel", "p", false,
		"Run all targets at once instead of sequentially")
	runCmd.Flags().BoolVar(&runFailFast, "fail-fast", false,
		"Stop a sequential run at the first failure")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false,
		"Resolve and show targets without running anything")
}
