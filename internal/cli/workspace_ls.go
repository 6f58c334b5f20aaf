package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// workspaceLsCmd lists the project's workspaces.
var workspaceLsCmd = &cobra.Command{
	Use:   "ls [pattern]",
	Short: "List workspaces",
	Long: `Display the project's workspaces in discovery order.

An optional name pattern narrows the listing; '*' matches any run of
characters and matching ignores case.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := ""
		if len(args) > 0 {
			pattern = args[0]
		}

		ctx := context.Background()
		eng, p, err := loadProject(ctx)
		if err != nil {
			return err
		}

		result, err := eng.ListWorkspaces(ctx, p, pattern)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		PrintSection("Workspaces")
		if len(result.Workspaces) == 0 {
			PrintEmptyState("No workspaces found")
			return nil
		}

		rows := make([][]string, 0, len(result.Workspaces))
		for _, ws := range result.Workspaces {
			rows = append(rows, []string{
				ws.Name,
				ws.Location,
				ws.MatchPattern,
				fmt.Sprintf("%d", ws.ScriptCount),
			})
		}
		PrintTable([]string{"Name", "Location", "Pattern", "Scripts"}, rows)
		return nil
	},
}
