package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

// scriptLsCmd lists every script declared in the project.
var scriptLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List scripts",
	Long: `Display every script declared across the project's workspaces, sorted by
name, with the workspaces that define each one.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		eng, p, err := loadProject(ctx)
		if err != nil {
			return err
		}

		result, err := eng.ListScripts(ctx, p)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		PrintSection("Scripts")
		if len(result.Scripts) == 0 {
			PrintEmptyState("No scripts declared")
			return nil
		}

		rows := make([][]string, 0, len(result.Scripts))
		for _, s := range result.Scripts {
			rows = append(rows, []string{
				s.Name,
				PrintCount(len(s.Workspaces), "workspace", "workspaces"),
				strings.Join(s.Workspaces, ", "),
			})
		}
		PrintTable([]string{"Script", "Defined In", "Workspaces"}, rows)
		return nil
	},
}
