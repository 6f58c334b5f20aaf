package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// workspaceDescribeCmd shows detailed information about a workspace.
var workspaceDescribeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Show workspace details",
	Long:  `Display a workspace's manifest details and the scripts it declares.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		ctx := context.Background()
		eng, p, err := loadProject(ctx)
		if err != nil {
			return err
		}

		result, err := eng.DescribeWorkspace(ctx, p, name)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		PrintSection("Workspace Details")

		PrintLabelValue("Name", result.Name)
		PrintLabelValue("Location", result.Location)
		PrintLabelValue("Pattern", result.MatchPattern)
		if result.Version != "" {
			PrintLabelValue("Version", result.Version)
		}
		PrintLabelValue("Private", fmt.Sprintf("%t", result.Private))

		if len(result.Scripts) > 0 {
			PrintSubsection(fmt.Sprintf("\nScripts (%s)", PrintCount(len(result.Scripts), "script", "scripts")))
			rows := make([][]string, 0, len(result.Scripts))
			for _, s := range result.Scripts {
				rows = append(rows, []string{s.Name, s.Command})
			}
			PrintTable([]string{"Name", "Command"}, rows)
		} else {
			PrintSubsection("\nScripts")
			PrintEmptyState("No scripts declared")
		}

		return nil
	},
}
