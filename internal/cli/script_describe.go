package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// scriptDescribeCmd shows which workspaces define a script and how.
var scriptDescribeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Show script details",
	Long:  `Display the workspaces that define a script and the command each one runs.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		ctx := context.Background()
		eng, p, err := loadProject(ctx)
		if err != nil {
			return err
		}

		result, err := eng.DescribeScript(ctx, p, name)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		PrintSection("Script Details")

		PrintLabelValue("Name", result.Name)
		PrintLabelValue("Defined In", PrintCount(len(result.DefinedIn), "workspace", "workspaces"))

		PrintSubsection(fmt.Sprintf("\nOwners (%s)", PrintCount(len(result.DefinedIn), "workspace", "workspaces")))
		rows := make([][]string, 0, len(result.DefinedIn))
		for _, owner := range result.DefinedIn {
			rows = append(rows, []string{owner.Workspace, owner.Location, owner.Command})
		}
		PrintTable([]string{"Workspace", "Location", "Command"}, rows)

		return nil
	},
}
