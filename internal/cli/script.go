package cli

import (
	"github.com/spf13/cobra"
)

// scriptCmd is the parent command for script inspection.
var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Inspect scripts",
	Long:  `List and describe the scripts declared across the project's workspaces.`,
}

func init() {
	scriptCmd.AddCommand(scriptLsCmd)
	scriptCmd.AddCommand(scriptDescribeCmd)
}
