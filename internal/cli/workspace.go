package cli

import (
	"github.com/spf13/cobra"
)

// workspaceCmd is the parent command for workspace inspection.
var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Inspect workspaces",
	Long:  `List and describe the workspaces discovered from the root manifest.`,
}

func init() {
	workspaceCmd.AddCommand(workspaceLsCmd)
	workspaceCmd.AddCommand(workspaceDescribeCmd)
}
