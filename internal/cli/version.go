package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the superclaude release version, overridable at build time
// with -ldflags "-X .../internal/cli.Version=...".
var Version = "3.0.0"

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the superclaude version",
	GroupID: GroupRuntime,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "superclaude %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
