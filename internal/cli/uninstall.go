package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/superclaude-org/superclaude/internal/component"
)

var uninstallCmd = &cobra.Command{
	Use:     "uninstall",
	Short:   "Remove the SuperClaude hooks component",
	GroupID: GroupInstallation,
	Long: `Remove the SuperClaude hooks component.

Hook scripts are deleted, the component's hook types are stripped from
settings.json (with a backup taken first), and the component registration
is removed from the metadata file. Pieces that are already gone are
reported, not treated as failures.`,
	RunE: runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, md := newStores(cfg)

	result, err := component.Uninstall(cfg.InstallDir, st, md)
	if err != nil {
		return fmt.Errorf("uninstalling hooks component: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Removed %d hook script(s)\n", len(result.ScriptsRemoved))
	if result.HooksRemoved {
		fmt.Fprintf(out, "Hooks configuration removed from %s\n", st.FilePath())
	} else {
		fmt.Fprintln(out, "No hooks configuration found in settings")
	}
	if result.WasRegistered {
		fmt.Fprintln(out, "Component unregistered from metadata")
	} else {
		fmt.Fprintln(out, "Component was not registered")
	}

	return nil
}
