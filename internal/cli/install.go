package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/superclaude-org/superclaude/internal/component"
)

var installCmd = &cobra.Command{
	Use:     "install",
	Short:   "Install the SuperClaude hooks component",
	GroupID: GroupInstallation,
	Long: `Install the SuperClaude hooks component.

This installs:
  - Hook scripts (tool interceptor, performance monitor, error handler)
    to <install-dir>/hooks/
  - The matching hooks configuration merged into <install-dir>/settings.json
  - A component registration in <install-dir>/.superclaude-metadata.json

Existing hook scripts are saved aside as <name>.bak before overwrite, and
settings.json is backed up before it is modified.`,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, md := newStores(cfg)

	stop := startSpinner(cfg.ShowProgress, "Installing hooks component...")
	result, err := component.Install(cfg.InstallDir, st, md)
	stop()
	if err != nil {
		return fmt.Errorf("installing hooks component: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installed hooks component v%s to %s\n", result.Version, cfg.InstallDir)
	for _, script := range result.Scripts {
		marker := "+"
		if script.Action == "updated" {
			marker = "~"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s %s (%s)\n", marker, script.Name, script.Action)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Hooks configured in %s: %d type(s)\n", st.FilePath(), len(result.HooksTypes))

	return nil
}

// startSpinner shows a progress spinner when enabled and stdout is a
// terminal. The returned func stops it; it is a no-op otherwise.
func startSpinner(enabled bool, message string) func() {
	if !enabled || !term.IsTerminal(int(os.Stdout.Fd())) {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}
