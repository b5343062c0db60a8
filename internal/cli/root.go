// Package cli provides the cobra command tree for the superclaude binary:
// installer commands (install, uninstall, migrate, backup, config, status)
// and the PreToolUse hook entry point (intercept).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/superclaude-org/superclaude/internal/config"
	"github.com/superclaude-org/superclaude/internal/logger"
	"github.com/superclaude-org/superclaude/internal/metadata"
	"github.com/superclaude-org/superclaude/internal/settings"
)

// Command group IDs for organizing help output.
const (
	GroupInstallation = "installation"
	GroupSettings     = "settings"
	GroupRuntime      = "runtime"
)

var rootCmd = &cobra.Command{
	Use:   "superclaude",
	Short: "SuperClaude framework installer and hook runtime",
	Long: `SuperClaude framework installer and hook runtime

Installs the SuperClaude hooks component into a Claude Code installation
directory, manages settings.json (deep merge, timestamped backups, restore),
and serves as the PreToolUse hook that routes filesystem tool calls to the
morph backend.`,
	Example: `  # Install the hooks component into ~/.claude
  superclaude install

  # Inspect and edit settings by dot path
  superclaude config get hooks
  superclaude config set experimental.enabled true

  # List and restore settings backups
  superclaude backup list
  superclaude backup restore settings_20260102_150405.json

  # Evaluate a tool call (normally invoked by Claude Code)
  superclaude intercept '{"tool_name":"Read","tool_input":{"file_path":"main.go"}}'`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		logger.Init(logger.Options{Verbose: debug})
	},
}

// Execute runs the root command, printing any non-exit-code error.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !isExitError(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: GroupInstallation, Title: "Installation:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupSettings, Title: "Settings:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupRuntime, Title: "Runtime:"})
	rootCmd.SetHelpCommandGroupID(GroupRuntime)
	rootCmd.SetCompletionCommandGroupID(GroupRuntime)

	rootCmd.PersistentFlags().String("install-dir", "", "Installation directory (default: from config, ~/.claude)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
}

// loadConfig loads the tool configuration, honoring the --install-dir
// override.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dir, _ := cmd.Flags().GetString("install-dir"); dir != "" {
		cfg.InstallDir = dir
	}
	return cfg, nil
}

// newStores builds the settings and metadata stores for a configuration.
func newStores(cfg *config.Configuration) (*settings.Store, *metadata.Store) {
	st := settings.NewStore(cfg.InstallDir)
	st.Retention = cfg.BackupRetention
	return st, metadata.NewStore(cfg.InstallDir)
}
