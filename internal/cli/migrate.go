package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:     "migrate",
	Short:   "Move superclaude bookkeeping out of settings.json",
	GroupID: GroupSettings,
	Long: `Move superclaude bookkeeping out of settings.json.

Earlier releases stored the component registry and framework record inside
the host's settings.json. This moves the components, framework, superclaude,
and mcp keys into .superclaude-metadata.json and rewrites a cleaned
settings.json (with a backup taken first).`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, md := newStores(cfg)

	migrated, err := md.Migrate(st)
	if err != nil {
		return fmt.Errorf("migrating superclaude data: %w", err)
	}
	if !migrated {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to migrate")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Migrated superclaude data to %s\n", md.FilePath())
	return nil
}
