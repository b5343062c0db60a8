package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:     "backup",
	Short:   "List and restore settings backups",
	GroupID: GroupSettings,
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available settings backups",
	RunE:  runBackupList,
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <name>",
	Short: "Restore settings.json from a named backup",
	Long: `Restore settings.json from a named backup.

The backup is validated as JSON before anything is touched, and the current
settings file is snapshotted first, so a restore can itself be undone.`,
	Args: cobra.ExactArgs(1),
	RunE: runBackupRestore,
}

func init() {
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	rootCmd.AddCommand(backupCmd)
}

func runBackupList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, _ := newStores(cfg)

	backups := st.ListBackups()
	if len(backups) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No backups found")
		return nil
	}
	for _, backup := range backups {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %6d bytes  %s\n",
			backup.Name, backup.Size, backup.Modified.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runBackupRestore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, _ := newStores(cfg)

	if !st.RestoreBackup(args[0]) {
		return fmt.Errorf("could not restore backup %q: missing or not valid JSON", args[0])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Restored %s from %s\n", st.FilePath(), args[0])
	return nil
}
