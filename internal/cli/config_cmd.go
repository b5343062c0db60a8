package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Read and edit settings.json by dot path",
	GroupID: GroupSettings,
	Long: `Read and edit settings.json by dot path.

Values are addressed with dot-separated key paths ("hooks.preToolUse").
Set accepts a JSON value (falling back to a plain string), materializing
intermediate objects as needed. Every write backs up settings.json first.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Print the value at a dot path",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Set the value at a dot path",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <path>",
	Short: "Remove the value at a dot path",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, _ := newStores(cfg)

	value := st.Get(args[0], nil)
	if value == nil {
		return fmt.Errorf("no value at %q", args[0])
	}

	rendered, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("rendering value: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, _ := newStores(cfg)

	// JSON values come through typed; anything unparseable is a string.
	var value any
	if err := json.Unmarshal([]byte(args[1]), &value); err != nil {
		value = args[1]
	}

	if err := st.Set(args[0], value, true); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, _ := newStores(cfg)

	removed, err := st.Remove(args[0], true)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("no value at %q", args[0])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
	return nil
}
