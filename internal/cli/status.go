package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/superclaude-org/superclaude/internal/hooks"
	"github.com/superclaude-org/superclaude/internal/intercept"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show installed components and hook health",
	GroupID: GroupInstallation,
	Long: `Show installed components and hook health.

Reports the framework version and registered components from the metadata
file, validates that every configured hook command points at an existing
script, and checks whether the morph backend is reachable.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, md := newStores(cfg)
	out := cmd.OutOrStdout()

	if version := md.FrameworkVersion(); version != "" {
		fmt.Fprintf(out, "Framework version: %s\n", version)
	} else {
		fmt.Fprintln(out, "Framework version: not installed")
	}

	components := md.InstalledComponents()
	if len(components) == 0 {
		fmt.Fprintln(out, "Components: none registered")
	} else {
		fmt.Fprintln(out, "Components:")
		names := make([]string, 0, len(components))
		for name := range components {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			info := components[name]
			version, _ := info["version"].(string)
			status, _ := info["status"].(string)
			fmt.Fprintf(out, "  %-12s v%-8s %s\n", name, version, status)
		}
	}

	cfgHooks := hooks.Config(st)
	if len(cfgHooks) == 0 {
		fmt.Fprintln(out, "Hooks: not configured")
	} else if errs := hooks.ValidatePaths(cfgHooks); len(errs) > 0 {
		fmt.Fprintf(out, "Hooks: %d problem(s)\n", len(errs))
		for _, e := range errs {
			fmt.Fprintf(out, "  ! %s\n", e)
		}
	} else {
		fmt.Fprintf(out, "Hooks: %d type(s) configured, all scripts present\n", len(cfgHooks))
	}

	ic := intercept.New(interceptPolicy(cfg), "")
	if ic.BackendAvailable() {
		fmt.Fprintln(out, "Morph backend: available")
	} else {
		fmt.Fprintln(out, "Morph backend: unavailable (set "+intercept.CredentialVar+" and register "+intercept.BackendServerName+")")
	}

	return nil
}
