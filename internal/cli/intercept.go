package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/superclaude-org/superclaude/internal/config"
	"github.com/superclaude-org/superclaude/internal/intercept"
	"github.com/superclaude-org/superclaude/internal/logger"
)

var interceptCmd = &cobra.Command{
	Use:     "intercept [flags] <tool-call-json>",
	Short:   "Evaluate one tool call (PreToolUse hook entry point)",
	GroupID: GroupRuntime,
	Long: `Evaluate one tool call and print the routing decision.

This is the PreToolUse hook entry point. It receives one JSON argument with
tool_name and tool_input, emits a decision object on stdout, and exits 0 to
allow the native call or 2 to block it in favor of the morph alternative.
Internal errors never block: the call is allowed with an error annotation.

Recognized flags: --morph, --morphllm, --morph-only, --morph-fast,
--no-morph. The MORPH_ENABLED, MORPH_ONLY, MORPH_FAST, and NO_MORPH
environment variables enable the same behavior.`,
	// Morph flags share the argument list with the payload; cobra must not
	// consume them.
	DisableFlagParsing: true,
	RunE:               runIntercept,
}

var interceptStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the interception log",
	RunE:  runInterceptStats,
}

func init() {
	interceptCmd.AddCommand(interceptStatsCmd)
	rootCmd.AddCommand(interceptCmd)
}

// toolCallPayload is the JSON document Claude Code hands the hook.
type toolCallPayload struct {
	ToolName  string         `json:"tool_name"`
	ToolInput map[string]any `json:"tool_input"`
}

func runIntercept(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
		return cmd.Help()
	}

	payloadArg := ""
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			payloadArg = arg
			break
		}
	}
	if payloadArg == "" {
		fmt.Fprintln(cmd.OutOrStdout(), `{"error": "no tool call data provided"}`)
		return NewExitError(ExitFailure)
	}

	cfg, err := config.Load()
	if err != nil {
		// Fail open: a broken config must not block the user's tool call.
		return emitDecision(cmd, intercept.Decision{
			Action:       intercept.ActionAllow,
			Error:        err.Error(),
			FallbackMode: true,
		})
	}

	var payload toolCallPayload
	if err := json.Unmarshal([]byte(payloadArg), &payload); err != nil {
		return emitDecision(cmd, intercept.Decision{
			Action:       intercept.ActionAllow,
			Error:        fmt.Sprintf("invalid tool call data: %v", err),
			FallbackMode: true,
		})
	}

	ic := intercept.New(interceptPolicy(cfg), cfg.InterceptionLog)
	flags := intercept.ResolveFlags(args, os.Getenv)
	decision := ic.ProcessToolCall(payload.ToolName, payload.ToolInput, flags)
	return emitDecision(cmd, decision)
}

// emitDecision prints the decision JSON and maps a block to exit code 2.
func emitDecision(cmd *cobra.Command, decision intercept.Decision) error {
	data, err := json.Marshal(decision)
	if err != nil {
		logger.Error("could not marshal decision", "error", err)
		fmt.Fprintln(cmd.OutOrStdout(), `{"action": "allow", "error": "internal encoding failure"}`)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	if decision.Action == intercept.ActionBlock {
		return NewExitError(decision.ExitCode)
	}
	return nil
}

func runInterceptStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	summary, err := intercept.SummarizeLog(cfg.InterceptionLog)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "No interception log found")
			return nil
		}
		return fmt.Errorf("reading interception log: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Records: %d\n", summary.Records)
	fmt.Fprintln(out, "Actions:")
	for _, name := range sortedKeys(summary.Actions) {
		fmt.Fprintf(out, "  %-16s %d\n", name, summary.Actions[name])
	}
	fmt.Fprintln(out, "Tools:")
	for _, name := range sortedKeys(summary.Tools) {
		fmt.Fprintf(out, "  %-16s %d\n", name, summary.Tools[name])
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// interceptPolicy maps the tool configuration onto the interception policy.
func interceptPolicy(cfg *config.Configuration) intercept.Policy {
	return intercept.Policy{
		AutoActivateOps:     cfg.AutoActivateOps,
		BatchEditThreshold:  cfg.BatchEditThreshold,
		LargeFileBytes:      cfg.LargeFileBytes,
		OverflowSubdirLimit: cfg.OverflowSubdirLimit,
		OverflowEntryLimit:  cfg.OverflowEntryLimit,
		OverflowDenylist:    cfg.OverflowDenylist,
	}
}
