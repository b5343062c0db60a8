// Package intercept decides, per tool call, whether a native Claude Code
// filesystem tool should be redirected to the morph MCP backend. Decisions
// follow a fixed order: safety override for directory tree scans, explicit
// flags, then heuristic auto-activation.
package intercept

import (
	"fmt"
	"os"
	"time"

	"github.com/superclaude-org/superclaude/internal/logger"
)

// ToolMapping maps native tool names to their morph backend equivalents.
// Only tools in this mapping are ever intercepted by the flag or
// auto-activation paths.
var ToolMapping = map[string]string{
	"Read":      "mcp__filesystem-with-morph__read_file",
	"Write":     "mcp__filesystem-with-morph__write_file",
	"Edit":      "mcp__filesystem-with-morph__edit_file",
	"LS":        "mcp__filesystem-with-morph__list_directory",
	"Glob":      "mcp__filesystem-with-morph__search_files",
	"MultiEdit": "mcp__filesystem-with-morph__edit_file",
}

// DirectoryTreeTool is the backend call that requires safe handling: a
// full tree enumeration can blow past the token limit, so risky calls are
// redirected to a shallow listing first.
const DirectoryTreeTool = "mcp__filesystem-with-morph__directory_tree"

// ListDirectoryTool is the safer shallow alternative to a full tree scan.
const ListDirectoryTool = "mcp__filesystem-with-morph__list_directory"

// Decision actions.
const (
	ActionAllow = "allow"
	ActionBlock = "block"
)

// BlockExitCode is the process exit code signalling a blocked tool call.
const BlockExitCode = 2

// Decision is the outcome of evaluating one tool call.
type Decision struct {
	Action           string         `json:"action"`
	ExitCode         int            `json:"exit_code,omitempty"`
	Reason           string         `json:"reason,omitempty"`
	AlternativeTool  string         `json:"alternative_tool,omitempty"`
	AlternativeInput map[string]any `json:"alternative_input,omitempty"`
	MorphMetadata    map[string]any `json:"morph_metadata,omitempty"`
	FallbackMode     bool           `json:"fallback_mode,omitempty"`
	PerformanceNote  string         `json:"performance_note,omitempty"`
	Error            string         `json:"error,omitempty"`
}

// Interceptor evaluates tool calls against flags and heuristics. It owns
// the session counters for the lifetime of the process; construct a fresh
// one per invocation.
type Interceptor struct {
	Policy  Policy
	Stats   SessionStats
	LogPath string

	// Getenv and ListServers are injection points for tests; they default
	// to os.Getenv and a `claude mcp list` invocation.
	Getenv      func(string) string
	ListServers func() (string, error)
}

// New creates an interceptor with the given policy and interception log
// path. An empty logPath disables decision logging.
func New(policy Policy, logPath string) *Interceptor {
	return &Interceptor{
		Policy:      policy,
		Stats:       SessionStats{StartTime: time.Now()},
		LogPath:     logPath,
		Getenv:      os.Getenv,
		ListServers: defaultListServers,
	}
}

// ProcessToolCall evaluates one tool call and returns the decision.
// Exactly one of the morph/native/fallback counters is incremented.
func (ic *Interceptor) ProcessToolCall(toolName string, toolInput map[string]any, flags []string) Decision {
	ic.Stats.TotalOperations++

	// Safety override for directory tree scans takes priority over flags.
	if toolName == DirectoryTreeTool {
		path, _ := toolInput["path"].(string)
		if ic.tokenOverflowRisk(path) {
			ic.Stats.MorphOperations++
			decision := ic.chunkedDirectoryDecision(toolName, path)
			ic.logDecision(toolName, "safe_intercept",
				fmt.Sprintf("chunked directory discovery for %s to prevent token overflow", path))
			return decision
		}
	}

	if ic.shouldIntercept(toolName, toolInput, flags) {
		if !ic.BackendAvailable() {
			ic.Stats.FallbackOperations++
			ic.logDecision(toolName, "fallback", "morph backend unavailable")
			return Decision{
				Action:          ActionAllow,
				Reason:          fmt.Sprintf("morph backend unavailable, using native %s", toolName),
				FallbackMode:    true,
				PerformanceNote: "performance may be reduced while the morph backend is unavailable",
			}
		}

		morphTool := ToolMapping[toolName]
		ic.Stats.MorphOperations++
		ic.logDecision(toolName, "intercept", fmt.Sprintf("routing to %s", morphTool))
		return Decision{
			Action:           ActionBlock,
			ExitCode:         BlockExitCode,
			Reason:           fmt.Sprintf("routing %s to the morph backend for improved performance", toolName),
			AlternativeTool:  morphTool,
			AlternativeInput: ic.mapParameters(toolName, toolInput),
			MorphMetadata: map[string]any{
				"original_tool":        toolName,
				"performance_expected": true,
				"fallback_available":   true,
			},
		}
	}

	ic.Stats.NativeOperations++
	ic.logDecision(toolName, "allow", "using native tool")
	return Decision{Action: ActionAllow}
}

// shouldIntercept applies flag resolution, first match wins, then falls
// through to the auto-activation heuristic.
func (ic *Interceptor) shouldIntercept(toolName string, toolInput map[string]any, flags []string) bool {
	_, supported := ToolMapping[toolName]

	switch {
	case hasFlag(flags, FlagNoMorph):
		logger.Debug("morph disabled by flag", "tool", toolName)
		return false
	case hasFlag(flags, FlagMorphOnly):
		logger.Debug("morph forced by flag", "tool", toolName)
		return supported
	case hasFlag(flags, FlagMorph) || hasFlag(flags, FlagMorphLLM):
		logger.Debug("morph enabled by flag", "tool", toolName)
		return supported
	}

	if ic.shouldAutoActivate(toolName, toolInput, flags) {
		logger.Info("morph auto-activated", "tool", toolName)
		return true
	}
	return false
}

// shouldAutoActivate checks the heuristic triggers. Only supported tools
// are eligible.
func (ic *Interceptor) shouldAutoActivate(toolName string, toolInput map[string]any, flags []string) bool {
	if _, supported := ToolMapping[toolName]; !supported {
		return false
	}

	if ic.Stats.TotalOperations >= ic.Policy.AutoActivateOps {
		logger.Debug("auto-activation: session operation threshold reached",
			"operations", ic.Stats.TotalOperations)
		return true
	}

	if toolName == "MultiEdit" && editCount(toolInput) >= ic.Policy.BatchEditThreshold {
		logger.Debug("auto-activation: batch edit operation")
		return true
	}

	// Directory listings always benefit from the backend under current policy.
	if toolName == "LS" {
		logger.Debug("auto-activation: directory listing")
		return true
	}

	if hasFlag(flags, FlagMorphFast) && ic.performanceCritical(toolName, toolInput) {
		logger.Debug("auto-activation: performance-critical operation")
		return true
	}

	return false
}

// performanceCritical reports whether a call is worth fast-path routing: a
// single-file operation on a file above the size threshold, or a MultiEdit
// touching more than one edit.
func (ic *Interceptor) performanceCritical(toolName string, toolInput map[string]any) bool {
	switch toolName {
	case "Read", "Write", "Edit":
		path, ok := toolInput["file_path"].(string)
		if !ok {
			return false
		}
		info, err := os.Stat(path)
		return err == nil && info.Size() > ic.Policy.LargeFileBytes
	case "MultiEdit":
		return editCount(toolInput) > 1
	}
	return false
}

// mapParameters remaps native tool input for the backend. Most tools pass
// through unchanged; MultiEdit gains batch markers.
func (ic *Interceptor) mapParameters(toolName string, toolInput map[string]any) map[string]any {
	if toolName != "MultiEdit" {
		return toolInput
	}

	filePath, _ := toolInput["file_path"].(string)
	edits, _ := toolInput["edits"].([]any)
	return map[string]any{
		"file_path":        filePath,
		"edits":            edits,
		"batch_mode":       true,
		"atomic_operation": true,
	}
}

// chunkedDirectoryDecision blocks a risky tree scan in favor of a shallow
// listing plus a follow-up strategy for selective deepening.
func (ic *Interceptor) chunkedDirectoryDecision(toolName, path string) Decision {
	return Decision{
		Action:          ActionBlock,
		ExitCode:        BlockExitCode,
		Reason:          fmt.Sprintf("directory tree for %s likely to exceed token limit, using chunked discovery instead", path),
		AlternativeTool: ListDirectoryTool,
		AlternativeInput: map[string]any{
			"path": path,
		},
		MorphMetadata: map[string]any{
			"original_tool":             toolName,
			"safety_mode":               true,
			"token_overflow_prevention": true,
			"chunked_strategy": map[string]any{
				"step":        1,
				"description": "get the root directory listing safely",
				"next_steps": []any{
					"for each subdirectory, try " + DirectoryTreeTool + " individually",
					"if a subdirectory fails, keep it as a basic directory entry",
					"skip known oversized directories (.git, node_modules, logs)",
				},
			},
			"recommended_approach": "use list_directory plus selective directory_tree calls",
		},
	}
}

func editCount(toolInput map[string]any) int {
	edits, _ := toolInput["edits"].([]any)
	return len(edits)
}
