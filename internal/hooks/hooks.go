// Package hooks validates and manages the Claude Code hooks configuration
// stored under the "hooks" key of settings.json.
package hooks

import (
	"fmt"

	"github.com/superclaude-org/superclaude/internal/settings"
)

// Hook type names accepted in a hooks configuration.
const (
	PreToolUse   = "preToolUse"
	PostToolUse  = "postToolUse"
	ErrorHandler = "errorHandler"
	Notification = "notification"
	Stop         = "stop"
	SubagentStop = "subagentStop"
)

// ValidTypes is the fixed set of accepted hook type names.
var ValidTypes = []string{PreToolUse, PostToolUse, ErrorHandler, Notification, Stop, SubagentStop}

// ValidationError indicates a hooks configuration failed the schema check.
// The settings update that carried it is rejected with no partial write.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid hooks configuration: %s", e.Reason)
}

// Validate reports whether a hooks configuration is well formed: every
// top-level key a known hook type, every value a sequence of mappings with
// string matcher and command keys. Extra entry keys are ignored; any
// violation invalidates the whole document.
func Validate(cfg map[string]any) bool {
	for hookType, raw := range cfg {
		if !isValidType(hookType) {
			return false
		}

		entries, ok := raw.([]any)
		if !ok {
			return false
		}
		for _, rawEntry := range entries {
			entry, ok := rawEntry.(map[string]any)
			if !ok {
				return false
			}
			if _, ok := entry["matcher"].(string); !ok {
				return false
			}
			if _, ok := entry["command"].(string); !ok {
				return false
			}
		}
	}
	return true
}

// Configure merges a hooks configuration into the settings document.
// An empty configuration is a no-op; an invalid one yields a
// *ValidationError without touching the file.
func Configure(store *settings.Store, cfg map[string]any) error {
	if len(cfg) == 0 {
		return nil
	}
	if !Validate(cfg) {
		return &ValidationError{Reason: "unknown hook type or malformed hook entry"}
	}
	return store.Update(map[string]any{"hooks": cfg}, true)
}

// Add appends a single hook entry to the given hook type.
func Add(store *settings.Store, hookType, matcher, command string) error {
	if !isValidType(hookType) {
		return &ValidationError{Reason: fmt.Sprintf("unknown hook type %q", hookType)}
	}

	doc, err := store.Load()
	if err != nil {
		return err
	}

	hooksCfg, ok := doc["hooks"].(map[string]any)
	if !ok {
		hooksCfg = map[string]any{}
		doc["hooks"] = hooksCfg
	}
	entries, _ := hooksCfg[hookType].([]any)
	hooksCfg[hookType] = append(entries, map[string]any{
		"matcher": matcher,
		"command": command,
	})

	return store.Save(doc, true)
}

// Remove deletes one hook type from the configuration, or the whole
// "hooks" key when hookType is empty. Returns false when nothing matched.
func Remove(store *settings.Store, hookType string) (bool, error) {
	doc, err := store.Load()
	if err != nil {
		return false, err
	}

	hooksCfg, ok := doc["hooks"].(map[string]any)
	if !ok {
		return false, nil
	}

	if hookType == "" {
		delete(doc, "hooks")
		return true, store.Save(doc, true)
	}
	if _, ok := hooksCfg[hookType]; !ok {
		return false, nil
	}
	delete(hooksCfg, hookType)
	return true, store.Save(doc, true)
}

// Config returns the current hooks configuration, empty when none is set.
func Config(store *settings.Store) map[string]any {
	cfg, ok := store.Get("hooks", map[string]any{}).(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return cfg
}

// Enabled reports whether any hooks are configured.
func Enabled(store *settings.Store) bool {
	return len(Config(store)) > 0
}

func isValidType(hookType string) bool {
	for _, valid := range ValidTypes {
		if hookType == valid {
			return true
		}
	}
	return false
}
