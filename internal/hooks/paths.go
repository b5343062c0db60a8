package hooks

import (
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// interpreters whose scripts appear as the second command token.
var interpreters = map[string]bool{
	"python3": true,
	"python":  true,
	"node":    true,
}

// ValidatePaths checks that every hook command points at an existing script
// file. The command string is word-split with real shell semantics; when the
// first token is a known interpreter the script path is the second token,
// otherwise the first token itself. One error string is reported per missing
// or non-file path, and every entry is checked even after a failure.
func ValidatePaths(cfg map[string]any) []string {
	var errs []string

	for hookType, raw := range cfg {
		entries, ok := raw.([]any)
		if !ok {
			errs = append(errs, fmt.Sprintf("hook type %q should be a list", hookType))
			continue
		}

		for i, rawEntry := range entries {
			entry, ok := rawEntry.(map[string]any)
			if !ok {
				errs = append(errs, fmt.Sprintf("hook %s[%d] should be a mapping", hookType, i))
				continue
			}

			command, _ := entry["command"].(string)
			if strings.TrimSpace(command) == "" {
				errs = append(errs, fmt.Sprintf("hook %s[%d] missing command", hookType, i))
				continue
			}

			scriptPath, err := scriptPathFromCommand(command)
			if err != nil {
				errs = append(errs, fmt.Sprintf("hook %s[%d] has unparseable command: %v", hookType, i, err))
				continue
			}

			info, err := os.Stat(scriptPath)
			if err != nil {
				errs = append(errs, fmt.Sprintf("hook script not found: %s", scriptPath))
				continue
			}
			if info.IsDir() {
				errs = append(errs, fmt.Sprintf("hook path is not a file: %s", scriptPath))
			}
		}
	}

	return errs
}

// scriptPathFromCommand extracts the script path from a hook command string.
func scriptPathFromCommand(command string) (string, error) {
	fields, err := shell.Fields(command, nil)
	if err != nil {
		return "", err
	}
	if len(fields) == 0 {
		return "", fmt.Errorf("empty command")
	}
	if interpreters[fields[0]] && len(fields) >= 2 {
		return fields[1], nil
	}
	return fields[0], nil
}
