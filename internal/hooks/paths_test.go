package hooks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
	return path
}

func TestValidatePaths(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "guard.sh")
	pyScript := writeScript(t, dir, "monitor.py")

	cfg := map[string]any{
		"preToolUse": []any{
			map[string]any{"matcher": "^Read$", "command": script},
			map[string]any{"matcher": ".*", "command": "python3 " + pyScript + " --fast"},
		},
	}

	assert.Empty(t, ValidatePaths(cfg))
}

func TestValidatePathsQuotedCommand(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "with space.sh")

	cfg := map[string]any{
		"postToolUse": []any{
			map[string]any{"matcher": ".*", "command": `"` + script + `" arg`},
		},
	}

	assert.Empty(t, ValidatePaths(cfg))
}

func TestValidatePathsReportsProblems(t *testing.T) {
	dir := t.TempDir()

	cfg := map[string]any{
		"preToolUse": []any{
			map[string]any{"matcher": ".*", "command": filepath.Join(dir, "missing.sh")},
			map[string]any{"matcher": ".*", "command": dir},
			map[string]any{"matcher": ".*"},
		},
		"stop": "not-a-list",
	}

	errs := ValidatePaths(cfg)
	require.Len(t, errs, 4)
}

func TestScriptPathFromCommand(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    string
		wantErr bool
	}{
		{name: "bare script", command: "/usr/local/bin/run.sh", want: "/usr/local/bin/run.sh"},
		{name: "script with args", command: "run.sh --verbose", want: "run.sh"},
		{name: "python interpreter", command: "python3 hook.py --fast", want: "hook.py"},
		{name: "node interpreter", command: "node hook.js", want: "hook.js"},
		{name: "interpreter with no script", command: "python3", want: "python3"},
		{name: "quoted path", command: `"/opt/my tools/run.sh" arg`, want: "/opt/my tools/run.sh"},
		{name: "blank", command: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scriptPathFromCommand(tt.command)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
