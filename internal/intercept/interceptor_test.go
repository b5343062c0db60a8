package intercept

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestInterceptor returns an interceptor with the backend available and
// decision logging disabled.
func newTestInterceptor() *Interceptor {
	ic := New(DefaultPolicy(), "")
	ic.Getenv = func(key string) string {
		if key == CredentialVar {
			return "sk-test"
		}
		return ""
	}
	ic.ListServers = func() (string, error) {
		return "filesystem-with-morph: node server.js - Connected", nil
	}
	return ic
}

func TestNoMorphFlagAlwaysAllows(t *testing.T) {
	ic := newTestInterceptor()

	decision := ic.ProcessToolCall("Read", map[string]any{"file_path": "/tmp/x"}, []string{FlagNoMorph})

	assert.Equal(t, ActionAllow, decision.Action)
	assert.Equal(t, 1, ic.Stats.NativeOperations)
	assert.Zero(t, ic.Stats.MorphOperations)
}

func TestNoMorphBeatsMorphOnly(t *testing.T) {
	ic := newTestInterceptor()

	decision := ic.ProcessToolCall("Read", nil, []string{FlagMorphOnly, FlagNoMorph})

	assert.Equal(t, ActionAllow, decision.Action)
}

func TestMorphFlagBlocksSupportedTool(t *testing.T) {
	ic := newTestInterceptor()

	decision := ic.ProcessToolCall("Write", map[string]any{"file_path": "/tmp/x", "content": "hi"}, []string{FlagMorph})

	assert.Equal(t, ActionBlock, decision.Action)
	assert.Equal(t, BlockExitCode, decision.ExitCode)
	assert.Equal(t, "mcp__filesystem-with-morph__write_file", decision.AlternativeTool)
	assert.Equal(t, 1, ic.Stats.MorphOperations)
}

func TestMorphFlagIgnoresUnsupportedTool(t *testing.T) {
	ic := newTestInterceptor()

	decision := ic.ProcessToolCall("Bash", map[string]any{"command": "ls"}, []string{FlagMorph})

	assert.Equal(t, ActionAllow, decision.Action)
	assert.Empty(t, decision.AlternativeTool)
	assert.Equal(t, 1, ic.Stats.NativeOperations)
}

func TestMultiEditAutoActivation(t *testing.T) {
	ic := newTestInterceptor()
	input := map[string]any{
		"file_path": "/tmp/x.go",
		"edits": []any{
			map[string]any{"old_string": "a", "new_string": "b"},
			map[string]any{"old_string": "c", "new_string": "d"},
			map[string]any{"old_string": "e", "new_string": "f"},
			map[string]any{"old_string": "g", "new_string": "h"},
		},
	}

	decision := ic.ProcessToolCall("MultiEdit", input, nil)

	require.Equal(t, ActionBlock, decision.Action)
	assert.Equal(t, "mcp__filesystem-with-morph__edit_file", decision.AlternativeTool)
	assert.Equal(t, true, decision.AlternativeInput["batch_mode"])
	assert.Equal(t, true, decision.AlternativeInput["atomic_operation"])
	assert.Equal(t, input["edits"], decision.AlternativeInput["edits"])
}

func TestMultiEditBelowThresholdAllows(t *testing.T) {
	ic := newTestInterceptor()
	input := map[string]any{
		"file_path": "/tmp/x.go",
		"edits": []any{
			map[string]any{"old_string": "a", "new_string": "b"},
			map[string]any{"old_string": "c", "new_string": "d"},
		},
	}

	decision := ic.ProcessToolCall("MultiEdit", input, nil)

	assert.Equal(t, ActionAllow, decision.Action)
}

func TestLSAlwaysAutoActivates(t *testing.T) {
	ic := newTestInterceptor()

	decision := ic.ProcessToolCall("LS", map[string]any{"path": "/tmp"}, nil)

	assert.Equal(t, ActionBlock, decision.Action)
	assert.Equal(t, ListDirectoryTool, decision.AlternativeTool)
}

func TestSessionThresholdAutoActivation(t *testing.T) {
	ic := newTestInterceptor()

	for i := 0; i < 4; i++ {
		decision := ic.ProcessToolCall("Read", map[string]any{"file_path": "/tmp/x"}, nil)
		assert.Equal(t, ActionAllow, decision.Action)
	}

	// The fifth operation crosses the threshold.
	decision := ic.ProcessToolCall("Read", map[string]any{"file_path": "/tmp/x"}, nil)
	assert.Equal(t, ActionBlock, decision.Action)
	assert.Equal(t, 5, ic.Stats.TotalOperations)
}

func TestMorphFastLargeFile(t *testing.T) {
	big := filepath.Join(t.TempDir(), "big.bin")
	require.NoError(t, os.WriteFile(big, make([]byte, 2<<20), 0o644))

	ic := newTestInterceptor()
	decision := ic.ProcessToolCall("Write", map[string]any{"file_path": big, "content": "x"}, []string{FlagMorphFast})

	assert.Equal(t, ActionBlock, decision.Action)
}

func TestMorphFastSmallFileAllows(t *testing.T) {
	small := filepath.Join(t.TempDir(), "small.txt")
	require.NoError(t, os.WriteFile(small, []byte("tiny"), 0o644))

	ic := newTestInterceptor()
	decision := ic.ProcessToolCall("Write", map[string]any{"file_path": small, "content": "x"}, []string{FlagMorphFast})

	assert.Equal(t, ActionAllow, decision.Action)
}

func TestFallbackWhenBackendUnavailable(t *testing.T) {
	ic := newTestInterceptor()
	ic.Getenv = func(string) string { return "" }

	decision := ic.ProcessToolCall("Read", map[string]any{"file_path": "/tmp/x"}, []string{FlagMorph})

	assert.Equal(t, ActionAllow, decision.Action)
	assert.True(t, decision.FallbackMode)
	assert.NotEmpty(t, decision.PerformanceNote)
	assert.Equal(t, 1, ic.Stats.FallbackOperations)
}

func TestFallbackWhenServerNotRegistered(t *testing.T) {
	ic := newTestInterceptor()
	ic.ListServers = func() (string, error) {
		return "other-server: connected", nil
	}

	decision := ic.ProcessToolCall("Read", nil, []string{FlagMorph})

	assert.Equal(t, ActionAllow, decision.Action)
	assert.True(t, decision.FallbackMode)
}

func TestDirectoryTreeSafetyOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "node_modules"), 0o755))

	ic := newTestInterceptor()
	// Safety override applies even with morph disabled.
	decision := ic.ProcessToolCall(DirectoryTreeTool, map[string]any{"path": dir}, []string{FlagNoMorph})

	require.Equal(t, ActionBlock, decision.Action)
	assert.Equal(t, ListDirectoryTool, decision.AlternativeTool)
	assert.Equal(t, dir, decision.AlternativeInput["path"])
	assert.Equal(t, true, decision.MorphMetadata["safety_mode"])
	assert.Contains(t, decision.MorphMetadata, "chunked_strategy")
	assert.Equal(t, 1, ic.Stats.MorphOperations)
}

func TestDirectoryTreeSafePathAllows(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))

	ic := newTestInterceptor()
	decision := ic.ProcessToolCall(DirectoryTreeTool, map[string]any{"path": dir}, nil)

	assert.Equal(t, ActionAllow, decision.Action)
}

func TestCountersSumToTotal(t *testing.T) {
	big := filepath.Join(t.TempDir(), "big.bin")
	require.NoError(t, os.WriteFile(big, make([]byte, 2<<20), 0o644))

	ic := newTestInterceptor()
	calls := []struct {
		tool  string
		input map[string]any
		flags []string
	}{
		{"Read", map[string]any{"file_path": "/tmp/x"}, []string{FlagNoMorph}},
		{"Write", map[string]any{"file_path": big}, []string{FlagMorphFast}},
		{"LS", map[string]any{"path": "/tmp"}, nil},
		{"Bash", map[string]any{"command": "ls"}, nil},
	}
	for _, c := range calls {
		ic.ProcessToolCall(c.tool, c.input, c.flags)
	}

	stats := ic.Stats
	assert.Equal(t, len(calls), stats.TotalOperations)
	assert.Equal(t, stats.TotalOperations,
		stats.MorphOperations+stats.NativeOperations+stats.FallbackOperations)
}
