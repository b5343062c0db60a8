package component

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superclaude-org/superclaude/internal/hooks"
	"github.com/superclaude-org/superclaude/internal/metadata"
	"github.com/superclaude-org/superclaude/internal/settings"
)

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest()
	require.NoError(t, err)

	assert.NotEmpty(t, m.Version)
	assert.Equal(t, "integration", m.Category)
	require.Len(t, m.Hooks, 3)
	for _, hook := range m.Hooks {
		assert.NotEmpty(t, hook.Script)
		assert.NotEmpty(t, hook.Matcher)
		assert.Contains(t, hooks.ValidTypes, hook.Type)
	}
}

func TestInstall(t *testing.T) {
	dir := t.TempDir()
	st := settings.NewStore(dir)
	md := metadata.NewStore(dir)

	result, err := Install(dir, st, md)
	require.NoError(t, err)

	manifest, err := LoadManifest()
	require.NoError(t, err)
	assert.Equal(t, manifest.Version, result.Version)
	require.Len(t, result.Scripts, len(manifest.Hooks))

	for _, script := range result.Scripts {
		assert.Equal(t, "installed", script.Action)
		info, err := os.Stat(script.Path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	}

	// Settings carry one entry per manifest hook, command pointing at the
	// installed script.
	cfg := hooks.Config(st)
	for _, hook := range manifest.Hooks {
		entries, ok := cfg[hook.Type].([]any)
		require.True(t, ok, "missing hook type %s", hook.Type)
		entry := entries[0].(map[string]any)
		assert.Equal(t, hook.Matcher, entry["matcher"])
		assert.Equal(t, filepath.Join(dir, "hooks", hook.Script), entry["command"])
	}
	assert.Empty(t, hooks.ValidatePaths(cfg))

	assert.True(t, md.IsInstalled(HooksComponentName))
	assert.Equal(t, manifest.Version, md.ComponentVersion(HooksComponentName))
	assert.Equal(t, manifest.Version, md.FrameworkVersion())
}

func TestInstallBacksUpExistingScripts(t *testing.T) {
	dir := t.TempDir()
	st := settings.NewStore(dir)
	md := metadata.NewStore(dir)

	manifest, err := LoadManifest()
	require.NoError(t, err)
	hooksDir := filepath.Join(dir, "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0o755))
	existing := filepath.Join(hooksDir, manifest.Hooks[0].Script)
	require.NoError(t, os.WriteFile(existing, []byte("#!/bin/sh\n# custom\n"), 0o755))

	result, err := Install(dir, st, md)
	require.NoError(t, err)

	assert.Equal(t, "updated", result.Scripts[0].Action)
	backup, err := os.ReadFile(existing + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\n# custom\n", string(backup))
}

func TestInstallPreservesForeignSettings(t *testing.T) {
	dir := t.TempDir()
	st := settings.NewStore(dir)
	md := metadata.NewStore(dir)
	require.NoError(t, st.Save(map[string]any{"model": "opus"}, false))

	_, err := Install(dir, st, md)
	require.NoError(t, err)

	doc, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "opus", doc["model"])
}

func TestUninstall(t *testing.T) {
	dir := t.TempDir()
	st := settings.NewStore(dir)
	md := metadata.NewStore(dir)

	installed, err := Install(dir, st, md)
	require.NoError(t, err)

	result, err := Uninstall(dir, st, md)
	require.NoError(t, err)

	assert.Len(t, result.ScriptsRemoved, len(installed.Scripts))
	assert.True(t, result.HooksRemoved)
	assert.True(t, result.WasRegistered)

	for _, script := range installed.Scripts {
		_, err := os.Stat(script.Path)
		assert.True(t, os.IsNotExist(err))
	}
	assert.False(t, hooks.Enabled(st))
	assert.False(t, md.IsInstalled(HooksComponentName))
}

func TestUninstallWhenNothingInstalled(t *testing.T) {
	dir := t.TempDir()
	st := settings.NewStore(dir)
	md := metadata.NewStore(dir)

	result, err := Uninstall(dir, st, md)
	require.NoError(t, err)

	assert.Empty(t, result.ScriptsRemoved)
	assert.False(t, result.HooksRemoved)
	assert.False(t, result.WasRegistered)
}
