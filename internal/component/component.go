// Package component installs the hooks component: embedded hook scripts
// copied into the installation directory, the matching hooks configuration
// merged into settings.json, and a registration in superclaude's metadata.
package component

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/superclaude-org/superclaude/internal/hooks"
	"github.com/superclaude-org/superclaude/internal/logger"
	"github.com/superclaude-org/superclaude/internal/metadata"
	"github.com/superclaude-org/superclaude/internal/settings"
)

//go:embed assets
var assets embed.FS

// HooksComponentName is the registry name of the hooks component.
const HooksComponentName = "hooks"

// Manifest describes the embedded hooks component.
type Manifest struct {
	Version  string         `yaml:"version"`
	Category string         `yaml:"category"`
	Hooks    []ManifestHook `yaml:"hooks"`
}

// ManifestHook describes one hook script and the settings entry it needs.
type ManifestHook struct {
	Script  string `yaml:"script"`
	Type    string `yaml:"type"`
	Matcher string `yaml:"matcher"`
}

// LoadManifest parses the embedded component manifest.
func LoadManifest() (*Manifest, error) {
	data, err := assets.ReadFile("assets/manifest.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing embedded manifest: %w", err)
	}
	return &m, nil
}

// InstallResult reports what an install changed.
type InstallResult struct {
	Version    string
	Scripts    []ScriptResult
	HooksTypes []string
}

// ScriptResult reports one installed hook script.
type ScriptResult struct {
	Name   string
	Path   string
	Action string // installed, updated
}

// Install writes the embedded hook scripts into <installDir>/hooks, merges
// the hooks configuration into settings.json, and registers the component.
// Pre-existing scripts are saved aside as <name>.bak before overwrite.
func Install(installDir string, st *settings.Store, md *metadata.Store) (*InstallResult, error) {
	manifest, err := LoadManifest()
	if err != nil {
		return nil, err
	}

	hooksDir := filepath.Join(installDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating hooks directory %s: %w", hooksDir, err)
	}

	result := &InstallResult{Version: manifest.Version}
	hooksCfg := map[string]any{}

	for _, hook := range manifest.Hooks {
		content, err := assets.ReadFile("assets/" + hook.Script)
		if err != nil {
			return nil, fmt.Errorf("reading embedded script %s: %w", hook.Script, err)
		}

		target := filepath.Join(hooksDir, hook.Script)
		action := "installed"
		if existing, err := os.ReadFile(target); err == nil {
			action = "updated"
			if err := os.WriteFile(target+".bak", existing, 0o644); err != nil {
				logger.Warn("could not back up existing hook script", "path", target, "error", err)
			}
		}

		if err := os.WriteFile(target, content, 0o755); err != nil {
			return nil, fmt.Errorf("writing hook script %s: %w", target, err)
		}
		result.Scripts = append(result.Scripts, ScriptResult{
			Name:   hook.Script,
			Path:   target,
			Action: action,
		})

		entries, _ := hooksCfg[hook.Type].([]any)
		hooksCfg[hook.Type] = append(entries, map[string]any{
			"matcher": hook.Matcher,
			"command": target,
		})
	}

	if err := hooks.Configure(st, hooksCfg); err != nil {
		return nil, err
	}
	for hookType := range hooksCfg {
		result.HooksTypes = append(result.HooksTypes, hookType)
	}

	if err := md.RegisterComponent(HooksComponentName, map[string]any{
		"version":     manifest.Version,
		"category":    manifest.Category,
		"status":      "installed",
		"files_count": len(result.Scripts),
	}); err != nil {
		return nil, err
	}
	if err := md.SetFrameworkVersion(manifest.Version); err != nil {
		return nil, err
	}

	return result, nil
}

// UninstallResult reports what an uninstall removed.
type UninstallResult struct {
	ScriptsRemoved []string
	HooksRemoved   bool
	WasRegistered  bool
}

// Uninstall removes the hook scripts, strips the component's hook types
// from settings.json, and unregisters the component. Missing pieces are
// skipped, not fatal.
func Uninstall(installDir string, st *settings.Store, md *metadata.Store) (*UninstallResult, error) {
	manifest, err := LoadManifest()
	if err != nil {
		return nil, err
	}

	result := &UninstallResult{}
	hooksDir := filepath.Join(installDir, "hooks")

	for _, hook := range manifest.Hooks {
		target := filepath.Join(hooksDir, hook.Script)
		if err := os.Remove(target); err == nil {
			result.ScriptsRemoved = append(result.ScriptsRemoved, target)
		} else if !os.IsNotExist(err) {
			logger.Warn("could not remove hook script", "path", target, "error", err)
		}
		os.Remove(target + ".bak")
	}

	for _, hook := range manifest.Hooks {
		removed, err := hooks.Remove(st, hook.Type)
		if err != nil {
			return nil, err
		}
		result.HooksRemoved = result.HooksRemoved || removed
	}

	wasRegistered, err := md.UnregisterComponent(HooksComponentName)
	if err != nil {
		return nil, err
	}
	result.WasRegistered = wasRegistered

	return result, nil
}
