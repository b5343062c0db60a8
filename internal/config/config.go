// Package config loads the superclaude tool configuration from defaults,
// the global config file, and environment variables, in ascending priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the superclaude CLI tool configuration.
// The interception thresholds are policy knobs, not invariants; they are
// exposed here so installs can tune them without rebuilding.
type Configuration struct {
	InstallDir          string   `koanf:"install_dir" validate:"required"`
	BackupRetention     int      `koanf:"backup_retention" validate:"min=1,max=100"`
	InterceptionLog     string   `koanf:"interception_log"`
	AutoActivateOps     int      `koanf:"auto_activate_ops" validate:"min=1"`
	BatchEditThreshold  int      `koanf:"batch_edit_threshold" validate:"min=1"`
	LargeFileBytes      int64    `koanf:"large_file_bytes" validate:"min=1"`
	OverflowSubdirLimit int      `koanf:"overflow_subdir_limit" validate:"min=1"`
	OverflowEntryLimit  int      `koanf:"overflow_entry_limit" validate:"min=1"`
	OverflowDenylist    []string `koanf:"overflow_denylist"`
	ShowProgress        bool     `koanf:"show_progress"`
}

// Load loads configuration from defaults, the global config file, and
// environment variables. Priority: environment > global config > defaults.
func Load() (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".superclaude", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	k.Load(env.Provider("SUPERCLAUDE_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.InstallDir = expandHomePath(cfg.InstallDir)
	cfg.InterceptionLog = expandHomePath(cfg.InterceptionLog)

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: SUPERCLAUDE_BACKUP_RETENTION -> backup_retention
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "SUPERCLAUDE_"))
}

// expandHomePath expands ~ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
