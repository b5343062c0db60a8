package config

// GetDefaults returns the default configuration values applied before the
// global config file and environment overrides.
func GetDefaults() map[string]any {
	return map[string]any{
		"install_dir":           "~/.claude",
		"backup_retention":      10,
		"interception_log":      "~/.claude/morph_interception.log",
		"auto_activate_ops":     5,
		"batch_edit_threshold":  3,
		"large_file_bytes":      int64(1 << 20),
		"overflow_subdir_limit": 8,
		"overflow_entry_limit":  15,
		"overflow_denylist": []string{
			".git", "node_modules", "logs", "__pycache__",
			".cache", "build", "dist", ".venv", "venv",
		},
		"show_progress": true,
	}
}

// InterceptPolicyKeys lists the configuration keys that feed the
// interceptor's decision policy, for doctor-style reporting.
var InterceptPolicyKeys = []string{
	"auto_activate_ops",
	"batch_edit_threshold",
	"large_file_bytes",
	"overflow_subdir_limit",
	"overflow_entry_limit",
	"overflow_denylist",
}
