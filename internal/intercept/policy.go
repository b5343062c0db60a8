package intercept

// Policy holds the interception thresholds. These are tuning knobs, not
// correctness requirements; defaults match the values the hook shipped with.
type Policy struct {
	// AutoActivateOps is the session operation count at which filesystem
	// tools start routing to the backend automatically.
	AutoActivateOps int
	// BatchEditThreshold is the MultiEdit edit count that triggers
	// auto-activation.
	BatchEditThreshold int
	// LargeFileBytes is the file size above which single-file operations
	// count as performance-critical under --morph-fast.
	LargeFileBytes int64
	// OverflowSubdirLimit is the immediate subdirectory count at which a
	// directory tree scan is considered a token overflow risk.
	OverflowSubdirLimit int
	// OverflowEntryLimit is the total immediate entry count at which a
	// directory tree scan is considered a token overflow risk.
	OverflowEntryLimit int
	// OverflowDenylist lists child names that mark a directory as risky.
	OverflowDenylist []string
}

// DefaultPolicy returns the stock thresholds.
func DefaultPolicy() Policy {
	return Policy{
		AutoActivateOps:     5,
		BatchEditThreshold:  3,
		LargeFileBytes:      1 << 20,
		OverflowSubdirLimit: 8,
		OverflowEntryLimit:  15,
		OverflowDenylist: []string{
			".git", "node_modules", "logs", "__pycache__",
			".cache", "build", "dist", ".venv", "venv",
		},
	}
}
