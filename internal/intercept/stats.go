package intercept

import "time"

// SessionStats holds per-process interception counters. Each tool call may
// run in a fresh process, so the counters reset at process start and every
// decision increments exactly one of the morph/native/fallback counters.
type SessionStats struct {
	TotalOperations    int       `json:"total_operations"`
	MorphOperations    int       `json:"morph_operations"`
	NativeOperations   int       `json:"native_operations"`
	FallbackOperations int       `json:"fallback_operations"`
	StartTime          time.Time `json:"start_time"`
}
