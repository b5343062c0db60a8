package intercept

import (
	"os"

	"github.com/superclaude-org/superclaude/internal/logger"
)

// tokenOverflowRisk estimates whether enumerating a directory tree rooted
// at path would overflow the model's context. It inspects only the
// immediate children: many subdirectories, a denylisted child name, or a
// large entry count all flag risk. A directory that cannot be listed is
// treated as risky (fail safe).
func (ic *Interceptor) tokenOverflowRisk(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		logger.Debug("token overflow risk: directory unreadable", "path", path, "error", err)
		return true
	}

	denylisted := make(map[string]bool, len(ic.Policy.OverflowDenylist))
	for _, name := range ic.Policy.OverflowDenylist {
		denylisted[name] = true
	}

	subdirs := 0
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs++
		}
		if denylisted[entry.Name()] {
			logger.Debug("token overflow risk: denylisted child", "path", path, "child", entry.Name())
			return true
		}
	}

	if subdirs >= ic.Policy.OverflowSubdirLimit {
		logger.Debug("token overflow risk: subdirectory count", "path", path, "subdirs", subdirs)
		return true
	}
	if len(entries) >= ic.Policy.OverflowEntryLimit {
		logger.Debug("token overflow risk: entry count", "path", path, "entries", len(entries))
		return true
	}

	return false
}
