package intercept

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/gjson"

	"github.com/superclaude-org/superclaude/internal/logger"
)

// DefaultLogPath returns the interception log location,
// ~/.claude/morph_interception.log. The path is part of the wire contract
// with offline analysis tooling.
func DefaultLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".claude", "morph_interception.log"), nil
}

// logRecord is one line of the append-only interception log.
type logRecord struct {
	Timestamp    string       `json:"timestamp"`
	ToolName     string       `json:"tool_name"`
	Action       string       `json:"action"`
	Reason       string       `json:"reason,omitempty"`
	SessionStats SessionStats `json:"session_stats"`
}

// logDecision appends one JSON record with a snapshot of the session
// counters. The log is analysis-only; failures never affect the decision.
func (ic *Interceptor) logDecision(toolName, action, reason string) {
	if ic.LogPath == "" {
		return
	}

	record := logRecord{
		Timestamp:    time.Now().Format(time.RFC3339Nano),
		ToolName:     toolName,
		Action:       action,
		Reason:       reason,
		SessionStats: ic.Stats,
	}

	data, err := json.Marshal(record)
	if err != nil {
		logger.Debug("could not marshal interception record", "error", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(ic.LogPath), 0o755); err != nil {
		logger.Debug("could not create interception log directory", "error", err)
		return
	}

	// Append mode per write; small writes rely on OS append atomicity.
	f, err := os.OpenFile(ic.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Debug("could not open interception log", "path", ic.LogPath, "error", err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		logger.Debug("could not write interception record", "error", err)
	}
}

// LogSummary aggregates the interception log for offline inspection.
type LogSummary struct {
	Records int
	Actions map[string]int
	Tools   map[string]int
}

// SummarizeLog tallies actions and tool names across the interception log.
// Records are parsed leniently so foreign or older line formats are
// counted rather than aborting the scan.
func SummarizeLog(path string) (*LogSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	summary := &LogSummary{
		Actions: map[string]int{},
		Tools:   map[string]int{},
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		if !gjson.Valid(line) {
			continue
		}
		summary.Records++
		if action := gjson.Get(line, "action").String(); action != "" {
			summary.Actions[action]++
		}
		if tool := gjson.Get(line, "tool_name").String(); tool != "" {
			summary.Tools[tool]++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return summary, nil
}
