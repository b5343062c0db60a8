package intercept

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/superclaude-org/superclaude/internal/logger"
)

// CredentialVar is the environment variable gating backend availability.
const CredentialVar = "MORPH_API_KEY"

// BackendServerName is the MCP server the interceptor routes calls to.
const BackendServerName = "filesystem-with-morph"

const serverListTimeout = 10 * time.Second

// BackendAvailable reports whether the morph backend can take redirected
// calls: the API credential must be set and the MCP server must appear in
// the registered server list.
func (ic *Interceptor) BackendAvailable() bool {
	if ic.Getenv(CredentialVar) == "" {
		logger.Warn("backend validation failed", "reason", CredentialVar+" not set")
		return false
	}

	out, err := ic.ListServers()
	if err != nil {
		logger.Warn("backend validation failed", "error", err)
		return false
	}
	if !strings.Contains(strings.ToLower(out), BackendServerName) {
		logger.Warn("backend validation failed", "reason", BackendServerName+" not registered")
		return false
	}
	return true
}

// defaultListServers shells out to `claude mcp list` for the registered
// MCP server inventory.
func defaultListServers() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), serverListTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "claude", "mcp", "list").Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
