package main

import (
	"os"

	"github.com/superclaude-org/superclaude/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
