package main

import (
	"os"

	"github.com/avilla-dev/cursor-wrapped/internal/cli"
	"github.com/avilla-dev/cursor-wrapped/internal/logger"
)

func main() {
	if err := cli.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
