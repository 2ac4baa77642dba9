package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/cmd/commands"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Settings not given as flags come from the environment:
	// - LOG_LEVEL, LOG_FORMAT, LOG_FILE
	// - OGC_HTTP_TIMEOUT_MS, OGC_USER_AGENT, PROCESS_CACHE_MAX_ITEMS
	cmd := commands.NewRootCommand()
	if err := cmd.Run(ctx, os.Args); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
