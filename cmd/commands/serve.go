package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/mcpsrv"
)

// NewServeCommand returns the serve subcommand.
func NewServeCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the MCP server on stdio",
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	// stdout carries the MCP stdio transport; logs stay on stderr or the log file.
	server, err := mcpsrv.NewServer(
		mcpsrv.WithLogLevel(cmd.String("log-level")),
		mcpsrv.WithLogFile(cmd.String("log-file")),
	)
	if err != nil {
		return err
	}
	defer server.Close()

	slog.Info("starting ogc2galaxy MCP server on stdio")
	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	slog.Info("server stopped")
	return nil
}
