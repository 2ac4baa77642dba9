// Package commands implements the ogc2galaxy command line.
package commands

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/cache"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/config"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/logging"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/procfetch"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "ogc2galaxy",
		Usage: "Generate Galaxy tool definitions from OGC API Processes servers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error (default from LOG_LEVEL)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Write logs to a rotated file instead of stderr",
			},
		},
		Commands: []*cli.Command{
			NewGenerateCommand(),
			NewCompileCommand(),
			NewSchemaCommand(),
			NewServeCommand(),
		},
	}
}

// environment loads the environment configuration with flag overrides and
// installs the default logger. Logs go to the command's error writer unless a
// log file is set.
func environment(cmd *cli.Command) (*config.Config, func() error, error) {
	cfg := config.Load()
	if level := cmd.String("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if file := cmd.String("log-file"); file != "" {
		cfg.LogFile = file
	}

	logCfg := cfg.Logging()
	logCfg.Output = cmd.Root().ErrWriter
	cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return cfg, cleanup, nil
}

// newFetcher builds a caching process fetcher from cfg.
func newFetcher(cfg *config.Config) (*procfetch.Fetcher, error) {
	pc, err := cache.NewProcessCache(cfg.ProcessCacheMaxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to create process cache: %w", err)
	}
	return procfetch.New(pc, cfg.ClientOptions()...), nil
}
