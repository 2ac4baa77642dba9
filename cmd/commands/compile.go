package commands

import (
	"context"
	"encoding/json"

	"github.com/urfave/cli/v3"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/generator"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

// compileOutput is what the compile command prints.
type compileOutput struct {
	Entry    types.ProcessEntry `json:"entry"`
	Warnings []types.Warning    `json:"warnings,omitempty"`
}

// NewCompileCommand returns the compile subcommand.
func NewCompileCommand() *cli.Command {
	return &cli.Command{
		Name:  "compile",
		Usage: "Compile one process into Galaxy parameters and print them as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "server",
				Aliases:  []string{"s"},
				Usage:    "Base URL of the OGC API Processes server",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "process",
				Aliases:  []string{"p"},
				Usage:    "Process id",
				Required: true,
			},
		},
		Action: runCompile,
	}
}

func runCompile(ctx context.Context, cmd *cli.Command) error {
	cfg, cleanup, err := environment(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return err
	}

	entry, warnings, err := generator.CompileProcess(ctx, fetcher, cmd.String("server"), cmd.String("process"))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(compileOutput{Entry: entry, Warnings: warnings})
}
