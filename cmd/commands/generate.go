package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/config"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/generator"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

// ErrWarnings is returned by generate --fail-on-warnings when the tool was
// written but diagnostics were collected.
var ErrWarnings = errors.New("warnings were reported")

// NewGenerateCommand returns the generate subcommand.
func NewGenerateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate a Galaxy tool XML document from a tool configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "Tool configuration file (.json, .yaml, .yml or .toml)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file; stdout when empty or -",
			},
			&cli.BoolFlag{
				Name:  "fail-on-warnings",
				Usage: "Exit with an error when any warning is reported",
			},
		},
		Action: runGenerate,
	}
}

func runGenerate(ctx context.Context, cmd *cli.Command) error {
	cfg, cleanup, err := environment(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	toolCfg, err := config.LoadToolConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return err
	}

	result, err := generator.New(fetcher).Generate(ctx, toolCfg)
	if err != nil {
		return err
	}

	if err := writeTool(cmd, result); err != nil {
		return err
	}

	slog.Info("tool generated",
		slog.String("id", toolCfg.ID),
		slog.Int("processes", result.Registry.Len()),
		slog.Int("warnings", len(result.Warnings)),
	)

	printWarnings(cmd.Root().ErrWriter, result.Warnings)
	if cmd.Bool("fail-on-warnings") && len(result.Warnings) > 0 {
		return fmt.Errorf("%w: %d", ErrWarnings, len(result.Warnings))
	}
	return nil
}

func writeTool(cmd *cli.Command, result *generator.Result) error {
	path := cmd.String("output")
	if path == "" || path == "-" {
		return result.Render(cmd.Root().Writer)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := result.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// printWarnings writes one line per warning and a summary line.
func printWarnings(w io.Writer, warnings []types.Warning) {
	if len(warnings) == 0 {
		return
	}
	skipped := 0
	for _, warning := range warnings {
		if warning.Severity == types.SeveritySkipped {
			skipped++
		}
		fmt.Fprintln(w, warning.String())
	}
	fmt.Fprintf(w, "%d warning(s), %d parameter(s) skipped\n", len(warnings), skipped)
}
