package commands

import (
	"context"
	"encoding/json"

	"github.com/urfave/cli/v3"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/config"
)

// NewSchemaCommand returns the schema subcommand.
func NewSchemaCommand() *cli.Command {
	return &cli.Command{
		Name:   "schema",
		Usage:  "Print the JSON Schema of tool configurations",
		Action: runSchema,
	}
}

func runSchema(_ context.Context, cmd *cli.Command) error {
	doc, err := config.ToolConfigSchema()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
