package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/config"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

// GenerateToolInput is the input for ogc_generate_tool. Exactly one of
// Config and ConfigText is used; ConfigText wins when both are set.
type GenerateToolInput struct {
	Config       map[string]any `json:"config,omitempty" jsonschema:"Tool configuration object; see the ogc2galaxy://config-schema resource"`
	ConfigText   string         `json:"config_text,omitempty" jsonschema:"Tool configuration as YAML or JSON text"`
	ConfigFormat string         `json:"config_format,omitempty" jsonschema:"Format of config_text: yaml (default, also reads JSON) or toml"`
}

// GenerateToolOutput is the output for ogc_generate_tool.
type GenerateToolOutput struct {
	XML          string          `json:"xml"`
	ProcessCount int             `json:"process_count"`
	Warnings     []types.Warning `json:"warnings,omitzero"`
	SkippedCount int             `json:"skipped_count"`
	Degraded     []string        `json:"degraded_servers,omitzero"`
}

// ToolGenerateTool generates a complete Galaxy tool document.
func ToolGenerateTool(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateToolInput) (*sdkmcp.CallToolResult, GenerateToolOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateToolInput) (*sdkmcp.CallToolResult, GenerateToolOutput, error) {
		cfg, err := toolConfigOf(input)
		if err != nil {
			return nil, GenerateToolOutput{}, err
		}

		result, err := d.Generator().Generate(ctx, cfg)
		if err != nil {
			return nil, GenerateToolOutput{}, WrapUpstreamError(err)
		}

		var buf bytes.Buffer
		if err := result.Render(&buf); err != nil {
			return nil, GenerateToolOutput{}, err
		}

		return nil, GenerateToolOutput{
			XML:          buf.String(),
			ProcessCount: result.Registry.Len(),
			Warnings:     result.Warnings,
			SkippedCount: countSkipped(result.Warnings),
			Degraded:     result.Degraded,
		}, nil
	}
}

// toolConfigOf validates the configuration carried by input. Structured
// configs are re-encoded so they pass the same schema validation and
// defaulting as configuration files.
func toolConfigOf(input GenerateToolInput) (*config.ToolConfig, error) {
	var (
		data   []byte
		format = config.FormatYAML
	)
	switch {
	case strings.TrimSpace(input.ConfigText) != "":
		data = []byte(input.ConfigText)
		if strings.EqualFold(input.ConfigFormat, config.FormatTOML) {
			format = config.FormatTOML
		}
	case input.Config != nil:
		b, err := json.Marshal(input.Config)
		if err != nil {
			return nil, ErrInvalidInput(err.Error())
		}
		data = b
	default:
		return nil, ErrInvalidInput("config or config_text is required")
	}

	cfg, err := config.ParseToolConfig(data, format)
	if err != nil {
		return nil, &CodedError{Code: ErrCodeInvalidInput, Message: "invalid tool configuration", Cause: err}
	}
	return cfg, nil
}
