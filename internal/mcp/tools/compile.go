package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/generator"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

// CompileProcessInput is the input for ogc_compile_process.
type CompileProcessInput struct {
	ServerURL string `json:"server_url" jsonschema:"Base URL of the OGC API Processes server"`
	ProcessID string `json:"process_id" jsonschema:"Process id as listed by ogc_list_processes"`
}

// CompileProcessOutput is the output for ogc_compile_process.
type CompileProcessOutput struct {
	Entry        *types.ProcessEntry `json:"entry,omitempty"`
	Warnings     []types.Warning     `json:"warnings,omitzero"`
	SkippedCount int                 `json:"skipped_count"`
	Hint         string              `json:"hint,omitempty"`
}

// ToolCompileProcess compiles one process into Galaxy parameters without
// assembling a tool.
func ToolCompileProcess(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input CompileProcessInput) (*sdkmcp.CallToolResult, CompileProcessOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input CompileProcessInput) (*sdkmcp.CallToolResult, CompileProcessOutput, error) {
		server, id, err := requireProcess(input.ServerURL, input.ProcessID)
		if err != nil {
			return nil, CompileProcessOutput{}, err
		}

		entry, warnings, err := generator.CompileProcess(ctx, d.Fetcher, server, id)
		if err != nil {
			return nil, CompileProcessOutput{}, wrapProcessError(id, err)
		}

		output := CompileProcessOutput{
			Entry:        &entry,
			Warnings:     warnings,
			SkippedCount: countSkipped(warnings),
		}
		if output.SkippedCount > 0 {
			output.Hint = "Some parameters were left out of the tool; see warnings with severity \"skipped\"."
		}
		return nil, output, nil
	}
}
