package prompts

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

// HandleUsageGuide serves the reference for reading compiled parameters and
// warnings.
func HandleUsageGuide(cfg *Config) func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		var sb strings.Builder

		sb.WriteString("# OGC API Processes to Galaxy: Tool Usage Guide\n\n")

		// --- Tool order ---
		sb.WriteString("## Tool Order\n\n")
		sb.WriteString("1. `ogc_list_processes(server_url)` - ids and titles; check `missing_conformance`\n")
		sb.WriteString("2. `ogc_describe_process(server_url, process_id)` - raw schemas, only when a mapping looks wrong\n")
		sb.WriteString("3. `ogc_compile_process(server_url, process_id)` - the Galaxy parameters one process becomes\n")
		sb.WriteString("4. `ogc_generate_tool(config)` - the complete tool XML\n\n")
		sb.WriteString("Descriptions are cached per server and process id, so repeated compile and generate calls are cheap.\n")

		// --- Kind mapping ---
		sb.WriteString("\n## Schema to Parameter Mapping\n\n")
		sb.WriteString("| Schema | Parameter kind |\n")
		sb.WriteString("|--------|----------------|\n")
		sb.WriteString("| `string` | `text` |\n")
		sb.WriteString("| `integer` | `integer` |\n")
		sb.WriteString("| `number` | `float` |\n")
		sb.WriteString("| `boolean` | `boolean` (true/false literals) |\n")
		sb.WriteString("| `object` | `data` (format txt) |\n")
		sb.WriteString("| `array` with typed items | `text`, named `<input>_Array_<kind>`, comma-separated values |\n")
		sb.WriteString("| any `enum` | `select` with distinct choices |\n")
		sb.WriteString("| `format: binary` or raster media type | `data` |\n")
		sb.WriteString("| `oneOf` | first alternative wins |\n")
		sb.WriteString("| output with a format `extended-schema` | `select` named `<output>_outformat` |\n")

		// --- Warnings ---
		sb.WriteString("\n## Warnings\n\n")
		sb.WriteString("Severity `advisory` means nothing was dropped. Severity `skipped` means a parameter or output is missing from the tool.\n\n")
		sb.WriteString("| Code | Meaning |\n")
		sb.WriteString("|------|---------|\n")
		sb.WriteString("| `" + types.CodeMissingTitle + "` | label falls back to the raw parameter name |\n")
		sb.WriteString("| `" + types.CodeMissingDescription + "` | help falls back to a generic text |\n")
		sb.WriteString("| `" + types.CodeMissingDefault + "` / `" + types.CodeMissingNullable + "` | schema does not say; parameter is required with no default |\n")
		sb.WriteString("| `" + types.CodeMissingConformance + "` / `" + types.CodeConformanceUnavailable + "` | server conformance unconfirmed; the tool help carries a note |\n")
		sb.WriteString("| `" + types.CodeEmptyProcessList + "` | server lists nothing; check the URL and filter |\n")
		sb.WriteString("| `" + types.CodeIncludedMissing + "` | included id is not on the server (typo?) |\n")
		sb.WriteString("| `" + types.CodeDuplicateProcess + "` | same id on several servers; both stay in the selector |\n")
		sb.WriteString("| `" + types.CodeUnmappedSchema + "` | schema has no Galaxy mapping; parameter skipped |\n")
		sb.WriteString("| `" + types.CodeFormatPathMissing + "` | output format list not found; output skipped |\n")
		sb.WriteString("| `" + types.CodeInvalidSchema + "` | schema could not be decoded; parameter skipped |\n")

		// --- Command ---
		sb.WriteString("\n## Generated Command\n\n")
		sb.WriteString("The tool runs `" + cfg.Interpreter + " " + cfg.Script + "` with the selected process id, a JSON file of the form values and the output path. ")
		sb.WriteString("Override both with the `executor` block of the configuration.\n")

		return &sdkmcp.GetPromptResult{
			Description: "Reference for compiled parameters and warnings",
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: sb.String()},
				},
			},
		}, nil
	}
}
