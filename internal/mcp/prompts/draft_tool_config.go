package prompts

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleDraftToolConfig walks through writing a tool configuration for one or
// more servers and generating the tool from it.
func HandleDraftToolConfig(cfg *Config) func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		args := req.Params.Arguments

		serverURL := args["server_url"]
		toolID := args["tool_id"]
		usecase := args["usecase"]

		var sb strings.Builder

		sb.WriteString("# Draft a Galaxy Tool Configuration\n\n")
		sb.WriteString("You are helping a Galaxy administrator wrap OGC API processes as a single Galaxy tool. ")
		sb.WriteString("The tool shows a process selector and, per process, a form built from the process inputs.\n\n")

		if serverURL != "" || toolID != "" || usecase != "" {
			sb.WriteString("## Context\n\n")
			if serverURL != "" {
				fmt.Fprintf(&sb, "- Server: `%s`\n", serverURL)
			}
			if toolID != "" {
				fmt.Fprintf(&sb, "- Tool id: `%s`\n", toolID)
			}
			if usecase != "" {
				fmt.Fprintf(&sb, "- Use case: %s\n", usecase)
			}
			sb.WriteString("\n")
		}

		sb.WriteString("## Workflow Steps\n\n")
		sb.WriteString("1. **List processes** with `ogc_list_processes`\n")
		sb.WriteString("   - If `missing_conformance` is not empty, tell the user; the tool will still be generated with a note\n")
		sb.WriteString("   - Use `filter` (a raw query string such as `limit=200`) when the listing looks truncated\n")
		sb.WriteString("2. **Pick processes** that fit the use case. Prefer an explicit `included_services` list over `[\"*\"]` for servers with many processes\n")
		sb.WriteString("3. **Preview** each picked process with `ogc_compile_process`\n")
		sb.WriteString("   - Drop or report processes whose `skipped_count` is high; skipped inputs cannot be set from Galaxy\n")
		sb.WriteString("4. **Write the configuration** as YAML:\n\n")
		sb.WriteString("```yaml\n")
		fmt.Fprintf(&sb, "id: %s\n", orDefault(toolID, "ogc_processes"))
		sb.WriteString("title: OGC API Processes\n")
		sb.WriteString("version: 0.1.0\n")
		sb.WriteString("description: Run OGC API processes from Galaxy\n")
		sb.WriteString("servers:\n")
		fmt.Fprintf(&sb, "  - server_url: %s\n", orDefault(serverURL, "https://example.org/pygeoapi"))
		sb.WriteString("    included_services: [\"process-a\", \"process-b\"]\n")
		sb.WriteString("    excluded_services: []\n")
		sb.WriteString("```\n\n")
		fmt.Fprintf(&sb, "   The optional `executor` block overrides the interpreter (`%s`) and script (`%s`).\n", cfg.Interpreter, cfg.Script)
		sb.WriteString("5. **Generate** with `ogc_generate_tool(config_text: <yaml>)` and review `warnings`\n")
		sb.WriteString("   - `included_process_missing` usually means a typo in `included_services`\n")
		sb.WriteString("   - `duplicate_process_id` means two servers offer the same id; both stay in the selector\n\n")

		sb.WriteString("## Tips\n\n")
		sb.WriteString("- `excluded_services` wins over `included_services`\n")
		sb.WriteString("- The `ogc2galaxy://config-schema` resource holds the full configuration schema\n")
		sb.WriteString("- Save the final YAML; the `ogc2galaxy generate --config` command reproduces the tool offline\n")

		return &sdkmcp.GetPromptResult{
			Description: "Guide for drafting a tool configuration and generating the tool",
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: sb.String()},
				},
			},
		}, nil
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
