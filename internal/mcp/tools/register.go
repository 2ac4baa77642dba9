package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	// Tool 1: ogc_list_processes
	AddTool(srv, &sdkmcp.Tool{
		Name:        "ogc_list_processes",
		Description: "List the processes an OGC API Processes server offers. Returns {processes: [{id, title, description, version}], total_count, missing_conformance, hint}. Pass filter as a raw query string (e.g. limit=100). Start here to pick process ids for a tool configuration.",
	}, ToolListProcesses(d))

	// Tool 2: ogc_describe_process
	AddTool(srv, &sdkmcp.Tool{
		Name:        "ogc_describe_process",
		Description: "Get the full description of one process: inputs and outputs with their raw schema and extended_schema documents. Use ogc_compile_process instead to see how the inputs map to Galaxy parameters.",
	}, ToolDescribeProcess(d))

	// Tool 3: ogc_compile_process
	AddTool(srv, &sdkmcp.Tool{
		Name:        "ogc_compile_process",
		Description: "Compile one process into Galaxy parameters without generating a tool. Returns {entry: {id, title, server, inputs, outputs}, warnings, skipped_count}. Each parameter has name, label, help, kind (text, integer, float, boolean, select, data), choices, default and optional. Warnings with severity \"skipped\" name parameters that would be left out of the tool.",
	}, ToolCompileProcess(d))

	// Tool 4: ogc_generate_tool
	AddTool(srv, &sdkmcp.Tool{
		Name:        "ogc_generate_tool",
		Description: "Generate a Galaxy tool XML document from a tool configuration ({id, title, version, description, help, servers: [{server_url, included_services, excluded_services, filter}]}). Pass the configuration as an object in config or as YAML/JSON/TOML text in config_text. Returns {xml, process_count, warnings, skipped_count, degraded_servers}.",
	}, ToolGenerateTool(d))
}
