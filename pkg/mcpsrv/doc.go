// Package mcpsrv provides an extensible MCP server that turns OGC API
// Processes servers into Galaxy tools.
//
// The builtin tools list and describe processes, compile a single process
// into Galaxy parameters, and generate a complete tool XML document from a
// tool configuration. A draft_tool_config prompt guides an assistant through
// the workflow, and the ogc2galaxy://config-schema resource publishes the
// configuration schema.
//
// # Basic Usage
//
//	server, err := mcpsrv.NewServer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer server.Close()
//	server.Run(ctx)
//
// # Extension
//
// Add custom tools using MCP SDK types directly:
//
//	import mcp "github.com/modelcontextprotocol/go-sdk/mcp"
//
//	type MyInput struct {
//	    Server    string `json:"server"`
//	    ProcessID string `json:"process_id"`
//	}
//
//	type MyOutput struct {
//	    Count int `json:"count"`
//	}
//
//	server, err := mcpsrv.NewServer(
//	    mcpsrv.WithDepsTool(&mcp.Tool{Name: "count_inputs"}, func(d *mcpsrv.Deps) func(context.Context, *mcp.CallToolRequest, MyInput) (*mcp.CallToolResult, MyOutput, error) {
//	        ...
//	    }),
//	)
//
// # Configuration
//
// Settings come from the environment (OGC_HTTP_TIMEOUT_MS, OGC_USER_AGENT,
// PROCESS_CACHE_MAX_ITEMS, LOG_LEVEL, LOG_FILE, ...) and can be overridden:
//
//	server, err := mcpsrv.NewServer(
//	    mcpsrv.WithLogLevel("debug"),
//	    mcpsrv.WithLogFile("/var/log/ogc2galaxy.log"),
//	    mcpsrv.WithTimeout(time.Minute),
//	)
package mcpsrv
