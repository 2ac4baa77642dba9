package prompts

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all prompts with the MCP server.
func Register(srv *sdkmcp.Server, cfg *Config) {
	// Prompt 1: Draft a tool configuration
	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "draft_tool_config",
		Description: "RECOMMENDED: Draft a tool configuration for one or more OGC API Processes servers and generate the Galaxy tool from it. Start here.",
		Arguments: []*sdkmcp.PromptArgument{
			{
				Name:        "server_url",
				Description: "Base URL of the OGC API Processes server",
				Required:    false,
			},
			{
				Name:        "tool_id",
				Description: "Galaxy tool id to generate",
				Required:    false,
			},
			{
				Name:        "usecase",
				Description: "What the tool should let Galaxy users do (e.g., 'hydrological indicators for river basins')",
				Required:    false,
			},
		},
	}, HandleDraftToolConfig(cfg))

	// Prompt 2: Reference for mappings and warnings
	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "ogc2galaxy_guide",
		Description: "Reference: how process schemas map to Galaxy parameters and what each warning code means.",
	}, HandleUsageGuide(cfg))
}
