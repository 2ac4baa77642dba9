package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/config"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/mcp/tools"
)

// ConfigSchemaURI is the resource holding the tool configuration schema.
const ConfigSchemaURI = "ogc2galaxy://config-schema"

// registerResources registers resources and their handlers.
func (s *Server) registerResources() {
	s.mcpServer.AddResource(&sdkmcp.Resource{
		URI:         ConfigSchemaURI,
		Name:        "Tool Configuration Schema",
		Description: "JSON Schema of the configuration accepted by ogc_generate_tool and the generate command. Fetch when drafting a configuration by hand.",
		MIMEType:    tools.MimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.6,
		},
	}, s.handleResourceConfigSchema)
}

func (s *Server) handleResourceConfigSchema(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	doc, err := config.ToolConfigSchema()
	if err != nil {
		return nil, fmt.Errorf("building config schema: %w", err)
	}
	return toResourceResult(req.Params.URI, doc)
}

// toResourceResult serializes content to a ReadResourceResult.
func toResourceResult(uri string, content any) (*sdkmcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing resource: %w", err)
	}

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: tools.MimeJSON,
				Text:     string(data),
			},
		},
	}, nil
}
