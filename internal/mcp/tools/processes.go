package tools

import (
	"context"
	"encoding/json"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/aggregator"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/client"
)

// ListProcessesInput is the input for ogc_list_processes.
type ListProcessesInput struct {
	ServerURL string `json:"server_url" jsonschema:"Base URL of the OGC API Processes server"`
	Filter    string `json:"filter,omitempty" jsonschema:"Raw query string appended to /processes, e.g. limit=50"`
}

// ProcessInfo is one listed process.
type ProcessInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
}

// ListProcessesOutput is the output for ogc_list_processes.
type ListProcessesOutput struct {
	ServerURL  string        `json:"server_url"`
	Processes  []ProcessInfo `json:"processes,omitzero"`
	TotalCount int           `json:"total_count"`
	// MissingConformance lists required conformance classes the server does
	// not declare. Omitted when the server conforms.
	MissingConformance []string `json:"missing_conformance,omitzero"`
	Hint               string   `json:"hint,omitempty"`
}

// ToolListProcesses lists the processes a server offers.
func ToolListProcesses(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListProcessesInput) (*sdkmcp.CallToolResult, ListProcessesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListProcessesInput) (*sdkmcp.CallToolResult, ListProcessesOutput, error) {
		server := strings.TrimSpace(input.ServerURL)
		if server == "" {
			return nil, ListProcessesOutput{}, ErrInvalidInput("server_url is required")
		}

		summaries, err := d.Fetcher.ListProcesses(ctx, server, input.Filter)
		if err != nil {
			return nil, ListProcessesOutput{}, WrapUpstreamError(&aggregator.FetchError{Server: server, Op: aggregator.OpList, Err: err})
		}

		output := ListProcessesOutput{
			ServerURL:  server,
			Processes:  make([]ProcessInfo, 0, len(summaries)),
			TotalCount: len(summaries),
		}
		for _, s := range summaries {
			output.Processes = append(output.Processes, ProcessInfo{
				ID:          s.ID,
				Title:       s.Title,
				Description: s.Description,
				Version:     s.Version,
			})
		}

		if conf, err := d.Fetcher.GetConformance(ctx, server); err == nil {
			output.MissingConformance = conf.Missing(client.RequiredConformance)
		}

		switch {
		case len(summaries) == 0:
			output.Hint = "The server lists no processes. Check the URL or the filter."
		case len(output.MissingConformance) > 0:
			output.Hint = "The server does not declare every required conformance class; generated tools will carry a note."
		default:
			output.Hint = "Use ogc_describe_process for one process, or ogc_compile_process to preview its Galaxy parameters."
		}

		return nil, output, nil
	}
}

// DescribeProcessInput is the input for ogc_describe_process.
type DescribeProcessInput struct {
	ServerURL string `json:"server_url" jsonschema:"Base URL of the OGC API Processes server"`
	ProcessID string `json:"process_id" jsonschema:"Process id as listed by ogc_list_processes"`
	Full      bool   `json:"full,omitempty" jsonschema:"Return schemas unabridged; by default long enum lists and descriptions are trimmed"`
}

// ParameterInfo is one input or output of a process description.
type ParameterInfo struct {
	Name           string `json:"name"`
	Title          string `json:"title,omitempty"`
	Description    string `json:"description,omitempty"`
	Schema         any    `json:"schema,omitempty"`
	ExtendedSchema any    `json:"extended_schema,omitempty"`
	MinOccurs      *int   `json:"min_occurs,omitempty"`
}

// DescribeProcessOutput is the output for ogc_describe_process.
type DescribeProcessOutput struct {
	ID          string          `json:"id"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Version     string          `json:"version,omitempty"`
	Inputs      []ParameterInfo `json:"inputs,omitzero"`
	Outputs     []ParameterInfo `json:"outputs,omitzero"`
}

// ToolDescribeProcess returns a process description with its raw schemas.
func ToolDescribeProcess(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input DescribeProcessInput) (*sdkmcp.CallToolResult, DescribeProcessOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input DescribeProcessInput) (*sdkmcp.CallToolResult, DescribeProcessOutput, error) {
		server, id, err := requireProcess(input.ServerURL, input.ProcessID)
		if err != nil {
			return nil, DescribeProcessOutput{}, err
		}

		desc, err := d.FetchProcess(ctx, server, id)
		if err != nil {
			return nil, DescribeProcessOutput{}, wrapProcessError(id, &aggregator.FetchError{Server: server, Process: id, Op: aggregator.OpDescribe, Err: err})
		}

		var opts *CompactOptions
		if !input.Full {
			opts = DefaultCompactOptions()
		}
		return nil, describeOutput(desc, opts), nil
	}
}

// describeOutput converts a description for tool output. Schemas are
// compacted with opts unless opts is nil.
func describeOutput(desc *client.ProcessDescription, opts *CompactOptions) DescribeProcessOutput {
	schemaOf := func(raw json.RawMessage) any {
		v := rawToAny(raw)
		if opts == nil || v == nil {
			return v
		}
		return CompactSchema(v, opts)
	}

	output := DescribeProcessOutput{
		ID:          desc.ID,
		Title:       desc.Title,
		Description: desc.Description,
		Version:     desc.Version,
		Inputs:      make([]ParameterInfo, 0, len(desc.Inputs)),
		Outputs:     make([]ParameterInfo, 0, len(desc.Outputs)),
	}
	for _, in := range desc.Inputs {
		output.Inputs = append(output.Inputs, ParameterInfo{
			Name:           in.Name,
			Title:          in.Title,
			Description:    in.Description,
			Schema:         schemaOf(in.Schema),
			ExtendedSchema: schemaOf(in.ExtendedSchema),
			MinOccurs:      in.MinOccurs,
		})
	}
	for _, out := range desc.Outputs {
		output.Outputs = append(output.Outputs, ParameterInfo{
			Name:           out.Name,
			Title:          out.Title,
			Description:    out.Description,
			Schema:         schemaOf(out.Schema),
			ExtendedSchema: schemaOf(out.ExtendedSchema),
		})
	}
	return output
}

func requireProcess(serverURL, processID string) (string, string, error) {
	server := strings.TrimSpace(serverURL)
	if server == "" {
		return "", "", ErrInvalidInput("server_url is required")
	}
	id := strings.TrimSpace(processID)
	if id == "" {
		return "", "", ErrInvalidInput("process_id is required")
	}
	return server, id, nil
}
