package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// ListProcesses retrieves the process summaries offered by the server.
//
// filter is an optional raw query string (for example "limit=500") appended
// to the listing request.
func (c *Client) ListProcesses(ctx context.Context, filter string) ([]ProcessSummary, error) {
	query, err := url.ParseQuery(strings.TrimPrefix(filter, "?"))
	if err != nil {
		return nil, fmt.Errorf("parsing process list filter %q: %w", filter, err)
	}

	var list ProcessList
	if err := c.get(ctx, "/processes", query, &list); err != nil {
		return nil, fmt.Errorf("listing processes: %w", err)
	}
	return list.Processes, nil
}

// GetProcess retrieves the full description of one process.
func (c *Client) GetProcess(ctx context.Context, processID string) (*ProcessDescription, error) {
	path := "/processes/" + url.PathEscape(processID)
	var desc ProcessDescription
	if err := c.get(ctx, path, nil, &desc); err != nil {
		return nil, fmt.Errorf("getting process %q: %w", processID, err)
	}
	return &desc, nil
}

// GetConformance retrieves the conformance classes the server declares.
func (c *Client) GetConformance(ctx context.Context) (*Conformance, error) {
	var conf Conformance
	if err := c.get(ctx, "/conformance", nil, &conf); err != nil {
		return nil, fmt.Errorf("getting conformance: %w", err)
	}
	return &conf, nil
}
