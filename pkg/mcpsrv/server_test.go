package mcpsrv

import (
	"context"
	"net/http"
	"testing"
	"time"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countInput struct {
	Server    string `json:"server"`
	ProcessID string `json:"process_id"`
}

type countOutput struct {
	Cached int `json:"cached"`
}

func TestNewServer_options(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	httpClient := &http.Client{Timeout: time.Second}
	srv, err := NewServer(
		WithTimeout(2*time.Second),
		WithUserAgent("test-agent"),
		WithProcessCacheSize(3),
		WithHTTPClient(httpClient),
		WithoutBuiltinPrompts(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })

	deps := srv.Deps()
	require.NotNil(t, deps)
	assert.Equal(t, 2*time.Second, deps.Config.HTTPTimeout)
	assert.Equal(t, "test-agent", deps.Config.UserAgent)
	assert.Equal(t, 3, deps.Config.ProcessCacheMaxItems)
	assert.Equal(t, 0, deps.Cache.Len())
	assert.NotNil(t, deps.Fetcher)
}

func TestNewServer_depsTool(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	var got *Deps
	srv, err := NewServer(
		WithoutBuiltinTools(),
		WithDepsTool(&mcp.Tool{Name: "cached_processes"}, func(d *Deps) func(context.Context, *mcp.CallToolRequest, countInput) (*mcp.CallToolResult, countOutput, error) {
			got = d
			return func(ctx context.Context, req *mcp.CallToolRequest, in countInput) (*mcp.CallToolResult, countOutput, error) {
				return nil, countOutput{Cached: d.Cache.Len()}, nil
			}
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })

	assert.Same(t, srv.Deps(), got)
	assert.NotNil(t, srv.MCPServer())
}

func TestAddTool_panicsOnNilSlice(t *testing.T) {
	type badOutput struct {
		Items []string `json:"items"`
	}
	srv := mcp.NewServer(&mcp.Implementation{Name: "test"}, nil)
	assert.Panics(t, func() {
		AddTool(srv, &mcp.Tool{Name: "bad"}, func(ctx context.Context, req *mcp.CallToolRequest, in countInput) (*mcp.CallToolResult, badOutput, error) {
			return nil, badOutput{}, nil
		})
	})
}
