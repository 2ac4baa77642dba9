package mcpsrv

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/config"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/invocation"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/logging"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/mcp"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/mcp/tools"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/client"
)

// Server is the OGC API Processes to Galaxy MCP server.
// It wraps the internal implementation and provides extension points.
type Server struct {
	internal   *mcp.Server
	deps       *Deps
	logCleanup func() error
}

// NewServer creates a new MCP server with the builtin tools, prompts and
// resources.
//
// Configuration is read from the environment; use functional options to
// override logging, add custom tools, etc.
func NewServer(opts ...Option) (*Server, error) {
	cfg := &serverConfig{
		config: config.Load(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	logCfg := cfg.config.Logging()
	if cfg.logLevel != "" {
		logCfg.Level = cfg.logLevel
	}
	if cfg.logFile != "" {
		logCfg.FilePath = cfg.logFile
	}
	logCleanup, err := logging.Setup(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	var clientOpts []client.Option
	if cfg.httpClient != nil {
		clientOpts = append(clientOpts, client.WithHTTPClient(cfg.httpClient))
	}
	toolDeps, err := tools.NewDeps(cfg.config, clientOpts...)
	if err != nil {
		_ = logCleanup()
		return nil, err
	}

	// Public deps share the same values under the public type.
	deps := &Deps{
		Fetcher: toolDeps.Fetcher,
		Cache:   toolDeps.Cache,
		Config:  toolDeps.Config,
	}

	internalOpts := []mcp.ServerOption{
		mcp.WithExecutor(invocation.Executor{Interpreter: cfg.interpreter, Script: cfg.script}),
	}
	if !cfg.disableBuiltinTools {
		internalOpts = append(internalOpts, mcp.WithBuiltinTools())
	}
	if !cfg.disableBuiltinPrompts {
		internalOpts = append(internalOpts, mcp.WithBuiltinPrompts())
	}
	for _, fn := range cfg.registrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}
	for _, fn := range cfg.depsRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(func(srv *sdkmcp.Server) {
			fn(srv, deps)
		}))
	}

	internal, err := mcp.NewServer(toolDeps, internalOpts...)
	if err != nil {
		_ = logCleanup()
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return &Server{
		internal:   internal,
		deps:       deps,
		logCleanup: logCleanup,
	}, nil
}

// Run serves MCP over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.internal.Run(ctx)
}

// MCPServer returns the underlying MCP server, e.g. to connect another
// transport.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.internal.MCPServer()
}

// Close cleans up server resources.
func (s *Server) Close() error {
	if s.logCleanup != nil {
		return s.logCleanup()
	}
	return nil
}

// Deps returns the dependencies for building custom tools.
func (s *Server) Deps() *Deps {
	return s.deps
}
