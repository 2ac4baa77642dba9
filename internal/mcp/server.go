package mcp

import (
	"context"
	"errors"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/invocation"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/mcp/prompts"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/mcp/tools"
)

// Implementation identifies the server to MCP clients.
const (
	ImplementationName    = "ogc2galaxy"
	ImplementationVersion = "1.0.0"
)

// Instructions is sent to clients on initialization.
const Instructions = "Builds Galaxy tool XML from OGC API Processes servers. " +
	"List processes with ogc_list_processes, preview their Galaxy parameters with ogc_compile_process, " +
	"then generate the tool with ogc_generate_tool. The draft_tool_config prompt walks through the whole workflow."

// Server wraps the MCP SDK server with the generator's tools, prompts and
// resources.
type Server struct {
	mcpServer *sdkmcp.Server
	deps      *tools.Deps

	builtinTools   bool
	builtinPrompts bool
	promptCfg      prompts.Config

	registrations []func(*sdkmcp.Server)
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithBuiltinTools enables the ogc_* tools and the config schema resource.
func WithBuiltinTools() ServerOption {
	return func(s *Server) {
		s.builtinTools = true
	}
}

// WithBuiltinPrompts enables the builtin prompts.
func WithBuiltinPrompts() ServerOption {
	return func(s *Server) {
		s.builtinPrompts = true
	}
}

// WithExecutor sets the interpreter and script the prompts advertise. Empty
// fields keep the defaults.
func WithExecutor(exec invocation.Executor) ServerOption {
	return func(s *Server) {
		exec = exec.WithDefaults()
		s.promptCfg = prompts.Config{Interpreter: exec.Interpreter, Script: exec.Script}
	}
}

// WithCustomRegistration adds a callback that receives the SDK server after
// the builtins are registered. Use it to add tools, prompts or resources.
func WithCustomRegistration(fn func(*sdkmcp.Server)) ServerOption {
	return func(s *Server) {
		s.registrations = append(s.registrations, fn)
	}
}

// NewServer creates an MCP server backed by deps.
func NewServer(deps *tools.Deps, opts ...ServerOption) (*Server, error) {
	if deps == nil {
		return nil, errors.New("deps is required")
	}

	s := &Server{
		deps: deps,
		promptCfg: prompts.Config{
			Interpreter: invocation.DefaultInterpreter,
			Script:      invocation.DefaultScript,
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcpServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: ImplementationName, Version: ImplementationVersion},
		&sdkmcp.ServerOptions{Instructions: Instructions},
	)
	s.mcpServer.AddReceivingMiddleware(LoggingMiddleware())

	if s.builtinTools {
		tools.Register(s.mcpServer, deps)
		s.registerResources()
	}
	if s.builtinPrompts {
		prompts.Register(s.mcpServer, &s.promptCfg)
	}
	for _, fn := range s.registrations {
		fn(s.mcpServer)
	}

	return s, nil
}

// Run serves MCP over stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &sdkmcp.StdioTransport{})
}

// MCPServer returns the underlying SDK server.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.mcpServer
}
