package mcpsrv

import (
	"context"
	"net/http"
	"time"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/config"
)

// serverConfig holds configuration built from options.
type serverConfig struct {
	config     *config.Config
	httpClient *http.Client

	// Logging overrides
	logLevel string
	logFile  string

	interpreter string
	script      string

	disableBuiltinTools   bool
	disableBuiltinPrompts bool

	// Registration callbacks keep the generic handler types of the caller.
	registrations []func(*mcp.Server)
	// Registrations that need Deps run once Deps exist.
	depsRegistrations []func(*mcp.Server, *Deps)
}

// Option configures the server.
type Option func(*serverConfig)

// WithLogLevel sets the log level (debug, info, warn, error).
func WithLogLevel(level string) Option {
	return func(cfg *serverConfig) {
		cfg.logLevel = level
	}
}

// WithLogFile sets the log file path.
// If empty, logs are written to stderr only.
func WithLogFile(path string) Option {
	return func(cfg *serverConfig) {
		cfg.logFile = path
	}
}

// WithHTTPClient sets the HTTP client used for every OGC API server.
// It replaces the client built from OGC_HTTP_TIMEOUT_MS.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *serverConfig) {
		cfg.httpClient = c
	}
}

// WithTimeout sets the per-request timeout for OGC API servers.
// Ignored when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(cfg *serverConfig) {
		cfg.config.HTTPTimeout = d
	}
}

// WithUserAgent sets the User-Agent sent to OGC API servers.
func WithUserAgent(ua string) Option {
	return func(cfg *serverConfig) {
		cfg.config.UserAgent = ua
	}
}

// WithProcessCacheSize sets how many process descriptions stay cached.
func WithProcessCacheSize(n int) Option {
	return func(cfg *serverConfig) {
		cfg.config.ProcessCacheMaxItems = n
	}
}

// WithExecutor sets the interpreter and wrapper script the builtin prompts
// suggest for generated tools. Empty values keep the defaults.
func WithExecutor(interpreter, script string) Option {
	return func(cfg *serverConfig) {
		cfg.interpreter = interpreter
		cfg.script = script
	}
}

// WithoutBuiltinTools disables the builtin ogc_* tools and the config schema
// resource. Use this to serve only your own tools.
func WithoutBuiltinTools() Option {
	return func(cfg *serverConfig) {
		cfg.disableBuiltinTools = true
	}
}

// WithoutBuiltinPrompts disables the builtin prompts.
func WithoutBuiltinPrompts() Option {
	return func(cfg *serverConfig) {
		cfg.disableBuiltinPrompts = true
	}
}

// WithTool registers a custom tool. The handler follows the SDK pattern:
//
//	func(ctx context.Context, req *mcp.CallToolRequest, input In) (*mcp.CallToolResult, Out, error)
//
// In is decoded from the call arguments and Out is encoded as structured
// content. Registration panics if the zero value of Out does not match its
// inferred schema; see AddTool.
func WithTool[In, Out any](tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, Out, error)) Option {
	return func(cfg *serverConfig) {
		cfg.registrations = append(cfg.registrations, func(srv *mcp.Server) {
			AddTool(srv, tool, handler)
		})
	}
}

// WithDepsTool registers a custom tool built from Deps, for tools that need
// the shared fetcher or process cache:
//
//	mcpsrv.WithDepsTool(
//	    &mcp.Tool{Name: "count_inputs", Description: "Count the inputs of a process"},
//	    func(d *mcpsrv.Deps) func(ctx context.Context, req *mcp.CallToolRequest, input MyInput) (*mcp.CallToolResult, MyOutput, error) {
//	        return func(ctx context.Context, req *mcp.CallToolRequest, input MyInput) (*mcp.CallToolResult, MyOutput, error) {
//	            desc, err := d.Fetcher.GetProcess(ctx, input.Server, input.ProcessID)
//	            if err != nil {
//	                return nil, MyOutput{}, err
//	            }
//	            return nil, MyOutput{Count: len(desc.Inputs)}, nil
//	        }
//	    },
//	)
func WithDepsTool[In, Out any](tool *mcp.Tool, builder func(*Deps) func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, Out, error)) Option {
	return func(cfg *serverConfig) {
		cfg.depsRegistrations = append(cfg.depsRegistrations, func(srv *mcp.Server, deps *Deps) {
			AddTool(srv, tool, builder(deps))
		})
	}
}

// WithPrompt registers a custom prompt.
func WithPrompt(prompt *mcp.Prompt, handler func(context.Context, *mcp.GetPromptRequest) (*mcp.GetPromptResult, error)) Option {
	return func(cfg *serverConfig) {
		cfg.registrations = append(cfg.registrations, func(srv *mcp.Server) {
			srv.AddPrompt(prompt, handler)
		})
	}
}

// WithResourceTemplate registers a custom resource template, e.g.
// "custom://process/{id}".
func WithResourceTemplate(template *mcp.ResourceTemplate, handler func(context.Context, *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error)) Option {
	return func(cfg *serverConfig) {
		cfg.registrations = append(cfg.registrations, func(srv *mcp.Server) {
			srv.AddResourceTemplate(template, handler)
		})
	}
}
