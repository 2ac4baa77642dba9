// Package generator runs the whole pipeline: aggregate processes, build the
// command template, assemble the tool document and render it.
package generator

import (
	"context"
	"io"
	"log/slog"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/aggregator"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/assembler"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/compiler"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/config"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/diag"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/invocation"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/client"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/galaxy"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

// Result is a generated tool with the diagnostics raised while building it.
type Result struct {
	Tool     *galaxy.Tool
	Registry *types.Registry
	Warnings []types.Warning
	// Degraded lists servers whose conformance could not be confirmed.
	Degraded []string
}

// Render writes the tool document as XML.
func (r *Result) Render(w io.Writer) error {
	return galaxy.Render(w, r.Tool)
}

// Generator builds tools from configurations.
type Generator struct {
	source aggregator.Source
	logger *slog.Logger
}

// New returns a generator reading process metadata from source.
func New(source aggregator.Source) *Generator {
	return &Generator{source: source, logger: slog.Default()}
}

// Generate builds the tool described by cfg. Fetch failures abort generation;
// everything else is reported in Result.Warnings.
func (g *Generator) Generate(ctx context.Context, cfg *config.ToolConfig) (*Result, error) {
	d := diag.New(g.logger)

	agg, err := aggregator.New(g.source, d).Aggregate(ctx, ServerSpecs(cfg))
	if err != nil {
		return nil, err
	}

	tool := Build(IdentityOf(cfg), ExecutorOf(cfg), agg.Registry, agg.Degraded)
	return &Result{
		Tool:     tool,
		Registry: agg.Registry,
		Warnings: d.Warnings(),
		Degraded: agg.Degraded,
	}, nil
}

// Build assembles a tool from an already compiled registry.
func Build(id assembler.Identity, exec invocation.Executor, registry *types.Registry, degraded []string) *galaxy.Tool {
	tmpl := invocation.NewBuilder(exec).Build(registry)
	return assembler.Assemble(id, registry, tmpl, assembler.WithDegradedServers(degraded))
}

// FromDescriptions builds a tool from process descriptions already in hand,
// without contacting any server. server is recorded as their origin.
func FromDescriptions(id assembler.Identity, exec invocation.Executor, server string, descs ...*client.ProcessDescription) *Result {
	d := diag.New(slog.Default())
	c := compiler.New(d)

	entries := make([]types.ProcessEntry, 0, len(descs))
	for _, desc := range descs {
		entries = append(entries, c.Compile(server, desc))
	}
	registry := types.NewRegistry(entries)

	return &Result{
		Tool:     Build(id, exec, registry, nil),
		Registry: registry,
		Warnings: d.Warnings(),
	}
}

// CompileProcess fetches and compiles a single process.
func CompileProcess(ctx context.Context, source aggregator.Source, server, processID string) (types.ProcessEntry, []types.Warning, error) {
	desc, err := source.GetProcess(ctx, server, processID)
	if err != nil {
		return types.ProcessEntry{}, nil, &aggregator.FetchError{Server: server, Process: processID, Op: aggregator.OpDescribe, Err: err}
	}
	d := diag.New(slog.Default())
	entry := compiler.New(d).Compile(server, desc)
	return entry, d.Warnings(), nil
}

// ServerSpecs converts the configured servers into aggregator specs.
func ServerSpecs(cfg *config.ToolConfig) []aggregator.ServerSpec {
	specs := make([]aggregator.ServerSpec, 0, len(cfg.Servers))
	for _, s := range cfg.Servers {
		include := s.IncludedServices
		if include == nil {
			include = []string{aggregator.Wildcard}
		}
		specs = append(specs, aggregator.ServerSpec{
			URL:     s.ServerURL,
			Include: include,
			Exclude: s.ExcludedServices,
			Filter:  s.Filter,
		})
	}
	return specs
}

// IdentityOf returns the tool identity from cfg.
func IdentityOf(cfg *config.ToolConfig) assembler.Identity {
	return assembler.Identity{
		ID:          cfg.ID,
		Title:       cfg.Title,
		Version:     cfg.Version,
		Description: cfg.Description,
		Help:        cfg.Help,
	}
}

// ExecutorOf returns the executor from cfg; empty fields take the defaults.
func ExecutorOf(cfg *config.ToolConfig) invocation.Executor {
	return invocation.Executor{
		Interpreter: cfg.Executor.Interpreter,
		Script:      cfg.Executor.Script,
	}.WithDefaults()
}
