// Package aggregator pulls process descriptions from OGC API Processes
// servers, filters them and compiles the selected ones into a registry.
package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/compiler"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/diag"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/client"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

// Wildcard in an include list selects every listed process.
const Wildcard = "*"

// ServerSpec selects processes from one server.
type ServerSpec struct {
	URL string
	// Include lists process ids to use, or Wildcard.
	Include []string
	// Exclude lists process ids to leave out. It wins over Include.
	Exclude []string
	// Filter is a raw query string appended to the process listing.
	Filter string
}

// Selects reports whether the process id is used. The exclude list is checked
// first.
func (s ServerSpec) Selects(id string) bool {
	if slices.Contains(s.Exclude, id) {
		return false
	}
	return slices.Contains(s.Include, Wildcard) || slices.Contains(s.Include, id)
}

// Source fetches process metadata from a server.
type Source interface {
	ListProcesses(ctx context.Context, server, filter string) ([]client.ProcessSummary, error)
	GetProcess(ctx context.Context, server, processID string) (*client.ProcessDescription, error)
	GetConformance(ctx context.Context, server string) (*client.Conformance, error)
}

// Fetch operations reported in FetchError.
const (
	OpList     = "list processes"
	OpDescribe = "describe process"
)

// FetchError reports a failed listing or description fetch. It aborts the run.
type FetchError struct {
	Server  string
	Process string
	Op      string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Process == "" {
		return fmt.Sprintf("%s on %s: %v", e.Op, e.Server, e.Err)
	}
	return fmt.Sprintf("%s %q on %s: %v", e.Op, e.Process, e.Server, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Result is the outcome of an aggregation run.
type Result struct {
	Registry *types.Registry
	// Degraded lists servers whose conformance could not be confirmed.
	Degraded []string
}

// IsDegraded reports whether any server failed the conformance check.
func (r *Result) IsDegraded() bool {
	return len(r.Degraded) > 0
}

// Aggregator builds registries from server specs.
type Aggregator struct {
	source   Source
	compiler *compiler.Compiler
	diag     *diag.Collector
}

// New returns an aggregator that fetches from source and reports to d.
func New(source Source, d *diag.Collector) *Aggregator {
	return &Aggregator{
		source:   source,
		compiler: compiler.New(d),
		diag:     d,
	}
}

// Aggregate visits servers in order, one request at a time, and compiles
// every selected process. Entries keep server order, then listing order.
func (a *Aggregator) Aggregate(ctx context.Context, servers []ServerSpec) (*Result, error) {
	var (
		entries  []types.ProcessEntry
		degraded []string
		seen     = make(map[string]string)
	)

	for _, srv := range servers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		logger := slog.With(slog.String("server", srv.URL))
		loc := diag.Location{Server: srv.URL}

		if !a.checkConformance(ctx, srv.URL, loc) {
			degraded = append(degraded, srv.URL)
		}

		listed, err := a.source.ListProcesses(ctx, srv.URL, srv.Filter)
		if err != nil {
			return nil, &FetchError{Server: srv.URL, Op: OpList, Err: err}
		}
		if len(listed) == 0 {
			a.diag.Advisory(types.CodeEmptyProcessList, loc, "server lists no processes")
		}
		a.auditIncludes(srv, listed)

		for _, summary := range listed {
			if !srv.Selects(summary.ID) {
				logger.Debug("process not selected", slog.String("process", summary.ID))
				continue
			}

			fetched, err := a.source.GetProcess(ctx, srv.URL, summary.ID)
			if err != nil {
				return nil, &FetchError{Server: srv.URL, Process: summary.ID, Op: OpDescribe, Err: err}
			}
			// Sources may share cached descriptions; fill gaps on a copy.
			desc := *fetched
			if desc.ID == "" {
				desc.ID = summary.ID
			}
			if desc.Title == "" {
				desc.Title = summary.Title
			}

			entry := a.compiler.Compile(srv.URL, &desc)
			if first, dup := seen[entry.ID]; dup {
				a.diag.Advisory(types.CodeDuplicateProcess, diag.Location{Server: srv.URL, Process: entry.ID},
					"process %q is also offered by %s; both are kept", entry.ID, first)
			} else {
				seen[entry.ID] = srv.URL
			}
			entries = append(entries, entry)

			logger.Debug("process compiled",
				slog.String("process", entry.ID),
				slog.Int("inputs", len(entry.Inputs)),
				slog.Int("outputs", len(entry.Outputs)),
			)
		}
	}

	slog.Info("aggregation complete",
		slog.Int("servers", len(servers)),
		slog.Int("processes", len(entries)),
	)
	return &Result{Registry: types.NewRegistry(entries), Degraded: degraded}, nil
}

// checkConformance records missing conformance classes. It returns false when
// the server's conformance could not be confirmed; the server is used anyway.
func (a *Aggregator) checkConformance(ctx context.Context, server string, loc diag.Location) bool {
	conf, err := a.source.GetConformance(ctx, server)
	if err != nil {
		a.diag.Advisory(types.CodeConformanceUnavailable, loc, "conformance could not be read: %v", err)
		return false
	}
	missing := conf.Missing(client.RequiredConformance)
	if len(missing) == 0 {
		return true
	}
	a.diag.Advisory(types.CodeMissingConformance, loc, "server does not declare %s", strings.Join(missing, ", "))
	return false
}

// auditIncludes reports explicitly included ids the server does not list.
func (a *Aggregator) auditIncludes(srv ServerSpec, listed []client.ProcessSummary) {
	if slices.Contains(srv.Include, Wildcard) {
		return
	}
	for _, id := range srv.Include {
		found := slices.ContainsFunc(listed, func(p client.ProcessSummary) bool { return p.ID == id })
		if !found {
			a.diag.Advisory(types.CodeIncludedMissing, diag.Location{Server: srv.URL, Process: id},
				"included process %q is not listed by the server", id)
		}
	}
}
