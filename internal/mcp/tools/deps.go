package tools

import (
	"context"
	"fmt"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/cache"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/config"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/generator"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/procfetch"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/client"
)

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Fetcher *procfetch.Fetcher
	Cache   *cache.ProcessCache
	Config  *config.Config
}

// NewDeps wires a process cache and a fetcher from cfg. Extra client options
// are applied after the ones derived from cfg.
func NewDeps(cfg *config.Config, opts ...client.Option) (*Deps, error) {
	pc, err := cache.NewProcessCache(cfg.ProcessCacheMaxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to create process cache: %w", err)
	}
	clientOpts := append(cfg.ClientOptions(), opts...)
	return &Deps{
		Fetcher: procfetch.New(pc, clientOpts...),
		Cache:   pc,
		Config:  cfg,
	}, nil
}

// FetchProcess retrieves a process description, checking the cache first.
func (d *Deps) FetchProcess(ctx context.Context, server, processID string) (*client.ProcessDescription, error) {
	return d.Fetcher.GetProcess(ctx, server, processID)
}

// Generator returns a generator that reads through the shared fetcher.
func (d *Deps) Generator() *generator.Generator {
	return generator.New(d.Fetcher)
}
