// Package procfetch fetches process metadata from OGC API Processes servers,
// caching descriptions and sharing concurrent requests for the same process.
package procfetch

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/cache"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/client"
)

// Fetcher is a multi-server process source. It is safe for concurrent use.
type Fetcher struct {
	opts  []client.Option
	cache *cache.ProcessCache

	mu      sync.Mutex
	clients map[string]*client.Client

	group singleflight.Group
}

// New returns a fetcher whose clients are built with opts. pc may be nil to
// disable caching.
func New(pc *cache.ProcessCache, opts ...client.Option) *Fetcher {
	return &Fetcher{
		opts:    opts,
		cache:   pc,
		clients: make(map[string]*client.Client),
	}
}

// Client returns the client for server, creating it on first use.
func (f *Fetcher) Client(server string) *client.Client {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.clients[server]
	if !ok {
		c = client.New(server, f.opts...)
		f.clients[server] = c
	}
	return c
}

// ListProcesses lists the processes of server. Listings are never cached.
func (f *Fetcher) ListProcesses(ctx context.Context, server, filter string) ([]client.ProcessSummary, error) {
	return f.Client(server).ListProcesses(ctx, filter)
}

// GetProcess returns the description of a process, checking the cache first.
// The returned description may be shared and must not be modified.
func (f *Fetcher) GetProcess(ctx context.Context, server, processID string) (*client.ProcessDescription, error) {
	if f.cache != nil {
		if cached, ok := f.cache.Get(server, processID); ok {
			return cached, nil
		}
	}

	// The shared fetch outlives any single caller; each caller stops waiting
	// when its own context ends.
	fetchCtx := context.WithoutCancel(ctx)
	ch := f.group.DoChan(server+"\x00"+processID, func() (any, error) {
		desc, err := f.Client(server).GetProcess(fetchCtx, processID)
		if err != nil {
			return nil, err
		}
		if f.cache != nil {
			f.cache.Put(server, processID, desc)
		}
		return desc, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*client.ProcessDescription), nil
	}
}

// GetConformance returns the conformance classes server declares.
func (f *Fetcher) GetConformance(ctx context.Context, server string) (*client.Conformance, error) {
	return f.Client(server).GetConformance(ctx)
}
