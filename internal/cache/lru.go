// Package cache provides caching utilities for the MCP server.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/client"
)

// Key identifies a process on a server.
type Key struct {
	Server    string
	ProcessID string
}

// ProcessCache provides thread-safe LRU caching of process descriptions.
// Cached descriptions are shared and must not be modified.
type ProcessCache struct {
	cache *lru.Cache[Key, *client.ProcessDescription]
}

// NewProcessCache creates a new LRU cache with the specified maximum number of items.
func NewProcessCache(maxItems int) (*ProcessCache, error) {
	c, err := lru.New[Key, *client.ProcessDescription](maxItems)
	if err != nil {
		return nil, err
	}
	return &ProcessCache{cache: c}, nil
}

// Get retrieves a description from the cache.
func (c *ProcessCache) Get(server, processID string) (*client.ProcessDescription, bool) {
	return c.cache.Get(Key{Server: server, ProcessID: processID})
}

// Put adds or updates a description in the cache.
func (c *ProcessCache) Put(server, processID string, desc *client.ProcessDescription) {
	c.cache.Add(Key{Server: server, ProcessID: processID}, desc)
}

// Purge drops every cached description.
func (c *ProcessCache) Purge() {
	c.cache.Purge()
}

// Len returns the current number of items in the cache.
func (c *ProcessCache) Len() int {
	return c.cache.Len()
}
