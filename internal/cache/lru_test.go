package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/client"
)

func TestProcessCache(t *testing.T) {
	c, err := NewProcessCache(2)
	require.NoError(t, err)

	echoA := &client.ProcessDescription{ID: "echo", Title: "A"}
	echoB := &client.ProcessDescription{ID: "echo", Title: "B"}
	c.Put("https://a", "echo", echoA)
	c.Put("https://b", "echo", echoB)

	got, ok := c.Get("https://a", "echo")
	require.True(t, ok)
	assert.Same(t, echoA, got)
	got, ok = c.Get("https://b", "echo")
	require.True(t, ok)
	assert.Same(t, echoB, got)

	// "https://a" was used least recently before this access pattern.
	c.Get("https://b", "echo")
	c.Put("https://c", "clip", &client.ProcessDescription{ID: "clip"})
	assert.Equal(t, 2, c.Len())
	_, ok = c.Get("https://a", "echo")
	assert.False(t, ok)

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestNewProcessCache_InvalidSize(t *testing.T) {
	_, err := NewProcessCache(0)
	assert.Error(t, err)
}
