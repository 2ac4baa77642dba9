package mcpsrv

import (
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/cache"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/config"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/procfetch"
)

// Deps contains all dependencies available to custom tools.
// This gives custom tools access to the same infrastructure as builtin tools.
type Deps struct {
	// Fetcher reads process lists and cached process descriptions.
	Fetcher *procfetch.Fetcher
	Cache   *cache.ProcessCache
	Config  *config.Config
}
