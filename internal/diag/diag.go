// Package diag collects the structured warnings raised while generating a tool.
package diag

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

// Collector accumulates warnings in the order they are raised. Each warning is
// also logged at warn level. The zero value is ready to use; a nil *Collector
// discards everything.
type Collector struct {
	mu       sync.Mutex
	warnings []types.Warning
	logger   *slog.Logger
}

// New returns a collector that logs through logger (slog.Default when nil).
func New(logger *slog.Logger) *Collector {
	return &Collector{logger: logger}
}

// Add records a warning.
func (c *Collector) Add(w types.Warning) {
	if c == nil {
		return
	}

	c.mu.Lock()
	c.warnings = append(c.warnings, w)
	logger := c.logger
	c.mu.Unlock()

	if logger == nil {
		logger = slog.Default()
	}
	attrs := []slog.Attr{
		slog.String("severity", string(w.Severity)),
		slog.String("code", w.Code),
	}
	if w.Server != "" {
		attrs = append(attrs, slog.String("server", w.Server))
	}
	if w.Process != "" {
		attrs = append(attrs, slog.String("process", w.Process))
	}
	if w.Parameter != "" {
		attrs = append(attrs, slog.String("parameter", w.Parameter))
	}
	logger.LogAttrs(context.Background(), slog.LevelWarn, w.Message, attrs...)
}

// Advisory records a warning that dropped nothing from the tool.
func (c *Collector) Advisory(code string, loc Location, format string, args ...any) {
	c.Add(loc.warning(types.SeverityAdvisory, code, fmt.Sprintf(format, args...)))
}

// Skipped records a warning for a parameter or output left out of the tool.
func (c *Collector) Skipped(code string, loc Location, format string, args ...any) {
	c.Add(loc.warning(types.SeveritySkipped, code, fmt.Sprintf(format, args...)))
}

// Warnings returns a copy of the collected warnings.
func (c *Collector) Warnings() []types.Warning {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Len returns the number of collected warnings.
func (c *Collector) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.warnings)
}

// Count returns the number of warnings with the given severity.
func (c *Collector) Count(severity types.Severity) int {
	n := 0
	for _, w := range c.Warnings() {
		if w.Severity == severity {
			n++
		}
	}
	return n
}

// Location identifies what a warning is about.
type Location struct {
	Server    string
	Process   string
	Parameter string
}

// At returns a location for a parameter of the current process.
func (l Location) At(parameter string) Location {
	l.Parameter = parameter
	return l
}

func (l Location) warning(severity types.Severity, code, msg string) types.Warning {
	return types.Warning{
		Severity:  severity,
		Code:      code,
		Server:    l.Server,
		Process:   l.Process,
		Parameter: l.Parameter,
		Message:   msg,
	}
}
