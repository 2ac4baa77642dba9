// Package tools contains MCP tool implementations for the OGC API Processes
// to Galaxy tool generator.
package tools

import (
	"encoding/json"
	"strings"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

// MimeJSON is the media type of JSON resources.
const MimeJSON = "application/json"

// rawToAny decodes a raw JSON member for tool output. Absent members become nil.
func rawToAny(raw json.RawMessage) any {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}
	v, err := types.ToAny(raw)
	if err != nil {
		return nil
	}
	return v
}

// countSkipped returns how many warnings dropped a parameter or output.
func countSkipped(warnings []types.Warning) int {
	n := 0
	for _, w := range warnings {
		if w.Severity == types.SeveritySkipped {
			n++
		}
	}
	return n
}
