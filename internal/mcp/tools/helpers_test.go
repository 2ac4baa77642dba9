package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

func TestRawToAny(t *testing.T) {
	assert.Nil(t, rawToAny(nil))
	assert.Nil(t, rawToAny(json.RawMessage("  ")))
	assert.Nil(t, rawToAny(json.RawMessage("null")))
	assert.Nil(t, rawToAny(json.RawMessage("{broken")))
	assert.Equal(t, map[string]any{"type": "integer", "enum": []any{float64(1), float64(2)}},
		rawToAny(json.RawMessage(`{"type": "integer", "enum": [1, 2]}`)))
}

func TestCountSkipped(t *testing.T) {
	warnings := []types.Warning{
		{Severity: types.SeveritySkipped},
		{Severity: types.SeverityAdvisory},
		{Severity: types.SeveritySkipped},
	}
	assert.Equal(t, 2, countSkipped(warnings))
	assert.Zero(t, countSkipped(nil))
}
