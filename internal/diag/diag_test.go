package diag

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

func TestCollector_RecordsInOrderAndLogs(t *testing.T) {
	var buf bytes.Buffer
	c := New(slog.New(slog.NewTextHandler(&buf, nil)))

	loc := Location{Server: "https://a.example", Process: "echo"}
	c.Advisory(types.CodeMissingTitle, loc.At("x"), "parameter %q has no title", "x")
	c.Skipped(types.CodeUnmappedSchema, loc.At("y"), "no rule matched")

	warnings := c.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, types.SeverityAdvisory, warnings[0].Severity)
	assert.Equal(t, types.CodeMissingTitle, warnings[0].Code)
	assert.Equal(t, "x", warnings[0].Parameter)
	assert.Equal(t, `parameter "x" has no title`, warnings[0].Message)
	assert.Equal(t, types.SeveritySkipped, warnings[1].Severity)
	assert.Equal(t, "echo", warnings[1].Process)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.Count(types.SeveritySkipped))

	logged := buf.String()
	assert.Contains(t, logged, "level=WARN")
	assert.Contains(t, logged, "code=unmapped_schema")
	assert.Contains(t, logged, "parameter=y")
}

func TestCollector_WarningsIsACopy(t *testing.T) {
	var c Collector
	c.Add(types.Warning{Code: "a"})
	w := c.Warnings()
	w[0].Code = "changed"
	assert.Equal(t, "a", c.Warnings()[0].Code)
}

func TestCollector_Nil(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.Advisory("code", Location{}, "ignored")
	})
	assert.Nil(t, c.Warnings())
	assert.Equal(t, 0, c.Len())
}

func TestWarning_String(t *testing.T) {
	w := types.Warning{Severity: types.SeveritySkipped, Code: "unmapped_schema", Process: "p", Parameter: "x", Message: "boom"}
	assert.Equal(t, "[skipped] unmapped_schema (process=p parameter=x): boom", w.String())

	bare := types.Warning{Severity: types.SeverityAdvisory, Code: "c", Message: "m"}
	assert.Equal(t, "[advisory] c: m", bare.String())
}
