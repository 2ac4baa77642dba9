package invocation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

const defaultTemplate = `Rscript '$__tool_directory__/ogc_api_processes_wrapper.R'
    --json '$inputs'
    --process '$conditional_process.select_process'
    --outputData '$output_data'`

func TestBuild_Default(t *testing.T) {
	tmpl := NewBuilder(Executor{}).Build(types.NewRegistry(nil))
	assert.Equal(t, defaultTemplate, tmpl.Text)
	assert.Equal(t, "$conditional_process.select_process", tmpl.SelectorRef)
	assert.Equal(t, "$inputs", tmpl.ConfigRef)
	assert.Equal(t, "$output_data", tmpl.OutputRef)
}

func TestBuild_IndependentOfRegistry(t *testing.T) {
	b := NewBuilder(Executor{})
	small := b.Build(types.NewRegistry([]types.ProcessEntry{{ID: "a"}}))
	large := b.Build(types.NewRegistry([]types.ProcessEntry{{ID: "a"}, {ID: "b"}, {ID: "c"}}))
	none := b.Build(nil)
	assert.Equal(t, small, large)
	assert.Equal(t, small, none)
}

func TestBuild_CustomExecutor(t *testing.T) {
	tmpl := NewBuilder(Executor{Interpreter: "python3", Script: "$__tool_directory__/it's.py"}).Build(nil)
	assert.Contains(t, tmpl.Text, `python3 '$__tool_directory__/it'\''s.py'`)
	assert.Contains(t, tmpl.Text, "--process '$conditional_process.select_process'")
}

func TestExecutor_WithDefaults(t *testing.T) {
	e := Executor{Script: "run.R"}.WithDefaults()
	assert.Equal(t, "Rscript", e.Interpreter)
	assert.Equal(t, "run.R", e.Script)
}
