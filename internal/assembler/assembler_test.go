package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/invocation"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

var identity = Identity{
	ID:          "ogc_processes",
	Title:       "OGC processes",
	Version:     "1.0.0",
	Description: "Runs processes",
	Help:        "Pick a process.",
}

func registry() *types.Registry {
	return types.NewRegistry([]types.ProcessEntry{
		{
			ID: "echo", Title: "Echo", Server: "https://a",
			Inputs:  []types.Primitive{{Name: "msg", Label: "Message", Help: "h", Kind: types.KindText}},
			Outputs: []types.Primitive{{Name: "result_outformat", Label: "Result", Help: "h", Kind: types.KindSelect, Choices: types.DistinctChoices([]string{"txt"})}},
		},
		{ID: "clip", Server: "https://b"},
	})
}

func TestAssemble(t *testing.T) {
	tmpl := invocation.NewBuilder(invocation.Executor{}).Build(registry())
	tool := Assemble(identity, registry(), tmpl)

	assert.Equal(t, "ogc_processes", tool.ID)
	assert.Equal(t, "OGC processes", tool.Name)
	assert.Equal(t, "1.0.0", tool.Version)
	assert.Equal(t, "Runs processes", tool.Description)
	assert.Equal(t, tmpl.Text, tool.Command.Text)
	assert.Equal(t, "Pick a process.", tool.Help.Text)

	cond := tool.Inputs.Conditional
	assert.Equal(t, "conditional_process", cond.Name)
	assert.Equal(t, "select_process", cond.Param.Name)
	assert.Equal(t, "select", cond.Param.Type)
	require.Len(t, cond.Param.Options, 2)
	assert.Equal(t, "echo: Echo", cond.Param.Options[0].Text)
	assert.Equal(t, "clip", cond.Param.Options[1].Text)

	require.Len(t, cond.Whens, 2)
	assert.Equal(t, "echo", cond.Whens[0].Value)
	require.Len(t, cond.Whens[0].Params, 2)
	assert.Equal(t, "msg", cond.Whens[0].Params[0].Name)
	assert.Equal(t, "result_outformat", cond.Whens[0].Params[1].Name)
	assert.Equal(t, "clip", cond.Whens[1].Value)
	assert.Empty(t, cond.Whens[1].Params)

	require.Len(t, tool.Outputs.Data, 1)
	out := tool.Outputs.Data[0]
	assert.Equal(t, "output_data", out.Name)
	assert.Equal(t, "txt", out.Format)
	assert.Equal(t, tmpl.SelectorRef, out.Label)

	require.Len(t, tool.ConfigFiles.Inputs, 1)
	assert.Equal(t, "inputs", tool.ConfigFiles.Inputs[0].Name)
}

func TestAssemble_EmptyRegistry(t *testing.T) {
	tool := Assemble(identity, types.NewRegistry(nil), invocation.NewBuilder(invocation.Executor{}).Build(nil))
	assert.Empty(t, tool.Inputs.Conditional.Param.Options)
	assert.Empty(t, tool.Inputs.Conditional.Whens)
	assert.Len(t, tool.Outputs.Data, 1)
}

func TestAssemble_DegradedHelp(t *testing.T) {
	tool := Assemble(identity, registry(), invocation.Template{}, WithDegradedServers([]string{"https://a", "https://b"}))
	assert.Equal(t, "Pick a process.\n\n"+DegradedNote+"\n- https://a\n- https://b", tool.Help.Text)

	bare := identity
	bare.Help = ""
	tool = Assemble(bare, registry(), invocation.Template{}, WithDegradedServers([]string{"https://a"}))
	assert.Equal(t, DegradedNote+"\n- https://a", tool.Help.Text)
}
