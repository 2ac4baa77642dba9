// Package assembler composes the Galaxy tool document from the tool identity,
// the process registry and the command template.
package assembler

import (
	"strings"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/invocation"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/galaxy"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

// Identity names and describes the generated tool.
type Identity struct {
	ID          string
	Title       string
	Version     string
	Description string
	Help        string
}

// OutputFormat is the format of the single output dataset.
const OutputFormat = "txt"

type options struct {
	degraded []string
}

// Option configures Assemble.
type Option func(*options)

// WithDegradedServers adds a note to the help text listing servers whose
// conformance could not be confirmed.
func WithDegradedServers(servers []string) Option {
	return func(o *options) {
		o.degraded = servers
	}
}

// DegradedNote prefixes the list of servers in the help text.
const DegradedNote = "Note: the following servers do not declare every required OGC API Processes conformance class; their parameters may be incomplete:"

// Assemble builds the tool document. It performs no I/O and keeps registry
// order: one selector option and one <when> branch per entry.
func Assemble(id Identity, registry *types.Registry, tmpl invocation.Template, opts ...Option) *galaxy.Tool {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	entries := registry.Entries()
	whens := make([]galaxy.When, 0, len(entries))
	for _, e := range entries {
		params := make([]galaxy.Param, 0, len(e.Inputs)+len(e.Outputs))
		for _, p := range e.Inputs {
			params = append(params, galaxy.NewParam(p))
		}
		for _, p := range e.Outputs {
			params = append(params, galaxy.NewParam(p))
		}
		whens = append(whens, galaxy.When{Value: e.ID, Params: params})
	}

	return &galaxy.Tool{
		ID:          id.ID,
		Name:        id.Title,
		Version:     id.Version,
		Description: id.Description,
		Command: galaxy.Command{
			DetectErrors: "exit_code",
			Text:         tmpl.Text,
		},
		ConfigFiles: galaxy.ConfigFiles{Inputs: []galaxy.ConfigInputs{{
			Name:      invocation.ConfigFileName,
			Filename:  invocation.ConfigFilePath,
			DataStyle: "paths",
		}}},
		Inputs: galaxy.Inputs{Conditional: galaxy.Conditional{
			Name:  types.ConditionalName,
			Param: galaxy.NewParam(registry.Selector()),
			Whens: whens,
		}},
		Outputs: galaxy.Outputs{Data: []galaxy.Data{{
			Name:   invocation.OutputName,
			Format: OutputFormat,
			Label:  tmpl.SelectorRef,
		}}},
		Help: galaxy.CData{Text: help(id.Help, o.degraded)},
	}
}

func help(text string, degraded []string) string {
	if len(degraded) == 0 {
		return text
	}
	var b strings.Builder
	if text != "" {
		b.WriteString(text)
		b.WriteString("\n\n")
	}
	b.WriteString(DegradedNote)
	for _, s := range degraded {
		b.WriteString("\n- ")
		b.WriteString(s)
	}
	return b.String()
}
