// Package invocation builds the command template a Galaxy tool runs.
//
// The template is the same for every process: it passes the process selected
// at runtime, the path of the JSON file holding all parameter values, and the
// output dataset path to one executor script.
package invocation

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

// Executor defaults.
const (
	DefaultInterpreter = "Rscript"
	DefaultScript      = "$__tool_directory__/ogc_api_processes_wrapper.R"
)

// Fixed names shared by the template and the tool document.
const (
	// ConfigFileName names the configfile holding all inputs as JSON.
	ConfigFileName = "inputs"
	// ConfigFilePath is the file name Galaxy writes the inputs to.
	ConfigFilePath = "inputs.json"
	// OutputName names the single output dataset.
	OutputName = "output_data"
)

// Executor is the program the tool runs.
type Executor struct {
	Interpreter string
	Script      string
}

// WithDefaults fills empty fields with the default interpreter and script.
func (e Executor) WithDefaults() Executor {
	if e.Interpreter == "" {
		e.Interpreter = DefaultInterpreter
	}
	if e.Script == "" {
		e.Script = DefaultScript
	}
	return e
}

// Template is a rendered command template.
type Template struct {
	Text string
	// SelectorRef is the Cheetah reference to the selected process id.
	SelectorRef string
	// ConfigRef is the Cheetah reference to the inputs configfile.
	ConfigRef string
	// OutputRef is the Cheetah reference to the output dataset.
	OutputRef string
}

// Builder builds command templates for one executor.
type Builder struct {
	exec Executor
}

// NewBuilder returns a builder for exec. Empty fields take the defaults.
func NewBuilder(exec Executor) *Builder {
	return &Builder{exec: exec.WithDefaults()}
}

// SelectorRef is the Cheetah reference to the process selector value.
func SelectorRef() string {
	return "$" + types.ConditionalName + "." + types.SelectorName
}

// Build renders the template. The text does not depend on which processes
// the registry holds.
func (b *Builder) Build(registry *types.Registry) Template {
	t := Template{
		SelectorRef: SelectorRef(),
		ConfigRef:   "$" + ConfigFileName,
		OutputRef:   "$" + OutputName,
	}

	lines := []string{
		fmt.Sprintf("%s %s", b.exec.Interpreter, quote(b.exec.Script)),
		"--json " + quote(t.ConfigRef),
		"--process " + quote(t.SelectorRef),
		"--outputData " + quote(t.OutputRef),
	}
	t.Text = strings.Join(lines, "\n    ")

	slog.Debug("command template built",
		slog.String("interpreter", b.exec.Interpreter),
		slog.Int("processes", registry.Len()),
	)
	return t
}

// quote wraps s in single quotes for the shell.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
