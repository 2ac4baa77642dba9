// Package compiler turns one process description into the ordered input
// parameters and output-format selectors of a tool branch.
package compiler

import (
	"errors"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/diag"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/resolver"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/schema"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/client"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

// Compiler compiles process descriptions. Dropped parameters and missing
// metadata are recorded on its collector; compilation itself never fails.
type Compiler struct {
	diag     *diag.Collector
	resolver *resolver.Resolver
}

// New returns a compiler reporting to d. d may be nil.
func New(d *diag.Collector) *Compiler {
	return &Compiler{diag: d, resolver: resolver.New(d)}
}

// Compile compiles desc as served by server.
func (c *Compiler) Compile(server string, desc *client.ProcessDescription) types.ProcessEntry {
	entry := types.ProcessEntry{
		ID:      desc.ID,
		Title:   desc.Title,
		Server:  server,
		Inputs:  make([]types.Primitive, 0, len(desc.Inputs)),
		Outputs: make([]types.Primitive, 0, len(desc.Outputs)),
	}
	loc := diag.Location{Server: server, Process: desc.ID}

	for _, in := range desc.Inputs {
		if p, ok := c.compileInput(loc.At(in.Name), in); ok {
			entry.Inputs = append(entry.Inputs, p)
		}
	}
	for _, out := range desc.Outputs {
		if p, ok := c.compileOutput(loc.At(out.Name), out); ok {
			entry.Outputs = append(entry.Outputs, p)
		}
	}
	return entry
}

func (c *Compiler) compileInput(loc diag.Location, in client.Input) (types.Primitive, bool) {
	sch, err := inputSchema(in)
	if err != nil {
		c.diag.Skipped(types.CodeInvalidSchema, loc, "input %q skipped: %v", in.Name, err)
		return types.Primitive{}, false
	}

	res, err := c.resolver.Resolve(loc, types.SanitizeName(in.Name), sch)
	if err != nil {
		c.skip(loc, "input", in.Name, err)
		return types.Primitive{}, false
	}

	p := c.primitive(loc, in.Name, in.Title, in.Description, res)
	// Typed arrays replace the help text with the input instruction.
	if res.Hint != "" {
		p.Help = res.Hint
	}
	return p, true
}

// compileOutput builds the "<output>_outformat" selector. Outputs without an
// extended schema offer no format choice and are left out silently.
func (c *Compiler) compileOutput(loc diag.Location, out client.Output) (types.Primitive, bool) {
	ext, err := schema.ParseExtended(out.ExtendedSchema)
	if err != nil {
		c.diag.Skipped(types.CodeInvalidSchema, loc, "output %q skipped: %v", out.Name, err)
		return types.Primitive{}, false
	}
	if ext == nil {
		return types.Primitive{}, false
	}

	res, err := resolver.ResolveFormatChoice(types.SanitizeName(out.Name)+types.OutputFormatSuffix, ext)
	if err != nil {
		c.skip(loc, "output", out.Name, err)
		return types.Primitive{}, false
	}
	return c.primitive(loc, out.Name, out.Title, out.Description, res), true
}

// inputSchema prefers the extended schema over the plain one.
func inputSchema(in client.Input) (schema.Schema, error) {
	ext, err := schema.ParseExtended(in.ExtendedSchema)
	if err != nil {
		return nil, err
	}
	if ext != nil {
		return ext, nil
	}
	return schema.Parse(in.Schema)
}

func (c *Compiler) primitive(loc diag.Location, rawName, title, description string, res *resolver.Resolution) types.Primitive {
	label := title
	if label == "" {
		label = rawName
		c.diag.Advisory(types.CodeMissingTitle, loc, "%q has no title; using its name as label", rawName)
	}
	help := description
	if help == "" {
		help = types.DefaultHelp
		c.diag.Advisory(types.CodeMissingDescription, loc, "%q has no description", rawName)
	}

	return types.Primitive{
		Name:       res.Name,
		Label:      label,
		Help:       help,
		Kind:       res.Kind,
		Choices:    res.Choices,
		Default:    res.Default,
		Optional:   res.Optional,
		Format:     res.Format,
		TrueValue:  res.TrueValue,
		FalseValue: res.FalseValue,
	}
}

func (c *Compiler) skip(loc diag.Location, what, name string, err error) {
	code := types.CodeUnmappedSchema
	var unmapped *resolver.UnmappedError
	if errors.As(err, &unmapped) {
		code = unmapped.Code
	}
	c.diag.Skipped(code, loc, "%s %q skipped: %v", what, name, err)
}
