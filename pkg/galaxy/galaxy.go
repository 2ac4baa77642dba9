// Package galaxy models a Galaxy tool wrapper document and renders it as XML.
package galaxy

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

// Tool is the root <tool> element.
type Tool struct {
	XMLName     xml.Name    `xml:"tool"`
	ID          string      `xml:"id,attr"`
	Name        string      `xml:"name,attr"`
	Version     string      `xml:"version,attr"`
	Description string      `xml:"description,omitempty"`
	Command     Command     `xml:"command"`
	ConfigFiles ConfigFiles `xml:"configfiles"`
	Inputs      Inputs      `xml:"inputs"`
	Outputs     Outputs     `xml:"outputs"`
	Help        CData       `xml:"help"`
}

// Command is the <command> element holding the Cheetah template.
type Command struct {
	DetectErrors string `xml:"detect_errors,attr,omitempty"`
	Text         string `xml:",cdata"`
}

// CData is element text written as a CDATA section.
type CData struct {
	Text string `xml:",cdata"`
}

// ConfigFiles is the <configfiles> element.
type ConfigFiles struct {
	Inputs []ConfigInputs `xml:"inputs"`
}

// ConfigInputs asks Galaxy to write all parameter values to one JSON file.
type ConfigInputs struct {
	Name      string `xml:"name,attr"`
	Filename  string `xml:"filename,attr"`
	DataStyle string `xml:"data_style,attr,omitempty"`
}

// Inputs is the <inputs> element.
type Inputs struct {
	Conditional Conditional `xml:"conditional"`
}

// Conditional dispatches on a select parameter, one <when> per value.
type Conditional struct {
	Name  string `xml:"name,attr"`
	Param Param  `xml:"param"`
	Whens []When `xml:"when"`
}

// When holds the parameters shown for one selector value.
type When struct {
	Value  string  `xml:"value,attr"`
	Params []Param `xml:"param"`
}

// Param is a <param> element.
type Param struct {
	Name       string   `xml:"name,attr"`
	Type       string   `xml:"type,attr"`
	Label      string   `xml:"label,attr"`
	Help       string   `xml:"help,attr,omitempty"`
	Optional   string   `xml:"optional,attr,omitempty"`
	Value      *string  `xml:"value,attr"`
	Format     string   `xml:"format,attr,omitempty"`
	TrueValue  string   `xml:"truevalue,attr,omitempty"`
	FalseValue string   `xml:"falsevalue,attr,omitempty"`
	Options    []Option `xml:"option"`
}

// Option is one <option> of a select parameter.
type Option struct {
	Value    string `xml:"value,attr"`
	Selected string `xml:"selected,attr,omitempty"`
	Text     string `xml:",chardata"`
}

// Outputs is the <outputs> element.
type Outputs struct {
	Data []Data `xml:"data"`
}

// Data is an output dataset.
type Data struct {
	Name   string `xml:"name,attr"`
	Format string `xml:"format,attr"`
	Label  string `xml:"label,attr,omitempty"`
}

// NewParam converts a primitive into a <param>. A select option equal to the
// default is marked selected.
func NewParam(p types.Primitive) Param {
	param := Param{
		Name:       p.Name,
		Type:       string(p.Kind),
		Label:      p.Label,
		Help:       p.Help,
		Optional:   fmt.Sprint(p.Optional),
		Value:      p.Default,
		Format:     p.Format,
		TrueValue:  p.TrueValue,
		FalseValue: p.FalseValue,
	}
	if p.Kind != types.KindSelect {
		return param
	}

	// The selected option carries the default for select parameters.
	param.Value = nil
	for _, c := range p.Choices {
		opt := Option{Value: c.Value, Text: c.Text}
		if p.Default != nil && *p.Default == c.Value {
			opt.Selected = "true"
		}
		param.Options = append(param.Options, opt)
	}
	return param
}

// Render writes the tool as an indented XML document.
func Render(w io.Writer, t *Tool) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encoding tool %q: %w", t.ID, err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
