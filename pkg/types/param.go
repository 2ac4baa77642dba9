package types

import "strings"

// Kind is the closed set of parameter kinds a Galaxy tool form understands.
type Kind string

// Parameter kinds.
const (
	KindBoolean Kind = "boolean"
	KindInteger Kind = "integer"
	KindFloat   Kind = "float"
	KindText    Kind = "text"
	KindData    Kind = "data"
	KindSelect  Kind = "select"
)

// Literals used for boolean parameters.
const (
	BooleanTrue  = "True"
	BooleanFalse = "False"
)

// DefaultHelp is used when a parameter carries no description.
const DefaultHelp = "No description provided!"

// DefaultDataFormat is the format tag attached to data parameters.
const DefaultDataFormat = "txt"

// OutputFormatSuffix is appended to an output name to form its format selector.
const OutputFormatSuffix = "_outformat"

// Choice is one option of a select parameter.
type Choice struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// Primitive is a normalized tool parameter.
type Primitive struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Help     string   `json:"help"`
	Kind     Kind     `json:"kind"`
	Choices  []Choice `json:"choices,omitempty"`
	Default  *string  `json:"default,omitempty"`
	Optional bool     `json:"optional"`
	Format   string   `json:"format,omitempty"`

	// Boolean literals, set only for KindBoolean.
	TrueValue  string `json:"true_value,omitempty"`
	FalseValue string `json:"false_value,omitempty"`
}

// ChoiceValues returns the choice values in order.
func (p *Primitive) ChoiceValues() []string {
	values := make([]string, len(p.Choices))
	for i, c := range p.Choices {
		values[i] = c.Value
	}
	return values
}

// SanitizeName makes a process or parameter name usable as a Galaxy identifier.
func SanitizeName(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}

// DistinctChoices builds an ordered choice list from values, dropping duplicates
// and keeping the first occurrence.
func DistinctChoices(values []string) []Choice {
	seen := make(map[string]bool, len(values))
	choices := make([]Choice, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		choices = append(choices, Choice{Value: v, Text: v})
	}
	return choices
}
