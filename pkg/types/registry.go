package types

// Names of the process selector and the conditional that dispatches on it.
const (
	SelectorName    = "select_process"
	ConditionalName = "conditional_process"
	SelectorLabel   = "Select the process"
	SelectorHelp    = "Choose the OGC API process to execute."
)

// ProcessEntry is one compiled process.
type ProcessEntry struct {
	ID     string `json:"id"`
	Title  string `json:"title,omitempty"`
	Server string `json:"server"`

	// Inputs are the resolved input parameters, in declaration order.
	Inputs []Primitive `json:"inputs,omitzero"`
	// Outputs are the "<output>_outformat" format selectors.
	Outputs []Primitive `json:"outputs,omitzero"`
}

// DisplayName is the selector text for the entry: "<id>: <title>", or the id
// alone when the process has no title.
func (e *ProcessEntry) DisplayName() string {
	if e.Title == "" {
		return e.ID
	}
	return e.ID + ": " + e.Title
}

// Registry is the ordered, immutable list of compiled processes.
type Registry struct {
	entries []ProcessEntry
}

// NewRegistry returns a registry holding a copy of entries in the given order.
func NewRegistry(entries []ProcessEntry) *Registry {
	r := &Registry{entries: make([]ProcessEntry, len(entries))}
	copy(r.entries, entries)
	return r
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Entries returns a copy of the entries in discovery order.
func (r *Registry) Entries() []ProcessEntry {
	if r == nil {
		return nil
	}
	out := make([]ProcessEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Selector derives the process selector: one choice per entry, in order, with
// the process id as value.
func (r *Registry) Selector() Primitive {
	choices := make([]Choice, 0, r.Len())
	for _, e := range r.Entries() {
		choices = append(choices, Choice{Value: e.ID, Text: e.DisplayName()})
	}
	return Primitive{
		Name:    SelectorName,
		Label:   SelectorLabel,
		Help:    SelectorHelp,
		Kind:    KindSelect,
		Choices: choices,
	}
}
