package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Conformance class URIs a server must declare for its process descriptions
// to be usable by the tool generator.
const (
	ConformanceCore               = "http://www.opengis.net/spec/ogcapi-processes-1/1.0/conf/core"
	ConformanceProcessDescription = "http://www.opengis.net/spec/ogcapi-processes-1/1.0/conf/ogc-process-description"
	ConformanceJSON               = "http://www.opengis.net/spec/ogcapi-processes-1/1.0/conf/json"
)

// RequiredConformance lists the conformance classes checked before a server is used.
var RequiredConformance = []string{
	ConformanceCore,
	ConformanceProcessDescription,
	ConformanceJSON,
}

// ProcessList is the response of GET /processes.
type ProcessList struct {
	Processes []ProcessSummary `json:"processes"`
}

// ProcessSummary is one entry of a process listing.
type ProcessSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
}

// ProcessDescription is the response of GET /processes/{id}.
type ProcessDescription struct {
	ID          string     `json:"id"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Version     string     `json:"version,omitempty"`
	Inputs      InputList  `json:"inputs"`
	Outputs     OutputList `json:"outputs"`
}

// Input describes one process input. Schema and ExtendedSchema are kept raw;
// internal/schema turns them into typed schemas.
type Input struct {
	Name           string          `json:"-"`
	Title          string          `json:"title,omitempty"`
	Description    string          `json:"description,omitempty"`
	Schema         json.RawMessage `json:"schema,omitempty"`
	ExtendedSchema json.RawMessage `json:"extended-schema,omitempty"`
	MinOccurs      *int            `json:"minOccurs,omitempty"`
}

// Output describes one process output.
type Output struct {
	Name           string          `json:"-"`
	Title          string          `json:"title,omitempty"`
	Description    string          `json:"description,omitempty"`
	Schema         json.RawMessage `json:"schema,omitempty"`
	ExtendedSchema json.RawMessage `json:"extended-schema,omitempty"`
}

// InputList keeps process inputs in declaration order.
type InputList []Input

// UnmarshalJSON accepts both the keyed object form and the older array form
// where each element carries its own "id".
func (l *InputList) UnmarshalJSON(data []byte) error {
	var out InputList
	err := decodeOrdered(data, func(name string, raw json.RawMessage) error {
		var in Input
		if err := json.Unmarshal(raw, &in); err != nil {
			return fmt.Errorf("input %q: %w", name, err)
		}
		in.Name = name
		out = append(out, in)
		return nil
	})
	if err != nil {
		return err
	}
	*l = out
	return nil
}

// OutputList keeps process outputs in declaration order.
type OutputList []Output

// UnmarshalJSON accepts both the keyed object form and the array form.
func (l *OutputList) UnmarshalJSON(data []byte) error {
	var out OutputList
	err := decodeOrdered(data, func(name string, raw json.RawMessage) error {
		var o Output
		if err := json.Unmarshal(raw, &o); err != nil {
			return fmt.Errorf("output %q: %w", name, err)
		}
		o.Name = name
		out = append(out, o)
		return nil
	})
	if err != nil {
		return err
	}
	*l = out
	return nil
}

// decodeOrdered walks a JSON object (or array of {"id": ...} objects) and
// calls fn for each member in document order.
func decodeOrdered(data []byte, fn func(name string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return fmt.Errorf("expected object or array, got %v", tok)
	}

	switch delim {
	case '{':
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			key, ok := keyTok.(string)
			if !ok {
				return fmt.Errorf("expected object key, got %v", keyTok)
			}
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return fmt.Errorf("member %q: %w", key, err)
			}
			if err := fn(key, raw); err != nil {
				return err
			}
		}
	case '[':
		for i := 0; dec.More(); i++ {
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
			var ident struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(raw, &ident); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
			if ident.ID == "" {
				return fmt.Errorf("element %d has no id", i)
			}
			if err := fn(ident.ID, raw); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unexpected delimiter %v", delim)
	}

	_, err = dec.Token()
	return err
}

// Conformance is the response of GET /conformance.
type Conformance struct {
	ConformsTo []string `json:"conformsTo"`
}

// Missing returns the classes from required that the server does not declare.
func (c *Conformance) Missing(required []string) []string {
	declared := make(map[string]bool, len(c.ConformsTo))
	for _, uri := range c.ConformsTo {
		declared[uri] = true
	}
	var missing []string
	for _, uri := range required {
		if !declared[uri] {
			missing = append(missing, uri)
		}
	}
	return missing
}

// APIError represents an error response from an OGC API Processes server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("OGC API error %d: %s", e.StatusCode, e.Message)
}

// problemDetails is the RFC 7807 error document, plus the "description"
// member some pygeoapi versions use instead of "detail".
type problemDetails struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Detail      string `json:"detail"`
	Description string `json:"description"`
}
