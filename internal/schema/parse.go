package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/query"
)

// rawSchema is the subset of JSON Schema members the generator reads.
type rawSchema struct {
	Type             json.RawMessage   `json:"type"`
	Format           string            `json:"format"`
	ContentMediaType string            `json:"contentMediaType"`
	Enum             []json.RawMessage `json:"enum"`
	Items            json.RawMessage   `json:"items"`
	Default          json.RawMessage   `json:"default"`
	Nullable         *bool             `json:"nullable"`
	OneOf            []json.RawMessage `json:"oneOf"`
}

// Parse reads the "schema" member of a process input.
//
// Classification order: a oneOf becomes *Alternatives; a declared type becomes
// *Simple; a schema with neither that contains a $ref anywhere becomes
// *Extended. Anything else is a *Simple with an empty Type. Empty input and
// JSON null yield a nil Schema.
func Parse(data json.RawMessage) (Schema, error) {
	if isAbsent(data) {
		return nil, nil
	}

	var raw rawSchema
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding schema: %w", err)
	}

	if raw.OneOf != nil {
		return parseAlternatives(raw)
	}

	simple, err := parseSimple(raw)
	if err != nil {
		return nil, err
	}
	if simple.Type != "" {
		return simple, nil
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}
	if query.ContainsRef(doc) {
		return &Extended{Raw: doc, HasRef: true}, nil
	}
	return simple, nil
}

// ParseExtended reads the "extended-schema" member of a process input or
// output. The result is always *Extended, or nil for empty input.
func ParseExtended(data json.RawMessage) (*Extended, error) {
	if isAbsent(data) {
		return nil, nil
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}

	ext := &Extended{
		Raw:          doc,
		HasRef:       query.ContainsRef(doc),
		FormatChoice: query.HasFormatChoice(doc),
	}
	if ext.FormatChoice {
		return ext, nil
	}

	inner, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if _, isExt := inner.(*Extended); !isExt {
		ext.Inner = inner
	}
	return ext, nil
}

func parseAlternatives(raw rawSchema) (*Alternatives, error) {
	alt := &Alternatives{
		Options:  make([]Schema, 0, len(raw.OneOf)),
		Nullable: raw.Nullable,
		Default:  formatValue(raw.Default),
	}
	for i, opt := range raw.OneOf {
		s, err := Parse(opt)
		if err != nil {
			return nil, fmt.Errorf("oneOf[%d]: %w", i, err)
		}
		if s == nil {
			s = &Simple{}
		}
		alt.Options = append(alt.Options, s)
	}
	return alt, nil
}

func parseSimple(raw rawSchema) (*Simple, error) {
	typ, nullableByType, err := parseType(raw.Type)
	if err != nil {
		return nil, err
	}

	s := &Simple{
		Type:             typ,
		Format:           raw.Format,
		ContentMediaType: raw.ContentMediaType,
		Default:          formatValue(raw.Default),
		Nullable:         raw.Nullable,
	}
	if s.Nullable == nil && nullableByType {
		t := true
		s.Nullable = &t
	}

	for _, v := range raw.Enum {
		if str := formatValue(v); str != nil {
			s.Enum = append(s.Enum, *str)
		}
	}

	if !isAbsent(raw.Items) {
		var items rawSchema
		// Tuple-style items (an array of schemas) carry no single element type.
		if err := json.Unmarshal(raw.Items, &items); err == nil {
			itemSchema, err := parseSimple(items)
			if err != nil {
				return nil, fmt.Errorf("items: %w", err)
			}
			s.Items = itemSchema
		}
	}

	return s, nil
}

// parseType accepts "type" as a string or as a list such as ["number", "null"].
// The second result reports whether "null" was listed.
func parseType(data json.RawMessage) (string, bool, error) {
	if isAbsent(data) {
		return "", false, nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		return single, false, nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return "", false, fmt.Errorf("decoding type: %w", err)
	}
	var typ string
	var nullable bool
	for _, t := range list {
		if t == "null" {
			nullable = true
			continue
		}
		if typ == "" {
			typ = t
		}
	}
	return typ, nullable, nil
}

// formatValue renders a JSON value in the string form used for Galaxy
// attribute values: strings unquoted, everything else as compact JSON text.
// Returns nil for absent or null values.
func formatValue(data json.RawMessage) *string {
	if isAbsent(data) {
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		return &str
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		s := strings.TrimSpace(string(data))
		return &s
	}
	s := buf.String()
	return &s
}

// FormatAny renders a decoded JSON value the same way formatValue does.
func FormatAny(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func decodeDocument(data json.RawMessage) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding schema: %w", err)
	}
	return doc, nil
}

func isAbsent(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
