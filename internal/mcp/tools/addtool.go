package tools

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// AddTool registers a tool after checking that the zero value of its output
// type passes the schema the SDK infers for it. Panics on a mismatch.
func AddTool[In, Out any](srv *sdkmcp.Server, t *sdkmcp.Tool, h sdkmcp.ToolHandlerFor[In, Out]) {
	CheckOutputSchema[Out](t.Name)
	sdkmcp.AddTool(srv, t, h)
}

// CheckOutputSchema panics when T cannot round-trip through the schema the
// SDK infers from it. Two mistakes are caught at registration time:
//
//   - nil slices without omitzero/omitempty marshal as null, but the inferred
//     schema says "array";
//   - json.RawMessage marshals as inline JSON, but the inferred schema says
//     "array of integers".
//
// The untyped any output is accepted as is. Inference failures are left for
// the SDK to report.
func CheckOutputSchema[T any](toolName string) {
	rt := reflect.TypeFor[T]()
	if rt == reflect.TypeFor[any]() {
		return
	}
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	if paths := rawMessagePaths(rt); len(paths) > 0 {
		panic(fmt.Sprintf(
			"AddTool %q: output type %s contains json.RawMessage at %s\n"+
				"  Fix: declare the field as any and fill it with types.ToAny",
			toolName, rt, strings.Join(paths, ", "),
		))
	}

	if data, err := validateZero(rt); err != nil {
		panic(fmt.Sprintf(
			"AddTool %q: zero value of output type %s fails schema validation: %v\n"+
				"  JSON: %s\n"+
				"  Fix: add `omitzero` to nil-defaulting slice fields, or initialize them to empty slices",
			toolName, rt, err, data,
		))
	}
}

// validateZero marshals the zero value of t and validates it against the
// inferred schema.
func validateZero(t reflect.Type) ([]byte, error) {
	schema, err := jsonschema.ForType(t, &jsonschema.ForOptions{})
	if err != nil {
		return nil, nil
	}
	resolved, err := schema.Resolve(&jsonschema.ResolveOptions{})
	if err != nil {
		return nil, nil
	}

	data, err := json.Marshal(reflect.Zero(t).Interface())
	if err != nil {
		return nil, nil
	}
	var v map[string]any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, nil
	}
	return data, resolved.Validate(&v)
}

var rawMessageType = reflect.TypeFor[json.RawMessage]()

// rawMessagePaths returns the dotted field paths of t that hold a
// json.RawMessage, directly or inside slices, arrays and maps.
func rawMessagePaths(t reflect.Type) []string {
	var found []string
	seen := make(map[reflect.Type]bool)

	var walk func(t reflect.Type, path []string)
	walk = func(t reflect.Type, path []string) {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t == rawMessageType {
			found = append(found, strings.Join(path, "."))
			return
		}
		if seen[t] {
			return
		}
		seen[t] = true
		defer delete(seen, t)

		switch t.Kind() {
		case reflect.Struct:
			for i := range t.NumField() {
				f := t.Field(i)
				if f.IsExported() {
					walk(f.Type, append(path[:len(path):len(path)], f.Name))
				}
			}
		case reflect.Slice, reflect.Array:
			walk(t.Elem(), append(path[:len(path):len(path)], "[]"))
		case reflect.Map:
			walk(t.Elem(), append(path[:len(path):len(path)], "[value]"))
		}
	}

	walk(t, nil)
	return found
}
