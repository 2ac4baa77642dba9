// Package resolver maps parameter schemas onto Galaxy parameter primitives.
//
// Resolution is deterministic and never silently produces a parameter without a
// kind: a schema no rule matches yields an *UnmappedError, and the caller
// decides whether the parameter is dropped.
package resolver

import (
	"fmt"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/diag"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/query"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/schema"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/contenttype"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/types"
)

// kinds maps primitive JSON types onto parameter kinds.
var kinds = map[string]types.Kind{
	schema.TypeArray:   types.KindText,
	schema.TypeBoolean: types.KindBoolean,
	schema.TypeInteger: types.KindInteger,
	schema.TypeNumber:  types.KindFloat,
	schema.TypeObject:  types.KindData,
	schema.TypeString:  types.KindText,
}

// KindOf returns the parameter kind for a primitive JSON type.
func KindOf(jsonType string) (types.Kind, bool) {
	k, ok := kinds[jsonType]
	return k, ok
}

// ArrayHelp is the help text for a typed array parameter.
func ArrayHelp(itemKind types.Kind) string {
	return fmt.Sprintf("Please provide comma-separated values of type %s here.", itemKind)
}

// Resolution is the outcome of resolving one schema.
type Resolution struct {
	// Name is the parameter name, renamed for typed arrays.
	Name     string
	Kind     types.Kind
	Choices  []types.Choice
	Default  *string
	Optional bool
	Format   string

	TrueValue  string
	FalseValue string

	// Hint is extra help text attached by the resolver.
	Hint string
}

// UnmappedError reports a schema that no resolution rule matched.
type UnmappedError struct {
	// Code is the warning code the caller should record.
	Code   string
	Reason string
}

func (e *UnmappedError) Error() string {
	return "unmapped schema: " + e.Reason
}

func unmapped(format string, args ...any) *UnmappedError {
	return &UnmappedError{Code: types.CodeUnmappedSchema, Reason: fmt.Sprintf(format, args...)}
}

// Resolver resolves schemas and records advisories on a collector.
type Resolver struct {
	diag *diag.Collector
}

// New returns a resolver reporting to d. d may be nil.
func New(d *diag.Collector) *Resolver {
	return &Resolver{diag: d}
}

// Resolve maps the schema of the parameter at loc onto a primitive kind.
// name is the sanitized parameter name.
func (r *Resolver) Resolve(loc diag.Location, name string, s schema.Schema) (*Resolution, error) {
	switch s := s.(type) {
	case nil:
		return nil, unmapped("no schema declared")
	case *schema.Extended:
		return r.resolveExtended(loc, name, s)
	case *schema.Alternatives:
		return r.resolveAlternatives(loc, name, s)
	case *schema.Simple:
		return r.resolveSimple(loc, name, s)
	default:
		return nil, unmapped("unsupported schema shape %T", s)
	}
}

// ResolveFormatChoice builds the select offered for an output-format
// descriptor. The choices are the distinct values found at
// oneOf[0].allOf[1].properties.type.enum.
func ResolveFormatChoice(name string, ext *schema.Extended) (*Resolution, error) {
	if ext == nil || !ext.FormatChoice {
		return nil, unmapped("extended schema does not describe output formats")
	}

	values, ok := query.FormatEnum(ext.Raw)
	if !ok || len(values) == 0 {
		return nil, &UnmappedError{
			Code:   types.CodeFormatPathMissing,
			Reason: "no format list at oneOf[0].allOf[1].properties.type.enum",
		}
	}

	formats := make([]string, len(values))
	for i, v := range values {
		formats[i] = schema.FormatAny(v)
	}
	return &Resolution{
		Name:    name,
		Kind:    types.KindSelect,
		Choices: types.DistinctChoices(formats),
	}, nil
}

func (r *Resolver) resolveExtended(loc diag.Location, name string, ext *schema.Extended) (*Resolution, error) {
	if ext.FormatChoice {
		return ResolveFormatChoice(name, ext)
	}
	if ext.Inner != nil {
		return r.Resolve(loc, name, ext.Inner)
	}
	if ext.HasRef {
		// A referenced document is handed to the process as a dataset.
		return &Resolution{
			Name:   name,
			Kind:   types.KindData,
			Format: types.DefaultDataFormat,
		}, nil
	}
	return nil, unmapped("extended schema carries neither a type nor a reference")
}

// resolveAlternatives resolves the first alternative. Alternatives nested in
// that alternative are not followed.
func (r *Resolver) resolveAlternatives(loc diag.Location, name string, alt *schema.Alternatives) (*Resolution, error) {
	if len(alt.Options) == 0 {
		return nil, unmapped("oneOf lists no alternatives")
	}

	switch first := alt.Options[0].(type) {
	case *schema.Simple:
		chosen := *first
		if chosen.Default == nil {
			chosen.Default = alt.Default
		}
		if chosen.Nullable == nil {
			chosen.Nullable = alt.Nullable
		}
		return r.resolveSimple(loc, name, &chosen)
	case *schema.Extended:
		if _, nested := first.Inner.(*schema.Alternatives); nested {
			return nil, unmapped("nested oneOf in first alternative")
		}
		res, err := r.resolveExtended(loc, name, first)
		if err != nil {
			return nil, err
		}
		if res.Default == nil {
			res.Default = alt.Default
		}
		if !res.Optional && schema.IsNullable(alt.Nullable) {
			res.Optional = true
		}
		return res, nil
	default:
		return nil, unmapped("nested oneOf in first alternative")
	}
}

func (r *Resolver) resolveSimple(loc diag.Location, name string, s *schema.Simple) (*Resolution, error) {
	if s.Type == "" {
		return nil, unmapped("schema declares no type")
	}
	kind, ok := KindOf(s.Type)
	if !ok {
		return nil, unmapped("unknown type %q", s.Type)
	}

	res := &Resolution{
		Name:     name,
		Kind:     kind,
		Default:  s.Default,
		Optional: schema.IsNullable(s.Nullable),
	}

	if s.Default == nil {
		r.diag.Advisory(types.CodeMissingDefault, loc, "parameter %q declares no default", loc.Parameter)
	}
	if s.Nullable == nil {
		r.diag.Advisory(types.CodeMissingNullable, loc, "parameter %q does not say whether it is nullable; treated as required", loc.Parameter)
	}

	if s.Type == schema.TypeArray && s.Items != nil && s.Items.Type != "" {
		itemKind, ok := KindOf(s.Items.Type)
		if !ok {
			return nil, unmapped("unknown array item type %q", s.Items.Type)
		}
		res.Name = fmt.Sprintf("%s_Array_%s", name, itemKind)
		res.Kind = types.KindText
		res.Hint = ArrayHelp(itemKind)
		return res, nil
	}

	if len(s.Enum) > 0 {
		res.Kind = types.KindSelect
		res.Choices = types.DistinctChoices(s.Enum)
		return res, nil
	}

	if s.Format == schema.FormatBinary || contenttype.IsDataset(s.ContentMediaType) {
		res.Kind = types.KindData
	}

	switch res.Kind {
	case types.KindBoolean:
		res.TrueValue = types.BooleanTrue
		res.FalseValue = types.BooleanFalse
	case types.KindData:
		res.Format = types.DefaultDataFormat
	}

	return res, nil
}
