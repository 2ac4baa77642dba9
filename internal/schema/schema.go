// Package schema models the parameter schemas found in OGC API process
// descriptions as a closed set of shapes.
//
// A Schema is exactly one of:
//
//   - *Simple: a schema with a primitive JSON type and optional refinements
//     (format, contentMediaType, enum, items, default, nullable).
//   - *Alternatives: a oneOf list; consumers use the first alternative.
//   - *Extended: an "extended-schema" member, or a schema that only makes
//     sense through a $ref. It may describe a selectable output format.
//
// Parse and ParseExtended build these from raw JSON. A nil Schema means the
// parameter declared no schema at all.
package schema

// Primitive JSON Schema types that the tool generator maps.
const (
	TypeArray   = "array"
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeObject  = "object"
	TypeString  = "string"
)

// FormatBinary marks a string schema carrying raw bytes.
const FormatBinary = "binary"

// Schema is one parameter schema shape. The interface is sealed; switch on
// the concrete type.
type Schema interface {
	isSchema()
}

// Simple is a schema with a primitive type.
type Simple struct {
	// Type is the primitive type. Empty when the schema declared none.
	Type             string
	Format           string
	ContentMediaType string

	// Enum holds the enumerated values in string form, in declaration order.
	// Duplicates are kept here; consumers deduplicate.
	Enum []string

	// Items is the element schema of an array.
	Items *Simple

	// Default is the declared default in string form; nil when absent.
	Default *string

	// Nullable is nil when the schema does not say.
	Nullable *bool
}

// Alternatives is a oneOf schema.
type Alternatives struct {
	Options []Schema

	// Default and Nullable declared next to the oneOf, applied to the chosen
	// alternative when it does not declare its own.
	Default  *string
	Nullable *bool
}

// Extended is an extended or referenced schema.
type Extended struct {
	// Raw is the decoded schema document, used for path lookups.
	Raw any

	// HasRef reports a "$ref" member anywhere in the document.
	HasRef bool

	// FormatChoice reports an output-format descriptor: a oneOf whose first
	// alternative is an allOf composition.
	FormatChoice bool

	// Inner is the structural reading of the same document (Simple or
	// Alternatives); nil for a pure reference.
	Inner Schema
}

func (*Simple) isSchema()       {}
func (*Alternatives) isSchema() {}
func (*Extended) isSchema()     {}

// IsNullable reports whether a nullable flag is set to true.
func IsNullable(flag *bool) bool {
	return flag != nil && *flag
}
