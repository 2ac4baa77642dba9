package query

// Queries over decoded process-description schemas.
var (
	containsRef = MustCompile(`[.. | objects | has("$ref")] | any`)

	hasFormatChoice = MustCompile(`(.oneOf | type == "array") and (.oneOf[0] | type == "object" and has("allOf"))`)

	formatEnum = MustCompile(`.oneOf[0].allOf[1].properties.type.enum`)
)

// ContainsRef reports whether a "$ref" member appears anywhere in the schema,
// at any depth of nested objects and arrays.
func ContainsRef(schema any) bool {
	ok, err := containsRef.Bool(schema)
	return err == nil && ok
}

// HasFormatChoice reports whether the schema is an output-format descriptor:
// a oneOf whose first alternative is an allOf composition.
func HasFormatChoice(schema any) bool {
	ok, err := hasFormatChoice.Bool(schema)
	return err == nil && ok
}

// FormatEnum returns the format identifiers declared at
// oneOf[0].allOf[1].properties.type.enum. ok is false when the path is absent
// or does not hold an array.
func FormatEnum(schema any) ([]any, bool) {
	v, ok, err := formatEnum.First(schema)
	if err != nil || !ok {
		return nil, false
	}
	values, isArray := v.([]any)
	if !isArray {
		return nil, false
	}
	return values, true
}
