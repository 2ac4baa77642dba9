package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestCompile_Invalid(t *testing.T) {
	_, err := Compile(".foo[")
	assert.Error(t, err)

	assert.Panics(t, func() { MustCompile("][") })
}

func TestQuery_All(t *testing.T) {
	q := MustCompile(".items[].name")
	values, err := q.All(decode(t, `{"items":[{"name":"a"},{"name":null},{"name":"b"}]}`))
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, values)
	assert.Equal(t, ".items[].name", q.String())
}

func TestQuery_First(t *testing.T) {
	q := MustCompile(".missing")
	_, ok, err := q.First(decode(t, `{"a":1}`))
	require.NoError(t, err)
	assert.False(t, ok)

	q = MustCompile(".a")
	v, ok, err := q.First(decode(t, `{"a":1}`))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, float64(1), v)
}

func TestQuery_ErrorHint(t *testing.T) {
	q := MustCompile(".a[0]")
	_, err := q.All(decode(t, `{"a":{"b":1}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jq .a[0]")
}

func TestQuery_BoolRejectsNonBoolean(t *testing.T) {
	q := MustCompile(".a")
	_, err := q.Bool(decode(t, `{"a":"yes"}`))
	assert.Error(t, err)
}

func TestContainsRef(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		want   bool
	}{
		{"top level", `{"$ref":"#/components/schemas/link"}`, true},
		{"nested in properties", `{"type":"object","properties":{"href":{"$ref":"x"}}}`, true},
		{"nested in array", `{"oneOf":[{"type":"string"},{"allOf":[{"$ref":"y"}]}]}`, true},
		{"plain", `{"type":"string","enum":["$ref"]}`, false},
		{"scalar", `"string"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsRef(decode(t, tt.schema)))
		})
	}
}

func TestHasFormatChoice(t *testing.T) {
	assert.True(t, HasFormatChoice(decode(t, `{"oneOf":[{"allOf":[{},{}]}]}`)))
	assert.False(t, HasFormatChoice(decode(t, `{"oneOf":[{"type":"string"}]}`)))
	assert.False(t, HasFormatChoice(decode(t, `{"oneOf":[]}`)))
	assert.False(t, HasFormatChoice(decode(t, `{"type":"string"}`)))
	assert.False(t, HasFormatChoice(decode(t, `{"oneOf":{"allOf":[]}}`)))
}

func TestFormatEnum(t *testing.T) {
	schema := decode(t, `{
		"oneOf": [{
			"allOf": [
				{"$ref": "#/components/schemas/format"},
				{"properties": {"type": {"enum": ["text/csv", "application/json", "text/csv"]}}}
			]
		}]
	}`)
	values, ok := FormatEnum(schema)
	require.True(t, ok)
	assert.Equal(t, []any{"text/csv", "application/json", "text/csv"}, values)

	_, ok = FormatEnum(decode(t, `{"oneOf":[{"allOf":[{}]}]}`))
	assert.False(t, ok)

	_, ok = FormatEnum(decode(t, `{"oneOf":[{"allOf":[{},{"properties":{"type":{"enum":"csv"}}}]}]}`))
	assert.False(t, ok)
}
