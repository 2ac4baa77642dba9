package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	URL      string   `json:"server_url" jsonschema:"required,minLength=1"`
	Excluded []string `json:"excluded_services,omitempty"`
}

type testConfig struct {
	ID      string       `json:"id" jsonschema:"required,minLength=1"`
	Title   string       `json:"title,omitempty"`
	Servers []testServer `json:"servers" jsonschema:"required"`
}

func TestValidator_FromDocument(t *testing.T) {
	validator, err := NewValidator(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"age":  map[string]any{"type": "integer"},
		},
		"required": []any{"name"},
	})
	require.NoError(t, err)

	result := validator.Validate([]byte(`{"name": "Alice", "age": 30}`))
	assert.True(t, result.Valid, "errors: %v", result.Errors)

	result = validator.Validate([]byte(`{"age": 30}`))
	assert.False(t, result.Valid)

	result = validator.Validate([]byte(`{"name": "Alice", "age": "thirty"}`))
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "/age")

	result = validator.Validate([]byte(`{`))
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "invalid JSON")
}

func TestValidator_Reflected(t *testing.T) {
	validator, err := NewValidatorFor(&testConfig{})
	require.NoError(t, err)

	valid := map[string]any{
		"id":      "tool",
		"servers": []any{map[string]any{"server_url": "https://example.org"}},
	}
	result := validator.ValidateValue(valid)
	assert.True(t, result.Valid, "errors: %v", result.Errors)

	missingID := map[string]any{
		"servers": []any{map[string]any{"server_url": "https://example.org"}},
	}
	result = validator.ValidateValue(missingID)
	assert.False(t, result.Valid)

	missingURL := map[string]any{
		"id":      "tool",
		"servers": []any{map[string]any{}},
	}
	result = validator.ValidateValue(missingURL)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "/servers/0")
}

func TestReflect_Properties(t *testing.T) {
	doc, err := Reflect(&testConfig{})
	require.NoError(t, err)

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "id")
	assert.Contains(t, props, "servers")
	assert.ElementsMatch(t, []any{"id", "servers"}, doc["required"])
}

func TestValidator_NotCompiled(t *testing.T) {
	var v *Validator
	result := v.ValidateValue(map[string]any{})
	assert.False(t, result.Valid)
}
