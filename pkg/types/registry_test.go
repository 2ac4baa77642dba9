package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Selector(t *testing.T) {
	r := NewRegistry([]ProcessEntry{
		{ID: "buffer", Title: "Buffer geometries", Server: "a"},
		{ID: "echo", Server: "a"},
		{ID: "buffer", Server: "b"},
	})

	sel := r.Selector()
	assert.Equal(t, SelectorName, sel.Name)
	assert.Equal(t, KindSelect, sel.Kind)
	assert.Equal(t, []Choice{
		{Value: "buffer", Text: "buffer: Buffer geometries"},
		{Value: "echo", Text: "echo"},
		{Value: "buffer", Text: "buffer"},
	}, sel.Choices)
}

func TestRegistry_Empty(t *testing.T) {
	var nilRegistry *Registry
	assert.Equal(t, 0, nilRegistry.Len())
	assert.Empty(t, nilRegistry.Selector().Choices)

	r := NewRegistry(nil)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Entries())
}

func TestRegistry_IsolatedFromCaller(t *testing.T) {
	entries := []ProcessEntry{{ID: "a"}}
	r := NewRegistry(entries)
	entries[0].ID = "changed"
	assert.Equal(t, "a", r.Entries()[0].ID)

	got := r.Entries()
	got[0].ID = "changed"
	assert.Equal(t, "a", r.Entries()[0].ID)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "a_b_c", SanitizeName("a.b.c"))
	assert.Equal(t, "plain", SanitizeName("plain"))
}

func TestDistinctChoices(t *testing.T) {
	got := DistinctChoices([]string{"b", "a", "b", "c", "a"})
	assert.Equal(t, []string{"b", "a", "c"}, (&Primitive{Choices: got}).ChoiceValues())
	assert.Empty(t, DistinctChoices(nil))
}
