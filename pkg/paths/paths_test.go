package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	root := map[string]any{
		"a": map[string]any{
			"b": []any{
				map[string]any{"c": 42},
				"second",
			},
		},
		"top": "value",
		"nil": nil,
	}

	tests := []struct {
		name string
		path string
		want any
	}{
		{"top-level key", "top", "value"},
		{"nested map", "a.b", root["a"].(map[string]any)["b"]},
		{"list index then key", "a.b.0.c", 42},
		{"list index scalar", "a.b.1", "second"},
		{"stored nil is not missing", "nil", nil},
		{"missing top-level", "nope", Missing},
		{"missing nested", "a.x.y", Missing},
		{"index out of range", "a.b.5", Missing},
		{"non-integer index into list", "a.b.x", Missing},
		{"traversal through scalar", "top.deeper", Missing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Get(root, tt.path))
		})
	}
}

func TestHas(t *testing.T) {
	root := map[string]any{"a": map[string]any{"b": nil}}
	assert.True(t, Has(root, "a"))
	assert.True(t, Has(root, "a.b"))
	assert.False(t, Has(root, "a.c"))
	assert.False(t, Has(root, "b"))
}

func TestSet(t *testing.T) {
	t.Run("creates intermediate maps", func(t *testing.T) {
		root := map[string]any{}
		require.NoError(t, Set(root, "a.b.c", 1))
		assert.Equal(t, 1, Get(root, "a.b.c"))
	})

	t.Run("overwrites existing value", func(t *testing.T) {
		root := map[string]any{"a": map[string]any{"b": 1}}
		require.NoError(t, Set(root, "a.b", 2))
		assert.Equal(t, 2, Get(root, "a.b"))
	})

	t.Run("writes into existing slice index", func(t *testing.T) {
		root := map[string]any{"xs": []any{"old"}}
		require.NoError(t, Set(root, "xs.0", "new"))
		assert.Equal(t, "new", Get(root, "xs.0"))
	})

	t.Run("index equal to length appends", func(t *testing.T) {
		root := map[string]any{"a": []any{"x"}}
		require.NoError(t, Set(root, "a.1", "y"))
		assert.Equal(t, []any{"x", "y"}, root["a"])
	})

	t.Run("append descends into a created element", func(t *testing.T) {
		root := map[string]any{"xs": []any{}}
		require.NoError(t, Set(root, "xs.0.name", "first"))
		assert.Equal(t, "first", Get(root, "xs.0.name"))
	})

	t.Run("append to a slice nested in a slice", func(t *testing.T) {
		root := map[string]any{"m": []any{[]any{"a"}}}
		require.NoError(t, Set(root, "m.0.1", "b"))
		assert.Equal(t, []any{"a", "b"}, Get(root, "m.0"))
	})

	t.Run("refuses sparse slice index", func(t *testing.T) {
		root := map[string]any{"xs": []any{"only"}}
		err := Set(root, "xs.5", "gap")
		require.Error(t, err)
	})

	t.Run("refuses traversal through scalar", func(t *testing.T) {
		root := map[string]any{"a": "scalar"}
		err := Set(root, "a.b", 1)
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("a.b.c", false))
	assert.NoError(t, Validate("a.b.0", false))
	assert.Error(t, Validate("", false))
	assert.Error(t, Validate("a..b", false))
	assert.Error(t, Validate("a.0.b", true))
	assert.NoError(t, Validate("a.b", true))
}
