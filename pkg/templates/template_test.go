package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	root := map[string]any{
		"user": map[string]any{"name": "ada", "tags": []any{"a", "b"}},
		"n":    float64(3),
		"ok":   true,
	}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"no placeholders", "plain text", "plain text"},
		{"scalar string", "hello {user.name}", "hello ada"},
		{"number", "count={n}", "count=3"},
		{"bool", "flag={ok}", "flag=true"},
		{"complex value JSON-encoded", "tags: {user.tags}", `tags: ["a","b"]`},
		{"multiple placeholders", "{user.name}/{n}", "ada/3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.raw).Render(root)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("missing path fails", func(t *testing.T) {
		_, err := Compile("{nope.x}").Render(root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope.x")
	})
}

func TestPaths(t *testing.T) {
	tpl := Compile("{a.b} and {c} and {a.b} again")
	assert.Equal(t, []string{"a.b", "c"}, tpl.Paths())
}
