package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	localCtx := map[string]any{
		"status": "Open",
		"tags":   []any{"Alpha", "beta"},
		"count":  float64(10),
		"rate":   "3.5",
		"nested": map[string]any{"flag": true},
		"empty":  "",
		"zero":   float64(0),
	}

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{"equals case-sensitive match", Condition{Field: "status", Operator: OpEquals, Value: "Open"}, true},
		{"equals case-sensitive mismatch", Condition{Field: "status", Operator: OpEquals, Value: "open"}, false},
		{"not_equals", Condition{Field: "status", Operator: OpNotEquals, Value: "Closed"}, true},
		{"equals numeric type drift", Condition{Field: "count", Operator: OpEquals, Value: 10}, true},

		{"contains case-insensitive string", Condition{Field: "status", Operator: OpContains, Value: "OPEN"}, true},
		{"contains on array", Condition{Field: "tags", Operator: OpContains, Value: "alpha"}, true},
		{"contains any-of list", Condition{Field: "status", Operator: OpContains, Value: []any{"closed", "pen"}}, true},
		{"not_contains", Condition{Field: "status", Operator: OpNotContains, Value: "closed"}, true},

		{"in membership", Condition{Field: "status", Operator: OpIn, Value: []any{"Open", "Closed"}}, true},
		{"in case-sensitive", Condition{Field: "status", Operator: OpIn, Value: []any{"open"}}, false},
		{"not_in", Condition{Field: "status", Operator: OpNotIn, Value: []any{"Closed"}}, true},

		{"gt numeric", Condition{Field: "count", Operator: OpGT, Value: 5}, true},
		{"gte equal", Condition{Field: "count", Operator: OpGTE, Value: 10}, true},
		{"lt string coercion", Condition{Field: "rate", Operator: OpLT, Value: 4}, true},
		{"numeric comparator non-numeric string", Condition{Field: "status", Operator: OpGT, Value: 1}, false},

		{"is_empty empty string", Condition{Field: "empty", Operator: OpIsEmpty}, true},
		{"is_empty zero", Condition{Field: "zero", Operator: OpIsEmpty}, true},
		{"is_empty missing field", Condition{Field: "absent", Operator: OpIsEmpty}, true},
		{"is_not_empty", Condition{Field: "status", Operator: OpIsNotEmpty}, true},

		{"dotted field path", Condition{Field: "nested.flag", Operator: OpIsNotEmpty}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(&tt.cond, localCtx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown operator is an error", func(t *testing.T) {
		_, err := Evaluate(&Condition{Field: "status", Operator: "matches"}, localCtx)
		require.Error(t, err)
	})

	t.Run("missing field is an error", func(t *testing.T) {
		_, err := Evaluate(&Condition{Operator: OpEquals, Value: 1}, localCtx)
		require.Error(t, err)
	})

	t.Run("nil condition passes", func(t *testing.T) {
		got, err := Evaluate(nil, localCtx)
		require.NoError(t, err)
		assert.True(t, got)
	})
}
