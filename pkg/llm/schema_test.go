package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectSchemaValidation(t *testing.T) {
	schema := ObjectSchema([]string{"x", "y"}, []string{"note"})

	t.Run("conforming object passes", func(t *testing.T) {
		out, err := DecodeAndValidate(`{"x": 1, "y": "two", "note": null}`, schema)
		require.NoError(t, err)
		assert.Equal(t, "two", out["y"])
	})

	t.Run("missing required key fails", func(t *testing.T) {
		_, err := DecodeAndValidate(`{"x": 1}`, schema)
		require.ErrorIs(t, err, ErrInvalidOutput)
	})

	t.Run("null required key fails", func(t *testing.T) {
		_, err := DecodeAndValidate(`{"x": null, "y": 2}`, schema)
		require.ErrorIs(t, err, ErrInvalidOutput)
	})

	t.Run("non-JSON fails", func(t *testing.T) {
		_, err := DecodeAndValidate(`the model rambled instead`, schema)
		require.ErrorIs(t, err, ErrInvalidOutput)
	})

	t.Run("non-object fails", func(t *testing.T) {
		_, err := DecodeAndValidate(`[1, 2]`, schema)
		require.ErrorIs(t, err, ErrInvalidOutput)
	})

	t.Run("extra keys tolerated", func(t *testing.T) {
		out, err := DecodeAndValidate(`{"x": 1, "y": 2, "reasoning": "because"}`, schema)
		require.NoError(t, err)
		assert.Contains(t, out, "reasoning")
	})
}

func TestEnumSchemaValidation(t *testing.T) {
	schema := EnumSchema("next_skill", []string{"A", "B", "END"})

	out, err := DecodeAndValidate(`{"next_skill": "B", "reasoning": "B is ready"}`, schema)
	require.NoError(t, err)
	assert.Equal(t, "B", out["next_skill"])

	_, err = DecodeAndValidate(`{"next_skill": "C"}`, schema)
	require.ErrorIs(t, err, ErrInvalidOutput)
}
