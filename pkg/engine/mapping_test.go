package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/skills"
)

func actionSkill(name string, actionType skills.ActionType, produces ...string) *skills.Skill {
	return &skills.Skill{
		Name:     name,
		Produces: produces,
		Executor: skills.ExecutorAction,
		Action:   &skills.ActionConfig{Type: actionType},
	}
}

func TestMapOutputsWrapsSingleProducesAction(t *testing.T) {
	s := actionSkill("lookup", skills.ActionPythonFunction, "result")
	raw := map[string]any{"rows": []any{1, 2}, "count": 2}

	mapped, err := MapOutputs(s, raw)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"result": raw}, mapped)
}

func TestMapOutputsPipelineExtractsSingleKey(t *testing.T) {
	s := actionSkill("report", skills.ActionDataPipeline, "c")
	mapped, err := MapOutputs(s, map[string]any{"sales": 10, "a": 1, "b": 2, "c": 3})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"c": 3}, mapped)
}

func TestMapOutputsKeyExtract(t *testing.T) {
	s := &skills.Skill{Name: "gen", Executor: skills.ExecutorLLM, Produces: []string{"x", "y"}}

	t.Run("all keys present", func(t *testing.T) {
		mapped, err := MapOutputs(s, map[string]any{"x": 1, "y": 2, "extra": 3})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"x": 1, "y": 2}, mapped)
	})

	t.Run("missing required key is fatal", func(t *testing.T) {
		_, err := MapOutputs(s, map[string]any{"x": "hi"})
		var werr *WorkflowError
		require.ErrorAs(t, err, &werr)
		assert.Equal(t, KindMissingRequiredOutput, werr.Kind)
		assert.Equal(t, "gen", werr.Skill)
	})
}

func TestMapOutputsEmptyProducesCopiesThrough(t *testing.T) {
	s := &skills.Skill{Name: "free", Executor: skills.ExecutorLLM}
	mapped, err := MapOutputs(s, map[string]any{"a": 1, "b": 2, "_status": "nope"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, mapped, "reserved keys never copy through")
}

func TestMapOutputsOptionalProduces(t *testing.T) {
	s := &skills.Skill{
		Name:             "opt",
		Executor:         skills.ExecutorLLM,
		Produces:         []string{"x"},
		OptionalProduces: []string{"note", "x"},
	}

	t.Run("present optional is copied", func(t *testing.T) {
		mapped, err := MapOutputs(s, map[string]any{"x": 1, "note": "fine"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"x": 1, "note": "fine"}, mapped)
	})

	t.Run("absent optional never errors", func(t *testing.T) {
		mapped, err := MapOutputs(s, map[string]any{"x": 1})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"x": 1}, mapped)
	})

	t.Run("explicit null optional is skipped", func(t *testing.T) {
		mapped, err := MapOutputs(s, map[string]any{"x": 1, "note": nil})
		require.NoError(t, err)
		assert.NotContains(t, mapped, "note")
	})

	t.Run("optional never overwrites a produces key", func(t *testing.T) {
		mapped, err := MapOutputs(s, map[string]any{"x": 1})
		require.NoError(t, err)
		assert.Equal(t, 1, mapped["x"])
	})
}

func TestMapOutputsRejectsNonObject(t *testing.T) {
	s := &skills.Skill{Name: "bad", Executor: skills.ExecutorLLM, Produces: []string{"x"}}
	_, err := MapOutputs(s, []any{"not", "a", "map"})
	var werr *WorkflowError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, KindNonDictResult, werr.Kind)
}
