package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateChannelValuesRoundTrip(t *testing.T) {
	st := NewState(map[string]any{"ticket": map[string]any{"id": "T-1"}})
	st.AppendHistory("Run started")
	st.AppendHistory("Planner chose triage")
	st.ActiveSkill = "triage"
	st.RecordRun("triage", SkillRunSucceeded, "abc123")

	// Through JSON, the way the checkpoint store persists it.
	raw, err := json.Marshal(st.ChannelValues())
	require.NoError(t, err)
	var cv map[string]any
	require.NoError(t, json.Unmarshal(raw, &cv))

	restored, err := StateFrom(cv)
	require.NoError(t, err)
	assert.Equal(t, st.History, restored.History)
	assert.Equal(t, "triage", restored.ActiveSkill)
	assert.Equal(t, "abc123", restored.SkillRuns["triage"].InputsHash)
	assert.Equal(t, "T-1", restored.DataStore["ticket"].(map[string]any)["id"])
}

func TestStateFromRejectsMalformedHistory(t *testing.T) {
	_, err := StateFrom(map[string]any{"history": []any{"ok", 42}})
	require.Error(t, err)
}

func TestMarkFailedWritesReservedKeys(t *testing.T) {
	st := NewState(nil)
	st.MarkFailed(&WorkflowError{Kind: KindMissingRequiredOutput, Skill: "gen", Message: "output y missing"})

	assert.Equal(t, "failed", st.DataStore["_status"])
	assert.Equal(t, "gen", st.DataStore["_failed_skill"])
	rec := st.DataStore["_error"].(map[string]any)
	assert.Equal(t, KindMissingRequiredOutput, rec["kind"])
	require.Len(t, st.History, 1)
	assert.Contains(t, st.History[0], "Workflow failed in gen")
}

func TestHashInputsStable(t *testing.T) {
	a := HashInputs(map[string]any{"x": 1, "y": "two"})
	b := HashInputs(map[string]any{"y": "two", "x": 1})
	c := HashInputs(map[string]any{"x": 2, "y": "two"})
	assert.Equal(t, a, b, "key order must not matter")
	assert.NotEqual(t, a, c)
}

func TestReservedKey(t *testing.T) {
	assert.True(t, reservedKey("_status"))
	assert.True(t, reservedKey("_pending_callback.token"))
	assert.False(t, reservedKey("report"))
	assert.False(t, reservedKey("a._hidden"))
}
