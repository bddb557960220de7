package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `---
name: FetchSales
description: Pull current sales numbers.
requires:
  - region
produces:
  - sales.total
optional_produces:
  - sales.notes
executor: action
action_config:
  type: data_query
  credential_ref: warehouse
  source: postgres
  query: "SELECT total FROM sales WHERE region = {region}"
---

# FetchSales

Prose documentation. Not part of the contract.
`

func TestParseManifestFrontMatter(t *testing.T) {
	skill, err := ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "FetchSales", skill.Name)
	assert.Equal(t, []string{"region"}, skill.Requires)
	assert.Equal(t, []string{"sales.total"}, skill.Produces)
	assert.Equal(t, ExecutorAction, skill.Executor)
	require.NotNil(t, skill.Action)
	assert.Equal(t, ActionDataQuery, skill.Action.Type)
}

func TestParseManifestPureYAML(t *testing.T) {
	raw := `
name: Summarize
executor: llm
prompt: "Summarize {doc.body}"
produces: [summary]
`
	skill, err := ParseManifest([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "Summarize", skill.Name)
	assert.Equal(t, ExecutorLLM, skill.Executor)
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unterminated front matter", "---\nname: X\nexecutor: llm\nprompt: p\n"},
		{"unknown field", "name: X\nexecutor: llm\nprompt: p\nbogus: 1\n"},
		{"missing executor config", "name: X\nexecutor: rest\n"},
		{"unknown executor", "name: X\nexecutor: quantum\n"},
		{"empty name", "executor: llm\nprompt: p\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.raw))
			require.Error(t, err)
		})
	}
}

func TestValidateInvariants(t *testing.T) {
	t.Run("requires and produces disjoint", func(t *testing.T) {
		s := &Skill{Name: "X", Executor: ExecutorLLM, Prompt: "p",
			Requires: []string{"a"}, Produces: []string{"a"}}
		require.Error(t, s.Validate())
	})

	t.Run("rest and action mutually exclusive", func(t *testing.T) {
		s := &Skill{Name: "X", Executor: ExecutorREST,
			Rest:   &RestConfig{URLTemplate: "http://example.com"},
			Action: &ActionConfig{Type: ActionHTTPCall, URLTemplate: "http://example.com"}}
		require.Error(t, s.Validate())
	})

	t.Run("integer segment rejected in produces", func(t *testing.T) {
		s := &Skill{Name: "X", Executor: ExecutorLLM, Prompt: "p",
			Produces: []string{"items.0"}}
		require.Error(t, s.Validate())
	})

	t.Run("integer segment allowed in requires", func(t *testing.T) {
		s := &Skill{Name: "X", Executor: ExecutorLLM, Prompt: "p",
			Requires: []string{"items.0.id"}, Produces: []string{"out"}}
		require.NoError(t, s.Validate())
	})

	t.Run("pipeline steps compiled at validation", func(t *testing.T) {
		s := &Skill{Name: "X", Executor: ExecutorAction,
			Action: &ActionConfig{Type: ActionDataPipeline, Steps: nil}}
		require.Error(t, s.Validate())
	})
}
