package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQueries returns canned rows regardless of the query text.
type fakeQueries struct {
	result map[string]any
	err    error
	calls  int
}

func (f *fakeQueries) RunQuery(_ context.Context, _, _, _, _ string, _ map[string]any) (map[string]any, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakeSkills merges fixed outputs for any invoked skill.
type fakeSkills struct {
	outputs map[string]map[string]any
}

func (f *fakeSkills) InvokeSkill(_ context.Context, name string, _ map[string]any) (map[string]any, error) {
	out, ok := f.outputs[name]
	if !ok {
		return nil, fmt.Errorf("skill %q not found", name)
	}
	return out, nil
}

func constFn(v any) TransformFunc {
	return func(context.Context, map[string]any) (any, error) { return v, nil }
}

func testEnv() *Env {
	return &Env{
		Queries: &fakeQueries{result: map[string]any{"query_result": []any{map[string]any{"sales": float64(10)}}, "row_count": 1}},
		Functions: map[string]TransformFunc{
			"one":   constFn(float64(1)),
			"two":   constFn(float64(2)),
			"three": constFn(float64(3)),
			"nine":  constFn(float64(9)),
			"sum": func(_ context.Context, inputs map[string]any) (any, error) {
				total := float64(0)
				for _, v := range inputs {
					if f, ok := v.(float64); ok {
						total += f
					}
				}
				return total, nil
			},
		},
		Skills: &fakeSkills{outputs: map[string]map[string]any{
			"Enrich": {"enriched": true},
		}},
	}
}

func run(t *testing.T, env *Env, steps []*Step, seed map[string]any) (map[string]any, error) {
	t.Helper()
	p, err := Parse(steps)
	require.NoError(t, err)
	return NewRunner(env).Run(context.Background(), p, seed)
}

func TestRunSequentialWithParallelAndConditional(t *testing.T) {
	env := testEnv()
	env.Functions["extract_sales"] = func(_ context.Context, inputs map[string]any) (any, error) {
		rows := inputs["q"].(map[string]any)["query_result"].([]any)
		return rows[0].(map[string]any)["sales"], nil
	}

	steps := []*Step{
		{Type: StepQuery, Name: "step1", CredentialRef: "warehouse", Source: "postgres", Query: "SELECT sales FROM s", Output: "q"},
		{Type: StepTransform, Name: "sales", Function: "extract_sales", Inputs: []string{"q"}, Output: "sales"},
		{Type: StepParallel, Name: "step2", Steps: []*Step{
			{Type: StepTransform, Function: "one", Output: "a"},
			{Type: StepTransform, Function: "two", Output: "b"},
		}},
		{Type: StepConditional, Name: "step3",
			If:   &Condition{Field: "a", Operator: OpGT, Value: 0},
			Then: []*Step{{Type: StepTransform, Function: "three", Output: "c"}},
			Else: []*Step{{Type: StepTransform, Function: "nine", Output: "c"}},
		},
	}

	out, err := run(t, env, steps, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, float64(10), out["sales"])
	assert.Equal(t, float64(1), out["a"])
	assert.Equal(t, float64(2), out["b"])
	assert.Equal(t, float64(3), out["c"])
}

func TestRunIfFalseSkipsStep(t *testing.T) {
	env := testEnv()
	steps := []*Step{
		{Type: StepTransform, Function: "one", Output: "a"},
		{Type: StepTransform, Function: "nine", Output: "never",
			RunIf: &Condition{Field: "a", Operator: OpGT, Value: 100}},
	}
	out, err := run(t, env, steps, map[string]any{})
	require.NoError(t, err)
	assert.NotContains(t, out, "never")
}

func TestSkipIfTrueSkipsStep(t *testing.T) {
	env := testEnv()
	steps := []*Step{
		{Type: StepTransform, Function: "nine", Output: "skipped",
			SkipIf: &Condition{Field: "seeded", Operator: OpIsNotEmpty}},
	}
	out, err := run(t, env, steps, map[string]any{"seeded": "yes"})
	require.NoError(t, err)
	assert.NotContains(t, out, "skipped")
}

func TestGuardEvaluationErrorFailsStep(t *testing.T) {
	env := testEnv()
	steps := []*Step{
		{Type: StepTransform, Function: "one", Output: "a",
			RunIf: &Condition{Field: "a", Operator: OpEquals}},
	}
	// Force a malformed guard past Parse by mutating after validation.
	p, err := Parse([]*Step{{Type: StepTransform, Function: "one", Output: "a"}})
	require.NoError(t, err)
	p.Steps[0].RunIf = &Condition{Operator: OpEquals}
	_, err = NewRunner(env).Run(context.Background(), p, map[string]any{})
	require.Error(t, err)
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	_ = steps
}

func TestParallelSiblingIsolationAndUnion(t *testing.T) {
	env := testEnv()
	// Each sibling reads only the seeded snapshot; neither sees the other's key.
	env.Functions["echo_b"] = func(_ context.Context, inputs map[string]any) (any, error) {
		// b is written by a sibling; the snapshot must not contain it.
		if _, ok := inputs["b"]; ok && inputs["b"] != nil {
			return nil, fmt.Errorf("sibling write leaked into snapshot")
		}
		return "isolated", nil
	}
	steps := []*Step{
		{Type: StepParallel, Steps: []*Step{
			{Type: StepTransform, Function: "echo_b", Inputs: []string{"b"}, Output: "a"},
			{Type: StepTransform, Function: "two", Output: "b"},
		}},
	}
	out, err := run(t, env, steps, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "isolated", out["a"])
	assert.Equal(t, float64(2), out["b"])
}

func TestParallelSiblingFailureFailsGroup(t *testing.T) {
	env := testEnv()
	env.Functions["boom"] = func(context.Context, map[string]any) (any, error) {
		return nil, fmt.Errorf("kaput")
	}
	steps := []*Step{
		{Type: StepParallel, Steps: []*Step{
			{Type: StepTransform, Function: "one", Output: "a"},
			{Type: StepTransform, Function: "boom", Output: "b"},
		}},
	}
	_, err := run(t, env, steps, map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaput")
}

func TestMergeNestsUnderInputNames(t *testing.T) {
	env := testEnv()
	steps := []*Step{
		{Type: StepMerge, Inputs: []string{"x", "y"}, Output: "combined"},
	}
	out, err := run(t, env, steps, map[string]any{
		"x": map[string]any{"k": 1},
		"y": map[string]any{"k": 2},
	})
	require.NoError(t, err)
	combined := out["combined"].(map[string]any)
	assert.Equal(t, map[string]any{"k": 1}, combined["x"])
	assert.Equal(t, map[string]any{"k": 2}, combined["y"])
}

func TestSkillStepMergesTopLevel(t *testing.T) {
	env := testEnv()
	steps := []*Step{{Type: StepSkill, Skill: "Enrich"}}
	out, err := run(t, env, steps, map[string]any{"seed": 1})
	require.NoError(t, err)
	assert.Equal(t, true, out["enriched"])
	assert.Equal(t, 1, out["seed"])
}

func TestNestedPipelineContextSubset(t *testing.T) {
	env := testEnv()
	env.Functions["want_only_x"] = func(_ context.Context, inputs map[string]any) (any, error) {
		return inputs["x"], nil
	}
	steps := []*Step{
		{Type: StepPipeline, Context: []string{"x"}, Output: "sub", Steps: []*Step{
			{Type: StepTransform, Function: "want_only_x", Inputs: []string{"x"}, Output: "copied"},
		}},
	}
	out, err := run(t, env, steps, map[string]any{"x": "keep", "y": "drop"})
	require.NoError(t, err)
	sub := out["sub"].(map[string]any)
	assert.Equal(t, "keep", sub["copied"])
	assert.NotContains(t, sub, "y")
}

func TestParseRejectsUnknownStepType(t *testing.T) {
	_, err := Parse([]*Step{{Type: "mystery"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown step type")
}

func TestParseRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		step *Step
	}{
		{"query without output", &Step{Type: StepQuery, CredentialRef: "c", Source: "postgres", Query: "q"}},
		{"transform without function", &Step{Type: StepTransform, Output: "o"}},
		{"merge without inputs", &Step{Type: StepMerge, Output: "o"}},
		{"conditional without if", &Step{Type: StepConditional, Then: []*Step{{Type: StepTransform, Function: "f", Output: "o"}}}},
		{"parallel without steps", &Step{Type: StepParallel}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]*Step{tt.step})
			require.Error(t, err)
		})
	}
}
