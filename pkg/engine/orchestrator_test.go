package engine

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/checkpoint"
	"github.com/weftworks/weft/pkg/credentials"
	"github.com/weftworks/weft/pkg/engine/pipeline"
	"github.com/weftworks/weft/pkg/events"
	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/skills"
)

// scriptedLLM returns canned structured responses in order, per thread when
// thread scripts exist, otherwise from the shared queue.
type scriptedLLM struct {
	mu       sync.Mutex
	shared   []map[string]any
	byThread map[string][]map[string]any
}

func (s *scriptedLLM) GenerateStructured(_ context.Context, req *llm.Request) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if queue, ok := s.byThread[req.ThreadID]; ok {
		if len(queue) == 0 {
			return nil, fmt.Errorf("no scripted response left for thread %s", req.ThreadID)
		}
		s.byThread[req.ThreadID] = queue[1:]
		return queue[0], nil
	}
	if len(s.shared) == 0 {
		return nil, fmt.Errorf("no scripted response left")
	}
	next := s.shared[0]
	s.shared = s.shared[1:]
	return next, nil
}

type memoryRecorder struct {
	mu      sync.Mutex
	records []*CallbackRecord
}

func (m *memoryRecorder) RecordCallback(_ context.Context, rec *CallbackRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

func (m *memoryRecorder) last(t *testing.T) *CallbackRecord {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.records)
	return m.records[len(m.records)-1]
}

type harness struct {
	orch     *Orchestrator
	store    *checkpoint.MemoryStore
	bus      *events.MemoryBus
	llm      *scriptedLLM
	recorder *memoryRecorder
}

func newHarness(t *testing.T, model *scriptedLLM, reg *skills.Registry, fns *FunctionTable) *harness {
	t.Helper()
	h := &harness{
		store:    checkpoint.NewMemoryStore(),
		bus:      events.NewMemoryBus(),
		llm:      model,
		recorder: &memoryRecorder{},
	}
	h.orch = New(Config{
		Registry:     reg,
		LLM:          model,
		Checkpoints:  h.store,
		Bus:          h.bus,
		Credentials:  credentials.NewStatic(),
		Functions:    fns,
		Callbacks:    h.recorder,
		DefaultModel: "default-model",
	})
	return h
}

func llmSkill(name string, requires, produces []string) *skills.Skill {
	return &skills.Skill{
		Name:     name,
		Requires: requires,
		Produces: produces,
		Executor: skills.ExecutorLLM,
		Prompt:   "do " + name,
	}
}

func planChoice(name string) map[string]any {
	return map[string]any{"next_skill": name, "reasoning": "scripted"}
}

func TestPlannerDrivenTwoSkillRun(t *testing.T) {
	reg := skills.NewStaticRegistry(
		llmSkill("A", nil, []string{"x"}),
		llmSkill("B", []string{"x"}, []string{"y"}),
	)
	model := &scriptedLLM{shared: []map[string]any{
		planChoice("A"),
		{"x": "one"},
		planChoice("B"),
		{"y": "two"},
		planChoice("END"),
	}}
	h := newHarness(t, model, reg, nil)

	out, err := h.orch.Run(context.Background(), &RunContext{
		ThreadID: "t-s1", OwnerID: "u1", WorkspaceID: "ws", SOP: "Run A then B.",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, out.Status)

	cp, err := h.store.Latest(context.Background(), "t-s1")
	require.NoError(t, err)
	st, err := StateFrom(cp.ChannelValues)
	require.NoError(t, err)
	assert.Equal(t, "one", st.DataStore["x"])
	assert.Equal(t, "two", st.DataStore["y"])
	assert.Equal(t, []string{
		"Run started",
		"Planner chose A",
		"A produced [x]",
		"Planner chose B",
		"B produced [y]",
		"Planner chose END",
	}, st.History)
	assert.Equal(t, SkillEnd, cp.ActiveSkill)
	assert.Equal(t, StatusCompleted, cp.Status)
}

func TestCheckpointChainIsLinear(t *testing.T) {
	reg := skills.NewStaticRegistry(llmSkill("A", nil, []string{"x"}))
	model := &scriptedLLM{shared: []map[string]any{
		planChoice("A"), {"x": 1}, planChoice("END"),
	}}
	h := newHarness(t, model, reg, nil)

	_, err := h.orch.Run(context.Background(), &RunContext{ThreadID: "t-chain", WorkspaceID: "ws"})
	require.NoError(t, err)

	chain := h.store.Chain("t-chain")
	require.NotEmpty(t, chain)
	assert.Empty(t, chain[0].ParentID)
	prevHistory := 0
	for i, cp := range chain {
		if i > 0 {
			assert.Equal(t, chain[i-1].ID, cp.ParentID, "checkpoint %d parent", i)
		}
		st, err := StateFrom(cp.ChannelValues)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(st.History), prevHistory, "history is append-only")
		prevHistory = len(st.History)
	}
}

func TestHITLPauseAndResume(t *testing.T) {
	approve := llmSkill("A", nil, []string{"approved"})
	approve.HITLEnabled = true
	reg := skills.NewStaticRegistry(approve)
	model := &scriptedLLM{shared: []map[string]any{
		planChoice("A"),
		{"approved": true},
		planChoice("END"),
	}}
	h := newHarness(t, model, reg, nil)
	rc := &RunContext{ThreadID: "t-s2", WorkspaceID: "ws", SOP: "Get approval."}

	out, err := h.orch.Run(context.Background(), rc)
	require.NoError(t, err)
	assert.Equal(t, StatusPaused, out.Status)
	assert.Equal(t, "A", out.ActiveSkill)

	// Driving a paused run without a resume is a no-op.
	chainBefore := len(h.store.Chain("t-s2"))
	out, err = h.orch.Run(context.Background(), rc)
	require.NoError(t, err)
	assert.Equal(t, StatusPaused, out.Status)
	assert.Len(t, h.store.Chain("t-s2"), chainBefore)

	rc.Approval = map[string]any{"approved_by": "ops"}
	out, err = h.orch.Run(context.Background(), rc)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, out.Status)

	cp, _ := h.store.Latest(context.Background(), "t-s2")
	st, err := StateFrom(cp.ChannelValues)
	require.NoError(t, err)
	assert.Equal(t, true, st.DataStore["approved"])

	produced := 0
	for _, entry := range st.History {
		if entry == "A produced [approved]" {
			produced++
		}
	}
	assert.Equal(t, 1, produced, "no duplicate execution after resume")
}

func TestRESTCallbackRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	rest := &skills.Skill{
		Name:     "A",
		Produces: []string{"y"},
		Executor: skills.ExecutorREST,
		Rest:     &skills.RestConfig{URLTemplate: server.URL, Method: "POST", TimeoutMS: 60000},
	}
	reg := skills.NewStaticRegistry(rest)
	model := &scriptedLLM{shared: []map[string]any{
		planChoice("A"),
		planChoice("END"),
	}}
	h := newHarness(t, model, reg, nil)
	rc := &RunContext{ThreadID: "t-s3", OwnerID: "u1", WorkspaceID: "ws"}

	out, err := h.orch.Run(context.Background(), rc)
	require.NoError(t, err)
	assert.Equal(t, StatusPaused, out.Status)

	rec := h.recorder.last(t)
	assert.Equal(t, "t-s3", rec.ThreadID)
	assert.Equal(t, "A", rec.SkillName)
	assert.NotEmpty(t, rec.Token)

	rc.Callback = &CallbackResult{Token: rec.Token, Outputs: map[string]any{"y": 42}}
	out, err = h.orch.Run(context.Background(), rc)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, out.Status)

	cp, _ := h.store.Latest(context.Background(), "t-s3")
	st, err := StateFrom(cp.ChannelValues)
	require.NoError(t, err)
	assert.Equal(t, 42, st.DataStore["y"])
	assert.NotContains(t, st.DataStore, "_pending_callback")
}

func TestRESTDeadlineExpiry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	rest := &skills.Skill{
		Name:     "A",
		Produces: []string{"y"},
		Executor: skills.ExecutorREST,
		Rest:     &skills.RestConfig{URLTemplate: server.URL, TimeoutMS: 1},
	}
	reg := skills.NewStaticRegistry(rest)
	model := &scriptedLLM{shared: []map[string]any{planChoice("A")}}
	h := newHarness(t, model, reg, nil)
	rc := &RunContext{ThreadID: "t-deadline", WorkspaceID: "ws"}

	out, err := h.orch.Run(context.Background(), rc)
	require.NoError(t, err)
	require.Equal(t, StatusPaused, out.Status)

	time.Sleep(10 * time.Millisecond)
	out, err = h.orch.Run(context.Background(), rc)
	require.NoError(t, err)
	assert.Equal(t, StatusError, out.Status)
	require.NotNil(t, out.Failure)
	assert.Equal(t, KindRESTTimeout, out.Failure.Kind)
}

func TestPipelineSkillExtractsDeclaredOutput(t *testing.T) {
	fns := NewFunctionTable()
	fns.RegisterTransform("one", func(context.Context, map[string]any) (any, error) { return 1, nil })
	fns.RegisterTransform("two", func(context.Context, map[string]any) (any, error) { return 2, nil })
	fns.RegisterTransform("three", func(context.Context, map[string]any) (any, error) { return 3, nil })

	steps := []*pipeline.Step{
		{Type: pipeline.StepParallel, Name: "fan", Steps: []*pipeline.Step{
			{Type: pipeline.StepTransform, Function: "one", Output: "a"},
			{Type: pipeline.StepTransform, Function: "two", Output: "b"},
		}},
		{Type: pipeline.StepConditional, Name: "branch",
			If:   &pipeline.Condition{Field: "a", Operator: pipeline.OpGT, Value: 0},
			Then: []*pipeline.Step{{Type: pipeline.StepTransform, Function: "three", Output: "c"}},
			Else: []*pipeline.Step{{Type: pipeline.StepTransform, Function: "one", Output: "c"}},
		},
	}
	report := &skills.Skill{
		Name:     "report",
		Produces: []string{"c"},
		Executor: skills.ExecutorAction,
		Action:   &skills.ActionConfig{Type: skills.ActionDataPipeline, Steps: steps},
	}
	require.NoError(t, report.Validate())

	reg := skills.NewStaticRegistry(report)
	model := &scriptedLLM{shared: []map[string]any{
		planChoice("report"),
		planChoice("END"),
	}}
	h := newHarness(t, model, reg, fns)

	out, err := h.orch.Run(context.Background(), &RunContext{ThreadID: "t-s4", WorkspaceID: "ws"})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, out.Status)

	cp, _ := h.store.Latest(context.Background(), "t-s4")
	st, err := StateFrom(cp.ChannelValues)
	require.NoError(t, err)
	assert.Equal(t, 3, st.DataStore["c"])
	assert.NotContains(t, st.DataStore, "a", "pipeline-local keys stay out of the data store")
}

func TestMissingRequiredOutputFailsRun(t *testing.T) {
	reg := skills.NewStaticRegistry(llmSkill("A", nil, []string{"x", "y"}))
	model := &scriptedLLM{shared: []map[string]any{
		planChoice("A"),
		{"x": "hi"},
	}}
	h := newHarness(t, model, reg, nil)

	var published []string
	_, err := h.bus.Subscribe(context.Background(), events.ChannelRunEvents, func(_ context.Context, payload []byte) {
		published = append(published, string(payload))
	})
	require.NoError(t, err)

	out, err := h.orch.Run(context.Background(), &RunContext{ThreadID: "t-s5", WorkspaceID: "ws"})
	require.NoError(t, err)
	assert.Equal(t, StatusError, out.Status)
	require.NotNil(t, out.Failure)
	assert.Equal(t, KindMissingRequiredOutput, out.Failure.Kind)

	cp, errLatest := h.store.Latest(context.Background(), "t-s5")
	require.NoError(t, errLatest)
	assert.Equal(t, StatusError, cp.Status)
	st, err := StateFrom(cp.ChannelValues)
	require.NoError(t, err)
	assert.Equal(t, "failed", st.DataStore["_status"])
	assert.Equal(t, "A", st.DataStore["_failed_skill"])
	assert.NotEmpty(t, published, "terminal checkpoint publishes an event")
}

func TestPlannerInvalidChoiceFails(t *testing.T) {
	reg := skills.NewStaticRegistry(llmSkill("A", nil, []string{"x"}))
	model := &scriptedLLM{shared: []map[string]any{planChoice("Nope")}}
	h := newHarness(t, model, reg, nil)

	out, err := h.orch.Run(context.Background(), &RunContext{ThreadID: "t-nochoice", WorkspaceID: "ws"})
	require.NoError(t, err)
	assert.Equal(t, StatusError, out.Status)
	assert.Equal(t, KindPlannerNoChoice, out.Failure.Kind)
}

func TestMissingRequiredInputShortCircuitsToEnd(t *testing.T) {
	// The only skill's requires are unsatisfiable, so the candidate set is
	// empty and the planner must choose END without an LLM call.
	reg := skills.NewStaticRegistry(llmSkill("B", []string{"never.set"}, []string{"y"}))
	model := &scriptedLLM{}
	h := newHarness(t, model, reg, nil)

	out, err := h.orch.Run(context.Background(), &RunContext{ThreadID: "t-empty", WorkspaceID: "ws"})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, out.Status)
}

func TestConcurrentRunsShareRegistry(t *testing.T) {
	reg := skills.NewStaticRegistry(
		llmSkill("A", nil, []string{"x"}),
		llmSkill("B", []string{"x"}, []string{"y"}),
	)
	model := &scriptedLLM{byThread: map[string][]map[string]any{
		"t-one": {planChoice("A"), {"x": "1"}, planChoice("B"), {"y": "1"}, planChoice("END")},
		"t-two": {planChoice("A"), {"x": "2"}, planChoice("B"), {"y": "2"}, planChoice("END")},
	}}
	h := newHarness(t, model, reg, nil)

	var wg sync.WaitGroup
	outcomes := make(map[string]*Outcome)
	var mu sync.Mutex
	for _, threadID := range []string{"t-one", "t-two"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := h.orch.Run(context.Background(), &RunContext{ThreadID: threadID, WorkspaceID: "ws"})
			require.NoError(t, err)
			mu.Lock()
			outcomes[threadID] = out
			mu.Unlock()
		}()
	}
	wg.Wait()

	for threadID, out := range outcomes {
		assert.Equal(t, StatusCompleted, out.Status, threadID)
		cp, err := h.store.Latest(context.Background(), threadID)
		require.NoError(t, err)
		st, err := StateFrom(cp.ChannelValues)
		require.NoError(t, err)
		assert.Len(t, st.History, 6, "histories are independent")
	}
}

func TestCancelledContextFailsRun(t *testing.T) {
	reg := skills.NewStaticRegistry(llmSkill("A", nil, []string{"x"}))
	h := newHarness(t, &scriptedLLM{}, reg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := h.orch.Run(ctx, &RunContext{ThreadID: "t-cancel", WorkspaceID: "ws"})
	require.NoError(t, err)
	assert.Equal(t, StatusError, out.Status)
	assert.Equal(t, KindCancelled, out.Failure.Kind)

	// The terminal checkpoint is written despite the cancelled context.
	cp, err := h.store.Latest(context.Background(), "t-cancel")
	require.NoError(t, err)
	assert.Equal(t, StatusError, cp.Status)
}

func TestFailedSkillRetriedOnlyWhenInputsChange(t *testing.T) {
	st := NewState(map[string]any{"x": 1})
	skill := llmSkill("B", []string{"x"}, []string{"y"})
	resolved, _ := resolveRequires(skill, st.DataStore)
	st.RecordRun("B", SkillRunFailed, HashInputs(resolved))

	assert.Empty(t, eligibleSkills(st, []*skills.Skill{skill}), "same inputs: not retried")

	st.DataStore["x"] = 2
	assert.Len(t, eligibleSkills(st, []*skills.Skill{skill}), 1, "changed inputs: retried")
}
