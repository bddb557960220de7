package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/weftworks/weft/pkg/checkpoint"
	"github.com/weftworks/weft/pkg/credentials"
	"github.com/weftworks/weft/pkg/engine/pipeline"
	"github.com/weftworks/weft/pkg/events"
	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/paths"
	"github.com/weftworks/weft/pkg/skills"
)

// Run status values as persisted in checkpoint projections and run rows.
const (
	StatusRunning   = "running"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
	StatusError     = "error"
)

// Outcome is the terminal result of driving a run as far as it can go
// without external input.
type Outcome struct {
	Status      string // completed | paused | error
	ActiveSkill string
	Failure     *WorkflowError // set when Status is error
}

// Config wires an Orchestrator.
type Config struct {
	Registry     *skills.Registry
	LLM          llm.Client
	Checkpoints  checkpoint.Store
	Bus          events.Bus
	Credentials  credentials.Client
	Functions    *FunctionTable
	Callbacks    CallbackRecorder
	HTTPClient   *http.Client
	DefaultModel string
	Logger       *slog.Logger
}

// Orchestrator drives runs through the plan/act/checkpoint loop. One
// orchestrator serves many concurrent runs; each run's loop is serial.
type Orchestrator struct {
	registry     *skills.Registry
	llm          llm.Client
	checkpoints  checkpoint.Store
	bus          events.Bus
	creds        credentials.Client
	functions    *FunctionTable
	callbacks    CallbackRecorder
	httpClient   *http.Client
	defaultModel string
	logger       *slog.Logger
}

// New creates an Orchestrator.
func New(cfg Config) *Orchestrator {
	o := &Orchestrator{
		registry:     cfg.Registry,
		llm:          cfg.LLM,
		checkpoints:  cfg.Checkpoints,
		bus:          cfg.Bus,
		creds:        cfg.Credentials,
		functions:    cfg.Functions,
		callbacks:    cfg.Callbacks,
		httpClient:   cfg.HTTPClient,
		defaultModel: cfg.DefaultModel,
		logger:       cfg.Logger,
	}
	if o.functions == nil {
		o.functions = NewFunctionTable()
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

func (o *Orchestrator) modelFor(rc *RunContext) string {
	if rc.ModelOverride != "" {
		return rc.ModelOverride
	}
	return o.defaultModel
}

// Run drives the thread until it completes, pauses or fails. The registry
// snapshot is taken once per drive, so a mid-flight reload never changes the
// skill set under a running loop.
//
// Driving a paused thread with no pending external input is a no-op.
func (o *Orchestrator) Run(ctx context.Context, rc *RunContext) (*Outcome, error) {
	snap := o.registry.Snapshot()
	env := o.newRunEnv(rc, snap)

	st, parentID, err := o.loadState(ctx, rc)
	if err != nil {
		return nil, err
	}
	if parentID == "" {
		st.AppendHistory("Run started")
		if parentID, err = o.saveCheckpoint(ctx, rc, st, StatusRunning, parentID); err != nil {
			return o.fail(ctx, rc, st, parentID, flushError(err))
		}
	}

	for {
		if ctx.Err() != nil {
			return o.fail(ctx, rc, st, parentID, newError(KindCancelled, st.ActiveSkill, "run cancelled"))
		}
		if st.ActiveSkill == SkillEnd {
			return &Outcome{Status: StatusCompleted, ActiveSkill: SkillEnd}, nil
		}
		if failed, _ := st.DataStore[keyStatus].(string); failed == "failed" {
			return &Outcome{Status: StatusError, ActiveSkill: st.ActiveSkill}, nil
		}

		// Pending external rendezvous: apply delivered input or park.
		if pending, ok := st.DataStore[keyPendingCallback].(map[string]any); ok {
			outcome, done, werr := o.applyCallback(ctx, rc, env, st, &parentID, pending)
			if werr != nil {
				return o.fail(ctx, rc, st, parentID, werr)
			}
			if done {
				return outcome, nil
			}
			continue
		}
		if awaiting, ok := st.DataStore[keyAwaitingApproval].(string); ok {
			if rc.Approval == nil {
				return &Outcome{Status: StatusPaused, ActiveSkill: awaiting}, nil
			}
			st.DataStore[keyApproval] = rc.Approval
			delete(st.DataStore, keyAwaitingApproval)
			st.AppendHistory("%s approved, resuming", awaiting)
			rc.Approval = nil
			if parentID, err = o.saveCheckpoint(ctx, rc, st, StatusRunning, parentID); err != nil {
				return o.fail(ctx, rc, st, parentID, flushError(err))
			}
			continue
		}

		choice, werr := o.plan(ctx, rc, st, snap)
		if werr != nil {
			return o.fail(ctx, rc, st, parentID, werr)
		}
		st.AppendHistory("Planner chose %s", choice)
		st.ActiveSkill = choice

		if choice == SkillEnd {
			if parentID, err = o.saveCheckpoint(ctx, rc, st, StatusCompleted, parentID); err != nil {
				return o.fail(ctx, rc, st, parentID, flushError(err))
			}
			return &Outcome{Status: StatusCompleted, ActiveSkill: SkillEnd}, nil
		}

		skill, ok := snap.Get(choice, rc.WorkspaceID)
		if !ok {
			return o.fail(ctx, rc, st, parentID, newError(KindPlannerNoChoice, "", "skill %q vanished from registry", choice))
		}

		resolved, missing := resolveRequires(skill, st.DataStore)
		if len(missing) > 0 {
			return o.fail(ctx, rc, st, parentID,
				newError(KindMissingRequiredInput, choice, "unresolved inputs: %v", missing))
		}
		inputsHash := HashInputs(resolved)

		res, err := env.executorFor(skill).Execute(ctx, &Invocation{
			Skill:     skill,
			Inputs:    resolved,
			DataStore: st.DataStore,
			Run:       rc,
		})
		if err != nil {
			st.RecordRun(choice, SkillRunFailed, inputsHash)
			return o.fail(ctx, rc, st, parentID, asWorkflowError(err, choice))
		}
		if res.Note != "" {
			st.AppendHistory("%s", res.Note)
		}

		if res.Pause && res.CallbackToken != "" {
			st.DataStore[keyPendingCallback] = map[string]any{
				"skill":    choice,
				"token":    res.CallbackToken,
				"deadline": res.CallbackDeadline.UTC().Format(time.RFC3339),
			}
			if parentID, err = o.saveCheckpoint(ctx, rc, st, StatusPaused, parentID); err != nil {
				return o.fail(ctx, rc, st, parentID, flushError(err))
			}
			return &Outcome{Status: StatusPaused, ActiveSkill: choice}, nil
		}

		werr = o.commitOutputs(st, skill, res.Outputs, inputsHash)
		if werr != nil {
			return o.fail(ctx, rc, st, parentID, werr)
		}

		if skill.HITLEnabled {
			st.DataStore[keyAwaitingApproval] = choice
			st.AppendHistory("%s awaiting approval", choice)
			if parentID, err = o.saveCheckpoint(ctx, rc, st, StatusPaused, parentID); err != nil {
				return o.fail(ctx, rc, st, parentID, flushError(err))
			}
			return &Outcome{Status: StatusPaused, ActiveSkill: choice}, nil
		}

		if parentID, err = o.saveCheckpoint(ctx, rc, st, StatusRunning, parentID); err != nil {
			return o.fail(ctx, rc, st, parentID, flushError(err))
		}
	}
}

// applyCallback resolves a pending REST rendezvous: applies a delivered
// callback payload, fails the run past its deadline, or parks it. done
// reports that the drive should return outcome.
func (o *Orchestrator) applyCallback(ctx context.Context, rc *RunContext, env *runEnv, st *State, parentID *string, pending map[string]any) (outcome *Outcome, done bool, werr *WorkflowError) {
	skillName, _ := pending["skill"].(string)

	if rc.Callback == nil {
		if deadlineStr, ok := pending["deadline"].(string); ok {
			deadline, err := time.Parse(time.RFC3339, deadlineStr)
			if err == nil && time.Now().After(deadline) {
				return nil, false, newError(KindRESTTimeout, skillName, "no callback before %s", deadlineStr)
			}
		}
		return &Outcome{Status: StatusPaused, ActiveSkill: skillName}, true, nil
	}

	cb := rc.Callback
	rc.Callback = nil
	if token, _ := pending["token"].(string); token != "" && cb.Token != token {
		o.logger.Warn("callback token does not match pending record, ignoring",
			"thread_id", rc.ThreadID, "skill", skillName)
		return &Outcome{Status: StatusPaused, ActiveSkill: skillName}, true, nil
	}
	if cb.Err != "" {
		return nil, false, newError(KindExecutorError, skillName, "callback reported failure: %s", cb.Err)
	}

	skill, ok := env.snap.Get(skillName, rc.WorkspaceID)
	if !ok {
		return nil, false, newError(KindExecutorError, skillName, "skill no longer in registry")
	}
	resolved, _ := resolveRequires(skill, st.DataStore)
	delete(st.DataStore, keyPendingCallback)

	if werr := o.commitOutputs(st, skill, cb.Outputs, HashInputs(resolved)); werr != nil {
		return nil, false, werr
	}

	if skill.HITLEnabled {
		st.DataStore[keyAwaitingApproval] = skillName
		st.AppendHistory("%s awaiting approval", skillName)
		next, err := o.saveCheckpoint(ctx, rc, st, StatusPaused, *parentID)
		if err != nil {
			return nil, false, flushError(err)
		}
		*parentID = next
		return &Outcome{Status: StatusPaused, ActiveSkill: skillName}, true, nil
	}

	next, err := o.saveCheckpoint(ctx, rc, st, StatusRunning, *parentID)
	if err != nil {
		return nil, false, flushError(err)
	}
	*parentID = next
	return nil, false, nil
}

// commitOutputs maps raw executor output onto the skill contract, writes the
// mapped values into the data store and records the execution.
func (o *Orchestrator) commitOutputs(st *State, skill *skills.Skill, raw any, inputsHash string) *WorkflowError {
	mapped, err := MapOutputs(skill, raw)
	if err != nil {
		st.RecordRun(skill.Name, SkillRunFailed, inputsHash)
		var werr *WorkflowError
		if errors.As(err, &werr) {
			return werr
		}
		return newError(KindExecutorError, skill.Name, "%v", err)
	}

	keys := make([]string, 0, len(mapped))
	for k := range mapped {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if reservedKey(k) {
			o.logger.Warn("skill attempted to write reserved key, dropped", "skill", skill.Name, "key", k)
			continue
		}
		if err := paths.Set(st.DataStore, k, mapped[k]); err != nil {
			st.RecordRun(skill.Name, SkillRunFailed, inputsHash)
			return newError(KindExecutorError, skill.Name, "storing output %q: %v", k, err)
		}
	}

	st.RecordRun(skill.Name, SkillRunSucceeded, inputsHash)
	st.AppendHistory("%s produced %v", skill.Name, keys)
	return nil
}

// loadState returns the thread's latest state and checkpoint id, or a fresh
// state when no checkpoint exists yet.
func (o *Orchestrator) loadState(ctx context.Context, rc *RunContext) (*State, string, error) {
	cp, err := o.checkpoints.Latest(ctx, rc.ThreadID)
	if errors.Is(err, checkpoint.ErrNotFound) {
		return NewState(rc.InitialData), "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("loading latest checkpoint for %s: %w", rc.ThreadID, err)
	}
	st, err := StateFrom(cp.ChannelValues)
	if err != nil {
		return nil, "", fmt.Errorf("deserializing checkpoint %s: %w", cp.ID, err)
	}
	return st, cp.ID, nil
}

// saveCheckpoint appends one row to the thread's chain and publishes the run
// event. The save must succeed before the loop advances; publish failures
// are logged, not fatal.
func (o *Orchestrator) saveCheckpoint(ctx context.Context, rc *RunContext, st *State, status, parentID string) (string, error) {
	cp := &checkpoint.Checkpoint{
		ThreadID:      rc.ThreadID,
		ID:            uuid.NewString(),
		ParentID:      parentID,
		TS:            time.Now().UTC(),
		WorkspaceID:   rc.WorkspaceID,
		ChannelValues: st.ChannelValues(),
		ActiveSkill:   st.ActiveSkill,
		Status:        status,
		RunName:       rc.RunName,
		SOPPreview:    preview(rc.SOP, 140),
	}
	if err := o.checkpoints.Save(ctx, cp); err != nil {
		return parentID, err
	}

	if o.bus != nil {
		event := events.RunEvent{
			ThreadID:     rc.ThreadID,
			CheckpointID: cp.ID,
			TS:           cp.TS,
			Metadata:     events.Metadata{ActiveSkill: st.ActiveSkill, Status: status},
		}
		for _, channel := range []string{events.ChannelRunEvents, events.ThreadChannel(rc.ThreadID)} {
			if err := o.bus.Publish(ctx, channel, event); err != nil {
				o.logger.Warn("publishing run event failed", "thread_id", rc.ThreadID, "channel", channel, "error", err)
			}
		}
	}
	return cp.ID, nil
}

// fail marks the run failed, persists a terminal checkpoint and returns the
// error outcome. The terminal save survives caller cancellation.
func (o *Orchestrator) fail(ctx context.Context, rc *RunContext, st *State, parentID string, werr *WorkflowError) (*Outcome, error) {
	st.MarkFailed(werr)
	saveCtx := context.WithoutCancel(ctx)
	if _, err := o.saveCheckpoint(saveCtx, rc, st, StatusError, parentID); err != nil {
		o.logger.Error("terminal checkpoint save failed, state lost",
			"thread_id", rc.ThreadID, "failure", werr.Error(), "save_error", err)
	}
	return &Outcome{Status: StatusError, ActiveSkill: st.ActiveSkill, Failure: werr}, nil
}

func flushError(err error) *WorkflowError {
	return &WorkflowError{Kind: KindCheckpointFlush, Message: err.Error(), cause: err}
}

// asWorkflowError coerces an executor failure, attributing it to the skill.
func asWorkflowError(err error, skill string) *WorkflowError {
	var werr *WorkflowError
	if errors.As(err, &werr) {
		if werr.Skill == "" {
			werr.Skill = skill
		}
		return werr
	}
	return execError(skill, "", err)
}

func preview(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "…"
}

// runEnv binds the per-run executor wiring: the data-query layer is tenanted
// to the run owner, and nested pipeline skills re-enter the engine through
// InvokeSkill.
type runEnv struct {
	o       *Orchestrator
	rc      *RunContext
	snap    *skills.Snapshot
	actions *actionExecutor
}

func (o *Orchestrator) newRunEnv(rc *RunContext, snap *skills.Snapshot) *runEnv {
	env := &runEnv{o: o, rc: rc, snap: snap}
	queries := NewDataQueries(o.creds, rc.OwnerID)
	env.actions = &actionExecutor{
		functions: o.functions,
		queries:   queries,
		client:    o.httpClient,
		pipelines: pipeline.NewRunner(&pipeline.Env{
			Queries:   queries,
			Functions: o.functions.Transforms(),
			Skills:    env,
			Logger:    o.logger,
		}),
	}
	return env
}

func (e *runEnv) executorFor(s *skills.Skill) Executor {
	switch s.Executor {
	case skills.ExecutorLLM:
		return &llmExecutor{client: e.o.llm, defaultModel: e.o.defaultModel}
	case skills.ExecutorREST:
		return &restExecutor{recorder: e.o.callbacks, client: e.o.httpClient, logger: e.o.logger}
	default:
		return e.actions
	}
}

// InvokeSkill implements pipeline.SkillInvoker. Nested skills run the full
// executor path including output mapping, against the pipeline's local
// context instead of the run data store. Suspending executors cannot nest.
func (e *runEnv) InvokeSkill(ctx context.Context, name string, localCtx map[string]any) (map[string]any, error) {
	s, ok := e.snap.Get(name, e.rc.WorkspaceID)
	if !ok {
		return nil, fmt.Errorf("skill %q not found", name)
	}
	if s.Executor == skills.ExecutorREST || s.HITLEnabled {
		return nil, fmt.Errorf("skill %q suspends the run and cannot be nested in a pipeline", name)
	}

	resolved, missing := resolveRequires(s, localCtx)
	if len(missing) > 0 {
		return nil, fmt.Errorf("skill %q unresolved inputs: %v", name, missing)
	}
	res, err := e.executorFor(s).Execute(ctx, &Invocation{
		Skill:     s,
		Inputs:    resolved,
		DataStore: localCtx,
		Run:       e.rc,
	})
	if err != nil {
		return nil, err
	}
	return MapOutputs(s, res.Outputs)
}
