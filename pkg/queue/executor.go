package queue

import (
	"context"
	"log/slog"

	"github.com/weftworks/weft/ent"
	"github.com/weftworks/weft/ent/run"
	"github.com/weftworks/weft/pkg/engine"
)

// EngineExecutor adapts the workflow engine to the worker pool. It translates
// the claimed run row into an engine run context, delivering any resume or
// callback payload that arrived while the run was paused, and maps the
// engine outcome back onto the run row shape.
type EngineExecutor struct {
	orchestrator *engine.Orchestrator
	logger       *slog.Logger
}

// NewEngineExecutor creates an executor backed by the given orchestrator.
func NewEngineExecutor(orchestrator *engine.Orchestrator, logger *slog.Logger) *EngineExecutor {
	if logger == nil {
		logger = slog.Default()
	}
	return &EngineExecutor{orchestrator: orchestrator, logger: logger}
}

var _ RunExecutor = (*EngineExecutor)(nil)

// Execute drives one claim of the run through the engine.
func (e *EngineExecutor) Execute(ctx context.Context, r *ent.Run) *ExecutionResult {
	rc := &engine.RunContext{
		ThreadID:    r.ID,
		OwnerID:     r.OwnerID,
		WorkspaceID: r.WorkspaceID,
		SOP:         r.Sop,
		InitialData: r.InitialData,
		Approval:    r.ResumePayload,
		Callback:    callbackResult(r.CallbackPayload),
	}
	if r.RunName != nil {
		rc.RunName = *r.RunName
	}
	if r.LlmModel != nil {
		rc.ModelOverride = *r.LlmModel
	}

	outcome, err := e.orchestrator.Run(ctx, rc)
	if err != nil {
		// The engine checkpoints failures itself; reaching here means the
		// drive could not even record its own failure (checkpoint store
		// down, context gone). Surface it on the run row.
		e.logger.Error("Engine drive failed", "thread_id", r.ID, "error", err)
		return &ExecutionResult{
			Status:    run.StatusError,
			LastError: map[string]any{"kind": "internal", "message": err.Error()},
		}
	}

	result := &ExecutionResult{
		Status:      run.Status(outcome.Status),
		ActiveSkill: outcome.ActiveSkill,
	}
	if outcome.Failure != nil {
		result.LastError = outcome.Failure.Record()
	}
	return result
}

// callbackResult decodes the callback payload stored on the run row. The
// shape is written by CallbackService.Consume.
func callbackResult(payload map[string]any) *engine.CallbackResult {
	if payload == nil {
		return nil
	}
	cr := &engine.CallbackResult{}
	if token, ok := payload["token"].(string); ok {
		cr.Token = token
	}
	if outputs, ok := payload["outputs"].(map[string]any); ok {
		cr.Outputs = outputs
	}
	if errMsg, ok := payload["error"].(string); ok {
		cr.Err = errMsg
	}
	return cr
}
