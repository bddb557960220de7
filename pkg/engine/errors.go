// Package engine drives durable skill runs: a planner chooses the next skill,
// an executor runs it, outputs are mapped into the shared data store, and a
// checkpoint is written before the next tick.
package engine

import "fmt"

// Top-level failure kinds persisted under the data store's _error.kind.
const (
	KindMissingRequiredInput  = "missing_required_input"
	KindMissingRequiredOutput = "missing_required_output"
	KindNonDictResult         = "non_dict_result"
	KindExecutorError         = "executor_error"
	KindRESTTimeout           = "rest_timeout"
	KindPlannerNoChoice       = "planner_no_choice"
	KindCancelled             = "cancelled"
	KindCheckpointFlush       = "checkpoint_flush_error"
)

// Inner kinds carried by executor_error failures.
const (
	InnerLLMOutputInvalid   = "llm_output_invalid"
	InnerDBQueryFailed      = "db_query_failed"
	InnerSubprocessNonzero  = "subprocess_nonzero"
	InnerHTTPNon2xx         = "http_non_2xx"
	InnerPipelineStepFailed = "pipeline_step_failed"
	InnerCredentialNotFound = "credential_not_found"
	InnerUnknownOperator    = "unknown_operator"
)

// WorkflowError is a fatal run failure. It halts the run, lands in the data
// store under _error, and flips the run status to error.
type WorkflowError struct {
	Kind    string
	Inner   string // executor_error only
	Skill   string // skill that failed, when attributable
	Message string
	cause   error
}

func (e *WorkflowError) Error() string {
	kind := e.Kind
	if e.Inner != "" {
		kind += "/" + e.Inner
	}
	if e.Skill != "" {
		return fmt.Sprintf("%s in %s: %s", kind, e.Skill, e.Message)
	}
	return fmt.Sprintf("%s: %s", kind, e.Message)
}

func (e *WorkflowError) Unwrap() error { return e.cause }

// Record renders the error as the map persisted under _error.
func (e *WorkflowError) Record() map[string]any {
	rec := map[string]any{
		"kind":    e.Kind,
		"message": e.Message,
	}
	if e.Inner != "" {
		rec["inner_kind"] = e.Inner
	}
	if e.Skill != "" {
		rec["skill"] = e.Skill
	}
	return rec
}

func newError(kind, skill, format string, args ...any) *WorkflowError {
	return &WorkflowError{Kind: kind, Skill: skill, Message: fmt.Sprintf(format, args...)}
}

// execError wraps an executor failure, preserving the inner kind.
func execError(skill, inner string, err error) *WorkflowError {
	return &WorkflowError{
		Kind:    KindExecutorError,
		Inner:   inner,
		Skill:   skill,
		Message: err.Error(),
		cause:   err,
	}
}
