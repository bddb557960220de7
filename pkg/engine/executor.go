package engine

import (
	"context"
	"time"

	"github.com/weftworks/weft/pkg/paths"
	"github.com/weftworks/weft/pkg/skills"
)

// RunContext identifies the run an execution belongs to and carries the
// per-run knobs set at start time.
type RunContext struct {
	ThreadID    string
	OwnerID     string
	WorkspaceID string
	RunName     string
	SOP         string
	InitialData map[string]any

	// ModelOverride replaces the process-wide default LLM model for this run.
	ModelOverride string

	// Approval is non-nil when an external resume of a HITL pause has been
	// delivered and not yet consumed. An empty map is a bare approval.
	Approval map[string]any

	// Callback is non-nil when a REST callback has been consumed for this
	// run and its payload not yet applied.
	Callback *CallbackResult
}

// CallbackResult is the payload delivered by an external REST callback.
type CallbackResult struct {
	Token   string
	Outputs map[string]any
	Err     string // non-empty when the callback reported failure
}

// CallbackRecord tracks one outbound REST dispatch awaiting its callback.
type CallbackRecord struct {
	ThreadID  string
	Token     string
	SkillName string
	Deadline  time.Time
}

// CallbackRecorder persists callback records so inbound callbacks can be
// matched to their run. Consumption happens at the API layer.
type CallbackRecorder interface {
	RecordCallback(ctx context.Context, rec *CallbackRecord) error
}

// Invocation is one executor call.
type Invocation struct {
	Skill *skills.Skill

	// Inputs holds the skill's resolved requires, keyed by the dotted paths
	// themselves.
	Inputs map[string]any

	// DataStore is the run's data store, for template rendering. Executors
	// must treat it as read-only.
	DataStore map[string]any

	Run *RunContext
}

// Result is an executor's raw outcome, before output mapping.
type Result struct {
	// Outputs is the raw output value. Mapping rejects non-object shapes.
	Outputs any

	// Pause suspends the run after this execution. Set by the REST executor.
	Pause            bool
	CallbackToken    string
	CallbackDeadline time.Time

	// Note is an extra history entry, e.g. the outbound REST response code.
	Note string
}

// Executor runs one skill invocation. Implementations return *WorkflowError
// for failures attributable to the skill.
type Executor interface {
	Execute(ctx context.Context, inv *Invocation) (*Result, error)
}

// resolveRequires looks up every requires path in the data store. The second
// return lists paths that resolved to MISSING.
func resolveRequires(s *skills.Skill, store map[string]any) (map[string]any, []string) {
	resolved := make(map[string]any, len(s.Requires))
	var missing []string
	for _, path := range s.Requires {
		v := paths.Get(store, path)
		if paths.IsMissing(v) {
			missing = append(missing, path)
			continue
		}
		resolved[path] = v
	}
	return resolved, missing
}
