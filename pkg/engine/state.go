package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// SkillEnd is the planner's terminal sentinel.
const SkillEnd = "END"

// Reserved engine-internal data store keys. Skills must not write them;
// output mapping drops any that slip through.
const (
	keyStatus           = "_status"
	keyError            = "_error"
	keyFailedSkill      = "_failed_skill"
	keyPendingCallback  = "_pending_callback"
	keyAwaitingApproval = "_awaiting_approval"
	keyApproval         = "_approval"
)

// SkillRun statuses recorded per executed skill.
const (
	SkillRunSucceeded = "succeeded"
	SkillRunFailed    = "failed"
)

// SkillRun records one skill execution for the planner's cycle prevention:
// succeeded skills leave the candidate set; failed skills re-enter it only
// when their resolved inputs hash changes.
type SkillRun struct {
	Status     string `json:"status"`
	InputsHash string `json:"inputs_hash"`
}

// State is the full mutable workflow state of one thread. It is exclusively
// owned by the orchestrator driving the thread; everything else sees copies
// through checkpoints and events.
type State struct {
	DataStore   map[string]any
	History     []string
	ActiveSkill string // empty until first planner choice; SkillEnd when done
	SkillRuns   map[string]*SkillRun
}

// NewState seeds a fresh thread state from a run's initial data.
func NewState(initial map[string]any) *State {
	store := make(map[string]any, len(initial))
	for k, v := range initial {
		store[k] = v
	}
	return &State{
		DataStore: store,
		SkillRuns: make(map[string]*SkillRun),
	}
}

// AppendHistory appends one step description. History is append-only and
// never rewritten.
func (s *State) AppendHistory(format string, args ...any) {
	s.History = append(s.History, fmt.Sprintf(format, args...))
}

// RecordRun records the outcome of one skill execution.
func (s *State) RecordRun(name, status, inputsHash string) {
	if s.SkillRuns == nil {
		s.SkillRuns = make(map[string]*SkillRun)
	}
	s.SkillRuns[name] = &SkillRun{Status: status, InputsHash: inputsHash}
}

// MarkFailed writes the terminal failure markers into the data store and
// appends the terminal history entry.
func (s *State) MarkFailed(werr *WorkflowError) {
	s.DataStore[keyStatus] = "failed"
	s.DataStore[keyError] = werr.Record()
	if werr.Skill != "" {
		s.DataStore[keyFailedSkill] = werr.Skill
	}
	skill := werr.Skill
	if skill == "" {
		skill = "planner"
	}
	kind := werr.Kind
	if werr.Inner != "" {
		kind += "/" + werr.Inner
	}
	s.AppendHistory("Workflow failed in %s: %s: %s", skill, kind, werr.Message)
}

// ChannelValues serializes the state into the checkpoint's opaque map.
func (s *State) ChannelValues() map[string]any {
	runs := make(map[string]any, len(s.SkillRuns))
	for name, run := range s.SkillRuns {
		runs[name] = map[string]any{
			"status":      run.Status,
			"inputs_hash": run.InputsHash,
		}
	}
	cv := map[string]any{
		"data_store": s.DataStore,
		"history":    append([]string(nil), s.History...),
		"skill_runs": runs,
	}
	if s.ActiveSkill != "" {
		cv["active_skill"] = s.ActiveSkill
	}
	return cv
}

// StateFrom rebuilds a State from persisted channel values. It tolerates the
// generic shapes a JSON round-trip produces.
func StateFrom(cv map[string]any) (*State, error) {
	st := NewState(nil)

	switch store := cv["data_store"].(type) {
	case nil:
	case map[string]any:
		st.DataStore = store
	default:
		return nil, fmt.Errorf("channel_values.data_store has unexpected type %T", store)
	}

	switch history := cv["history"].(type) {
	case nil:
	case []string:
		st.History = append(st.History, history...)
	case []any:
		for i, entry := range history {
			text, ok := entry.(string)
			if !ok {
				return nil, fmt.Errorf("channel_values.history[%d] is not a string", i)
			}
			st.History = append(st.History, text)
		}
	default:
		return nil, fmt.Errorf("channel_values.history has unexpected type %T", history)
	}

	if active, ok := cv["active_skill"].(string); ok {
		st.ActiveSkill = active
	}

	if runs, ok := cv["skill_runs"].(map[string]any); ok {
		for name, raw := range runs {
			rec, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("channel_values.skill_runs[%s] is not an object", name)
			}
			run := &SkillRun{}
			run.Status, _ = rec["status"].(string)
			run.InputsHash, _ = rec["inputs_hash"].(string)
			st.SkillRuns[name] = run
		}
	}
	return st, nil
}

// HashInputs fingerprints a skill's resolved inputs. encoding/json emits map
// keys in sorted order, so equal input sets hash equally.
func HashInputs(resolved map[string]any) string {
	raw, err := json.Marshal(resolved)
	if err != nil {
		raw = []byte(fmt.Sprintf("%v", resolved))
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// reservedKey reports whether a dotted path starts in the engine-internal
// namespace.
func reservedKey(path string) bool {
	first, _, _ := strings.Cut(path, ".")
	return strings.HasPrefix(first, "_")
}
