// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/weftworks/weft/ent/run"
)

// Run is the model entity for the Run schema.
type Run struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunName holds the value of the "run_name" field.
	RunName *string `json:"run_name,omitempty"`
	// Plain-language instruction given to the planner (full-text searchable)
	Sop string `json:"sop,omitempty"`
	// Seed of the data store
	InitialData map[string]interface{} `json:"initial_data,omitempty"`
	// Status holds the value of the "status" field.
	Status run.Status `json:"status,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// Set when this run was forked/rerun
	ParentThreadID *string `json:"parent_thread_id,omitempty"`
	// Per-run model override
	LlmModel *string `json:"llm_model,omitempty"`
	// Client idempotency key for run creation
	AckKey *string `json:"ack_key,omitempty"`
	// ActiveSkill holds the value of the "active_skill" field.
	ActiveSkill *string `json:"active_skill,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError map[string]interface{} `json:"last_error,omitempty"`
	// Delivered HITL approval awaiting the next engine claim
	ResumePayload map[string]interface{} `json:"resume_payload,omitempty"`
	// Consumed REST callback awaiting the next engine claim
	CallbackPayload map[string]interface{} `json:"callback_payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker first claimed the run
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunQuery when eager-loading is set.
	Edges        RunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunEdges holds the relations/edges for other nodes in the graph.
type RunEdges struct {
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*Checkpoint `json:"checkpoints,omitempty"`
	// Callbacks holds the value of the callbacks edge.
	Callbacks []*CallbackRecord `json:"callbacks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) CheckpointsOrErr() ([]*Checkpoint, error) {
	if e.loadedTypes[0] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// CallbacksOrErr returns the Callbacks value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) CallbacksOrErr() ([]*CallbackRecord, error) {
	if e.loadedTypes[1] {
		return e.Callbacks, nil
	}
	return nil, &NotLoadedError{edge: "callbacks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Run) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case run.FieldInitialData, run.FieldLastError, run.FieldResumePayload, run.FieldCallbackPayload:
			values[i] = new([]byte)
		case run.FieldID, run.FieldRunName, run.FieldSop, run.FieldStatus, run.FieldOwnerID, run.FieldWorkspaceID, run.FieldParentThreadID, run.FieldLlmModel, run.FieldAckKey, run.FieldActiveSkill, run.FieldPodID:
			values[i] = new(sql.NullString)
		case run.FieldCreatedAt, run.FieldStartedAt, run.FieldCompletedAt, run.FieldLastHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Run fields.
func (_m *Run) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case run.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case run.FieldRunName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_name", values[i])
			} else if value.Valid {
				_m.RunName = new(string)
				*_m.RunName = value.String
			}
		case run.FieldSop:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sop", values[i])
			} else if value.Valid {
				_m.Sop = value.String
			}
		case run.FieldInitialData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field initial_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InitialData); err != nil {
					return fmt.Errorf("unmarshal field initial_data: %w", err)
				}
			}
		case run.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = run.Status(value.String)
			}
		case run.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case run.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case run.FieldParentThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_thread_id", values[i])
			} else if value.Valid {
				_m.ParentThreadID = new(string)
				*_m.ParentThreadID = value.String
			}
		case run.FieldLlmModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_model", values[i])
			} else if value.Valid {
				_m.LlmModel = new(string)
				*_m.LlmModel = value.String
			}
		case run.FieldAckKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ack_key", values[i])
			} else if value.Valid {
				_m.AckKey = new(string)
				*_m.AckKey = value.String
			}
		case run.FieldActiveSkill:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field active_skill", values[i])
			} else if value.Valid {
				_m.ActiveSkill = new(string)
				*_m.ActiveSkill = value.String
			}
		case run.FieldLastError:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LastError); err != nil {
					return fmt.Errorf("unmarshal field last_error: %w", err)
				}
			}
		case run.FieldResumePayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field resume_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResumePayload); err != nil {
					return fmt.Errorf("unmarshal field resume_payload: %w", err)
				}
			}
		case run.FieldCallbackPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field callback_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CallbackPayload); err != nil {
					return fmt.Errorf("unmarshal field callback_payload: %w", err)
				}
			}
		case run.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case run.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case run.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case run.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case run.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Run.
// This includes values selected through modifiers, order, etc.
func (_m *Run) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCheckpoints queries the "checkpoints" edge of the Run entity.
func (_m *Run) QueryCheckpoints() *CheckpointQuery {
	return NewRunClient(_m.config).QueryCheckpoints(_m)
}

// QueryCallbacks queries the "callbacks" edge of the Run entity.
func (_m *Run) QueryCallbacks() *CallbackRecordQuery {
	return NewRunClient(_m.config).QueryCallbacks(_m)
}

// Update returns a builder for updating this Run.
// Note that you need to call Run.Unwrap() before calling this method if this Run
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Run) Update() *RunUpdateOne {
	return NewRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Run entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Run) Unwrap() *Run {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Run is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Run) String() string {
	var builder strings.Builder
	builder.WriteString("Run(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.RunName; v != nil {
		builder.WriteString("run_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("sop=")
	builder.WriteString(_m.Sop)
	builder.WriteString(", ")
	builder.WriteString("initial_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.InitialData))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	if v := _m.ParentThreadID; v != nil {
		builder.WriteString("parent_thread_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LlmModel; v != nil {
		builder.WriteString("llm_model=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AckKey; v != nil {
		builder.WriteString("ack_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ActiveSkill; v != nil {
		builder.WriteString("active_skill=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("last_error=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastError))
	builder.WriteString(", ")
	builder.WriteString("resume_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResumePayload))
	builder.WriteString(", ")
	builder.WriteString("callback_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.CallbackPayload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Runs is a parsable slice of Run.
type Runs []*Run
