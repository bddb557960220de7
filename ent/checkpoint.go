// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/weftworks/weft/ent/checkpoint"
	"github.com/weftworks/weft/ent/run"
)

// Checkpoint is the model entity for the Checkpoint schema.
type Checkpoint struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ThreadID holds the value of the "thread_id" field.
	ThreadID string `json:"thread_id,omitempty"`
	// Empty string by convention
	CheckpointNs string `json:"checkpoint_ns,omitempty"`
	// ParentCheckpointID holds the value of the "parent_checkpoint_id" field.
	ParentCheckpointID *string `json:"parent_checkpoint_id,omitempty"`
	// Ts holds the value of the "ts" field.
	Ts time.Time `json:"ts,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// ChannelValues holds the value of the "channel_values" field.
	ChannelValues map[string]interface{} `json:"channel_values,omitempty"`
	// ChannelVersions holds the value of the "channel_versions" field.
	ChannelVersions map[string]interface{} `json:"channel_versions,omitempty"`
	// PendingWrites holds the value of the "pending_writes" field.
	PendingWrites map[string]interface{} `json:"pending_writes,omitempty"`
	// ActiveSkill holds the value of the "active_skill" field.
	ActiveSkill string `json:"active_skill,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// RunName holds the value of the "run_name" field.
	RunName string `json:"run_name,omitempty"`
	// SopPreview holds the value of the "sop_preview" field.
	SopPreview string `json:"sop_preview,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CheckpointQuery when eager-loading is set.
	Edges        CheckpointEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CheckpointEdges holds the relations/edges for other nodes in the graph.
type CheckpointEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CheckpointEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Checkpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkpoint.FieldChannelValues, checkpoint.FieldChannelVersions, checkpoint.FieldPendingWrites:
			values[i] = new([]byte)
		case checkpoint.FieldID, checkpoint.FieldThreadID, checkpoint.FieldCheckpointNs, checkpoint.FieldParentCheckpointID, checkpoint.FieldWorkspaceID, checkpoint.FieldActiveSkill, checkpoint.FieldStatus, checkpoint.FieldRunName, checkpoint.FieldSopPreview:
			values[i] = new(sql.NullString)
		case checkpoint.FieldTs:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Checkpoint fields.
func (_m *Checkpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkpoint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case checkpoint.FieldThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value.Valid {
				_m.ThreadID = value.String
			}
		case checkpoint.FieldCheckpointNs:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_ns", values[i])
			} else if value.Valid {
				_m.CheckpointNs = value.String
			}
		case checkpoint.FieldParentCheckpointID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_checkpoint_id", values[i])
			} else if value.Valid {
				_m.ParentCheckpointID = new(string)
				*_m.ParentCheckpointID = value.String
			}
		case checkpoint.FieldTs:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ts", values[i])
			} else if value.Valid {
				_m.Ts = value.Time
			}
		case checkpoint.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case checkpoint.FieldChannelValues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field channel_values", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChannelValues); err != nil {
					return fmt.Errorf("unmarshal field channel_values: %w", err)
				}
			}
		case checkpoint.FieldChannelVersions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field channel_versions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChannelVersions); err != nil {
					return fmt.Errorf("unmarshal field channel_versions: %w", err)
				}
			}
		case checkpoint.FieldPendingWrites:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pending_writes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PendingWrites); err != nil {
					return fmt.Errorf("unmarshal field pending_writes: %w", err)
				}
			}
		case checkpoint.FieldActiveSkill:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field active_skill", values[i])
			} else if value.Valid {
				_m.ActiveSkill = value.String
			}
		case checkpoint.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case checkpoint.FieldRunName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_name", values[i])
			} else if value.Valid {
				_m.RunName = value.String
			}
		case checkpoint.FieldSopPreview:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sop_preview", values[i])
			} else if value.Valid {
				_m.SopPreview = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Checkpoint.
// This includes values selected through modifiers, order, etc.
func (_m *Checkpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the Checkpoint entity.
func (_m *Checkpoint) QueryRun() *RunQuery {
	return NewCheckpointClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this Checkpoint.
// Note that you need to call Checkpoint.Unwrap() before calling this method if this Checkpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Checkpoint) Update() *CheckpointUpdateOne {
	return NewCheckpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Checkpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Checkpoint) Unwrap() *Checkpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Checkpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Checkpoint) String() string {
	var builder strings.Builder
	builder.WriteString("Checkpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("thread_id=")
	builder.WriteString(_m.ThreadID)
	builder.WriteString(", ")
	builder.WriteString("checkpoint_ns=")
	builder.WriteString(_m.CheckpointNs)
	builder.WriteString(", ")
	if v := _m.ParentCheckpointID; v != nil {
		builder.WriteString("parent_checkpoint_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("ts=")
	builder.WriteString(_m.Ts.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("channel_values=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChannelValues))
	builder.WriteString(", ")
	builder.WriteString("channel_versions=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChannelVersions))
	builder.WriteString(", ")
	builder.WriteString("pending_writes=")
	builder.WriteString(fmt.Sprintf("%v", _m.PendingWrites))
	builder.WriteString(", ")
	builder.WriteString("active_skill=")
	builder.WriteString(_m.ActiveSkill)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("run_name=")
	builder.WriteString(_m.RunName)
	builder.WriteString(", ")
	builder.WriteString("sop_preview=")
	builder.WriteString(_m.SopPreview)
	builder.WriteByte(')')
	return builder.String()
}

// Checkpoints is a parsable slice of Checkpoint.
type Checkpoints []*Checkpoint
