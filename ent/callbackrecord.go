// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/weftworks/weft/ent/callbackrecord"
	"github.com/weftworks/weft/ent/run"
)

// CallbackRecord is the model entity for the CallbackRecord schema.
type CallbackRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CorrelationToken holds the value of the "correlation_token" field.
	CorrelationToken string `json:"correlation_token,omitempty"`
	// ThreadID holds the value of the "thread_id" field.
	ThreadID string `json:"thread_id,omitempty"`
	// SkillName holds the value of the "skill_name" field.
	SkillName string `json:"skill_name,omitempty"`
	// DeadlineTs holds the value of the "deadline_ts" field.
	DeadlineTs time.Time `json:"deadline_ts,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ConsumedAt holds the value of the "consumed_at" field.
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CallbackRecordQuery when eager-loading is set.
	Edges        CallbackRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CallbackRecordEdges holds the relations/edges for other nodes in the graph.
type CallbackRecordEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CallbackRecordEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CallbackRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case callbackrecord.FieldID, callbackrecord.FieldCorrelationToken, callbackrecord.FieldThreadID, callbackrecord.FieldSkillName:
			values[i] = new(sql.NullString)
		case callbackrecord.FieldDeadlineTs, callbackrecord.FieldCreatedAt, callbackrecord.FieldConsumedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CallbackRecord fields.
func (_m *CallbackRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case callbackrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case callbackrecord.FieldCorrelationToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_token", values[i])
			} else if value.Valid {
				_m.CorrelationToken = value.String
			}
		case callbackrecord.FieldThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value.Valid {
				_m.ThreadID = value.String
			}
		case callbackrecord.FieldSkillName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_name", values[i])
			} else if value.Valid {
				_m.SkillName = value.String
			}
		case callbackrecord.FieldDeadlineTs:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deadline_ts", values[i])
			} else if value.Valid {
				_m.DeadlineTs = value.Time
			}
		case callbackrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case callbackrecord.FieldConsumedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field consumed_at", values[i])
			} else if value.Valid {
				_m.ConsumedAt = new(time.Time)
				*_m.ConsumedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CallbackRecord.
// This includes values selected through modifiers, order, etc.
func (_m *CallbackRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the CallbackRecord entity.
func (_m *CallbackRecord) QueryRun() *RunQuery {
	return NewCallbackRecordClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this CallbackRecord.
// Note that you need to call CallbackRecord.Unwrap() before calling this method if this CallbackRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CallbackRecord) Update() *CallbackRecordUpdateOne {
	return NewCallbackRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CallbackRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CallbackRecord) Unwrap() *CallbackRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CallbackRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CallbackRecord) String() string {
	var builder strings.Builder
	builder.WriteString("CallbackRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("correlation_token=")
	builder.WriteString(_m.CorrelationToken)
	builder.WriteString(", ")
	builder.WriteString("thread_id=")
	builder.WriteString(_m.ThreadID)
	builder.WriteString(", ")
	builder.WriteString("skill_name=")
	builder.WriteString(_m.SkillName)
	builder.WriteString(", ")
	builder.WriteString("deadline_ts=")
	builder.WriteString(_m.DeadlineTs.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ConsumedAt; v != nil {
		builder.WriteString("consumed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CallbackRecords is a parsable slice of CallbackRecord.
type CallbackRecords []*CallbackRecord
