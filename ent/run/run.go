// Code generated by ent, DO NOT EDIT.

package run

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the run type in the database.
	Label = "run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "thread_id"
	// FieldRunName holds the string denoting the run_name field in the database.
	FieldRunName = "run_name"
	// FieldSop holds the string denoting the sop field in the database.
	FieldSop = "sop"
	// FieldInitialData holds the string denoting the initial_data field in the database.
	FieldInitialData = "initial_data"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldParentThreadID holds the string denoting the parent_thread_id field in the database.
	FieldParentThreadID = "parent_thread_id"
	// FieldLlmModel holds the string denoting the llm_model field in the database.
	FieldLlmModel = "llm_model"
	// FieldAckKey holds the string denoting the ack_key field in the database.
	FieldAckKey = "ack_key"
	// FieldActiveSkill holds the string denoting the active_skill field in the database.
	FieldActiveSkill = "active_skill"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldResumePayload holds the string denoting the resume_payload field in the database.
	FieldResumePayload = "resume_payload"
	// FieldCallbackPayload holds the string denoting the callback_payload field in the database.
	FieldCallbackPayload = "callback_payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// EdgeCheckpoints holds the string denoting the checkpoints edge name in mutations.
	EdgeCheckpoints = "checkpoints"
	// EdgeCallbacks holds the string denoting the callbacks edge name in mutations.
	EdgeCallbacks = "callbacks"
	// CheckpointFieldID holds the string denoting the ID field of the Checkpoint.
	CheckpointFieldID = "checkpoint_id"
	// CallbackRecordFieldID holds the string denoting the ID field of the CallbackRecord.
	CallbackRecordFieldID = "id"
	// Table holds the table name of the run in the database.
	Table = "runs"
	// CheckpointsTable is the table that holds the checkpoints relation/edge.
	CheckpointsTable = "checkpoints"
	// CheckpointsInverseTable is the table name for the Checkpoint entity.
	// It exists in this package in order to avoid circular dependency with the "checkpoint" package.
	CheckpointsInverseTable = "checkpoints"
	// CheckpointsColumn is the table column denoting the checkpoints relation/edge.
	CheckpointsColumn = "thread_id"
	// CallbacksTable is the table that holds the callbacks relation/edge.
	CallbacksTable = "callback_records"
	// CallbacksInverseTable is the table name for the CallbackRecord entity.
	// It exists in this package in order to avoid circular dependency with the "callbackrecord" package.
	CallbacksInverseTable = "callback_records"
	// CallbacksColumn is the table column denoting the callbacks relation/edge.
	CallbacksColumn = "thread_id"
)

// Columns holds all SQL columns for run fields.
var Columns = []string{
	FieldID,
	FieldRunName,
	FieldSop,
	FieldInitialData,
	FieldStatus,
	FieldOwnerID,
	FieldWorkspaceID,
	FieldParentThreadID,
	FieldLlmModel,
	FieldAckKey,
	FieldActiveSkill,
	FieldLastError,
	FieldResumePayload,
	FieldCallbackPayload,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldPodID,
	FieldLastHeartbeatAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusPaused, StatusCompleted, StatusError:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Run queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunName orders the results by the run_name field.
func ByRunName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunName, opts...).ToFunc()
}

// BySop orders the results by the sop field.
func BySop(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSop, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByParentThreadID orders the results by the parent_thread_id field.
func ByParentThreadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentThreadID, opts...).ToFunc()
}

// ByLlmModel orders the results by the llm_model field.
func ByLlmModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmModel, opts...).ToFunc()
}

// ByAckKey orders the results by the ack_key field.
func ByAckKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAckKey, opts...).ToFunc()
}

// ByActiveSkill orders the results by the active_skill field.
func ByActiveSkill(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveSkill, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCheckpointsCount orders the results by checkpoints count.
func ByCheckpointsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCheckpointsStep(), opts...)
	}
}

// ByCheckpoints orders the results by checkpoints terms.
func ByCheckpoints(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCheckpointsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCallbacksCount orders the results by callbacks count.
func ByCallbacksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCallbacksStep(), opts...)
	}
}

// ByCallbacks orders the results by callbacks terms.
func ByCallbacks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCallbacksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCheckpointsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CheckpointsInverseTable, CheckpointFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
	)
}
func newCallbacksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CallbacksInverseTable, CallbackRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CallbacksTable, CallbacksColumn),
	)
}
