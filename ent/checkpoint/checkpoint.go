// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the checkpoint type in the database.
	Label = "checkpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "checkpoint_id"
	// FieldThreadID holds the string denoting the thread_id field in the database.
	FieldThreadID = "thread_id"
	// FieldCheckpointNs holds the string denoting the checkpoint_ns field in the database.
	FieldCheckpointNs = "checkpoint_ns"
	// FieldParentCheckpointID holds the string denoting the parent_checkpoint_id field in the database.
	FieldParentCheckpointID = "parent_checkpoint_id"
	// FieldTs holds the string denoting the ts field in the database.
	FieldTs = "ts"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldChannelValues holds the string denoting the channel_values field in the database.
	FieldChannelValues = "channel_values"
	// FieldChannelVersions holds the string denoting the channel_versions field in the database.
	FieldChannelVersions = "channel_versions"
	// FieldPendingWrites holds the string denoting the pending_writes field in the database.
	FieldPendingWrites = "pending_writes"
	// FieldActiveSkill holds the string denoting the active_skill field in the database.
	FieldActiveSkill = "active_skill"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRunName holds the string denoting the run_name field in the database.
	FieldRunName = "run_name"
	// FieldSopPreview holds the string denoting the sop_preview field in the database.
	FieldSopPreview = "sop_preview"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "thread_id"
	// Table holds the table name of the checkpoint in the database.
	Table = "checkpoints"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "checkpoints"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "thread_id"
)

// Columns holds all SQL columns for checkpoint fields.
var Columns = []string{
	FieldID,
	FieldThreadID,
	FieldCheckpointNs,
	FieldParentCheckpointID,
	FieldTs,
	FieldWorkspaceID,
	FieldChannelValues,
	FieldChannelVersions,
	FieldPendingWrites,
	FieldActiveSkill,
	FieldStatus,
	FieldRunName,
	FieldSopPreview,
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
	// DefaultCheckpointNs holds the default value on creation for the "checkpoint_ns" field.
	DefaultCheckpointNs string
	// DefaultTs holds the default value on creation for the "ts" field.
	DefaultTs func() time.Time
)

// OrderOption defines the ordering options for the Checkpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByThreadID orders the results by the thread_id field.
func ByThreadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreadID, opts...).ToFunc()
}

// ByCheckpointNs orders the results by the checkpoint_ns field.
func ByCheckpointNs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointNs, opts...).ToFunc()
}

// ByParentCheckpointID orders the results by the parent_checkpoint_id field.
func ByParentCheckpointID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentCheckpointID, opts...).ToFunc()
}

// ByTs orders the results by the ts field.
func ByTs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTs, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByActiveSkill orders the results by the active_skill field.
func ByActiveSkill(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveSkill, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRunName orders the results by the run_name field.
func ByRunName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunName, opts...).ToFunc()
}

// BySopPreview orders the results by the sop_preview field.
func BySopPreview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSopPreview, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
