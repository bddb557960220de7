// Code generated by ent, DO NOT EDIT.

package callbackrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the callbackrecord type in the database.
	Label = "callback_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCorrelationToken holds the string denoting the correlation_token field in the database.
	FieldCorrelationToken = "correlation_token"
	// FieldThreadID holds the string denoting the thread_id field in the database.
	FieldThreadID = "thread_id"
	// FieldSkillName holds the string denoting the skill_name field in the database.
	FieldSkillName = "skill_name"
	// FieldDeadlineTs holds the string denoting the deadline_ts field in the database.
	FieldDeadlineTs = "deadline_ts"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldConsumedAt holds the string denoting the consumed_at field in the database.
	FieldConsumedAt = "consumed_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "thread_id"
	// Table holds the table name of the callbackrecord in the database.
	Table = "callback_records"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "callback_records"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "thread_id"
)

// Columns holds all SQL columns for callbackrecord fields.
var Columns = []string{
	FieldID,
	FieldCorrelationToken,
	FieldThreadID,
	FieldSkillName,
	FieldDeadlineTs,
	FieldCreatedAt,
	FieldConsumedAt,
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

// OrderOption defines the ordering options for the CallbackRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCorrelationToken orders the results by the correlation_token field.
func ByCorrelationToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationToken, opts...).ToFunc()
}

// ByThreadID orders the results by the thread_id field.
func ByThreadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreadID, opts...).ToFunc()
}

// BySkillName orders the results by the skill_name field.
func BySkillName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillName, opts...).ToFunc()
}

// ByDeadlineTs orders the results by the deadline_ts field.
func ByDeadlineTs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeadlineTs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByConsumedAt orders the results by the consumed_at field.
func ByConsumedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsumedAt, opts...).ToFunc()
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
