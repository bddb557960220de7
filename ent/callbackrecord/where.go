// Code generated by ent, DO NOT EDIT.

package callbackrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/weftworks/weft/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldContainsFold(FieldID, id))
}

// CorrelationToken applies equality check predicate on the "correlation_token" field. It's identical to CorrelationTokenEQ.
func CorrelationToken(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEQ(FieldCorrelationToken, v))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEQ(FieldThreadID, v))
}

// SkillName applies equality check predicate on the "skill_name" field. It's identical to SkillNameEQ.
func SkillName(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEQ(FieldSkillName, v))
}

// DeadlineTs applies equality check predicate on the "deadline_ts" field. It's identical to DeadlineTsEQ.
func DeadlineTs(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEQ(FieldDeadlineTs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// ConsumedAt applies equality check predicate on the "consumed_at" field. It's identical to ConsumedAtEQ.
func ConsumedAt(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEQ(FieldConsumedAt, v))
}

// CorrelationTokenEQ applies the EQ predicate on the "correlation_token" field.
func CorrelationTokenEQ(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEQ(FieldCorrelationToken, v))
}

// CorrelationTokenNEQ applies the NEQ predicate on the "correlation_token" field.
func CorrelationTokenNEQ(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldNEQ(FieldCorrelationToken, v))
}

// CorrelationTokenIn applies the In predicate on the "correlation_token" field.
func CorrelationTokenIn(vs ...string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldIn(FieldCorrelationToken, vs...))
}

// CorrelationTokenNotIn applies the NotIn predicate on the "correlation_token" field.
func CorrelationTokenNotIn(vs ...string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldNotIn(FieldCorrelationToken, vs...))
}

// CorrelationTokenGT applies the GT predicate on the "correlation_token" field.
func CorrelationTokenGT(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldGT(FieldCorrelationToken, v))
}

// CorrelationTokenGTE applies the GTE predicate on the "correlation_token" field.
func CorrelationTokenGTE(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldGTE(FieldCorrelationToken, v))
}

// CorrelationTokenLT applies the LT predicate on the "correlation_token" field.
func CorrelationTokenLT(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldLT(FieldCorrelationToken, v))
}

// CorrelationTokenLTE applies the LTE predicate on the "correlation_token" field.
func CorrelationTokenLTE(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldLTE(FieldCorrelationToken, v))
}

// CorrelationTokenContains applies the Contains predicate on the "correlation_token" field.
func CorrelationTokenContains(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldContains(FieldCorrelationToken, v))
}

// CorrelationTokenHasPrefix applies the HasPrefix predicate on the "correlation_token" field.
func CorrelationTokenHasPrefix(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldHasPrefix(FieldCorrelationToken, v))
}

// CorrelationTokenHasSuffix applies the HasSuffix predicate on the "correlation_token" field.
func CorrelationTokenHasSuffix(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldHasSuffix(FieldCorrelationToken, v))
}

// CorrelationTokenEqualFold applies the EqualFold predicate on the "correlation_token" field.
func CorrelationTokenEqualFold(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEqualFold(FieldCorrelationToken, v))
}

// CorrelationTokenContainsFold applies the ContainsFold predicate on the "correlation_token" field.
func CorrelationTokenContainsFold(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldContainsFold(FieldCorrelationToken, v))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldNotIn(FieldThreadID, vs...))
}

// ThreadIDGT applies the GT predicate on the "thread_id" field.
func ThreadIDGT(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldGT(FieldThreadID, v))
}

// ThreadIDGTE applies the GTE predicate on the "thread_id" field.
func ThreadIDGTE(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldGTE(FieldThreadID, v))
}

// ThreadIDLT applies the LT predicate on the "thread_id" field.
func ThreadIDLT(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldLT(FieldThreadID, v))
}

// ThreadIDLTE applies the LTE predicate on the "thread_id" field.
func ThreadIDLTE(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldLTE(FieldThreadID, v))
}

// ThreadIDContains applies the Contains predicate on the "thread_id" field.
func ThreadIDContains(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldContains(FieldThreadID, v))
}

// ThreadIDHasPrefix applies the HasPrefix predicate on the "thread_id" field.
func ThreadIDHasPrefix(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldHasPrefix(FieldThreadID, v))
}

// ThreadIDHasSuffix applies the HasSuffix predicate on the "thread_id" field.
func ThreadIDHasSuffix(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldHasSuffix(FieldThreadID, v))
}

// ThreadIDEqualFold applies the EqualFold predicate on the "thread_id" field.
func ThreadIDEqualFold(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEqualFold(FieldThreadID, v))
}

// ThreadIDContainsFold applies the ContainsFold predicate on the "thread_id" field.
func ThreadIDContainsFold(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldContainsFold(FieldThreadID, v))
}

// SkillNameEQ applies the EQ predicate on the "skill_name" field.
func SkillNameEQ(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEQ(FieldSkillName, v))
}

// SkillNameNEQ applies the NEQ predicate on the "skill_name" field.
func SkillNameNEQ(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldNEQ(FieldSkillName, v))
}

// SkillNameIn applies the In predicate on the "skill_name" field.
func SkillNameIn(vs ...string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldIn(FieldSkillName, vs...))
}

// SkillNameNotIn applies the NotIn predicate on the "skill_name" field.
func SkillNameNotIn(vs ...string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldNotIn(FieldSkillName, vs...))
}

// SkillNameGT applies the GT predicate on the "skill_name" field.
func SkillNameGT(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldGT(FieldSkillName, v))
}

// SkillNameGTE applies the GTE predicate on the "skill_name" field.
func SkillNameGTE(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldGTE(FieldSkillName, v))
}

// SkillNameLT applies the LT predicate on the "skill_name" field.
func SkillNameLT(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldLT(FieldSkillName, v))
}

// SkillNameLTE applies the LTE predicate on the "skill_name" field.
func SkillNameLTE(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldLTE(FieldSkillName, v))
}

// SkillNameContains applies the Contains predicate on the "skill_name" field.
func SkillNameContains(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldContains(FieldSkillName, v))
}

// SkillNameHasPrefix applies the HasPrefix predicate on the "skill_name" field.
func SkillNameHasPrefix(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldHasPrefix(FieldSkillName, v))
}

// SkillNameHasSuffix applies the HasSuffix predicate on the "skill_name" field.
func SkillNameHasSuffix(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldHasSuffix(FieldSkillName, v))
}

// SkillNameEqualFold applies the EqualFold predicate on the "skill_name" field.
func SkillNameEqualFold(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEqualFold(FieldSkillName, v))
}

// SkillNameContainsFold applies the ContainsFold predicate on the "skill_name" field.
func SkillNameContainsFold(v string) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldContainsFold(FieldSkillName, v))
}

// DeadlineTsEQ applies the EQ predicate on the "deadline_ts" field.
func DeadlineTsEQ(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEQ(FieldDeadlineTs, v))
}

// DeadlineTsNEQ applies the NEQ predicate on the "deadline_ts" field.
func DeadlineTsNEQ(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldNEQ(FieldDeadlineTs, v))
}

// DeadlineTsIn applies the In predicate on the "deadline_ts" field.
func DeadlineTsIn(vs ...time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldIn(FieldDeadlineTs, vs...))
}

// DeadlineTsNotIn applies the NotIn predicate on the "deadline_ts" field.
func DeadlineTsNotIn(vs ...time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldNotIn(FieldDeadlineTs, vs...))
}

// DeadlineTsGT applies the GT predicate on the "deadline_ts" field.
func DeadlineTsGT(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldGT(FieldDeadlineTs, v))
}

// DeadlineTsGTE applies the GTE predicate on the "deadline_ts" field.
func DeadlineTsGTE(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldGTE(FieldDeadlineTs, v))
}

// DeadlineTsLT applies the LT predicate on the "deadline_ts" field.
func DeadlineTsLT(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldLT(FieldDeadlineTs, v))
}

// DeadlineTsLTE applies the LTE predicate on the "deadline_ts" field.
func DeadlineTsLTE(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldLTE(FieldDeadlineTs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// ConsumedAtEQ applies the EQ predicate on the "consumed_at" field.
func ConsumedAtEQ(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldEQ(FieldConsumedAt, v))
}

// ConsumedAtNEQ applies the NEQ predicate on the "consumed_at" field.
func ConsumedAtNEQ(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldNEQ(FieldConsumedAt, v))
}

// ConsumedAtIn applies the In predicate on the "consumed_at" field.
func ConsumedAtIn(vs ...time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldIn(FieldConsumedAt, vs...))
}

// ConsumedAtNotIn applies the NotIn predicate on the "consumed_at" field.
func ConsumedAtNotIn(vs ...time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldNotIn(FieldConsumedAt, vs...))
}

// ConsumedAtGT applies the GT predicate on the "consumed_at" field.
func ConsumedAtGT(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldGT(FieldConsumedAt, v))
}

// ConsumedAtGTE applies the GTE predicate on the "consumed_at" field.
func ConsumedAtGTE(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldGTE(FieldConsumedAt, v))
}

// ConsumedAtLT applies the LT predicate on the "consumed_at" field.
func ConsumedAtLT(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldLT(FieldConsumedAt, v))
}

// ConsumedAtLTE applies the LTE predicate on the "consumed_at" field.
func ConsumedAtLTE(v time.Time) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldLTE(FieldConsumedAt, v))
}

// ConsumedAtIsNil applies the IsNil predicate on the "consumed_at" field.
func ConsumedAtIsNil() predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldIsNull(FieldConsumedAt))
}

// ConsumedAtNotNil applies the NotNil predicate on the "consumed_at" field.
func ConsumedAtNotNil() predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.FieldNotNull(FieldConsumedAt))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.CallbackRecord {
	return predicate.CallbackRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.CallbackRecord {
	return predicate.CallbackRecord(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CallbackRecord) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CallbackRecord) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CallbackRecord) predicate.CallbackRecord {
	return predicate.CallbackRecord(sql.NotPredicates(p))
}
