// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/weftworks/weft/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldID, id))
}

// RunName applies equality check predicate on the "run_name" field. It's identical to RunNameEQ.
func RunName(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldRunName, v))
}

// Sop applies equality check predicate on the "sop" field. It's identical to SopEQ.
func Sop(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSop, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldOwnerID, v))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldWorkspaceID, v))
}

// ParentThreadID applies equality check predicate on the "parent_thread_id" field. It's identical to ParentThreadIDEQ.
func ParentThreadID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldParentThreadID, v))
}

// LlmModel applies equality check predicate on the "llm_model" field. It's identical to LlmModelEQ.
func LlmModel(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLlmModel, v))
}

// AckKey applies equality check predicate on the "ack_key" field. It's identical to AckKeyEQ.
func AckKey(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldAckKey, v))
}

// ActiveSkill applies equality check predicate on the "active_skill" field. It's identical to ActiveSkillEQ.
func ActiveSkill(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldActiveSkill, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// RunNameEQ applies the EQ predicate on the "run_name" field.
func RunNameEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldRunName, v))
}

// RunNameNEQ applies the NEQ predicate on the "run_name" field.
func RunNameNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldRunName, v))
}

// RunNameIn applies the In predicate on the "run_name" field.
func RunNameIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldRunName, vs...))
}

// RunNameNotIn applies the NotIn predicate on the "run_name" field.
func RunNameNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldRunName, vs...))
}

// RunNameGT applies the GT predicate on the "run_name" field.
func RunNameGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldRunName, v))
}

// RunNameGTE applies the GTE predicate on the "run_name" field.
func RunNameGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldRunName, v))
}

// RunNameLT applies the LT predicate on the "run_name" field.
func RunNameLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldRunName, v))
}

// RunNameLTE applies the LTE predicate on the "run_name" field.
func RunNameLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldRunName, v))
}

// RunNameContains applies the Contains predicate on the "run_name" field.
func RunNameContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldRunName, v))
}

// RunNameHasPrefix applies the HasPrefix predicate on the "run_name" field.
func RunNameHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldRunName, v))
}

// RunNameHasSuffix applies the HasSuffix predicate on the "run_name" field.
func RunNameHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldRunName, v))
}

// RunNameIsNil applies the IsNil predicate on the "run_name" field.
func RunNameIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldRunName))
}

// RunNameNotNil applies the NotNil predicate on the "run_name" field.
func RunNameNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldRunName))
}

// RunNameEqualFold applies the EqualFold predicate on the "run_name" field.
func RunNameEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldRunName, v))
}

// RunNameContainsFold applies the ContainsFold predicate on the "run_name" field.
func RunNameContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldRunName, v))
}

// SopEQ applies the EQ predicate on the "sop" field.
func SopEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSop, v))
}

// SopNEQ applies the NEQ predicate on the "sop" field.
func SopNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldSop, v))
}

// SopIn applies the In predicate on the "sop" field.
func SopIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldSop, vs...))
}

// SopNotIn applies the NotIn predicate on the "sop" field.
func SopNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldSop, vs...))
}

// SopGT applies the GT predicate on the "sop" field.
func SopGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldSop, v))
}

// SopGTE applies the GTE predicate on the "sop" field.
func SopGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldSop, v))
}

// SopLT applies the LT predicate on the "sop" field.
func SopLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldSop, v))
}

// SopLTE applies the LTE predicate on the "sop" field.
func SopLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldSop, v))
}

// SopContains applies the Contains predicate on the "sop" field.
func SopContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldSop, v))
}

// SopHasPrefix applies the HasPrefix predicate on the "sop" field.
func SopHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldSop, v))
}

// SopHasSuffix applies the HasSuffix predicate on the "sop" field.
func SopHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldSop, v))
}

// SopEqualFold applies the EqualFold predicate on the "sop" field.
func SopEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldSop, v))
}

// SopContainsFold applies the ContainsFold predicate on the "sop" field.
func SopContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldSop, v))
}

// InitialDataIsNil applies the IsNil predicate on the "initial_data" field.
func InitialDataIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldInitialData))
}

// InitialDataNotNil applies the NotNil predicate on the "initial_data" field.
func InitialDataNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldInitialData))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStatus, vs...))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldOwnerID, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// ParentThreadIDEQ applies the EQ predicate on the "parent_thread_id" field.
func ParentThreadIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldParentThreadID, v))
}

// ParentThreadIDNEQ applies the NEQ predicate on the "parent_thread_id" field.
func ParentThreadIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldParentThreadID, v))
}

// ParentThreadIDIn applies the In predicate on the "parent_thread_id" field.
func ParentThreadIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldParentThreadID, vs...))
}

// ParentThreadIDNotIn applies the NotIn predicate on the "parent_thread_id" field.
func ParentThreadIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldParentThreadID, vs...))
}

// ParentThreadIDGT applies the GT predicate on the "parent_thread_id" field.
func ParentThreadIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldParentThreadID, v))
}

// ParentThreadIDGTE applies the GTE predicate on the "parent_thread_id" field.
func ParentThreadIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldParentThreadID, v))
}

// ParentThreadIDLT applies the LT predicate on the "parent_thread_id" field.
func ParentThreadIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldParentThreadID, v))
}

// ParentThreadIDLTE applies the LTE predicate on the "parent_thread_id" field.
func ParentThreadIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldParentThreadID, v))
}

// ParentThreadIDContains applies the Contains predicate on the "parent_thread_id" field.
func ParentThreadIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldParentThreadID, v))
}

// ParentThreadIDHasPrefix applies the HasPrefix predicate on the "parent_thread_id" field.
func ParentThreadIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldParentThreadID, v))
}

// ParentThreadIDHasSuffix applies the HasSuffix predicate on the "parent_thread_id" field.
func ParentThreadIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldParentThreadID, v))
}

// ParentThreadIDIsNil applies the IsNil predicate on the "parent_thread_id" field.
func ParentThreadIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldParentThreadID))
}

// ParentThreadIDNotNil applies the NotNil predicate on the "parent_thread_id" field.
func ParentThreadIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldParentThreadID))
}

// ParentThreadIDEqualFold applies the EqualFold predicate on the "parent_thread_id" field.
func ParentThreadIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldParentThreadID, v))
}

// ParentThreadIDContainsFold applies the ContainsFold predicate on the "parent_thread_id" field.
func ParentThreadIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldParentThreadID, v))
}

// LlmModelEQ applies the EQ predicate on the "llm_model" field.
func LlmModelEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLlmModel, v))
}

// LlmModelNEQ applies the NEQ predicate on the "llm_model" field.
func LlmModelNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldLlmModel, v))
}

// LlmModelIn applies the In predicate on the "llm_model" field.
func LlmModelIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldLlmModel, vs...))
}

// LlmModelNotIn applies the NotIn predicate on the "llm_model" field.
func LlmModelNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldLlmModel, vs...))
}

// LlmModelGT applies the GT predicate on the "llm_model" field.
func LlmModelGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldLlmModel, v))
}

// LlmModelGTE applies the GTE predicate on the "llm_model" field.
func LlmModelGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldLlmModel, v))
}

// LlmModelLT applies the LT predicate on the "llm_model" field.
func LlmModelLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldLlmModel, v))
}

// LlmModelLTE applies the LTE predicate on the "llm_model" field.
func LlmModelLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldLlmModel, v))
}

// LlmModelContains applies the Contains predicate on the "llm_model" field.
func LlmModelContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldLlmModel, v))
}

// LlmModelHasPrefix applies the HasPrefix predicate on the "llm_model" field.
func LlmModelHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldLlmModel, v))
}

// LlmModelHasSuffix applies the HasSuffix predicate on the "llm_model" field.
func LlmModelHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldLlmModel, v))
}

// LlmModelIsNil applies the IsNil predicate on the "llm_model" field.
func LlmModelIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldLlmModel))
}

// LlmModelNotNil applies the NotNil predicate on the "llm_model" field.
func LlmModelNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldLlmModel))
}

// LlmModelEqualFold applies the EqualFold predicate on the "llm_model" field.
func LlmModelEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldLlmModel, v))
}

// LlmModelContainsFold applies the ContainsFold predicate on the "llm_model" field.
func LlmModelContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldLlmModel, v))
}

// AckKeyEQ applies the EQ predicate on the "ack_key" field.
func AckKeyEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldAckKey, v))
}

// AckKeyNEQ applies the NEQ predicate on the "ack_key" field.
func AckKeyNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldAckKey, v))
}

// AckKeyIn applies the In predicate on the "ack_key" field.
func AckKeyIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldAckKey, vs...))
}

// AckKeyNotIn applies the NotIn predicate on the "ack_key" field.
func AckKeyNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldAckKey, vs...))
}

// AckKeyGT applies the GT predicate on the "ack_key" field.
func AckKeyGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldAckKey, v))
}

// AckKeyGTE applies the GTE predicate on the "ack_key" field.
func AckKeyGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldAckKey, v))
}

// AckKeyLT applies the LT predicate on the "ack_key" field.
func AckKeyLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldAckKey, v))
}

// AckKeyLTE applies the LTE predicate on the "ack_key" field.
func AckKeyLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldAckKey, v))
}

// AckKeyContains applies the Contains predicate on the "ack_key" field.
func AckKeyContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldAckKey, v))
}

// AckKeyHasPrefix applies the HasPrefix predicate on the "ack_key" field.
func AckKeyHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldAckKey, v))
}

// AckKeyHasSuffix applies the HasSuffix predicate on the "ack_key" field.
func AckKeyHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldAckKey, v))
}

// AckKeyIsNil applies the IsNil predicate on the "ack_key" field.
func AckKeyIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldAckKey))
}

// AckKeyNotNil applies the NotNil predicate on the "ack_key" field.
func AckKeyNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldAckKey))
}

// AckKeyEqualFold applies the EqualFold predicate on the "ack_key" field.
func AckKeyEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldAckKey, v))
}

// AckKeyContainsFold applies the ContainsFold predicate on the "ack_key" field.
func AckKeyContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldAckKey, v))
}

// ActiveSkillEQ applies the EQ predicate on the "active_skill" field.
func ActiveSkillEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldActiveSkill, v))
}

// ActiveSkillNEQ applies the NEQ predicate on the "active_skill" field.
func ActiveSkillNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldActiveSkill, v))
}

// ActiveSkillIn applies the In predicate on the "active_skill" field.
func ActiveSkillIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldActiveSkill, vs...))
}

// ActiveSkillNotIn applies the NotIn predicate on the "active_skill" field.
func ActiveSkillNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldActiveSkill, vs...))
}

// ActiveSkillGT applies the GT predicate on the "active_skill" field.
func ActiveSkillGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldActiveSkill, v))
}

// ActiveSkillGTE applies the GTE predicate on the "active_skill" field.
func ActiveSkillGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldActiveSkill, v))
}

// ActiveSkillLT applies the LT predicate on the "active_skill" field.
func ActiveSkillLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldActiveSkill, v))
}

// ActiveSkillLTE applies the LTE predicate on the "active_skill" field.
func ActiveSkillLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldActiveSkill, v))
}

// ActiveSkillContains applies the Contains predicate on the "active_skill" field.
func ActiveSkillContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldActiveSkill, v))
}

// ActiveSkillHasPrefix applies the HasPrefix predicate on the "active_skill" field.
func ActiveSkillHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldActiveSkill, v))
}

// ActiveSkillHasSuffix applies the HasSuffix predicate on the "active_skill" field.
func ActiveSkillHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldActiveSkill, v))
}

// ActiveSkillIsNil applies the IsNil predicate on the "active_skill" field.
func ActiveSkillIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldActiveSkill))
}

// ActiveSkillNotNil applies the NotNil predicate on the "active_skill" field.
func ActiveSkillNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldActiveSkill))
}

// ActiveSkillEqualFold applies the EqualFold predicate on the "active_skill" field.
func ActiveSkillEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldActiveSkill, v))
}

// ActiveSkillContainsFold applies the ContainsFold predicate on the "active_skill" field.
func ActiveSkillContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldActiveSkill, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldLastError))
}

// ResumePayloadIsNil applies the IsNil predicate on the "resume_payload" field.
func ResumePayloadIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldResumePayload))
}

// ResumePayloadNotNil applies the NotNil predicate on the "resume_payload" field.
func ResumePayloadNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldResumePayload))
}

// CallbackPayloadIsNil applies the IsNil predicate on the "callback_payload" field.
func CallbackPayloadIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldCallbackPayload))
}

// CallbackPayloadNotNil applies the NotNil predicate on the "callback_payload" field.
func CallbackPayloadNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldCallbackPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldCompletedAt))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// HasCheckpoints applies the HasEdge predicate on the "checkpoints" edge.
func HasCheckpoints() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckpointsWith applies the HasEdge predicate on the "checkpoints" edge with a given conditions (other predicates).
func HasCheckpointsWith(preds ...predicate.Checkpoint) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newCheckpointsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCallbacks applies the HasEdge predicate on the "callbacks" edge.
func HasCallbacks() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CallbacksTable, CallbacksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCallbacksWith applies the HasEdge predicate on the "callbacks" edge with a given conditions (other predicates).
func HasCallbacksWith(preds ...predicate.CallbackRecord) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newCallbacksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Run) predicate.Run {
	return predicate.Run(sql.NotPredicates(p))
}
