// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/weftworks/weft/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldID, id))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldThreadID, v))
}

// CheckpointNs applies equality check predicate on the "checkpoint_ns" field. It's identical to CheckpointNsEQ.
func CheckpointNs(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCheckpointNs, v))
}

// ParentCheckpointID applies equality check predicate on the "parent_checkpoint_id" field. It's identical to ParentCheckpointIDEQ.
func ParentCheckpointID(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldParentCheckpointID, v))
}

// Ts applies equality check predicate on the "ts" field. It's identical to TsEQ.
func Ts(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldTs, v))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldWorkspaceID, v))
}

// ActiveSkill applies equality check predicate on the "active_skill" field. It's identical to ActiveSkillEQ.
func ActiveSkill(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldActiveSkill, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldStatus, v))
}

// RunName applies equality check predicate on the "run_name" field. It's identical to RunNameEQ.
func RunName(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldRunName, v))
}

// SopPreview applies equality check predicate on the "sop_preview" field. It's identical to SopPreviewEQ.
func SopPreview(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldSopPreview, v))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldThreadID, vs...))
}

// ThreadIDGT applies the GT predicate on the "thread_id" field.
func ThreadIDGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldThreadID, v))
}

// ThreadIDGTE applies the GTE predicate on the "thread_id" field.
func ThreadIDGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldThreadID, v))
}

// ThreadIDLT applies the LT predicate on the "thread_id" field.
func ThreadIDLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldThreadID, v))
}

// ThreadIDLTE applies the LTE predicate on the "thread_id" field.
func ThreadIDLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldThreadID, v))
}

// ThreadIDContains applies the Contains predicate on the "thread_id" field.
func ThreadIDContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldThreadID, v))
}

// ThreadIDHasPrefix applies the HasPrefix predicate on the "thread_id" field.
func ThreadIDHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldThreadID, v))
}

// ThreadIDHasSuffix applies the HasSuffix predicate on the "thread_id" field.
func ThreadIDHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldThreadID, v))
}

// ThreadIDEqualFold applies the EqualFold predicate on the "thread_id" field.
func ThreadIDEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldThreadID, v))
}

// ThreadIDContainsFold applies the ContainsFold predicate on the "thread_id" field.
func ThreadIDContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldThreadID, v))
}

// CheckpointNsEQ applies the EQ predicate on the "checkpoint_ns" field.
func CheckpointNsEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCheckpointNs, v))
}

// CheckpointNsNEQ applies the NEQ predicate on the "checkpoint_ns" field.
func CheckpointNsNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldCheckpointNs, v))
}

// CheckpointNsIn applies the In predicate on the "checkpoint_ns" field.
func CheckpointNsIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldCheckpointNs, vs...))
}

// CheckpointNsNotIn applies the NotIn predicate on the "checkpoint_ns" field.
func CheckpointNsNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldCheckpointNs, vs...))
}

// CheckpointNsGT applies the GT predicate on the "checkpoint_ns" field.
func CheckpointNsGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldCheckpointNs, v))
}

// CheckpointNsGTE applies the GTE predicate on the "checkpoint_ns" field.
func CheckpointNsGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldCheckpointNs, v))
}

// CheckpointNsLT applies the LT predicate on the "checkpoint_ns" field.
func CheckpointNsLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldCheckpointNs, v))
}

// CheckpointNsLTE applies the LTE predicate on the "checkpoint_ns" field.
func CheckpointNsLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldCheckpointNs, v))
}

// CheckpointNsContains applies the Contains predicate on the "checkpoint_ns" field.
func CheckpointNsContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldCheckpointNs, v))
}

// CheckpointNsHasPrefix applies the HasPrefix predicate on the "checkpoint_ns" field.
func CheckpointNsHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldCheckpointNs, v))
}

// CheckpointNsHasSuffix applies the HasSuffix predicate on the "checkpoint_ns" field.
func CheckpointNsHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldCheckpointNs, v))
}

// CheckpointNsEqualFold applies the EqualFold predicate on the "checkpoint_ns" field.
func CheckpointNsEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldCheckpointNs, v))
}

// CheckpointNsContainsFold applies the ContainsFold predicate on the "checkpoint_ns" field.
func CheckpointNsContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldCheckpointNs, v))
}

// ParentCheckpointIDEQ applies the EQ predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldParentCheckpointID, v))
}

// ParentCheckpointIDNEQ applies the NEQ predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldParentCheckpointID, v))
}

// ParentCheckpointIDIn applies the In predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldParentCheckpointID, vs...))
}

// ParentCheckpointIDNotIn applies the NotIn predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldParentCheckpointID, vs...))
}

// ParentCheckpointIDGT applies the GT predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldParentCheckpointID, v))
}

// ParentCheckpointIDGTE applies the GTE predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldParentCheckpointID, v))
}

// ParentCheckpointIDLT applies the LT predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldParentCheckpointID, v))
}

// ParentCheckpointIDLTE applies the LTE predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldParentCheckpointID, v))
}

// ParentCheckpointIDContains applies the Contains predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldParentCheckpointID, v))
}

// ParentCheckpointIDHasPrefix applies the HasPrefix predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldParentCheckpointID, v))
}

// ParentCheckpointIDHasSuffix applies the HasSuffix predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldParentCheckpointID, v))
}

// ParentCheckpointIDIsNil applies the IsNil predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldParentCheckpointID))
}

// ParentCheckpointIDNotNil applies the NotNil predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldParentCheckpointID))
}

// ParentCheckpointIDEqualFold applies the EqualFold predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldParentCheckpointID, v))
}

// ParentCheckpointIDContainsFold applies the ContainsFold predicate on the "parent_checkpoint_id" field.
func ParentCheckpointIDContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldParentCheckpointID, v))
}

// TsEQ applies the EQ predicate on the "ts" field.
func TsEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldTs, v))
}

// TsNEQ applies the NEQ predicate on the "ts" field.
func TsNEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldTs, v))
}

// TsIn applies the In predicate on the "ts" field.
func TsIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldTs, vs...))
}

// TsNotIn applies the NotIn predicate on the "ts" field.
func TsNotIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldTs, vs...))
}

// TsGT applies the GT predicate on the "ts" field.
func TsGT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldTs, v))
}

// TsGTE applies the GTE predicate on the "ts" field.
func TsGTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldTs, v))
}

// TsLT applies the LT predicate on the "ts" field.
func TsLT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldTs, v))
}

// TsLTE applies the LTE predicate on the "ts" field.
func TsLTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldTs, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// ChannelVersionsIsNil applies the IsNil predicate on the "channel_versions" field.
func ChannelVersionsIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldChannelVersions))
}

// ChannelVersionsNotNil applies the NotNil predicate on the "channel_versions" field.
func ChannelVersionsNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldChannelVersions))
}

// PendingWritesIsNil applies the IsNil predicate on the "pending_writes" field.
func PendingWritesIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldPendingWrites))
}

// PendingWritesNotNil applies the NotNil predicate on the "pending_writes" field.
func PendingWritesNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldPendingWrites))
}

// ActiveSkillEQ applies the EQ predicate on the "active_skill" field.
func ActiveSkillEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldActiveSkill, v))
}

// ActiveSkillNEQ applies the NEQ predicate on the "active_skill" field.
func ActiveSkillNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldActiveSkill, v))
}

// ActiveSkillIn applies the In predicate on the "active_skill" field.
func ActiveSkillIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldActiveSkill, vs...))
}

// ActiveSkillNotIn applies the NotIn predicate on the "active_skill" field.
func ActiveSkillNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldActiveSkill, vs...))
}

// ActiveSkillGT applies the GT predicate on the "active_skill" field.
func ActiveSkillGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldActiveSkill, v))
}

// ActiveSkillGTE applies the GTE predicate on the "active_skill" field.
func ActiveSkillGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldActiveSkill, v))
}

// ActiveSkillLT applies the LT predicate on the "active_skill" field.
func ActiveSkillLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldActiveSkill, v))
}

// ActiveSkillLTE applies the LTE predicate on the "active_skill" field.
func ActiveSkillLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldActiveSkill, v))
}

// ActiveSkillContains applies the Contains predicate on the "active_skill" field.
func ActiveSkillContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldActiveSkill, v))
}

// ActiveSkillHasPrefix applies the HasPrefix predicate on the "active_skill" field.
func ActiveSkillHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldActiveSkill, v))
}

// ActiveSkillHasSuffix applies the HasSuffix predicate on the "active_skill" field.
func ActiveSkillHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldActiveSkill, v))
}

// ActiveSkillIsNil applies the IsNil predicate on the "active_skill" field.
func ActiveSkillIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldActiveSkill))
}

// ActiveSkillNotNil applies the NotNil predicate on the "active_skill" field.
func ActiveSkillNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldActiveSkill))
}

// ActiveSkillEqualFold applies the EqualFold predicate on the "active_skill" field.
func ActiveSkillEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldActiveSkill, v))
}

// ActiveSkillContainsFold applies the ContainsFold predicate on the "active_skill" field.
func ActiveSkillContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldActiveSkill, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldStatus, v))
}

// RunNameEQ applies the EQ predicate on the "run_name" field.
func RunNameEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldRunName, v))
}

// RunNameNEQ applies the NEQ predicate on the "run_name" field.
func RunNameNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldRunName, v))
}

// RunNameIn applies the In predicate on the "run_name" field.
func RunNameIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldRunName, vs...))
}

// RunNameNotIn applies the NotIn predicate on the "run_name" field.
func RunNameNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldRunName, vs...))
}

// RunNameGT applies the GT predicate on the "run_name" field.
func RunNameGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldRunName, v))
}

// RunNameGTE applies the GTE predicate on the "run_name" field.
func RunNameGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldRunName, v))
}

// RunNameLT applies the LT predicate on the "run_name" field.
func RunNameLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldRunName, v))
}

// RunNameLTE applies the LTE predicate on the "run_name" field.
func RunNameLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldRunName, v))
}

// RunNameContains applies the Contains predicate on the "run_name" field.
func RunNameContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldRunName, v))
}

// RunNameHasPrefix applies the HasPrefix predicate on the "run_name" field.
func RunNameHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldRunName, v))
}

// RunNameHasSuffix applies the HasSuffix predicate on the "run_name" field.
func RunNameHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldRunName, v))
}

// RunNameIsNil applies the IsNil predicate on the "run_name" field.
func RunNameIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldRunName))
}

// RunNameNotNil applies the NotNil predicate on the "run_name" field.
func RunNameNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldRunName))
}

// RunNameEqualFold applies the EqualFold predicate on the "run_name" field.
func RunNameEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldRunName, v))
}

// RunNameContainsFold applies the ContainsFold predicate on the "run_name" field.
func RunNameContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldRunName, v))
}

// SopPreviewEQ applies the EQ predicate on the "sop_preview" field.
func SopPreviewEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldSopPreview, v))
}

// SopPreviewNEQ applies the NEQ predicate on the "sop_preview" field.
func SopPreviewNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldSopPreview, v))
}

// SopPreviewIn applies the In predicate on the "sop_preview" field.
func SopPreviewIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldSopPreview, vs...))
}

// SopPreviewNotIn applies the NotIn predicate on the "sop_preview" field.
func SopPreviewNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldSopPreview, vs...))
}

// SopPreviewGT applies the GT predicate on the "sop_preview" field.
func SopPreviewGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldSopPreview, v))
}

// SopPreviewGTE applies the GTE predicate on the "sop_preview" field.
func SopPreviewGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldSopPreview, v))
}

// SopPreviewLT applies the LT predicate on the "sop_preview" field.
func SopPreviewLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldSopPreview, v))
}

// SopPreviewLTE applies the LTE predicate on the "sop_preview" field.
func SopPreviewLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldSopPreview, v))
}

// SopPreviewContains applies the Contains predicate on the "sop_preview" field.
func SopPreviewContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldSopPreview, v))
}

// SopPreviewHasPrefix applies the HasPrefix predicate on the "sop_preview" field.
func SopPreviewHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldSopPreview, v))
}

// SopPreviewHasSuffix applies the HasSuffix predicate on the "sop_preview" field.
func SopPreviewHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldSopPreview, v))
}

// SopPreviewIsNil applies the IsNil predicate on the "sop_preview" field.
func SopPreviewIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldSopPreview))
}

// SopPreviewNotNil applies the NotNil predicate on the "sop_preview" field.
func SopPreviewNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldSopPreview))
}

// SopPreviewEqualFold applies the EqualFold predicate on the "sop_preview" field.
func SopPreviewEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldSopPreview, v))
}

// SopPreviewContainsFold applies the ContainsFold predicate on the "sop_preview" field.
func SopPreviewContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldSopPreview, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.Checkpoint {
	return predicate.Checkpoint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.Checkpoint {
	return predicate.Checkpoint(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.NotPredicates(p))
}
