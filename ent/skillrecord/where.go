// Code generated by ent, DO NOT EDIT.

package skillrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/weftworks/weft/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEQ(FieldName, v))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEQ(FieldWorkspaceID, v))
}

// IsPublic applies equality check predicate on the "is_public" field. It's identical to IsPublicEQ.
func IsPublic(v bool) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEQ(FieldIsPublic, v))
}

// Manifest applies equality check predicate on the "manifest" field. It's identical to ManifestEQ.
func Manifest(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEQ(FieldManifest, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldContainsFold(FieldName, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// IsPublicEQ applies the EQ predicate on the "is_public" field.
func IsPublicEQ(v bool) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEQ(FieldIsPublic, v))
}

// IsPublicNEQ applies the NEQ predicate on the "is_public" field.
func IsPublicNEQ(v bool) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldNEQ(FieldIsPublic, v))
}

// ManifestEQ applies the EQ predicate on the "manifest" field.
func ManifestEQ(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEQ(FieldManifest, v))
}

// ManifestNEQ applies the NEQ predicate on the "manifest" field.
func ManifestNEQ(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldNEQ(FieldManifest, v))
}

// ManifestIn applies the In predicate on the "manifest" field.
func ManifestIn(vs ...string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldIn(FieldManifest, vs...))
}

// ManifestNotIn applies the NotIn predicate on the "manifest" field.
func ManifestNotIn(vs ...string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldNotIn(FieldManifest, vs...))
}

// ManifestGT applies the GT predicate on the "manifest" field.
func ManifestGT(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldGT(FieldManifest, v))
}

// ManifestGTE applies the GTE predicate on the "manifest" field.
func ManifestGTE(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldGTE(FieldManifest, v))
}

// ManifestLT applies the LT predicate on the "manifest" field.
func ManifestLT(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldLT(FieldManifest, v))
}

// ManifestLTE applies the LTE predicate on the "manifest" field.
func ManifestLTE(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldLTE(FieldManifest, v))
}

// ManifestContains applies the Contains predicate on the "manifest" field.
func ManifestContains(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldContains(FieldManifest, v))
}

// ManifestHasPrefix applies the HasPrefix predicate on the "manifest" field.
func ManifestHasPrefix(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldHasPrefix(FieldManifest, v))
}

// ManifestHasSuffix applies the HasSuffix predicate on the "manifest" field.
func ManifestHasSuffix(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldHasSuffix(FieldManifest, v))
}

// ManifestEqualFold applies the EqualFold predicate on the "manifest" field.
func ManifestEqualFold(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEqualFold(FieldManifest, v))
}

// ManifestContainsFold applies the ContainsFold predicate on the "manifest" field.
func ManifestContainsFold(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldContainsFold(FieldManifest, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SkillRecord {
	return predicate.SkillRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SkillRecord) predicate.SkillRecord {
	return predicate.SkillRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SkillRecord) predicate.SkillRecord {
	return predicate.SkillRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SkillRecord) predicate.SkillRecord {
	return predicate.SkillRecord(sql.NotPredicates(p))
}
