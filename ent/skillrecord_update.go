// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftworks/weft/ent/predicate"
	"github.com/weftworks/weft/ent/skillrecord"
)

// SkillRecordUpdate is the builder for updating SkillRecord entities.
type SkillRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SkillRecordMutation
}

// Where appends a list predicates to the SkillRecordUpdate builder.
func (_u *SkillRecordUpdate) Where(ps ...predicate.SkillRecord) *SkillRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SkillRecordUpdate) SetName(v string) *SkillRecordUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SkillRecordUpdate) SetNillableName(v *string) *SkillRecordUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *SkillRecordUpdate) SetWorkspaceID(v string) *SkillRecordUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *SkillRecordUpdate) SetNillableWorkspaceID(v *string) *SkillRecordUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetIsPublic sets the "is_public" field.
func (_u *SkillRecordUpdate) SetIsPublic(v bool) *SkillRecordUpdate {
	_u.mutation.SetIsPublic(v)
	return _u
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_u *SkillRecordUpdate) SetNillableIsPublic(v *bool) *SkillRecordUpdate {
	if v != nil {
		_u.SetIsPublic(*v)
	}
	return _u
}

// SetManifest sets the "manifest" field.
func (_u *SkillRecordUpdate) SetManifest(v string) *SkillRecordUpdate {
	_u.mutation.SetManifest(v)
	return _u
}

// SetNillableManifest sets the "manifest" field if the given value is not nil.
func (_u *SkillRecordUpdate) SetNillableManifest(v *string) *SkillRecordUpdate {
	if v != nil {
		_u.SetManifest(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *SkillRecordUpdate) SetCreatedBy(v string) *SkillRecordUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *SkillRecordUpdate) SetNillableCreatedBy(v *string) *SkillRecordUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *SkillRecordUpdate) ClearCreatedBy() *SkillRecordUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SkillRecordUpdate) SetCreatedAt(v time.Time) *SkillRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SkillRecordUpdate) SetNillableCreatedAt(v *time.Time) *SkillRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillRecordUpdate) SetUpdatedAt(v time.Time) *SkillRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SkillRecordMutation object of the builder.
func (_u *SkillRecordUpdate) Mutation() *SkillRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SkillRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(skillrecord.Table, skillrecord.Columns, sqlgraph.NewFieldSpec(skillrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(skillrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(skillrecord.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPublic(); ok {
		_spec.SetField(skillrecord.FieldIsPublic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Manifest(); ok {
		_spec.SetField(skillrecord.FieldManifest, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(skillrecord.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(skillrecord.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(skillrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skillrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillRecordUpdateOne is the builder for updating a single SkillRecord entity.
type SkillRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillRecordMutation
}

// SetName sets the "name" field.
func (_u *SkillRecordUpdateOne) SetName(v string) *SkillRecordUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SkillRecordUpdateOne) SetNillableName(v *string) *SkillRecordUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *SkillRecordUpdateOne) SetWorkspaceID(v string) *SkillRecordUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *SkillRecordUpdateOne) SetNillableWorkspaceID(v *string) *SkillRecordUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetIsPublic sets the "is_public" field.
func (_u *SkillRecordUpdateOne) SetIsPublic(v bool) *SkillRecordUpdateOne {
	_u.mutation.SetIsPublic(v)
	return _u
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_u *SkillRecordUpdateOne) SetNillableIsPublic(v *bool) *SkillRecordUpdateOne {
	if v != nil {
		_u.SetIsPublic(*v)
	}
	return _u
}

// SetManifest sets the "manifest" field.
func (_u *SkillRecordUpdateOne) SetManifest(v string) *SkillRecordUpdateOne {
	_u.mutation.SetManifest(v)
	return _u
}

// SetNillableManifest sets the "manifest" field if the given value is not nil.
func (_u *SkillRecordUpdateOne) SetNillableManifest(v *string) *SkillRecordUpdateOne {
	if v != nil {
		_u.SetManifest(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *SkillRecordUpdateOne) SetCreatedBy(v string) *SkillRecordUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *SkillRecordUpdateOne) SetNillableCreatedBy(v *string) *SkillRecordUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *SkillRecordUpdateOne) ClearCreatedBy() *SkillRecordUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SkillRecordUpdateOne) SetCreatedAt(v time.Time) *SkillRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SkillRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *SkillRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillRecordUpdateOne) SetUpdatedAt(v time.Time) *SkillRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SkillRecordMutation object of the builder.
func (_u *SkillRecordUpdateOne) Mutation() *SkillRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillRecordUpdate builder.
func (_u *SkillRecordUpdateOne) Where(ps ...predicate.SkillRecord) *SkillRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillRecordUpdateOne) Select(field string, fields ...string) *SkillRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SkillRecord entity.
func (_u *SkillRecordUpdateOne) Save(ctx context.Context) (*SkillRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillRecordUpdateOne) SaveX(ctx context.Context) *SkillRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SkillRecordUpdateOne) sqlSave(ctx context.Context) (_node *SkillRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(skillrecord.Table, skillrecord.Columns, sqlgraph.NewFieldSpec(skillrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillrecord.FieldID)
		for _, f := range fields {
			if !skillrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(skillrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(skillrecord.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPublic(); ok {
		_spec.SetField(skillrecord.FieldIsPublic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Manifest(); ok {
		_spec.SetField(skillrecord.FieldManifest, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(skillrecord.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(skillrecord.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(skillrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skillrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SkillRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
