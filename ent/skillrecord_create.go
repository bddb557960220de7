// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftworks/weft/ent/skillrecord"
)

// SkillRecordCreate is the builder for creating a SkillRecord entity.
type SkillRecordCreate struct {
	config
	mutation *SkillRecordMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SkillRecordCreate) SetName(v string) *SkillRecordCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *SkillRecordCreate) SetWorkspaceID(v string) *SkillRecordCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetIsPublic sets the "is_public" field.
func (_c *SkillRecordCreate) SetIsPublic(v bool) *SkillRecordCreate {
	_c.mutation.SetIsPublic(v)
	return _c
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_c *SkillRecordCreate) SetNillableIsPublic(v *bool) *SkillRecordCreate {
	if v != nil {
		_c.SetIsPublic(*v)
	}
	return _c
}

// SetManifest sets the "manifest" field.
func (_c *SkillRecordCreate) SetManifest(v string) *SkillRecordCreate {
	_c.mutation.SetManifest(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *SkillRecordCreate) SetCreatedBy(v string) *SkillRecordCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *SkillRecordCreate) SetNillableCreatedBy(v *string) *SkillRecordCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SkillRecordCreate) SetCreatedAt(v time.Time) *SkillRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SkillRecordCreate) SetNillableCreatedAt(v *time.Time) *SkillRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SkillRecordCreate) SetUpdatedAt(v time.Time) *SkillRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SkillRecordCreate) SetNillableUpdatedAt(v *time.Time) *SkillRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SkillRecordCreate) SetID(v string) *SkillRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SkillRecordMutation object of the builder.
func (_c *SkillRecordCreate) Mutation() *SkillRecordMutation {
	return _c.mutation
}

// Save creates the SkillRecord in the database.
func (_c *SkillRecordCreate) Save(ctx context.Context) (*SkillRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillRecordCreate) SaveX(ctx context.Context) *SkillRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillRecordCreate) defaults() {
	if _, ok := _c.mutation.IsPublic(); !ok {
		v := skillrecord.DefaultIsPublic
		_c.mutation.SetIsPublic(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := skillrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := skillrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillRecordCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SkillRecord.name"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "SkillRecord.workspace_id"`)}
	}
	if _, ok := _c.mutation.IsPublic(); !ok {
		return &ValidationError{Name: "is_public", err: errors.New(`ent: missing required field "SkillRecord.is_public"`)}
	}
	if _, ok := _c.mutation.Manifest(); !ok {
		return &ValidationError{Name: "manifest", err: errors.New(`ent: missing required field "SkillRecord.manifest"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SkillRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SkillRecord.updated_at"`)}
	}
	return nil
}

func (_c *SkillRecordCreate) sqlSave(ctx context.Context) (*SkillRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SkillRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SkillRecordCreate) createSpec() (*SkillRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skillrecord.Table, sqlgraph.NewFieldSpec(skillrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(skillrecord.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(skillrecord.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.IsPublic(); ok {
		_spec.SetField(skillrecord.FieldIsPublic, field.TypeBool, value)
		_node.IsPublic = value
	}
	if value, ok := _c.mutation.Manifest(); ok {
		_spec.SetField(skillrecord.FieldManifest, field.TypeString, value)
		_node.Manifest = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(skillrecord.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(skillrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(skillrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SkillRecordCreateBulk is the builder for creating many SkillRecord entities in bulk.
type SkillRecordCreateBulk struct {
	config
	err      error
	builders []*SkillRecordCreate
}

// Save creates the SkillRecord entities in the database.
func (_c *SkillRecordCreateBulk) Save(ctx context.Context) ([]*SkillRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SkillRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SkillRecordCreateBulk) SaveX(ctx context.Context) []*SkillRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
