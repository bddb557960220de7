// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftworks/weft/ent/checkpoint"
	"github.com/weftworks/weft/ent/run"
)

// CheckpointCreate is the builder for creating a Checkpoint entity.
type CheckpointCreate struct {
	config
	mutation *CheckpointMutation
	hooks    []Hook
}

// SetThreadID sets the "thread_id" field.
func (_c *CheckpointCreate) SetThreadID(v string) *CheckpointCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetCheckpointNs sets the "checkpoint_ns" field.
func (_c *CheckpointCreate) SetCheckpointNs(v string) *CheckpointCreate {
	_c.mutation.SetCheckpointNs(v)
	return _c
}

// SetNillableCheckpointNs sets the "checkpoint_ns" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableCheckpointNs(v *string) *CheckpointCreate {
	if v != nil {
		_c.SetCheckpointNs(*v)
	}
	return _c
}

// SetParentCheckpointID sets the "parent_checkpoint_id" field.
func (_c *CheckpointCreate) SetParentCheckpointID(v string) *CheckpointCreate {
	_c.mutation.SetParentCheckpointID(v)
	return _c
}

// SetNillableParentCheckpointID sets the "parent_checkpoint_id" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableParentCheckpointID(v *string) *CheckpointCreate {
	if v != nil {
		_c.SetParentCheckpointID(*v)
	}
	return _c
}

// SetTs sets the "ts" field.
func (_c *CheckpointCreate) SetTs(v time.Time) *CheckpointCreate {
	_c.mutation.SetTs(v)
	return _c
}

// SetNillableTs sets the "ts" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableTs(v *time.Time) *CheckpointCreate {
	if v != nil {
		_c.SetTs(*v)
	}
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *CheckpointCreate) SetWorkspaceID(v string) *CheckpointCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetChannelValues sets the "channel_values" field.
func (_c *CheckpointCreate) SetChannelValues(v map[string]interface{}) *CheckpointCreate {
	_c.mutation.SetChannelValues(v)
	return _c
}

// SetChannelVersions sets the "channel_versions" field.
func (_c *CheckpointCreate) SetChannelVersions(v map[string]interface{}) *CheckpointCreate {
	_c.mutation.SetChannelVersions(v)
	return _c
}

// SetPendingWrites sets the "pending_writes" field.
func (_c *CheckpointCreate) SetPendingWrites(v map[string]interface{}) *CheckpointCreate {
	_c.mutation.SetPendingWrites(v)
	return _c
}

// SetActiveSkill sets the "active_skill" field.
func (_c *CheckpointCreate) SetActiveSkill(v string) *CheckpointCreate {
	_c.mutation.SetActiveSkill(v)
	return _c
}

// SetNillableActiveSkill sets the "active_skill" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableActiveSkill(v *string) *CheckpointCreate {
	if v != nil {
		_c.SetActiveSkill(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CheckpointCreate) SetStatus(v string) *CheckpointCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetRunName sets the "run_name" field.
func (_c *CheckpointCreate) SetRunName(v string) *CheckpointCreate {
	_c.mutation.SetRunName(v)
	return _c
}

// SetNillableRunName sets the "run_name" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableRunName(v *string) *CheckpointCreate {
	if v != nil {
		_c.SetRunName(*v)
	}
	return _c
}

// SetSopPreview sets the "sop_preview" field.
func (_c *CheckpointCreate) SetSopPreview(v string) *CheckpointCreate {
	_c.mutation.SetSopPreview(v)
	return _c
}

// SetNillableSopPreview sets the "sop_preview" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableSopPreview(v *string) *CheckpointCreate {
	if v != nil {
		_c.SetSopPreview(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CheckpointCreate) SetID(v string) *CheckpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRunID sets the "run" edge to the Run entity by ID.
func (_c *CheckpointCreate) SetRunID(id string) *CheckpointCreate {
	_c.mutation.SetRunID(id)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *CheckpointCreate) SetRun(v *Run) *CheckpointCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the CheckpointMutation object of the builder.
func (_c *CheckpointCreate) Mutation() *CheckpointMutation {
	return _c.mutation
}

// Save creates the Checkpoint in the database.
func (_c *CheckpointCreate) Save(ctx context.Context) (*Checkpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckpointCreate) SaveX(ctx context.Context) *Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckpointCreate) defaults() {
	if _, ok := _c.mutation.CheckpointNs(); !ok {
		v := checkpoint.DefaultCheckpointNs
		_c.mutation.SetCheckpointNs(v)
	}
	if _, ok := _c.mutation.Ts(); !ok {
		v := checkpoint.DefaultTs()
		_c.mutation.SetTs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckpointCreate) check() error {
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "Checkpoint.thread_id"`)}
	}
	if _, ok := _c.mutation.CheckpointNs(); !ok {
		return &ValidationError{Name: "checkpoint_ns", err: errors.New(`ent: missing required field "Checkpoint.checkpoint_ns"`)}
	}
	if _, ok := _c.mutation.Ts(); !ok {
		return &ValidationError{Name: "ts", err: errors.New(`ent: missing required field "Checkpoint.ts"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Checkpoint.workspace_id"`)}
	}
	if _, ok := _c.mutation.ChannelValues(); !ok {
		return &ValidationError{Name: "channel_values", err: errors.New(`ent: missing required field "Checkpoint.channel_values"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Checkpoint.status"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "Checkpoint.run"`)}
	}
	return nil
}

func (_c *CheckpointCreate) sqlSave(ctx context.Context) (*Checkpoint, error) {
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
			return nil, fmt.Errorf("unexpected Checkpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CheckpointCreate) createSpec() (*Checkpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &Checkpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkpoint.Table, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CheckpointNs(); ok {
		_spec.SetField(checkpoint.FieldCheckpointNs, field.TypeString, value)
		_node.CheckpointNs = value
	}
	if value, ok := _c.mutation.ParentCheckpointID(); ok {
		_spec.SetField(checkpoint.FieldParentCheckpointID, field.TypeString, value)
		_node.ParentCheckpointID = &value
	}
	if value, ok := _c.mutation.Ts(); ok {
		_spec.SetField(checkpoint.FieldTs, field.TypeTime, value)
		_node.Ts = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(checkpoint.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.ChannelValues(); ok {
		_spec.SetField(checkpoint.FieldChannelValues, field.TypeJSON, value)
		_node.ChannelValues = value
	}
	if value, ok := _c.mutation.ChannelVersions(); ok {
		_spec.SetField(checkpoint.FieldChannelVersions, field.TypeJSON, value)
		_node.ChannelVersions = value
	}
	if value, ok := _c.mutation.PendingWrites(); ok {
		_spec.SetField(checkpoint.FieldPendingWrites, field.TypeJSON, value)
		_node.PendingWrites = value
	}
	if value, ok := _c.mutation.ActiveSkill(); ok {
		_spec.SetField(checkpoint.FieldActiveSkill, field.TypeString, value)
		_node.ActiveSkill = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(checkpoint.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RunName(); ok {
		_spec.SetField(checkpoint.FieldRunName, field.TypeString, value)
		_node.RunName = value
	}
	if value, ok := _c.mutation.SopPreview(); ok {
		_spec.SetField(checkpoint.FieldSopPreview, field.TypeString, value)
		_node.SopPreview = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkpoint.RunTable,
			Columns: []string{checkpoint.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ThreadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CheckpointCreateBulk is the builder for creating many Checkpoint entities in bulk.
type CheckpointCreateBulk struct {
	config
	err      error
	builders []*CheckpointCreate
}

// Save creates the Checkpoint entities in the database.
func (_c *CheckpointCreateBulk) Save(ctx context.Context) ([]*Checkpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Checkpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckpointMutation)
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
func (_c *CheckpointCreateBulk) SaveX(ctx context.Context) []*Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
