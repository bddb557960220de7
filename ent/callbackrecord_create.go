// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftworks/weft/ent/callbackrecord"
	"github.com/weftworks/weft/ent/run"
)

// CallbackRecordCreate is the builder for creating a CallbackRecord entity.
type CallbackRecordCreate struct {
	config
	mutation *CallbackRecordMutation
	hooks    []Hook
}

// SetCorrelationToken sets the "correlation_token" field.
func (_c *CallbackRecordCreate) SetCorrelationToken(v string) *CallbackRecordCreate {
	_c.mutation.SetCorrelationToken(v)
	return _c
}

// SetThreadID sets the "thread_id" field.
func (_c *CallbackRecordCreate) SetThreadID(v string) *CallbackRecordCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetSkillName sets the "skill_name" field.
func (_c *CallbackRecordCreate) SetSkillName(v string) *CallbackRecordCreate {
	_c.mutation.SetSkillName(v)
	return _c
}

// SetDeadlineTs sets the "deadline_ts" field.
func (_c *CallbackRecordCreate) SetDeadlineTs(v time.Time) *CallbackRecordCreate {
	_c.mutation.SetDeadlineTs(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CallbackRecordCreate) SetCreatedAt(v time.Time) *CallbackRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CallbackRecordCreate) SetNillableCreatedAt(v *time.Time) *CallbackRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetConsumedAt sets the "consumed_at" field.
func (_c *CallbackRecordCreate) SetConsumedAt(v time.Time) *CallbackRecordCreate {
	_c.mutation.SetConsumedAt(v)
	return _c
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_c *CallbackRecordCreate) SetNillableConsumedAt(v *time.Time) *CallbackRecordCreate {
	if v != nil {
		_c.SetConsumedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CallbackRecordCreate) SetID(v string) *CallbackRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRunID sets the "run" edge to the Run entity by ID.
func (_c *CallbackRecordCreate) SetRunID(id string) *CallbackRecordCreate {
	_c.mutation.SetRunID(id)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *CallbackRecordCreate) SetRun(v *Run) *CallbackRecordCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the CallbackRecordMutation object of the builder.
func (_c *CallbackRecordCreate) Mutation() *CallbackRecordMutation {
	return _c.mutation
}

// Save creates the CallbackRecord in the database.
func (_c *CallbackRecordCreate) Save(ctx context.Context) (*CallbackRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CallbackRecordCreate) SaveX(ctx context.Context) *CallbackRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallbackRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallbackRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CallbackRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := callbackrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CallbackRecordCreate) check() error {
	if _, ok := _c.mutation.CorrelationToken(); !ok {
		return &ValidationError{Name: "correlation_token", err: errors.New(`ent: missing required field "CallbackRecord.correlation_token"`)}
	}
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "CallbackRecord.thread_id"`)}
	}
	if _, ok := _c.mutation.SkillName(); !ok {
		return &ValidationError{Name: "skill_name", err: errors.New(`ent: missing required field "CallbackRecord.skill_name"`)}
	}
	if _, ok := _c.mutation.DeadlineTs(); !ok {
		return &ValidationError{Name: "deadline_ts", err: errors.New(`ent: missing required field "CallbackRecord.deadline_ts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CallbackRecord.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "CallbackRecord.run"`)}
	}
	return nil
}

func (_c *CallbackRecordCreate) sqlSave(ctx context.Context) (*CallbackRecord, error) {
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
			return nil, fmt.Errorf("unexpected CallbackRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CallbackRecordCreate) createSpec() (*CallbackRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &CallbackRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(callbackrecord.Table, sqlgraph.NewFieldSpec(callbackrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CorrelationToken(); ok {
		_spec.SetField(callbackrecord.FieldCorrelationToken, field.TypeString, value)
		_node.CorrelationToken = value
	}
	if value, ok := _c.mutation.SkillName(); ok {
		_spec.SetField(callbackrecord.FieldSkillName, field.TypeString, value)
		_node.SkillName = value
	}
	if value, ok := _c.mutation.DeadlineTs(); ok {
		_spec.SetField(callbackrecord.FieldDeadlineTs, field.TypeTime, value)
		_node.DeadlineTs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(callbackrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ConsumedAt(); ok {
		_spec.SetField(callbackrecord.FieldConsumedAt, field.TypeTime, value)
		_node.ConsumedAt = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   callbackrecord.RunTable,
			Columns: []string{callbackrecord.RunColumn},
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

// CallbackRecordCreateBulk is the builder for creating many CallbackRecord entities in bulk.
type CallbackRecordCreateBulk struct {
	config
	err      error
	builders []*CallbackRecordCreate
}

// Save creates the CallbackRecord entities in the database.
func (_c *CallbackRecordCreateBulk) Save(ctx context.Context) ([]*CallbackRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CallbackRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CallbackRecordMutation)
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
func (_c *CallbackRecordCreateBulk) SaveX(ctx context.Context) []*CallbackRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallbackRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallbackRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
