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
	"github.com/weftworks/weft/ent/callbackrecord"
	"github.com/weftworks/weft/ent/predicate"
)

// CallbackRecordUpdate is the builder for updating CallbackRecord entities.
type CallbackRecordUpdate struct {
	config
	hooks    []Hook
	mutation *CallbackRecordMutation
}

// Where appends a list predicates to the CallbackRecordUpdate builder.
func (_u *CallbackRecordUpdate) Where(ps ...predicate.CallbackRecord) *CallbackRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConsumedAt sets the "consumed_at" field.
func (_u *CallbackRecordUpdate) SetConsumedAt(v time.Time) *CallbackRecordUpdate {
	_u.mutation.SetConsumedAt(v)
	return _u
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_u *CallbackRecordUpdate) SetNillableConsumedAt(v *time.Time) *CallbackRecordUpdate {
	if v != nil {
		_u.SetConsumedAt(*v)
	}
	return _u
}

// ClearConsumedAt clears the value of the "consumed_at" field.
func (_u *CallbackRecordUpdate) ClearConsumedAt() *CallbackRecordUpdate {
	_u.mutation.ClearConsumedAt()
	return _u
}

// Mutation returns the CallbackRecordMutation object of the builder.
func (_u *CallbackRecordUpdate) Mutation() *CallbackRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CallbackRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallbackRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CallbackRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallbackRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallbackRecordUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CallbackRecord.run"`)
	}
	return nil
}

func (_u *CallbackRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(callbackrecord.Table, callbackrecord.Columns, sqlgraph.NewFieldSpec(callbackrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConsumedAt(); ok {
		_spec.SetField(callbackrecord.FieldConsumedAt, field.TypeTime, value)
	}
	if _u.mutation.ConsumedAtCleared() {
		_spec.ClearField(callbackrecord.FieldConsumedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{callbackrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CallbackRecordUpdateOne is the builder for updating a single CallbackRecord entity.
type CallbackRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CallbackRecordMutation
}

// SetConsumedAt sets the "consumed_at" field.
func (_u *CallbackRecordUpdateOne) SetConsumedAt(v time.Time) *CallbackRecordUpdateOne {
	_u.mutation.SetConsumedAt(v)
	return _u
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_u *CallbackRecordUpdateOne) SetNillableConsumedAt(v *time.Time) *CallbackRecordUpdateOne {
	if v != nil {
		_u.SetConsumedAt(*v)
	}
	return _u
}

// ClearConsumedAt clears the value of the "consumed_at" field.
func (_u *CallbackRecordUpdateOne) ClearConsumedAt() *CallbackRecordUpdateOne {
	_u.mutation.ClearConsumedAt()
	return _u
}

// Mutation returns the CallbackRecordMutation object of the builder.
func (_u *CallbackRecordUpdateOne) Mutation() *CallbackRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the CallbackRecordUpdate builder.
func (_u *CallbackRecordUpdateOne) Where(ps ...predicate.CallbackRecord) *CallbackRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CallbackRecordUpdateOne) Select(field string, fields ...string) *CallbackRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CallbackRecord entity.
func (_u *CallbackRecordUpdateOne) Save(ctx context.Context) (*CallbackRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallbackRecordUpdateOne) SaveX(ctx context.Context) *CallbackRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CallbackRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallbackRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallbackRecordUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CallbackRecord.run"`)
	}
	return nil
}

func (_u *CallbackRecordUpdateOne) sqlSave(ctx context.Context) (_node *CallbackRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(callbackrecord.Table, callbackrecord.Columns, sqlgraph.NewFieldSpec(callbackrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CallbackRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, callbackrecord.FieldID)
		for _, f := range fields {
			if !callbackrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != callbackrecord.FieldID {
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
	if value, ok := _u.mutation.ConsumedAt(); ok {
		_spec.SetField(callbackrecord.FieldConsumedAt, field.TypeTime, value)
	}
	if _u.mutation.ConsumedAtCleared() {
		_spec.ClearField(callbackrecord.FieldConsumedAt, field.TypeTime)
	}
	_node = &CallbackRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{callbackrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
