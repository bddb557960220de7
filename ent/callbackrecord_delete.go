// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftworks/weft/ent/callbackrecord"
	"github.com/weftworks/weft/ent/predicate"
)

// CallbackRecordDelete is the builder for deleting a CallbackRecord entity.
type CallbackRecordDelete struct {
	config
	hooks    []Hook
	mutation *CallbackRecordMutation
}

// Where appends a list predicates to the CallbackRecordDelete builder.
func (_d *CallbackRecordDelete) Where(ps ...predicate.CallbackRecord) *CallbackRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CallbackRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CallbackRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CallbackRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(callbackrecord.Table, sqlgraph.NewFieldSpec(callbackrecord.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CallbackRecordDeleteOne is the builder for deleting a single CallbackRecord entity.
type CallbackRecordDeleteOne struct {
	_d *CallbackRecordDelete
}

// Where appends a list predicates to the CallbackRecordDelete builder.
func (_d *CallbackRecordDeleteOne) Where(ps ...predicate.CallbackRecord) *CallbackRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CallbackRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{callbackrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CallbackRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
