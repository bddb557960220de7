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
	"github.com/weftworks/weft/ent/credential"
	"github.com/weftworks/weft/ent/predicate"
)

// CredentialUpdate is the builder for updating Credential entities.
type CredentialUpdate struct {
	config
	hooks    []Hook
	mutation *CredentialMutation
}

// Where appends a list predicates to the CredentialUpdate builder.
func (_u *CredentialUpdate) Where(ps ...predicate.Credential) *CredentialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRef sets the "ref" field.
func (_u *CredentialUpdate) SetRef(v string) *CredentialUpdate {
	_u.mutation.SetRef(v)
	return _u
}

// SetNillableRef sets the "ref" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableRef(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetRef(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *CredentialUpdate) SetSource(v string) *CredentialUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableSource(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDsn sets the "dsn" field.
func (_u *CredentialUpdate) SetDsn(v string) *CredentialUpdate {
	_u.mutation.SetDsn(v)
	return _u
}

// SetNillableDsn sets the "dsn" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableDsn(v *string) *CredentialUpdate {
	if v != nil {
		_u.SetDsn(*v)
	}
	return _u
}

// SetParams sets the "params" field.
func (_u *CredentialUpdate) SetParams(v map[string]string) *CredentialUpdate {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *CredentialUpdate) ClearParams() *CredentialUpdate {
	_u.mutation.ClearParams()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CredentialUpdate) SetCreatedAt(v time.Time) *CredentialUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CredentialUpdate) SetNillableCreatedAt(v *time.Time) *CredentialUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the CredentialMutation object of the builder.
func (_u *CredentialUpdate) Mutation() *CredentialMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CredentialUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CredentialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CredentialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CredentialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CredentialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(credential.Table, credential.Columns, sqlgraph.NewFieldSpec(credential.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ref(); ok {
		_spec.SetField(credential.FieldRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(credential.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dsn(); ok {
		_spec.SetField(credential.FieldDsn, field.TypeString, value)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(credential.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(credential.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(credential.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{credential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CredentialUpdateOne is the builder for updating a single Credential entity.
type CredentialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CredentialMutation
}

// SetRef sets the "ref" field.
func (_u *CredentialUpdateOne) SetRef(v string) *CredentialUpdateOne {
	_u.mutation.SetRef(v)
	return _u
}

// SetNillableRef sets the "ref" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableRef(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetRef(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *CredentialUpdateOne) SetSource(v string) *CredentialUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableSource(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDsn sets the "dsn" field.
func (_u *CredentialUpdateOne) SetDsn(v string) *CredentialUpdateOne {
	_u.mutation.SetDsn(v)
	return _u
}

// SetNillableDsn sets the "dsn" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableDsn(v *string) *CredentialUpdateOne {
	if v != nil {
		_u.SetDsn(*v)
	}
	return _u
}

// SetParams sets the "params" field.
func (_u *CredentialUpdateOne) SetParams(v map[string]string) *CredentialUpdateOne {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *CredentialUpdateOne) ClearParams() *CredentialUpdateOne {
	_u.mutation.ClearParams()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CredentialUpdateOne) SetCreatedAt(v time.Time) *CredentialUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CredentialUpdateOne) SetNillableCreatedAt(v *time.Time) *CredentialUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the CredentialMutation object of the builder.
func (_u *CredentialUpdateOne) Mutation() *CredentialMutation {
	return _u.mutation
}

// Where appends a list predicates to the CredentialUpdate builder.
func (_u *CredentialUpdateOne) Where(ps ...predicate.Credential) *CredentialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CredentialUpdateOne) Select(field string, fields ...string) *CredentialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Credential entity.
func (_u *CredentialUpdateOne) Save(ctx context.Context) (*Credential, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CredentialUpdateOne) SaveX(ctx context.Context) *Credential {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CredentialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CredentialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CredentialUpdateOne) sqlSave(ctx context.Context) (_node *Credential, err error) {
	_spec := sqlgraph.NewUpdateSpec(credential.Table, credential.Columns, sqlgraph.NewFieldSpec(credential.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Credential.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, credential.FieldID)
		for _, f := range fields {
			if !credential.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != credential.FieldID {
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
	if value, ok := _u.mutation.Ref(); ok {
		_spec.SetField(credential.FieldRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(credential.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dsn(); ok {
		_spec.SetField(credential.FieldDsn, field.TypeString, value)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(credential.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(credential.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(credential.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Credential{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{credential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
