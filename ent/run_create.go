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
	"github.com/weftworks/weft/ent/checkpoint"
	"github.com/weftworks/weft/ent/run"
)

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
}

// SetRunName sets the "run_name" field.
func (_c *RunCreate) SetRunName(v string) *RunCreate {
	_c.mutation.SetRunName(v)
	return _c
}

// SetNillableRunName sets the "run_name" field if the given value is not nil.
func (_c *RunCreate) SetNillableRunName(v *string) *RunCreate {
	if v != nil {
		_c.SetRunName(*v)
	}
	return _c
}

// SetSop sets the "sop" field.
func (_c *RunCreate) SetSop(v string) *RunCreate {
	_c.mutation.SetSop(v)
	return _c
}

// SetInitialData sets the "initial_data" field.
func (_c *RunCreate) SetInitialData(v map[string]interface{}) *RunCreate {
	_c.mutation.SetInitialData(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunCreate) SetStatus(v run.Status) *RunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunCreate) SetNillableStatus(v *run.Status) *RunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *RunCreate) SetOwnerID(v string) *RunCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *RunCreate) SetWorkspaceID(v string) *RunCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetParentThreadID sets the "parent_thread_id" field.
func (_c *RunCreate) SetParentThreadID(v string) *RunCreate {
	_c.mutation.SetParentThreadID(v)
	return _c
}

// SetNillableParentThreadID sets the "parent_thread_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableParentThreadID(v *string) *RunCreate {
	if v != nil {
		_c.SetParentThreadID(*v)
	}
	return _c
}

// SetLlmModel sets the "llm_model" field.
func (_c *RunCreate) SetLlmModel(v string) *RunCreate {
	_c.mutation.SetLlmModel(v)
	return _c
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_c *RunCreate) SetNillableLlmModel(v *string) *RunCreate {
	if v != nil {
		_c.SetLlmModel(*v)
	}
	return _c
}

// SetAckKey sets the "ack_key" field.
func (_c *RunCreate) SetAckKey(v string) *RunCreate {
	_c.mutation.SetAckKey(v)
	return _c
}

// SetNillableAckKey sets the "ack_key" field if the given value is not nil.
func (_c *RunCreate) SetNillableAckKey(v *string) *RunCreate {
	if v != nil {
		_c.SetAckKey(*v)
	}
	return _c
}

// SetActiveSkill sets the "active_skill" field.
func (_c *RunCreate) SetActiveSkill(v string) *RunCreate {
	_c.mutation.SetActiveSkill(v)
	return _c
}

// SetNillableActiveSkill sets the "active_skill" field if the given value is not nil.
func (_c *RunCreate) SetNillableActiveSkill(v *string) *RunCreate {
	if v != nil {
		_c.SetActiveSkill(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *RunCreate) SetLastError(v map[string]interface{}) *RunCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetResumePayload sets the "resume_payload" field.
func (_c *RunCreate) SetResumePayload(v map[string]interface{}) *RunCreate {
	_c.mutation.SetResumePayload(v)
	return _c
}

// SetCallbackPayload sets the "callback_payload" field.
func (_c *RunCreate) SetCallbackPayload(v map[string]interface{}) *RunCreate {
	_c.mutation.SetCallbackPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunCreate) SetCreatedAt(v time.Time) *RunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunCreate) SetStartedAt(v time.Time) *RunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableStartedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RunCreate) SetCompletedAt(v time.Time) *RunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCompletedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *RunCreate) SetPodID(v string) *RunCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *RunCreate) SetNillablePodID(v *string) *RunCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *RunCreate) SetLastHeartbeatAt(v time.Time) *RunCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableLastHeartbeatAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v string) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_c *RunCreate) AddCheckpointIDs(ids ...string) *RunCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_c *RunCreate) AddCheckpoints(v ...*Checkpoint) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// AddCallbackIDs adds the "callbacks" edge to the CallbackRecord entity by IDs.
func (_c *RunCreate) AddCallbackIDs(ids ...string) *RunCreate {
	_c.mutation.AddCallbackIDs(ids...)
	return _c
}

// AddCallbacks adds the "callbacks" edges to the CallbackRecord entity.
func (_c *RunCreate) AddCallbacks(v ...*CallbackRecord) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCallbackIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := run.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := run.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.Sop(); !ok {
		return &ValidationError{Name: "sop", err: errors.New(`ent: missing required field "Run.sop"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Run.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Run.owner_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Run.workspace_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Run.created_at"`)}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
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
			return nil, fmt.Errorf("unexpected Run.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RunName(); ok {
		_spec.SetField(run.FieldRunName, field.TypeString, value)
		_node.RunName = &value
	}
	if value, ok := _c.mutation.Sop(); ok {
		_spec.SetField(run.FieldSop, field.TypeString, value)
		_node.Sop = value
	}
	if value, ok := _c.mutation.InitialData(); ok {
		_spec.SetField(run.FieldInitialData, field.TypeJSON, value)
		_node.InitialData = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(run.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(run.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.ParentThreadID(); ok {
		_spec.SetField(run.FieldParentThreadID, field.TypeString, value)
		_node.ParentThreadID = &value
	}
	if value, ok := _c.mutation.LlmModel(); ok {
		_spec.SetField(run.FieldLlmModel, field.TypeString, value)
		_node.LlmModel = &value
	}
	if value, ok := _c.mutation.AckKey(); ok {
		_spec.SetField(run.FieldAckKey, field.TypeString, value)
		_node.AckKey = &value
	}
	if value, ok := _c.mutation.ActiveSkill(); ok {
		_spec.SetField(run.FieldActiveSkill, field.TypeString, value)
		_node.ActiveSkill = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(run.FieldLastError, field.TypeJSON, value)
		_node.LastError = value
	}
	if value, ok := _c.mutation.ResumePayload(); ok {
		_spec.SetField(run.FieldResumePayload, field.TypeJSON, value)
		_node.ResumePayload = value
	}
	if value, ok := _c.mutation.CallbackPayload(); ok {
		_spec.SetField(run.FieldCallbackPayload, field.TypeJSON, value)
		_node.CallbackPayload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(run.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(run.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.CheckpointsTable,
			Columns: []string{run.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CallbacksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.CallbacksTable,
			Columns: []string{run.CallbacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(callbackrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
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
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
