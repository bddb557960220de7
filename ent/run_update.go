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
	"github.com/weftworks/weft/ent/checkpoint"
	"github.com/weftworks/weft/ent/predicate"
	"github.com/weftworks/weft/ent/run"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks    []Hook
	mutation *RunMutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunName sets the "run_name" field.
func (_u *RunUpdate) SetRunName(v string) *RunUpdate {
	_u.mutation.SetRunName(v)
	return _u
}

// SetNillableRunName sets the "run_name" field if the given value is not nil.
func (_u *RunUpdate) SetNillableRunName(v *string) *RunUpdate {
	if v != nil {
		_u.SetRunName(*v)
	}
	return _u
}

// ClearRunName clears the value of the "run_name" field.
func (_u *RunUpdate) ClearRunName() *RunUpdate {
	_u.mutation.ClearRunName()
	return _u
}

// SetSop sets the "sop" field.
func (_u *RunUpdate) SetSop(v string) *RunUpdate {
	_u.mutation.SetSop(v)
	return _u
}

// SetNillableSop sets the "sop" field if the given value is not nil.
func (_u *RunUpdate) SetNillableSop(v *string) *RunUpdate {
	if v != nil {
		_u.SetSop(*v)
	}
	return _u
}

// SetInitialData sets the "initial_data" field.
func (_u *RunUpdate) SetInitialData(v map[string]interface{}) *RunUpdate {
	_u.mutation.SetInitialData(v)
	return _u
}

// ClearInitialData clears the value of the "initial_data" field.
func (_u *RunUpdate) ClearInitialData() *RunUpdate {
	_u.mutation.ClearInitialData()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdate) SetStatus(v run.Status) *RunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStatus(v *run.Status) *RunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *RunUpdate) SetOwnerID(v string) *RunUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableOwnerID(v *string) *RunUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *RunUpdate) SetWorkspaceID(v string) *RunUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableWorkspaceID(v *string) *RunUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetParentThreadID sets the "parent_thread_id" field.
func (_u *RunUpdate) SetParentThreadID(v string) *RunUpdate {
	_u.mutation.SetParentThreadID(v)
	return _u
}

// SetNillableParentThreadID sets the "parent_thread_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableParentThreadID(v *string) *RunUpdate {
	if v != nil {
		_u.SetParentThreadID(*v)
	}
	return _u
}

// ClearParentThreadID clears the value of the "parent_thread_id" field.
func (_u *RunUpdate) ClearParentThreadID() *RunUpdate {
	_u.mutation.ClearParentThreadID()
	return _u
}

// SetLlmModel sets the "llm_model" field.
func (_u *RunUpdate) SetLlmModel(v string) *RunUpdate {
	_u.mutation.SetLlmModel(v)
	return _u
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_u *RunUpdate) SetNillableLlmModel(v *string) *RunUpdate {
	if v != nil {
		_u.SetLlmModel(*v)
	}
	return _u
}

// ClearLlmModel clears the value of the "llm_model" field.
func (_u *RunUpdate) ClearLlmModel() *RunUpdate {
	_u.mutation.ClearLlmModel()
	return _u
}

// SetAckKey sets the "ack_key" field.
func (_u *RunUpdate) SetAckKey(v string) *RunUpdate {
	_u.mutation.SetAckKey(v)
	return _u
}

// SetNillableAckKey sets the "ack_key" field if the given value is not nil.
func (_u *RunUpdate) SetNillableAckKey(v *string) *RunUpdate {
	if v != nil {
		_u.SetAckKey(*v)
	}
	return _u
}

// ClearAckKey clears the value of the "ack_key" field.
func (_u *RunUpdate) ClearAckKey() *RunUpdate {
	_u.mutation.ClearAckKey()
	return _u
}

// SetActiveSkill sets the "active_skill" field.
func (_u *RunUpdate) SetActiveSkill(v string) *RunUpdate {
	_u.mutation.SetActiveSkill(v)
	return _u
}

// SetNillableActiveSkill sets the "active_skill" field if the given value is not nil.
func (_u *RunUpdate) SetNillableActiveSkill(v *string) *RunUpdate {
	if v != nil {
		_u.SetActiveSkill(*v)
	}
	return _u
}

// ClearActiveSkill clears the value of the "active_skill" field.
func (_u *RunUpdate) ClearActiveSkill() *RunUpdate {
	_u.mutation.ClearActiveSkill()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *RunUpdate) SetLastError(v map[string]interface{}) *RunUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *RunUpdate) ClearLastError() *RunUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetResumePayload sets the "resume_payload" field.
func (_u *RunUpdate) SetResumePayload(v map[string]interface{}) *RunUpdate {
	_u.mutation.SetResumePayload(v)
	return _u
}

// ClearResumePayload clears the value of the "resume_payload" field.
func (_u *RunUpdate) ClearResumePayload() *RunUpdate {
	_u.mutation.ClearResumePayload()
	return _u
}

// SetCallbackPayload sets the "callback_payload" field.
func (_u *RunUpdate) SetCallbackPayload(v map[string]interface{}) *RunUpdate {
	_u.mutation.SetCallbackPayload(v)
	return _u
}

// ClearCallbackPayload clears the value of the "callback_payload" field.
func (_u *RunUpdate) ClearCallbackPayload() *RunUpdate {
	_u.mutation.ClearCallbackPayload()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RunUpdate) SetCreatedAt(v time.Time) *RunUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCreatedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdate) SetStartedAt(v time.Time) *RunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStartedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdate) ClearStartedAt() *RunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdate) SetCompletedAt(v time.Time) *RunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCompletedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdate) ClearCompletedAt() *RunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *RunUpdate) SetPodID(v string) *RunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillablePodID(v *string) *RunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *RunUpdate) ClearPodID() *RunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RunUpdate) SetLastHeartbeatAt(v time.Time) *RunUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableLastHeartbeatAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *RunUpdate) ClearLastHeartbeatAt() *RunUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *RunUpdate) AddCheckpointIDs(ids ...string) *RunUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *RunUpdate) AddCheckpoints(v ...*Checkpoint) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddCallbackIDs adds the "callbacks" edge to the CallbackRecord entity by IDs.
func (_u *RunUpdate) AddCallbackIDs(ids ...string) *RunUpdate {
	_u.mutation.AddCallbackIDs(ids...)
	return _u
}

// AddCallbacks adds the "callbacks" edges to the CallbackRecord entity.
func (_u *RunUpdate) AddCallbacks(v ...*CallbackRecord) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCallbackIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *RunUpdate) ClearCheckpoints() *RunUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *RunUpdate) RemoveCheckpointIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *RunUpdate) RemoveCheckpoints(v ...*Checkpoint) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearCallbacks clears all "callbacks" edges to the CallbackRecord entity.
func (_u *RunUpdate) ClearCallbacks() *RunUpdate {
	_u.mutation.ClearCallbacks()
	return _u
}

// RemoveCallbackIDs removes the "callbacks" edge to CallbackRecord entities by IDs.
func (_u *RunUpdate) RemoveCallbackIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveCallbackIDs(ids...)
	return _u
}

// RemoveCallbacks removes "callbacks" edges to CallbackRecord entities.
func (_u *RunUpdate) RemoveCallbacks(v ...*CallbackRecord) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCallbackIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunName(); ok {
		_spec.SetField(run.FieldRunName, field.TypeString, value)
	}
	if _u.mutation.RunNameCleared() {
		_spec.ClearField(run.FieldRunName, field.TypeString)
	}
	if value, ok := _u.mutation.Sop(); ok {
		_spec.SetField(run.FieldSop, field.TypeString, value)
	}
	if value, ok := _u.mutation.InitialData(); ok {
		_spec.SetField(run.FieldInitialData, field.TypeJSON, value)
	}
	if _u.mutation.InitialDataCleared() {
		_spec.ClearField(run.FieldInitialData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(run.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(run.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentThreadID(); ok {
		_spec.SetField(run.FieldParentThreadID, field.TypeString, value)
	}
	if _u.mutation.ParentThreadIDCleared() {
		_spec.ClearField(run.FieldParentThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.LlmModel(); ok {
		_spec.SetField(run.FieldLlmModel, field.TypeString, value)
	}
	if _u.mutation.LlmModelCleared() {
		_spec.ClearField(run.FieldLlmModel, field.TypeString)
	}
	if value, ok := _u.mutation.AckKey(); ok {
		_spec.SetField(run.FieldAckKey, field.TypeString, value)
	}
	if _u.mutation.AckKeyCleared() {
		_spec.ClearField(run.FieldAckKey, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveSkill(); ok {
		_spec.SetField(run.FieldActiveSkill, field.TypeString, value)
	}
	if _u.mutation.ActiveSkillCleared() {
		_spec.ClearField(run.FieldActiveSkill, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(run.FieldLastError, field.TypeJSON, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(run.FieldLastError, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResumePayload(); ok {
		_spec.SetField(run.FieldResumePayload, field.TypeJSON, value)
	}
	if _u.mutation.ResumePayloadCleared() {
		_spec.ClearField(run.FieldResumePayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.CallbackPayload(); ok {
		_spec.SetField(run.FieldCallbackPayload, field.TypeJSON, value)
	}
	if _u.mutation.CallbackPayloadCleared() {
		_spec.ClearField(run.FieldCallbackPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(run.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(run.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(run.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(run.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CallbacksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCallbacksIDs(); len(nodes) > 0 && !_u.mutation.CallbacksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CallbacksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunMutation
}

// SetRunName sets the "run_name" field.
func (_u *RunUpdateOne) SetRunName(v string) *RunUpdateOne {
	_u.mutation.SetRunName(v)
	return _u
}

// SetNillableRunName sets the "run_name" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableRunName(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetRunName(*v)
	}
	return _u
}

// ClearRunName clears the value of the "run_name" field.
func (_u *RunUpdateOne) ClearRunName() *RunUpdateOne {
	_u.mutation.ClearRunName()
	return _u
}

// SetSop sets the "sop" field.
func (_u *RunUpdateOne) SetSop(v string) *RunUpdateOne {
	_u.mutation.SetSop(v)
	return _u
}

// SetNillableSop sets the "sop" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableSop(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetSop(*v)
	}
	return _u
}

// SetInitialData sets the "initial_data" field.
func (_u *RunUpdateOne) SetInitialData(v map[string]interface{}) *RunUpdateOne {
	_u.mutation.SetInitialData(v)
	return _u
}

// ClearInitialData clears the value of the "initial_data" field.
func (_u *RunUpdateOne) ClearInitialData() *RunUpdateOne {
	_u.mutation.ClearInitialData()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdateOne) SetStatus(v run.Status) *RunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStatus(v *run.Status) *RunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *RunUpdateOne) SetOwnerID(v string) *RunUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableOwnerID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *RunUpdateOne) SetWorkspaceID(v string) *RunUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableWorkspaceID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetParentThreadID sets the "parent_thread_id" field.
func (_u *RunUpdateOne) SetParentThreadID(v string) *RunUpdateOne {
	_u.mutation.SetParentThreadID(v)
	return _u
}

// SetNillableParentThreadID sets the "parent_thread_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableParentThreadID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetParentThreadID(*v)
	}
	return _u
}

// ClearParentThreadID clears the value of the "parent_thread_id" field.
func (_u *RunUpdateOne) ClearParentThreadID() *RunUpdateOne {
	_u.mutation.ClearParentThreadID()
	return _u
}

// SetLlmModel sets the "llm_model" field.
func (_u *RunUpdateOne) SetLlmModel(v string) *RunUpdateOne {
	_u.mutation.SetLlmModel(v)
	return _u
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableLlmModel(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetLlmModel(*v)
	}
	return _u
}

// ClearLlmModel clears the value of the "llm_model" field.
func (_u *RunUpdateOne) ClearLlmModel() *RunUpdateOne {
	_u.mutation.ClearLlmModel()
	return _u
}

// SetAckKey sets the "ack_key" field.
func (_u *RunUpdateOne) SetAckKey(v string) *RunUpdateOne {
	_u.mutation.SetAckKey(v)
	return _u
}

// SetNillableAckKey sets the "ack_key" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableAckKey(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetAckKey(*v)
	}
	return _u
}

// ClearAckKey clears the value of the "ack_key" field.
func (_u *RunUpdateOne) ClearAckKey() *RunUpdateOne {
	_u.mutation.ClearAckKey()
	return _u
}

// SetActiveSkill sets the "active_skill" field.
func (_u *RunUpdateOne) SetActiveSkill(v string) *RunUpdateOne {
	_u.mutation.SetActiveSkill(v)
	return _u
}

// SetNillableActiveSkill sets the "active_skill" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableActiveSkill(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetActiveSkill(*v)
	}
	return _u
}

// ClearActiveSkill clears the value of the "active_skill" field.
func (_u *RunUpdateOne) ClearActiveSkill() *RunUpdateOne {
	_u.mutation.ClearActiveSkill()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *RunUpdateOne) SetLastError(v map[string]interface{}) *RunUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *RunUpdateOne) ClearLastError() *RunUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetResumePayload sets the "resume_payload" field.
func (_u *RunUpdateOne) SetResumePayload(v map[string]interface{}) *RunUpdateOne {
	_u.mutation.SetResumePayload(v)
	return _u
}

// ClearResumePayload clears the value of the "resume_payload" field.
func (_u *RunUpdateOne) ClearResumePayload() *RunUpdateOne {
	_u.mutation.ClearResumePayload()
	return _u
}

// SetCallbackPayload sets the "callback_payload" field.
func (_u *RunUpdateOne) SetCallbackPayload(v map[string]interface{}) *RunUpdateOne {
	_u.mutation.SetCallbackPayload(v)
	return _u
}

// ClearCallbackPayload clears the value of the "callback_payload" field.
func (_u *RunUpdateOne) ClearCallbackPayload() *RunUpdateOne {
	_u.mutation.ClearCallbackPayload()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RunUpdateOne) SetCreatedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCreatedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdateOne) SetStartedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStartedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdateOne) ClearStartedAt() *RunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdateOne) SetCompletedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCompletedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdateOne) ClearCompletedAt() *RunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *RunUpdateOne) SetPodID(v string) *RunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillablePodID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *RunUpdateOne) ClearPodID() *RunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RunUpdateOne) SetLastHeartbeatAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *RunUpdateOne) ClearLastHeartbeatAt() *RunUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *RunUpdateOne) AddCheckpointIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *RunUpdateOne) AddCheckpoints(v ...*Checkpoint) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddCallbackIDs adds the "callbacks" edge to the CallbackRecord entity by IDs.
func (_u *RunUpdateOne) AddCallbackIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddCallbackIDs(ids...)
	return _u
}

// AddCallbacks adds the "callbacks" edges to the CallbackRecord entity.
func (_u *RunUpdateOne) AddCallbacks(v ...*CallbackRecord) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCallbackIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *RunUpdateOne) ClearCheckpoints() *RunUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *RunUpdateOne) RemoveCheckpointIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *RunUpdateOne) RemoveCheckpoints(v ...*Checkpoint) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearCallbacks clears all "callbacks" edges to the CallbackRecord entity.
func (_u *RunUpdateOne) ClearCallbacks() *RunUpdateOne {
	_u.mutation.ClearCallbacks()
	return _u
}

// RemoveCallbackIDs removes the "callbacks" edge to CallbackRecord entities by IDs.
func (_u *RunUpdateOne) RemoveCallbackIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveCallbackIDs(ids...)
	return _u
}

// RemoveCallbacks removes "callbacks" edges to CallbackRecord entities.
func (_u *RunUpdateOne) RemoveCallbacks(v ...*CallbackRecord) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCallbackIDs(ids...)
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
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
	if value, ok := _u.mutation.RunName(); ok {
		_spec.SetField(run.FieldRunName, field.TypeString, value)
	}
	if _u.mutation.RunNameCleared() {
		_spec.ClearField(run.FieldRunName, field.TypeString)
	}
	if value, ok := _u.mutation.Sop(); ok {
		_spec.SetField(run.FieldSop, field.TypeString, value)
	}
	if value, ok := _u.mutation.InitialData(); ok {
		_spec.SetField(run.FieldInitialData, field.TypeJSON, value)
	}
	if _u.mutation.InitialDataCleared() {
		_spec.ClearField(run.FieldInitialData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(run.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(run.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentThreadID(); ok {
		_spec.SetField(run.FieldParentThreadID, field.TypeString, value)
	}
	if _u.mutation.ParentThreadIDCleared() {
		_spec.ClearField(run.FieldParentThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.LlmModel(); ok {
		_spec.SetField(run.FieldLlmModel, field.TypeString, value)
	}
	if _u.mutation.LlmModelCleared() {
		_spec.ClearField(run.FieldLlmModel, field.TypeString)
	}
	if value, ok := _u.mutation.AckKey(); ok {
		_spec.SetField(run.FieldAckKey, field.TypeString, value)
	}
	if _u.mutation.AckKeyCleared() {
		_spec.ClearField(run.FieldAckKey, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveSkill(); ok {
		_spec.SetField(run.FieldActiveSkill, field.TypeString, value)
	}
	if _u.mutation.ActiveSkillCleared() {
		_spec.ClearField(run.FieldActiveSkill, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(run.FieldLastError, field.TypeJSON, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(run.FieldLastError, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResumePayload(); ok {
		_spec.SetField(run.FieldResumePayload, field.TypeJSON, value)
	}
	if _u.mutation.ResumePayloadCleared() {
		_spec.ClearField(run.FieldResumePayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.CallbackPayload(); ok {
		_spec.SetField(run.FieldCallbackPayload, field.TypeJSON, value)
	}
	if _u.mutation.CallbackPayloadCleared() {
		_spec.ClearField(run.FieldCallbackPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(run.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(run.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(run.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(run.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CallbacksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCallbacksIDs(); len(nodes) > 0 && !_u.mutation.CallbacksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CallbacksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
