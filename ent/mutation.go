// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/weftworks/weft/ent/callbackrecord"
	"github.com/weftworks/weft/ent/checkpoint"
	"github.com/weftworks/weft/ent/credential"
	"github.com/weftworks/weft/ent/predicate"
	"github.com/weftworks/weft/ent/run"
	"github.com/weftworks/weft/ent/skillrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCallbackRecord = "CallbackRecord"
	TypeCheckpoint     = "Checkpoint"
	TypeCredential     = "Credential"
	TypeRun            = "Run"
	TypeSkillRecord    = "SkillRecord"
)

// CallbackRecordMutation represents an operation that mutates the CallbackRecord nodes in the graph.
type CallbackRecordMutation struct {
	config
	op                Op
	typ               string
	id                *string
	correlation_token *string
	skill_name        *string
	deadline_ts       *time.Time
	created_at        *time.Time
	consumed_at       *time.Time
	clearedFields     map[string]struct{}
	run               *string
	clearedrun        bool
	done              bool
	oldValue          func(context.Context) (*CallbackRecord, error)
	predicates        []predicate.CallbackRecord
}

var _ ent.Mutation = (*CallbackRecordMutation)(nil)

// callbackrecordOption allows management of the mutation configuration using functional options.
type callbackrecordOption func(*CallbackRecordMutation)

// newCallbackRecordMutation creates new mutation for the CallbackRecord entity.
func newCallbackRecordMutation(c config, op Op, opts ...callbackrecordOption) *CallbackRecordMutation {
	m := &CallbackRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeCallbackRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCallbackRecordID sets the ID field of the mutation.
func withCallbackRecordID(id string) callbackrecordOption {
	return func(m *CallbackRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *CallbackRecord
		)
		m.oldValue = func(ctx context.Context) (*CallbackRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CallbackRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCallbackRecord sets the old CallbackRecord of the mutation.
func withCallbackRecord(node *CallbackRecord) callbackrecordOption {
	return func(m *CallbackRecordMutation) {
		m.oldValue = func(context.Context) (*CallbackRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CallbackRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CallbackRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CallbackRecord entities.
func (m *CallbackRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CallbackRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CallbackRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CallbackRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCorrelationToken sets the "correlation_token" field.
func (m *CallbackRecordMutation) SetCorrelationToken(s string) {
	m.correlation_token = &s
}

// CorrelationToken returns the value of the "correlation_token" field in the mutation.
func (m *CallbackRecordMutation) CorrelationToken() (r string, exists bool) {
	v := m.correlation_token
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationToken returns the old "correlation_token" field's value of the CallbackRecord entity.
// If the CallbackRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallbackRecordMutation) OldCorrelationToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationToken: %w", err)
	}
	return oldValue.CorrelationToken, nil
}

// ResetCorrelationToken resets all changes to the "correlation_token" field.
func (m *CallbackRecordMutation) ResetCorrelationToken() {
	m.correlation_token = nil
}

// SetThreadID sets the "thread_id" field.
func (m *CallbackRecordMutation) SetThreadID(s string) {
	m.run = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *CallbackRecordMutation) ThreadID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the CallbackRecord entity.
// If the CallbackRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallbackRecordMutation) OldThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *CallbackRecordMutation) ResetThreadID() {
	m.run = nil
}

// SetSkillName sets the "skill_name" field.
func (m *CallbackRecordMutation) SetSkillName(s string) {
	m.skill_name = &s
}

// SkillName returns the value of the "skill_name" field in the mutation.
func (m *CallbackRecordMutation) SkillName() (r string, exists bool) {
	v := m.skill_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillName returns the old "skill_name" field's value of the CallbackRecord entity.
// If the CallbackRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallbackRecordMutation) OldSkillName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillName: %w", err)
	}
	return oldValue.SkillName, nil
}

// ResetSkillName resets all changes to the "skill_name" field.
func (m *CallbackRecordMutation) ResetSkillName() {
	m.skill_name = nil
}

// SetDeadlineTs sets the "deadline_ts" field.
func (m *CallbackRecordMutation) SetDeadlineTs(t time.Time) {
	m.deadline_ts = &t
}

// DeadlineTs returns the value of the "deadline_ts" field in the mutation.
func (m *CallbackRecordMutation) DeadlineTs() (r time.Time, exists bool) {
	v := m.deadline_ts
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadlineTs returns the old "deadline_ts" field's value of the CallbackRecord entity.
// If the CallbackRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallbackRecordMutation) OldDeadlineTs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadlineTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadlineTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadlineTs: %w", err)
	}
	return oldValue.DeadlineTs, nil
}

// ResetDeadlineTs resets all changes to the "deadline_ts" field.
func (m *CallbackRecordMutation) ResetDeadlineTs() {
	m.deadline_ts = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CallbackRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CallbackRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CallbackRecord entity.
// If the CallbackRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallbackRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CallbackRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetConsumedAt sets the "consumed_at" field.
func (m *CallbackRecordMutation) SetConsumedAt(t time.Time) {
	m.consumed_at = &t
}

// ConsumedAt returns the value of the "consumed_at" field in the mutation.
func (m *CallbackRecordMutation) ConsumedAt() (r time.Time, exists bool) {
	v := m.consumed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumedAt returns the old "consumed_at" field's value of the CallbackRecord entity.
// If the CallbackRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallbackRecordMutation) OldConsumedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumedAt: %w", err)
	}
	return oldValue.ConsumedAt, nil
}

// ClearConsumedAt clears the value of the "consumed_at" field.
func (m *CallbackRecordMutation) ClearConsumedAt() {
	m.consumed_at = nil
	m.clearedFields[callbackrecord.FieldConsumedAt] = struct{}{}
}

// ConsumedAtCleared returns if the "consumed_at" field was cleared in this mutation.
func (m *CallbackRecordMutation) ConsumedAtCleared() bool {
	_, ok := m.clearedFields[callbackrecord.FieldConsumedAt]
	return ok
}

// ResetConsumedAt resets all changes to the "consumed_at" field.
func (m *CallbackRecordMutation) ResetConsumedAt() {
	m.consumed_at = nil
	delete(m.clearedFields, callbackrecord.FieldConsumedAt)
}

// SetRunID sets the "run" edge to the Run entity by id.
func (m *CallbackRecordMutation) SetRunID(id string) {
	m.run = &id
}

// ClearRun clears the "run" edge to the Run entity.
func (m *CallbackRecordMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[callbackrecord.FieldThreadID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *CallbackRecordMutation) RunCleared() bool {
	return m.clearedrun
}

// RunID returns the "run" edge ID in the mutation.
func (m *CallbackRecordMutation) RunID() (id string, exists bool) {
	if m.run != nil {
		return *m.run, true
	}
	return
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *CallbackRecordMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *CallbackRecordMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the CallbackRecordMutation builder.
func (m *CallbackRecordMutation) Where(ps ...predicate.CallbackRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CallbackRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CallbackRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CallbackRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CallbackRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CallbackRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CallbackRecord).
func (m *CallbackRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CallbackRecordMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.correlation_token != nil {
		fields = append(fields, callbackrecord.FieldCorrelationToken)
	}
	if m.run != nil {
		fields = append(fields, callbackrecord.FieldThreadID)
	}
	if m.skill_name != nil {
		fields = append(fields, callbackrecord.FieldSkillName)
	}
	if m.deadline_ts != nil {
		fields = append(fields, callbackrecord.FieldDeadlineTs)
	}
	if m.created_at != nil {
		fields = append(fields, callbackrecord.FieldCreatedAt)
	}
	if m.consumed_at != nil {
		fields = append(fields, callbackrecord.FieldConsumedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CallbackRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case callbackrecord.FieldCorrelationToken:
		return m.CorrelationToken()
	case callbackrecord.FieldThreadID:
		return m.ThreadID()
	case callbackrecord.FieldSkillName:
		return m.SkillName()
	case callbackrecord.FieldDeadlineTs:
		return m.DeadlineTs()
	case callbackrecord.FieldCreatedAt:
		return m.CreatedAt()
	case callbackrecord.FieldConsumedAt:
		return m.ConsumedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CallbackRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case callbackrecord.FieldCorrelationToken:
		return m.OldCorrelationToken(ctx)
	case callbackrecord.FieldThreadID:
		return m.OldThreadID(ctx)
	case callbackrecord.FieldSkillName:
		return m.OldSkillName(ctx)
	case callbackrecord.FieldDeadlineTs:
		return m.OldDeadlineTs(ctx)
	case callbackrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case callbackrecord.FieldConsumedAt:
		return m.OldConsumedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CallbackRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallbackRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case callbackrecord.FieldCorrelationToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationToken(v)
		return nil
	case callbackrecord.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case callbackrecord.FieldSkillName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillName(v)
		return nil
	case callbackrecord.FieldDeadlineTs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadlineTs(v)
		return nil
	case callbackrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case callbackrecord.FieldConsumedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CallbackRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CallbackRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CallbackRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallbackRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CallbackRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CallbackRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(callbackrecord.FieldConsumedAt) {
		fields = append(fields, callbackrecord.FieldConsumedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CallbackRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CallbackRecordMutation) ClearField(name string) error {
	switch name {
	case callbackrecord.FieldConsumedAt:
		m.ClearConsumedAt()
		return nil
	}
	return fmt.Errorf("unknown CallbackRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CallbackRecordMutation) ResetField(name string) error {
	switch name {
	case callbackrecord.FieldCorrelationToken:
		m.ResetCorrelationToken()
		return nil
	case callbackrecord.FieldThreadID:
		m.ResetThreadID()
		return nil
	case callbackrecord.FieldSkillName:
		m.ResetSkillName()
		return nil
	case callbackrecord.FieldDeadlineTs:
		m.ResetDeadlineTs()
		return nil
	case callbackrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case callbackrecord.FieldConsumedAt:
		m.ResetConsumedAt()
		return nil
	}
	return fmt.Errorf("unknown CallbackRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CallbackRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, callbackrecord.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CallbackRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case callbackrecord.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CallbackRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CallbackRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CallbackRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, callbackrecord.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CallbackRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case callbackrecord.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CallbackRecordMutation) ClearEdge(name string) error {
	switch name {
	case callbackrecord.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown CallbackRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CallbackRecordMutation) ResetEdge(name string) error {
	switch name {
	case callbackrecord.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown CallbackRecord edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	checkpoint_ns        *string
	parent_checkpoint_id *string
	ts                   *time.Time
	workspace_id         *string
	channel_values       *map[string]interface{}
	channel_versions     *map[string]interface{}
	pending_writes       *map[string]interface{}
	active_skill         *string
	status               *string
	run_name             *string
	sop_preview          *string
	clearedFields        map[string]struct{}
	run                  *string
	clearedrun           bool
	done                 bool
	oldValue             func(context.Context) (*Checkpoint, error)
	predicates           []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadID sets the "thread_id" field.
func (m *CheckpointMutation) SetThreadID(s string) {
	m.run = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *CheckpointMutation) ThreadID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *CheckpointMutation) ResetThreadID() {
	m.run = nil
}

// SetCheckpointNs sets the "checkpoint_ns" field.
func (m *CheckpointMutation) SetCheckpointNs(s string) {
	m.checkpoint_ns = &s
}

// CheckpointNs returns the value of the "checkpoint_ns" field in the mutation.
func (m *CheckpointMutation) CheckpointNs() (r string, exists bool) {
	v := m.checkpoint_ns
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointNs returns the old "checkpoint_ns" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCheckpointNs(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointNs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointNs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointNs: %w", err)
	}
	return oldValue.CheckpointNs, nil
}

// ResetCheckpointNs resets all changes to the "checkpoint_ns" field.
func (m *CheckpointMutation) ResetCheckpointNs() {
	m.checkpoint_ns = nil
}

// SetParentCheckpointID sets the "parent_checkpoint_id" field.
func (m *CheckpointMutation) SetParentCheckpointID(s string) {
	m.parent_checkpoint_id = &s
}

// ParentCheckpointID returns the value of the "parent_checkpoint_id" field in the mutation.
func (m *CheckpointMutation) ParentCheckpointID() (r string, exists bool) {
	v := m.parent_checkpoint_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentCheckpointID returns the old "parent_checkpoint_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldParentCheckpointID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentCheckpointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentCheckpointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentCheckpointID: %w", err)
	}
	return oldValue.ParentCheckpointID, nil
}

// ClearParentCheckpointID clears the value of the "parent_checkpoint_id" field.
func (m *CheckpointMutation) ClearParentCheckpointID() {
	m.parent_checkpoint_id = nil
	m.clearedFields[checkpoint.FieldParentCheckpointID] = struct{}{}
}

// ParentCheckpointIDCleared returns if the "parent_checkpoint_id" field was cleared in this mutation.
func (m *CheckpointMutation) ParentCheckpointIDCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldParentCheckpointID]
	return ok
}

// ResetParentCheckpointID resets all changes to the "parent_checkpoint_id" field.
func (m *CheckpointMutation) ResetParentCheckpointID() {
	m.parent_checkpoint_id = nil
	delete(m.clearedFields, checkpoint.FieldParentCheckpointID)
}

// SetTs sets the "ts" field.
func (m *CheckpointMutation) SetTs(t time.Time) {
	m.ts = &t
}

// Ts returns the value of the "ts" field in the mutation.
func (m *CheckpointMutation) Ts() (r time.Time, exists bool) {
	v := m.ts
	if v == nil {
		return
	}
	return *v, true
}

// OldTs returns the old "ts" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldTs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTs: %w", err)
	}
	return oldValue.Ts, nil
}

// ResetTs resets all changes to the "ts" field.
func (m *CheckpointMutation) ResetTs() {
	m.ts = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *CheckpointMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *CheckpointMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *CheckpointMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetChannelValues sets the "channel_values" field.
func (m *CheckpointMutation) SetChannelValues(value map[string]interface{}) {
	m.channel_values = &value
}

// ChannelValues returns the value of the "channel_values" field in the mutation.
func (m *CheckpointMutation) ChannelValues() (r map[string]interface{}, exists bool) {
	v := m.channel_values
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelValues returns the old "channel_values" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldChannelValues(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelValues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelValues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelValues: %w", err)
	}
	return oldValue.ChannelValues, nil
}

// ResetChannelValues resets all changes to the "channel_values" field.
func (m *CheckpointMutation) ResetChannelValues() {
	m.channel_values = nil
}

// SetChannelVersions sets the "channel_versions" field.
func (m *CheckpointMutation) SetChannelVersions(value map[string]interface{}) {
	m.channel_versions = &value
}

// ChannelVersions returns the value of the "channel_versions" field in the mutation.
func (m *CheckpointMutation) ChannelVersions() (r map[string]interface{}, exists bool) {
	v := m.channel_versions
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelVersions returns the old "channel_versions" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldChannelVersions(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelVersions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelVersions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelVersions: %w", err)
	}
	return oldValue.ChannelVersions, nil
}

// ClearChannelVersions clears the value of the "channel_versions" field.
func (m *CheckpointMutation) ClearChannelVersions() {
	m.channel_versions = nil
	m.clearedFields[checkpoint.FieldChannelVersions] = struct{}{}
}

// ChannelVersionsCleared returns if the "channel_versions" field was cleared in this mutation.
func (m *CheckpointMutation) ChannelVersionsCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldChannelVersions]
	return ok
}

// ResetChannelVersions resets all changes to the "channel_versions" field.
func (m *CheckpointMutation) ResetChannelVersions() {
	m.channel_versions = nil
	delete(m.clearedFields, checkpoint.FieldChannelVersions)
}

// SetPendingWrites sets the "pending_writes" field.
func (m *CheckpointMutation) SetPendingWrites(value map[string]interface{}) {
	m.pending_writes = &value
}

// PendingWrites returns the value of the "pending_writes" field in the mutation.
func (m *CheckpointMutation) PendingWrites() (r map[string]interface{}, exists bool) {
	v := m.pending_writes
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingWrites returns the old "pending_writes" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldPendingWrites(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingWrites is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingWrites requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingWrites: %w", err)
	}
	return oldValue.PendingWrites, nil
}

// ClearPendingWrites clears the value of the "pending_writes" field.
func (m *CheckpointMutation) ClearPendingWrites() {
	m.pending_writes = nil
	m.clearedFields[checkpoint.FieldPendingWrites] = struct{}{}
}

// PendingWritesCleared returns if the "pending_writes" field was cleared in this mutation.
func (m *CheckpointMutation) PendingWritesCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldPendingWrites]
	return ok
}

// ResetPendingWrites resets all changes to the "pending_writes" field.
func (m *CheckpointMutation) ResetPendingWrites() {
	m.pending_writes = nil
	delete(m.clearedFields, checkpoint.FieldPendingWrites)
}

// SetActiveSkill sets the "active_skill" field.
func (m *CheckpointMutation) SetActiveSkill(s string) {
	m.active_skill = &s
}

// ActiveSkill returns the value of the "active_skill" field in the mutation.
func (m *CheckpointMutation) ActiveSkill() (r string, exists bool) {
	v := m.active_skill
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveSkill returns the old "active_skill" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldActiveSkill(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveSkill is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveSkill requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveSkill: %w", err)
	}
	return oldValue.ActiveSkill, nil
}

// ClearActiveSkill clears the value of the "active_skill" field.
func (m *CheckpointMutation) ClearActiveSkill() {
	m.active_skill = nil
	m.clearedFields[checkpoint.FieldActiveSkill] = struct{}{}
}

// ActiveSkillCleared returns if the "active_skill" field was cleared in this mutation.
func (m *CheckpointMutation) ActiveSkillCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldActiveSkill]
	return ok
}

// ResetActiveSkill resets all changes to the "active_skill" field.
func (m *CheckpointMutation) ResetActiveSkill() {
	m.active_skill = nil
	delete(m.clearedFields, checkpoint.FieldActiveSkill)
}

// SetStatus sets the "status" field.
func (m *CheckpointMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CheckpointMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CheckpointMutation) ResetStatus() {
	m.status = nil
}

// SetRunName sets the "run_name" field.
func (m *CheckpointMutation) SetRunName(s string) {
	m.run_name = &s
}

// RunName returns the value of the "run_name" field in the mutation.
func (m *CheckpointMutation) RunName() (r string, exists bool) {
	v := m.run_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRunName returns the old "run_name" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldRunName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunName: %w", err)
	}
	return oldValue.RunName, nil
}

// ClearRunName clears the value of the "run_name" field.
func (m *CheckpointMutation) ClearRunName() {
	m.run_name = nil
	m.clearedFields[checkpoint.FieldRunName] = struct{}{}
}

// RunNameCleared returns if the "run_name" field was cleared in this mutation.
func (m *CheckpointMutation) RunNameCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldRunName]
	return ok
}

// ResetRunName resets all changes to the "run_name" field.
func (m *CheckpointMutation) ResetRunName() {
	m.run_name = nil
	delete(m.clearedFields, checkpoint.FieldRunName)
}

// SetSopPreview sets the "sop_preview" field.
func (m *CheckpointMutation) SetSopPreview(s string) {
	m.sop_preview = &s
}

// SopPreview returns the value of the "sop_preview" field in the mutation.
func (m *CheckpointMutation) SopPreview() (r string, exists bool) {
	v := m.sop_preview
	if v == nil {
		return
	}
	return *v, true
}

// OldSopPreview returns the old "sop_preview" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSopPreview(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSopPreview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSopPreview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSopPreview: %w", err)
	}
	return oldValue.SopPreview, nil
}

// ClearSopPreview clears the value of the "sop_preview" field.
func (m *CheckpointMutation) ClearSopPreview() {
	m.sop_preview = nil
	m.clearedFields[checkpoint.FieldSopPreview] = struct{}{}
}

// SopPreviewCleared returns if the "sop_preview" field was cleared in this mutation.
func (m *CheckpointMutation) SopPreviewCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldSopPreview]
	return ok
}

// ResetSopPreview resets all changes to the "sop_preview" field.
func (m *CheckpointMutation) ResetSopPreview() {
	m.sop_preview = nil
	delete(m.clearedFields, checkpoint.FieldSopPreview)
}

// SetRunID sets the "run" edge to the Run entity by id.
func (m *CheckpointMutation) SetRunID(id string) {
	m.run = &id
}

// ClearRun clears the "run" edge to the Run entity.
func (m *CheckpointMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[checkpoint.FieldThreadID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *CheckpointMutation) RunCleared() bool {
	return m.clearedrun
}

// RunID returns the "run" edge ID in the mutation.
func (m *CheckpointMutation) RunID() (id string, exists bool) {
	if m.run != nil {
		return *m.run, true
	}
	return
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *CheckpointMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.run != nil {
		fields = append(fields, checkpoint.FieldThreadID)
	}
	if m.checkpoint_ns != nil {
		fields = append(fields, checkpoint.FieldCheckpointNs)
	}
	if m.parent_checkpoint_id != nil {
		fields = append(fields, checkpoint.FieldParentCheckpointID)
	}
	if m.ts != nil {
		fields = append(fields, checkpoint.FieldTs)
	}
	if m.workspace_id != nil {
		fields = append(fields, checkpoint.FieldWorkspaceID)
	}
	if m.channel_values != nil {
		fields = append(fields, checkpoint.FieldChannelValues)
	}
	if m.channel_versions != nil {
		fields = append(fields, checkpoint.FieldChannelVersions)
	}
	if m.pending_writes != nil {
		fields = append(fields, checkpoint.FieldPendingWrites)
	}
	if m.active_skill != nil {
		fields = append(fields, checkpoint.FieldActiveSkill)
	}
	if m.status != nil {
		fields = append(fields, checkpoint.FieldStatus)
	}
	if m.run_name != nil {
		fields = append(fields, checkpoint.FieldRunName)
	}
	if m.sop_preview != nil {
		fields = append(fields, checkpoint.FieldSopPreview)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldThreadID:
		return m.ThreadID()
	case checkpoint.FieldCheckpointNs:
		return m.CheckpointNs()
	case checkpoint.FieldParentCheckpointID:
		return m.ParentCheckpointID()
	case checkpoint.FieldTs:
		return m.Ts()
	case checkpoint.FieldWorkspaceID:
		return m.WorkspaceID()
	case checkpoint.FieldChannelValues:
		return m.ChannelValues()
	case checkpoint.FieldChannelVersions:
		return m.ChannelVersions()
	case checkpoint.FieldPendingWrites:
		return m.PendingWrites()
	case checkpoint.FieldActiveSkill:
		return m.ActiveSkill()
	case checkpoint.FieldStatus:
		return m.Status()
	case checkpoint.FieldRunName:
		return m.RunName()
	case checkpoint.FieldSopPreview:
		return m.SopPreview()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldThreadID:
		return m.OldThreadID(ctx)
	case checkpoint.FieldCheckpointNs:
		return m.OldCheckpointNs(ctx)
	case checkpoint.FieldParentCheckpointID:
		return m.OldParentCheckpointID(ctx)
	case checkpoint.FieldTs:
		return m.OldTs(ctx)
	case checkpoint.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case checkpoint.FieldChannelValues:
		return m.OldChannelValues(ctx)
	case checkpoint.FieldChannelVersions:
		return m.OldChannelVersions(ctx)
	case checkpoint.FieldPendingWrites:
		return m.OldPendingWrites(ctx)
	case checkpoint.FieldActiveSkill:
		return m.OldActiveSkill(ctx)
	case checkpoint.FieldStatus:
		return m.OldStatus(ctx)
	case checkpoint.FieldRunName:
		return m.OldRunName(ctx)
	case checkpoint.FieldSopPreview:
		return m.OldSopPreview(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case checkpoint.FieldCheckpointNs:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointNs(v)
		return nil
	case checkpoint.FieldParentCheckpointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentCheckpointID(v)
		return nil
	case checkpoint.FieldTs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTs(v)
		return nil
	case checkpoint.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case checkpoint.FieldChannelValues:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelValues(v)
		return nil
	case checkpoint.FieldChannelVersions:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelVersions(v)
		return nil
	case checkpoint.FieldPendingWrites:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingWrites(v)
		return nil
	case checkpoint.FieldActiveSkill:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveSkill(v)
		return nil
	case checkpoint.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case checkpoint.FieldRunName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunName(v)
		return nil
	case checkpoint.FieldSopPreview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSopPreview(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkpoint.FieldParentCheckpointID) {
		fields = append(fields, checkpoint.FieldParentCheckpointID)
	}
	if m.FieldCleared(checkpoint.FieldChannelVersions) {
		fields = append(fields, checkpoint.FieldChannelVersions)
	}
	if m.FieldCleared(checkpoint.FieldPendingWrites) {
		fields = append(fields, checkpoint.FieldPendingWrites)
	}
	if m.FieldCleared(checkpoint.FieldActiveSkill) {
		fields = append(fields, checkpoint.FieldActiveSkill)
	}
	if m.FieldCleared(checkpoint.FieldRunName) {
		fields = append(fields, checkpoint.FieldRunName)
	}
	if m.FieldCleared(checkpoint.FieldSopPreview) {
		fields = append(fields, checkpoint.FieldSopPreview)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	switch name {
	case checkpoint.FieldParentCheckpointID:
		m.ClearParentCheckpointID()
		return nil
	case checkpoint.FieldChannelVersions:
		m.ClearChannelVersions()
		return nil
	case checkpoint.FieldPendingWrites:
		m.ClearPendingWrites()
		return nil
	case checkpoint.FieldActiveSkill:
		m.ClearActiveSkill()
		return nil
	case checkpoint.FieldRunName:
		m.ClearRunName()
		return nil
	case checkpoint.FieldSopPreview:
		m.ClearSopPreview()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldThreadID:
		m.ResetThreadID()
		return nil
	case checkpoint.FieldCheckpointNs:
		m.ResetCheckpointNs()
		return nil
	case checkpoint.FieldParentCheckpointID:
		m.ResetParentCheckpointID()
		return nil
	case checkpoint.FieldTs:
		m.ResetTs()
		return nil
	case checkpoint.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case checkpoint.FieldChannelValues:
		m.ResetChannelValues()
		return nil
	case checkpoint.FieldChannelVersions:
		m.ResetChannelVersions()
		return nil
	case checkpoint.FieldPendingWrites:
		m.ResetPendingWrites()
		return nil
	case checkpoint.FieldActiveSkill:
		m.ResetActiveSkill()
		return nil
	case checkpoint.FieldStatus:
		m.ResetStatus()
		return nil
	case checkpoint.FieldRunName:
		m.ResetRunName()
		return nil
	case checkpoint.FieldSopPreview:
		m.ResetSopPreview()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, checkpoint.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, checkpoint.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// CredentialMutation represents an operation that mutates the Credential nodes in the graph.
type CredentialMutation struct {
	config
	op            Op
	typ           string
	id            *string
	owner_id      *string
	ref           *string
	source        *string
	dsn           *string
	params        *map[string]string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Credential, error)
	predicates    []predicate.Credential
}

var _ ent.Mutation = (*CredentialMutation)(nil)

// credentialOption allows management of the mutation configuration using functional options.
type credentialOption func(*CredentialMutation)

// newCredentialMutation creates new mutation for the Credential entity.
func newCredentialMutation(c config, op Op, opts ...credentialOption) *CredentialMutation {
	m := &CredentialMutation{
		config:        c,
		op:            op,
		typ:           TypeCredential,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCredentialID sets the ID field of the mutation.
func withCredentialID(id string) credentialOption {
	return func(m *CredentialMutation) {
		var (
			err   error
			once  sync.Once
			value *Credential
		)
		m.oldValue = func(ctx context.Context) (*Credential, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Credential.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCredential sets the old Credential of the mutation.
func withCredential(node *Credential) credentialOption {
	return func(m *CredentialMutation) {
		m.oldValue = func(context.Context) (*Credential, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CredentialMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CredentialMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Credential entities.
func (m *CredentialMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CredentialMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CredentialMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Credential.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *CredentialMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *CredentialMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *CredentialMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetRef sets the "ref" field.
func (m *CredentialMutation) SetRef(s string) {
	m.ref = &s
}

// Ref returns the value of the "ref" field in the mutation.
func (m *CredentialMutation) Ref() (r string, exists bool) {
	v := m.ref
	if v == nil {
		return
	}
	return *v, true
}

// OldRef returns the old "ref" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRef: %w", err)
	}
	return oldValue.Ref, nil
}

// ResetRef resets all changes to the "ref" field.
func (m *CredentialMutation) ResetRef() {
	m.ref = nil
}

// SetSource sets the "source" field.
func (m *CredentialMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *CredentialMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *CredentialMutation) ResetSource() {
	m.source = nil
}

// SetDsn sets the "dsn" field.
func (m *CredentialMutation) SetDsn(s string) {
	m.dsn = &s
}

// Dsn returns the value of the "dsn" field in the mutation.
func (m *CredentialMutation) Dsn() (r string, exists bool) {
	v := m.dsn
	if v == nil {
		return
	}
	return *v, true
}

// OldDsn returns the old "dsn" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldDsn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDsn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDsn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDsn: %w", err)
	}
	return oldValue.Dsn, nil
}

// ResetDsn resets all changes to the "dsn" field.
func (m *CredentialMutation) ResetDsn() {
	m.dsn = nil
}

// SetParams sets the "params" field.
func (m *CredentialMutation) SetParams(value map[string]string) {
	m.params = &value
}

// Params returns the value of the "params" field in the mutation.
func (m *CredentialMutation) Params() (r map[string]string, exists bool) {
	v := m.params
	if v == nil {
		return
	}
	return *v, true
}

// OldParams returns the old "params" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldParams(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParams: %w", err)
	}
	return oldValue.Params, nil
}

// ClearParams clears the value of the "params" field.
func (m *CredentialMutation) ClearParams() {
	m.params = nil
	m.clearedFields[credential.FieldParams] = struct{}{}
}

// ParamsCleared returns if the "params" field was cleared in this mutation.
func (m *CredentialMutation) ParamsCleared() bool {
	_, ok := m.clearedFields[credential.FieldParams]
	return ok
}

// ResetParams resets all changes to the "params" field.
func (m *CredentialMutation) ResetParams() {
	m.params = nil
	delete(m.clearedFields, credential.FieldParams)
}

// SetCreatedAt sets the "created_at" field.
func (m *CredentialMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CredentialMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CredentialMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CredentialMutation builder.
func (m *CredentialMutation) Where(ps ...predicate.Credential) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CredentialMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CredentialMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Credential, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CredentialMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CredentialMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Credential).
func (m *CredentialMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CredentialMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.owner_id != nil {
		fields = append(fields, credential.FieldOwnerID)
	}
	if m.ref != nil {
		fields = append(fields, credential.FieldRef)
	}
	if m.source != nil {
		fields = append(fields, credential.FieldSource)
	}
	if m.dsn != nil {
		fields = append(fields, credential.FieldDsn)
	}
	if m.params != nil {
		fields = append(fields, credential.FieldParams)
	}
	if m.created_at != nil {
		fields = append(fields, credential.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CredentialMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case credential.FieldOwnerID:
		return m.OwnerID()
	case credential.FieldRef:
		return m.Ref()
	case credential.FieldSource:
		return m.Source()
	case credential.FieldDsn:
		return m.Dsn()
	case credential.FieldParams:
		return m.Params()
	case credential.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CredentialMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case credential.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case credential.FieldRef:
		return m.OldRef(ctx)
	case credential.FieldSource:
		return m.OldSource(ctx)
	case credential.FieldDsn:
		return m.OldDsn(ctx)
	case credential.FieldParams:
		return m.OldParams(ctx)
	case credential.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Credential field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CredentialMutation) SetField(name string, value ent.Value) error {
	switch name {
	case credential.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case credential.FieldRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRef(v)
		return nil
	case credential.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case credential.FieldDsn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDsn(v)
		return nil
	case credential.FieldParams:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParams(v)
		return nil
	case credential.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Credential field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CredentialMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CredentialMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CredentialMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Credential numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CredentialMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(credential.FieldParams) {
		fields = append(fields, credential.FieldParams)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CredentialMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CredentialMutation) ClearField(name string) error {
	switch name {
	case credential.FieldParams:
		m.ClearParams()
		return nil
	}
	return fmt.Errorf("unknown Credential nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CredentialMutation) ResetField(name string) error {
	switch name {
	case credential.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case credential.FieldRef:
		m.ResetRef()
		return nil
	case credential.FieldSource:
		m.ResetSource()
		return nil
	case credential.FieldDsn:
		m.ResetDsn()
		return nil
	case credential.FieldParams:
		m.ResetParams()
		return nil
	case credential.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Credential field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CredentialMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CredentialMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CredentialMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CredentialMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CredentialMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CredentialMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CredentialMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Credential unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CredentialMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Credential edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	run_name           *string
	sop                *string
	initial_data       *map[string]interface{}
	status             *run.Status
	owner_id           *string
	workspace_id       *string
	parent_thread_id   *string
	llm_model          *string
	ack_key            *string
	active_skill       *string
	last_error         *map[string]interface{}
	resume_payload     *map[string]interface{}
	callback_payload   *map[string]interface{}
	created_at         *time.Time
	started_at         *time.Time
	completed_at       *time.Time
	pod_id             *string
	last_heartbeat_at  *time.Time
	clearedFields      map[string]struct{}
	checkpoints        map[string]struct{}
	removedcheckpoints map[string]struct{}
	clearedcheckpoints bool
	callbacks          map[string]struct{}
	removedcallbacks   map[string]struct{}
	clearedcallbacks   bool
	done               bool
	oldValue           func(context.Context) (*Run, error)
	predicates         []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id string) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunName sets the "run_name" field.
func (m *RunMutation) SetRunName(s string) {
	m.run_name = &s
}

// RunName returns the value of the "run_name" field in the mutation.
func (m *RunMutation) RunName() (r string, exists bool) {
	v := m.run_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRunName returns the old "run_name" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldRunName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunName: %w", err)
	}
	return oldValue.RunName, nil
}

// ClearRunName clears the value of the "run_name" field.
func (m *RunMutation) ClearRunName() {
	m.run_name = nil
	m.clearedFields[run.FieldRunName] = struct{}{}
}

// RunNameCleared returns if the "run_name" field was cleared in this mutation.
func (m *RunMutation) RunNameCleared() bool {
	_, ok := m.clearedFields[run.FieldRunName]
	return ok
}

// ResetRunName resets all changes to the "run_name" field.
func (m *RunMutation) ResetRunName() {
	m.run_name = nil
	delete(m.clearedFields, run.FieldRunName)
}

// SetSop sets the "sop" field.
func (m *RunMutation) SetSop(s string) {
	m.sop = &s
}

// Sop returns the value of the "sop" field in the mutation.
func (m *RunMutation) Sop() (r string, exists bool) {
	v := m.sop
	if v == nil {
		return
	}
	return *v, true
}

// OldSop returns the old "sop" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldSop(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSop is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSop requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSop: %w", err)
	}
	return oldValue.Sop, nil
}

// ResetSop resets all changes to the "sop" field.
func (m *RunMutation) ResetSop() {
	m.sop = nil
}

// SetInitialData sets the "initial_data" field.
func (m *RunMutation) SetInitialData(value map[string]interface{}) {
	m.initial_data = &value
}

// InitialData returns the value of the "initial_data" field in the mutation.
func (m *RunMutation) InitialData() (r map[string]interface{}, exists bool) {
	v := m.initial_data
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialData returns the old "initial_data" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldInitialData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialData: %w", err)
	}
	return oldValue.InitialData, nil
}

// ClearInitialData clears the value of the "initial_data" field.
func (m *RunMutation) ClearInitialData() {
	m.initial_data = nil
	m.clearedFields[run.FieldInitialData] = struct{}{}
}

// InitialDataCleared returns if the "initial_data" field was cleared in this mutation.
func (m *RunMutation) InitialDataCleared() bool {
	_, ok := m.clearedFields[run.FieldInitialData]
	return ok
}

// ResetInitialData resets all changes to the "initial_data" field.
func (m *RunMutation) ResetInitialData() {
	m.initial_data = nil
	delete(m.clearedFields, run.FieldInitialData)
}

// SetStatus sets the "status" field.
func (m *RunMutation) SetStatus(r run.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunMutation) Status() (r run.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatus(ctx context.Context) (v run.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunMutation) ResetStatus() {
	m.status = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *RunMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *RunMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *RunMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *RunMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *RunMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *RunMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetParentThreadID sets the "parent_thread_id" field.
func (m *RunMutation) SetParentThreadID(s string) {
	m.parent_thread_id = &s
}

// ParentThreadID returns the value of the "parent_thread_id" field in the mutation.
func (m *RunMutation) ParentThreadID() (r string, exists bool) {
	v := m.parent_thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentThreadID returns the old "parent_thread_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldParentThreadID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentThreadID: %w", err)
	}
	return oldValue.ParentThreadID, nil
}

// ClearParentThreadID clears the value of the "parent_thread_id" field.
func (m *RunMutation) ClearParentThreadID() {
	m.parent_thread_id = nil
	m.clearedFields[run.FieldParentThreadID] = struct{}{}
}

// ParentThreadIDCleared returns if the "parent_thread_id" field was cleared in this mutation.
func (m *RunMutation) ParentThreadIDCleared() bool {
	_, ok := m.clearedFields[run.FieldParentThreadID]
	return ok
}

// ResetParentThreadID resets all changes to the "parent_thread_id" field.
func (m *RunMutation) ResetParentThreadID() {
	m.parent_thread_id = nil
	delete(m.clearedFields, run.FieldParentThreadID)
}

// SetLlmModel sets the "llm_model" field.
func (m *RunMutation) SetLlmModel(s string) {
	m.llm_model = &s
}

// LlmModel returns the value of the "llm_model" field in the mutation.
func (m *RunMutation) LlmModel() (r string, exists bool) {
	v := m.llm_model
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmModel returns the old "llm_model" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldLlmModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmModel: %w", err)
	}
	return oldValue.LlmModel, nil
}

// ClearLlmModel clears the value of the "llm_model" field.
func (m *RunMutation) ClearLlmModel() {
	m.llm_model = nil
	m.clearedFields[run.FieldLlmModel] = struct{}{}
}

// LlmModelCleared returns if the "llm_model" field was cleared in this mutation.
func (m *RunMutation) LlmModelCleared() bool {
	_, ok := m.clearedFields[run.FieldLlmModel]
	return ok
}

// ResetLlmModel resets all changes to the "llm_model" field.
func (m *RunMutation) ResetLlmModel() {
	m.llm_model = nil
	delete(m.clearedFields, run.FieldLlmModel)
}

// SetAckKey sets the "ack_key" field.
func (m *RunMutation) SetAckKey(s string) {
	m.ack_key = &s
}

// AckKey returns the value of the "ack_key" field in the mutation.
func (m *RunMutation) AckKey() (r string, exists bool) {
	v := m.ack_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAckKey returns the old "ack_key" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldAckKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAckKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAckKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAckKey: %w", err)
	}
	return oldValue.AckKey, nil
}

// ClearAckKey clears the value of the "ack_key" field.
func (m *RunMutation) ClearAckKey() {
	m.ack_key = nil
	m.clearedFields[run.FieldAckKey] = struct{}{}
}

// AckKeyCleared returns if the "ack_key" field was cleared in this mutation.
func (m *RunMutation) AckKeyCleared() bool {
	_, ok := m.clearedFields[run.FieldAckKey]
	return ok
}

// ResetAckKey resets all changes to the "ack_key" field.
func (m *RunMutation) ResetAckKey() {
	m.ack_key = nil
	delete(m.clearedFields, run.FieldAckKey)
}

// SetActiveSkill sets the "active_skill" field.
func (m *RunMutation) SetActiveSkill(s string) {
	m.active_skill = &s
}

// ActiveSkill returns the value of the "active_skill" field in the mutation.
func (m *RunMutation) ActiveSkill() (r string, exists bool) {
	v := m.active_skill
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveSkill returns the old "active_skill" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldActiveSkill(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveSkill is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveSkill requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveSkill: %w", err)
	}
	return oldValue.ActiveSkill, nil
}

// ClearActiveSkill clears the value of the "active_skill" field.
func (m *RunMutation) ClearActiveSkill() {
	m.active_skill = nil
	m.clearedFields[run.FieldActiveSkill] = struct{}{}
}

// ActiveSkillCleared returns if the "active_skill" field was cleared in this mutation.
func (m *RunMutation) ActiveSkillCleared() bool {
	_, ok := m.clearedFields[run.FieldActiveSkill]
	return ok
}

// ResetActiveSkill resets all changes to the "active_skill" field.
func (m *RunMutation) ResetActiveSkill() {
	m.active_skill = nil
	delete(m.clearedFields, run.FieldActiveSkill)
}

// SetLastError sets the "last_error" field.
func (m *RunMutation) SetLastError(value map[string]interface{}) {
	m.last_error = &value
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *RunMutation) LastError() (r map[string]interface{}, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldLastError(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *RunMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[run.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *RunMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[run.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *RunMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, run.FieldLastError)
}

// SetResumePayload sets the "resume_payload" field.
func (m *RunMutation) SetResumePayload(value map[string]interface{}) {
	m.resume_payload = &value
}

// ResumePayload returns the value of the "resume_payload" field in the mutation.
func (m *RunMutation) ResumePayload() (r map[string]interface{}, exists bool) {
	v := m.resume_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldResumePayload returns the old "resume_payload" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldResumePayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumePayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumePayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumePayload: %w", err)
	}
	return oldValue.ResumePayload, nil
}

// ClearResumePayload clears the value of the "resume_payload" field.
func (m *RunMutation) ClearResumePayload() {
	m.resume_payload = nil
	m.clearedFields[run.FieldResumePayload] = struct{}{}
}

// ResumePayloadCleared returns if the "resume_payload" field was cleared in this mutation.
func (m *RunMutation) ResumePayloadCleared() bool {
	_, ok := m.clearedFields[run.FieldResumePayload]
	return ok
}

// ResetResumePayload resets all changes to the "resume_payload" field.
func (m *RunMutation) ResetResumePayload() {
	m.resume_payload = nil
	delete(m.clearedFields, run.FieldResumePayload)
}

// SetCallbackPayload sets the "callback_payload" field.
func (m *RunMutation) SetCallbackPayload(value map[string]interface{}) {
	m.callback_payload = &value
}

// CallbackPayload returns the value of the "callback_payload" field in the mutation.
func (m *RunMutation) CallbackPayload() (r map[string]interface{}, exists bool) {
	v := m.callback_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldCallbackPayload returns the old "callback_payload" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCallbackPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallbackPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallbackPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallbackPayload: %w", err)
	}
	return oldValue.CallbackPayload, nil
}

// ClearCallbackPayload clears the value of the "callback_payload" field.
func (m *RunMutation) ClearCallbackPayload() {
	m.callback_payload = nil
	m.clearedFields[run.FieldCallbackPayload] = struct{}{}
}

// CallbackPayloadCleared returns if the "callback_payload" field was cleared in this mutation.
func (m *RunMutation) CallbackPayloadCleared() bool {
	_, ok := m.clearedFields[run.FieldCallbackPayload]
	return ok
}

// ResetCallbackPayload resets all changes to the "callback_payload" field.
func (m *RunMutation) ResetCallbackPayload() {
	m.callback_payload = nil
	delete(m.clearedFields, run.FieldCallbackPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[run.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, run.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *RunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[run.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, run.FieldCompletedAt)
}

// SetPodID sets the "pod_id" field.
func (m *RunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *RunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *RunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[run.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *RunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[run.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *RunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, run.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *RunMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *RunMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *RunMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[run.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *RunMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[run.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *RunMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, run.FieldLastHeartbeatAt)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by ids.
func (m *RunMutation) AddCheckpointIDs(ids ...string) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the Checkpoint entity.
func (m *RunMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the Checkpoint entity was cleared.
func (m *RunMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the Checkpoint entity by IDs.
func (m *RunMutation) RemoveCheckpointIDs(ids ...string) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the Checkpoint entity.
func (m *RunMutation) RemovedCheckpointsIDs() (ids []string) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *RunMutation) CheckpointsIDs() (ids []string) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *RunMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// AddCallbackIDs adds the "callbacks" edge to the CallbackRecord entity by ids.
func (m *RunMutation) AddCallbackIDs(ids ...string) {
	if m.callbacks == nil {
		m.callbacks = make(map[string]struct{})
	}
	for i := range ids {
		m.callbacks[ids[i]] = struct{}{}
	}
}

// ClearCallbacks clears the "callbacks" edge to the CallbackRecord entity.
func (m *RunMutation) ClearCallbacks() {
	m.clearedcallbacks = true
}

// CallbacksCleared reports if the "callbacks" edge to the CallbackRecord entity was cleared.
func (m *RunMutation) CallbacksCleared() bool {
	return m.clearedcallbacks
}

// RemoveCallbackIDs removes the "callbacks" edge to the CallbackRecord entity by IDs.
func (m *RunMutation) RemoveCallbackIDs(ids ...string) {
	if m.removedcallbacks == nil {
		m.removedcallbacks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.callbacks, ids[i])
		m.removedcallbacks[ids[i]] = struct{}{}
	}
}

// RemovedCallbacks returns the removed IDs of the "callbacks" edge to the CallbackRecord entity.
func (m *RunMutation) RemovedCallbacksIDs() (ids []string) {
	for id := range m.removedcallbacks {
		ids = append(ids, id)
	}
	return
}

// CallbacksIDs returns the "callbacks" edge IDs in the mutation.
func (m *RunMutation) CallbacksIDs() (ids []string) {
	for id := range m.callbacks {
		ids = append(ids, id)
	}
	return
}

// ResetCallbacks resets all changes to the "callbacks" edge.
func (m *RunMutation) ResetCallbacks() {
	m.callbacks = nil
	m.clearedcallbacks = false
	m.removedcallbacks = nil
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.run_name != nil {
		fields = append(fields, run.FieldRunName)
	}
	if m.sop != nil {
		fields = append(fields, run.FieldSop)
	}
	if m.initial_data != nil {
		fields = append(fields, run.FieldInitialData)
	}
	if m.status != nil {
		fields = append(fields, run.FieldStatus)
	}
	if m.owner_id != nil {
		fields = append(fields, run.FieldOwnerID)
	}
	if m.workspace_id != nil {
		fields = append(fields, run.FieldWorkspaceID)
	}
	if m.parent_thread_id != nil {
		fields = append(fields, run.FieldParentThreadID)
	}
	if m.llm_model != nil {
		fields = append(fields, run.FieldLlmModel)
	}
	if m.ack_key != nil {
		fields = append(fields, run.FieldAckKey)
	}
	if m.active_skill != nil {
		fields = append(fields, run.FieldActiveSkill)
	}
	if m.last_error != nil {
		fields = append(fields, run.FieldLastError)
	}
	if m.resume_payload != nil {
		fields = append(fields, run.FieldResumePayload)
	}
	if m.callback_payload != nil {
		fields = append(fields, run.FieldCallbackPayload)
	}
	if m.created_at != nil {
		fields = append(fields, run.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.pod_id != nil {
		fields = append(fields, run.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, run.FieldLastHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldRunName:
		return m.RunName()
	case run.FieldSop:
		return m.Sop()
	case run.FieldInitialData:
		return m.InitialData()
	case run.FieldStatus:
		return m.Status()
	case run.FieldOwnerID:
		return m.OwnerID()
	case run.FieldWorkspaceID:
		return m.WorkspaceID()
	case run.FieldParentThreadID:
		return m.ParentThreadID()
	case run.FieldLlmModel:
		return m.LlmModel()
	case run.FieldAckKey:
		return m.AckKey()
	case run.FieldActiveSkill:
		return m.ActiveSkill()
	case run.FieldLastError:
		return m.LastError()
	case run.FieldResumePayload:
		return m.ResumePayload()
	case run.FieldCallbackPayload:
		return m.CallbackPayload()
	case run.FieldCreatedAt:
		return m.CreatedAt()
	case run.FieldStartedAt:
		return m.StartedAt()
	case run.FieldCompletedAt:
		return m.CompletedAt()
	case run.FieldPodID:
		return m.PodID()
	case run.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldRunName:
		return m.OldRunName(ctx)
	case run.FieldSop:
		return m.OldSop(ctx)
	case run.FieldInitialData:
		return m.OldInitialData(ctx)
	case run.FieldStatus:
		return m.OldStatus(ctx)
	case run.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case run.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case run.FieldParentThreadID:
		return m.OldParentThreadID(ctx)
	case run.FieldLlmModel:
		return m.OldLlmModel(ctx)
	case run.FieldAckKey:
		return m.OldAckKey(ctx)
	case run.FieldActiveSkill:
		return m.OldActiveSkill(ctx)
	case run.FieldLastError:
		return m.OldLastError(ctx)
	case run.FieldResumePayload:
		return m.OldResumePayload(ctx)
	case run.FieldCallbackPayload:
		return m.OldCallbackPayload(ctx)
	case run.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case run.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case run.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case run.FieldPodID:
		return m.OldPodID(ctx)
	case run.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldRunName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunName(v)
		return nil
	case run.FieldSop:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSop(v)
		return nil
	case run.FieldInitialData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialData(v)
		return nil
	case run.FieldStatus:
		v, ok := value.(run.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case run.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case run.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case run.FieldParentThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentThreadID(v)
		return nil
	case run.FieldLlmModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmModel(v)
		return nil
	case run.FieldAckKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAckKey(v)
		return nil
	case run.FieldActiveSkill:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveSkill(v)
		return nil
	case run.FieldLastError:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case run.FieldResumePayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumePayload(v)
		return nil
	case run.FieldCallbackPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallbackPayload(v)
		return nil
	case run.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case run.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case run.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case run.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case run.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldRunName) {
		fields = append(fields, run.FieldRunName)
	}
	if m.FieldCleared(run.FieldInitialData) {
		fields = append(fields, run.FieldInitialData)
	}
	if m.FieldCleared(run.FieldParentThreadID) {
		fields = append(fields, run.FieldParentThreadID)
	}
	if m.FieldCleared(run.FieldLlmModel) {
		fields = append(fields, run.FieldLlmModel)
	}
	if m.FieldCleared(run.FieldAckKey) {
		fields = append(fields, run.FieldAckKey)
	}
	if m.FieldCleared(run.FieldActiveSkill) {
		fields = append(fields, run.FieldActiveSkill)
	}
	if m.FieldCleared(run.FieldLastError) {
		fields = append(fields, run.FieldLastError)
	}
	if m.FieldCleared(run.FieldResumePayload) {
		fields = append(fields, run.FieldResumePayload)
	}
	if m.FieldCleared(run.FieldCallbackPayload) {
		fields = append(fields, run.FieldCallbackPayload)
	}
	if m.FieldCleared(run.FieldStartedAt) {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.FieldCleared(run.FieldCompletedAt) {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.FieldCleared(run.FieldPodID) {
		fields = append(fields, run.FieldPodID)
	}
	if m.FieldCleared(run.FieldLastHeartbeatAt) {
		fields = append(fields, run.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldRunName:
		m.ClearRunName()
		return nil
	case run.FieldInitialData:
		m.ClearInitialData()
		return nil
	case run.FieldParentThreadID:
		m.ClearParentThreadID()
		return nil
	case run.FieldLlmModel:
		m.ClearLlmModel()
		return nil
	case run.FieldAckKey:
		m.ClearAckKey()
		return nil
	case run.FieldActiveSkill:
		m.ClearActiveSkill()
		return nil
	case run.FieldLastError:
		m.ClearLastError()
		return nil
	case run.FieldResumePayload:
		m.ClearResumePayload()
		return nil
	case run.FieldCallbackPayload:
		m.ClearCallbackPayload()
		return nil
	case run.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case run.FieldPodID:
		m.ClearPodID()
		return nil
	case run.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldRunName:
		m.ResetRunName()
		return nil
	case run.FieldSop:
		m.ResetSop()
		return nil
	case run.FieldInitialData:
		m.ResetInitialData()
		return nil
	case run.FieldStatus:
		m.ResetStatus()
		return nil
	case run.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case run.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case run.FieldParentThreadID:
		m.ResetParentThreadID()
		return nil
	case run.FieldLlmModel:
		m.ResetLlmModel()
		return nil
	case run.FieldAckKey:
		m.ResetAckKey()
		return nil
	case run.FieldActiveSkill:
		m.ResetActiveSkill()
		return nil
	case run.FieldLastError:
		m.ResetLastError()
		return nil
	case run.FieldResumePayload:
		m.ResetResumePayload()
		return nil
	case run.FieldCallbackPayload:
		m.ResetCallbackPayload()
		return nil
	case run.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case run.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case run.FieldPodID:
		m.ResetPodID()
		return nil
	case run.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.checkpoints != nil {
		edges = append(edges, run.EdgeCheckpoints)
	}
	if m.callbacks != nil {
		edges = append(edges, run.EdgeCallbacks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeCallbacks:
		ids := make([]ent.Value, 0, len(m.callbacks))
		for id := range m.callbacks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcheckpoints != nil {
		edges = append(edges, run.EdgeCheckpoints)
	}
	if m.removedcallbacks != nil {
		edges = append(edges, run.EdgeCallbacks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeCallbacks:
		ids := make([]ent.Value, 0, len(m.removedcallbacks))
		for id := range m.removedcallbacks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcheckpoints {
		edges = append(edges, run.EdgeCheckpoints)
	}
	if m.clearedcallbacks {
		edges = append(edges, run.EdgeCallbacks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	switch name {
	case run.EdgeCheckpoints:
		return m.clearedcheckpoints
	case run.EdgeCallbacks:
		return m.clearedcallbacks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	switch name {
	case run.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	case run.EdgeCallbacks:
		m.ResetCallbacks()
		return nil
	}
	return fmt.Errorf("unknown Run edge %s", name)
}

// SkillRecordMutation represents an operation that mutates the SkillRecord nodes in the graph.
type SkillRecordMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	workspace_id  *string
	is_public     *bool
	manifest      *string
	created_by    *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SkillRecord, error)
	predicates    []predicate.SkillRecord
}

var _ ent.Mutation = (*SkillRecordMutation)(nil)

// skillrecordOption allows management of the mutation configuration using functional options.
type skillrecordOption func(*SkillRecordMutation)

// newSkillRecordMutation creates new mutation for the SkillRecord entity.
func newSkillRecordMutation(c config, op Op, opts ...skillrecordOption) *SkillRecordMutation {
	m := &SkillRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeSkillRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSkillRecordID sets the ID field of the mutation.
func withSkillRecordID(id string) skillrecordOption {
	return func(m *SkillRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *SkillRecord
		)
		m.oldValue = func(ctx context.Context) (*SkillRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SkillRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSkillRecord sets the old SkillRecord of the mutation.
func withSkillRecord(node *SkillRecord) skillrecordOption {
	return func(m *SkillRecordMutation) {
		m.oldValue = func(context.Context) (*SkillRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SkillRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SkillRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SkillRecord entities.
func (m *SkillRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SkillRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SkillRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SkillRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SkillRecordMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SkillRecordMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SkillRecord entity.
// If the SkillRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillRecordMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SkillRecordMutation) ResetName() {
	m.name = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *SkillRecordMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *SkillRecordMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the SkillRecord entity.
// If the SkillRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillRecordMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *SkillRecordMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetIsPublic sets the "is_public" field.
func (m *SkillRecordMutation) SetIsPublic(b bool) {
	m.is_public = &b
}

// IsPublic returns the value of the "is_public" field in the mutation.
func (m *SkillRecordMutation) IsPublic() (r bool, exists bool) {
	v := m.is_public
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPublic returns the old "is_public" field's value of the SkillRecord entity.
// If the SkillRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillRecordMutation) OldIsPublic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPublic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPublic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPublic: %w", err)
	}
	return oldValue.IsPublic, nil
}

// ResetIsPublic resets all changes to the "is_public" field.
func (m *SkillRecordMutation) ResetIsPublic() {
	m.is_public = nil
}

// SetManifest sets the "manifest" field.
func (m *SkillRecordMutation) SetManifest(s string) {
	m.manifest = &s
}

// Manifest returns the value of the "manifest" field in the mutation.
func (m *SkillRecordMutation) Manifest() (r string, exists bool) {
	v := m.manifest
	if v == nil {
		return
	}
	return *v, true
}

// OldManifest returns the old "manifest" field's value of the SkillRecord entity.
// If the SkillRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillRecordMutation) OldManifest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManifest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManifest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManifest: %w", err)
	}
	return oldValue.Manifest, nil
}

// ResetManifest resets all changes to the "manifest" field.
func (m *SkillRecordMutation) ResetManifest() {
	m.manifest = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *SkillRecordMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *SkillRecordMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the SkillRecord entity.
// If the SkillRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillRecordMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *SkillRecordMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[skillrecord.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *SkillRecordMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[skillrecord.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *SkillRecordMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, skillrecord.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *SkillRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SkillRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SkillRecord entity.
// If the SkillRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SkillRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SkillRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SkillRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SkillRecord entity.
// If the SkillRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SkillRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SkillRecordMutation builder.
func (m *SkillRecordMutation) Where(ps ...predicate.SkillRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SkillRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SkillRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SkillRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SkillRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SkillRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SkillRecord).
func (m *SkillRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SkillRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, skillrecord.FieldName)
	}
	if m.workspace_id != nil {
		fields = append(fields, skillrecord.FieldWorkspaceID)
	}
	if m.is_public != nil {
		fields = append(fields, skillrecord.FieldIsPublic)
	}
	if m.manifest != nil {
		fields = append(fields, skillrecord.FieldManifest)
	}
	if m.created_by != nil {
		fields = append(fields, skillrecord.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, skillrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, skillrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SkillRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case skillrecord.FieldName:
		return m.Name()
	case skillrecord.FieldWorkspaceID:
		return m.WorkspaceID()
	case skillrecord.FieldIsPublic:
		return m.IsPublic()
	case skillrecord.FieldManifest:
		return m.Manifest()
	case skillrecord.FieldCreatedBy:
		return m.CreatedBy()
	case skillrecord.FieldCreatedAt:
		return m.CreatedAt()
	case skillrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SkillRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case skillrecord.FieldName:
		return m.OldName(ctx)
	case skillrecord.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case skillrecord.FieldIsPublic:
		return m.OldIsPublic(ctx)
	case skillrecord.FieldManifest:
		return m.OldManifest(ctx)
	case skillrecord.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case skillrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case skillrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SkillRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case skillrecord.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case skillrecord.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case skillrecord.FieldIsPublic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPublic(v)
		return nil
	case skillrecord.FieldManifest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManifest(v)
		return nil
	case skillrecord.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case skillrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case skillrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SkillRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SkillRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SkillRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SkillRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SkillRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(skillrecord.FieldCreatedBy) {
		fields = append(fields, skillrecord.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SkillRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SkillRecordMutation) ClearField(name string) error {
	switch name {
	case skillrecord.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown SkillRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SkillRecordMutation) ResetField(name string) error {
	switch name {
	case skillrecord.FieldName:
		m.ResetName()
		return nil
	case skillrecord.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case skillrecord.FieldIsPublic:
		m.ResetIsPublic()
		return nil
	case skillrecord.FieldManifest:
		m.ResetManifest()
		return nil
	case skillrecord.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case skillrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case skillrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SkillRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SkillRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SkillRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SkillRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SkillRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SkillRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SkillRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SkillRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SkillRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SkillRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SkillRecord edge %s", name)
}
