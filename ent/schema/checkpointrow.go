package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds the schema definition for one row of a thread's
// checkpoint chain. channel_values is the authoritative serialized state;
// the scalar columns are a denormalized projection for list views.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("thread_id").
			Immutable(),
		field.String("checkpoint_ns").
			Default("").
			Immutable().
			Comment("Empty string by convention"),
		field.String("parent_checkpoint_id").
			Optional().
			Nillable().
			Immutable(),
		field.Time("ts").
			Default(time.Now).
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.JSON("channel_values", map[string]interface{}{}).
			Immutable(),
		field.JSON("channel_versions", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("pending_writes", map[string]interface{}{}).
			Optional().
			Immutable(),

		// Projection.
		field.String("active_skill").
			Optional().
			Immutable(),
		field.String("status").
			Immutable(),
		field.String("run_name").
			Optional().
			Immutable(),
		field.String("sop_preview").
			Optional().
			Immutable(),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("checkpoints").
			Field("thread_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		// Latest-for-thread reads.
		index.Fields("thread_id", "ts"),
		// Latest-across-workspace reads.
		index.Fields("workspace_id", "ts"),
		index.Fields("thread_id", "parent_checkpoint_id"),
	}
}
