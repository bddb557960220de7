package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds the schema definition for the Run entity: one workflow thread.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("thread_id").
			Unique().
			Immutable(),
		field.String("run_name").
			Optional().
			Nillable(),
		field.Text("sop").
			Comment("Plain-language instruction given to the planner (full-text searchable)"),
		field.JSON("initial_data", map[string]interface{}{}).
			Optional().
			Comment("Seed of the data store"),
		field.Enum("status").
			Values("pending", "running", "paused", "completed", "error").
			Default("pending"),
		field.String("owner_id"),
		field.String("workspace_id"),
		field.String("parent_thread_id").
			Optional().
			Nillable().
			Comment("Set when this run was forked/rerun"),
		field.String("llm_model").
			Optional().
			Nillable().
			Comment("Per-run model override"),
		field.String("ack_key").
			Optional().
			Nillable().
			Unique().
			Comment("Client idempotency key for run creation"),
		field.String("active_skill").
			Optional().
			Nillable(),
		field.JSON("last_error", map[string]interface{}{}).
			Optional(),
		field.JSON("resume_payload", map[string]interface{}{}).
			Optional().
			Comment("Delivered HITL approval awaiting the next engine claim"),
		field.JSON("callback_payload", map[string]interface{}{}).
			Optional().
			Comment("Consumed REST callback awaiting the next engine claim"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker first claimed the run"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("checkpoints", Checkpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("callbacks", CallbackRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("owner_id"),
		index.Fields("workspace_id"),

		index.Fields("status", "created_at"),
		index.Fields("workspace_id", "status"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
