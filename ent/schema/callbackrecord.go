package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CallbackRecord holds the schema definition for one outbound REST dispatch
// awaiting its callback. The correlation token is the idempotency key:
// consumption flips consumed_at exactly once.
type CallbackRecord struct {
	ent.Schema
}

// Fields of the CallbackRecord.
func (CallbackRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("correlation_token").
			Unique().
			Immutable(),
		field.String("thread_id").
			Immutable(),
		field.String("skill_name").
			Immutable(),
		field.Time("deadline_ts").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("consumed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the CallbackRecord.
func (CallbackRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("callbacks").
			Field("thread_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CallbackRecord.
func (CallbackRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_id"),
		// Deadline sweep over unconsumed records.
		index.Fields("deadline_ts").
			Annotations(entsql.IndexWhere("consumed_at IS NULL")),
	}
}
