package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Credential holds the schema definition for tenanted data-source
// credentials consumed by data_query actions and pipeline query steps.
type Credential struct {
	ent.Schema
}

// Fields of the Credential.
func (Credential) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("ref").
			Comment("Name skills reference via credential_ref"),
		field.String("source").
			Comment("postgres | mysql | sqlite | mongodb"),
		field.String("dsn").
			Sensitive(),
		field.JSON("params", map[string]string{}).
			Optional().
			Comment("Driver extras, e.g. mongodb database name"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the Credential.
func (Credential) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "ref").
			Unique(),
	}
}
