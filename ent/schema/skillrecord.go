package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SkillRecord holds the schema definition for database-sourced skills.
// The manifest column stores the same YAML document a filesystem SKILL.md
// front-matter carries; the registry parses it on load.
type SkillRecord struct {
	ent.Schema
}

// Fields of the SkillRecord.
func (SkillRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("workspace_id"),
		field.Bool("is_public").
			Default(false),
		field.Text("manifest"),
		field.String("created_by").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SkillRecord.
func (SkillRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
		index.Fields("name", "workspace_id").
			Unique(),
	}
}
