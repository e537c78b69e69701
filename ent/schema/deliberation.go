package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Deliberation holds the schema definition for the Deliberation entity: a
// council review opened by a critic escalation or a contested approval.
type Deliberation struct {
	ent.Schema
}

// Fields of the Deliberation.
func (Deliberation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("deliberation_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Optional().
			Immutable(),
		field.Text("topic").
			Immutable(),
		field.String("opened_by").
			Immutable().
			Comment("Agent that triggered the deliberation"),
		field.Enum("status").
			Values("open", "resolved", "dismissed").
			Default("open"),
		field.Text("resolution").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Deliberation.
func (Deliberation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("deliberations").
			Field("task_id").
			Unique().
			Immutable(),
		edge.To("votes", Vote.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Deliberation.
func (Deliberation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("task_id"),
	}
}
