package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Vote holds the schema definition for the Vote entity. One vote per agent
// per deliberation.
type Vote struct {
	ent.Schema
}

// Fields of the Vote.
func (Vote) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("vote_id").
			Unique().
			Immutable(),
		field.String("deliberation_id").
			Immutable(),
		field.String("voter_id").
			Immutable(),
		field.Enum("choice").
			Values("approve", "reject", "abstain").
			Immutable(),
		field.Text("rationale").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Vote.
func (Vote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("deliberation", Deliberation.Type).
			Ref("votes").
			Field("deliberation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Vote.
func (Vote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("deliberation_id", "voter_id").
			Unique(),
	}
}
