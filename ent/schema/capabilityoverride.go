package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CapabilityOverride holds the schema definition for the CapabilityOverride
// entity: a per-agent grant or revocation layered over the tier defaults.
type CapabilityOverride struct {
	ent.Schema
}

// Fields of the CapabilityOverride.
func (CapabilityOverride) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("override_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("capability").
			Immutable(),
		field.Enum("mode").
			Values("grant", "revoke"),
		field.String("granted_by").
			Optional().
			Comment("Agent that issued the override"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the CapabilityOverride.
func (CapabilityOverride) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("capability_overrides").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CapabilityOverride.
func (CapabilityOverride) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "capability").
			Unique(),
	}
}
