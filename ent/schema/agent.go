package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity. Tier is derived
// from the first digit of the identifier.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable().
			Comment("5-digit identifier, first digit encodes the tier"),
		field.Enum("tier").
			Values("head", "council", "lead", "task").
			Immutable(),
		field.String("parent_id").
			Optional().
			Comment("Empty only for the Head"),
		field.Enum("status").
			Values("initializing", "active", "idle_working", "idle_paused",
				"deliberating", "working", "reviewing", "suspended", "terminated").
			Default("initializing"),
		field.Bool("persistent").
			Default(false).
			Comment("Persistent agents survive idle-mode liquidation"),
		field.Text("ethos").
			Optional().
			Comment("Working-memory ethos, owned exclusively by the agent"),
		field.String("preferred_config_id").
			Optional().
			Nillable(),
		field.String("saved_config_id").
			Optional().
			Nillable().
			Comment("Stashed config while in idle mode"),
		field.Int("recent_violations").
			Default(0),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("children", Agent.Type).
			From("parent").
			Field("parent_id").
			Unique(),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("executions", Execution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("capability_overrides", CapabilityOverride.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("model_configs", ModelConfig.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parent_id"),
		index.Fields("status"),
		index.Fields("tier", "status"),
	}
}
