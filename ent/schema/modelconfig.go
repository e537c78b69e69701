package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModelConfig holds the schema definition for the ModelConfig entity: a
// reusable (agent, model) allocation produced by the model allocator.
type ModelConfig struct {
	ent.Schema
}

// Fields of the ModelConfig.
func (ModelConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("config_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("model").
			Immutable(),
		field.Float("temperature").
			Optional(),
		field.Int("max_tokens").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ModelConfig.
func (ModelConfig) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("model_configs").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ModelConfig.
func (ModelConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "model").
			Unique(),
	}
}
