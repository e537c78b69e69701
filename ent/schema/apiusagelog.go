package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APIUsageLog holds the schema definition for the APIUsageLog entity: one
// row per provider call, the source for daily budget accounting.
type APIUsageLog struct {
	ent.Schema
}

// Fields of the APIUsageLog.
func (APIUsageLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("usage_id").
			Unique().
			Immutable(),
		field.String("key_id").
			Immutable(),
		field.String("agent_id").
			Optional().
			Immutable(),
		field.String("model").
			Immutable(),
		field.Int("input_tokens").
			Default(0).
			Immutable(),
		field.Int("output_tokens").
			Default(0).
			Immutable(),
		field.Float("cost").
			Default(0).
			Immutable().
			Comment("USD"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the APIUsageLog.
func (APIUsageLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("key", APIKey.Type).
			Ref("usage_logs").
			Field("key_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the APIUsageLog.
func (APIUsageLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("key_id", "created_at"),
		index.Fields("agent_id", "created_at"),
	}
}
