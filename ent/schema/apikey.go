package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APIKey holds the schema definition for the APIKey entity: a provider key
// with its health and spend accounting.
type APIKey struct {
	ent.Schema
}

// Fields of the APIKey.
func (APIKey) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("key_id").
			Unique().
			Immutable(),
		field.String("provider").
			Immutable(),
		field.String("encrypted_secret").
			Sensitive(),
		field.Int("priority").
			Default(100).
			Comment("Lower number wins"),
		field.Int("consecutive_failures").
			Default(0),
		field.Time("last_failure_at").
			Optional().
			Nillable(),
		field.Time("cooldown_until").
			Optional().
			Nillable(),
		field.Float("monthly_budget").
			Default(0).
			Comment("USD; 0 = unlimited"),
		field.Float("current_spend").
			Default(0),
		field.Time("last_spend_reset").
			Default(time.Now),
		field.Bool("active").
			Default(true),
		field.Enum("status").
			Values("ok", "error").
			Default("ok"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the APIKey.
func (APIKey) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("usage_logs", APIUsageLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the APIKey.
func (APIKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider", "active"),
	}
}
