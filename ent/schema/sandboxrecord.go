package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SandboxRecord holds the schema definition for the SandboxRecord entity:
// one row per container created, closed out when the container is destroyed.
type SandboxRecord struct {
	ent.Schema
}

// Fields of the SandboxRecord.
func (SandboxRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sandbox_id").
			Unique().
			Immutable(),
		field.String("container_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("image").
			Immutable(),
		field.String("network_mode").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("destroyed_at").
			Optional().
			Nillable(),
		field.String("destroy_reason").
			Optional().
			Nillable(),
	}
}

// Indexes of the SandboxRecord.
func (SandboxRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		// Leak detection: rows with no destroyed_at past the age cutoff.
		index.Fields("destroyed_at", "created_at"),
	}
}
