package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity. The table is
// append-only; rows are never updated or deleted by the application.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("kind").
			Immutable().
			Comment("routing_violation, constitutional_block, critic_escalation, ..."),
		field.Enum("severity").
			Values("info", "warning", "error", "critical").
			Immutable(),
		field.String("actor_id").
			Optional().
			Immutable(),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "created_at"),
		index.Fields("actor_id", "created_at"),
	}
}
