package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskEvent holds the schema definition for the TaskEvent entity: the
// append-only task log from which state is reconstructed.
type TaskEvent struct {
	ent.Schema
}

// Fields of the TaskEvent.
func (TaskEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Enum("type").
			Values("TASK_CREATED", "STATUS_CHANGED", "PROGRESS_UPDATED",
				"RETRY_SCHEDULED", "COMPLETED", "FAILED", "CANCELLED").
			Immutable(),
		field.Int("seq").
			Immutable().
			Comment("Tie-breaker for events sharing a timestamp"),
		field.JSON("data", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("occurred_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskEvent.
func (TaskEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("events").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TaskEvent.
func (TaskEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "occurred_at", "seq"),
	}
}
