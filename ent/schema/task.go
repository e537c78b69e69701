package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Comment("Assignee"),
		field.String("title"),
		field.Text("description"),
		field.String("type").
			Optional().
			Comment("Workload class hint for the allocator"),
		field.Enum("status").
			Values("pending", "deliberating", "approved", "rejected",
				"delegating", "assigned", "in_progress", "review",
				"completed", "failed", "cancelled").
			Default("pending"),
		field.Enum("priority").
			Values("sovereign", "critical", "high", "normal", "low", "idle").
			Default("normal"),
		field.Int("retry_count").
			Default(0),
		field.Int("max_retries").
			Default(3),
		field.Int("progress").
			Default(0).
			Comment("Percent complete, 0-100"),
		field.Text("result").
			Optional(),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("tasks").
			Field("agent_id").
			Unique().
			Required(),
		edge.To("events", TaskEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("critic_reviews", CriticReview.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("deliberations", Deliberation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "status"),
		index.Fields("status"),
	}
}
