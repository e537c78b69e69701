package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Execution holds the schema definition for the Execution entity. Only the
// summary is stored; raw result data never leaves the sandbox.
type Execution struct {
	ent.Schema
}

// Fields of the Execution.
func (Execution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("task_id").
			Optional().
			Immutable(),
		field.Text("code").
			Immutable(),
		field.String("language").
			Default("python").
			Immutable(),
		field.JSON("dependencies", []string{}).
			Optional().
			Immutable(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "blocked").
			Default("pending"),
		field.JSON("summary", map[string]interface{}{}).
			Optional(),
		field.JSON("security_result", map[string]interface{}{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("sandbox_id").
			Optional(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Execution.
func (Execution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("executions").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Execution.
func (Execution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "status"),
		index.Fields("task_id"),
	}
}
