package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CriticReview holds the schema definition for the CriticReview entity.
type CriticReview struct {
	ent.Schema
}

// Fields of the CriticReview.
func (CriticReview) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("review_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("critic_id").
			Immutable(),
		field.Enum("critic_type").
			Values("code-critic", "output-critic", "plan-critic").
			Immutable(),
		field.String("submission_hash").
			Immutable().
			Comment("SHA-256 fingerprint of the reviewed submission"),
		field.Enum("verdict").
			Values("pass", "reject", "escalate").
			Immutable(),
		field.Text("reason").
			Optional().
			Immutable(),
		field.JSON("suggestions", []string{}).
			Optional().
			Immutable(),
		field.Int("attempt").
			Immutable().
			Comment("Submission count for this (task, critic type)"),
		field.Bool("cached").
			Default(false).
			Immutable().
			Comment("Verdict served from the fingerprint cache"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CriticReview.
func (CriticReview) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("critic_reviews").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CriticReview.
func (CriticReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "submission_hash"),
		index.Fields("critic_id"),
	}
}
