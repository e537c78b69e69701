package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SystemSetting holds the schema definition for the SystemSetting entity:
// a key/value row for runtime-tunable limits such as daily_token_limit and
// daily_cost_limit.
type SystemSetting struct {
	ent.Schema
}

// Fields of the SystemSetting.
func (SystemSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("setting_key").
			Unique().
			Immutable(),
		field.String("value"),
		field.String("updated_by").
			Optional().
			Comment("Admin subject that last changed the value"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
