package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StreakEvent records a daily-streak transition.
type StreakEvent struct {
	ent.Schema
}

func (StreakEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StreakEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("action").NotEmpty().
			Comment(`Transition kind: "start", "continue" or "break"`),
		field.Int("streak_days").NonNegative(),
	}
}

func (StreakEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action"),
	}
}
