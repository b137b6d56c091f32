package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// XPEvent records an XP grant, whether from a practice or a direct award.
type XPEvent struct {
	ent.Schema
}

func (XPEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (XPEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("amount").NonNegative(),
		field.String("reason").NotEmpty().
			Comment(`Grant source: "practice" or "award"`),
		field.Int("level_before").Positive(),
		field.Int("level_after").Positive(),
	}
}

func (XPEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("reason"),
	}
}
