package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeEvent records a completed practice attempt on a song.
type PracticeEvent struct {
	ent.Schema
}

func (PracticeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PracticeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("song_id").NotEmpty(),
		field.Float("score").
			Comment("Performance score after clamping to [0,100]"),
		field.Int("xp_earned").NonNegative(),
		field.Bool("new_song"),
		field.Int("streak_bonus").NonNegative(),
		field.Bool("three_star"),
		field.String("session_id").NotEmpty(),
	}
}

func (PracticeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("song_id"),
		index.Fields("session_id"),
	}
}
