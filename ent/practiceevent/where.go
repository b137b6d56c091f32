// Code generated by ent, DO NOT EDIT.

package practiceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arjunm/violino/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SongID applies equality check predicate on the "song_id" field. It's identical to SongIDEQ.
func SongID(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSongID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldScore, v))
}

// XpEarned applies equality check predicate on the "xp_earned" field. It's identical to XpEarnedEQ.
func XpEarned(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldXpEarned, v))
}

// NewSong applies equality check predicate on the "new_song" field. It's identical to NewSongEQ.
func NewSong(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldNewSong, v))
}

// StreakBonus applies equality check predicate on the "streak_bonus" field. It's identical to StreakBonusEQ.
func StreakBonus(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldStreakBonus, v))
}

// ThreeStar applies equality check predicate on the "three_star" field. It's identical to ThreeStarEQ.
func ThreeStar(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldThreeStar, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SongIDEQ applies the EQ predicate on the "song_id" field.
func SongIDEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSongID, v))
}

// SongIDNEQ applies the NEQ predicate on the "song_id" field.
func SongIDNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldSongID, v))
}

// SongIDIn applies the In predicate on the "song_id" field.
func SongIDIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldSongID, vs...))
}

// SongIDNotIn applies the NotIn predicate on the "song_id" field.
func SongIDNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldSongID, vs...))
}

// SongIDGT applies the GT predicate on the "song_id" field.
func SongIDGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldSongID, v))
}

// SongIDGTE applies the GTE predicate on the "song_id" field.
func SongIDGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldSongID, v))
}

// SongIDLT applies the LT predicate on the "song_id" field.
func SongIDLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldSongID, v))
}

// SongIDLTE applies the LTE predicate on the "song_id" field.
func SongIDLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldSongID, v))
}

// SongIDContains applies the Contains predicate on the "song_id" field.
func SongIDContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldSongID, v))
}

// SongIDHasPrefix applies the HasPrefix predicate on the "song_id" field.
func SongIDHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldSongID, v))
}

// SongIDHasSuffix applies the HasSuffix predicate on the "song_id" field.
func SongIDHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldSongID, v))
}

// SongIDEqualFold applies the EqualFold predicate on the "song_id" field.
func SongIDEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldSongID, v))
}

// SongIDContainsFold applies the ContainsFold predicate on the "song_id" field.
func SongIDContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldSongID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldScore, v))
}

// XpEarnedEQ applies the EQ predicate on the "xp_earned" field.
func XpEarnedEQ(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldXpEarned, v))
}

// XpEarnedNEQ applies the NEQ predicate on the "xp_earned" field.
func XpEarnedNEQ(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldXpEarned, v))
}

// XpEarnedIn applies the In predicate on the "xp_earned" field.
func XpEarnedIn(vs ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldXpEarned, vs...))
}

// XpEarnedNotIn applies the NotIn predicate on the "xp_earned" field.
func XpEarnedNotIn(vs ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldXpEarned, vs...))
}

// XpEarnedGT applies the GT predicate on the "xp_earned" field.
func XpEarnedGT(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldXpEarned, v))
}

// XpEarnedGTE applies the GTE predicate on the "xp_earned" field.
func XpEarnedGTE(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldXpEarned, v))
}

// XpEarnedLT applies the LT predicate on the "xp_earned" field.
func XpEarnedLT(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldXpEarned, v))
}

// XpEarnedLTE applies the LTE predicate on the "xp_earned" field.
func XpEarnedLTE(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldXpEarned, v))
}

// NewSongEQ applies the EQ predicate on the "new_song" field.
func NewSongEQ(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldNewSong, v))
}

// NewSongNEQ applies the NEQ predicate on the "new_song" field.
func NewSongNEQ(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldNewSong, v))
}

// StreakBonusEQ applies the EQ predicate on the "streak_bonus" field.
func StreakBonusEQ(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldStreakBonus, v))
}

// StreakBonusNEQ applies the NEQ predicate on the "streak_bonus" field.
func StreakBonusNEQ(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldStreakBonus, v))
}

// StreakBonusIn applies the In predicate on the "streak_bonus" field.
func StreakBonusIn(vs ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldStreakBonus, vs...))
}

// StreakBonusNotIn applies the NotIn predicate on the "streak_bonus" field.
func StreakBonusNotIn(vs ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldStreakBonus, vs...))
}

// StreakBonusGT applies the GT predicate on the "streak_bonus" field.
func StreakBonusGT(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldStreakBonus, v))
}

// StreakBonusGTE applies the GTE predicate on the "streak_bonus" field.
func StreakBonusGTE(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldStreakBonus, v))
}

// StreakBonusLT applies the LT predicate on the "streak_bonus" field.
func StreakBonusLT(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldStreakBonus, v))
}

// StreakBonusLTE applies the LTE predicate on the "streak_bonus" field.
func StreakBonusLTE(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldStreakBonus, v))
}

// ThreeStarEQ applies the EQ predicate on the "three_star" field.
func ThreeStarEQ(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldThreeStar, v))
}

// ThreeStarNEQ applies the NEQ predicate on the "three_star" field.
func ThreeStarNEQ(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldThreeStar, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeEvent) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeEvent) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeEvent) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.NotPredicates(p))
}
