// Code generated by ent, DO NOT EDIT.

package practiceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practiceevent type in the database.
	Label = "practice_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSongID holds the string denoting the song_id field in the database.
	FieldSongID = "song_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldXpEarned holds the string denoting the xp_earned field in the database.
	FieldXpEarned = "xp_earned"
	// FieldNewSong holds the string denoting the new_song field in the database.
	FieldNewSong = "new_song"
	// FieldStreakBonus holds the string denoting the streak_bonus field in the database.
	FieldStreakBonus = "streak_bonus"
	// FieldThreeStar holds the string denoting the three_star field in the database.
	FieldThreeStar = "three_star"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// Table holds the table name of the practiceevent in the database.
	Table = "practice_events"
)

// Columns holds all SQL columns for practiceevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSongID,
	FieldScore,
	FieldXpEarned,
	FieldNewSong,
	FieldStreakBonus,
	FieldThreeStar,
	FieldSessionID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SongIDValidator is a validator for the "song_id" field. It is called by the builders before save.
	SongIDValidator func(string) error
	// XpEarnedValidator is a validator for the "xp_earned" field. It is called by the builders before save.
	XpEarnedValidator func(int) error
	// StreakBonusValidator is a validator for the "streak_bonus" field. It is called by the builders before save.
	StreakBonusValidator func(int) error
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
)

// OrderOption defines the ordering options for the PracticeEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySongID orders the results by the song_id field.
func BySongID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSongID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByXpEarned orders the results by the xp_earned field.
func ByXpEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpEarned, opts...).ToFunc()
}

// ByNewSong orders the results by the new_song field.
func ByNewSong(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewSong, opts...).ToFunc()
}

// ByStreakBonus orders the results by the streak_bonus field.
func ByStreakBonus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakBonus, opts...).ToFunc()
}

// ByThreeStar orders the results by the three_star field.
func ByThreeStar(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreeStar, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}
