// Code generated by ent, DO NOT EDIT.

package xpevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the xpevent type in the database.
	Label = "xp_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldLevelBefore holds the string denoting the level_before field in the database.
	FieldLevelBefore = "level_before"
	// FieldLevelAfter holds the string denoting the level_after field in the database.
	FieldLevelAfter = "level_after"
	// Table holds the table name of the xpevent in the database.
	Table = "xp_events"
)

// Columns holds all SQL columns for xpevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAmount,
	FieldReason,
	FieldLevelBefore,
	FieldLevelAfter,
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
	// AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	AmountValidator func(int) error
	// ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	ReasonValidator func(string) error
	// LevelBeforeValidator is a validator for the "level_before" field. It is called by the builders before save.
	LevelBeforeValidator func(int) error
	// LevelAfterValidator is a validator for the "level_after" field. It is called by the builders before save.
	LevelAfterValidator func(int) error
)

// OrderOption defines the ordering options for the XPEvent queries.
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

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByLevelBefore orders the results by the level_before field.
func ByLevelBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevelBefore, opts...).ToFunc()
}

// ByLevelAfter orders the results by the level_after field.
func ByLevelAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevelAfter, opts...).ToFunc()
}
