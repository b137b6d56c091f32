// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arjunm/violino/ent/xpevent"
)

// XPEvent is the model entity for the XPEvent schema.
type XPEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount int `json:"amount,omitempty"`
	// Grant source: "practice" or "award"
	Reason string `json:"reason,omitempty"`
	// LevelBefore holds the value of the "level_before" field.
	LevelBefore int `json:"level_before,omitempty"`
	// LevelAfter holds the value of the "level_after" field.
	LevelAfter   int `json:"level_after,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*XPEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case xpevent.FieldID, xpevent.FieldSequence, xpevent.FieldAmount, xpevent.FieldLevelBefore, xpevent.FieldLevelAfter:
			values[i] = new(sql.NullInt64)
		case xpevent.FieldReason:
			values[i] = new(sql.NullString)
		case xpevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the XPEvent fields.
func (_m *XPEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case xpevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case xpevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case xpevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case xpevent.FieldAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = int(value.Int64)
			}
		case xpevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case xpevent.FieldLevelBefore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level_before", values[i])
			} else if value.Valid {
				_m.LevelBefore = int(value.Int64)
			}
		case xpevent.FieldLevelAfter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level_after", values[i])
			} else if value.Valid {
				_m.LevelAfter = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the XPEvent.
// This includes values selected through modifiers, order, etc.
func (_m *XPEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this XPEvent.
// Note that you need to call XPEvent.Unwrap() before calling this method if this XPEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *XPEvent) Update() *XPEventUpdateOne {
	return NewXPEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the XPEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *XPEvent) Unwrap() *XPEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: XPEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *XPEvent) String() string {
	var builder strings.Builder
	builder.WriteString("XPEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("level_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.LevelBefore))
	builder.WriteString(", ")
	builder.WriteString("level_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.LevelAfter))
	builder.WriteByte(')')
	return builder.String()
}

// XPEvents is a parsable slice of XPEvent.
type XPEvents []*XPEvent
