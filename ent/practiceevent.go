// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arjunm/violino/ent/practiceevent"
)

// PracticeEvent is the model entity for the PracticeEvent schema.
type PracticeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SongID holds the value of the "song_id" field.
	SongID string `json:"song_id,omitempty"`
	// Performance score after clamping to [0,100]
	Score float64 `json:"score,omitempty"`
	// XpEarned holds the value of the "xp_earned" field.
	XpEarned int `json:"xp_earned,omitempty"`
	// NewSong holds the value of the "new_song" field.
	NewSong bool `json:"new_song,omitempty"`
	// StreakBonus holds the value of the "streak_bonus" field.
	StreakBonus int `json:"streak_bonus,omitempty"`
	// ThreeStar holds the value of the "three_star" field.
	ThreeStar bool `json:"three_star,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID    string `json:"session_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practiceevent.FieldNewSong, practiceevent.FieldThreeStar:
			values[i] = new(sql.NullBool)
		case practiceevent.FieldScore:
			values[i] = new(sql.NullFloat64)
		case practiceevent.FieldID, practiceevent.FieldSequence, practiceevent.FieldXpEarned, practiceevent.FieldStreakBonus:
			values[i] = new(sql.NullInt64)
		case practiceevent.FieldSongID, practiceevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case practiceevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeEvent fields.
func (_m *PracticeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practiceevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case practiceevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case practiceevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case practiceevent.FieldSongID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field song_id", values[i])
			} else if value.Valid {
				_m.SongID = value.String
			}
		case practiceevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case practiceevent.FieldXpEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_earned", values[i])
			} else if value.Valid {
				_m.XpEarned = int(value.Int64)
			}
		case practiceevent.FieldNewSong:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field new_song", values[i])
			} else if value.Valid {
				_m.NewSong = value.Bool
			}
		case practiceevent.FieldStreakBonus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak_bonus", values[i])
			} else if value.Valid {
				_m.StreakBonus = int(value.Int64)
			}
		case practiceevent.FieldThreeStar:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field three_star", values[i])
			} else if value.Valid {
				_m.ThreeStar = value.Bool
			}
		case practiceevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeEvent.
// Note that you need to call PracticeEvent.Unwrap() before calling this method if this PracticeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeEvent) Update() *PracticeEventUpdateOne {
	return NewPracticeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeEvent) Unwrap() *PracticeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("song_id=")
	builder.WriteString(_m.SongID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("xp_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpEarned))
	builder.WriteString(", ")
	builder.WriteString("new_song=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewSong))
	builder.WriteString(", ")
	builder.WriteString("streak_bonus=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakBonus))
	builder.WriteString(", ")
	builder.WriteString("three_star=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThreeStar))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteByte(')')
	return builder.String()
}

// PracticeEvents is a parsable slice of PracticeEvent.
type PracticeEvents []*PracticeEvent
