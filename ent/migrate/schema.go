// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PracticeEventsColumns holds the columns for the "practice_events" table.
	PracticeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "song_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "xp_earned", Type: field.TypeInt},
		{Name: "new_song", Type: field.TypeBool},
		{Name: "streak_bonus", Type: field.TypeInt},
		{Name: "three_star", Type: field.TypeBool},
		{Name: "session_id", Type: field.TypeString},
	}
	// PracticeEventsTable holds the schema information for the "practice_events" table.
	PracticeEventsTable = &schema.Table{
		Name:       "practice_events",
		Columns:    PracticeEventsColumns,
		PrimaryKey: []*schema.Column{PracticeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practiceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[1]},
			},
			{
				Name:    "practiceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[2]},
			},
			{
				Name:    "practiceevent_song_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[3]},
			},
			{
				Name:    "practiceevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[9]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// StreakEventsColumns holds the columns for the "streak_events" table.
	StreakEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "streak_days", Type: field.TypeInt},
	}
	// StreakEventsTable holds the schema information for the "streak_events" table.
	StreakEventsTable = &schema.Table{
		Name:       "streak_events",
		Columns:    StreakEventsColumns,
		PrimaryKey: []*schema.Column{StreakEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "streakevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{StreakEventsColumns[1]},
			},
			{
				Name:    "streakevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StreakEventsColumns[2]},
			},
			{
				Name:    "streakevent_action",
				Unique:  false,
				Columns: []*schema.Column{StreakEventsColumns[3]},
			},
		},
	}
	// XpEventsColumns holds the columns for the "xp_events" table.
	XpEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "amount", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
		{Name: "level_before", Type: field.TypeInt},
		{Name: "level_after", Type: field.TypeInt},
	}
	// XpEventsTable holds the schema information for the "xp_events" table.
	XpEventsTable = &schema.Table{
		Name:       "xp_events",
		Columns:    XpEventsColumns,
		PrimaryKey: []*schema.Column{XpEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "xpevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[1]},
			},
			{
				Name:    "xpevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[2]},
			},
			{
				Name:    "xpevent_reason",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PracticeEventsTable,
		SnapshotsTable,
		StreakEventsTable,
		XpEventsTable,
	}
)

func init() {
}
