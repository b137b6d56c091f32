// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// PracticeEvent is the predicate function for practiceevent builders.
type PracticeEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// StreakEvent is the predicate function for streakevent builders.
type StreakEvent func(*sql.Selector)

// XPEvent is the predicate function for xpevent builders.
type XPEvent func(*sql.Selector)
