// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/arjunm/violino/ent/practiceevent"
	"github.com/arjunm/violino/ent/schema"
	"github.com/arjunm/violino/ent/snapshot"
	"github.com/arjunm/violino/ent/streakevent"
	"github.com/arjunm/violino/ent/xpevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	practiceeventMixin := schema.PracticeEvent{}.Mixin()
	practiceeventMixinFields0 := practiceeventMixin[0].Fields()
	_ = practiceeventMixinFields0
	practiceeventFields := schema.PracticeEvent{}.Fields()
	_ = practiceeventFields
	// practiceeventDescTimestamp is the schema descriptor for timestamp field.
	practiceeventDescTimestamp := practiceeventMixinFields0[1].Descriptor()
	// practiceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	practiceevent.DefaultTimestamp = practiceeventDescTimestamp.Default.(func() time.Time)
	// practiceeventDescSongID is the schema descriptor for song_id field.
	practiceeventDescSongID := practiceeventFields[0].Descriptor()
	// practiceevent.SongIDValidator is a validator for the "song_id" field. It is called by the builders before save.
	practiceevent.SongIDValidator = practiceeventDescSongID.Validators[0].(func(string) error)
	// practiceeventDescXpEarned is the schema descriptor for xp_earned field.
	practiceeventDescXpEarned := practiceeventFields[2].Descriptor()
	// practiceevent.XpEarnedValidator is a validator for the "xp_earned" field. It is called by the builders before save.
	practiceevent.XpEarnedValidator = practiceeventDescXpEarned.Validators[0].(func(int) error)
	// practiceeventDescStreakBonus is the schema descriptor for streak_bonus field.
	practiceeventDescStreakBonus := practiceeventFields[4].Descriptor()
	// practiceevent.StreakBonusValidator is a validator for the "streak_bonus" field. It is called by the builders before save.
	practiceevent.StreakBonusValidator = practiceeventDescStreakBonus.Validators[0].(func(int) error)
	// practiceeventDescSessionID is the schema descriptor for session_id field.
	practiceeventDescSessionID := practiceeventFields[6].Descriptor()
	// practiceevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	practiceevent.SessionIDValidator = practiceeventDescSessionID.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	streakeventMixin := schema.StreakEvent{}.Mixin()
	streakeventMixinFields0 := streakeventMixin[0].Fields()
	_ = streakeventMixinFields0
	streakeventFields := schema.StreakEvent{}.Fields()
	_ = streakeventFields
	// streakeventDescTimestamp is the schema descriptor for timestamp field.
	streakeventDescTimestamp := streakeventMixinFields0[1].Descriptor()
	// streakevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	streakevent.DefaultTimestamp = streakeventDescTimestamp.Default.(func() time.Time)
	// streakeventDescAction is the schema descriptor for action field.
	streakeventDescAction := streakeventFields[0].Descriptor()
	// streakevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	streakevent.ActionValidator = streakeventDescAction.Validators[0].(func(string) error)
	// streakeventDescStreakDays is the schema descriptor for streak_days field.
	streakeventDescStreakDays := streakeventFields[1].Descriptor()
	// streakevent.StreakDaysValidator is a validator for the "streak_days" field. It is called by the builders before save.
	streakevent.StreakDaysValidator = streakeventDescStreakDays.Validators[0].(func(int) error)
	xpeventMixin := schema.XPEvent{}.Mixin()
	xpeventMixinFields0 := xpeventMixin[0].Fields()
	_ = xpeventMixinFields0
	xpeventFields := schema.XPEvent{}.Fields()
	_ = xpeventFields
	// xpeventDescTimestamp is the schema descriptor for timestamp field.
	xpeventDescTimestamp := xpeventMixinFields0[1].Descriptor()
	// xpevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	xpevent.DefaultTimestamp = xpeventDescTimestamp.Default.(func() time.Time)
	// xpeventDescAmount is the schema descriptor for amount field.
	xpeventDescAmount := xpeventFields[0].Descriptor()
	// xpevent.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	xpevent.AmountValidator = xpeventDescAmount.Validators[0].(func(int) error)
	// xpeventDescReason is the schema descriptor for reason field.
	xpeventDescReason := xpeventFields[1].Descriptor()
	// xpevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	xpevent.ReasonValidator = xpeventDescReason.Validators[0].(func(string) error)
	// xpeventDescLevelBefore is the schema descriptor for level_before field.
	xpeventDescLevelBefore := xpeventFields[2].Descriptor()
	// xpevent.LevelBeforeValidator is a validator for the "level_before" field. It is called by the builders before save.
	xpevent.LevelBeforeValidator = xpeventDescLevelBefore.Validators[0].(func(int) error)
	// xpeventDescLevelAfter is the schema descriptor for level_after field.
	xpeventDescLevelAfter := xpeventFields[3].Descriptor()
	// xpevent.LevelAfterValidator is a validator for the "level_after" field. It is called by the builders before save.
	xpevent.LevelAfterValidator = xpeventDescLevelAfter.Validators[0].(func(int) error)
}
