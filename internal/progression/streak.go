package progression

import (
	"time"

	"github.com/arjunm/violino/internal/dateutil"
)

// DayClass classifies the last practice date relative to now.
type DayClass int

const (
	// DayToday means the player already practiced today.
	DayToday DayClass = iota
	// DayYesterday means the streak chain is intact and today's first
	// practice is still pending.
	DayYesterday
	// DayBroken means the last practice is older than yesterday, or
	// there has never been one.
	DayBroken
)

// ClassifyDay returns the DayClass for lastPracticeDate at now.
func ClassifyDay(lastPracticeDate string, now time.Time) DayClass {
	switch {
	case dateutil.IsToday(lastPracticeDate, now):
		return DayToday
	case dateutil.IsYesterday(lastPracticeDate, now):
		return DayYesterday
	default:
		return DayBroken
	}
}

// StreakCheck reports the outcome of a passive streak check.
type StreakCheck struct {
	StreakBroken         bool
	NewStreak            int
	IsFirstPracticeToday bool
}

// CheckStreak applies the passive (no-practice) streak rule, e.g. on
// app open. It mutates state only when the streak is broken — zeroing
// StreakDays and TodayPracticeCount — and leaves LastPracticeDate
// untouched until an actual practice occurs, which makes the check
// idempotent within a day.
func CheckStreak(state GameState, now time.Time) (GameState, StreakCheck) {
	switch ClassifyDay(state.LastPracticeDate, now) {
	case DayToday:
		return state, StreakCheck{NewStreak: state.StreakDays}
	case DayYesterday:
		return state, StreakCheck{NewStreak: state.StreakDays, IsFirstPracticeToday: true}
	default:
		broken := state.StreakDays > 0
		next := state.Clone()
		next.StreakDays = 0
		next.TodayPracticeCount = 0
		return next, StreakCheck{StreakBroken: broken, IsFirstPracticeToday: true}
	}
}

// nextStreakDays returns the streak length a practice completed at now
// would produce: unchanged if today already has a practice, incremented
// on a yesterday-chain, otherwise restarted at 1.
func nextStreakDays(state GameState, now time.Time) int {
	switch ClassifyDay(state.LastPracticeDate, now) {
	case DayToday:
		return state.StreakDays
	case DayYesterday:
		return state.StreakDays + 1
	default:
		return 1
	}
}
