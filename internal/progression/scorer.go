package progression

import (
	"math"
	"time"

	"github.com/arjunm/violino/internal/dateutil"
	"github.com/arjunm/violino/internal/levels"
)

// Scoring constants.
const (
	// BaseXPFactor converts a 0-100 score into base XP.
	BaseXPFactor = 0.5
	// NewSongBonus is the flat XP bonus for a first completion of a song.
	NewSongBonus = 20
	// StreakBonusPerDay is the XP bonus per streak day on the first
	// practice of the day.
	StreakBonusPerDay = 5
	// MaxStreakBonus caps the streak bonus.
	MaxStreakBonus = 50
	// ThreeStarScore is the score required for a three-star completion.
	ThreeStarScore = 100
)

// PracticeResult summarizes a completed practice.
type PracticeResult struct {
	XPEarned    int
	LeveledUp   bool
	NewLevel    int
	IsNewSong   bool
	StreakBonus int
	IsThreeStar bool
}

// ScorePractice computes the full next state for a practice of songID
// at the given score. Scores outside [0,100] are clamped before any
// term is computed. The returned state reflects the complete delta:
// XP, level, streak fields, song sets, daily counters and the
// recent-practice list.
func ScorePractice(state GameState, songID string, score float64, now time.Time) (GameState, PracticeResult) {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	next := state.Clone()
	firstToday := !dateutil.IsToday(state.LastPracticeDate, now)

	result := PracticeResult{
		IsNewSong:   !state.CompletedSongs[songID],
		IsThreeStar: score >= ThreeStarScore,
	}

	xp := int(math.Floor(score * BaseXPFactor))
	if result.IsNewSong {
		xp += NewSongBonus
	}

	if firstToday {
		streak := nextStreakDays(state, now)
		bonus := streak * StreakBonusPerDay
		if bonus > MaxStreakBonus {
			bonus = MaxStreakBonus
		}
		result.StreakBonus = bonus
		xp += bonus

		next.StreakDays = streak
		if streak > next.BestStreak {
			next.BestStreak = streak
		}
		// New calendar day: today's counters start over.
		next.TodayPracticeCount = 0
		next.TodayXP = 0
	}

	result.XPEarned = xp

	next.XP += xp
	next.Level = levels.LevelForXP(next.XP)
	result.LeveledUp = next.Level > state.Level
	result.NewLevel = next.Level

	next.LastPracticeDate = dateutil.Day(now)
	next.CompletedSongs[songID] = true
	if result.IsThreeStar {
		next.ThreeStarSongs[songID] = true
	}

	next.TodayPracticeCount++
	next.TodayXP += xp
	next.RecentPractice = pushRecent(next.RecentPractice, PracticeRecord{
		SongID:    songID,
		Timestamp: now.UnixMilli(),
		Score:     score,
		XPEarned:  xp,
	})

	return next, result
}
