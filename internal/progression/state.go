// Package progression implements the XP, level, streak and scoring
// rules of the practice game, together with the persisted-state
// contract. All transition logic is pure (state, input, now) ->
// (state, result); the Service is the single mutation point.
package progression

import "github.com/arjunm/violino/internal/levels"

// RecentPracticeCap bounds the recent-practice list.
const RecentPracticeCap = 10

// DefaultAvatar is the avatar emoji for a fresh player.
const DefaultAvatar = "🎻"

// PracticeRecord is a single completed practice attempt. Immutable
// once created.
type PracticeRecord struct {
	SongID    string
	Timestamp int64 // epoch milliseconds
	Score     float64
	XPEarned  int
}

// GameState is the aggregate progression state. Exactly one Service
// owns it for the process lifetime; every mutation replaces the whole
// value, so readers never observe a partially updated state.
type GameState struct {
	XP    int
	Level int

	StreakDays       int
	BestStreak       int
	LastPracticeDate string // calendar date (YYYY-MM-DD), empty when never practiced

	CompletedSongs map[string]bool
	ThreeStarSongs map[string]bool

	TodayPracticeCount int
	TodayXP            int

	// RecentPractice holds the most recent practices, newest first,
	// one entry per song, capped at RecentPracticeCap.
	RecentPractice []PracticeRecord

	TotalPracticeTime int // seconds
	Nickname          string
	AvatarEmoji       string
}

// NewGameState returns the default state for a fresh player.
func NewGameState() GameState {
	return GameState{
		Level:          1,
		CompletedSongs: make(map[string]bool),
		ThreeStarSongs: make(map[string]bool),
		AvatarEmoji:    DefaultAvatar,
	}
}

// Clone returns an independent deep copy of the state.
func (s GameState) Clone() GameState {
	next := s
	next.CompletedSongs = make(map[string]bool, len(s.CompletedSongs))
	for id := range s.CompletedSongs {
		next.CompletedSongs[id] = true
	}
	next.ThreeStarSongs = make(map[string]bool, len(s.ThreeStarSongs))
	for id := range s.ThreeStarSongs {
		next.ThreeStarSongs[id] = true
	}
	next.RecentPractice = append([]PracticeRecord(nil), s.RecentPractice...)
	return next
}

// pushRecent prepends rec, dropping any earlier entry for the same song
// and trimming to RecentPracticeCap.
func pushRecent(list []PracticeRecord, rec PracticeRecord) []PracticeRecord {
	out := make([]PracticeRecord, 0, len(list)+1)
	out = append(out, rec)
	for _, r := range list {
		if r.SongID == rec.SongID {
			continue
		}
		out = append(out, r)
	}
	if len(out) > RecentPracticeCap {
		out = out[:RecentPracticeCap]
	}
	return out
}

// normalize restores the state invariants after deserialization:
// non-negative counters, level derived from XP, best streak at least
// the current streak, allocated sets.
func (s *GameState) normalize() {
	if s.XP < 0 {
		s.XP = 0
	}
	s.Level = levels.LevelForXP(s.XP)
	if s.StreakDays < 0 {
		s.StreakDays = 0
	}
	if s.BestStreak < s.StreakDays {
		s.BestStreak = s.StreakDays
	}
	if s.TodayPracticeCount < 0 {
		s.TodayPracticeCount = 0
	}
	if s.TodayXP < 0 {
		s.TodayXP = 0
	}
	if s.TotalPracticeTime < 0 {
		s.TotalPracticeTime = 0
	}
	if s.CompletedSongs == nil {
		s.CompletedSongs = make(map[string]bool)
	}
	if s.ThreeStarSongs == nil {
		s.ThreeStarSongs = make(map[string]bool)
	}
	if len(s.RecentPractice) > RecentPracticeCap {
		s.RecentPractice = s.RecentPractice[:RecentPracticeCap]
	}
	if s.AvatarEmoji == "" {
		s.AvatarEmoji = DefaultAvatar
	}
}
