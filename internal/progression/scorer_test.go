package progression

import (
	"fmt"
	"testing"
	"time"
)

func TestScorePracticePerfectNewSongFirstOfDay(t *testing.T) {
	state := NewGameState()
	next, result := ScorePractice(state, "twinkle", 100, dayD)

	// base 50 + new song 20 + streak min(1*5, 50) = 75
	if result.XPEarned != 75 {
		t.Errorf("XPEarned = %d, want 75", result.XPEarned)
	}
	if !result.IsNewSong {
		t.Error("expected new song")
	}
	if result.StreakBonus != 5 {
		t.Errorf("StreakBonus = %d, want 5", result.StreakBonus)
	}
	if !result.IsThreeStar {
		t.Error("score 100 is three-star")
	}
	if next.StreakDays != 1 || next.BestStreak != 1 {
		t.Errorf("streak = %d/%d, want 1/1", next.StreakDays, next.BestStreak)
	}
	if !next.CompletedSongs["twinkle"] || !next.ThreeStarSongs["twinkle"] {
		t.Error("song sets not updated")
	}
	if next.LastPracticeDate != "2025-03-07" {
		t.Errorf("LastPracticeDate = %q", next.LastPracticeDate)
	}
	if next.TodayPracticeCount != 1 || next.TodayXP != 75 {
		t.Errorf("today counters = %d/%d, want 1/75", next.TodayPracticeCount, next.TodayXP)
	}
}

func TestScorePracticeRepeatSongSameDay(t *testing.T) {
	state := NewGameState()
	state.LastPracticeDate = "2025-03-07"
	state.StreakDays = 1
	state.BestStreak = 1
	state.CompletedSongs["twinkle"] = true
	state.TodayPracticeCount = 1
	state.TodayXP = 75

	next, result := ScorePractice(state, "twinkle", 40, dayD)

	// base 20 only: known song, not first practice today.
	if result.XPEarned != 20 {
		t.Errorf("XPEarned = %d, want 20", result.XPEarned)
	}
	if result.IsNewSong || result.StreakBonus != 0 || result.IsThreeStar {
		t.Errorf("unexpected bonuses: %+v", result)
	}
	if next.StreakDays != 1 {
		t.Errorf("StreakDays = %d, want 1 (unchanged)", next.StreakDays)
	}
	if next.TodayPracticeCount != 2 || next.TodayXP != 95 {
		t.Errorf("today counters = %d/%d, want 2/95", next.TodayPracticeCount, next.TodayXP)
	}
}

func TestScorePracticeStreakContinuity(t *testing.T) {
	state := NewGameState()

	// Day D, then D+1: streak increments by exactly 1 each day.
	state, _ = ScorePractice(state, "twinkle", 80, dayD)
	if state.StreakDays != 1 {
		t.Fatalf("day D: StreakDays = %d, want 1", state.StreakDays)
	}
	state, _ = ScorePractice(state, "twinkle", 80, dayD1)
	if state.StreakDays != 2 {
		t.Fatalf("day D+1: StreakDays = %d, want 2", state.StreakDays)
	}

	// Skipping a day resets to 1.
	state, _ = ScorePractice(state, "twinkle", 80, state2Days(dayD1))
	if state.StreakDays != 1 {
		t.Errorf("after skipped day: StreakDays = %d, want 1", state.StreakDays)
	}
	if state.BestStreak != 2 {
		t.Errorf("BestStreak = %d, want 2", state.BestStreak)
	}
}

func state2Days(t time.Time) time.Time {
	return t.AddDate(0, 0, 2)
}

func TestScorePracticeStreakBonusCap(t *testing.T) {
	state := NewGameState()
	state.LastPracticeDate = "2025-03-06" // yesterday relative to dayD
	state.StreakDays = 20
	state.BestStreak = 20

	_, result := ScorePractice(state, "twinkle", 0, dayD)
	if result.StreakBonus != MaxStreakBonus {
		t.Errorf("StreakBonus = %d, want %d", result.StreakBonus, MaxStreakBonus)
	}
}

func TestScorePracticeClampsScore(t *testing.T) {
	tests := []struct {
		score  float64
		wantXP int // known song, not first practice today
		want3  bool
	}{
		{150, 50, true}, // clamped to 100
		{-30, 0, false}, // clamped to 0, never negative XP
		{99.9, 49, false},
	}

	for _, tt := range tests {
		state := NewGameState()
		state.LastPracticeDate = "2025-03-07"
		state.CompletedSongs["twinkle"] = true

		_, result := ScorePractice(state, "twinkle", tt.score, dayD)
		if result.XPEarned != tt.wantXP {
			t.Errorf("score %v: XPEarned = %d, want %d", tt.score, result.XPEarned, tt.wantXP)
		}
		if result.IsThreeStar != tt.want3 {
			t.Errorf("score %v: IsThreeStar = %v, want %v", tt.score, result.IsThreeStar, tt.want3)
		}
	}
}

func TestScorePracticeLevelUp(t *testing.T) {
	state := NewGameState()
	state.XP = 90
	state.Level = 1
	state.LastPracticeDate = "2025-03-07"
	state.CompletedSongs["twinkle"] = true

	next, result := ScorePractice(state, "twinkle", 40, dayD)
	if !result.LeveledUp {
		t.Error("90 + 20 XP crosses the level-2 threshold")
	}
	if result.NewLevel != 2 || next.Level != 2 {
		t.Errorf("level = %d/%d, want 2", result.NewLevel, next.Level)
	}
}

func TestScorePracticeDoesNotMutateInput(t *testing.T) {
	state := NewGameState()
	state.CompletedSongs["etude"] = true

	ScorePractice(state, "twinkle", 100, dayD)
	if state.CompletedSongs["twinkle"] {
		t.Error("input state was mutated")
	}
	if len(state.RecentPractice) != 0 {
		t.Error("input recent-practice list was mutated")
	}
}

func TestRecentPracticeCapAndDedup(t *testing.T) {
	state := NewGameState()
	state.LastPracticeDate = "2025-03-07"

	for i := 0; i < 11; i++ {
		state, _ = ScorePractice(state, fmt.Sprintf("song-%d", i), 70, dayD)
	}
	if len(state.RecentPractice) != RecentPracticeCap {
		t.Fatalf("len = %d, want %d", len(state.RecentPractice), RecentPracticeCap)
	}
	if state.RecentPractice[0].SongID != "song-10" {
		t.Errorf("newest = %s, want song-10", state.RecentPractice[0].SongID)
	}
	if state.RecentPractice[9].SongID != "song-1" {
		t.Errorf("oldest = %s, want song-1 (song-0 dropped)", state.RecentPractice[9].SongID)
	}

	// Practicing song-5 again replaces its entry rather than duplicating.
	state, _ = ScorePractice(state, "song-5", 90, dayD)
	if len(state.RecentPractice) != RecentPracticeCap {
		t.Fatalf("len after repeat = %d, want %d", len(state.RecentPractice), RecentPracticeCap)
	}
	if state.RecentPractice[0].SongID != "song-5" || state.RecentPractice[0].Score != 90 {
		t.Errorf("repeat entry = %+v", state.RecentPractice[0])
	}
	seen := make(map[string]int)
	for _, r := range state.RecentPractice {
		seen[r.SongID]++
	}
	if seen["song-5"] != 1 {
		t.Errorf("song-5 appears %d times, want 1", seen["song-5"])
	}
}
