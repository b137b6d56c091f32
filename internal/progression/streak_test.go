package progression

import (
	"testing"
	"time"
)

var (
	dayD  = time.Date(2025, 3, 7, 18, 30, 0, 0, time.UTC)
	dayD1 = dayD.AddDate(0, 0, 1)
	dayD2 = dayD.AddDate(0, 0, 2)
)

func TestClassifyDay(t *testing.T) {
	tests := []struct {
		name string
		last string
		now  time.Time
		want DayClass
	}{
		{"today", "2025-03-07", dayD, DayToday},
		{"yesterday", "2025-03-07", dayD1, DayYesterday},
		{"two days ago", "2025-03-07", dayD2, DayBroken},
		{"never practiced", "", dayD, DayBroken},
		{"future date", "2025-03-09", dayD, DayBroken},
	}

	for _, tt := range tests {
		if got := ClassifyDay(tt.last, tt.now); got != tt.want {
			t.Errorf("%s: ClassifyDay = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCheckStreakSameDay(t *testing.T) {
	state := NewGameState()
	state.LastPracticeDate = "2025-03-07"
	state.StreakDays = 4
	state.BestStreak = 4
	state.TodayPracticeCount = 2

	next, result := CheckStreak(state, dayD)
	if result.StreakBroken {
		t.Error("streak should not break on the same day")
	}
	if result.IsFirstPracticeToday {
		t.Error("already practiced today")
	}
	if result.NewStreak != 4 {
		t.Errorf("NewStreak = %d, want 4", result.NewStreak)
	}
	if next.StreakDays != 4 || next.TodayPracticeCount != 2 {
		t.Errorf("state mutated on same-day check: %+v", next)
	}
}

func TestCheckStreakYesterday(t *testing.T) {
	state := NewGameState()
	state.LastPracticeDate = "2025-03-07"
	state.StreakDays = 4

	next, result := CheckStreak(state, dayD1)
	if result.StreakBroken {
		t.Error("a yesterday-chain is not broken")
	}
	if !result.IsFirstPracticeToday {
		t.Error("no practice yet today")
	}
	// A passive check never increments; only practicing does.
	if next.StreakDays != 4 {
		t.Errorf("StreakDays = %d, want 4", next.StreakDays)
	}
}

func TestCheckStreakBroken(t *testing.T) {
	state := NewGameState()
	state.LastPracticeDate = "2025-03-07"
	state.StreakDays = 4
	state.BestStreak = 6
	state.TodayPracticeCount = 3

	next, result := CheckStreak(state, dayD2)
	if !result.StreakBroken {
		t.Error("expected broken streak after a skipped day")
	}
	if next.StreakDays != 0 {
		t.Errorf("StreakDays = %d, want 0", next.StreakDays)
	}
	if next.TodayPracticeCount != 0 {
		t.Errorf("TodayPracticeCount = %d, want 0", next.TodayPracticeCount)
	}
	if next.BestStreak != 6 {
		t.Errorf("BestStreak = %d, want 6 (breaking never lowers it)", next.BestStreak)
	}
	if next.LastPracticeDate != "2025-03-07" {
		t.Errorf("LastPracticeDate changed on a passive check: %q", next.LastPracticeDate)
	}
}

func TestCheckStreakIdempotentWithinDay(t *testing.T) {
	state := NewGameState()
	state.LastPracticeDate = "2025-03-05"
	state.StreakDays = 3

	first, r1 := CheckStreak(state, dayD)
	if !r1.StreakBroken {
		t.Fatal("first check should report broken")
	}
	second, r2 := CheckStreak(first, dayD)
	if r2.StreakBroken {
		t.Error("second check reports broken again")
	}
	if second.StreakDays != first.StreakDays {
		t.Errorf("second check mutated StreakDays: %d != %d", second.StreakDays, first.StreakDays)
	}
}

func TestCheckStreakZeroStreakNeverBroken(t *testing.T) {
	state := NewGameState()

	_, result := CheckStreak(state, dayD)
	if result.StreakBroken {
		t.Error("a zero streak cannot break")
	}
}

func TestNextStreakDays(t *testing.T) {
	tests := []struct {
		name   string
		last   string
		streak int
		now    time.Time
		want   int
	}{
		{"first ever", "", 0, dayD, 1},
		{"chain continues", "2025-03-07", 4, dayD1, 5},
		{"same day repeat", "2025-03-07", 4, dayD, 4},
		{"skipped a day", "2025-03-07", 4, dayD2, 1},
	}

	for _, tt := range tests {
		state := NewGameState()
		state.LastPracticeDate = tt.last
		state.StreakDays = tt.streak
		if got := nextStreakDays(state, tt.now); got != tt.want {
			t.Errorf("%s: nextStreakDays = %d, want %d", tt.name, got, tt.want)
		}
	}
}
