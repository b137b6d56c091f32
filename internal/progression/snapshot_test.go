package progression

import (
	"reflect"
	"testing"

	"github.com/arjunm/violino/internal/store"
)

func TestSnapshotRoundTrip(t *testing.T) {
	state := NewGameState()
	state, _ = ScorePractice(state, "twinkle", 100, dayD)
	state, _ = ScorePractice(state, "minuet-1", 85, dayD1)
	state.Nickname = "Mira"
	state.TotalPracticeTime = 1200

	restored := fromSnapshot(toSnapshot(state))

	if !reflect.DeepEqual(restored, state) {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", restored, state)
	}
}

func TestSnapshotDeterministicSongOrder(t *testing.T) {
	state := NewGameState()
	state.CompletedSongs["b"] = true
	state.CompletedSongs["a"] = true
	state.CompletedSongs["c"] = true

	data := toSnapshot(state)
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(data.CompletedSongs, want) {
		t.Errorf("CompletedSongs = %v, want %v", data.CompletedSongs, want)
	}
}

func TestFromSnapshotNil(t *testing.T) {
	state := fromSnapshot(nil)
	if state.Level != 1 || state.XP != 0 {
		t.Errorf("defaults not applied: %+v", state)
	}
	if state.CompletedSongs == nil || state.ThreeStarSongs == nil {
		t.Error("song sets not allocated")
	}
}

func TestFromSnapshotRestoresInvariants(t *testing.T) {
	data := &store.ProgressSnapshotData{
		XP:         300,
		Level:      1, // stale: 300 XP is level 3
		StreakDays: 5,
		BestStreak: 2, // stale: must be >= StreakDays
		TodayXP:    -4,
	}

	state := fromSnapshot(data)
	if state.Level != 3 {
		t.Errorf("Level = %d, want 3 (derived from XP)", state.Level)
	}
	if state.BestStreak != 5 {
		t.Errorf("BestStreak = %d, want 5", state.BestStreak)
	}
	if state.TodayXP != 0 {
		t.Errorf("TodayXP = %d, want 0", state.TodayXP)
	}
	if state.AvatarEmoji == "" {
		t.Error("avatar not defaulted")
	}
}

func TestFromSnapshotNegativeXP(t *testing.T) {
	state := fromSnapshot(&store.ProgressSnapshotData{XP: -500, Level: 7})
	if state.XP != 0 || state.Level != 1 {
		t.Errorf("state = xp %d level %d, want 0/1", state.XP, state.Level)
	}
}
