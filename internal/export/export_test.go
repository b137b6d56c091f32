package export

import (
	"path/filepath"
	"testing"

	"github.com/arjunm/violino/internal/store"
)

func sampleProgress() *store.ProgressSnapshotData {
	return &store.ProgressSnapshotData{
		XP:               325,
		Level:            3,
		StreakDays:       4,
		BestStreak:       9,
		LastPracticeDate: "2025-03-07",
		CompletedSongs:   []string{"minuet-1", "twinkle"},
		ThreeStarSongs:   []string{"twinkle"},
		TodayXP:          75,
		RecentPractice: []store.PracticeRecordData{
			{SongID: "twinkle", Timestamp: 1741370000000, Score: 100, XPEarned: 75},
		},
		TotalPracticeTime: 3600,
		Nickname:          "Mira",
		AvatarEmoji:       "🎻",
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")

	want := sampleProgress()
	if err := Write(path, want); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.XP != want.XP || got.Level != want.Level || got.BestStreak != want.BestStreak {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if len(got.CompletedSongs) != 2 || got.CompletedSongs[0] != "minuet-1" {
		t.Errorf("completed songs = %v", got.CompletedSongs)
	}
	if len(got.RecentPractice) != 1 || got.RecentPractice[0].XPEarned != 75 {
		t.Errorf("recent practice = %+v", got.RecentPractice)
	}
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestParseRejectsMissingFields(t *testing.T) {
	// progress lacks the required counters.
	raw := []byte(`{"version": 1, "progress": {"xp": 10}}`)
	if _, err := Parse(raw); err == nil {
		t.Error("expected schema validation error")
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	raw := []byte(`{
		"version": 1,
		"progress": {
			"xp": 10, "level": 1, "streakDays": 0, "bestStreak": 0,
			"secretDebugFlag": true
		}
	}`)
	if _, err := Parse(raw); err == nil {
		t.Error("expected rejection of fields outside the allow-list")
	}
}

func TestParseRejectsNegativeXP(t *testing.T) {
	raw := []byte(`{
		"version": 1,
		"progress": {"xp": -5, "level": 1, "streakDays": 0, "bestStreak": 0}
	}`)
	if _, err := Parse(raw); err == nil {
		t.Error("expected rejection of negative xp")
	}
}

func TestParseRejectsWrongVersion(t *testing.T) {
	raw := []byte(`{
		"version": 99,
		"progress": {"xp": 5, "level": 1, "streakDays": 0, "bestStreak": 0}
	}`)
	if _, err := Parse(raw); err == nil {
		t.Error("expected rejection of unsupported version")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
