package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  7,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Progress: &ProgressSnapshotData{
				XP:               120,
				Level:            2,
				StreakDays:       3,
				BestStreak:       5,
				LastPracticeDate: "2025-03-08",
				CompletedSongs:   []string{"twinkle"},
				ThreeStarSongs:   []string{},
				RecentPractice: []PracticeRecordData{
					{SongID: "twinkle", Timestamp: 1700000000000, Score: 90, XPEarned: 45},
				},
				Nickname:    "Mira",
				AvatarEmoji: "🎻",
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.Sequence != 7 {
		t.Errorf("sequence = %d, want 7", snap.Sequence)
	}
	p := snap.Data.Progress
	if p == nil {
		t.Fatal("expected progress data")
	}
	if p.XP != 120 || p.Level != 2 || p.StreakDays != 3 || p.BestStreak != 5 {
		t.Errorf("unexpected progress data: %+v", p)
	}
	if len(p.CompletedSongs) != 1 || p.CompletedSongs[0] != "twinkle" {
		t.Errorf("completed songs = %v, want [twinkle]", p.CompletedSongs)
	}
	if len(p.RecentPractice) != 1 || p.RecentPractice[0].XPEarned != 45 {
		t.Errorf("recent practice = %+v", p.RecentPractice)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if snap == nil || snap.Sequence != 4 {
		t.Fatalf("expected latest snapshot to survive prune, got %+v", snap)
	}

	n, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("snapshots after prune = %d, want 2", n)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, songID := range []string{"twinkle", "minuet-1", "twinkle"} {
		err := repo.AppendPracticeEvent(ctx, PracticeEventData{
			SongID:      songID,
			Score:       80 + float64(i),
			XPEarned:    40,
			NewSong:     i < 2,
			StreakBonus: 5,
			ThreeStar:   false,
			SessionID:   "session-1",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryPracticeEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Most recent first.
	if records[0].SongID != "twinkle" || records[1].SongID != "minuet-1" {
		t.Errorf("unexpected order: %s, %s", records[0].SongID, records[1].SongID)
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("sequences not descending: %d, %d", records[0].Sequence, records[1].Sequence)
	}

	n, err := repo.CountPractices(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendStreakEvent(ctx, StreakEventData{Action: "start", StreakDays: 1}); err != nil {
		t.Fatalf("append streak: %v", err)
	}
	if err := repo.AppendXPEvent(ctx, XPEventData{Amount: 75, Reason: "practice", LevelBefore: 1, LevelAfter: 1}); err != nil {
		t.Fatalf("append xp: %v", err)
	}
	if err := repo.AppendPracticeEvent(ctx, PracticeEventData{
		SongID: "twinkle", Score: 100, XPEarned: 75, NewSong: true, StreakBonus: 5, ThreeStar: true, SessionID: "s",
	}); err != nil {
		t.Fatalf("append practice: %v", err)
	}

	records, err := repo.QueryPracticeEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d practice records, want 1", len(records))
	}
	// Two events preceded it, so the practice event holds sequence 3.
	if records[0].Sequence != 3 {
		t.Errorf("sequence = %d, want 3", records[0].Sequence)
	}
}
