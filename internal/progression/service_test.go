package progression

import (
	"context"
	"testing"
	"time"

	"github.com/arjunm/violino/internal/store"
)

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	saved  []*store.Snapshot
	pruned int
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.saved = append(m.saved, snap)
	return nil
}

func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.saved) == 0 {
		return nil, nil
	}
	return m.saved[len(m.saved)-1], nil
}

func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	m.pruned++
	return nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	practices []store.PracticeEventData
	xp        []store.XPEventData
	streaks   []store.StreakEventData
}

func (m *mockEventRepo) AppendPracticeEvent(_ context.Context, data store.PracticeEventData) error {
	m.practices = append(m.practices, data)
	return nil
}

func (m *mockEventRepo) AppendXPEvent(_ context.Context, data store.XPEventData) error {
	m.xp = append(m.xp, data)
	return nil
}

func (m *mockEventRepo) AppendStreakEvent(_ context.Context, data store.StreakEventData) error {
	m.streaks = append(m.streaks, data)
	return nil
}

func (m *mockEventRepo) QueryPracticeEvents(_ context.Context, _ store.QueryOpts) ([]store.PracticeEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) CountPractices(_ context.Context) (int, error) {
	return len(m.practices), nil
}

func newTestService(t *testing.T, now *time.Time) (*Service, *mockSnapshotRepo, *mockEventRepo) {
	t.Helper()
	snaps := &mockSnapshotRepo{}
	events := &mockEventRepo{}
	svc := NewService(nil, snaps, events, WithClock(func() time.Time { return *now }))
	return svc, snaps, events
}

func TestServiceAddXP(t *testing.T) {
	now := dayD
	svc, snaps, events := newTestService(t, &now)
	ctx := context.Background()

	result := svc.AddXP(ctx, 120)
	if !result.LeveledUp || result.NewLevel != 2 {
		t.Errorf("result = %+v, want level up to 2", result)
	}
	if got := svc.State(); got.XP != 120 || got.Level != 2 {
		t.Errorf("state = xp %d level %d", got.XP, got.Level)
	}
	if len(snaps.saved) != 1 {
		t.Errorf("snapshots saved = %d, want 1", len(snaps.saved))
	}
	if len(events.xp) != 1 || events.xp[0].Reason != ReasonAward {
		t.Errorf("xp events = %+v", events.xp)
	}
}

func TestServiceAddXPNegativeClamped(t *testing.T) {
	now := dayD
	svc, _, _ := newTestService(t, &now)

	svc.AddXP(context.Background(), -50)
	if got := svc.State(); got.XP != 0 || got.Level != 1 {
		t.Errorf("state = xp %d level %d, want 0/1", got.XP, got.Level)
	}
}

func TestServiceCompletePractice(t *testing.T) {
	now := dayD
	svc, snaps, events := newTestService(t, &now)
	ctx := context.Background()

	result := svc.CompletePractice(ctx, "twinkle", 100)
	if result.XPEarned != 75 || !result.IsThreeStar {
		t.Errorf("result = %+v", result)
	}

	if len(events.practices) != 1 {
		t.Fatalf("practice events = %d, want 1", len(events.practices))
	}
	pe := events.practices[0]
	if pe.SongID != "twinkle" || pe.XPEarned != 75 || !pe.NewSong || pe.StreakBonus != 5 || !pe.ThreeStar {
		t.Errorf("practice event = %+v", pe)
	}
	if pe.SessionID == "" {
		t.Error("practice event missing session ID")
	}
	if len(events.streaks) != 1 || events.streaks[0].Action != StreakStart {
		t.Errorf("streak events = %+v", events.streaks)
	}
	if len(events.xp) != 1 || events.xp[0].Reason != ReasonPractice {
		t.Errorf("xp events = %+v", events.xp)
	}

	// The persisted snapshot carries the allow-listed fields.
	snap := snaps.saved[len(snaps.saved)-1]
	if snap.Data.Version != SnapshotVersion {
		t.Errorf("snapshot version = %d", snap.Data.Version)
	}
	if snap.Data.Progress == nil || snap.Data.Progress.XP != 75 {
		t.Errorf("snapshot progress = %+v", snap.Data.Progress)
	}
}

func TestServiceCompletePracticeAcrossDays(t *testing.T) {
	now := dayD
	svc, _, events := newTestService(t, &now)
	ctx := context.Background()

	svc.CompletePractice(ctx, "twinkle", 80)
	now = dayD1
	svc.CompletePractice(ctx, "twinkle", 80)

	got := svc.State()
	if got.StreakDays != 2 || got.BestStreak != 2 {
		t.Errorf("streak = %d/%d, want 2/2", got.StreakDays, got.BestStreak)
	}
	if got.TodayPracticeCount != 1 {
		t.Errorf("TodayPracticeCount = %d, want 1 (new day)", got.TodayPracticeCount)
	}
	if len(events.streaks) != 2 || events.streaks[1].Action != StreakContinue {
		t.Errorf("streak events = %+v", events.streaks)
	}
}

func TestServiceCheckAndUpdateStreak(t *testing.T) {
	now := dayD
	svc, _, events := newTestService(t, &now)
	ctx := context.Background()

	svc.CompletePractice(ctx, "twinkle", 80)

	// Two days later, a passive check breaks the streak before any practice.
	now = dayD2
	result := svc.CheckAndUpdateStreak(ctx)
	if !result.StreakBroken {
		t.Error("expected broken streak")
	}
	if got := svc.State(); got.StreakDays != 0 {
		t.Errorf("StreakDays = %d, want 0", got.StreakDays)
	}
	if len(events.streaks) != 2 || events.streaks[1].Action != StreakBreak {
		t.Errorf("streak events = %+v", events.streaks)
	}

	// Second check the same day: no further mutation, not broken.
	result = svc.CheckAndUpdateStreak(ctx)
	if result.StreakBroken {
		t.Error("second check should not report broken")
	}
	if len(events.streaks) != 2 {
		t.Errorf("streak events after second check = %d, want 2", len(events.streaks))
	}

	// The practice that follows restarts the streak at 1.
	r := svc.CompletePractice(ctx, "twinkle", 80)
	if r.StreakBonus != 5 {
		t.Errorf("StreakBonus = %d, want 5", r.StreakBonus)
	}
	if got := svc.State(); got.StreakDays != 1 {
		t.Errorf("StreakDays = %d, want 1", got.StreakDays)
	}
}

func TestServiceResetDailyStats(t *testing.T) {
	now := dayD
	svc, _, _ := newTestService(t, &now)
	ctx := context.Background()

	svc.CompletePractice(ctx, "twinkle", 80)
	svc.ResetDailyStats(ctx)

	got := svc.State()
	if got.TodayPracticeCount != 0 || got.TodayXP != 0 {
		t.Errorf("today counters = %d/%d, want 0/0", got.TodayPracticeCount, got.TodayXP)
	}
	if got.XP == 0 {
		t.Error("daily reset must not touch total XP")
	}
}

func TestServiceResetAllProgressKeepsIdentity(t *testing.T) {
	now := dayD
	svc, _, _ := newTestService(t, &now)
	ctx := context.Background()

	svc.SetNickname(ctx, "Mira")
	svc.SetAvatarEmoji(ctx, "🎶")
	svc.CompletePractice(ctx, "twinkle", 100)

	svc.ResetAllProgress(ctx)
	got := svc.State()
	if got.XP != 0 || got.Level != 1 || got.StreakDays != 0 || len(got.CompletedSongs) != 0 {
		t.Errorf("progress not cleared: %+v", got)
	}
	if got.Nickname != "Mira" || got.AvatarEmoji != "🎶" {
		t.Errorf("identity not preserved: %q %q", got.Nickname, got.AvatarEmoji)
	}
}

func TestServiceRestoresFromSnapshot(t *testing.T) {
	now := dayD
	svc, snaps, _ := newTestService(t, &now)
	ctx := context.Background()

	svc.CompletePractice(ctx, "twinkle", 100)
	want := svc.State()

	latest, err := snaps.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	revived := NewService(&latest.Data, snaps, nil, WithClock(func() time.Time { return now }))
	got := revived.State()

	if got.XP != want.XP || got.Level != want.Level || got.StreakDays != want.StreakDays {
		t.Errorf("revived state = %+v, want %+v", got, want)
	}
	if !got.CompletedSongs["twinkle"] || !got.ThreeStarSongs["twinkle"] {
		t.Error("song sets lost across restore")
	}
}

func TestServiceAddPracticeTime(t *testing.T) {
	now := dayD
	svc, _, _ := newTestService(t, &now)
	ctx := context.Background()

	svc.AddPracticeTime(ctx, 300)
	svc.AddPracticeTime(ctx, -10) // ignored
	if got := svc.State(); got.TotalPracticeTime != 300 {
		t.Errorf("TotalPracticeTime = %d, want 300", got.TotalPracticeTime)
	}
}

func TestServiceStateIsACopy(t *testing.T) {
	now := dayD
	svc, _, _ := newTestService(t, &now)

	got := svc.State()
	got.CompletedSongs["intruder"] = true
	if svc.State().CompletedSongs["intruder"] {
		t.Error("State() leaked internal maps")
	}
}
