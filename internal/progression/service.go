package progression

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arjunm/violino/internal/levels"
	"github.com/arjunm/violino/internal/store"
)

// snapshotsKept is how many snapshot rows survive pruning.
const snapshotsKept = 10

// XP event reasons.
const (
	ReasonPractice = "practice"
	ReasonAward    = "award"
)

// Streak event actions.
const (
	StreakStart    = "start"
	StreakContinue = "continue"
	StreakBreak    = "break"
)

// Service owns the single GameState for the process and is the sole
// mutation point. Every operation computes the full next state through
// the pure transition functions, swaps it in as one value, then writes
// a snapshot and best-effort event rows. Callers inject the clock to
// make day boundaries deterministic in tests.
type Service struct {
	state     GameState
	clock     func() time.Time
	snapshots store.SnapshotRepo
	events    store.EventRepo
	sessionID string
	seq       int64
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source (default time.Now).
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// NewService builds the controller from the latest persisted snapshot.
// A nil snap, or one carrying no progress data, yields the default
// state — a missing or malformed snapshot is never fatal.
func NewService(snap *store.SnapshotData, snapshots store.SnapshotRepo, events store.EventRepo, opts ...Option) *Service {
	s := &Service{
		clock:     time.Now,
		snapshots: snapshots,
		events:    events,
		sessionID: uuid.New().String(),
	}
	if snap != nil {
		s.state = fromSnapshot(snap.Progress)
	} else {
		s.state = NewGameState()
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// State returns an independent copy of the current state for readers.
func (s *Service) State() GameState {
	return s.state.Clone()
}

// AddXPResult reports the outcome of a direct XP award.
type AddXPResult struct {
	LeveledUp bool
	NewLevel  int
}

// AddXP grants amount XP outside the practice path. Negative amounts
// are clamped to zero.
func (s *Service) AddXP(ctx context.Context, amount int) AddXPResult {
	if amount < 0 {
		amount = 0
	}
	next := s.state.Clone()
	next.XP += amount
	next.Level = levels.LevelForXP(next.XP)

	result := AddXPResult{
		LeveledUp: next.Level > s.state.Level,
		NewLevel:  next.Level,
	}

	levelBefore := s.state.Level
	s.commit(ctx, next)

	if s.events != nil {
		_ = s.events.AppendXPEvent(ctx, store.XPEventData{
			Amount:      amount,
			Reason:      ReasonAward,
			LevelBefore: levelBefore,
			LevelAfter:  next.Level,
		})
	}
	return result
}

// CompletePractice scores a practice attempt and commits the full
// state delta: XP, level, streak fields, song sets, daily counters and
// the recent-practice list.
func (s *Service) CompletePractice(ctx context.Context, songID string, score float64) PracticeResult {
	now := s.clock()
	prev := s.state
	next, result := ScorePractice(prev, songID, score, now)
	s.commit(ctx, next)

	if s.events != nil {
		_ = s.events.AppendPracticeEvent(ctx, store.PracticeEventData{
			SongID:      songID,
			Score:       next.RecentPractice[0].Score,
			XPEarned:    result.XPEarned,
			NewSong:     result.IsNewSong,
			StreakBonus: result.StreakBonus,
			ThreeStar:   result.IsThreeStar,
			SessionID:   s.sessionID,
		})
		_ = s.events.AppendXPEvent(ctx, store.XPEventData{
			Amount:      result.XPEarned,
			Reason:      ReasonPractice,
			LevelBefore: prev.Level,
			LevelAfter:  next.Level,
		})
		if next.StreakDays != prev.StreakDays {
			action := StreakContinue
			if next.StreakDays == 1 {
				action = StreakStart
			}
			_ = s.events.AppendStreakEvent(ctx, store.StreakEventData{
				Action:     action,
				StreakDays: next.StreakDays,
			})
		}
	}
	return result
}

// CheckAndUpdateStreak is the passive streak check run on app open.
// It zeroes a broken streak but never advances one; only a completed
// practice does that.
func (s *Service) CheckAndUpdateStreak(ctx context.Context) StreakCheck {
	prev := s.state
	next, result := CheckStreak(prev, s.clock())
	if result.StreakBroken {
		s.commit(ctx, next)
		if s.events != nil {
			_ = s.events.AppendStreakEvent(ctx, store.StreakEventData{
				Action:     StreakBreak,
				StreakDays: prev.StreakDays,
			})
		}
	} else {
		s.state = next
	}
	return result
}

// ResetDailyStats zeroes today's practice count and XP.
func (s *Service) ResetDailyStats(ctx context.Context) {
	next := s.state.Clone()
	next.TodayPracticeCount = 0
	next.TodayXP = 0
	s.commit(ctx, next)
}

// AddPracticeTime accumulates practice wall-clock seconds.
func (s *Service) AddPracticeTime(ctx context.Context, seconds int) {
	if seconds <= 0 {
		return
	}
	next := s.state.Clone()
	next.TotalPracticeTime += seconds
	s.commit(ctx, next)
}

// SetNickname sets the player nickname.
func (s *Service) SetNickname(ctx context.Context, name string) {
	next := s.state.Clone()
	next.Nickname = name
	s.commit(ctx, next)
}

// SetAvatarEmoji sets the player avatar.
func (s *Service) SetAvatarEmoji(ctx context.Context, emoji string) {
	next := s.state.Clone()
	next.AvatarEmoji = emoji
	s.commit(ctx, next)
}

// ResetAllProgress clears all progression fields to defaults. The
// nickname and avatar survive a reset.
func (s *Service) ResetAllProgress(ctx context.Context) {
	next := NewGameState()
	next.Nickname = s.state.Nickname
	if s.state.AvatarEmoji != "" {
		next.AvatarEmoji = s.state.AvatarEmoji
	}
	s.commit(ctx, next)
}

// ReplaceState swaps in a fully formed state, normalizing invariants.
// Used by progress-file import; regular gameplay goes through the
// operations above.
func (s *Service) ReplaceState(ctx context.Context, data *store.ProgressSnapshotData) {
	s.commit(ctx, fromSnapshot(data))
}

// ExportData returns the current state in its allow-listed persisted
// form, for writing progress files.
func (s *Service) ExportData() *store.ProgressSnapshotData {
	return toSnapshot(s.state)
}

// Flush writes the current state as a snapshot and surfaces the error,
// for callers that need a durability guarantee (command exits).
func (s *Service) Flush(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	if err := s.snapshots.Save(ctx, s.snapshot()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// commit replaces the state and persists it. Snapshot writes during
// gameplay are best-effort; Flush exists for the paths that must not
// lose data.
func (s *Service) commit(ctx context.Context, next GameState) {
	s.state = next
	s.seq++
	if s.snapshots == nil {
		return
	}
	_ = s.snapshots.Save(ctx, s.snapshot())
	_ = s.snapshots.Prune(ctx, snapshotsKept)
}

func (s *Service) snapshot() *store.Snapshot {
	return &store.Snapshot{
		Sequence:  s.seq,
		Timestamp: s.clock(),
		Data: store.SnapshotData{
			Version:  SnapshotVersion,
			Progress: toSnapshot(s.state),
		},
	}
}
