package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData is the versioned envelope written to the snapshot table.
// Only the fields below are ever persisted; anything else the runtime
// tracks is transient by construction.
type SnapshotData struct {
	Version  int                   `json:"version"`
	Progress *ProgressSnapshotData `json:"progress,omitempty"`
}

// ProgressSnapshotData is the allow-listed persisted form of the
// progression state. Keys are stable across versions.
type ProgressSnapshotData struct {
	XP                 int                  `json:"xp"`
	Level              int                  `json:"level"`
	StreakDays         int                  `json:"streakDays"`
	BestStreak         int                  `json:"bestStreak"`
	LastPracticeDate   string               `json:"lastPracticeDate,omitempty"`
	CompletedSongs     []string             `json:"completedSongs"`
	ThreeStarSongs     []string             `json:"threeStarSongs"`
	TodayPracticeCount int                  `json:"todayPracticeCount"`
	TodayXP            int                  `json:"todayXP"`
	RecentPractice     []PracticeRecordData `json:"recentPractice"`
	TotalPracticeTime  int                  `json:"totalPracticeTime"`
	Nickname           string               `json:"nickname,omitempty"`
	AvatarEmoji        string               `json:"avatarEmoji,omitempty"`
}

// PracticeRecordData is the persisted form of one recent-practice entry.
type PracticeRecordData struct {
	SongID    string  `json:"songId"`
	Timestamp int64   `json:"timestamp"`
	Score     float64 `json:"score"`
	XPEarned  int     `json:"xpEarned"`
}

// Snapshot represents a point-in-time capture of progression state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages progression state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// PracticeEventData captures one completed practice attempt.
type PracticeEventData struct {
	SongID      string
	Score       float64
	XPEarned    int
	NewSong     bool
	StreakBonus int
	ThreeStar   bool
	SessionID   string
}

// PracticeEventRecord is a stored practice event.
type PracticeEventRecord struct {
	SongID      string
	Score       float64
	XPEarned    int
	NewSong     bool
	StreakBonus int
	ThreeStar   bool
	SessionID   string
	Sequence    int64
	Timestamp   time.Time
}

// XPEventData captures one XP grant.
type XPEventData struct {
	Amount      int
	Reason      string // "practice" or "award"
	LevelBefore int
	LevelAfter  int
}

// StreakEventData captures one streak transition.
type StreakEventData struct {
	Action     string // "start", "continue" or "break"
	StreakDays int
}

// EventRepo provides append and query access to progression events.
type EventRepo interface {
	// AppendPracticeEvent records a completed practice.
	AppendPracticeEvent(ctx context.Context, data PracticeEventData) error

	// AppendXPEvent records an XP grant.
	AppendXPEvent(ctx context.Context, data XPEventData) error

	// AppendStreakEvent records a streak transition.
	AppendStreakEvent(ctx context.Context, data StreakEventData) error

	// QueryPracticeEvents returns practice events, most recent first.
	QueryPracticeEvents(ctx context.Context, opts QueryOpts) ([]PracticeEventRecord, error)

	// CountPractices returns the total number of recorded practices.
	CountPractices(ctx context.Context) (int, error)
}
