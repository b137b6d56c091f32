package progression

import (
	"sort"

	"github.com/arjunm/violino/internal/store"
)

// SnapshotVersion is the current persisted snapshot format version.
const SnapshotVersion = 1

// toSnapshot converts the state into its allow-listed persisted form.
// Song sets are serialized sorted so snapshots are deterministic.
func toSnapshot(s GameState) *store.ProgressSnapshotData {
	return &store.ProgressSnapshotData{
		XP:                 s.XP,
		Level:              s.Level,
		StreakDays:         s.StreakDays,
		BestStreak:         s.BestStreak,
		LastPracticeDate:   s.LastPracticeDate,
		CompletedSongs:     sortedKeys(s.CompletedSongs),
		ThreeStarSongs:     sortedKeys(s.ThreeStarSongs),
		TodayPracticeCount: s.TodayPracticeCount,
		TodayXP:            s.TodayXP,
		RecentPractice:     recordsToData(s.RecentPractice),
		TotalPracticeTime:  s.TotalPracticeTime,
		Nickname:           s.Nickname,
		AvatarEmoji:        s.AvatarEmoji,
	}
}

// fromSnapshot rebuilds a GameState from its persisted form. A nil
// snapshot yields the default state; any out-of-invariant values are
// normalized rather than rejected.
func fromSnapshot(data *store.ProgressSnapshotData) GameState {
	if data == nil {
		return NewGameState()
	}

	s := GameState{
		XP:                 data.XP,
		Level:              data.Level,
		StreakDays:         data.StreakDays,
		BestStreak:         data.BestStreak,
		LastPracticeDate:   data.LastPracticeDate,
		CompletedSongs:     setFromSlice(data.CompletedSongs),
		ThreeStarSongs:     setFromSlice(data.ThreeStarSongs),
		TodayPracticeCount: data.TodayPracticeCount,
		TodayXP:            data.TodayXP,
		RecentPractice:     dataToRecords(data.RecentPractice),
		TotalPracticeTime:  data.TotalPracticeTime,
		Nickname:           data.Nickname,
		AvatarEmoji:        data.AvatarEmoji,
	}
	s.normalize()
	return s
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for id := range set {
		keys = append(keys, id)
	}
	sort.Strings(keys)
	return keys
}

func setFromSlice(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func recordsToData(records []PracticeRecord) []store.PracticeRecordData {
	out := make([]store.PracticeRecordData, len(records))
	for i, r := range records {
		out[i] = store.PracticeRecordData{
			SongID:    r.SongID,
			Timestamp: r.Timestamp,
			Score:     r.Score,
			XPEarned:  r.XPEarned,
		}
	}
	return out
}

func dataToRecords(data []store.PracticeRecordData) []PracticeRecord {
	out := make([]PracticeRecord, len(data))
	for i, d := range data {
		out[i] = PracticeRecord{
			SongID:    d.SongID,
			Timestamp: d.Timestamp,
			Score:     d.Score,
			XPEarned:  d.XPEarned,
		}
	}
	return out
}
