package store

import (
	"context"
	"fmt"

	"github.com/arjunm/violino/ent"
	"github.com/arjunm/violino/ent/practiceevent"
)

func (r *eventRepo) AppendPracticeEvent(ctx context.Context, data PracticeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PracticeEvent.Create().
		SetSequence(seqNum).
		SetSongID(data.SongID).
		SetScore(data.Score).
		SetXpEarned(data.XPEarned).
		SetNewSong(data.NewSong).
		SetStreakBonus(data.StreakBonus).
		SetThreeStar(data.ThreeStar).
		SetSessionID(data.SessionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save practice event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryPracticeEvents(ctx context.Context, opts QueryOpts) ([]PracticeEventRecord, error) {
	query := r.client.PracticeEvent.Query().
		Order(ent.Desc(practiceevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(practiceevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(practiceevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(practiceevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(practiceevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query practice events: %w", err)
	}

	records := make([]PracticeEventRecord, len(events))
	for i, e := range events {
		records[i] = PracticeEventRecord{
			SongID:      e.SongID,
			Score:       e.Score,
			XPEarned:    e.XpEarned,
			NewSong:     e.NewSong,
			StreakBonus: e.StreakBonus,
			ThreeStar:   e.ThreeStar,
			SessionID:   e.SessionID,
			Sequence:    e.Sequence,
			Timestamp:   e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) CountPractices(ctx context.Context) (int, error) {
	n, err := r.client.PracticeEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count practice events: %w", err)
	}
	return n, nil
}
