package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendXPEvent(ctx context.Context, data XPEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.XPEvent.Create().
		SetSequence(seqNum).
		SetAmount(data.Amount).
		SetReason(data.Reason).
		SetLevelBefore(data.LevelBefore).
		SetLevelAfter(data.LevelAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save xp event: %w", err)
	}
	return nil
}
