package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendMastery(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetConcept(data.Concept).
		SetFromStatus(data.FromStatus).
		SetToStatus(data.ToStatus).
		SetTheta(data.Theta)

	if len(data.Unlocked) > 0 {
		builder = builder.SetUnlocked(data.Unlocked)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}
