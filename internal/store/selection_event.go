package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSelection(ctx context.Context, data SelectionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SelectionEvent.Create().
		SetSequence(seqNum).
		SetQuestionID(data.QuestionID).
		SetTopic(data.Topic).
		SetStrategy(data.Strategy).
		SetExplanation(data.Explanation).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save selection event: %w", err)
	}
	return nil
}
