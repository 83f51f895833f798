package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendHint(ctx context.Context, data HintEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.HintEvent.Create().
		SetSequence(seqNum).
		SetQuestionID(data.QuestionID).
		SetTopic(data.Topic).
		SetLevel(data.Level).
		SetHintText(data.HintText).
		SetSource(data.Source).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save hint event: %w", err)
	}
	return nil
}
