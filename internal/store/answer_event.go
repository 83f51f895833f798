package store

import (
	"context"
	"fmt"

	"github.com/adapticode/adapticode/ent"
	"github.com/adapticode/adapticode/ent/answerevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetQuestionID(data.QuestionID).
		SetTopic(data.Topic).
		SetCorrect(data.Correct).
		SetPassRate(data.PassRate).
		SetTimeSecs(data.TimeSecs).
		SetThetaBefore(data.ThetaBefore).
		SetThetaAfter(data.ThetaAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) TopicAccuracy(ctx context.Context, topic string) (float64, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.Topic(topic)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query topic accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}
