package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/adapticode/adapticode/ent"
	"github.com/adapticode/adapticode/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query()
	if opts.After > 0 {
		q = q.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(llmrequestevent.TimestampLTE(opts.To))
	}
	q = q.Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	out := make([]*LLMEvent, 0, len(events))
	for _, e := range events {
		out = append(out, llmEventFromEnt(e))
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM request event %d: %w", id, err)
	}
	return llmEventFromEnt(e), nil
}

func llmEventFromEnt(e *ent.LLMRequestEvent) *LLMEvent {
	return &LLMEvent{
		ID:           e.ID,
		Sequence:     e.Sequence,
		Timestamp:    e.Timestamp,
		Provider:     e.Provider,
		Model:        e.Model,
		Purpose:      e.Purpose,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		LatencyMs:    e.LatencyMs,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
	}
}

func (r *eventRepo) LLMUsage(ctx context.Context) ([]LLMUsageRow, error) {
	events, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	type key struct{ model, purpose string }
	byKey := make(map[key]*LLMUsageRow)
	for _, e := range events {
		k := key{e.Model, e.Purpose}
		row, ok := byKey[k]
		if !ok {
			row = &LLMUsageRow{Model: e.Model, Purpose: e.Purpose}
			byKey[k] = row
		}
		row.Requests++
		if !e.Success {
			row.Failures++
		}
		row.InputTokens += e.InputTokens
		row.OutputTokens += e.OutputTokens
	}

	rows := make([]LLMUsageRow, 0, len(byKey))
	for _, row := range byKey {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Model != rows[j].Model {
			return rows[i].Model < rows[j].Model
		}
		return rows[i].Purpose < rows[j].Purpose
	})
	return rows, nil
}
