package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/edugen/tka/ent"
	"github.com/edugen/tka/ent/llmrequestevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	create := r.client.LLMRequestEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success)
	if data.ErrorMessage != "" {
		create.SetErrorMessage(data.ErrorMessage)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, limit int) ([]LLMEventRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	out := make([]LLMEventRecord, 0, len(events))
	for _, e := range events {
		out = append(out, LLMEventRecord{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     e.Provider,
				Model:        e.Model,
				Purpose:      e.Purpose,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
			},
		})
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	type acc struct {
		calls, in, out int
		latencySum     int64
	}
	byPurpose := make(map[string]*acc)
	for _, e := range events {
		a, ok := byPurpose[e.Purpose]
		if !ok {
			a = &acc{}
			byPurpose[e.Purpose] = a
		}
		a.calls++
		a.in += e.InputTokens
		a.out += e.OutputTokens
		a.latencySum += e.LatencyMs
	}

	stats := make([]LLMUsageStat, 0, len(byPurpose))
	for purpose, a := range byPurpose {
		stats = append(stats, LLMUsageStat{
			Purpose:      purpose,
			Calls:        a.calls,
			InputTokens:  a.in,
			OutputTokens: a.out,
			AvgLatencyMs: a.latencySum / int64(a.calls),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Purpose < stats[j].Purpose })
	return stats, nil
}
