package store

import (
	"context"
	"fmt"

	"github.com/edugen/tka/ent"
	"github.com/edugen/tka/ent/examresult"
)

// resultRepo implements ResultRepo using the ent client.
type resultRepo struct {
	client *ent.Client
}

func (r *resultRepo) Append(ctx context.Context, rec ResultRecord) error {
	_, err := r.client.ExamResult.Create().
		SetResultID(rec.ResultID).
		SetUsername(rec.Username).
		SetScore(rec.Score).
		SetTotalQuestions(rec.TotalQuestions).
		SetCorrectCount(rec.CorrectCount).
		SetTopics(rec.Topics).
		SetTakenAt(rec.TakenAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append result: %w", err)
	}
	return nil
}

func (r *resultRepo) List(ctx context.Context, username string) ([]ResultRecord, error) {
	rows, err := r.client.ExamResult.Query().
		Where(examresult.UsernameEQ(username)).
		Order(ent.Desc(examresult.FieldTakenAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	out := make([]ResultRecord, len(rows))
	for i, row := range rows {
		out[i] = ResultRecord{
			ResultID:       row.ResultID,
			Username:       row.Username,
			Score:          row.Score,
			TotalQuestions: row.TotalQuestions,
			CorrectCount:   row.CorrectCount,
			Topics:         row.Topics,
			TakenAt:        row.TakenAt,
		}
	}
	return out, nil
}

func (r *resultRepo) Delete(ctx context.Context, resultID string) error {
	n, err := r.client.ExamResult.Delete().
		Where(examresult.ResultIDEQ(resultID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *resultRepo) Clear(ctx context.Context, username string) error {
	_, err := r.client.ExamResult.Delete().
		Where(examresult.UsernameEQ(username)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear results: %w", err)
	}
	return nil
}
