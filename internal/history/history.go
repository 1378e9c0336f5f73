// Package history exposes the learner's completed exams.
package history

import (
	"context"
	"fmt"
	"math"

	"github.com/edugen/tka/internal/store"
)

// Service reads and prunes the exam history.
type Service struct {
	results store.ResultRepo
}

// NewService wires the history service to its repository.
func NewService(results store.ResultRepo) *Service {
	return &Service{results: results}
}

// List returns username's results, most recent first.
func (s *Service) List(ctx context.Context, username string) ([]store.ResultRecord, error) {
	records, err := s.results.List(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	return records, nil
}

// Delete removes a single result. Deleting an unknown result ID
// returns store.ErrNotFound.
func (s *Service) Delete(ctx context.Context, resultID string) error {
	return s.results.Delete(ctx, resultID)
}

// Clear removes username's entire history.
func (s *Service) Clear(ctx context.Context, username string) error {
	return s.results.Clear(ctx, username)
}

// Summary aggregates the history for the header of the history screen.
type Summary struct {
	Attempts  int
	BestScore int
	AvgScore  int
}

// Summarize computes totals over username's history.
func (s *Service) Summarize(ctx context.Context, username string) (Summary, error) {
	records, err := s.results.List(ctx, username)
	if err != nil {
		return Summary{}, fmt.Errorf("summarizing history: %w", err)
	}

	out := Summary{Attempts: len(records)}
	if len(records) == 0 {
		return out, nil
	}

	sum := 0
	for _, r := range records {
		sum += r.Score
		if r.Score > out.BestScore {
			out.BestScore = r.Score
		}
	}
	out.AvgScore = int(math.Round(float64(sum) / float64(len(records))))
	return out, nil
}
