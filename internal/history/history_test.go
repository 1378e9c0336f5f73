package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/edugen/tka/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(s.ResultRepo())
}

func seed(t *testing.T, svc *Service, username string, scores ...int) {
	t.Helper()
	ctx := context.Background()
	base := time.Now().Add(-time.Duration(len(scores)) * time.Hour)
	for i, score := range scores {
		err := svc.results.Append(ctx, store.ResultRecord{
			ResultID:       username + "-" + string(rune('a'+i)),
			Username:       username,
			Score:          score,
			TotalQuestions: 30,
			CorrectCount:   score * 30 / 100,
			Topics:         []string{"Bilangan & Operasi"},
			TakenAt:        base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("seed result: %v", err)
		}
	}
}

func TestList_MostRecentFirst(t *testing.T) {
	svc := newTestService(t)
	seed(t, svc, "budi", 50, 70, 90)

	records, err := svc.List(context.Background(), "budi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	// The last seeded result is the newest.
	if records[0].Score != 90 || records[2].Score != 50 {
		t.Fatalf("expected newest first, got %d..%d", records[0].Score, records[2].Score)
	}
}

func TestList_ScopedToUser(t *testing.T) {
	svc := newTestService(t)
	seed(t, svc, "budi", 80)
	seed(t, svc, "sari", 60)

	records, err := svc.List(context.Background(), "budi")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Username != "budi" {
		t.Fatalf("expected only budi's results, got %+v", records)
	}
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	seed(t, svc, "budi", 50, 70)
	ctx := context.Background()

	records, _ := svc.List(ctx, "budi")
	if err := svc.Delete(ctx, records[0].ResultID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	remaining, _ := svc.List(ctx, "budi")
	if len(remaining) != 1 || remaining[0].Score != 50 {
		t.Fatalf("expected only the older result, got %+v", remaining)
	}
}

func TestDelete_Unknown(t *testing.T) {
	svc := newTestService(t)
	err := svc.Delete(context.Background(), "nope")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClear(t *testing.T) {
	svc := newTestService(t)
	seed(t, svc, "budi", 50, 70)
	seed(t, svc, "sari", 60)
	ctx := context.Background()

	if err := svc.Clear(ctx, "budi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, _ := svc.List(ctx, "budi")
	if len(records) != 0 {
		t.Fatalf("expected empty history, got %d records", len(records))
	}
	others, _ := svc.List(ctx, "sari")
	if len(others) != 1 {
		t.Fatal("clearing one user must not touch another")
	}
}

func TestSummarize(t *testing.T) {
	svc := newTestService(t)
	seed(t, svc, "budi", 50, 70, 91)

	sum, err := svc.Summarize(context.Background(), "budi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Attempts != 3 || sum.BestScore != 91 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	// (50+70+91)/3 = 70.33 -> 70
	if sum.AvgScore != 70 {
		t.Fatalf("expected average 70, got %d", sum.AvgScore)
	}
}

func TestSummarize_Empty(t *testing.T) {
	svc := newTestService(t)
	sum, err := svc.Summarize(context.Background(), "budi")
	if err != nil {
		t.Fatal(err)
	}
	if sum.Attempts != 0 || sum.BestScore != 0 || sum.AvgScore != 0 {
		t.Fatalf("expected zero summary, got %+v", sum)
	}
}
