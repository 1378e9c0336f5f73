package exam

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/edugen/tka/internal/config"
	"github.com/edugen/tka/internal/connectivity"
	"github.com/edugen/tka/internal/questiongen"
	"github.com/edugen/tka/internal/store"
	"github.com/edugen/tka/internal/topics"
)

// stubGenerator returns canned questions, optionally blocking until
// released so tests can observe the generating state.
type stubGenerator struct {
	questions []questiongen.Question
	err       error
	block     chan struct{}

	mu    sync.Mutex
	calls int
}

func (g *stubGenerator) Generate(ctx context.Context, _ questiongen.Params) ([]questiongen.Question, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if g.block != nil {
		select {
		case <-g.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if g.err != nil {
		return nil, g.err
	}
	return g.questions, nil
}

func tenQuestions() []questiongen.Question {
	qs := make([]questiongen.Question, 10)
	for i := range qs {
		qs[i] = questiongen.Question{
			ID:            fmt.Sprintf("q%d", i),
			Subject:       questiongen.SubjectMath,
			Topic:         "Bilangan & Operasi",
			Type:          questiongen.TypeSingleChoice,
			Text:          fmt.Sprintf("Soal %d", i),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: questiongen.StringValue("A"),
		}
	}
	return qs
}

func newTestService(t *testing.T, gen questiongen.Generator, online bool) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	cfg := config.Exam{
		Duration:      time.Hour,
		NumeracyCount: 15,
		LiteracyCount: 15,
	}
	svc := NewService(gen, connectivity.Static(online), s.SnapshotRepo(), s.ResultRepo(), cfg)
	return svc, s
}

func TestStart_Offline(t *testing.T) {
	svc, _ := newTestService(t, &stubGenerator{questions: tenQuestions()}, false)

	err := svc.Start(context.Background(), "budi", topics.DefaultSelection())
	if !errors.Is(err, ErrOffline) {
		t.Fatalf("expected ErrOffline, got %v", err)
	}
	if svc.Phase() != PhaseIdle {
		t.Fatal("offline start must leave the service idle")
	}
}

func TestStart_HappyPath(t *testing.T) {
	svc, _ := newTestService(t, &stubGenerator{questions: tenQuestions()}, true)

	if err := svc.Start(context.Background(), "budi", topics.DefaultSelection()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Phase() != PhaseInProgress {
		t.Fatalf("expected PhaseInProgress, got %v", svc.Phase())
	}

	a := svc.Attempt()
	if a == nil || len(a.Questions) != 10 {
		t.Fatal("attempt should carry the generated questions")
	}
	if a.Remaining(time.Now()) > time.Hour {
		t.Fatal("remaining time must not exceed the configured duration")
	}
}

func TestStart_BusyWhileGenerating(t *testing.T) {
	gen := &stubGenerator{questions: tenQuestions(), block: make(chan struct{})}
	svc, _ := newTestService(t, gen, true)

	done := make(chan error, 1)
	go func() {
		done <- svc.Start(context.Background(), "budi", topics.DefaultSelection())
	}()

	// Wait for the first Start to reach the generator.
	deadline := time.After(2 * time.Second)
	for {
		gen.mu.Lock()
		calls := gen.calls
		gen.mu.Unlock()
		if calls > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("generator never called")
		case <-time.After(time.Millisecond):
		}
	}

	if err := svc.Start(context.Background(), "budi", topics.DefaultSelection()); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	close(gen.block)
	if err := <-done; err != nil {
		t.Fatalf("first start failed: %v", err)
	}
}

func TestStart_GeneratorErrorReturnsToIdle(t *testing.T) {
	gen := &stubGenerator{err: questiongen.ErrEmptyResult}
	svc, _ := newTestService(t, gen, true)

	err := svc.Start(context.Background(), "budi", topics.DefaultSelection())
	if !errors.Is(err, questiongen.ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult in chain, got %v", err)
	}
	if svc.Phase() != PhaseIdle {
		t.Fatal("failed generation must return to idle")
	}

	// A retry is allowed immediately, no stuck busy flag.
	gen.err = nil
	gen.questions = tenQuestions()
	if err := svc.Start(context.Background(), "budi", topics.DefaultSelection()); err != nil {
		t.Fatalf("retry should succeed: %v", err)
	}
}

func TestRecordAnswer_Overwrite(t *testing.T) {
	svc, _ := newTestService(t, &stubGenerator{questions: tenQuestions()}, true)
	ctx := context.Background()

	if err := svc.Start(ctx, "budi", topics.DefaultSelection()); err != nil {
		t.Fatal(err)
	}

	if err := svc.RecordAnswer(ctx, "q0", questiongen.StringValue("B")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.RecordAnswer(ctx, "q0", questiongen.StringValue("A")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := svc.Attempt()
	if !questiongen.Equal(a.Answers["q0"], questiongen.StringValue("A")) {
		t.Fatal("later answer must replace the earlier one")
	}
	if a.Answered() != 1 {
		t.Fatalf("expected 1 answered, got %d", a.Answered())
	}
}

func TestRecordAnswer_NotInProgress(t *testing.T) {
	svc, _ := newTestService(t, &stubGenerator{}, true)
	err := svc.RecordAnswer(context.Background(), "q0", questiongen.StringValue("A"))
	if !errors.Is(err, ErrNotInProgress) {
		t.Fatalf("expected ErrNotInProgress, got %v", err)
	}
}

func TestFinalize_Scoring(t *testing.T) {
	svc, st := newTestService(t, &stubGenerator{questions: tenQuestions()}, true)
	ctx := context.Background()

	if err := svc.Start(ctx, "budi", topics.DefaultSelection()); err != nil {
		t.Fatal(err)
	}

	// 7 of 10 correct.
	for i := 0; i < 7; i++ {
		if err := svc.RecordAnswer(ctx, fmt.Sprintf("q%d", i), questiongen.StringValue("A")); err != nil {
			t.Fatal(err)
		}
	}
	if err := svc.RecordAnswer(ctx, "q7", questiongen.StringValue("B")); err != nil {
		t.Fatal(err)
	}

	result, err := svc.Finalize(ctx, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 70 || result.CorrectCount != 7 || result.Total != 10 {
		t.Fatalf("expected 70/7/10, got %d/%d/%d", result.Score, result.CorrectCount, result.Total)
	}
	if result.TimedOut {
		t.Fatal("manual submit must not be marked as timed out")
	}
	if len(result.Review) != 10 {
		t.Fatalf("expected review of all questions, got %d", len(result.Review))
	}
	if svc.Phase() != PhaseScored {
		t.Fatal("expected PhaseScored after finalize")
	}

	// Result persisted, snapshot gone.
	records, err := st.ResultRepo().List(ctx, "budi")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Score != 70 {
		t.Fatalf("expected one stored result with score 70, got %+v", records)
	}
	snap, err := st.SnapshotRepo().Load(ctx, "budi")
	if err != nil {
		t.Fatal(err)
	}
	if snap != nil {
		t.Fatal("snapshot must be cleared on finalize")
	}
}

func TestFinalize_RoundsToNearest(t *testing.T) {
	qs := tenQuestions()[:3]
	svc, _ := newTestService(t, &stubGenerator{questions: qs}, true)
	ctx := context.Background()

	if err := svc.Start(ctx, "budi", topics.DefaultSelection()); err != nil {
		t.Fatal(err)
	}
	if err := svc.RecordAnswer(ctx, "q0", questiongen.StringValue("A")); err != nil {
		t.Fatal(err)
	}

	result, err := svc.Finalize(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	// 1/3 = 33.33 -> 33
	if result.Score != 33 {
		t.Fatalf("expected 33, got %d", result.Score)
	}
}

func TestFinalize_TimedOut(t *testing.T) {
	svc, _ := newTestService(t, &stubGenerator{questions: tenQuestions()}, true)
	ctx := context.Background()

	if err := svc.Start(ctx, "budi", topics.DefaultSelection()); err != nil {
		t.Fatal(err)
	}
	result, err := svc.Finalize(ctx, true)
	if err != nil {
		t.Fatal(err)
	}
	if !result.TimedOut {
		t.Fatal("expected timed-out result")
	}
	if result.Score != 0 {
		t.Fatalf("nothing answered, expected score 0, got %d", result.Score)
	}
}

func TestSnapshot_ResumeRoundTrip(t *testing.T) {
	gen := &stubGenerator{questions: tenQuestions()}
	svc, st := newTestService(t, gen, true)
	ctx := context.Background()

	if err := svc.Start(ctx, "budi", topics.DefaultSelection()); err != nil {
		t.Fatal(err)
	}
	if err := svc.RecordAnswer(ctx, "q1", questiongen.StringList("A", "C")); err != nil {
		t.Fatal(err)
	}
	if err := svc.RecordAnswer(ctx, "q2", questiongen.StringMap(map[string]string{"Paus": "Mamalia"})); err != nil {
		t.Fatal(err)
	}

	// A fresh service against the same store stands in for a restart.
	cfg := config.Exam{Duration: time.Hour, NumeracyCount: 15, LiteracyCount: 15}
	restarted := NewService(gen, connectivity.Static(true), st.SnapshotRepo(), st.ResultRepo(), cfg)

	resumed, err := restarted.Resume(ctx, "budi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resumed {
		t.Fatal("expected an attempt to resume")
	}

	a := restarted.Attempt()
	if len(a.Questions) != 10 {
		t.Fatalf("expected 10 restored questions, got %d", len(a.Questions))
	}
	if !questiongen.Equal(a.Answers["q1"], questiongen.StringList("A", "C")) {
		t.Fatal("list answer must survive the round trip")
	}
	if !questiongen.Equal(a.Answers["q2"], questiongen.StringMap(map[string]string{"Paus": "Mamalia"})) {
		t.Fatal("object answer must survive the round trip")
	}
}

func TestResume_NothingToResume(t *testing.T) {
	svc, _ := newTestService(t, &stubGenerator{}, true)
	resumed, err := svc.Resume(context.Background(), "budi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resumed {
		t.Fatal("nothing should resume from an empty store")
	}
}

func TestResume_ExpiredSnapshotDiscarded(t *testing.T) {
	svc, st := newTestService(t, &stubGenerator{questions: tenQuestions()}, true)
	ctx := context.Background()

	if err := svc.Start(ctx, "budi", topics.DefaultSelection()); err != nil {
		t.Fatal(err)
	}

	// Rewrite the snapshot with a long-past start time.
	a := svc.Attempt()
	a.StartedAt = time.Now().Add(-2 * time.Hour)
	data, err := attemptToSnapshot(a)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.SnapshotRepo().Save(ctx, "budi", data); err != nil {
		t.Fatal(err)
	}

	cfg := config.Exam{Duration: time.Hour, NumeracyCount: 15, LiteracyCount: 15}
	restarted := NewService(&stubGenerator{}, connectivity.Static(true), st.SnapshotRepo(), st.ResultRepo(), cfg)

	resumed, err := restarted.Resume(ctx, "budi")
	if err != nil {
		t.Fatal(err)
	}
	if resumed {
		t.Fatal("expired attempts must not resume")
	}
	snap, err := st.SnapshotRepo().Load(ctx, "budi")
	if err != nil {
		t.Fatal(err)
	}
	if snap != nil {
		t.Fatal("expired snapshot should be cleared")
	}
}

func TestDiscard_ClearsAttemptAndSnapshot(t *testing.T) {
	svc, st := newTestService(t, &stubGenerator{questions: tenQuestions()}, true)
	ctx := context.Background()

	if err := svc.Start(ctx, "budi", topics.DefaultSelection()); err != nil {
		t.Fatal(err)
	}
	if err := svc.Discard(ctx, "budi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Phase() != PhaseIdle {
		t.Fatal("discard must return to idle")
	}
	snap, err := st.SnapshotRepo().Load(ctx, "budi")
	if err != nil {
		t.Fatal(err)
	}
	if snap != nil {
		t.Fatal("discard must clear the snapshot")
	}

	// Discarding again is harmless.
	if err := svc.Discard(ctx, "budi"); err != nil {
		t.Fatalf("second discard should be a no-op, got %v", err)
	}
}
