// Package exam drives one attempt through its lifecycle: generate the
// questions, collect answers against the countdown, score on submit or
// timeout, and persist the result. An in-progress attempt is
// snapshotted after every answer so a crash or restart resumes where
// the learner left off.
package exam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edugen/tka/internal/config"
	"github.com/edugen/tka/internal/connectivity"
	"github.com/edugen/tka/internal/questiongen"
	"github.com/edugen/tka/internal/store"
	"github.com/edugen/tka/internal/topics"
)

// Phase is the attempt lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseGenerating
	PhaseInProgress
	PhaseScored
)

// ErrOffline gates generation when the network is unreachable.
var ErrOffline = errors.New("no internet connection")

// ErrBusy is returned when generation is already running.
var ErrBusy = errors.New("exam generation already in progress")

// ErrNotInProgress is returned by answer and finalize operations when
// no attempt is running.
var ErrNotInProgress = errors.New("no exam in progress")

// Attempt is a snapshot of the running exam.
type Attempt struct {
	Username  string
	Topics    []string
	Questions []questiongen.Question
	Answers   map[string]questiongen.AnswerValue
	StartedAt time.Time
	Duration  time.Duration
}

// Remaining returns the time left on the countdown at now.
func (a *Attempt) Remaining(now time.Time) time.Duration {
	left := a.Duration - now.Sub(a.StartedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Answered returns how many questions have a recorded answer.
func (a *Attempt) Answered() int {
	n := 0
	for _, q := range a.Questions {
		if v, ok := a.Answers[q.ID]; ok && !v.IsNull() {
			n++
		}
	}
	return n
}

// ReviewItem pairs a question with the learner's answer for the
// results screen.
type ReviewItem struct {
	Question questiongen.Question
	Given    questiongen.AnswerValue
	Correct  bool
}

// Result is the scored outcome of one attempt.
type Result struct {
	ResultID     string
	Username     string
	Score        int
	CorrectCount int
	Total        int
	TimedOut     bool
	TakenAt      time.Time
	Review       []ReviewItem
}

// Service owns the single running attempt.
type Service struct {
	mu        sync.Mutex
	generator questiongen.Generator
	checker   connectivity.Checker
	snapshots store.SnapshotRepo
	results   store.ResultRepo
	cfg       config.Exam

	phase      Phase
	generating bool
	attempt    *Attempt
}

// NewService wires the exam service.
func NewService(gen questiongen.Generator, checker connectivity.Checker, snapshots store.SnapshotRepo, results store.ResultRepo, cfg config.Exam) *Service {
	return &Service{
		generator: gen,
		checker:   checker,
		snapshots: snapshots,
		results:   results,
		cfg:       cfg,
	}
}

// Phase returns the current lifecycle state.
func (s *Service) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Attempt returns a copy of the running attempt, or nil when idle.
func (s *Service) Attempt() *Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attempt == nil {
		return nil
	}
	return copyAttempt(s.attempt)
}

// Start generates a fresh exam for username over the selected topics
// and begins the countdown. It refuses to run offline and refuses to
// run twice concurrently.
func (s *Service) Start(ctx context.Context, username string, sel topics.Selection) error {
	if !s.checker.Online(ctx) {
		return ErrOffline
	}

	s.mu.Lock()
	if s.generating {
		s.mu.Unlock()
		return ErrBusy
	}
	s.generating = true
	s.phase = PhaseGenerating
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.generating = false
		s.mu.Unlock()
	}()

	questions, err := s.generator.Generate(ctx, questiongen.Params{
		MathTopics:     sel.Math,
		LiteracyTopics: sel.Indonesian,
		NumeracyCount:  s.cfg.NumeracyCount,
		LiteracyCount:  s.cfg.LiteracyCount,
	})
	if err != nil {
		s.mu.Lock()
		s.phase = PhaseIdle
		s.mu.Unlock()
		return fmt.Errorf("generating exam: %w", err)
	}

	attempt := &Attempt{
		Username:  username,
		Topics:    sel.All(),
		Questions: questions,
		Answers:   make(map[string]questiongen.AnswerValue),
		StartedAt: time.Now(),
		Duration:  s.cfg.Duration,
	}

	s.mu.Lock()
	s.attempt = attempt
	s.phase = PhaseInProgress
	s.mu.Unlock()

	return s.saveSnapshot(ctx)
}

// RecordAnswer stores the learner's answer for questionID, replacing
// any previous one, and persists the snapshot.
func (s *Service) RecordAnswer(ctx context.Context, questionID string, answer questiongen.AnswerValue) error {
	s.mu.Lock()
	if s.phase != PhaseInProgress || s.attempt == nil {
		s.mu.Unlock()
		return ErrNotInProgress
	}
	s.attempt.Answers[questionID] = answer
	s.mu.Unlock()

	return s.saveSnapshot(ctx)
}

// Finalize scores the attempt, appends it to the history, clears the
// snapshot, and moves to PhaseScored. Unanswered questions count as
// wrong. timedOut marks results produced by the countdown expiring.
func (s *Service) Finalize(ctx context.Context, timedOut bool) (*Result, error) {
	s.mu.Lock()
	if s.phase != PhaseInProgress || s.attempt == nil {
		s.mu.Unlock()
		return nil, ErrNotInProgress
	}
	attempt := s.attempt
	s.attempt = nil
	s.phase = PhaseScored
	s.mu.Unlock()

	result := score(attempt, timedOut)

	if err := s.results.Append(ctx, store.ResultRecord{
		ResultID:       result.ResultID,
		Username:       result.Username,
		Score:          result.Score,
		TotalQuestions: result.Total,
		CorrectCount:   result.CorrectCount,
		Topics:         attempt.Topics,
		TakenAt:        result.TakenAt,
	}); err != nil {
		return nil, fmt.Errorf("saving result: %w", err)
	}

	if err := s.snapshots.Clear(ctx, attempt.Username); err != nil {
		return nil, fmt.Errorf("clearing snapshot: %w", err)
	}

	return result, nil
}

// Discard drops the running attempt and its snapshot without scoring.
// Used on logout and inactivity reset. Safe to call when idle.
func (s *Service) Discard(ctx context.Context, username string) error {
	s.mu.Lock()
	s.attempt = nil
	s.phase = PhaseIdle
	s.mu.Unlock()

	return s.snapshots.Clear(ctx, username)
}

// Reset returns the service to idle without touching storage. Used
// after the results screen is dismissed.
func (s *Service) Reset() {
	s.mu.Lock()
	s.attempt = nil
	s.phase = PhaseIdle
	s.mu.Unlock()
}

// Resume restores an in-progress attempt for username from its
// snapshot. Returns false when there is nothing to resume. An expired
// snapshot (countdown already over) is discarded rather than restored.
func (s *Service) Resume(ctx context.Context, username string) (bool, error) {
	data, err := s.snapshots.Load(ctx, username)
	if err != nil {
		return false, fmt.Errorf("loading snapshot: %w", err)
	}
	if data == nil {
		return false, nil
	}

	attempt, err := attemptFromSnapshot(data)
	if err != nil {
		// A snapshot we cannot decode is useless: drop it.
		_ = s.snapshots.Clear(ctx, username)
		return false, nil
	}
	if attempt.Username != username || attempt.Remaining(time.Now()) == 0 {
		_ = s.snapshots.Clear(ctx, username)
		return false, nil
	}

	s.mu.Lock()
	s.attempt = attempt
	s.phase = PhaseInProgress
	s.mu.Unlock()

	return true, nil
}

func (s *Service) saveSnapshot(ctx context.Context) error {
	s.mu.Lock()
	if s.attempt == nil {
		s.mu.Unlock()
		return nil
	}
	attempt := copyAttempt(s.attempt)
	s.mu.Unlock()

	data, err := attemptToSnapshot(attempt)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return s.snapshots.Save(ctx, attempt.Username, data)
}

// score applies structural answer comparison and the percentage
// rounding used on report cards: round half away from zero.
func score(a *Attempt, timedOut bool) *Result {
	review := make([]ReviewItem, 0, len(a.Questions))
	correct := 0
	for _, q := range a.Questions {
		given, ok := a.Answers[q.ID]
		if !ok {
			given = questiongen.Null()
		}
		isCorrect := questiongen.Equal(given, q.CorrectAnswer)
		if isCorrect {
			correct++
		}
		review = append(review, ReviewItem{Question: q, Given: given, Correct: isCorrect})
	}

	total := len(a.Questions)
	scoreVal := 0
	if total > 0 {
		scoreVal = int(math.Round(float64(correct) / float64(total) * 100))
	}

	return &Result{
		ResultID:     uuid.NewString(),
		Username:     a.Username,
		Score:        scoreVal,
		CorrectCount: correct,
		Total:        total,
		TimedOut:     timedOut,
		TakenAt:      time.Now(),
		Review:       review,
	}
}

func copyAttempt(a *Attempt) *Attempt {
	out := &Attempt{
		Username:  a.Username,
		Topics:    append([]string(nil), a.Topics...),
		Questions: append([]questiongen.Question(nil), a.Questions...),
		Answers:   make(map[string]questiongen.AnswerValue, len(a.Answers)),
		StartedAt: a.StartedAt,
		Duration:  a.Duration,
	}
	for k, v := range a.Answers {
		out.Answers[k] = v
	}
	return out
}

// attemptToSnapshot round-trips the attempt through JSON into the
// generic map the snapshot repo stores.
func attemptToSnapshot(a *Attempt) (map[string]any, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func attemptFromSnapshot(data map[string]any) (*Attempt, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var a Attempt
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, err
	}
	if a.Username == "" || len(a.Questions) == 0 {
		return nil, errors.New("incomplete snapshot")
	}
	if a.Answers == nil {
		a.Answers = make(map[string]questiongen.AnswerValue)
	}
	return &a, nil
}
