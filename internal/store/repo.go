package store

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateUsername is returned by UserRepo.Create when the username
// is already registered.
var ErrDuplicateUsername = errors.New("username already registered")

// ErrNotFound is returned by lookup methods when no record matches.
var ErrNotFound = errors.New("record not found")

// UserRecord is a registered account as stored in the registry.
type UserRecord struct {
	Username string
	Password string
	Phone    string
}

// UserRepo manages the registered-users registry.
type UserRepo interface {
	// Create appends a new user. Fails with ErrDuplicateUsername if the
	// username is taken.
	Create(ctx context.Context, u UserRecord) error

	// ByUsername returns the user with the given username, or ErrNotFound.
	ByUsername(ctx context.Context, username string) (*UserRecord, error)

	// ByPhone returns the first user registered with the given phone
	// number, or ErrNotFound.
	ByPhone(ctx context.Context, phone string) (*UserRecord, error)

	// UpdatePassword replaces the stored password for username.
	UpdatePassword(ctx context.Context, username, password string) error
}

// SessionRepo manages the single current-session marker.
type SessionRepo interface {
	// Set records username as the current session, replacing any prior one.
	Set(ctx context.Context, username string) error

	// Current returns the logged-in username, or "" if none.
	Current(ctx context.Context) (string, error)

	// Clear removes the session marker. Idempotent.
	Clear(ctx context.Context) error
}

// ResultRecord is one completed exam in the history.
type ResultRecord struct {
	ResultID       string
	Username       string
	Score          int
	TotalQuestions int
	CorrectCount   int
	Topics         []string
	TakenAt        time.Time
}

// ResultRepo manages the exam history, most recent first.
type ResultRepo interface {
	// Append stores a new result.
	Append(ctx context.Context, r ResultRecord) error

	// List returns results for username ordered most recent first.
	List(ctx context.Context, username string) ([]ResultRecord, error)

	// Delete removes the result with the given result ID.
	Delete(ctx context.Context, resultID string) error

	// Clear removes all results for username.
	Clear(ctx context.Context, username string) error
}

// SnapshotRepo manages the per-user in-progress exam snapshot.
// At most one snapshot exists per user.
type SnapshotRepo interface {
	// Save stores or replaces the snapshot for username.
	Save(ctx context.Context, username string, data map[string]any) error

	// Load returns the snapshot for username, or nil if none exists.
	Load(ctx context.Context, username string) (map[string]any, error)

	// Clear removes the snapshot for username. Idempotent.
	Clear(ctx context.Context, username string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates token usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns the most recent events, newest first.
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
}
