package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestUserCreateAndLookup(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	err := repo.Create(ctx, UserRecord{Username: "alice", Password: "pw1", Phone: "0800"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	u, err := repo.ByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("by username: %v", err)
	}
	if u.Password != "pw1" || u.Phone != "0800" {
		t.Errorf("unexpected record: %+v", u)
	}

	u, err = repo.ByPhone(ctx, "0800")
	if err != nil {
		t.Fatalf("by phone: %v", err)
	}
	if u.Username != "alice" {
		t.Errorf("by phone username = %q, want alice", u.Username)
	}
}

func TestUserDuplicateUsername(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, UserRecord{Username: "alice", Password: "pw1", Phone: "0800"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err := repo.Create(ctx, UserRecord{Username: "alice", Password: "pw2", Phone: "0801"})
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("second create err = %v, want ErrDuplicateUsername", err)
	}

	// The registry keeps the original record.
	u, err := repo.ByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("by username: %v", err)
	}
	if u.Password != "pw1" {
		t.Errorf("password = %q, want pw1", u.Password)
	}
}

func TestUserLookupNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	if _, err := repo.ByUsername(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("by username err = %v, want ErrNotFound", err)
	}
	if _, err := repo.ByPhone(ctx, "0000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("by phone err = %v, want ErrNotFound", err)
	}
}

func TestSessionSetCurrentClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	cur, err := repo.Current(ctx)
	if err != nil {
		t.Fatalf("current (empty): %v", err)
	}
	if cur != "" {
		t.Fatalf("current = %q, want empty", cur)
	}

	if err := repo.Set(ctx, "alice"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, "bob"); err != nil {
		t.Fatalf("set (replace): %v", err)
	}

	cur, err = repo.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cur != "bob" {
		t.Errorf("current = %q, want bob", cur)
	}

	// Clear twice; both must succeed.
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear (again): %v", err)
	}
	cur, _ = repo.Current(ctx)
	if cur != "" {
		t.Errorf("current after clear = %q, want empty", cur)
	}
}

func TestResultListOrderAndDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, ResultRecord{
			ResultID:       string(rune('a' + i)),
			Username:       "alice",
			Score:          70 + i,
			TotalQuestions: 10,
			CorrectCount:   7,
			Topics:         []string{"Bilangan & Operasi"},
			TakenAt:        base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	list, err := repo.List(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	// Most recent first.
	if list[0].Score != 72 || list[2].Score != 70 {
		t.Errorf("unexpected order: %+v", list)
	}

	if err := repo.Delete(ctx, "b"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete (again) err = %v, want ErrNotFound", err)
	}

	if err := repo.Clear(ctx, "alice"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	list, _ = repo.List(ctx, "alice")
	if len(list) != 0 {
		t.Errorf("len after clear = %d, want 0", len(list))
	}
}

func TestSnapshotSaveLoadClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	data, err := repo.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if data != nil {
		t.Fatal("expected nil snapshot when none exists")
	}

	if err := repo.Save(ctx, "alice", map[string]any{"seconds_remaining": float64(120)}); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Saving again replaces, never duplicates.
	if err := repo.Save(ctx, "alice", map[string]any{"seconds_remaining": float64(90)}); err != nil {
		t.Fatalf("save (replace): %v", err)
	}

	data, err = repo.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data["seconds_remaining"] != float64(90) {
		t.Errorf("seconds_remaining = %v, want 90", data["seconds_remaining"])
	}

	if err := repo.Clear(ctx, "alice"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	data, _ = repo.Load(ctx, "alice")
	if data != nil {
		t.Error("expected nil snapshot after clear")
	}
}

func TestAppendLLMRequestEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-flash",
		Purpose:      "question-gen",
		InputTokens:  100,
		OutputTokens: 900,
		LatencyMs:    1200,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}
