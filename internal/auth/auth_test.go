package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/edugen/tka/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(s.UserRepo(), s.SessionRepo())
}

func TestRegister_LogsIn(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "budi", "rahasia", "0812"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	username, ok, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || username != "budi" {
		t.Fatalf("expected budi logged in, got %q ok=%v", username, ok)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "budi", "rahasia", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := svc.Register(ctx, "budi", "lain", "")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var missing *MissingFieldError
	if err := svc.Register(ctx, "", "pw", ""); !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError for username, got %v", err)
	}
	if err := svc.Register(ctx, "budi", "", ""); !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError for password, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "budi", "rahasia", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := svc.Login(ctx, "budi", "salah")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, ok, _ := svc.Current(ctx); ok {
		t.Fatal("failed login must not create a session")
	}
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	svc := newTestService(t)

	err := svc.Login(context.Background(), "ghost", "pw")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user must look like a wrong password, got %v", err)
	}
}

func TestLogin_ReplacesSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "budi", "pw1", ""); err != nil {
		t.Fatal(err)
	}
	if err := svc.Register(ctx, "sari", "pw2", ""); err != nil {
		t.Fatal(err)
	}
	if err := svc.Login(ctx, "budi", "pw1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	username, ok, _ := svc.Current(ctx)
	if !ok || username != "budi" {
		t.Fatalf("expected budi as current session, got %q", username)
	}
}

func TestLogout_Idempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("logout with no session should be a no-op, got %v", err)
	}

	if err := svc.Register(ctx, "budi", "pw", ""); err != nil {
		t.Fatal(err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("second logout should be a no-op, got %v", err)
	}
	if _, ok, _ := svc.Current(ctx); ok {
		t.Fatal("session should be cleared")
	}
}

func TestRecoverByPhone(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "budi", "lupa", "0812"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatal(err)
	}

	username, err := svc.RecoverByPhone(ctx, "0812", "baru")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if username != "budi" {
		t.Fatalf("expected budi, got %q", username)
	}

	// The old password no longer works; the new one does.
	if err := svc.Login(ctx, "budi", "lupa"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password should be invalid after recovery, got %v", err)
	}
	if err := svc.Login(ctx, "budi", "baru"); err != nil {
		t.Fatalf("new password should work, got %v", err)
	}
}

func TestRecoverByPhone_Unknown(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.RecoverByPhone(context.Background(), "0000", "pw")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestRecoverByPhone_OldestAccountWins(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "kakak", "pw1", "0812"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Register(ctx, "adik", "pw2", "0812"); err != nil {
		t.Fatal(err)
	}

	username, err := svc.RecoverByPhone(ctx, "0812", "baru")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if username != "kakak" {
		t.Fatalf("expected the first registered account, got %q", username)
	}
}

func TestPasswordsNotStoredPlaintext(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })

	svc := NewService(s.UserRepo(), s.SessionRepo())
	ctx := context.Background()
	if err := svc.Register(ctx, "budi", "rahasia", ""); err != nil {
		t.Fatal(err)
	}

	user, err := s.UserRepo().ByUsername(ctx, "budi")
	if err != nil {
		t.Fatal(err)
	}
	if user.Password == "rahasia" {
		t.Fatal("password must not be stored in plaintext")
	}
}
