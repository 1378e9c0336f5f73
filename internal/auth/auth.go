// Package auth implements account registration, login, and recovery on
// top of the store repositories. At most one user is logged in at a
// time; the session survives restarts through a single marker row.
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/edugen/tka/internal/store"
)

// ErrInvalidCredentials is returned on a failed login. It is the same
// for a wrong password and an unknown username, so login attempts do
// not reveal which accounts exist.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrUsernameTaken is returned when registering an existing username.
var ErrUsernameTaken = errors.New("username is already taken")

// ErrAccountNotFound is returned when recovery matches no account.
var ErrAccountNotFound = errors.New("no account found")

// MissingFieldError marks a required field that was left empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Service implements the account operations.
type Service struct {
	users    store.UserRepo
	sessions store.SessionRepo
}

// NewService wires the auth service to its repositories.
func NewService(users store.UserRepo, sessions store.SessionRepo) *Service {
	return &Service{users: users, sessions: sessions}
}

// Register creates an account and logs it in. Username and password
// are required; phone is optional and only used for recovery.
func (s *Service) Register(ctx context.Context, username, password, phone string) error {
	username = strings.TrimSpace(username)
	phone = strings.TrimSpace(phone)

	if username == "" {
		return &MissingFieldError{Field: "username"}
	}
	if password == "" {
		return &MissingFieldError{Field: "password"}
	}

	err := s.users.Create(ctx, store.UserRecord{
		Username: username,
		Password: hashPassword(password),
		Phone:    phone,
	})
	if errors.Is(err, store.ErrDuplicateUsername) {
		return ErrUsernameTaken
	}
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return s.sessions.Set(ctx, username)
}

// Login verifies the credentials and records the session.
func (s *Service) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return &MissingFieldError{Field: "username"}
	}
	if password == "" {
		return &MissingFieldError{Field: "password"}
	}

	user, err := s.users.ByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("looking up account: %w", err)
	}
	if user.Password != hashPassword(password) {
		return ErrInvalidCredentials
	}

	return s.sessions.Set(ctx, username)
}

// Logout clears the session marker. Logging out while already logged
// out is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Current returns the logged-in username, or false when nobody is.
func (s *Service) Current(ctx context.Context) (string, bool, error) {
	username, err := s.sessions.Current(ctx)
	if err != nil {
		return "", false, err
	}
	if username == "" {
		return "", false, nil
	}
	return username, true, nil
}

// RecoverByPhone finds the account registered with the given phone
// number, replaces its password with newPassword, and returns the
// username. The old password is never disclosed. When several accounts
// share the phone number the oldest one wins.
func (s *Service) RecoverByPhone(ctx context.Context, phone, newPassword string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", &MissingFieldError{Field: "phone"}
	}
	if newPassword == "" {
		return "", &MissingFieldError{Field: "new password"}
	}

	user, err := s.users.ByPhone(ctx, phone)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrAccountNotFound
	}
	if err != nil {
		return "", fmt.Errorf("looking up account: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.Username, hashPassword(newPassword)); err != nil {
		return "", fmt.Errorf("resetting password: %w", err)
	}
	return user.Username, nil
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
