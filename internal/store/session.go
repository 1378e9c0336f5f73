package store

import (
	"context"
	"fmt"

	"github.com/edugen/tka/ent"
	"github.com/edugen/tka/ent/session"
)

// sessionSlot is the fixed slot value enforcing a single active session.
const sessionSlot = 1

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Set(ctx context.Context, username string) error {
	if err := r.Clear(ctx); err != nil {
		return err
	}
	_, err := r.client.Session.Create().
		SetSlot(sessionSlot).
		SetUsername(username).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Current(ctx context.Context) (string, error) {
	s, err := r.client.Session.Query().
		Where(session.SlotEQ(sessionSlot)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query session: %w", err)
	}
	return s.Username, nil
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	_, err := r.client.Session.Delete().
		Where(session.SlotEQ(sessionSlot)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
