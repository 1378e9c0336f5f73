package store

import (
	"context"
	"fmt"
	"time"

	"github.com/edugen/tka/ent"
	"github.com/edugen/tka/ent/examsnapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, username string, data map[string]any) error {
	if err := r.Clear(ctx, username); err != nil {
		return err
	}
	_, err := r.client.ExamSnapshot.Create().
		SetUsername(username).
		SetData(data).
		SetSavedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save exam snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Load(ctx context.Context, username string) (map[string]any, error) {
	s, err := r.client.ExamSnapshot.Query().
		Where(examsnapshot.UsernameEQ(username)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load exam snapshot: %w", err)
	}
	return s.Data, nil
}

func (r *snapshotRepo) Clear(ctx context.Context, username string) error {
	_, err := r.client.ExamSnapshot.Delete().
		Where(examsnapshot.UsernameEQ(username)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear exam snapshot: %w", err)
	}
	return nil
}
