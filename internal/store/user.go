package store

import (
	"context"
	"fmt"

	"github.com/edugen/tka/ent"
	"github.com/edugen/tka/ent/user"
)

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, u UserRecord) error {
	create := r.client.User.Create().
		SetUsername(u.Username).
		SetPassword(u.Password)
	if u.Phone != "" {
		create.SetPhone(u.Phone)
	}
	_, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepo) ByUsername(ctx context.Context, username string) (*UserRecord, error) {
	u, err := r.client.User.Query().
		Where(user.UsernameEQ(username)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return entUserToRecord(u), nil
}

func (r *userRepo) ByPhone(ctx context.Context, phone string) (*UserRecord, error) {
	u, err := r.client.User.Query().
		Where(user.PhoneEQ(phone)).
		Order(ent.Asc(user.FieldCreatedAt), ent.Asc(user.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query user by phone: %w", err)
	}
	return entUserToRecord(u), nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, username, password string) error {
	n, err := r.client.User.Update().
		Where(user.UsernameEQ(username)).
		SetPassword(password).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func entUserToRecord(u *ent.User) *UserRecord {
	return &UserRecord{
		Username: u.Username,
		Password: u.Password,
		Phone:    u.Phone,
	}
}
