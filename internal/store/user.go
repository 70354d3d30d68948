package store

import (
	"context"
	"fmt"

	"github.com/anshul/memodeck/ent"
)

type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Get(ctx context.Context, id string) (*User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return userFromEnt(u), nil
}

// Upsert is a read-then-write rather than ON CONFLICT: the webhook is the
// only writer for a given user id, so there is no contention to lose.
func (r *userRepo) Upsert(ctx context.Context, u User) error {
	existing, err := r.client.User.Get(ctx, u.ID)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("lookup user: %w", err)
		}
		_, err = r.client.User.Create().
			SetID(u.ID).
			SetEmail(u.Email).
			SetPlan(u.Plan).
			SetUnlimitedDecks(u.UnlimitedDecks).
			SetAiGeneration(u.AIGeneration).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	}

	upd := existing.Update().
		SetPlan(u.Plan).
		SetUnlimitedDecks(u.UnlimitedDecks).
		SetAiGeneration(u.AIGeneration)
	if u.Email != "" {
		upd = upd.SetEmail(u.Email)
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func userFromEnt(u *ent.User) *User {
	return &User{
		ID:             u.ID,
		Email:          u.Email,
		Plan:           u.Plan,
		UnlimitedDecks: u.UnlimitedDecks,
		AIGeneration:   u.AiGeneration,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
