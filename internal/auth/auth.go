// Package auth resolves caller identity and plan entitlements.
//
// Identity arrives on each request from the deployment's gateway; this
// package only carries it through the context and maps it to the
// entitlements recorded by the billing webhook.
package auth

import (
	"context"
	"errors"

	"github.com/anshul/memodeck/internal/store"
)

// Plan names as delivered by the billing webhook.
const (
	PlanFree = "free_user"
	PlanPro  = "pro"
)

// FreeDeckLimit is the maximum number of decks a free user may own.
const FreeDeckLimit = 3

// Entitlements is what a user's plan allows.
type Entitlements struct {
	Plan           string
	UnlimitedDecks bool
	AIGeneration   bool
}

// FreeEntitlements is the default for unknown users and free accounts.
func FreeEntitlements() Entitlements {
	return Entitlements{Plan: PlanFree}
}

// Resolver looks up entitlements for a user id.
type Resolver struct {
	users store.UserRepo
}

// NewResolver creates a Resolver backed by the given user repo.
func NewResolver(users store.UserRepo) *Resolver {
	return &Resolver{users: users}
}

// Resolve returns the entitlements for userID. Users the billing
// webhook has never reported get free defaults.
func (r *Resolver) Resolve(ctx context.Context, userID string) (Entitlements, error) {
	u, err := r.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return FreeEntitlements(), nil
		}
		return Entitlements{}, err
	}
	return Entitlements{
		Plan:           u.Plan,
		UnlimitedDecks: u.UnlimitedDecks,
		AIGeneration:   u.AIGeneration,
	}, nil
}
