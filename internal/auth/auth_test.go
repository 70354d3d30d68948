package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/anshul/memodeck/internal/store"
)

type stubUserRepo struct {
	users map[string]*store.User
	err   error
}

func (s *stubUserRepo) Get(ctx context.Context, id string) (*store.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

func (s *stubUserRepo) Upsert(ctx context.Context, u store.User) error { return nil }

func TestResolveKnownUser(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*store.User{
		"user_1": {ID: "user_1", Plan: PlanPro, UnlimitedDecks: true, AIGeneration: true},
	}}
	r := NewResolver(repo)

	ent, err := r.Resolve(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ent.Plan != PlanPro || !ent.UnlimitedDecks || !ent.AIGeneration {
		t.Errorf("entitlements = %+v", ent)
	}
}

func TestResolveUnknownUserGetsFreeDefaults(t *testing.T) {
	r := NewResolver(&stubUserRepo{users: map[string]*store.User{}})

	ent, err := r.Resolve(context.Background(), "stranger")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ent != FreeEntitlements() {
		t.Errorf("entitlements = %+v, want free defaults", ent)
	}
}

func TestResolvePropagatesStoreError(t *testing.T) {
	boom := errors.New("db down")
	r := NewResolver(&stubUserRepo{err: boom})

	if _, err := r.Resolve(context.Background(), "user_1"); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestUserIDContextRoundTrip(t *testing.T) {
	ctx := WithUserID(context.Background(), "user_42")
	if got := UserIDFrom(ctx); got != "user_42" {
		t.Errorf("UserIDFrom = %q", got)
	}
	if got := UserIDFrom(context.Background()); got != "" {
		t.Errorf("UserIDFrom(empty) = %q, want empty", got)
	}
}
