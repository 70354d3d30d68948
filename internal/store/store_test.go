package store

import (
	"context"
	"testing"
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
		// so we skip journal_mode here.
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

func TestUserUpsertIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	if _, err := repo.Get(ctx, "user_1"); err != ErrNotFound {
		t.Fatalf("get missing user: err = %v, want ErrNotFound", err)
	}

	u := User{ID: "user_1", Email: "a@example.com", Plan: "pro", UnlimitedDecks: true, AIGeneration: true}
	if err := repo.Upsert(ctx, u); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.Upsert(ctx, u); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.Get(ctx, "user_1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Plan != "pro" || !got.UnlimitedDecks || !got.AIGeneration {
		t.Errorf("got %+v, want pro with both entitlements", got)
	}

	// Downgrade applies on a later upsert.
	if err := repo.Upsert(ctx, User{ID: "user_1", Plan: "free_user"}); err != nil {
		t.Fatalf("downgrade upsert: %v", err)
	}
	got, err = repo.Get(ctx, "user_1")
	if err != nil {
		t.Fatalf("get after downgrade: %v", err)
	}
	if got.Plan != "free_user" || got.UnlimitedDecks || got.AIGeneration {
		t.Errorf("after downgrade got %+v, want free with no entitlements", got)
	}
	if got.Email != "a@example.com" {
		t.Errorf("email = %q, want preserved when webhook omits it", got.Email)
	}
}

func TestDeckOwnershipScoping(t *testing.T) {
	s := openTestStore(t)
	repo := s.DeckRepo()
	ctx := context.Background()

	d, err := repo.Create(ctx, "alice", "Go Basics", "stdlib and tooling")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.Get(ctx, d.ID, "bob"); err != ErrNotFound {
		t.Errorf("cross-owner get: err = %v, want ErrNotFound", err)
	}
	if _, err := repo.Update(ctx, d.ID, "bob", "x", ""); err != ErrNotFound {
		t.Errorf("cross-owner update: err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, d.ID, "bob"); err != ErrNotFound {
		t.Errorf("cross-owner delete: err = %v, want ErrNotFound", err)
	}

	got, err := repo.Get(ctx, d.ID, "alice")
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if got.Name != "Go Basics" {
		t.Errorf("name = %q", got.Name)
	}

	n, err := repo.CountByOwner(ctx, "alice")
	if err != nil || n != 1 {
		t.Errorf("count = %d (err %v), want 1", n, err)
	}
}

func TestDeckDeleteCascades(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	decks := s.DeckRepo()
	cards := s.CardRepo()
	sessions := s.SessionRepo()

	d, err := decks.Create(ctx, "alice", "History", "")
	if err != nil {
		t.Fatalf("create deck: %v", err)
	}
	c, err := cards.Create(ctx, d.ID, "1492?", "Columbus")
	if err != nil {
		t.Fatalf("create card: %v", err)
	}
	sess, err := sessions.Begin(ctx, "alice", d.ID, 1)
	if err != nil {
		t.Fatalf("begin session: %v", err)
	}
	if err := sessions.RecordResult(ctx, sess.ID, c.ID, false, 1200); err != nil {
		t.Fatalf("record result: %v", err)
	}

	if err := decks.Delete(ctx, d.ID, "alice"); err != nil {
		t.Fatalf("delete deck: %v", err)
	}

	remaining, err := cards.ByDeck(ctx, d.ID)
	if err != nil {
		t.Fatalf("list cards: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("cards after cascade = %d, want 0", len(remaining))
	}
	if _, err := sessions.LatestByDeck(ctx, d.ID, "alice"); err != ErrNotFound {
		t.Errorf("session after cascade: err = %v, want ErrNotFound", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	decks := s.DeckRepo()
	cards := s.CardRepo()
	sessions := s.SessionRepo()

	d, _ := decks.Create(ctx, "alice", "Chemistry", "")
	a, _ := cards.Create(ctx, d.ID, "H2O?", "water")
	b, _ := cards.Create(ctx, d.ID, "NaCl?", "salt")
	c, _ := cards.Create(ctx, d.ID, "CO2?", "carbon dioxide")

	sess, err := sessions.Begin(ctx, "alice", d.ID, 3)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if sess.CompletedAt != nil {
		t.Error("new session should not be completed")
	}

	for _, r := range []struct {
		cardID  int
		correct bool
	}{
		{a.ID, true},
		{b.ID, false},
		{c.ID, true},
	} {
		if err := sessions.RecordResult(ctx, sess.ID, r.cardID, r.correct, 800); err != nil {
			t.Fatalf("record %d: %v", r.cardID, err)
		}
	}

	// Finalize with the wrong user is refused.
	if err := sessions.Finalize(ctx, sess.ID, "bob", 2, 1); err != ErrNotFound {
		t.Errorf("cross-user finalize: err = %v, want ErrNotFound", err)
	}
	if err := sessions.Finalize(ctx, sess.ID, "alice", 2, 1); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	latest, err := sessions.LatestByDeck(ctx, d.ID, "alice")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.CorrectCount != 2 || latest.IncorrectCount != 1 {
		t.Errorf("counts = %d/%d, want 2/1", latest.CorrectCount, latest.IncorrectCount)
	}
	if latest.CompletedAt == nil {
		t.Error("completed_at not set by finalize")
	}

	weak, err := sessions.WeakCardIDs(ctx, d.ID, "alice")
	if err != nil {
		t.Fatalf("weak ids: %v", err)
	}
	if len(weak) != 1 || weak[0] != b.ID {
		t.Errorf("weak = %v, want [%d]", weak, b.ID)
	}

	stats, err := sessions.DeckStats(ctx, d.ID, "alice")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.LastStudied == nil {
		t.Fatal("expected lastStudied")
	}
	if stats.LastAccuracy == nil || *stats.LastAccuracy != 67 {
		t.Errorf("lastAccuracy = %v, want 67", stats.LastAccuracy)
	}
}

func TestDeckStatsNeverStudied(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	d, _ := s.DeckRepo().Create(ctx, "alice", "Empty", "")
	stats, err := s.SessionRepo().DeckStats(ctx, d.ID, "alice")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.LastStudied != nil || stats.LastAccuracy != nil {
		t.Errorf("stats = %+v, want zero value", stats)
	}
}
