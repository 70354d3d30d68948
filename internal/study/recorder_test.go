package study

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/anshul/memodeck/internal/store"
)

// stubSessionRepo records calls and signals each write on done.
type stubSessionRepo struct {
	mu          sync.Mutex
	beginErr    error
	begins      int
	beginTotals []int
	results     []int // card ids
	finalized   bool
	done        chan string
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{done: make(chan string, 16)}
}

func (s *stubSessionRepo) Begin(ctx context.Context, userID string, deckID, totalCards int) (*store.StudySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.done <- "begin" }()
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	s.begins++
	s.beginTotals = append(s.beginTotals, totalCards)
	return &store.StudySession{ID: 101, UserID: userID, DeckID: deckID, TotalCards: totalCards}, nil
}

func (s *stubSessionRepo) RecordResult(ctx context.Context, sessionID, cardID int, isCorrect bool, timeSpentMs int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, cardID)
	s.done <- "result"
	return nil
}

func (s *stubSessionRepo) Finalize(ctx context.Context, sessionID int, userID string, correct, incorrect int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalized = true
	s.done <- "finalize"
	return nil
}

func (s *stubSessionRepo) LatestByDeck(ctx context.Context, deckID int, userID string) (*store.StudySession, error) {
	return nil, store.ErrNotFound
}

func (s *stubSessionRepo) WeakCardIDs(ctx context.Context, deckID int, userID string) ([]int, error) {
	return nil, nil
}

func (s *stubSessionRepo) DeckStats(ctx context.Context, deckID int, userID string) (*store.DeckStats, error) {
	return nil, store.ErrNotFound
}

func waitFor(t *testing.T, ch <-chan string, want string) {
	t.Helper()
	select {
	case got := <-ch:
		if got != want {
			t.Fatalf("persistence call = %q, want %q", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %q", want)
	}
}

func TestRecorderPersistsFullSession(t *testing.T) {
	repo := newStubSessionRepo()
	rec := NewRecorder(repo, logrus.New())

	h := rec.Begin("user_1", 7, 2)
	waitFor(t, repo.done, "begin")

	rec.RecordResult(h, 1, true, 1200)
	waitFor(t, repo.done, "result")
	rec.RecordResult(h, 2, false, 3400)
	waitFor(t, repo.done, "result")
	rec.Finalize(h, 1, 1)
	waitFor(t, repo.done, "finalize")

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.results) != 2 {
		t.Errorf("results = %v, want 2 entries", repo.results)
	}
	if !repo.finalized {
		t.Error("session not finalized")
	}
}

func TestRecorderSkipsAfterFailedBegin(t *testing.T) {
	repo := newStubSessionRepo()
	repo.beginErr = errors.New("db down")
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	rec := NewRecorder(repo, log)

	h := rec.Begin("user_1", 7, 2)
	waitFor(t, repo.done, "begin")

	rec.RecordResult(h, 1, true, 100)
	rec.Finalize(h, 1, 0)

	// Give the goroutines a moment to (wrongly) write.
	time.Sleep(50 * time.Millisecond)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.results) != 0 || repo.finalized {
		t.Errorf("writes leaked through a failed begin: results=%v finalized=%v", repo.results, repo.finalized)
	}
}

func TestRecorderNilHandleIsNoop(t *testing.T) {
	rec := NewRecorder(newStubSessionRepo(), logrus.New())
	rec.RecordResult(nil, 1, true, 100)
	rec.Finalize(nil, 1, 0)
}

func TestRunDrivesRecorder(t *testing.T) {
	repo := newStubSessionRepo()
	rec := NewRecorder(repo, logrus.New())

	r, err := NewRun("run-1", 7, "user_1", []Card{{ID: 1}, {ID: 2}}, ModeAll, rec)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	waitFor(t, repo.done, "begin")

	r.MarkCorrect()
	waitFor(t, repo.done, "result")
	r.MarkIncorrect()
	waitFor(t, repo.done, "result")
	waitFor(t, repo.done, "finalize")

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if !repo.finalized {
		t.Error("completing a run must finalize the session")
	}
}

func TestWeakRunPersistsSubsetSize(t *testing.T) {
	repo := newStubSessionRepo()
	rec := NewRecorder(repo, logrus.New())

	deck := []Card{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	weak := []Card{deck[1], deck[3]}
	r, err := NewWeakRun("run-1", 7, "user_1", deck, weak, rec)
	if err != nil {
		t.Fatalf("NewWeakRun: %v", err)
	}
	waitFor(t, repo.done, "begin")

	if got := r.Snapshot().Total; got != 2 {
		t.Errorf("Total = %d, want 2", got)
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.begins != 1 {
		t.Fatalf("begins = %d, want 1", repo.begins)
	}
	if repo.beginTotals[0] != 2 {
		t.Errorf("persisted totalCards = %d, want the weak-subset size 2", repo.beginTotals[0])
	}
}
