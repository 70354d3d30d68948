package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when an entity does not exist or is not visible
// to the requesting owner. Ownership misses are deliberately indistinguishable
// from missing rows.
var ErrNotFound = errors.New("not found")

// User is the locally cached identity/billing record.
type User struct {
	ID             string
	Email          string
	Plan           string
	UnlimitedDecks bool
	AIGeneration   bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Deck is a named collection of cards owned by one user.
type Deck struct {
	ID          int
	OwnerID     string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Card is a front/back pair within a deck.
type Card struct {
	ID        int
	DeckID    int
	Front     string
	Back      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StudySession is one persisted study run.
type StudySession struct {
	ID             int
	UserID         string
	DeckID         int
	TotalCards     int
	CorrectCount   int
	IncorrectCount int
	StartedAt      time.Time
	CompletedAt    *time.Time
}

// CardResult is one judged card within a session.
type CardResult struct {
	ID          int
	SessionID   int
	CardID      int
	IsCorrect   bool
	TimeSpentMs int
	AnsweredAt  time.Time
}

// DeckStats summarizes the most recent session for a deck.
// LastAccuracy is nil when the deck was never studied or the latest
// session has no answers.
type DeckStats struct {
	LastStudied  *time.Time
	LastAccuracy *int
}

// UserRepo manages the webhook-maintained user records.
type UserRepo interface {
	// Get returns the user or ErrNotFound.
	Get(ctx context.Context, id string) (*User, error)

	// Upsert creates or updates the record keyed by id. Idempotent.
	Upsert(ctx context.Context, u User) error
}

// DeckRepo manages decks, always scoped by owner.
type DeckRepo interface {
	Create(ctx context.Context, ownerID, name, description string) (*Deck, error)
	ByOwner(ctx context.Context, ownerID string) ([]*Deck, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)

	// Get returns the deck only if it belongs to ownerID; ErrNotFound otherwise.
	Get(ctx context.Context, id int, ownerID string) (*Deck, error)
	Update(ctx context.Context, id int, ownerID, name, description string) (*Deck, error)

	// Delete removes the deck; cards, sessions, and results go with it.
	Delete(ctx context.Context, id int, ownerID string) error
}

// CardRepo manages cards. Ownership is enforced at the deck level by
// callers resolving the deck first.
type CardRepo interface {
	Create(ctx context.Context, deckID int, front, back string) (*Card, error)
	CreateBatch(ctx context.Context, deckID int, pairs []CardContent) ([]*Card, error)

	// ByDeck lists cards ordered by recency (updated_at descending).
	ByDeck(ctx context.Context, deckID int) ([]*Card, error)
	Get(ctx context.Context, id, deckID int) (*Card, error)
	Update(ctx context.Context, id, deckID int, front, back string) (*Card, error)
	Delete(ctx context.Context, id, deckID int) error
}

// CardContent is an unsaved front/back pair, as produced by AI generation.
type CardContent struct {
	Front string
	Back  string
}

// SessionRepo persists study runs and their per-card results.
type SessionRepo interface {
	Begin(ctx context.Context, userID string, deckID, totalCards int) (*StudySession, error)
	RecordResult(ctx context.Context, sessionID, cardID int, isCorrect bool, timeSpentMs int) error
	Finalize(ctx context.Context, sessionID int, userID string, correct, incorrect int) error

	// LatestByDeck returns the most recent session for the deck+user,
	// or ErrNotFound when the deck was never studied.
	LatestByDeck(ctx context.Context, deckID int, userID string) (*StudySession, error)

	// WeakCardIDs returns the card ids marked incorrect in the latest
	// session for the deck+user. Empty when never studied.
	WeakCardIDs(ctx context.Context, deckID int, userID string) ([]int, error)

	DeckStats(ctx context.Context, deckID int, userID string) (*DeckStats, error)
}

// QueryOpts configures LLM event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a persisted LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMEventRepo provides append and query access to LLM request events.
type LLMEventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}
