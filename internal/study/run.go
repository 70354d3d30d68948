// Package study holds the in-memory state machine for an active
// flashcard run, the registry that maps run ids to state, and the
// best-effort session recorder.
package study

import (
	"errors"
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// Mode selects which cards a run (or restart) covers.
type Mode string

const (
	// ModeAll studies the full deck in stored order.
	ModeAll Mode = "all"
	// ModeShuffle studies the full deck in random order.
	ModeShuffle Mode = "shuffle"
	// ModeMissed studies only the cards missed in the current run.
	ModeMissed Mode = "missed"
	// ModeWeak studies the cards answered incorrectly in the last
	// persisted session.
	ModeWeak Mode = "weak"
)

var (
	ErrRunComplete   = errors.New("run is complete")
	ErrAlreadyJudged = errors.New("card already judged")
	ErrNoMissedCards = errors.New("no missed cards to restart with")
	ErrEmptySequence = errors.New("run needs at least one card")
	ErrUnknownMode   = errors.New("unknown study mode")
	ErrRunNotFound   = errors.New("run not found")
)

// Card is the study-facing view of a flashcard.
type Card struct {
	ID    int    `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Run is the state of one study pass over a sequence of cards.
// All methods are safe for concurrent use.
type Run struct {
	ID     string
	DeckID int
	UserID string

	mu        sync.Mutex
	deck      []Card // full deck, kept for restarts
	sequence  []Card
	index     int
	flipped   bool
	correct   int
	incorrect int
	judged    []bool
	missed    []Card
	streak    int // consecutive incorrect answers
	complete  bool
	enteredAt time.Time

	recorder *Recorder
	handle   *Handle
}

// NewRun starts a run over deck using the given mode. The recorder may
// be nil, in which case nothing is persisted.
func NewRun(id string, deckID int, userID string, deck []Card, mode Mode, recorder *Recorder) (*Run, error) {
	seq, err := buildSequence(deck, nil, mode)
	if err != nil {
		return nil, err
	}
	return newRun(id, deckID, userID, deck, seq, recorder), nil
}

// NewWeakRun starts a run over a pre-selected weak subset of the deck.
func NewWeakRun(id string, deckID int, userID string, deck, weak []Card, recorder *Recorder) (*Run, error) {
	if len(weak) == 0 {
		return nil, ErrEmptySequence
	}
	return newRun(id, deckID, userID, deck, weak, recorder), nil
}

// newRun assembles the run and opens its persisted session sized to the
// sequence it will actually play.
func newRun(id string, deckID int, userID string, deck, seq []Card, recorder *Recorder) *Run {
	r := &Run{
		ID:        id,
		DeckID:    deckID,
		UserID:    userID,
		deck:      deck,
		sequence:  seq,
		judged:    make([]bool, len(seq)),
		enteredAt: time.Now(),
		recorder:  recorder,
	}
	if recorder != nil {
		r.handle = recorder.Begin(userID, deckID, len(seq))
	}
	return r
}

// Flip toggles the current card between front and back.
func (r *Run) Flip() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.complete {
		return
	}
	r.flipped = !r.flipped
}

// Advance moves to the next card. Clamped at the last card.
func (r *Run) Advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.complete || r.index >= len(r.sequence)-1 {
		return
	}
	r.index++
	r.flipped = false
	r.enteredAt = time.Now()
}

// Retreat moves to the previous card. Clamped at the first card.
func (r *Run) Retreat() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.complete || r.index == 0 {
		return
	}
	r.index--
	r.flipped = false
	r.enteredAt = time.Now()
}

// MarkCorrect judges the current card as known.
func (r *Run) MarkCorrect() error {
	return r.mark(true)
}

// MarkIncorrect judges the current card as missed.
func (r *Run) MarkIncorrect() error {
	return r.mark(false)
}

func (r *Run) mark(correct bool) error {
	r.mu.Lock()

	if r.complete {
		r.mu.Unlock()
		return ErrRunComplete
	}
	if r.judged[r.index] {
		r.mu.Unlock()
		return ErrAlreadyJudged
	}

	card := r.sequence[r.index]
	elapsed := time.Since(r.enteredAt)

	r.judged[r.index] = true
	if correct {
		r.correct++
		r.streak = 0
	} else {
		r.incorrect++
		r.streak++
		r.missed = append(r.missed, card)
	}

	finished := r.index == len(r.sequence)-1
	r.flipped = false
	if finished {
		r.complete = true
	} else {
		r.index++
		r.enteredAt = time.Now()
	}
	correctCount, incorrectCount := r.correct, r.incorrect
	recorder, handle := r.recorder, r.handle

	// State is settled before anything touches the network.
	r.mu.Unlock()

	if recorder != nil {
		recorder.RecordResult(handle, card.ID, correct, elapsed.Milliseconds())
		if finished {
			recorder.Finalize(handle, correctCount, incorrectCount)
		}
	}
	return nil
}

// Restart begins a fresh pass. ModeMissed uses the missed cards of the
// finishing run; ModeAll and ModeShuffle use the full deck.
func (r *Run) Restart(mode Mode) error {
	r.mu.Lock()

	seq, err := buildSequence(r.deck, r.missed, mode)
	if err != nil {
		r.mu.Unlock()
		return err
	}

	r.sequence = seq
	r.judged = make([]bool, len(seq))
	r.index = 0
	r.flipped = false
	r.correct = 0
	r.incorrect = 0
	r.missed = nil
	r.streak = 0
	r.complete = false
	r.enteredAt = time.Now()

	// Begin is non-blocking, so holding the lock is safe.
	if r.recorder != nil {
		r.handle = r.recorder.Begin(r.UserID, r.DeckID, len(seq))
	}
	r.mu.Unlock()
	return nil
}

func buildSequence(deck, missed []Card, mode Mode) ([]Card, error) {
	switch mode {
	case ModeAll, ModeWeak:
		if len(deck) == 0 {
			return nil, ErrEmptySequence
		}
		seq := make([]Card, len(deck))
		copy(seq, deck)
		return seq, nil
	case ModeShuffle:
		if len(deck) == 0 {
			return nil, ErrEmptySequence
		}
		seq := make([]Card, len(deck))
		copy(seq, deck)
		rand.Shuffle(len(seq), func(i, j int) {
			seq[i], seq[j] = seq[j], seq[i]
		})
		return seq, nil
	case ModeMissed:
		if len(missed) == 0 {
			return nil, ErrNoMissedCards
		}
		seq := make([]Card, len(missed))
		copy(seq, missed)
		return seq, nil
	default:
		return nil, ErrUnknownMode
	}
}

// Accuracy returns the percentage of judged cards answered correctly,
// rounded half-up. Zero when nothing has been judged.
func (r *Run) Accuracy() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return accuracy(r.correct, r.incorrect)
}

func accuracy(correct, incorrect int) int {
	total := correct + incorrect
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// Snapshot is a point-in-time copy of run state for rendering.
type Snapshot struct {
	ID          string `json:"id"`
	DeckID      int    `json:"deckId"`
	Index       int    `json:"index"`
	Total       int    `json:"total"`
	Flipped     bool   `json:"flipped"`
	Correct     int    `json:"correct"`
	Incorrect   int    `json:"incorrect"`
	Streak      int    `json:"streak"`
	Accuracy    int    `json:"accuracy"`
	Complete    bool   `json:"complete"`
	MissedCount int    `json:"missedCount"`
	Current     *Card  `json:"current,omitempty"`
}

// Snapshot returns a copy of the observable run state.
func (r *Run) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Snapshot{
		ID:          r.ID,
		DeckID:      r.DeckID,
		Index:       r.index,
		Total:       len(r.sequence),
		Flipped:     r.flipped,
		Correct:     r.correct,
		Incorrect:   r.incorrect,
		Streak:      r.streak,
		Accuracy:    accuracy(r.correct, r.incorrect),
		Complete:    r.complete,
		MissedCount: len(r.missed),
	}
	if !r.complete && r.index < len(r.sequence) {
		card := r.sequence[r.index]
		s.Current = &card
	}
	return s
}

// CurrentCard returns the card under study, or false when the run is
// complete.
func (r *Run) CurrentCard() (Card, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.complete || r.index >= len(r.sequence) {
		return Card{}, false
	}
	return r.sequence[r.index], true
}

// MissedCards returns a copy of the cards missed so far in this run.
func (r *Run) MissedCards() []Card {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Card, len(r.missed))
	copy(out, r.missed)
	return out
}

// Streak returns the current consecutive-incorrect count.
func (r *Run) Streak() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.streak
}
