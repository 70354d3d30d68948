package study

import (
	"testing"
)

func threeCards() []Card {
	return []Card{
		{ID: 1, Front: "f1", Back: "b1"},
		{ID: 2, Front: "f2", Back: "b2"},
		{ID: 3, Front: "f3", Back: "b3"},
	}
}

func newTestRun(t *testing.T, cards []Card, mode Mode) *Run {
	t.Helper()
	r, err := NewRun("run-1", 7, "user_1", cards, mode, nil)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	return r
}

func TestFlipToggles(t *testing.T) {
	r := newTestRun(t, threeCards(), ModeAll)

	if r.Snapshot().Flipped {
		t.Fatal("new run starts flipped")
	}
	r.Flip()
	if !r.Snapshot().Flipped {
		t.Error("first flip should show the back")
	}
	r.Flip()
	if r.Snapshot().Flipped {
		t.Error("second flip should show the front")
	}
}

func TestNavigationClampsAndResetsFlip(t *testing.T) {
	r := newTestRun(t, threeCards(), ModeAll)

	r.Retreat()
	if got := r.Snapshot().Index; got != 0 {
		t.Errorf("retreat at start: index = %d, want 0", got)
	}

	r.Flip()
	r.Advance()
	s := r.Snapshot()
	if s.Index != 1 {
		t.Errorf("index = %d, want 1", s.Index)
	}
	if s.Flipped {
		t.Error("advance should reset flip")
	}

	r.Advance()
	r.Advance() // clamped at last card
	if got := r.Snapshot().Index; got != 2 {
		t.Errorf("advance past end: index = %d, want 2", got)
	}

	r.Flip()
	r.Retreat()
	s = r.Snapshot()
	if s.Index != 1 {
		t.Errorf("index = %d, want 1", s.Index)
	}
	if s.Flipped {
		t.Error("retreat should reset flip")
	}
}

func TestMarkingFlow(t *testing.T) {
	r := newTestRun(t, threeCards(), ModeAll)

	if err := r.MarkCorrect(); err != nil {
		t.Fatalf("MarkCorrect: %v", err)
	}
	if err := r.MarkIncorrect(); err != nil {
		t.Fatalf("MarkIncorrect: %v", err)
	}
	if err := r.MarkCorrect(); err != nil {
		t.Fatalf("MarkCorrect: %v", err)
	}

	s := r.Snapshot()
	if !s.Complete {
		t.Error("run should be complete after judging every card")
	}
	if s.Correct != 2 || s.Incorrect != 1 {
		t.Errorf("counters = %d/%d, want 2/1", s.Correct, s.Incorrect)
	}
	if s.Accuracy != 67 {
		t.Errorf("accuracy = %d, want 67", s.Accuracy)
	}
	if s.MissedCount != 1 {
		t.Errorf("missed = %d, want 1", s.MissedCount)
	}

	if err := r.MarkCorrect(); err != ErrRunComplete {
		t.Errorf("mark after completion: err = %v, want ErrRunComplete", err)
	}
}

func TestFinalMarkResetsFlip(t *testing.T) {
	r := newTestRun(t, threeCards(), ModeAll)

	if err := r.MarkCorrect(); err != nil {
		t.Fatalf("MarkCorrect: %v", err)
	}
	if err := r.MarkCorrect(); err != nil {
		t.Fatalf("MarkCorrect: %v", err)
	}
	r.Flip()
	if err := r.MarkCorrect(); err != nil {
		t.Fatalf("MarkCorrect: %v", err)
	}

	s := r.Snapshot()
	if !s.Complete {
		t.Fatal("run should be complete")
	}
	if s.Flipped {
		t.Error("completing mark should reset flip")
	}
}

func TestMarkRefusedOnJudgedCard(t *testing.T) {
	r := newTestRun(t, threeCards(), ModeAll)

	if err := r.MarkCorrect(); err != nil {
		t.Fatalf("MarkCorrect: %v", err)
	}
	r.Retreat()
	if err := r.MarkIncorrect(); err != ErrAlreadyJudged {
		t.Errorf("re-judging: err = %v, want ErrAlreadyJudged", err)
	}
}

func TestStreakCountsConsecutiveMisses(t *testing.T) {
	cards := []Card{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	r := newTestRun(t, cards, ModeAll)

	r.MarkIncorrect()
	r.MarkIncorrect()
	if got := r.Streak(); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
	r.MarkCorrect()
	if got := r.Streak(); got != 0 {
		t.Errorf("streak after correct = %d, want 0", got)
	}
}

func TestRestartMissedUsesOnlyMissedCards(t *testing.T) {
	r := newTestRun(t, threeCards(), ModeAll)
	r.MarkCorrect()
	r.MarkIncorrect() // card 2
	r.MarkIncorrect() // card 3

	if err := r.Restart(ModeMissed); err != nil {
		t.Fatalf("Restart: %v", err)
	}

	s := r.Snapshot()
	if s.Total != 2 {
		t.Fatalf("total = %d, want 2", s.Total)
	}
	if s.Complete || s.Correct != 0 || s.Incorrect != 0 || s.Index != 0 {
		t.Errorf("restart did not reset state: %+v", s)
	}
	if s.Current == nil || s.Current.ID != 2 {
		t.Errorf("first missed card = %+v, want id 2", s.Current)
	}
}

func TestRestartMissedWithoutMisses(t *testing.T) {
	r := newTestRun(t, threeCards(), ModeAll)
	r.MarkCorrect()
	r.MarkCorrect()
	r.MarkCorrect()

	if err := r.Restart(ModeMissed); err != ErrNoMissedCards {
		t.Errorf("err = %v, want ErrNoMissedCards", err)
	}
	if !r.Snapshot().Complete {
		t.Error("failed restart must leave the finished run untouched")
	}
}

func TestRestartShuffleIsPermutation(t *testing.T) {
	cards := make([]Card, 20)
	for i := range cards {
		cards[i] = Card{ID: i + 1}
	}
	r := newTestRun(t, cards, ModeAll)
	for range cards {
		r.MarkCorrect()
	}

	if err := r.Restart(ModeShuffle); err != nil {
		t.Fatalf("Restart: %v", err)
	}

	seen := make(map[int]bool)
	for !r.Snapshot().Complete {
		c, ok := r.CurrentCard()
		if !ok {
			t.Fatal("no current card on incomplete run")
		}
		if seen[c.ID] {
			t.Fatalf("card %d seen twice", c.ID)
		}
		seen[c.ID] = true
		r.MarkCorrect()
	}
	if len(seen) != len(cards) {
		t.Errorf("saw %d cards, want %d", len(seen), len(cards))
	}
}

func TestEmptyDeckRejected(t *testing.T) {
	if _, err := NewRun("run-1", 7, "user_1", nil, ModeAll, nil); err != ErrEmptySequence {
		t.Errorf("err = %v, want ErrEmptySequence", err)
	}
}

func TestAccuracyRounding(t *testing.T) {
	tests := []struct {
		correct, incorrect, want int
	}{
		{0, 0, 0},
		{1, 0, 100},
		{0, 1, 0},
		{2, 1, 67},
		{1, 2, 33},
		{1, 1, 50},
		{5, 3, 63}, // 62.5 rounds up
	}
	for _, tt := range tests {
		if got := accuracy(tt.correct, tt.incorrect); got != tt.want {
			t.Errorf("accuracy(%d, %d) = %d, want %d", tt.correct, tt.incorrect, got, tt.want)
		}
	}
}

func TestRegistryOwnershipAndDeckCleanup(t *testing.T) {
	reg := NewRegistry()
	r := newTestRun(t, threeCards(), ModeAll)
	reg.Put(r)

	if _, err := reg.Get("run-1", "user_1"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := reg.Get("run-1", "intruder"); err != ErrRunNotFound {
		t.Errorf("foreign user: err = %v, want ErrRunNotFound", err)
	}
	if _, err := reg.Get("missing", "user_1"); err != ErrRunNotFound {
		t.Errorf("missing run: err = %v, want ErrRunNotFound", err)
	}

	removed := reg.DeleteByDeck(7)
	if len(removed) != 1 || removed[0] != "run-1" {
		t.Errorf("removed = %v", removed)
	}
	if reg.Len() != 0 {
		t.Error("DeleteByDeck left runs behind")
	}
}
