package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/anshul/memodeck/internal/tutor"
)

func (e *testEnv) seededDeck(t *testing.T, userID string, numCards int) int {
	t.Helper()
	deckID := e.createDeck(t, userID, "Test Deck")
	for i := range numCards {
		e.addCard(t, userID, deckID, fmt.Sprintf("front %d", i), fmt.Sprintf("back %d", i))
	}
	return deckID
}

func (e *testEnv) startStudy(t *testing.T, userID string, deckID int, mode string) runStateResponse {
	t.Helper()
	w := e.do(t, "POST", fmt.Sprintf("/api/decks/%d/study", deckID), userID, startRunRequest{Mode: mode})
	wantStatus(t, w, http.StatusCreated)
	return decodeBody[runStateResponse](t, w)
}

func TestStudyFlow(t *testing.T) {
	e := newTestEnv(t)
	deckID := e.seededDeck(t, "user_1", 3)

	state := e.startStudy(t, "user_1", deckID, "all")
	if state.Total != 3 || state.Index != 0 || state.Flipped || state.Complete {
		t.Fatalf("initial state = %+v", state)
	}
	runID := state.ID

	w := e.do(t, "POST", "/api/study/"+runID+"/flip", "user_1", nil)
	wantStatus(t, w, http.StatusOK)
	if !decodeBody[runStateResponse](t, w).Flipped {
		t.Error("flip did not flip")
	}

	// Judge all three: correct, incorrect, correct.
	w = e.do(t, "POST", "/api/study/"+runID+"/correct", "user_1", nil)
	wantStatus(t, w, http.StatusOK)
	w = e.do(t, "POST", "/api/study/"+runID+"/incorrect", "user_1", nil)
	wantStatus(t, w, http.StatusOK)
	w = e.do(t, "POST", "/api/study/"+runID+"/correct", "user_1", nil)
	wantStatus(t, w, http.StatusOK)

	state = decodeBody[runStateResponse](t, w)
	if !state.Complete || state.Accuracy != 67 || state.MissedCount != 1 {
		t.Errorf("final state = %+v", state)
	}

	// Further judgments are refused.
	w = e.do(t, "POST", "/api/study/"+runID+"/correct", "user_1", nil)
	wantErrorCode(t, w, http.StatusBadRequest, CodeValidation)

	// Restart on the missed subset.
	w = e.do(t, "POST", "/api/study/"+runID+"/restart", "user_1", restartRequest{Mode: "missed"})
	wantStatus(t, w, http.StatusOK)
	state = decodeBody[runStateResponse](t, w)
	if state.Total != 1 || state.Complete {
		t.Errorf("restarted state = %+v", state)
	}

	// The session should be persisted in the background.
	deadline := time.Now().Add(2 * time.Second)
	for {
		w = e.do(t, "GET", fmt.Sprintf("/api/decks/%d/stats", deckID), "user_1", nil)
		wantStatus(t, w, http.StatusOK)
		var stats struct {
			LastStudied  *time.Time `json:"lastStudied"`
			LastAccuracy *int       `json:"lastAccuracy"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
			t.Fatalf("decode stats: %v", err)
		}
		if stats.LastAccuracy != nil {
			if *stats.LastAccuracy != 67 {
				t.Errorf("lastAccuracy = %d, want 67", *stats.LastAccuracy)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("session never persisted")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestStudyRunOwnership(t *testing.T) {
	e := newTestEnv(t)
	deckID := e.seededDeck(t, "user_1", 2)
	state := e.startStudy(t, "user_1", deckID, "all")

	w := e.do(t, "GET", "/api/study/"+state.ID, "user_2", nil)
	wantErrorCode(t, w, http.StatusNotFound, CodeNotFound)
}

func TestStudyEmptyDeck(t *testing.T) {
	e := newTestEnv(t)
	deckID := e.createDeck(t, "user_1", "Empty")

	w := e.do(t, "POST", fmt.Sprintf("/api/decks/%d/study", deckID), "user_1", startRunRequest{Mode: "all"})
	wantErrorCode(t, w, http.StatusBadRequest, CodeValidation)
}

func TestStudyWeakMode(t *testing.T) {
	e := newTestEnv(t)
	deckID := e.seededDeck(t, "user_1", 3)

	// Never studied: no weak cards yet.
	w := e.do(t, "POST", fmt.Sprintf("/api/decks/%d/study", deckID), "user_1", startRunRequest{Mode: "weak"})
	wantErrorCode(t, w, http.StatusBadRequest, CodeValidation)

	// Study once, missing exactly one card.
	state := e.startStudy(t, "user_1", deckID, "all")
	e.do(t, "POST", "/api/study/"+state.ID+"/incorrect", "user_1", nil)
	e.do(t, "POST", "/api/study/"+state.ID+"/correct", "user_1", nil)
	e.do(t, "POST", "/api/study/"+state.ID+"/correct", "user_1", nil)

	// Wait for persistence, then the weak run covers the missed card.
	deadline := time.Now().Add(2 * time.Second)
	for {
		w = e.do(t, "POST", fmt.Sprintf("/api/decks/%d/study", deckID), "user_1", startRunRequest{Mode: "weak"})
		if w.Code == http.StatusCreated {
			weak := decodeBody[runStateResponse](t, w)
			if weak.Total != 1 {
				t.Errorf("weak run total = %d, want 1", weak.Total)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("weak run never became available: %s", w.Body.String())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestDeckDeleteDropsRuns(t *testing.T) {
	e := newTestEnv(t)
	deckID := e.seededDeck(t, "user_1", 2)
	state := e.startStudy(t, "user_1", deckID, "all")

	w := e.do(t, "DELETE", fmt.Sprintf("/api/decks/%d", deckID), "user_1", nil)
	wantStatus(t, w, http.StatusNoContent)

	w = e.do(t, "GET", "/api/study/"+state.ID, "user_1", nil)
	wantErrorCode(t, w, http.StatusNotFound, CodeNotFound)
}

func TestTutorRequiresPro(t *testing.T) {
	e := newTestEnv(t)
	e.seedUser(t, "free_joe", false)
	deckID := e.seededDeck(t, "free_joe", 2)
	state := e.startStudy(t, "free_joe", deckID, "all")

	w := e.do(t, "POST", "/api/study/"+state.ID+"/tutor/hint", "free_joe", nil)
	wantErrorCode(t, w, http.StatusForbidden, CodeUpgradeRequired)

	w = e.do(t, "POST", "/api/study/"+state.ID+"/analysis", "free_joe", nil)
	wantErrorCode(t, w, http.StatusForbidden, CodeUpgradeRequired)

	w = e.do(t, "POST", "/api/tutor/topic-overview", "free_joe", deckTopicRequest{DeckID: deckID})
	wantErrorCode(t, w, http.StatusForbidden, CodeUpgradeRequired)

	w = e.do(t, "POST", "/api/tutor/plan", "free_joe", deckTopicRequest{DeckID: deckID})
	wantErrorCode(t, w, http.StatusForbidden, CodeUpgradeRequired)

	w = e.do(t, "POST", fmt.Sprintf("/api/decks/%d/generate", deckID), "free_joe", nil)
	wantErrorCode(t, w, http.StatusForbidden, CodeUpgradeRequired)

	if n := e.mock.CallCount(); n != 0 {
		t.Errorf("entitlement gate leaked %d LLM calls", n)
	}
}

func TestTutorHintSlot(t *testing.T) {
	e := newTestEnv(t)
	e.seedUser(t, "pro_pat", true)
	deckID := e.seededDeck(t, "pro_pat", 2)
	state := e.startStudy(t, "pro_pat", deckID, "all")

	e.mock.AddResponse(json.RawMessage(`{"hint":"Look at the number in the front."}`))

	w := e.do(t, "POST", "/api/study/"+state.ID+"/tutor/hint", "pro_pat", nil)
	wantStatus(t, w, http.StatusAccepted)
	accepted := decodeBody[runStateResponse](t, w)
	if accepted.TutorSlot.State != tutor.SlotLoading {
		t.Errorf("slot after dispatch = %+v", accepted.TutorSlot)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		w = e.do(t, "GET", "/api/study/"+state.ID, "pro_pat", nil)
		got := decodeBody[runStateResponse](t, w)
		if got.TutorSlot.State == tutor.SlotResolved {
			if got.TutorSlot.Text != "Look at the number in the front." {
				t.Errorf("slot text = %q", got.TutorSlot.Text)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("slot never resolved: %+v", got.TutorSlot)
		}
		time.Sleep(5 * time.Millisecond)
	}

	// Moving on clears the card slot.
	w = e.do(t, "POST", "/api/study/"+state.ID+"/advance", "pro_pat", nil)
	if got := decodeBody[runStateResponse](t, w); got.TutorSlot.State != tutor.SlotIdle {
		t.Errorf("slot after advance = %+v", got.TutorSlot)
	}
}

func TestFlipClearsTutorSlot(t *testing.T) {
	e := newTestEnv(t)
	e.seedUser(t, "pro_pat", true)
	deckID := e.seededDeck(t, "pro_pat", 2)
	state := e.startStudy(t, "pro_pat", deckID, "all")

	e.mock.AddResponse(json.RawMessage(`{"hint":"h"}`))
	w := e.do(t, "POST", "/api/study/"+state.ID+"/tutor/hint", "pro_pat", nil)
	wantStatus(t, w, http.StatusAccepted)

	deadline := time.Now().Add(2 * time.Second)
	for {
		w = e.do(t, "GET", "/api/study/"+state.ID, "pro_pat", nil)
		if decodeBody[runStateResponse](t, w).TutorSlot.State == tutor.SlotResolved {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("slot never resolved")
		}
		time.Sleep(5 * time.Millisecond)
	}

	w = e.do(t, "POST", "/api/study/"+state.ID+"/flip", "pro_pat", nil)
	if got := decodeBody[runStateResponse](t, w); got.TutorSlot.State != tutor.SlotIdle {
		t.Errorf("slot after flip = %+v", got.TutorSlot)
	}
}

func TestTutorUnknownKind(t *testing.T) {
	e := newTestEnv(t)
	e.seedUser(t, "pro_pat", true)
	deckID := e.seededDeck(t, "pro_pat", 1)
	state := e.startStudy(t, "pro_pat", deckID, "all")

	w := e.do(t, "POST", "/api/study/"+state.ID+"/tutor/cheat", "pro_pat", nil)
	wantErrorCode(t, w, http.StatusBadRequest, CodeValidation)
}

func TestTopicOverview(t *testing.T) {
	e := newTestEnv(t)
	e.seedUser(t, "pro_pat", true)
	deckID := e.seededDeck(t, "pro_pat", 1)

	e.mock.AddResponse(json.RawMessage(`{"summary":"s","keyConcepts":["k"],"connections":"c"}`))
	w := e.do(t, "POST", "/api/tutor/topic-overview", "pro_pat", deckTopicRequest{DeckID: deckID})
	wantStatus(t, w, http.StatusOK)
	if ov := decodeBody[tutor.TopicOverview](t, w); ov.Summary != "s" {
		t.Errorf("overview = %+v", ov)
	}

	// Foreign deck id stays hidden even from another pro user.
	e.seedUser(t, "pro_sam", true)
	w = e.do(t, "POST", "/api/tutor/topic-overview", "pro_sam", deckTopicRequest{DeckID: deckID})
	wantErrorCode(t, w, http.StatusNotFound, CodeNotFound)
}

func TestGenerateCards(t *testing.T) {
	e := newTestEnv(t)
	e.seedUser(t, "pro_pat", true)
	deckID := e.createDeck(t, "pro_pat", "Go")

	e.mock.AddResponse(json.RawMessage(`{"cards":[
		{"front":"q1","back":"a1"},
		{"front":"q2","back":"a2"}
	]}`))
	w := e.do(t, "POST", fmt.Sprintf("/api/decks/%d/generate", deckID), "pro_pat", nil)
	wantStatus(t, w, http.StatusCreated)
	if cards := decodeBody[[]cardResponse](t, w); len(cards) != 2 {
		t.Errorf("generated cards = %+v", cards)
	}

	// Cards were persisted into the deck.
	w = e.do(t, "GET", fmt.Sprintf("/api/decks/%d", deckID), "pro_pat", nil)
	var deck struct {
		Cards []cardResponse `json:"cards"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &deck); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(deck.Cards) != 2 {
		t.Errorf("persisted cards = %+v", deck.Cards)
	}
}
