package httpapi

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/anshul/memodeck/internal/auth"
	"github.com/anshul/memodeck/internal/cardgen"
	"github.com/anshul/memodeck/internal/llm"
	"github.com/anshul/memodeck/internal/store"
	"github.com/anshul/memodeck/internal/tutor"
)

const testWebhookSecret = "whsec_dGVzdC1zaWduaW5nLXNlY3JldA==" // "test-signing-secret"

type testEnv struct {
	server  *Server
	handler http.Handler
	store   *store.Store
	mock    *llm.MockProvider
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	mock := llm.NewMockProvider()
	client := tutor.NewClient(mock)

	srv := NewServer(Options{
		Store:         st,
		Tutor:         client,
		Dispatcher:    tutor.NewDispatcher(client, log),
		Generator:     cardgen.NewGenerator(mock),
		WebhookSecret: testWebhookSecret,
		Log:           log,
	})
	return &testEnv{server: srv, handler: srv.Handler(), store: st, mock: mock}
}

// seedUser inserts a user record as the billing webhook would.
func (e *testEnv) seedUser(t *testing.T, id string, pro bool) {
	t.Helper()
	u := store.User{ID: id, Plan: auth.PlanFree}
	if pro {
		u.Plan = auth.PlanPro
		u.UnlimitedDecks = true
		u.AIGeneration = true
	}
	if err := e.store.UserRepo().Upsert(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func (e *testEnv) do(t *testing.T, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}

func wantErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	wantStatus(t, w, status)
	resp := decodeBody[ErrorResponse](t, w)
	if resp.Code != code {
		t.Errorf("error code = %q, want %q", resp.Code, code)
	}
}

// createDeck is a test shortcut through the API.
func (e *testEnv) createDeck(t *testing.T, userID, name string) int {
	t.Helper()
	w := e.do(t, "POST", "/api/decks", userID, deckRequest{Name: name})
	wantStatus(t, w, http.StatusCreated)
	return decodeBody[deckResponse](t, w).ID
}

func (e *testEnv) addCard(t *testing.T, userID string, deckID int, front, back string) int {
	t.Helper()
	w := e.do(t, "POST", fmt.Sprintf("/api/decks/%d/cards", deckID), userID, cardRequest{Front: front, Back: back})
	wantStatus(t, w, http.StatusCreated)
	return decodeBody[cardResponse](t, w).ID
}

func TestMissingIdentityHeader(t *testing.T) {
	e := newTestEnv(t)
	w := e.do(t, "GET", "/api/decks", "", nil)
	wantErrorCode(t, w, http.StatusUnauthorized, CodeUnauthorized)
}

func TestDeckLifecycle(t *testing.T) {
	e := newTestEnv(t)

	deckID := e.createDeck(t, "user_1", "Networking")

	w := e.do(t, "GET", "/api/decks", "user_1", nil)
	wantStatus(t, w, http.StatusOK)
	if decks := decodeBody[[]deckResponse](t, w); len(decks) != 1 || decks[0].Name != "Networking" {
		t.Errorf("decks = %+v", decks)
	}

	w = e.do(t, "PUT", fmt.Sprintf("/api/decks/%d", deckID), "user_1",
		deckRequest{Name: "Networking 101", Description: "OSI and friends"})
	wantStatus(t, w, http.StatusOK)
	if d := decodeBody[deckResponse](t, w); d.Name != "Networking 101" || d.Description != "OSI and friends" {
		t.Errorf("updated deck = %+v", d)
	}

	w = e.do(t, "DELETE", fmt.Sprintf("/api/decks/%d", deckID), "user_1", nil)
	wantStatus(t, w, http.StatusNoContent)

	w = e.do(t, "GET", fmt.Sprintf("/api/decks/%d", deckID), "user_1", nil)
	wantErrorCode(t, w, http.StatusNotFound, CodeNotFound)
}

func TestDeckValidation(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, "POST", "/api/decks", "user_1", deckRequest{Name: ""})
	wantErrorCode(t, w, http.StatusBadRequest, CodeValidation)

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}
	w = e.do(t, "POST", "/api/decks", "user_1", deckRequest{Name: string(long)})
	wantErrorCode(t, w, http.StatusBadRequest, CodeValidation)
}

func TestDeckOwnershipHidden(t *testing.T) {
	e := newTestEnv(t)
	deckID := e.createDeck(t, "user_1", "Mine")

	// Another user sees a plain not-found, never a permission hint.
	w := e.do(t, "GET", fmt.Sprintf("/api/decks/%d", deckID), "user_2", nil)
	wantErrorCode(t, w, http.StatusNotFound, CodeNotFound)
	w = e.do(t, "DELETE", fmt.Sprintf("/api/decks/%d", deckID), "user_2", nil)
	wantErrorCode(t, w, http.StatusNotFound, CodeNotFound)
}

func TestFreeDeckLimit(t *testing.T) {
	e := newTestEnv(t)
	e.seedUser(t, "free_joe", false)

	for i := range 3 {
		e.createDeck(t, "free_joe", fmt.Sprintf("Deck %d", i))
	}
	w := e.do(t, "POST", "/api/decks", "free_joe", deckRequest{Name: "One too many"})
	wantErrorCode(t, w, http.StatusForbidden, CodeUpgradeRequired)

	// Unknown users default to the free plan too.
	e2 := newTestEnv(t)
	for i := range 3 {
		e2.createDeck(t, "stranger", fmt.Sprintf("Deck %d", i))
	}
	w = e2.do(t, "POST", "/api/decks", "stranger", deckRequest{Name: "Fourth"})
	wantErrorCode(t, w, http.StatusForbidden, CodeUpgradeRequired)

	// Pro users are not limited.
	e.seedUser(t, "pro_pat", true)
	for i := range 5 {
		e.createDeck(t, "pro_pat", fmt.Sprintf("Deck %d", i))
	}
}

func TestCardLifecycle(t *testing.T) {
	e := newTestEnv(t)
	deckID := e.createDeck(t, "user_1", "Go")
	cardID := e.addCard(t, "user_1", deckID, "What is a goroutine?", "A lightweight thread managed by the runtime.")

	w := e.do(t, "PUT", fmt.Sprintf("/api/decks/%d/cards/%d", deckID, cardID), "user_1",
		cardRequest{Front: "Goroutine?", Back: "Lightweight runtime thread."})
	wantStatus(t, w, http.StatusOK)

	// Card endpoints respect deck ownership.
	w = e.do(t, "PUT", fmt.Sprintf("/api/decks/%d/cards/%d", deckID, cardID), "user_2",
		cardRequest{Front: "x", Back: "y"})
	wantErrorCode(t, w, http.StatusNotFound, CodeNotFound)

	// Blank sides are rejected before any write.
	w = e.do(t, "POST", fmt.Sprintf("/api/decks/%d/cards", deckID), "user_1", cardRequest{Front: "", Back: "y"})
	wantErrorCode(t, w, http.StatusBadRequest, CodeValidation)

	w = e.do(t, "DELETE", fmt.Sprintf("/api/decks/%d/cards/%d", deckID, cardID), "user_1", nil)
	wantStatus(t, w, http.StatusNoContent)

	w = e.do(t, "GET", fmt.Sprintf("/api/decks/%d", deckID), "user_1", nil)
	wantStatus(t, w, http.StatusOK)
	var deck struct {
		Cards []cardResponse `json:"cards"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &deck); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(deck.Cards) != 0 {
		t.Errorf("cards after delete = %+v", deck.Cards)
	}
}

func TestMe(t *testing.T) {
	e := newTestEnv(t)
	e.seedUser(t, "pro_pat", true)

	w := e.do(t, "GET", "/api/me", "pro_pat", nil)
	wantStatus(t, w, http.StatusOK)
	me := decodeBody[map[string]any](t, w)
	if me["plan"] != auth.PlanPro || me["aiGeneration"] != true {
		t.Errorf("me = %v", me)
	}

	w = e.do(t, "GET", "/api/me", "nobody", nil)
	wantStatus(t, w, http.StatusOK)
	me = decodeBody[map[string]any](t, w)
	if me["plan"] != auth.PlanFree || me["aiGeneration"] != false {
		t.Errorf("unknown user me = %v", me)
	}
}

// signWebhook produces valid svix-style headers for body.
func signWebhook(t *testing.T, body []byte) http.Header {
	t.Helper()
	key, err := base64.StdEncoding.DecodeString("dGVzdC1zaWduaW5nLXNlY3JldA==")
	if err != nil {
		t.Fatal(err)
	}
	id := "msg_test_1"
	ts := fmt.Sprintf("%d", time.Now().Unix())

	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%s.%s", id, ts, body)
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	h := http.Header{}
	h.Set("svix-id", id)
	h.Set("svix-timestamp", ts)
	h.Set("svix-signature", "v1,"+sig)
	return h
}

func (e *testEnv) postWebhook(t *testing.T, body []byte, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/webhooks/billing", bytes.NewReader(body))
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func TestWebhookUserCreated(t *testing.T) {
	e := newTestEnv(t)
	body := []byte(`{
		"type": "user.created",
		"data": {
			"id": "user_9",
			"email_addresses": [{"email_address": "u9@example.com"}],
			"public_metadata": {"plan": "pro", "features": []}
		}
	}`)

	w := e.postWebhook(t, body, signWebhook(t, body))
	wantStatus(t, w, http.StatusOK)

	u, err := e.store.UserRepo().Get(context.Background(), "user_9")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u.Plan != "pro" || !u.UnlimitedDecks || !u.AIGeneration || u.Email != "u9@example.com" {
		t.Errorf("user = %+v", u)
	}
}

func TestWebhookSubscriptionFlow(t *testing.T) {
	e := newTestEnv(t)

	created := []byte(`{
		"type": "subscription.created",
		"data": {
			"user_id": "user_3",
			"plan": {"id": "pro", "name": "pro"},
			"features": [{"id": "unlimited_decks"}, {"id": "ai_flashcard_generation"}]
		}
	}`)
	w := e.postWebhook(t, created, signWebhook(t, created))
	wantStatus(t, w, http.StatusOK)

	u, err := e.store.UserRepo().Get(context.Background(), "user_3")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if !u.AIGeneration || !u.UnlimitedDecks {
		t.Errorf("subscribed user = %+v", u)
	}

	deleted := []byte(`{"type": "subscription.deleted", "data": {"user_id": "user_3"}}`)
	w = e.postWebhook(t, deleted, signWebhook(t, deleted))
	wantStatus(t, w, http.StatusOK)

	u, err = e.store.UserRepo().Get(context.Background(), "user_3")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u.Plan != auth.PlanFree || u.AIGeneration || u.UnlimitedDecks {
		t.Errorf("user after cancel = %+v", u)
	}
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	e := newTestEnv(t)
	body := []byte(`{"type": "user.created", "data": {"id": "user_9"}}`)

	h := signWebhook(t, body)
	h.Set("svix-signature", "v1,AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=")
	w := e.postWebhook(t, body, h)
	wantStatus(t, w, http.StatusBadRequest)

	// Tampered body fails too.
	h = signWebhook(t, body)
	w = e.postWebhook(t, []byte(`{"type": "user.created", "data": {"id": "user_666"}}`), h)
	wantStatus(t, w, http.StatusBadRequest)

	if _, err := e.store.UserRepo().Get(context.Background(), "user_9"); err == nil {
		t.Error("rejected webhook must not write")
	}
}

func TestWebhookIgnoresUnknownKind(t *testing.T) {
	e := newTestEnv(t)
	body := []byte(`{"type": "organization.created", "data": {"id": "org_1"}}`)
	w := e.postWebhook(t, body, signWebhook(t, body))
	wantStatus(t, w, http.StatusOK)
}

func TestWebhookRejectsStaleTimestamp(t *testing.T) {
	e := newTestEnv(t)
	body := []byte(`{"type": "user.created", "data": {"id": "user_9"}}`)
	h := signWebhook(t, body)
	h.Set("svix-timestamp", fmt.Sprintf("%d", time.Now().Add(-time.Hour).Unix()))
	w := e.postWebhook(t, body, h)
	wantStatus(t, w, http.StatusBadRequest)
}
