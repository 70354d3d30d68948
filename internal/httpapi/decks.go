package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/anshul/memodeck/internal/auth"
	"github.com/anshul/memodeck/internal/store"
)

type deckRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type deckResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type cardResponse struct {
	ID        int       `json:"id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func deckToResponse(d *store.Deck) deckResponse {
	return deckResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func cardToResponse(c *store.Card) cardResponse {
	return cardResponse{
		ID:        c.ID,
		Front:     c.Front,
		Back:      c.Back,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// pathInt reads a numeric path value; a second return of false means
// the response has been written.
func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.PathValue(name))
	if err != nil || v <= 0 {
		writeValidationError(w, "invalid "+name)
		return 0, false
	}
	return v, true
}

func (s *Server) createDeck(w http.ResponseWriter, r *http.Request) {
	var req deckRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeValidationError(w, err.Error())
		return
	}

	userID := auth.UserIDFrom(r.Context())
	ent, ok := s.entitled(w, r)
	if !ok {
		return
	}
	if !ent.UnlimitedDecks {
		count, err := s.store.DeckRepo().CountByOwner(r.Context(), userID)
		if err != nil {
			writeInternal(w)
			return
		}
		if count >= auth.FreeDeckLimit {
			writeUpgradeRequired(w, "free plan allows up to 3 decks")
			return
		}
	}

	deck, err := s.store.DeckRepo().Create(r.Context(), userID, req.Name, req.Description)
	if err != nil {
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusCreated, deckToResponse(deck))
}

func (s *Server) listDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := s.store.DeckRepo().ByOwner(r.Context(), auth.UserIDFrom(r.Context()))
	if err != nil {
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusOK, lo.Map(decks, func(d *store.Deck, _ int) deckResponse {
		return deckToResponse(d)
	}))
}

func (s *Server) getDeck(w http.ResponseWriter, r *http.Request) {
	deckID, ok := pathInt(w, r, "deckID")
	if !ok {
		return
	}

	deck, err := s.store.DeckRepo().Get(r.Context(), deckID, auth.UserIDFrom(r.Context()))
	if err != nil {
		writeStoreError(w, err, "deck not found")
		return
	}
	cards, err := s.store.CardRepo().ByDeck(r.Context(), deck.ID)
	if err != nil {
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		deckResponse
		Cards []cardResponse `json:"cards"`
	}{
		deckResponse: deckToResponse(deck),
		Cards: lo.Map(cards, func(c *store.Card, _ int) cardResponse {
			return cardToResponse(c)
		}),
	})
}

func (s *Server) updateDeck(w http.ResponseWriter, r *http.Request) {
	deckID, ok := pathInt(w, r, "deckID")
	if !ok {
		return
	}
	var req deckRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeValidationError(w, err.Error())
		return
	}

	deck, err := s.store.DeckRepo().Update(r.Context(), deckID, auth.UserIDFrom(r.Context()), req.Name, req.Description)
	if err != nil {
		writeStoreError(w, err, "deck not found")
		return
	}
	writeJSON(w, http.StatusOK, deckToResponse(deck))
}

func (s *Server) deleteDeck(w http.ResponseWriter, r *http.Request) {
	deckID, ok := pathInt(w, r, "deckID")
	if !ok {
		return
	}

	if err := s.store.DeckRepo().Delete(r.Context(), deckID, auth.UserIDFrom(r.Context())); err != nil {
		writeStoreError(w, err, "deck not found")
		return
	}

	// Live runs over a deleted deck are dropped with it.
	for _, runID := range s.runs.DeleteByDeck(deckID) {
		s.dispatcher.DropRun(runID)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deckStats(w http.ResponseWriter, r *http.Request) {
	deckID, ok := pathInt(w, r, "deckID")
	if !ok {
		return
	}
	userID := auth.UserIDFrom(r.Context())

	if _, err := s.store.DeckRepo().Get(r.Context(), deckID, userID); err != nil {
		writeStoreError(w, err, "deck not found")
		return
	}
	stats, err := s.store.SessionRepo().DeckStats(r.Context(), deckID, userID)
	if err != nil {
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		LastStudied  *time.Time `json:"lastStudied"`
		LastAccuracy *int       `json:"lastAccuracy"`
	}{stats.LastStudied, stats.LastAccuracy})
}
