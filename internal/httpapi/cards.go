package httpapi

import (
	"net/http"

	"github.com/samber/lo"

	"github.com/anshul/memodeck/internal/auth"
	"github.com/anshul/memodeck/internal/store"
)

type cardRequest struct {
	Front string `json:"front" validate:"required,min=1"`
	Back  string `json:"back" validate:"required,min=1"`
}

// ownedDeck resolves the deck from the path, enforcing ownership.
// A nil return means the response has been written.
func (s *Server) ownedDeck(w http.ResponseWriter, r *http.Request) *store.Deck {
	deckID, ok := pathInt(w, r, "deckID")
	if !ok {
		return nil
	}
	deck, err := s.store.DeckRepo().Get(r.Context(), deckID, auth.UserIDFrom(r.Context()))
	if err != nil {
		writeStoreError(w, err, "deck not found")
		return nil
	}
	return deck
}

func (s *Server) createCard(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeValidationError(w, err.Error())
		return
	}
	deck := s.ownedDeck(w, r)
	if deck == nil {
		return
	}

	card, err := s.store.CardRepo().Create(r.Context(), deck.ID, req.Front, req.Back)
	if err != nil {
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusCreated, cardToResponse(card))
}

func (s *Server) updateCard(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeValidationError(w, err.Error())
		return
	}
	deck := s.ownedDeck(w, r)
	if deck == nil {
		return
	}
	cardID, ok := pathInt(w, r, "cardID")
	if !ok {
		return
	}

	card, err := s.store.CardRepo().Update(r.Context(), cardID, deck.ID, req.Front, req.Back)
	if err != nil {
		writeStoreError(w, err, "card not found")
		return
	}
	writeJSON(w, http.StatusOK, cardToResponse(card))
}

func (s *Server) deleteCard(w http.ResponseWriter, r *http.Request) {
	deck := s.ownedDeck(w, r)
	if deck == nil {
		return
	}
	cardID, ok := pathInt(w, r, "cardID")
	if !ok {
		return
	}

	if err := s.store.CardRepo().Delete(r.Context(), cardID, deck.ID); err != nil {
		writeStoreError(w, err, "card not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) generateCards(w http.ResponseWriter, r *http.Request) {
	ent, ok := s.entitled(w, r)
	if !ok {
		return
	}
	if !ent.AIGeneration {
		writeUpgradeRequired(w, "AI features require a Pro plan")
		return
	}
	deck := s.ownedDeck(w, r)
	if deck == nil {
		return
	}

	pairs, err := s.generator.GenerateForDeck(r.Context(), deck.Name, deck.Description)
	if err != nil {
		s.log.WithError(err).WithField("deck", deck.ID).Error("card generation failed")
		writeError(w, http.StatusBadGateway, CodeInternal, "card generation failed")
		return
	}

	cards, err := s.store.CardRepo().CreateBatch(r.Context(), deck.ID, pairs)
	if err != nil {
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusCreated, lo.Map(cards, func(c *store.Card, _ int) cardResponse {
		return cardToResponse(c)
	}))
}
