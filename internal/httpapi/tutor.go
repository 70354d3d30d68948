package httpapi

import (
	"net/http"

	"github.com/samber/lo"

	"github.com/anshul/memodeck/internal/auth"
	"github.com/anshul/memodeck/internal/study"
	"github.com/anshul/memodeck/internal/tutor"
)

type deckTopicRequest struct {
	DeckID int `json:"deckId" validate:"required,gt=0"`
}

// requirePro gates AI operations on the caller's plan. The bool reports
// whether the handler may proceed.
func (s *Server) requirePro(w http.ResponseWriter, r *http.Request) bool {
	ent, ok := s.entitled(w, r)
	if !ok {
		return false
	}
	if !ent.AIGeneration {
		writeUpgradeRequired(w, "AI features require a Pro plan")
		return false
	}
	return true
}

func (s *Server) cardTutor(w http.ResponseWriter, r *http.Request) {
	kind := tutor.Kind(r.PathValue("kind"))
	switch kind {
	case tutor.KindHint, tutor.KindExplain, tutor.KindWhyWrong:
	default:
		writeValidationError(w, "unknown tutor kind")
		return
	}
	if !s.requirePro(w, r) {
		return
	}
	run := s.run(w, r)
	if run == nil {
		return
	}
	card, ok := run.CurrentCard()
	if !ok {
		writeValidationError(w, "run has no current card")
		return
	}

	s.dispatcher.RequestCardHelp(run.ID, kind, tutor.CardContext{
		ID:    card.ID,
		Front: card.Front,
		Back:  card.Back,
	})
	writeJSON(w, http.StatusAccepted, s.stateOf(run))
}

func (s *Server) weakAreaAnalysis(w http.ResponseWriter, r *http.Request) {
	if !s.requirePro(w, r) {
		return
	}
	run := s.run(w, r)
	if run == nil {
		return
	}
	missed := run.MissedCards()
	if len(missed) == 0 {
		writeValidationError(w, "no missed cards to analyze")
		return
	}
	deck, err := s.store.DeckRepo().Get(r.Context(), run.DeckID, auth.UserIDFrom(r.Context()))
	if err != nil {
		writeStoreError(w, err, "deck not found")
		return
	}

	s.dispatcher.RequestAnalysis(run.ID, deck.Name, run.Accuracy(), lo.Map(missed, func(c study.Card, _ int) tutor.MissedCard {
		return tutor.MissedCard{Front: c.Front, Back: c.Back}
	}))
	writeJSON(w, http.StatusAccepted, s.stateOf(run))
}

func (s *Server) topicOverview(w http.ResponseWriter, r *http.Request) {
	if !s.requirePro(w, r) {
		return
	}
	var req deckTopicRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeValidationError(w, err.Error())
		return
	}
	deck, err := s.store.DeckRepo().Get(r.Context(), req.DeckID, auth.UserIDFrom(r.Context()))
	if err != nil {
		writeStoreError(w, err, "deck not found")
		return
	}

	overview, err := s.tutor.Overview(r.Context(), deck.Name, deck.Description)
	if err != nil {
		s.log.WithError(err).WithField("deck", deck.ID).Warn("topic overview failed")
		writeError(w, http.StatusBadGateway, CodeInternal, "could not generate topic overview")
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (s *Server) planLearning(w http.ResponseWriter, r *http.Request) {
	if !s.requirePro(w, r) {
		return
	}
	var req deckTopicRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeValidationError(w, err.Error())
		return
	}
	deck, err := s.store.DeckRepo().Get(r.Context(), req.DeckID, auth.UserIDFrom(r.Context()))
	if err != nil {
		writeStoreError(w, err, "deck not found")
		return
	}

	plan, err := s.tutor.Plan(r.Context(), deck.Name, deck.Description)
	if err != nil {
		s.log.WithError(err).WithField("deck", deck.ID).Warn("learning plan failed")
		writeError(w, http.StatusBadGateway, CodeInternal, "could not generate a learning plan")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	ent, ok := s.entitled(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, struct {
		UserID         string `json:"userId"`
		Plan           string `json:"plan"`
		UnlimitedDecks bool   `json:"unlimitedDecks"`
		AIGeneration   bool   `json:"aiGeneration"`
	}{
		UserID:         auth.UserIDFrom(r.Context()),
		Plan:           ent.Plan,
		UnlimitedDecks: ent.UnlimitedDecks,
		AIGeneration:   ent.AIGeneration,
	})
}
