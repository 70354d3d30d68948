package httpapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/anshul/memodeck/internal/auth"
	"github.com/anshul/memodeck/internal/store"
	"github.com/anshul/memodeck/internal/study"
	"github.com/anshul/memodeck/internal/tutor"
)

type startRunRequest struct {
	Mode string `json:"mode" validate:"omitempty,oneof=all shuffle weak"`
}

type restartRequest struct {
	Mode string `json:"mode" validate:"omitempty,oneof=all shuffle missed"`
}

type runStateResponse struct {
	study.Snapshot
	TutorSlot    tutor.Slot            `json:"tutorSlot"`
	AnalysisSlot tutor.Slot            `json:"analysisSlot"`
	Analysis     *tutor.WeakAreaReport `json:"analysis,omitempty"`
}

func (s *Server) startRun(w http.ResponseWriter, r *http.Request) {
	var req startRunRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeValidationError(w, err.Error())
		return
	}
	if req.Mode == "" {
		req.Mode = string(study.ModeAll)
	}
	deck := s.ownedDeck(w, r)
	if deck == nil {
		return
	}
	userID := auth.UserIDFrom(r.Context())

	cards, err := s.store.CardRepo().ByDeck(r.Context(), deck.ID)
	if err != nil {
		writeInternal(w)
		return
	}
	deckCards := lo.Map(cards, func(c *store.Card, _ int) study.Card {
		return study.Card{ID: c.ID, Front: c.Front, Back: c.Back}
	})

	runID := uuid.NewString()
	var run *study.Run

	if study.Mode(req.Mode) == study.ModeWeak {
		weakIDs, err := s.store.SessionRepo().WeakCardIDs(r.Context(), deck.ID, userID)
		if err != nil {
			writeInternal(w)
			return
		}
		byID := lo.KeyBy(deckCards, func(c study.Card) int { return c.ID })
		weak := make([]study.Card, 0, len(weakIDs))
		for _, id := range weakIDs {
			if c, ok := byID[id]; ok {
				weak = append(weak, c)
			}
		}
		if len(weak) == 0 {
			writeValidationError(w, "no weak cards from the last session")
			return
		}
		run, err = study.NewWeakRun(runID, deck.ID, userID, deckCards, weak, s.recorder)
		if err != nil {
			writeRunError(w, err)
			return
		}
	} else {
		run, err = study.NewRun(runID, deck.ID, userID, deckCards, study.Mode(req.Mode), s.recorder)
		if err != nil {
			writeRunError(w, err)
			return
		}
	}

	s.runs.Put(run)
	writeJSON(w, http.StatusCreated, s.stateOf(run))
}

func (s *Server) stateOf(run *study.Run) runStateResponse {
	slot := s.dispatcher.CardSlot(run.ID)
	analysisSlot, report := s.dispatcher.AnalysisSlot(run.ID)
	return runStateResponse{
		Snapshot:     run.Snapshot(),
		TutorSlot:    slot,
		AnalysisSlot: analysisSlot,
		Analysis:     report,
	}
}

// run resolves the run from the path, enforcing ownership. A nil return
// means the response has been written.
func (s *Server) run(w http.ResponseWriter, r *http.Request) *study.Run {
	run, err := s.runs.Get(r.PathValue("runID"), auth.UserIDFrom(r.Context()))
	if err != nil {
		writeRunError(w, err)
		return nil
	}
	return run
}

func (s *Server) runState(w http.ResponseWriter, r *http.Request) {
	if run := s.run(w, r); run != nil {
		writeJSON(w, http.StatusOK, s.stateOf(run))
	}
}

func (s *Server) flip(w http.ResponseWriter, r *http.Request) {
	run := s.run(w, r)
	if run == nil {
		return
	}
	run.Flip()
	s.dispatcher.ClearCardSlot(run.ID)
	writeJSON(w, http.StatusOK, s.stateOf(run))
}

func (s *Server) advance(w http.ResponseWriter, r *http.Request) {
	run := s.run(w, r)
	if run == nil {
		return
	}
	run.Advance()
	s.dispatcher.ClearCardSlot(run.ID)
	writeJSON(w, http.StatusOK, s.stateOf(run))
}

func (s *Server) retreat(w http.ResponseWriter, r *http.Request) {
	run := s.run(w, r)
	if run == nil {
		return
	}
	run.Retreat()
	s.dispatcher.ClearCardSlot(run.ID)
	writeJSON(w, http.StatusOK, s.stateOf(run))
}

func (s *Server) markCorrect(w http.ResponseWriter, r *http.Request) {
	s.mark(w, r, true)
}

func (s *Server) markIncorrect(w http.ResponseWriter, r *http.Request) {
	s.mark(w, r, false)
}

func (s *Server) mark(w http.ResponseWriter, r *http.Request, correct bool) {
	run := s.run(w, r)
	if run == nil {
		return
	}

	var err error
	if correct {
		err = run.MarkCorrect()
	} else {
		err = run.MarkIncorrect()
	}
	if err != nil {
		writeRunError(w, err)
		return
	}
	s.dispatcher.ClearCardSlot(run.ID)
	writeJSON(w, http.StatusOK, s.stateOf(run))
}

func (s *Server) restartRun(w http.ResponseWriter, r *http.Request) {
	var req restartRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeValidationError(w, err.Error())
		return
	}
	if req.Mode == "" {
		req.Mode = string(study.ModeAll)
	}
	run := s.run(w, r)
	if run == nil {
		return
	}

	if err := run.Restart(study.Mode(req.Mode)); err != nil {
		writeRunError(w, err)
		return
	}
	s.dispatcher.DropRun(run.ID)
	writeJSON(w, http.StatusOK, s.stateOf(run))
}
