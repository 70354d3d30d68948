// Package httpapi exposes the flashcard service over HTTP JSON.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/anshul/memodeck/internal/auth"
	"github.com/anshul/memodeck/internal/cardgen"
	"github.com/anshul/memodeck/internal/store"
	"github.com/anshul/memodeck/internal/study"
	"github.com/anshul/memodeck/internal/tutor"
)

// Server holds the wired application and its HTTP handlers.
type Server struct {
	store      *store.Store
	runs       *study.Registry
	recorder   *study.Recorder
	dispatcher *tutor.Dispatcher
	tutor      *tutor.Client
	generator  *cardgen.Generator
	resolver   *auth.Resolver

	userHeader    string
	webhookSecret string

	validate *validator.Validate
	log      logrus.FieldLogger
}

// Options configures a Server.
type Options struct {
	Store         *store.Store
	Tutor         *tutor.Client
	Dispatcher    *tutor.Dispatcher
	Generator     *cardgen.Generator
	UserHeader    string
	WebhookSecret string
	Log           logrus.FieldLogger
}

// NewServer wires the handlers. Log may be nil; UserHeader defaults to
// X-User-ID.
func NewServer(opts Options) *Server {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	header := opts.UserHeader
	if header == "" {
		header = "X-User-ID"
	}
	return &Server{
		store:         opts.Store,
		runs:          study.NewRegistry(),
		recorder:      study.NewRecorder(opts.Store.SessionRepo(), log),
		dispatcher:    opts.Dispatcher,
		tutor:         opts.Tutor,
		generator:     opts.Generator,
		resolver:      auth.NewResolver(opts.Store.UserRepo()),
		userHeader:    header,
		webhookSecret: opts.WebhookSecret,
		validate:      validator.New(),
		log:           log,
	}
}

// Handler builds the full route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Decks
	mux.HandleFunc("POST /api/decks", s.withUser(s.createDeck))
	mux.HandleFunc("GET /api/decks", s.withUser(s.listDecks))
	mux.HandleFunc("GET /api/decks/{deckID}", s.withUser(s.getDeck))
	mux.HandleFunc("PUT /api/decks/{deckID}", s.withUser(s.updateDeck))
	mux.HandleFunc("DELETE /api/decks/{deckID}", s.withUser(s.deleteDeck))
	mux.HandleFunc("GET /api/decks/{deckID}/stats", s.withUser(s.deckStats))

	// Cards
	mux.HandleFunc("POST /api/decks/{deckID}/cards", s.withUser(s.createCard))
	mux.HandleFunc("PUT /api/decks/{deckID}/cards/{cardID}", s.withUser(s.updateCard))
	mux.HandleFunc("DELETE /api/decks/{deckID}/cards/{cardID}", s.withUser(s.deleteCard))
	mux.HandleFunc("POST /api/decks/{deckID}/generate", s.withUser(s.generateCards))

	// Study
	mux.HandleFunc("POST /api/decks/{deckID}/study", s.withUser(s.startRun))
	mux.HandleFunc("GET /api/study/{runID}", s.withUser(s.runState))
	mux.HandleFunc("POST /api/study/{runID}/flip", s.withUser(s.flip))
	mux.HandleFunc("POST /api/study/{runID}/advance", s.withUser(s.advance))
	mux.HandleFunc("POST /api/study/{runID}/retreat", s.withUser(s.retreat))
	mux.HandleFunc("POST /api/study/{runID}/correct", s.withUser(s.markCorrect))
	mux.HandleFunc("POST /api/study/{runID}/incorrect", s.withUser(s.markIncorrect))
	mux.HandleFunc("POST /api/study/{runID}/restart", s.withUser(s.restartRun))

	// Tutor
	mux.HandleFunc("POST /api/study/{runID}/tutor/{kind}", s.withUser(s.cardTutor))
	mux.HandleFunc("POST /api/study/{runID}/analysis", s.withUser(s.weakAreaAnalysis))
	mux.HandleFunc("POST /api/tutor/topic-overview", s.withUser(s.topicOverview))
	mux.HandleFunc("POST /api/tutor/plan", s.withUser(s.planLearning))

	// Account
	mux.HandleFunc("GET /api/me", s.withUser(s.me))

	// Billing webhook authenticates by signature, not user header.
	mux.HandleFunc("POST /webhooks/billing", s.billingWebhook)

	return s.logRequests(mux)
}

// withUser requires the gateway-injected identity header and stores the
// user id on the context.
func (s *Server) withUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(s.userHeader)
		if userID == "" {
			writeError(w, http.StatusUnauthorized, CodeUnauthorized, "missing identity")
			return
		}
		next(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
	}
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
			"user":     r.Header.Get(s.userHeader),
		}).Info("request")
	})
}

// decodeValid decodes the JSON body into dst and runs validator tags.
// An empty body leaves dst at its zero value.
func (s *Server) decodeValid(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid JSON body")
	}
	if err := s.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("field %s failed %s validation", f.Field(), f.Tag())
		}
		return err
	}
	return nil
}

// entitled resolves the caller's entitlements, replying on failure.
// The bool reports whether the handler may proceed.
func (s *Server) entitled(w http.ResponseWriter, r *http.Request) (auth.Entitlements, bool) {
	ent, err := s.resolver.Resolve(r.Context(), auth.UserIDFrom(r.Context()))
	if err != nil {
		s.log.WithError(err).Error("entitlement lookup failed")
		writeInternal(w)
		return auth.Entitlements{}, false
	}
	return ent, true
}
