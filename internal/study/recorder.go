package study

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/anshul/memodeck/internal/store"
)

// recordTimeout bounds each persistence call so a stuck database never
// leaks goroutines.
const recordTimeout = 10 * time.Second

// Recorder persists study sessions best-effort. Every call returns
// immediately; failures are logged and swallowed so the run state
// machine never waits on storage.
type Recorder struct {
	sessions store.SessionRepo
	log      logrus.FieldLogger
}

// NewRecorder creates a Recorder. log may be nil.
func NewRecorder(sessions store.SessionRepo, log logrus.FieldLogger) *Recorder {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Recorder{sessions: sessions, log: log}
}

// Handle identifies one persisted session. The session id resolves
// asynchronously; consumers of the handle wait on ready.
type Handle struct {
	ready     chan struct{}
	sessionID int
	userID    string
	ok        bool
}

// Begin opens a session row in the background and returns its handle.
func (r *Recorder) Begin(userID string, deckID, totalCards int) *Handle {
	h := &Handle{ready: make(chan struct{}), userID: userID}
	go func() {
		defer close(h.ready)
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		sess, err := r.sessions.Begin(ctx, userID, deckID, totalCards)
		if err != nil {
			r.log.WithError(err).WithFields(logrus.Fields{
				"user": userID,
				"deck": deckID,
			}).Warn("study session begin failed")
			return
		}
		h.sessionID = sess.ID
		h.ok = true
	}()
	return h
}

// RecordResult persists one card judgment in the background.
// A nil or failed handle skips the write.
func (r *Recorder) RecordResult(h *Handle, cardID int, isCorrect bool, elapsedMs int64) {
	if h == nil {
		return
	}
	go func() {
		<-h.ready
		if !h.ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		err := r.sessions.RecordResult(ctx, h.sessionID, cardID, isCorrect, int(elapsedMs))
		if err != nil {
			r.log.WithError(err).WithFields(logrus.Fields{
				"session": h.sessionID,
				"card":    cardID,
			}).Warn("card result write failed")
		}
	}()
}

// Finalize stamps the session complete in the background.
// A nil or failed handle skips the write.
func (r *Recorder) Finalize(h *Handle, correct, incorrect int) {
	if h == nil {
		return
	}
	go func() {
		<-h.ready
		if !h.ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := r.sessions.Finalize(ctx, h.sessionID, h.userID, correct, incorrect); err != nil {
			r.log.WithError(err).WithField("session", h.sessionID).Warn("session finalize failed")
		}
	}()
}
