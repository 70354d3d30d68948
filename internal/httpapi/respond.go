package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/anshul/memodeck/internal/store"
	"github.com/anshul/memodeck/internal/study"
)

// Error codes carried in the error envelope.
const (
	CodeValidation      = "validation"
	CodeUnauthorized    = "unauthorized"
	CodeNotFound        = "not_found"
	CodeUpgradeRequired = "upgrade_required"
	CodeInternal        = "internal"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Code: code})
}

func writeValidationError(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusBadRequest, CodeValidation, msg)
}

func writeNotFound(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusNotFound, CodeNotFound, msg)
}

func writeUpgradeRequired(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusForbidden, CodeUpgradeRequired, msg)
}

func writeInternal(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, CodeInternal, "internal error")
}

// writeStoreError maps a repository error onto the envelope. Not-found
// covers both missing rows and rows owned by someone else.
func writeStoreError(w http.ResponseWriter, err error, notFoundMsg string) {
	if errors.Is(err, store.ErrNotFound) {
		writeNotFound(w, notFoundMsg)
		return
	}
	writeInternal(w)
}

// writeRunError maps a study-run error onto the envelope.
func writeRunError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, study.ErrRunNotFound):
		writeNotFound(w, "run not found")
	case errors.Is(err, study.ErrRunComplete),
		errors.Is(err, study.ErrAlreadyJudged),
		errors.Is(err, study.ErrNoMissedCards),
		errors.Is(err, study.ErrEmptySequence),
		errors.Is(err, study.ErrUnknownMode):
		writeValidationError(w, err.Error())
	default:
		writeInternal(w)
	}
}
