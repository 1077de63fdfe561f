package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/L-alam/amongyall-sub001/internal/core/domain"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeError maps domain errors to a status code. Anything unrecognised is
// logged and reported as a 500 without leaking details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		writeMessage(w, status, domain.ErrInternal.Error())
		return
	}
	writeMessage(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNoVote):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidSessionID),
		errors.Is(err, domain.ErrNotEnoughPlayers),
		errors.Is(err, domain.ErrInvalidPlayer),
		errors.Is(err, domain.ErrUnknownPlayer),
		errors.Is(err, domain.ErrInvalidScale),
		errors.Is(err, domain.ErrInvalidGoalZone),
		errors.Is(err, domain.ErrPositionOutOfRange),
		errors.Is(err, domain.ErrInvalidContent),
		errors.Is(err, domain.ErrInvalidDisplayName):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrVotesPending),
		errors.Is(err, domain.ErrRoundRevealed),
		errors.Is(err, domain.ErrRoundNotRevealed),
		errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
