package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fairwaylabs/pressbook/internal/auth"
	"github.com/fairwaylabs/pressbook/internal/courseapi"
	courseRepo "github.com/fairwaylabs/pressbook/internal/repositories/course"
	playerRepo "github.com/fairwaylabs/pressbook/internal/repositories/player"
	userRepo "github.com/fairwaylabs/pressbook/internal/repositories/user"
	roundService "github.com/fairwaylabs/pressbook/internal/services/round"
)

// errorResponse is the JSON body for every error status
type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps domain errors onto HTTP statuses. Unknown errors are
// logged and reported as a bare 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, roundService.ErrRoundNotFound),
		errors.Is(err, roundService.ErrShareCodeNotFound),
		errors.Is(err, roundService.ErrWagerNotFound),
		errors.Is(err, roundService.ErrBetNotFound),
		errors.Is(err, playerRepo.ErrPlayerNotFound),
		errors.Is(err, courseRepo.ErrCourseNotFound),
		errors.Is(err, courseapi.ErrCourseNotFound),
		errors.Is(err, userRepo.ErrUserNotFound):
		status = http.StatusNotFound

	case errors.Is(err, roundService.ErrRoundEnded),
		errors.Is(err, errEmailTaken):
		status = http.StatusConflict

	case errors.Is(err, roundService.ErrNoPlayers),
		errors.Is(err, roundService.ErrCourseRequired),
		errors.Is(err, roundService.ErrPlayerNotInRound),
		errors.Is(err, roundService.ErrDuplicatePlayerName),
		errors.Is(err, roundService.ErrInvalidBetAmount),
		errors.Is(err, roundService.ErrInvalidHole),
		errors.Is(err, roundService.ErrUnknownJunkType),
		errors.Is(err, roundService.ErrInvalidWinner),
		errors.Is(err, errBadRequest):
		status = http.StatusBadRequest

	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		status = http.StatusUnauthorized

	case errors.Is(err, errCourseLookupDisabled):
		status = http.StatusNotImplemented
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
		h.writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// errBadRequest marks malformed request bodies
var errBadRequest = HandlerError("malformed request body")

// decodeBody decodes a JSON request body into out
func decodeBody(r *http.Request, out interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return errBadRequest
	}
	return nil
}
