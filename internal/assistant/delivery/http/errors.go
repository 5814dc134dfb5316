package http

import (
	"errors"
	"net/http"

	"assistente-agenda/internal/assistant"
)

var (
	errInvalidBody       = errors.New("invalid request body")
	errInvalidQuery      = errors.New("days must be between 1 and 31")
	errCalendarUnavailable = errors.New("could not reach your calendar, please try again later")
)

// mapError translates use-case errors into a status code and a user-safe message.
func (h *handler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, assistant.ErrUnauthenticated):
		return http.StatusUnauthorized, "Please connect your Google Calendar first"
	case errors.Is(err, assistant.ErrSubmissionRejected), errors.Is(err, assistant.ErrBackendUnavailable):
		return http.StatusBadGateway, errCalendarUnavailable.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
