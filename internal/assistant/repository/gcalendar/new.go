package gcalendar

import (
	"net/http"

	"assistente-agenda/internal/assistant"
	pkgLog "assistente-agenda/pkg/log"
)

type implRepository struct {
	l          pkgLog.Logger
	calendarID string
	// base transport for the per-request authorised client; nil uses the default.
	httpClient *http.Client
}

// New creates a CalendarGateway backed by Google Calendar.
func New(l pkgLog.Logger, calendarID string, httpClient *http.Client) assistant.CalendarGateway {
	return &implRepository{
		l:          l,
		calendarID: calendarID,
		httpClient: httpClient,
	}
}
