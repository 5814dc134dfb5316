package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"assistente-agenda/internal/assistant"
	"assistente-agenda/pkg/gcalendar"
)

const maxListResults = 50

// CreateEvent inserts the event into the caller's calendar.
func (r *implRepository) CreateEvent(ctx context.Context, cred assistant.Credential, event assistant.CalendarEvent) (assistant.CreatedEvent, error) {
	client, err := r.client(ctx, cred)
	if err != nil {
		return assistant.CreatedEvent{}, fmt.Errorf("%w: %v", assistant.ErrBackendUnavailable, err)
	}

	reminders := make([]gcalendar.Reminder, len(event.Reminders))
	for i, rem := range event.Reminders {
		reminders[i] = gcalendar.Reminder{Method: string(rem.Method), Minutes: int64(rem.MinutesBefore)}
	}

	created, err := client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  r.calendarID,
		Summary:     event.Title,
		Description: event.Description,
		ColorID:     event.ColorID,
		AllDay:      event.AllDay,
		StartTime:   event.Start,
		EndTime:     event.End,
		Reminders:   reminders,
	})
	if err != nil {
		return assistant.CreatedEvent{}, mapError(err)
	}

	return assistant.CreatedEvent{ID: created.ID, Link: created.HtmlLink}, nil
}

// ListEvents returns the caller's events in [from, to).
func (r *implRepository) ListEvents(ctx context.Context, cred assistant.Credential, from, to time.Time) ([]assistant.UpcomingEvent, error) {
	client, err := r.client(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", assistant.ErrBackendUnavailable, err)
	}

	events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		TimeMin:    from,
		TimeMax:    to,
		MaxResults: maxListResults,
	})
	if err != nil {
		return nil, mapError(err)
	}

	out := make([]assistant.UpcomingEvent, len(events))
	for i, e := range events {
		out[i] = assistant.UpcomingEvent{
			ID:     e.ID,
			Title:  e.Summary,
			AllDay: e.AllDay,
			Start:  e.StartTime,
			End:    e.EndTime,
			Link:   e.HtmlLink,
		}
	}
	return out, nil
}

// client builds a Calendar client authorised with the caller's bearer token.
func (r *implRepository) client(ctx context.Context, cred assistant.Credential) (*gcalendar.Client, error) {
	tokenType := cred.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cred.AccessToken,
		TokenType:   tokenType,
		Expiry:      cred.Expiry,
	})

	if r.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, r.httpClient)
	}
	return gcalendar.NewClientFromHTTP(ctx, oauth2.NewClient(ctx, ts))
}

// mapError separates explicit rejections (4xx) from everything else.
func mapError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = http.StatusText(apiErr.Code)
		}
		switch {
		case apiErr.Code == http.StatusUnauthorized:
			return fmt.Errorf("%w: %s", assistant.ErrUnauthenticated, msg)
		case apiErr.Code >= 400 && apiErr.Code < 500:
			return fmt.Errorf("%w: %s", assistant.ErrSubmissionRejected, msg)
		}
		return fmt.Errorf("%w: %s", assistant.ErrBackendUnavailable, msg)
	}
	return fmt.Errorf("%w: %v", assistant.ErrBackendUnavailable, err)
}
