package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"assistente-agenda/internal/assistant"
)

var timedReminders = []assistant.Reminder{
	{Method: assistant.ReminderPopup, MinutesBefore: 30},
	{Method: assistant.ReminderPopup, MinutesBefore: 10},
	{Method: assistant.ReminderEmail, MinutesBefore: 60},
}

// submit sends the descriptor to the calendar exactly once. Every failure
// becomes an unsuccessful outcome.
func (uc *implUseCase) submit(ctx context.Context, desc assistant.EventDescriptor, cred assistant.Credential) assistant.SubmissionOutcome {
	event := uc.buildCalendarEvent(desc)

	created, err := uc.calendar.CreateEvent(ctx, cred, event)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.submit: CreateEvent %q: %v", desc.Title, err)
		if errors.Is(err, assistant.ErrUnauthenticated) {
			return assistant.SubmissionOutcome{UserMessage: MsgUnauthenticated}
		}
		if errors.Is(err, assistant.ErrSubmissionRejected) {
			return assistant.SubmissionOutcome{UserMessage: fmt.Sprintf(msgRejected, reason(err, assistant.ErrSubmissionRejected))}
		}
		return assistant.SubmissionOutcome{UserMessage: fmt.Sprintf(msgUnavailable, reason(err, assistant.ErrBackendUnavailable))}
	}

	if created.ID == "" {
		uc.l.Errorf(ctx, "assistant.usecase.submit: calendar returned no event id for %q", desc.Title)
		return assistant.SubmissionOutcome{UserMessage: msgMissingEventID}
	}

	uc.l.Infof(ctx, "assistant.usecase.submit: created event id=%s all_day=%t", created.ID, desc.IsAllDay)

	return assistant.SubmissionOutcome{
		Success:         true,
		UserMessage:     confirmationMessage(desc),
		ExternalEventID: created.ID,
		Link:            created.Link,
	}
}

func (uc *implUseCase) buildCalendarEvent(desc assistant.EventDescriptor) assistant.CalendarEvent {
	if desc.IsAllDay {
		day := uc.dateMath.StartOfDay(desc.Start)
		y, m, d := day.Date()
		return assistant.CalendarEvent{
			Title:       desc.Title,
			Description: uc.cfg.EventDescription,
			ColorID:     uc.cfg.AllDayColorID,
			AllDay:      true,
			Start:       day,
			End:         time.Date(y, m, d+1, 0, 0, 0, 0, day.Location()),
		}
	}

	start := desc.Start.In(uc.dateMath.Location())
	reminders := make([]assistant.Reminder, len(timedReminders))
	copy(reminders, timedReminders)

	return assistant.CalendarEvent{
		Title:       desc.Title,
		Description: uc.cfg.AppointmentDescription,
		ColorID:     uc.cfg.TimedColorID,
		Start:       start,
		End:         start.Add(time.Duration(desc.DurationMinutes) * time.Minute),
		Reminders:   reminders,
	}
}

func confirmationMessage(desc assistant.EventDescriptor) string {
	if desc.IsAllDay {
		return fmt.Sprintf(msgCreated, desc.Kind.Label(), desc.Title, desc.Start.Format(dateDisplayLayout))
	}
	return fmt.Sprintf(msgCreated, desc.Kind.Label(), desc.Title, desc.Start.Format(dateTimeDisplayLayout)) + msgReminders
}

// reason strips the sentinel prefix so only the backend's own text remains.
func reason(err, sentinel error) string {
	msg := err.Error()
	if trimmed := strings.TrimPrefix(msg, sentinel.Error()+": "); trimmed != msg {
		return trimmed
	}
	return msg
}
