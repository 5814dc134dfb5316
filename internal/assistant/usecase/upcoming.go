package usecase

import (
	"context"
	"fmt"

	"assistente-agenda/internal/assistant"
)

// Upcoming lists the caller's events from now until Days ahead.
func (uc *implUseCase) Upcoming(ctx context.Context, input assistant.UpcomingInput) (assistant.UpcomingOutput, error) {
	days := input.Days
	if days <= 0 {
		days = defaultUpcomingDays
	}
	if days > maxUpcomingDays {
		days = maxUpcomingDays
	}

	cred, err := uc.credential(ctx, input.Credentials)
	if err != nil {
		return assistant.UpcomingOutput{}, err
	}

	from := uc.referenceInstant()
	to := from.AddDate(0, 0, days)

	events, err := uc.calendar.ListEvents(ctx, cred, from, to)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Upcoming: ListEvents: %v", err)
		return assistant.UpcomingOutput{}, fmt.Errorf("list events: %w", err)
	}

	return assistant.UpcomingOutput{Events: events, Count: len(events)}, nil
}
