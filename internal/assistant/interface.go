package assistant

import (
	"context"
	"time"
)

// UseCase is the conversation entry point.
type UseCase interface {
	// Handle turns one message into one reply. It never fails: every error is rendered as a reply.
	Handle(ctx context.Context, input HandleInput) HandleOutput

	// Upcoming lists the caller's events for the next few days.
	Upcoming(ctx context.Context, input UpcomingInput) (UpcomingOutput, error)
}

// IntentClassifier reads a message into a structured judgment.
type IntentClassifier interface {
	Classify(ctx context.Context, text string, ref time.Time) (IntentJudgment, error)
}

// Completer produces a free-text completion for a prompt.
type Completer interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// CredentialProvider yields the caller's current bearer credential or ErrUnauthenticated.
type CredentialProvider interface {
	Credential(ctx context.Context) (Credential, error)
}

// CalendarGateway is the calendar backend.
type CalendarGateway interface {
	CreateEvent(ctx context.Context, cred Credential, event CalendarEvent) (CreatedEvent, error)
	ListEvents(ctx context.Context, cred Credential, from, to time.Time) ([]UpcomingEvent, error)
}
