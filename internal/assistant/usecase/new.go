package usecase

import (
	"time"

	"assistente-agenda/internal/assistant"
	"assistente-agenda/pkg/datemath"
	pkgLog "assistente-agenda/pkg/log"
)

// Config carries the cosmetic settings applied to every created event.
type Config struct {
	EventDescription       string // all-day events
	AppointmentDescription string // timed events
	AllDayColorID          string
	TimedColorID           string
}

type implUseCase struct {
	l          pkgLog.Logger
	classifier assistant.IntentClassifier
	completer  assistant.Completer
	calendar   assistant.CalendarGateway
	dateMath   *datemath.Parser
	cfg        Config
	now        func() time.Time
}

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	classifier assistant.IntentClassifier,
	completer assistant.Completer,
	calendar assistant.CalendarGateway,
	dateMath *datemath.Parser,
	cfg Config,
) assistant.UseCase {
	return newUseCase(l, classifier, completer, calendar, dateMath, cfg)
}

func newUseCase(
	l pkgLog.Logger,
	classifier assistant.IntentClassifier,
	completer assistant.Completer,
	calendar assistant.CalendarGateway,
	dateMath *datemath.Parser,
	cfg Config,
) *implUseCase {
	return &implUseCase{
		l:          l,
		classifier: classifier,
		completer:  completer,
		calendar:   calendar,
		dateMath:   dateMath,
		cfg:        cfg,
		now:        time.Now,
	}
}

// referenceInstant is "now" in the assistant's fixed zone.
func (uc *implUseCase) referenceInstant() time.Time {
	return uc.now().In(uc.dateMath.Location())
}
