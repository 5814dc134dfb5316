package usecase

import (
	"strings"
	"time"

	"assistente-agenda/internal/assistant"
)

// Layouts accepted for the model's proposed timestamp.
var proposedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// resolveEvent reconciles both timing sources into a descriptor.
// Both sources always run; a heuristic instant overrides the model's proposal.
func (uc *implUseCase) resolveEvent(judgment assistant.IntentJudgment, text string, ref time.Time) (assistant.EventDescriptor, assistant.ResolvedTiming, error) {
	heuristic, hasHeuristic := uc.dateMath.Resolve(text, ref)
	proposed, hasProposed := parseProposedTimestamp(judgment.ProposedTimestamp, uc.dateMath.Location())

	timing := assistant.ResolvedTiming{IsAllDay: judgment.IsAllDay}
	if hasHeuristic {
		timing.Heuristic = heuristic
	}
	if hasProposed {
		timing.Proposed = proposed
	}

	switch {
	case hasHeuristic:
		timing.Instant = heuristic
		timing.Source = assistant.SourceHeuristic
	case hasProposed:
		timing.Instant = proposed
		timing.Source = assistant.SourceModelProposed
	default:
		return assistant.EventDescriptor{}, timing, assistant.ErrAmbiguousTiming
	}

	duration := 0
	if !judgment.IsAllDay {
		duration = judgment.DurationMinutes
		if duration <= 0 {
			duration = defaultDurationMinutes
		}
	}

	return assistant.EventDescriptor{
		Kind:            judgment.Kind,
		Title:           judgment.Title,
		Start:           timing.Instant,
		DurationMinutes: duration,
		IsAllDay:        judgment.IsAllDay,
	}, timing, nil
}

// parseProposedTimestamp reads the model's ISO timestamp. Zone-less values
// are taken as wall time in loc.
func parseProposedTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range proposedLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}
