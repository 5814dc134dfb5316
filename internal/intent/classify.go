package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"assistente-agenda/internal/assistant"
)

// Classify asks the model whether text is a scheduling request and validates its answer.
func (c *Classifier) Classify(ctx context.Context, text string, ref time.Time) (assistant.IntentJudgment, error) {
	completion, err := c.llm.GenerateText(ctx, c.buildPrompt(text, ref))
	if err != nil {
		return assistant.IntentJudgment{}, fmt.Errorf("%w: %v", assistant.ErrBackendUnavailable, err)
	}

	judgment, err := parseJudgment(completion)
	if err != nil {
		c.l.Warnf(ctx, "%s: %v: %q", logPrefixClassify, err, truncate(completion, 200))
		return assistant.IntentJudgment{}, err
	}

	c.l.Infof(ctx, "%s: is_event=%t kind=%s all_day=%t", logPrefixClassify, judgment.IsEvent, judgment.Kind, judgment.IsAllDay)
	return judgment, nil
}

func (c *Classifier) buildPrompt(text string, ref time.Time) string {
	ref = ref.In(c.loc)
	return fmt.Sprintf(promptClassify,
		ref.Format(longDateLayout),
		ref.Format(clockLayout),
		ref.Format(time.RFC3339),
		ref.Format(offsetLayout),
		ref.Year(),
		ref.Year()+1,
		text,
		exampleYear(ref, time.December, 4),
		exampleYear(ref, time.December, 10),
	)
}

// exampleYear picks the year a yearless month/day would resolve to at ref.
func exampleYear(ref time.Time, month time.Month, day int) int {
	today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	if time.Date(ref.Year(), month, day, 0, 0, 0, 0, ref.Location()).Before(today) {
		return ref.Year() + 1
	}
	return ref.Year()
}

// parseJudgment decodes and validates a raw completion.
func parseJudgment(completion string) (assistant.IntentJudgment, error) {
	cleaned := sanitizeJSONResponse(completion)
	if cleaned == "" {
		return assistant.IntentJudgment{}, fmt.Errorf("%w: empty completion", assistant.ErrMalformedResponse)
	}

	var resp judgmentResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return assistant.IntentJudgment{}, fmt.Errorf("%w: %v", assistant.ErrMalformedResponse, err)
	}

	if !resp.IsEvent {
		reply := strings.TrimSpace(resp.Response)
		if reply == "" {
			return assistant.IntentJudgment{}, fmt.Errorf("%w: conversational judgment without a reply", assistant.ErrMalformedResponse)
		}
		return assistant.IntentJudgment{Reply: reply}, nil
	}

	kind, err := eventKind(resp.EventType, resp.IsAllDay)
	if err != nil {
		return assistant.IntentJudgment{}, err
	}

	title := strings.TrimSpace(resp.Summary)
	if title == "" {
		title = kind.Label()
	}

	duration := int(resp.Duration)
	if duration < 0 {
		duration = 0
	}

	return assistant.IntentJudgment{
		IsEvent:           true,
		Kind:              kind,
		IsAllDay:          resp.IsAllDay,
		Title:             title,
		ProposedTimestamp: strings.TrimSpace(resp.Datetime),
		DurationMinutes:   duration,
	}, nil
}

func eventKind(raw string, allDay bool) (assistant.EventKind, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		if allDay {
			return assistant.KindEvent, nil
		}
		return assistant.KindAppointment, nil
	}
	kind, ok := eventKinds[raw]
	if !ok {
		return "", fmt.Errorf("%w: unknown event_type %q", assistant.ErrMalformedResponse, raw)
	}
	return kind, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
