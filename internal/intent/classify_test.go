package intent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"assistente-agenda/internal/assistant"
	"assistente-agenda/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

var testZone = time.FixedZone("-03:00", -3*60*60)

func testRef() time.Time {
	return time.Date(2025, 11, 1, 10, 0, 0, 0, testZone)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		completion string
		want       assistant.IntentJudgment
	}{
		{
			name: "timed appointment",
			completion: `{"is_event": true, "event_type": "appointment", "is_all_day": false,
				"summary": "Doctor's appointment", "datetime": "2025-12-10T15:00:00-03:00", "duration": 45}`,
			want: assistant.IntentJudgment{
				IsEvent:           true,
				Kind:              assistant.KindAppointment,
				Title:             "Doctor's appointment",
				ProposedTimestamp: "2025-12-10T15:00:00-03:00",
				DurationMinutes:   45,
			},
		},
		{
			name: "fenced all-day event",
			completion: "Sure!\n```json\n{\"is_event\": true, \"event_type\": \"event\", \"is_all_day\": true, " +
				"\"summary\": \"My birthday\", \"datetime\": \"2025-12-04T00:00:00-03:00\", \"duration\": 0}\n```",
			want: assistant.IntentJudgment{
				IsEvent:           true,
				Kind:              assistant.KindEvent,
				IsAllDay:          true,
				Title:             "My birthday",
				ProposedTimestamp: "2025-12-04T00:00:00-03:00",
			},
		},
		{
			name:       "prose around the object",
			completion: `Here you go: {"is_event": false, "response": "Hi! How can I help?"} Have a nice day.`,
			want:       assistant.IntentJudgment{Reply: "Hi! How can I help?"},
		},
		{
			name:       "portuguese kind",
			completion: `{"is_event": true, "event_type": "lembrete", "summary": "Pay rent", "datetime": "2025-11-05T09:00:00-03:00", "duration": "30"}`,
			want: assistant.IntentJudgment{
				IsEvent:           true,
				Kind:              assistant.KindReminder,
				Title:             "Pay rent",
				ProposedTimestamp: "2025-11-05T09:00:00-03:00",
				DurationMinutes:   30,
			},
		},
		{
			name:       "missing kind on all-day",
			completion: `{"is_event": true, "is_all_day": true, "summary": "Holiday", "datetime": "2025-12-25"}`,
			want: assistant.IntentJudgment{
				IsEvent:           true,
				Kind:              assistant.KindEvent,
				IsAllDay:          true,
				Title:             "Holiday",
				ProposedTimestamp: "2025-12-25",
			},
		},
		{
			name:       "missing kind and title on timed",
			completion: `{"is_event": true, "datetime": "2025-11-03T14:00:00-03:00", "duration": -15}`,
			want: assistant.IntentJudgment{
				IsEvent:           true,
				Kind:              assistant.KindAppointment,
				Title:             assistant.KindAppointment.Label(),
				ProposedTimestamp: "2025-11-03T14:00:00-03:00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{text: tt.completion}
			c := New(gen, log.NewNop(), testZone)

			got, err := c.Classify(context.Background(), "anything", testRef())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, gen.prompts, 1)
		})
	}
}

func TestClassifyMalformed(t *testing.T) {
	tests := []struct {
		name       string
		completion string
	}{
		{name: "empty", completion: "   "},
		{name: "not json", completion: "I think you want a meeting."},
		{name: "broken json", completion: `{"is_event": true, "summary": }`},
		{name: "unknown kind", completion: `{"is_event": true, "event_type": "party", "summary": "x"}`},
		{name: "conversation without reply", completion: `{"is_event": false}`},
		{name: "non numeric duration", completion: `{"is_event": true, "summary": "x", "duration": "an hour"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(&fakeGenerator{text: tt.completion}, log.NewNop(), testZone)

			_, err := c.Classify(context.Background(), "anything", testRef())
			assert.ErrorIs(t, err, assistant.ErrMalformedResponse)
		})
	}
}

func TestClassifyBackendError(t *testing.T) {
	c := New(&fakeGenerator{err: errors.New("connection refused")}, log.NewNop(), testZone)

	_, err := c.Classify(context.Background(), "lunch tomorrow", testRef())
	assert.ErrorIs(t, err, assistant.ErrBackendUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestBuildPrompt(t *testing.T) {
	c := New(&fakeGenerator{}, log.NewNop(), testZone)

	prompt := c.buildPrompt("dentist on the 10th at 14h", testRef().UTC())

	assert.Contains(t, prompt, "Saturday, November 1, 2025 at 10:00")
	assert.Contains(t, prompt, "2025-11-01T10:00:00-03:00")
	assert.Contains(t, prompt, "use 2025 if that date has not passed yet, otherwise use 2026")
	assert.Contains(t, prompt, "offset -03:00")
	assert.Contains(t, prompt, `"dentist on the 10th at 14h"`)
	assert.NotContains(t, prompt, "%!")
	assert.True(t, strings.HasSuffix(prompt, "no additional explanation."))
	assert.Contains(t, prompt, `"datetime": "2025-12-04T00:00:00-03:00"`)
	assert.Contains(t, prompt, `"datetime": "2025-12-10T15:00:00-03:00"`)
}

func TestBuildPromptExampleYears(t *testing.T) {
	c := New(&fakeGenerator{}, log.NewNop(), testZone)

	tests := []struct {
		name     string
		ref      time.Time
		birthday string
		doctor   string
	}{
		{
			name:     "both ahead",
			ref:      time.Date(2025, 12, 4, 9, 0, 0, 0, testZone),
			birthday: "2025-12-04T00:00:00-03:00",
			doctor:   "2025-12-10T15:00:00-03:00",
		},
		{
			name:     "first passed",
			ref:      time.Date(2025, 12, 5, 9, 0, 0, 0, testZone),
			birthday: "2026-12-04T00:00:00-03:00",
			doctor:   "2025-12-10T15:00:00-03:00",
		},
		{
			name:     "both passed",
			ref:      time.Date(2025, 12, 20, 9, 0, 0, 0, testZone),
			birthday: "2026-12-04T00:00:00-03:00",
			doctor:   "2026-12-10T15:00:00-03:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := c.buildPrompt("hi", tt.ref)
			assert.Contains(t, prompt, `"datetime": "`+tt.birthday+`"`)
			assert.Contains(t, prompt, `"datetime": "`+tt.doctor+`"`)
			assert.NotContains(t, prompt, "%!")
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc...", truncate("abcdef", 3))
	// "é" is two bytes; cutting at 2 would split it.
	got := truncate("aé-bcd", 2)
	assert.Equal(t, "a...", got)
	assert.True(t, utf8.ValidString(got))
}

func TestSanitizeJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `{"a":1}`, want: `{"a":1}`},
		{name: "fenced", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose", in: `ok {"a":{"b":2}} done`, want: `{"a":{"b":2}}`},
		{name: "no object", in: "hello", want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeJSONResponse(tt.in))
		})
	}
}
