package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistente-agenda/internal/assistant"
	"assistente-agenda/pkg/datemath"
	"assistente-agenda/pkg/log"
)

type fakeClassifier struct {
	judgment assistant.IntentJudgment
	err      error
	calls    int
	lastRef  time.Time
}

func (f *fakeClassifier) Classify(ctx context.Context, text string, ref time.Time) (assistant.IntentJudgment, error) {
	f.calls++
	f.lastRef = ref
	return f.judgment, f.err
}

type fakeCompleter struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeCompleter) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.reply, f.err
}

type fakeCalendar struct {
	err       error
	noID      bool
	calls     int
	seq       int
	events    []assistant.CalendarEvent
	lastCred  assistant.Credential
	upcoming  []assistant.UpcomingEvent
	listFrom  time.Time
	listTo    time.Time
	listErr   error
	listCalls int
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, cred assistant.Credential, event assistant.CalendarEvent) (assistant.CreatedEvent, error) {
	f.calls++
	f.lastCred = cred
	f.events = append(f.events, event)
	if f.err != nil {
		return assistant.CreatedEvent{}, f.err
	}
	if f.noID {
		return assistant.CreatedEvent{}, nil
	}
	f.seq++
	return assistant.CreatedEvent{ID: fmt.Sprintf("evt-%d", f.seq), Link: "https://calendar/evt"}, nil
}

func (f *fakeCalendar) ListEvents(ctx context.Context, cred assistant.Credential, from, to time.Time) ([]assistant.UpcomingEvent, error) {
	f.listCalls++
	f.listFrom, f.listTo = from, to
	return f.upcoming, f.listErr
}

type fakeCredentials struct {
	cred assistant.Credential
	err  error
}

func (f fakeCredentials) Credential(ctx context.Context) (assistant.Credential, error) {
	return f.cred, f.err
}

var validCreds = fakeCredentials{cred: assistant.Credential{AccessToken: "token", TokenType: "Bearer"}}

type fixture struct {
	uc         *implUseCase
	classifier *fakeClassifier
	completer  *fakeCompleter
	calendar   *fakeCalendar
	loc        *time.Location
	ref        time.Time
}

func newFixture(t *testing.T, zone string) *fixture {
	t.Helper()
	parser, err := datemath.NewParser(zone)
	require.NoError(t, err)

	f := &fixture{
		classifier: &fakeClassifier{},
		completer:  &fakeCompleter{reply: "Hi! How can I help?"},
		calendar:   &fakeCalendar{},
		loc:        parser.Location(),
	}
	f.ref = time.Date(2025, 11, 1, 10, 0, 0, 0, f.loc)
	f.uc = newUseCase(log.NewNop(), f.classifier, f.completer, f.calendar, parser, Config{
		EventDescription:       "all-day description",
		AppointmentDescription: "timed description",
		AllDayColorID:          "11",
		TimedColorID:           "9",
	})
	f.uc.now = func() time.Time { return f.ref }
	return f
}

func timedJudgment(title, proposed string, duration int) assistant.IntentJudgment {
	return assistant.IntentJudgment{
		IsEvent:           true,
		Kind:              assistant.KindAppointment,
		Title:             title,
		ProposedTimestamp: proposed,
		DurationMinutes:   duration,
	}
}

func allDayJudgment(title, proposed string) assistant.IntentJudgment {
	return assistant.IntentJudgment{
		IsEvent:           true,
		Kind:              assistant.KindEvent,
		IsAllDay:          true,
		Title:             title,
		ProposedTimestamp: proposed,
	}
}

func TestResolveEvent_HeuristicOverridesProposal(t *testing.T) {
	f := newFixture(t, "-03:00")

	tests := []struct {
		name       string
		text       string
		proposed   string
		wantStart  time.Time
		wantSource assistant.TimingSource
	}{
		{
			name:       "heuristic wins over conflicting proposal",
			text:       "dentist tomorrow at 14h",
			proposed:   "2025-11-05T09:00:00",
			wantStart:  time.Date(2025, 11, 2, 14, 0, 0, 0, f.loc),
			wantSource: assistant.SourceHeuristic,
		},
		{
			name:       "heuristic wins even without proposal",
			text:       "dentist tomorrow at 14h",
			wantStart:  time.Date(2025, 11, 2, 14, 0, 0, 0, f.loc),
			wantSource: assistant.SourceHeuristic,
		},
		{
			name:       "zone-less proposal read in fixed zone",
			text:       "dentist appointment",
			proposed:   "2025-11-05T09:00:00",
			wantStart:  time.Date(2025, 11, 5, 9, 0, 0, 0, f.loc),
			wantSource: assistant.SourceModelProposed,
		},
		{
			name:       "rfc3339 proposal keeps its instant",
			text:       "dentist appointment",
			proposed:   "2025-11-05T09:00:00Z",
			wantStart:  time.Date(2025, 11, 5, 6, 0, 0, 0, f.loc),
			wantSource: assistant.SourceModelProposed,
		},
		{
			name:       "date-only proposal",
			text:       "dentist appointment",
			proposed:   "2025-11-05",
			wantStart:  time.Date(2025, 11, 5, 0, 0, 0, 0, f.loc),
			wantSource: assistant.SourceModelProposed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, timing, err := f.uc.resolveEvent(timedJudgment("Dentist", tt.proposed, 30), tt.text, f.ref)
			require.NoError(t, err)
			assert.True(t, desc.Start.Equal(tt.wantStart), "start = %v, want %v", desc.Start, tt.wantStart)
			assert.Equal(t, tt.wantSource, timing.Source)
			assert.Equal(t, 30, desc.DurationMinutes)
		})
	}
}

func TestResolveEvent_RecordsBothSources(t *testing.T) {
	f := newFixture(t, "-03:00")

	_, timing, err := f.uc.resolveEvent(timedJudgment("Dentist", "2025-11-05T09:00:00", 0), "dentist tomorrow at 14h", f.ref)
	require.NoError(t, err)
	assert.False(t, timing.Heuristic.IsZero())
	assert.False(t, timing.Proposed.IsZero())
	assert.True(t, timing.Instant.Equal(timing.Heuristic))
}

func TestResolveEvent_ExplicitHourNeverRounded(t *testing.T) {
	f := newFixture(t, "-03:00")

	for _, h := range []int{0, 7, 9, 13, 14, 17, 23} {
		text := fmt.Sprintf("meeting on December 4th at %dh", h)
		// The model's rounded guess must not leak through.
		proposed := fmt.Sprintf("2025-12-04T%02d:30:00", (h+1)%24)
		desc, _, err := f.uc.resolveEvent(timedJudgment("Meeting", proposed, 0), text, f.ref)
		require.NoError(t, err)
		assert.Equal(t, h, desc.Start.Hour(), text)
		assert.Equal(t, 0, desc.Start.Minute(), text)
	}
}

func TestResolveEvent_AmbiguousTiming(t *testing.T) {
	f := newFixture(t, "-03:00")

	for _, proposed := range []string{"", "sometime soon", "2025-13-45"} {
		_, timing, err := f.uc.resolveEvent(timedJudgment("Call", proposed, 0), "call the bank", f.ref)
		assert.ErrorIs(t, err, assistant.ErrAmbiguousTiming, proposed)
		assert.True(t, timing.Instant.IsZero())
	}
}

func TestResolveEvent_Duration(t *testing.T) {
	f := newFixture(t, "-03:00")

	desc, _, err := f.uc.resolveEvent(timedJudgment("Call", "", 0), "call at 15:00", f.ref)
	require.NoError(t, err)
	assert.Equal(t, 60, desc.DurationMinutes)

	desc, _, err = f.uc.resolveEvent(timedJudgment("Call", "", -5), "call at 15:00", f.ref)
	require.NoError(t, err)
	assert.Equal(t, 60, desc.DurationMinutes)

	all := allDayJudgment("Holiday", "")
	all.DurationMinutes = 240
	desc, _, err = f.uc.resolveEvent(all, "holiday on December 25th", f.ref)
	require.NoError(t, err)
	assert.Equal(t, 0, desc.DurationMinutes)
	assert.True(t, desc.IsAllDay)
}

func TestResolveEvent_AllDayFlagFromJudgment(t *testing.T) {
	f := newFixture(t, "-03:00")

	// The text carries an hour but the judgment says all-day: the judgment wins.
	desc, timing, err := f.uc.resolveEvent(allDayJudgment("Trip", ""), "trip on December 4th at 9am", f.ref)
	require.NoError(t, err)
	assert.True(t, desc.IsAllDay)
	assert.True(t, timing.IsAllDay)
}

func TestHandle_EmptyInput(t *testing.T) {
	f := newFixture(t, "-03:00")

	for _, text := range []string{"", "   ", "\n\t"} {
		out := f.uc.Handle(context.Background(), assistant.HandleInput{Text: text, Credentials: validCreds})
		assert.Equal(t, MsgEmptyInput, out.Reply)
		assert.Equal(t, assistant.ReplyEmptyInput, out.Kind)
	}
	assert.Zero(t, f.classifier.calls)
	assert.Zero(t, f.completer.calls)
	assert.Zero(t, f.calendar.calls)
}

func TestHandle_ConversationalReply(t *testing.T) {
	f := newFixture(t, "-03:00")
	f.classifier.judgment = assistant.IntentJudgment{Reply: "Hello! I can schedule things for you."}

	out := f.uc.Handle(context.Background(), assistant.HandleInput{Text: "hi there"})
	assert.Equal(t, "Hello! I can schedule things for you.", out.Reply)
	assert.Equal(t, assistant.ReplyConversation, out.Kind)
	assert.Equal(t, StrategyPipeline, out.Strategy)
	assert.Zero(t, f.calendar.calls)
	assert.True(t, f.classifier.lastRef.Equal(f.ref))
}

func TestHandle_YearInference(t *testing.T) {
	tests := []struct {
		text     string
		wantDate string
	}{
		{text: "December 4th", wantDate: "2025-12-04"},
		{text: "January 5th", wantDate: "2026-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			f := newFixture(t, "-03:00")
			f.classifier.judgment = allDayJudgment("Birthday", "")

			out := f.uc.Handle(context.Background(), assistant.HandleInput{Text: tt.text, Credentials: validCreds})
			require.Equal(t, assistant.ReplyEventCreated, out.Kind, out.Reply)
			require.Len(t, f.calendar.events, 1)

			ev := f.calendar.events[0]
			assert.True(t, ev.AllDay)
			assert.Equal(t, tt.wantDate, ev.Start.Format("2006-01-02"))
			assert.Empty(t, ev.Reminders)
		})
	}
}

func TestHandle_TimedEventSubmission(t *testing.T) {
	f := newFixture(t, "-03:00")
	f.classifier.judgment = timedJudgment("Dentist", "2025-12-04T14:30:00", 0)

	out := f.uc.Handle(context.Background(), assistant.HandleInput{Text: "dentist on December 4th at 14h", Credentials: validCreds})

	require.Equal(t, assistant.ReplyEventCreated, out.Kind)
	assert.Equal(t, "evt-1", out.EventID)
	assert.Equal(t, "token", f.calendar.lastCred.AccessToken)

	ev := f.calendar.events[0]
	assert.Equal(t, "2025-12-04T14:00:00-03:00", ev.Start.Format(time.RFC3339))
	assert.Equal(t, 60*time.Minute, ev.End.Sub(ev.Start))
	assert.Equal(t, "9", ev.ColorID)
	assert.Equal(t, "timed description", ev.Description)
	assert.Equal(t, timedReminders, ev.Reminders)

	assert.Equal(t, "✅ Appointment scheduled: \"Dentist\" on 04/12/2025 14:00"+msgReminders, out.Reply)
}

func TestHandle_AllDaySpanIsOneCalendarDay(t *testing.T) {
	// Nov 2 2025 is 25 hours long in New York.
	f := newFixture(t, "America/New_York")
	f.classifier.judgment = allDayJudgment("Marathon", "")

	out := f.uc.Handle(context.Background(), assistant.HandleInput{Text: "marathon on November 2nd", Credentials: validCreds})
	require.Equal(t, assistant.ReplyEventCreated, out.Kind)

	ev := f.calendar.events[0]
	assert.Equal(t, "2025-11-02", ev.Start.Format("2006-01-02"))
	assert.Equal(t, "2025-11-03", ev.End.Format("2006-01-02"))
	assert.Equal(t, 0, ev.Start.Hour())
	assert.Equal(t, 0, ev.End.Hour())
	assert.Equal(t, 25*time.Hour, ev.End.Sub(ev.Start))
	assert.Equal(t, "11", ev.ColorID)
	assert.Equal(t, "all-day description", ev.Description)
	assert.Equal(t, "✅ Event scheduled: \"Marathon\" on 02/11/2025", out.Reply)
}

func TestHandle_AmbiguousTiming(t *testing.T) {
	f := newFixture(t, "-03:00")
	f.classifier.judgment = timedJudgment("Call", "whenever", 0)

	out := f.uc.Handle(context.Background(), assistant.HandleInput{Text: "call the bank", Credentials: validCreds})
	assert.Equal(t, MsgAmbiguousTiming, out.Reply)
	assert.Equal(t, assistant.ReplyClarification, out.Kind)
	assert.Zero(t, f.calendar.calls)
	assert.Zero(t, f.completer.calls)
}

func TestHandle_MalformedFallsBackToPlainCompletion(t *testing.T) {
	f := newFixture(t, "-03:00")
	f.classifier.err = fmt.Errorf("%w: not json", assistant.ErrMalformedResponse)
	f.completer.reply = "  Sure, tell me more!  "

	out := f.uc.Handle(context.Background(), assistant.HandleInput{Text: "book something", Credentials: validCreds})
	assert.Equal(t, "Sure, tell me more!", out.Reply)
	assert.Equal(t, assistant.ReplyFallback, out.Kind)
	assert.Equal(t, StrategyPlainCompletion, out.Strategy)
	assert.Equal(t, 1, f.classifier.calls)
	assert.Contains(t, f.completer.lastPrompt, "book something")
	assert.Zero(t, f.calendar.calls)
}

func TestHandle_StaticMessageWhenEverythingFails(t *testing.T) {
	f := newFixture(t, "-03:00")
	f.classifier.err = assistant.ErrBackendUnavailable
	f.completer.err = errors.New("connection refused")

	out := f.uc.Handle(context.Background(), assistant.HandleInput{Text: "hello"})
	assert.Equal(t, MsgStaticError, out.Reply)
	assert.Equal(t, assistant.ReplyError, out.Kind)
	assert.Equal(t, StrategyStatic, out.Strategy)
	assert.Equal(t, 1, f.classifier.calls)
	assert.Equal(t, 1, f.completer.calls)
}

func TestHandle_EmptyPlainCompletionFallsThrough(t *testing.T) {
	f := newFixture(t, "-03:00")
	f.classifier.err = assistant.ErrMalformedResponse
	f.completer.reply = "   "

	out := f.uc.Handle(context.Background(), assistant.HandleInput{Text: "hello"})
	assert.Equal(t, MsgStaticError, out.Reply)
}

func TestHandle_Unauthenticated(t *testing.T) {
	tests := []struct {
		name  string
		creds assistant.CredentialProvider
	}{
		{name: "no provider", creds: nil},
		{name: "provider fails", creds: fakeCredentials{err: errors.New("refresh failed")}},
		{name: "empty token", creds: fakeCredentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "-03:00")
			f.classifier.judgment = timedJudgment("Dentist", "", 0)

			out := f.uc.Handle(context.Background(), assistant.HandleInput{Text: "dentist tomorrow at 10am", Credentials: tt.creds})
			assert.Equal(t, MsgUnauthenticated, out.Reply)
			assert.Equal(t, assistant.ReplyUnauthenticated, out.Kind)
			assert.Zero(t, f.calendar.calls)
			assert.Zero(t, f.completer.calls)
		})
	}
}

func TestHandle_MissingEventIDIsFailure(t *testing.T) {
	f := newFixture(t, "-03:00")
	f.classifier.judgment = timedJudgment("Dentist", "", 0)
	f.calendar.noID = true

	out := f.uc.Handle(context.Background(), assistant.HandleInput{Text: "dentist tomorrow at 10am", Credentials: validCreds})
	assert.Equal(t, assistant.ReplyEventFailed, out.Kind)
	assert.Equal(t, msgMissingEventID, out.Reply)
	assert.Empty(t, out.EventID)
	assert.Equal(t, 1, f.calendar.calls)
	assert.Zero(t, f.completer.calls)
}

func TestHandle_SubmissionErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantPrefix string
		wantReason string
	}{
		{
			name:       "rejected",
			err:        fmt.Errorf("%w: Invalid start time", assistant.ErrSubmissionRejected),
			wantPrefix: "❌ The calendar rejected the event",
			wantReason: "Invalid start time",
		},
		{
			name:       "unavailable",
			err:        fmt.Errorf("%w: dial tcp: timeout", assistant.ErrBackendUnavailable),
			wantPrefix: "❌ I couldn't create the event right now",
			wantReason: "dial tcp: timeout",
		},
		{
			name:       "token revoked",
			err:        fmt.Errorf("%w: Invalid Credentials", assistant.ErrUnauthenticated),
			wantPrefix: "🔒",
			wantReason: "for you.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "-03:00")
			f.classifier.judgment = timedJudgment("Dentist", "", 0)
			f.calendar.err = tt.err

			out := f.uc.Handle(context.Background(), assistant.HandleInput{Text: "dentist tomorrow at 10am", Credentials: validCreds})
			assert.Equal(t, assistant.ReplyEventFailed, out.Kind)
			assert.True(t, strings.HasPrefix(out.Reply, tt.wantPrefix), out.Reply)
			assert.True(t, strings.HasSuffix(out.Reply, tt.wantReason), out.Reply)
			assert.Equal(t, 1, f.calendar.calls)
			assert.Zero(t, f.completer.calls)
		})
	}
}

func TestSubmit_NotIdempotent(t *testing.T) {
	f := newFixture(t, "-03:00")
	desc := assistant.EventDescriptor{
		Kind:            assistant.KindReminder,
		Title:           "Pay rent",
		Start:           time.Date(2025, 11, 5, 9, 0, 0, 0, f.loc),
		DurationMinutes: 15,
	}

	first := f.uc.submit(context.Background(), desc, validCreds.cred)
	second := f.uc.submit(context.Background(), desc, validCreds.cred)

	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.NotEqual(t, first.ExternalEventID, second.ExternalEventID)
	assert.Equal(t, 2, f.calendar.calls)
	assert.Equal(t, 15*time.Minute, f.calendar.events[0].End.Sub(f.calendar.events[0].Start))
	assert.True(t, strings.HasPrefix(first.UserMessage, "✅ Reminder scheduled: \"Pay rent\" on 05/11/2025 09:00"))
}

func TestStrategiesOrder(t *testing.T) {
	f := newFixture(t, "-03:00")

	var names []string
	for _, s := range f.uc.strategies() {
		names = append(names, s.name)
	}
	assert.Equal(t, []string{StrategyPipeline, StrategyPlainCompletion, StrategyStatic}, names)
}

func TestUpcoming(t *testing.T) {
	f := newFixture(t, "-03:00")
	f.calendar.upcoming = []assistant.UpcomingEvent{{ID: "a", Title: "Standup"}}

	out, err := f.uc.Upcoming(context.Background(), assistant.UpcomingInput{Credentials: validCreds})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Count)
	assert.True(t, f.calendar.listFrom.Equal(f.ref))
	assert.True(t, f.calendar.listTo.Equal(f.ref.AddDate(0, 0, defaultUpcomingDays)))

	_, err = f.uc.Upcoming(context.Background(), assistant.UpcomingInput{Days: 100, Credentials: validCreds})
	require.NoError(t, err)
	assert.True(t, f.calendar.listTo.Equal(f.ref.AddDate(0, 0, maxUpcomingDays)))

	_, err = f.uc.Upcoming(context.Background(), assistant.UpcomingInput{})
	assert.ErrorIs(t, err, assistant.ErrUnauthenticated)

	f.calendar.listErr = assistant.ErrBackendUnavailable
	_, err = f.uc.Upcoming(context.Background(), assistant.UpcomingInput{Credentials: validCreds})
	assert.ErrorIs(t, err, assistant.ErrBackendUnavailable)
}
