package assistant

import "time"

// EventKind is the classifier's label for a scheduling request.
type EventKind string

const (
	KindAppointment EventKind = "appointment"
	KindEvent       EventKind = "event"
	KindReminder    EventKind = "reminder"
)

// Label is the capitalised form used in user replies.
func (k EventKind) Label() string {
	switch k {
	case KindAppointment:
		return "Appointment"
	case KindReminder:
		return "Reminder"
	default:
		return "Event"
	}
}

// IntentJudgment is the structured reading of one message.
// Event fields are meaningful only when IsEvent is true, Reply only when it is false.
type IntentJudgment struct {
	IsEvent           bool
	Kind              EventKind
	IsAllDay          bool
	Title             string
	ProposedTimestamp string // empty when the model proposed none
	DurationMinutes   int
	Reply             string
}

// TimingSource says which extraction path produced the final instant.
type TimingSource string

const (
	SourceHeuristic     TimingSource = "heuristic"
	SourceModelProposed TimingSource = "model_proposed"
)

// ResolvedTiming records the outcome of timing reconciliation.
// Heuristic and Proposed are zero when that source yielded nothing.
type ResolvedTiming struct {
	Instant   time.Time
	Source    TimingSource
	IsAllDay  bool
	Heuristic time.Time
	Proposed  time.Time
}

// EventDescriptor is a validated event ready for submission.
type EventDescriptor struct {
	Kind            EventKind
	Title           string
	Start           time.Time
	DurationMinutes int
	IsAllDay        bool
}

// SubmissionOutcome is the terminal result of one submission attempt.
type SubmissionOutcome struct {
	Success         bool
	UserMessage     string
	ExternalEventID string
	Link            string
}

// ReminderMethod is how the calendar delivers an alert.
type ReminderMethod string

const (
	ReminderPopup ReminderMethod = "popup"
	ReminderEmail ReminderMethod = "email"
)

// Reminder fires MinutesBefore the event start.
type Reminder struct {
	Method        ReminderMethod
	MinutesBefore int
}

// CalendarEvent is the backend-neutral creation request.
// For all-day events Start and End are midnights of consecutive calendar dates.
type CalendarEvent struct {
	Title       string
	Description string
	ColorID     string
	AllDay      bool
	Start       time.Time
	End         time.Time
	Reminders   []Reminder
}

// CreatedEvent is the calendar's confirmation.
type CreatedEvent struct {
	ID   string
	Link string
}

// UpcomingEvent is one entry of the user's agenda.
type UpcomingEvent struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	AllDay bool      `json:"all_day"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Link   string    `json:"link,omitempty"`
}

// Credential is a bearer credential for the calendar backend.
type Credential struct {
	AccessToken string
	TokenType   string
	Expiry      time.Time
}

// ReplyKind classifies a reply for the presentation layer.
type ReplyKind string

const (
	ReplyEmptyInput      ReplyKind = "empty_input"
	ReplyConversation    ReplyKind = "conversation"
	ReplyEventCreated    ReplyKind = "event_created"
	ReplyEventFailed     ReplyKind = "event_failed"
	ReplyClarification   ReplyKind = "clarification"
	ReplyUnauthenticated ReplyKind = "unauthenticated"
	ReplyFallback        ReplyKind = "fallback"
	ReplyError           ReplyKind = "error"
)

// HandleInput is one user message. Credentials may be nil for anonymous callers.
type HandleInput struct {
	Text        string
	Credentials CredentialProvider
}

// HandleOutput is the reply to show the user.
type HandleOutput struct {
	Reply    string
	Kind     ReplyKind
	Strategy string // name of the strategy that produced the reply
	EventID  string
	Link     string
}

// UpcomingInput asks for the next Days of events.
type UpcomingInput struct {
	Credentials CredentialProvider
	Days        int
}

// UpcomingOutput lists events ordered by start.
type UpcomingOutput struct {
	Events []UpcomingEvent `json:"events"`
	Count  int             `json:"count"`
}
