package usecase

// User-facing replies.
const (
	MsgEmptyInput      = "⚠️ Empty message. Please type something."
	MsgAmbiguousTiming = "⚠️ I couldn't understand the date and time. Please be more specific."
	MsgUnauthenticated = "🔒 Please connect your Google Calendar so I can schedule events for you."
	MsgStaticError     = "⚠️ Something went wrong while processing your message. Please try again."

	msgCreated        = "✅ %s scheduled: \"%s\" on %s"
	msgReminders      = "\n🔔 Reminders: 30min and 10min before, plus an email 1h before"
	msgRejected       = "❌ The calendar rejected the event: %s"
	msgUnavailable    = "❌ I couldn't create the event right now: %s"
	msgMissingEventID = "❌ I couldn't create the event: the calendar did not confirm it."

	plainCompletionPrompt = "Reply in a friendly and helpful way to the following message: %s"
)

// Display formats for confirmations (day first).
const (
	dateDisplayLayout     = "02/01/2006"
	dateTimeDisplayLayout = "02/01/2006 15:04"
)

const (
	defaultDurationMinutes = 60
	defaultUpcomingDays    = 7
	maxUpcomingDays        = 31
)

// Strategy names, in the order they are tried.
const (
	StrategyPipeline        = "pipeline"
	StrategyPlainCompletion = "plain_completion"
	StrategyStatic          = "static"
)
