package gcalendar

import "time"

// Reminder methods accepted by the Calendar API.
const (
	ReminderPopup = "popup"
	ReminderEmail = "email"
)

const (
	// DefaultCalendarID addresses the authenticated user's main calendar.
	DefaultCalendarID = "primary"

	dateLayout = "2006-01-02"
)

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	ColorID     string
	// AllDay events use only the calendar dates of StartTime and EndTime.
	AllDay    bool
	StartTime time.Time
	EndTime   time.Time
	// Reminders override the calendar defaults when non-empty.
	Reminders []Reminder
}

// Reminder is a single reminder override.
type Reminder struct {
	Method  string
	Minutes int64
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	AllDay      bool
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
