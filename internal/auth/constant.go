package auth

import "time"

const (
	ScopeCalendar = "https://www.googleapis.com/auth/calendar"

	DefaultSessionTTL  = 24 * time.Hour
	DefaultMaxSessions = 10000

	stateTTL       = 10 * time.Minute
	maxStates      = 10000
	stateByteCount = 24
)

var defaultScopes = []string{"openid", "email", "profile", ScopeCalendar}
