package http

const (
	DefaultCookieName = "assistente_session"
	stateCookieName   = "assistente_oauth_state"
	stateCookieMaxAge = 600

	redirectAfterLogin  = "/?connected=1"
	redirectLoginFailed = "/?auth_error=1"
	loginPath           = "/auth/google"

	msgRedirecting   = "Redirecting to Google sign-in..."
	msgNotConfigured = "Google sign-in is not configured on this server"
	msgNotConnected  = "Not connected. Sign in with Google to schedule events."
	msgDisconnected  = "Disconnected from Google Calendar"
)
