package auth

import "errors"

var (
	ErrOAuthNotConfigured = errors.New("google sign-in is not configured")
	ErrInvalidState       = errors.New("invalid or expired oauth state")
	ErrSessionNotFound    = errors.New("session not found")
	ErrExchangeFailed     = errors.New("oauth code exchange failed")
)
