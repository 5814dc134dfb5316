package auth

import (
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Config configures Google sign-in and the session store.
type Config struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string

	SessionTTL  time.Duration
	MaxSessions int

	// Endpoint and UserinfoEndpoint override the Google endpoints when set.
	Endpoint         oauth2.Endpoint
	UserinfoEndpoint string
	HTTPClient       *http.Client
}

// Session is one signed-in browser.
type Session struct {
	ID        string
	UserID    string
	Email     string
	Name      string
	Token     *oauth2.Token
	CreatedAt time.Time
}
