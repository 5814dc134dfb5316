package http

import (
	"github.com/gin-gonic/gin"

	"assistente-agenda/internal/assistant"
	"assistente-agenda/internal/auth"
	"assistente-agenda/pkg/log"
)

// Handler is the sign-in surface plus the session lookup other handlers rely on.
type Handler interface {
	Google(c *gin.Context)
	Callback(c *gin.Context)
	Status(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)

	// Credentials returns the calling browser's credential provider.
	Credentials(c *gin.Context) assistant.CredentialProvider
}

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	MaxAge int // seconds
	Secure bool
}

type handler struct {
	l      log.Logger
	mgr    auth.Manager
	cookie CookieConfig
}

// New creates the auth HTTP handler.
func New(l log.Logger, mgr auth.Manager, cookie CookieConfig) Handler {
	if cookie.Name == "" {
		cookie.Name = DefaultCookieName
	}
	if cookie.MaxAge <= 0 {
		cookie.MaxAge = int(auth.DefaultSessionTTL.Seconds())
	}
	return &handler{
		l:      l,
		mgr:    mgr,
		cookie: cookie,
	}
}
