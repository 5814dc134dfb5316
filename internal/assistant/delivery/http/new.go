package http

import (
	"github.com/gin-gonic/gin"

	"assistente-agenda/internal/assistant"
	"assistente-agenda/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	SendMessage(c *gin.Context)
	Upcoming(c *gin.Context)
}

// CredentialResolver finds the credential provider of the calling browser.
type CredentialResolver interface {
	Credentials(c *gin.Context) assistant.CredentialProvider
}

type handler struct {
	l     log.Logger
	uc    assistant.UseCase
	creds CredentialResolver
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase, creds CredentialResolver) Handler {
	return &handler{
		l:     l,
		uc:    uc,
		creds: creds,
	}
}
