package auth

import (
	"context"

	"assistente-agenda/internal/assistant"
)

// Manager owns the OAuth flow and the server-side sessions it creates.
type Manager interface {
	// Enabled reports whether Google sign-in is configured.
	Enabled() bool
	// BeginLogin returns the consent URL and the state that must come back on the callback.
	BeginLogin(ctx context.Context) (authURL string, state string, err error)
	// CompleteLogin consumes state, exchanges code and stores a new session.
	CompleteLogin(ctx context.Context, state, code string) (Session, error)
	Session(ctx context.Context, id string) (Session, error)
	Logout(ctx context.Context, id string)
	// Credentials returns a provider bound to the session id. It is safe to call with an empty id.
	Credentials(id string) assistant.CredentialProvider
}
