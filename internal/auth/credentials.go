package auth

import (
	"context"
	"fmt"

	"assistente-agenda/internal/assistant"
)

// sessionCredentials reads and refreshes the OAuth token of one session.
type sessionCredentials struct {
	m  *implManager
	id string
}

func (m *implManager) Credentials(id string) assistant.CredentialProvider {
	return sessionCredentials{m: m, id: id}
}

func (c sessionCredentials) Credential(ctx context.Context) (assistant.Credential, error) {
	if c.id == "" {
		return assistant.Credential{}, assistant.ErrUnauthenticated
	}
	sess, ok := c.m.lookup(c.id)
	if !ok || sess.Token == nil {
		return assistant.Credential{}, assistant.ErrUnauthenticated
	}

	token, err := c.m.oauth.TokenSource(c.m.clientContext(ctx), sess.Token).Token()
	if err != nil {
		return assistant.Credential{}, fmt.Errorf("%w: refresh: %v", assistant.ErrUnauthenticated, err)
	}

	if token.AccessToken != sess.Token.AccessToken {
		sess.Token = token
		c.m.sessions.Add(c.id, sess)
		c.m.l.Debugf(ctx, "internal.auth.Credential: access token refreshed")
	}

	return assistant.Credential{
		AccessToken: token.AccessToken,
		TokenType:   token.Type(),
		Expiry:      token.Expiry,
	}, nil
}
