package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

func (m *implManager) Enabled() bool {
	return m.cfg.ClientID != "" && m.cfg.ClientSecret != ""
}

func (m *implManager) BeginLogin(ctx context.Context) (string, string, error) {
	if !m.Enabled() {
		return "", "", ErrOAuthNotConfigured
	}

	state, err := newState()
	if err != nil {
		return "", "", fmt.Errorf("generate state: %w", err)
	}
	m.states.Add(state, m.now())

	// Offline access with forced consent yields a refresh token.
	url := m.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	m.l.Debugf(ctx, "internal.auth.BeginLogin: issued state")
	return url, state, nil
}

func (m *implManager) CompleteLogin(ctx context.Context, state, code string) (Session, error) {
	if !m.Enabled() {
		return Session{}, ErrOAuthNotConfigured
	}
	if state == "" || !m.states.Remove(state) {
		return Session{}, ErrInvalidState
	}
	if code == "" {
		return Session{}, fmt.Errorf("%w: missing code", ErrExchangeFailed)
	}

	cctx := m.clientContext(ctx)
	token, err := m.oauth.Exchange(cctx, code)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}

	profile, err := m.fetchProfile(cctx, token)
	if err != nil {
		// Profile data is informational only.
		m.l.Warnf(ctx, "internal.auth.CompleteLogin: fetch profile: %v", err)
		profile = &oauth2api.Userinfo{}
	}

	sess := Session{
		ID:        uuid.NewString(),
		UserID:    profile.Id,
		Email:     profile.Email,
		Name:      profile.Name,
		Token:     token,
		CreatedAt: m.now(),
	}
	m.sessions.Add(sess.ID, sess)

	m.l.Infof(ctx, "internal.auth.CompleteLogin: session created for %s", sess.Email)
	return sess, nil
}

func (m *implManager) Session(_ context.Context, id string) (Session, error) {
	if id == "" {
		return Session{}, ErrSessionNotFound
	}
	sess, ok := m.lookup(id)
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return sess, nil
}

// lookup returns a live session. Sessions expire SessionTTL after sign-in
// even when the store entry was rewritten by a token refresh.
func (m *implManager) lookup(id string) (Session, bool) {
	sess, ok := m.sessions.Get(id)
	if !ok {
		return Session{}, false
	}
	if m.now().Sub(sess.CreatedAt) >= m.cfg.SessionTTL {
		m.sessions.Remove(id)
		return Session{}, false
	}
	return sess, true
}

func (m *implManager) Logout(ctx context.Context, id string) {
	if id == "" {
		return
	}
	if m.sessions.Remove(id) {
		m.l.Infof(ctx, "internal.auth.Logout: session removed")
	}
}

func (m *implManager) fetchProfile(ctx context.Context, token *oauth2.Token) (*oauth2api.Userinfo, error) {
	opts := []option.ClientOption{
		option.WithHTTPClient(oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))),
	}
	if m.cfg.UserinfoEndpoint != "" {
		opts = append(opts, option.WithEndpoint(m.cfg.UserinfoEndpoint))
	}

	svc, err := oauth2api.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return svc.Userinfo.Get().Context(ctx).Do()
}

func newState() (string, error) {
	b := make([]byte, stateByteCount)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
