package auth

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	pkgLog "assistente-agenda/pkg/log"
)

type implManager struct {
	l        pkgLog.Logger
	oauth    *oauth2.Config
	cfg      Config
	sessions *expirable.LRU[string, Session]
	states   *expirable.LRU[string, time.Time]
	now      func() time.Time
}

// New creates a Manager. Sign-in stays disabled until ClientID and ClientSecret are set.
func New(l pkgLog.Logger, cfg Config) Manager {
	return newManager(l, cfg)
}

func newManager(l pkgLog.Logger, cfg Config) *implManager {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	endpoint := cfg.Endpoint
	if endpoint.TokenURL == "" {
		endpoint = google.Endpoint
	}

	return &implManager{
		l: l,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Endpoint:     endpoint,
			Scopes:       defaultScopes,
		},
		cfg:      cfg,
		sessions: expirable.NewLRU[string, Session](cfg.MaxSessions, nil, cfg.SessionTTL),
		states:   expirable.NewLRU[string, time.Time](maxStates, nil, stateTTL),
		now:      time.Now,
	}
}

// clientContext makes oauth2 use the configured HTTP client.
func (m *implManager) clientContext(ctx context.Context) context.Context {
	if m.cfg.HTTPClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, m.cfg.HTTPClient)
}
