package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	assistantHTTP "assistente-agenda/internal/assistant/delivery/http"
	authHTTP "assistente-agenda/internal/auth/delivery/http"
	"assistente-agenda/internal/middleware"
	"assistente-agenda/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	staticDir   string
	mw          middleware.Middleware

	// Domains
	assistantHandler assistantHTTP.Handler
	authHandler      authHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	StaticDir   string
	Middleware  middleware.Middleware

	AssistantHandler assistantHTTP.Handler
	AuthHandler      authHTTP.Handler
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		staticDir:        cfg.StaticDir,
		mw:               cfg.Middleware,
		assistantHandler: cfg.AssistantHandler,
		authHandler:      cfg.AuthHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantHandler == nil {
		return errors.New("assistant handler is required")
	}
	if srv.authHandler == nil {
		return errors.New("auth handler is required")
	}
	return nil
}
