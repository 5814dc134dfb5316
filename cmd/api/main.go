package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"assistente-agenda/config"
	_ "assistente-agenda/docs" // Swagger docs
	assistantHTTP "assistente-agenda/internal/assistant/delivery/http"
	calendarRepo "assistente-agenda/internal/assistant/repository/gcalendar"
	"assistente-agenda/internal/assistant/usecase"
	"assistente-agenda/internal/auth"
	authHTTP "assistente-agenda/internal/auth/delivery/http"
	"assistente-agenda/internal/httpserver"
	"assistente-agenda/internal/intent"
	"assistente-agenda/internal/middleware"
	"assistente-agenda/pkg/datemath"
	"assistente-agenda/pkg/llmprovider"
	"assistente-agenda/pkg/log"
)

const (
	callbackPath       = "/auth/google/callback"
	ngrokDetectTimeout = 45 * time.Second
)

// @title       Assistente Agenda API
// @description Conversational scheduling assistant backed by an LLM and Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Assistente Agenda...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Time resolver in the fixed offset
	dateMathParser, err := datemath.NewParser(cfg.Assistant.UTCOffset)
	if err != nil {
		logger.Errorf(ctx, "Invalid assistant.utc_offset %q: %v", cfg.Assistant.UTCOffset, err)
		return
	}
	logger.Infof(ctx, "Assistant zone: %s", dateMathParser.Location())

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	maxTotal, _ := cfg.LLM.MaxTotalTimeoutDuration()
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		MaxTotalTimeout: maxTotal,
	}, logger)
	logger.Infof(ctx, "LLM providers ready: %d (fallback=%t)", len(providers), cfg.LLM.FallbackEnabled)

	// 5. Google sign-in
	callbackURL := resolveCallbackURL(ctx, cfg, logger)
	authManager := auth.New(logger, auth.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		CallbackURL:  callbackURL,
		SessionTTL:   cfg.Session.TTL,
		MaxSessions:  cfg.Session.MaxEntries,
	})
	if authManager.Enabled() {
		logger.Infof(ctx, "✅ Google sign-in enabled, callback %s", callbackURL)
	} else {
		logger.Warn(ctx, "Google sign-in disabled: GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET is missing; events cannot be created")
	}
	authHandler := authHTTP.New(logger, authManager, authHTTP.CookieConfig{
		Name:   cfg.Session.CookieName,
		MaxAge: int(cfg.Session.TTL.Seconds()),
		Secure: cfg.Session.SecureCookie,
	})

	// 6. Assistant domain
	classifier := intent.New(llmManager, logger, dateMathParser.Location())
	calendar := calendarRepo.New(logger, cfg.GoogleCalendar.CalendarID, nil)
	assistantUC := usecase.New(logger, classifier, llmManager, calendar, dateMathParser, usecase.Config{
		EventDescription:       cfg.Assistant.EventDescription,
		AppointmentDescription: cfg.Assistant.AppointmentDescription,
		AllDayColorID:          cfg.Assistant.AllDayColorID,
		TimedColorID:           cfg.Assistant.TimedColorID,
	})
	assistantHandler := assistantHTTP.New(logger, assistantUC, authHandler)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		StaticDir:   cfg.HTTPServer.StaticDir,
		Middleware: middleware.New(logger, middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		}),
		AssistantHandler: assistantHandler,
		AuthHandler:      authHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// resolveCallbackURL picks the OAuth redirect: explicit config, then an ngrok tunnel, then localhost.
func resolveCallbackURL(ctx context.Context, cfg *config.Config, logger log.Logger) string {
	if cfg.GoogleOAuth.CallbackURL != "" {
		return cfg.GoogleOAuth.CallbackURL
	}

	if cfg.HTTPServer.NgrokAPIURL != "" {
		detectCtx, cancel := context.WithTimeout(ctx, ngrokDetectTimeout)
		defer cancel()

		publicURL, err := detectNgrokURL(detectCtx, &http.Client{Timeout: 5 * time.Second}, cfg.HTTPServer.NgrokAPIURL)
		if err == nil {
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", publicURL)
			return publicURL + callbackPath
		}
		logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
	}

	return fmt.Sprintf("http://localhost:%d%s", cfg.HTTPServer.Port, callbackPath)
}
