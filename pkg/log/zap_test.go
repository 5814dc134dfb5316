package log_test

import (
	"context"
	"testing"

	"assistente-agenda/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestIDFrom(ctx); got != "req-1" {
		t.Errorf("RequestIDFrom() = %q, want %q", got, "req-1")
	}
	if got := log.RequestIDFrom(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInit(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "not-a-level", Mode: "development", Encoding: "console"})
	if l == nil {
		t.Fatal("Init returned nil logger")
	}
	l.Infof(log.WithRequestID(context.Background(), "abc"), "hello %s", "world")

	jsonLogger := log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
	jsonLogger.Debug(context.Background(), "debug line")
}

func TestKeyValueForm(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
	ctx := context.Background()

	// Neither form may panic, including odd trailing keys.
	l.Info(ctx, "provider called", "provider", "gemini", "tokens", 12)
	l.Warn(ctx, "plain", "message", "with", "dangling")
	l.Error(ctx, 42, "not a message")
}
