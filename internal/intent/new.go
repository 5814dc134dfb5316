package intent

import (
	"context"
	"time"

	"assistente-agenda/internal/assistant"
	"assistente-agenda/pkg/log"
)

// Generator is the language backend: one prompt in, free text out.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Classifier reads messages into intent judgments using an LLM.
type Classifier struct {
	llm Generator
	l   log.Logger
	loc *time.Location
}

var _ assistant.IntentClassifier = (*Classifier)(nil)

// New creates a Classifier whose prompt speaks in the given fixed zone.
func New(llm Generator, l log.Logger, loc *time.Location) *Classifier {
	if loc == nil {
		loc = time.UTC
	}
	return &Classifier{
		llm: llm,
		l:   l,
		loc: loc,
	}
}
