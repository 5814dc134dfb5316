package openai

import (
	"fmt"
	"net/http"

	goopenai "github.com/sashabaranov/go-openai"
)

// Config holds the client configuration for an OpenAI-compatible endpoint
type Config struct {
	// Provider is the logical backend name ("openai", "deepseek", "qwen").
	Provider   string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills in provider defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.Provider == "" {
		c.Provider = "openai"
	}
	if c.Model == "" {
		c.Model = defaultModels[c.Provider]
		if c.Model == "" {
			c.Model = DefaultModel
		}
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURLs[c.Provider]
		if c.BaseURL == "" {
			return fmt.Errorf("openai: BaseURL is required for provider %q", c.Provider)
		}
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type openaiImpl struct {
	client   *goopenai.Client
	provider string
	model    string
}

// Request represents a chat completion request
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float32
	MaxTokens         int
}

// Message is a single chat message
type Message struct {
	Role    string // "user", "assistant"
	Content string
}

// Response represents a chat completion response
type Response struct {
	Content      string
	FinishReason string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
