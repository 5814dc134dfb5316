package openai

import (
	"context"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"
)

func newOpenAIImpl(cfg Config) *openaiImpl {
	clientConfig := goopenai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL
	clientConfig.HTTPClient = cfg.HTTPClient

	return &openaiImpl{
		client:   goopenai.NewClientWithConfig(clientConfig),
		provider: cfg.Provider,
		model:    cfg.Model,
	}
}

// GenerateContent sends a chat completion request and returns the first choice
func (o *openaiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := o.client.CreateChatCompletion(ctx, o.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("%s: chat completion failed: %w", o.provider, err)
	}

	out := &Response{
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		out.Content = resp.Choices[0].Message.Content
		out.FinishReason = string(resp.Choices[0].FinishReason)
	}
	return out, nil
}

// Provider returns the logical backend name
func (o *openaiImpl) Provider() string {
	return o.provider
}

// Model returns the model being used
func (o *openaiImpl) Model() string {
	return o.model
}

func (o *openaiImpl) transformRequest(req *Request) goopenai.ChatCompletionRequest {
	messages := make([]goopenai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		messages = append(messages, goopenai.ChatCompletionMessage{
			Role:    goopenai.ChatMessageRoleSystem,
			Content: req.SystemInstruction,
		})
	}
	for _, msg := range req.Messages {
		role := msg.Role
		switch role {
		case "", "user":
			role = goopenai.ChatMessageRoleUser
		case "model", "assistant":
			role = goopenai.ChatMessageRoleAssistant
		}
		messages = append(messages, goopenai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}

	return goopenai.ChatCompletionRequest{
		Model:       o.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
}
