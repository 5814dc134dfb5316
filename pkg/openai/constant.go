package openai

import "time"

const (
	// DefaultModel is used when the provider has no model of its own configured
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Known OpenAI-compatible providers and their default endpoints and models.
var (
	defaultBaseURLs = map[string]string{
		"openai":   "https://api.openai.com/v1",
		"deepseek": "https://api.deepseek.com/v1",
		"qwen":     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	}

	defaultModels = map[string]string{
		"openai":   DefaultModel,
		"deepseek": "deepseek-chat",
		"qwen":     "qwen-plus",
	}
)
