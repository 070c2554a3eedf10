package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/agenthands/kgraph/internal/config"
)

// NewClient returns the provider named by cfg.Provider bound to p.Model.
// Sampling settings are taken from p only; a zero value leaves the provider
// default in place. MaxTokens falls back to cfg.
func NewClient(ctx context.Context, cfg config.LLMConfig, p Params) (LLMClient, error) {
	provider := strings.ToLower(cfg.Provider)
	if p.MaxTokens == 0 {
		p.MaxTokens = cfg.MaxTokens
	}

	switch provider {
	case "gemini":
		c, err := NewGeminiClient(ctx, cfg.APIKey, p)
		if err != nil {
			return nil, err
		}
		return c, nil

	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.BaseURL, p), nil

	case "claude", "anthropic":
		return NewClaudeClient(cfg.APIKey, cfg.BaseURL, p), nil

	case "ollama":
		// Ollama speaks the OpenAI wire protocol under /v1.
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama" // ignored by the server but required by the client
		}
		return NewOpenAIClient(apiKey, baseURL, p), nil

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
