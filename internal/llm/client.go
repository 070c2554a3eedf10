package llm

import (
	"context"
)

// LLMClient turns a single prompt into text.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Params tunes one client. A client is bound to one model, so the analysis
// and chat collaborators each get their own.
type Params struct {
	Model       string
	Temperature float32
	TopP        float32
	MaxTokens   int
	// JSON asks the provider for a JSON-only response where it supports it.
	JSON bool
}
