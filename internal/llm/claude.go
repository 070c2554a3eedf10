package llm

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"
)

const defaultClaudeMaxTokens = 4096

type ClaudeClient struct {
	client *anthropic.Client
	params Params
}

func NewClaudeClient(apiKey string, baseURL string, p Params) *ClaudeClient {
	var opts []anthropic.ClientOption
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}
	if p.MaxTokens <= 0 {
		p.MaxTokens = defaultClaudeMaxTokens
	}

	return &ClaudeClient{
		client: anthropic.NewClient(apiKey, opts...),
		params: p,
	}
}

func (c *ClaudeClient) Generate(ctx context.Context, prompt string) (string, error) {
	req := anthropic.MessagesRequest{
		Model: anthropic.Model(c.params.Model),
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(prompt),
		},
		MaxTokens: c.params.MaxTokens,
	}
	if c.params.Temperature > 0 {
		t := c.params.Temperature
		req.Temperature = &t
	}
	if c.params.JSON {
		req.System = "Respond with a single JSON object and nothing else."
	}

	resp, err := c.client.CreateMessages(ctx, req)
	if err != nil {
		return "", err
	}

	for _, content := range resp.Content {
		if content.Text != nil {
			return *content.Text, nil
		}
	}
	return "", fmt.Errorf("no response content")
}
