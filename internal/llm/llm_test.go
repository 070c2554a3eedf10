package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/kgraph/internal/config"
)

func TestOpenAIClient_Generate(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"{\"nodes\":[]}"}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("key", srv.URL, Params{Model: "gpt-test", JSON: true, Temperature: 0.2})
	out, err := c.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, `{"nodes":[]}`, out)

	assert.Equal(t, "gpt-test", got["model"])
	format, ok := got["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", format["type"])
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewOpenAIClient("key", srv.URL, Params{Model: "m"}).Generate(context.Background(), "x")
	assert.ErrorContains(t, err, "no response choices")
}

func TestClaudeClient_Generate(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"m1","type":"message","role":"assistant","content":[{"type":"text","text":"Witaj"}],"stop_reason":"end_turn"}`))
	}))
	defer srv.Close()

	c := NewClaudeClient("key", srv.URL, Params{Model: "claude-test"})
	out, err := c.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Witaj", out)
	assert.Equal(t, "claude-test", got["model"])
	assert.EqualValues(t, defaultClaudeMaxTokens, got["max_tokens"])
}

func TestNewClient_Providers(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default().LLM

	cfg.Provider = "OpenAI"
	c, err := NewClient(ctx, cfg, Params{Model: "m", JSON: true})
	require.NoError(t, err)
	oc, ok := c.(*OpenAIClient)
	require.True(t, ok)
	assert.Zero(t, oc.params.Temperature, "sampling is never inherited from the chat settings")
	assert.Zero(t, oc.params.TopP)
	assert.Equal(t, cfg.MaxTokens, oc.params.MaxTokens)

	c, err = NewClient(ctx, cfg, Params{Model: "m", Temperature: cfg.Temperature, TopP: cfg.TopP})
	require.NoError(t, err)
	oc = c.(*OpenAIClient)
	assert.Equal(t, cfg.Temperature, oc.params.Temperature)
	assert.Equal(t, cfg.TopP, oc.params.TopP)

	cfg.Provider = "claude"
	c, err = NewClient(ctx, cfg, Params{Model: "m"})
	require.NoError(t, err)
	assert.IsType(t, &ClaudeClient{}, c)

	cfg.Provider = "ollama"
	c, err = NewClient(ctx, cfg, Params{Model: "llama3"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)

	cfg.Provider = "watson"
	_, err = NewClient(ctx, cfg, Params{})
	assert.ErrorContains(t, err, "unsupported llm provider")
}
