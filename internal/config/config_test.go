package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[llm]
provider = "openai"
chat_model = "gpt-4o-mini"

[store]
backend = "redis"

[metrics]
eigen_max_iterations = 5
community = "label_propagation"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.ChatModel)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.AnalysisModel, "untouched keys keep defaults")
	assert.Equal(t, "redis", cfg.Store.Backend)
	assert.Equal(t, 5, cfg.Metrics.EigenMaxIterations)
	assert.Equal(t, 0.85, cfg.Metrics.PageRankAlpha)
	assert.Equal(t, "label_propagation", cfg.Metrics.Community)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "failed to read config file")

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[llm\nprovider="), 0o600))
	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to parse TOML")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "claude")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("STORE_BACKEND", "memgraph")
	t.Setenv("MEMGRAPH_URI", "bolt://graph:7687")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("PORT", "9090")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, "gem-key", cfg.LLM.APIKey)
	assert.Equal(t, "memgraph", cfg.Store.Backend)
	assert.Equal(t, "bolt://graph:7687", cfg.Memgraph.URI)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config", "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
