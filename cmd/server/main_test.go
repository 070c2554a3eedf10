package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/kgraph/internal/core/merge"
)

func TestMetricsCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "graph.json")
	out := filepath.Join(dir, "annotated.json")
	cfgPath := filepath.Join(dir, "config.toml")

	require.NoError(t, os.WriteFile(cfgPath, []byte("[log]\nlevel = \"error\"\n"), 0o600))
	require.NoError(t, os.WriteFile(in, []byte(`{
		"nodes": [
			{"id": "a", "label": "A", "type": "person"},
			{"id": "b", "label": "B", "type": "organization"},
			{"id": "c", "label": "C", "type": "event"}
		],
		"edges": [
			{"source": {"id": "a"}, "target": "b"},
			{"source": "b", "target": {"id": "c", "x": 1}},
			{"source": "c", "target": "ghost"}
		]
	}`), 0o600))

	root := newRootCmd()
	root.SetArgs([]string{"metrics", "--config", cfgPath, "--in", in, "--out", out})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var state merge.State
	require.NoError(t, json.Unmarshal(data, &state))

	require.Len(t, state.Nodes, 3)
	assert.Len(t, state.Edges, 2)
	assert.Equal(t, 1.0, state.Nodes[1].Betweenness)
	assert.Equal(t, 1.0, state.Nodes[1].DegreeCentrality)
}

func TestMetricsCommand_Stdout(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "graph.json")
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[log]\nlevel = \"error\"\n"), 0o600))
	require.NoError(t, os.WriteFile(in, []byte(`{"nodes": [{"id": "solo", "type": "concept"}]}`), 0o600))

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"metrics", "-c", cfgPath, "--in", in})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), `"pagerank": 1`)
}

func TestMetricsCommand_RequiresInput(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"metrics"})
	assert.Error(t, root.Execute())
}

func TestLoadConfig_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("STORE_BACKEND", "memory")

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, "louvain", cfg.Metrics.Community)

	_, err = loadConfig("does-not-exist.toml")
	assert.Error(t, err, "an explicit path must exist")
}
