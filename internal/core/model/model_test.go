package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNodeType(t *testing.T) {
	nt, err := ParseNodeType(" Organization ")
	require.NoError(t, err)
	assert.Equal(t, NodeTypeOrganization, nt)

	_, err = ParseNodeType("planet")
	assert.ErrorIs(t, err, ErrUnknownNodeType)
}

func TestNodeJSON_FlattensMetrics(t *testing.T) {
	n := Node{ID: "dmowski", Label: "Roman Dmowski", Type: NodeTypePerson, Importance: 1}
	n.Metrics.PageRank = 0.25
	n.Metrics.Community = 2

	data, err := json.Marshal(n)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "person", fields["type"])
	assert.Equal(t, 0.25, fields["pagerank"])
	assert.Equal(t, float64(2), fields["community"])
	assert.NotContains(t, fields, "Metrics")

	var back Node
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, n, back)
}

func TestNodeJSON_RejectsUnknownType(t *testing.T) {
	var n Node
	err := json.Unmarshal([]byte(`{"id":"x","type":"planet"}`), &n)
	assert.ErrorIs(t, err, ErrUnknownNodeType)
}

func TestNodeDelta_ToNode(t *testing.T) {
	n, err := NodeDelta{ID: "sn", Type: "organization", Importance: 0.7}.ToNode()
	require.NoError(t, err)
	assert.Equal(t, "sn", n.Label, "label falls back to id")
	assert.Equal(t, NodeTypeOrganization, n.Type)

	_, err = NodeDelta{ID: "x", Type: "weapon"}.ToNode()
	assert.Error(t, err)
}

func TestDeltaUnmarshal_Lenient(t *testing.T) {
	var d Delta
	require.NoError(t, json.Unmarshal([]byte(`{"nodes": "oops"}`), &d))
	assert.True(t, d.Empty())

	require.NoError(t, json.Unmarshal([]byte(`{"nodes": null, "edges": {"a": 1}}`), &d))
	assert.True(t, d.Empty())

	payload := `{
		"nodes": [{"id": "a", "type": "person"}, 42, {"id": "b", "type": "event"}],
		"edges": [{"source": "a", "target": {"id": "b", "x": 1.5}}, "junk"]
	}`
	require.NoError(t, json.Unmarshal([]byte(payload), &d))
	require.Len(t, d.Nodes, 2)
	assert.Equal(t, "b", d.Nodes[1].ID)
	require.Len(t, d.Edges, 1)
	assert.Equal(t, "a", d.Edges[0].Source)
	assert.IsType(t, map[string]any{}, d.Edges[0].Target)
	assert.Equal(t, 1, d.SkippedNodes)
	assert.Equal(t, 1, d.SkippedEdges)

	require.NoError(t, json.Unmarshal([]byte(`{"nodes": []}`), &d))
	assert.Zero(t, d.SkippedNodes, "counts reset on reuse")
}

func TestDeltaUnmarshal_LooseScalars(t *testing.T) {
	payload := `{
		"nodes": [
			{"id": "D", "label": "Dmowski", "type": "person", "importance": "0.8"},
			{"id": 7, "type": "event", "importance": 0.4, "dates": 1926},
			{"id": "E", "type": "concept", "importance": "high"}
		],
		"edges": [{"source": "D", "target": "E", "label": 7}]
	}`
	var d Delta
	require.NoError(t, json.Unmarshal([]byte(payload), &d))

	require.Len(t, d.Nodes, 3)
	assert.Equal(t, 0.8, d.Nodes[0].Importance)
	assert.Equal(t, "7", d.Nodes[1].ID)
	assert.Equal(t, "1926", d.Nodes[1].Dates)
	assert.Equal(t, 0.4, d.Nodes[1].Importance)
	assert.Equal(t, 0.0, d.Nodes[2].Importance)
	assert.Zero(t, d.SkippedNodes)

	require.Len(t, d.Edges, 1)
	assert.Equal(t, "7", d.Edges[0].Label)
	assert.Equal(t, "D", d.Edges[0].Source)
}
