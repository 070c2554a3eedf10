package model

import (
	"bytes"
	"encoding/json"
)

// Edge is a canonical undirected relation between two node identities.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label,omitempty"`
}

// RawEdge is an edge as it arrives from outside the core. Source and Target
// hold either a bare identity string or a node-like object carrying an id
// (a map decoded from JSON, a Node, or anything exposing NodeID).
type RawEdge struct {
	Source any    `json:"source"`
	Target any    `json:"target"`
	Label  string `json:"label,omitempty"`
}

// UnmarshalJSON accepts any scalar label, so a numeric label does not cost
// the edge its endpoints.
func (e *RawEdge) UnmarshalJSON(data []byte) error {
	var aux struct {
		Source any `json:"source"`
		Target any `json:"target"`
		Label  any `json:"label"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*e = RawEdge{Source: aux.Source, Target: aux.Target, Label: scalarString(aux.Label)}
	return nil
}

// Raw lifts a canonical edge back into the raw form.
func (e Edge) Raw() RawEdge {
	return RawEdge{Source: e.Source, Target: e.Target, Label: e.Label}
}

// Delta is a proposed set of nodes and edges to fold into the graph.
type Delta struct {
	Nodes []NodeDelta `json:"nodes"`
	Edges []RawEdge   `json:"edges"`

	// SkippedNodes and SkippedEdges count array elements the decoder could
	// not read at all, such as a bare number in place of an object.
	SkippedNodes int `json:"-"`
	SkippedEdges int `json:"-"`
}

// Empty reports whether the delta proposes nothing.
func (d Delta) Empty() bool {
	return len(d.Nodes) == 0 && len(d.Edges) == 0
}

// UnmarshalJSON decodes a delta leniently: a missing, null or non-array
// "nodes"/"edges" field is treated as empty, and individual elements that
// cannot be decoded are counted in SkippedNodes/SkippedEdges.
func (d *Delta) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Nodes, d.SkippedNodes = nil, 0
	for _, item := range rawArray(raw["nodes"]) {
		var n NodeDelta
		if err := json.Unmarshal(item, &n); err != nil {
			d.SkippedNodes++
			continue
		}
		d.Nodes = append(d.Nodes, n)
	}

	d.Edges, d.SkippedEdges = nil, 0
	for _, item := range rawArray(raw["edges"]) {
		var e RawEdge
		if err := json.Unmarshal(item, &e); err != nil {
			d.SkippedEdges++
			continue
		}
		d.Edges = append(d.Edges, e)
	}
	return nil
}

func rawArray(msg json.RawMessage) []json.RawMessage {
	msg = bytes.TrimSpace(msg)
	if len(msg) == 0 || msg[0] != '[' {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(msg, &items); err != nil {
		return nil
	}
	return items
}
