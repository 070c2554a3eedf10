package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownNodeType is returned when a node type is not one of the five known variants.
var ErrUnknownNodeType = errors.New("unknown node type")

// NodeType is the closed set of entity kinds a node can represent.
type NodeType int

const (
	NodeTypePerson NodeType = iota
	NodeTypeOrganization
	NodeTypeEvent
	NodeTypeConcept
	NodeTypePublication
)

var nodeTypeNames = [...]string{
	NodeTypePerson:       "person",
	NodeTypeOrganization: "organization",
	NodeTypeEvent:        "event",
	NodeTypeConcept:      "concept",
	NodeTypePublication:  "publication",
}

// ParseNodeType maps a case-insensitive name onto a NodeType.
func ParseNodeType(s string) (NodeType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range nodeTypeNames {
		if n == name {
			return NodeType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNodeType, s)
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
	return nodeTypeNames[t]
}

func (t NodeType) MarshalJSON() ([]byte, error) {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNodeType, int(t))
	}
	return json.Marshal(nodeTypeNames[t])
}

func (t *NodeType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("node type must be a string: %w", err)
	}
	parsed, err := ParseNodeType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Metrics holds the structural annotations computed for a node.
// The whole struct is replaced on every recomputation.
type Metrics struct {
	DegreeCentrality float64 `json:"degreeCentrality"`
	Betweenness      float64 `json:"betweenness"`
	Closeness        float64 `json:"closeness"`
	Eigenvector      float64 `json:"eigenvector"`
	PageRank         float64 `json:"pagerank"`
	Clustering       float64 `json:"clustering"`
	Community        int     `json:"community"`
}

// Node is the analytics-facing entity record. Renderer state (positions,
// velocities) is never part of it.
type Node struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Type        NodeType `json:"type"`
	Dates       string   `json:"dates,omitempty"`
	Description string   `json:"description,omitempty"`
	Importance  float64  `json:"importance"`

	Metrics
}

// NodeID lets a Node be used directly as an edge endpoint.
func (n Node) NodeID() string {
	return n.ID
}

// NodeDelta is a node proposed by the suggestion source or a user upload.
// Type stays a plain string until the merge validates it.
type NodeDelta struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Type        string  `json:"type"`
	Dates       string  `json:"dates,omitempty"`
	Description string  `json:"description,omitempty"`
	Importance  float64 `json:"importance"`
}

// UnmarshalJSON reads every field as a loose scalar: numbers become strings
// where a string is expected, and importance may arrive as a numeric string.
// Validation is left to ToNode so rejections carry a reason.
func (d *NodeDelta) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID          any `json:"id"`
		Label       any `json:"label"`
		Type        any `json:"type"`
		Dates       any `json:"dates"`
		Description any `json:"description"`
		Importance  any `json:"importance"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*d = NodeDelta{
		ID:          scalarString(aux.ID),
		Label:       scalarString(aux.Label),
		Type:        scalarString(aux.Type),
		Dates:       scalarString(aux.Dates),
		Description: scalarString(aux.Description),
		Importance:  scalarFloat(aux.Importance),
	}
	return nil
}

// ToNode validates the delta and converts it into a Node with zeroed metrics.
func (d NodeDelta) ToNode() (Node, error) {
	t, err := ParseNodeType(d.Type)
	if err != nil {
		return Node{}, err
	}
	label := d.Label
	if label == "" {
		label = d.ID
	}
	return Node{
		ID:          d.ID,
		Label:       label,
		Type:        t,
		Dates:       d.Dates,
		Description: d.Description,
		Importance:  d.Importance,
	}, nil
}

func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

func scalarFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
