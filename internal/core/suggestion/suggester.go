// Package suggestion asks an LLM for new nodes and edges that would enrich
// the current graph.
package suggestion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/agenthands/kgraph/internal/core/common"
	"github.com/agenthands/kgraph/internal/core/model"
	"github.com/agenthands/kgraph/internal/llm"
)

// ErrMalformedResponse is returned when the model's answer holds no
// decodable JSON object.
var ErrMalformedResponse = errors.New("malformed suggestion response")

// Placeholders substituted into the analysis prompt. Substitution is a single
// pass, so placeholder text inside the uploaded material is left alone.
const (
	ContextPlaceholder = "{{context}}"
	GraphPlaceholder   = "{{graph}}"
)

// DefaultPrompt receives the uploaded source text and the graph JSON.
const DefaultPrompt = `Analyse the attached Endecja knowledge graph and any uploaded texts.
Context from files: {{context}}

Suggest 5-12 historically accurate new nodes and edges (1918-1939 period) that are missing or would enrich the graph.
Focus on connections to existing nodes.

Existing Graph: {{graph}}

Return ONLY valid JSON with this structure:
{
  "nodes": [{ "id": "snake_case_id", "label": "Label", "type": "person|organization|event|concept|publication", "dates": "optional", "description": "...", "importance": 0.5 }],
  "edges": [{ "source": "id_1", "target": "id_2", "label": "relationship" }]
}
Do not wrap in markdown code blocks. Just the JSON.`

type Suggester struct {
	LLM    llm.LLMClient
	Prompt string
	log    *zap.Logger
}

// NewSuggester returns a suggester using prompt, or DefaultPrompt when empty.
// prompt refers to its inputs through ContextPlaceholder and GraphPlaceholder.
func NewSuggester(llmClient llm.LLMClient, prompt string, logger *zap.Logger) *Suggester {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.Named("suggestion")
	if !strings.Contains(prompt, GraphPlaceholder) {
		log.Warn("Analysis prompt never references the graph", zap.String("placeholder", GraphPlaceholder))
	}
	return &Suggester{
		LLM:    llmClient,
		Prompt: prompt,
		log:    log,
	}
}

type graphNode struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

type graphContext struct {
	Nodes []graphNode  `json:"nodes"`
	Edges []model.Edge `json:"edges"`
}

// Suggest proposes a delta for the graph. sourceText is the user's uploaded
// material and may be empty. Missing or non-array fields in the answer
// decode to empty lists.
func (s *Suggester) Suggest(ctx context.Context, nodes []model.Node, edges []model.Edge, sourceText string) (model.Delta, error) {
	gc := graphContext{
		Nodes: make([]graphNode, 0, len(nodes)),
		Edges: edges,
	}
	if gc.Edges == nil {
		gc.Edges = []model.Edge{}
	}
	for _, n := range nodes {
		gc.Nodes = append(gc.Nodes, graphNode{ID: n.ID, Label: n.Label, Description: n.Description})
	}
	graphJSON, err := json.Marshal(gc)
	if err != nil {
		return model.Delta{}, fmt.Errorf("failed to encode graph context: %w", err)
	}

	prompt := strings.NewReplacer(
		ContextPlaceholder, sourceText,
		GraphPlaceholder, string(graphJSON),
	).Replace(s.Prompt)

	response, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		return model.Delta{}, fmt.Errorf("failed to generate suggestions: %w", err)
	}

	delta, err := common.ParseJSON[model.Delta](response)
	if err != nil {
		s.log.Warn("Unparseable suggestion response", zap.Error(err), zap.Int("length", len(response)))
		return model.Delta{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	s.log.Info("Suggestions received",
		zap.Int("nodes", len(delta.Nodes)),
		zap.Int("edges", len(delta.Edges)))
	return delta, nil
}
