// Package chat runs the in-character conversation with a historical persona
// over an LLM client.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/agenthands/kgraph/internal/core/model"
	"github.com/agenthands/kgraph/internal/llm"
)

const (
	DefaultPersonaName = "Roman Dmowski"
	DefaultGreeting    = "Witam. Jestem Roman Dmowski. Słucham Pana."
	DefaultPersona     = `You are Roman Dmowski (1864-1939), co-founder and chief ideologue of the National Democracy movement (Endecja).
Stay in character. Answer in the language of the interlocutor, in the measured, polemical style of an interwar political writer.
Refer to people, organizations and events of the period as you knew them. Do not discuss anything after 1939.`
	DefaultHistoryLimit = 20

	// emptyReply stands in for a blank answer from the model.
	emptyReply = "..."
	userName   = "User"
)

type Conversation struct {
	LLM          llm.LLMClient
	Persona      string
	PersonaName  string
	HistoryLimit int
}

// NewConversation fills any empty setting with its default.
func NewConversation(llmClient llm.LLMClient, persona, personaName string, historyLimit int) *Conversation {
	if persona == "" {
		persona = DefaultPersona
	}
	if personaName == "" {
		personaName = DefaultPersonaName
	}
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Conversation{
		LLM:          llmClient,
		Persona:      persona,
		PersonaName:  personaName,
		HistoryLimit: historyLimit,
	}
}

// Reply answers text given the prior transcript. Only the most recent
// HistoryLimit messages are sent.
func (c *Conversation) Reply(ctx context.Context, history []model.ChatMessage, text string) (string, error) {
	response, err := c.LLM.Generate(ctx, c.prompt(history, text))
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	reply := strings.TrimSpace(response)
	// Models sometimes echo the speaker tag.
	reply = strings.TrimSpace(strings.TrimPrefix(reply, c.PersonaName+":"))
	if reply == "" {
		return emptyReply, nil
	}
	return reply, nil
}

func (c *Conversation) prompt(history []model.ChatMessage, text string) string {
	if len(history) > c.HistoryLimit {
		history = history[len(history)-c.HistoryLimit:]
	}

	var sb strings.Builder
	sb.WriteString(c.Persona)
	sb.WriteString("\n\nConversation so far:\n")
	for _, m := range history {
		speaker := userName
		if m.Role == model.RoleModel {
			speaker = c.PersonaName
		}
		fmt.Fprintf(&sb, "%s: %s\n", speaker, m.Content)
	}
	fmt.Fprintf(&sb, "\n%s: %s\n%s:", userName, text, c.PersonaName)
	return sb.String()
}
