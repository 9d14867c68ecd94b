package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

// Conversation roles accepted on the wire. The Gemini API only knows
// "user" and "model"; assistant maps to model.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerateChat performs one chat completion over the message history with
// the given system instruction. Messages must alternate user/assistant and
// end with a user turn; system content belongs in the instruction, not the
// history. Like GenerateJSON, there is no retry.
func (c *GeminiClient) GenerateChat(ctx context.Context, system string, messages []ChatMessage, temperature float32) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages to send")
	}

	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(c.config.Generation.MaxOutputTokens)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	history := make([]*genai.Content, 0, len(messages)-1)
	for _, m := range messages[:len(messages)-1] {
		history = append(history, &genai.Content{
			Role:  genaiRole(m.Role),
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}

	session := model.StartChat()
	session.History = history

	last := messages[len(messages)-1]
	resp, err := session.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return "", fmt.Errorf("failed to generate chat response: %w", err)
	}

	return extractTextFromResponse(resp)
}

func genaiRole(role string) string {
	if role == RoleAssistant {
		return "model"
	}
	return "user"
}
