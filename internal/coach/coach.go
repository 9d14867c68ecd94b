// Package coach implements the conversational career-coach surface: a
// multi-turn chat with a fixed system instruction, optional resume and
// vent context, and a cleanup pass over the model's reply.
package coach

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/charlie2bored/shftrr/internal/llm"
	"github.com/charlie2bored/shftrr/internal/prompts"
)

const promptFile = "career_coach.json"

// defaultTemperature is used when the request does not specify one.
const defaultTemperature float32 = 0.7

// Message is one conversation turn from the client.
type Message struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content" validate:"required"`
}

// Request is the chat payload. ResumeText and VentText, when present, are
// injected as context ahead of the conversation.
type Request struct {
	Messages    []Message `json:"messages" validate:"required,min=1,dive"`
	ResumeText  string    `json:"resumeText,omitempty"`
	VentText    string    `json:"ventText,omitempty"`
	Temperature *float32  `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=2"`
}

// ValidationError reports what was wrong with a chat request.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid chat request: %s", strings.Join(e.Issues, "; "))
}

// ErrNotConfigured is returned when no model backs the coach. Unlike plan
// generation there is no deterministic fallback for a conversation.
type ErrNotConfigured struct{}

func (e *ErrNotConfigured) Error() string {
	return "career coach is not configured"
}

// Gateway produces a chat completion. *llm.GeminiClient satisfies it.
type Gateway interface {
	GenerateChat(ctx context.Context, system string, messages []llm.ChatMessage, temperature float32) (string, error)
}

// Coach drives the conversational endpoint.
type Coach struct {
	gateway Gateway
	logger  *slog.Logger
}

// NewCoach builds a Coach. gateway may be nil when no model is configured.
func NewCoach(gateway Gateway, logger *slog.Logger) *Coach {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coach{gateway: gateway, logger: logger}
}

var validate = validator.New()

// ValidateRequest checks a chat request, collecting every problem.
func ValidateRequest(req *Request) error {
	if req == nil {
		return &ValidationError{Issues: []string{"request is required"}}
	}
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Issues: []string{err.Error()}}
	}
	issues := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, strings.TrimPrefix(fe.Namespace(), "Request.")+" failed "+fe.Tag()+" validation")
	}
	return &ValidationError{Issues: issues}
}

// Respond runs one turn of the conversation and returns the cleaned reply.
func (c *Coach) Respond(ctx context.Context, req *Request) (string, error) {
	if err := ValidateRequest(req); err != nil {
		return "", err
	}
	if c.gateway == nil {
		return "", &ErrNotConfigured{}
	}

	system := prompts.MustGet(promptFile, "system_instruction")
	if ctxMsg := contextSection(req); ctxMsg != "" {
		system += "\n\n" + ctxMsg
	}

	// System-role turns carry instructions, not conversation; fold them
	// into the system prompt so the history alternates user/assistant.
	history := make([]llm.ChatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		if m.Role == llm.RoleSystem {
			system += "\n\n" + m.Content
			continue
		}
		history = append(history, llm.ChatMessage{Role: m.Role, Content: m.Content})
	}
	if len(history) == 0 {
		return "", &ValidationError{Issues: []string{"at least one user or assistant message is required"}}
	}

	temperature := defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	raw, err := c.gateway.GenerateChat(ctx, system, history, temperature)
	if err != nil {
		c.logger.Warn("coach chat generation failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to generate coach reply: %w", err)
	}

	return CleanReply(raw), nil
}

// contextSection renders the optional user context block the same way for
// every request that carries it.
func contextSection(req *Request) string {
	if req.ResumeText == "" && req.VentText == "" {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Context about the user:\n")
	if req.ResumeText != "" {
		sb.WriteString("Resume: " + req.ResumeText + "\n\n")
	}
	if req.VentText != "" {
		sb.WriteString("Current situation: " + req.VentText + "\n\n")
	}
	return sb.String()
}
