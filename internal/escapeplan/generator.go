package escapeplan

import (
	"context"
	"log/slog"
	"time"

	"github.com/charlie2bored/shftrr/internal/assessment"
	"github.com/charlie2bored/shftrr/internal/types"
)

// Gateway produces a raw JSON plan for a compiled prompt. *llm.GeminiClient
// satisfies it. A nil Gateway means no model is configured and every plan
// comes from the deterministic path.
type Gateway interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// Plan sources reported by Generate.
const (
	SourceModel    = "ai"
	SourceFallback = "fallback"
)

// Generator orchestrates plan creation: validate the input, try the model
// once, fall back on any failure. Generate never returns an error for a
// valid input.
type Generator struct {
	gateway Gateway
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the timestamp source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator builds a Generator. gateway may be nil.
func NewGenerator(gateway Gateway, logger *slog.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Generator{
		gateway: gateway,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces a complete plan for the input and reports where it came
// from, SourceModel or SourceFallback. Input validation errors are returned
// to the caller; every other failure mode is absorbed by the fallback so the
// user always receives a plan.
func (g *Generator) Generate(ctx context.Context, in *types.EscapePlanInput, rec *assessment.Record) (*types.EscapePlanOutput, string, error) {
	if err := ValidateInput(in); err != nil {
		return nil, "", err
	}

	if g.gateway == nil {
		g.logger.Info("no model configured, using deterministic plan")
		return Fallback(in, g.now()), SourceFallback, nil
	}

	out, err := g.generateWithModel(ctx, in, rec)
	if err != nil {
		g.logger.Warn("model generation failed, using deterministic plan",
			slog.String("reason", failureKind(err)),
			slog.String("error", err.Error()))
		return Fallback(in, g.now()), SourceFallback, nil
	}
	return out, SourceModel, nil
}

func (g *Generator) generateWithModel(ctx context.Context, in *types.EscapePlanInput, rec *assessment.Record) (*types.EscapePlanOutput, error) {
	prompt := BuildPrompt(in, rec)

	raw, err := g.gateway.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	return ParseResponse(raw, g.now())
}
