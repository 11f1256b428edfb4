package narrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/gemini"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/openai"
)

const systemPrompt = "You are a medical educational assistant specializing in asthma and allergy topics."

type openAIInvoker struct {
	client openai.Client
}

func NewOpenAIInvoker(client openai.Client) Invoker {
	return &openAIInvoker{client: client}
}

func (o *openAIInvoker) Invoke(ctx context.Context, req Request) (map[string]any, error) {
	if req.UseInternetContext {
		return o.client.GenerateGroundedJSON(ctx, systemPrompt, req.Prompt, req.Shape.Name, req.Shape.Schema)
	}
	return o.client.GenerateJSON(ctx, systemPrompt, req.Prompt, req.Shape.Name, req.Shape.Schema)
}

type geminiInvoker struct {
	client *gemini.Client
}

func NewGeminiInvoker(client *gemini.Client) Invoker {
	return &geminiInvoker{client: client}
}

func (g *geminiInvoker) Invoke(ctx context.Context, req Request) (map[string]any, error) {
	return g.client.GenerateJSON(ctx, systemPrompt, req.Prompt, req.Shape.Schema, req.UseInternetContext)
}

// New builds the configured provider: openai, gemini or demo.
func New(ctx context.Context, log *logger.Logger, provider string) (Invoker, error) {
	name := strings.ToLower(strings.TrimSpace(provider))
	switch name {
	case "openai":
		c, err := openai.NewClient(log)
		if err != nil {
			return nil, fmt.Errorf("openai provider: %w", err)
		}
		return Instrument(name, NewOpenAIInvoker(c), log), nil
	case "gemini":
		c, err := gemini.NewClient(ctx, log)
		if err != nil {
			return nil, fmt.Errorf("gemini provider: %w", err)
		}
		return Instrument(name, NewGeminiInvoker(c), log), nil
	case "", "demo":
		return Instrument("demo", NewDemoInvoker(nil, nil), log), nil
	default:
		return nil, fmt.Errorf("unknown NARRATIVE_PROVIDER %q (want openai, gemini or demo)", provider)
	}
}
