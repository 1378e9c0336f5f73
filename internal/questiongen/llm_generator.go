package questiongen

import (
	"context"
	"fmt"

	"github.com/edugen/tka/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate asks the model for a complete exam and normalizes the
// response. The raw content goes through ParseQuestions rather than
// strict schema validation because models routinely wrap the array in
// fences or prose.
func (g *LLMGenerator) Generate(ctx context.Context, p Params) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "exam-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(p)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("exam generation failed: %w", err)
	}

	return ParseQuestions(string(resp.Content))
}
