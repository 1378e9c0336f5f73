package questiongen

import "context"

// Params describes the exam to generate.
type Params struct {
	MathTopics     []string
	LiteracyTopics []string
	NumeracyCount  int
	LiteracyCount  int
}

// Generator produces a full exam's worth of questions.
type Generator interface {
	Generate(ctx context.Context, p Params) ([]Question, error)
}

// Config holds generation tuning knobs.
type Config struct {
	// Temperature is kept low so question sets stay on-topic and the
	// structured output stays parseable.
	Temperature float64

	MaxTokens int
}

// DefaultConfig returns the generation settings used in production.
func DefaultConfig() Config {
	return Config{
		Temperature: 0.15,
		MaxTokens:   16384,
	}
}
