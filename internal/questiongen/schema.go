package questiongen

import "github.com/edugen/tka/internal/llm"

// QuestionSetSchema defines the JSON schema for a generated exam: a
// top-level array of question objects.
var QuestionSetSchema = &llm.Schema{
	Name:        "tka-question-set",
	Description: "A complete TKA practice exam as an array of questions",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "Unique identifier for the question",
				},
				"subject": map[string]any{
					"type":        "string",
					"description": "Either \"Matematika\" or \"Bahasa Indonesia\"",
				},
				"topic": map[string]any{
					"type":        "string",
					"description": "The curriculum topic this question covers",
				},
				"type": map[string]any{
					"type":        "string",
					"enum":        []any{"single-choice", "multi-select", "category-classification"},
					"description": "How the learner answers",
				},
				"cognitiveLevel": map[string]any{
					"type":        "string",
					"enum":        []any{"L1", "L2", "L3"},
					"description": "L1 knowing, L2 applying, L3 reasoning",
				},
				"question": map[string]any{
					"type":        "string",
					"description": "The question prompt in Indonesian",
				},
				"passage": map[string]any{
					"type":        "string",
					"description": "Reading excerpt for literacy questions, empty otherwise",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Answer options, or items to classify for category questions",
				},
				"categories": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Classification buckets for category questions, empty otherwise",
				},
				"correctAnswer": map[string]any{
					"description": "The option text, an array of option texts, or an item-to-category object, matching the question type",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "Why the correct answer is correct, in Indonesian",
				},
			},
			"required": []any{"subject", "topic", "type", "cognitiveLevel", "question", "options", "correctAnswer", "explanation"},
		},
	},
}
