package questiongen

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// questionPayload is the raw per-question shape before normalization.
// CorrectAnswer stays raw so the soft-parse step can see exactly what
// the model emitted.
type questionPayload struct {
	ID             string          `json:"id"`
	Subject        string          `json:"subject"`
	Topic          string          `json:"topic"`
	Type           string          `json:"type"`
	CognitiveLevel string          `json:"cognitiveLevel"`
	Question       string          `json:"question"`
	Passage        string          `json:"passage"`
	Options        []string        `json:"options"`
	Categories     []string        `json:"categories"`
	CorrectAnswer  json.RawMessage `json:"correctAnswer"`
	Explanation    string          `json:"explanation"`
}

// ParseQuestions turns raw model output into normalized questions.
// The pipeline: strip markdown fences, slice the outermost JSON array,
// decode, then normalize each item. An empty array is ErrEmptyResult;
// undecodable input is a MalformedResponseError.
func ParseQuestions(raw string) ([]Question, error) {
	cleaned := cleanResponse(raw)

	var payloads []questionPayload
	if err := json.Unmarshal([]byte(cleaned), &payloads); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Err: err}
	}
	if len(payloads) == 0 {
		return nil, ErrEmptyResult
	}

	out := make([]Question, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, normalizeQuestion(p))
	}
	return out, nil
}

// cleanResponse removes ```json fences and slices the text down to the
// outermost [ ... ] pair. Models wrap structured output in prose often
// enough that this runs on every response.
func cleanResponse(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return s
}

func normalizeQuestion(p questionPayload) Question {
	q := Question{
		ID:             p.ID,
		Subject:        normalizeSubject(p.Subject),
		Topic:          p.Topic,
		Type:           normalizeType(p.Type),
		CognitiveLevel: normalizeLevel(p.CognitiveLevel),
		Text:           p.Question,
		Passage:        p.Passage,
		Options:        p.Options,
		Categories:     p.Categories,
		CorrectAnswer:  parseCorrectAnswer(p.CorrectAnswer),
		Explanation:    p.Explanation,
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return q
}

// parseCorrectAnswer decodes the raw value, then soft-parses JSON-shaped
// strings: a string whose content looks like a JSON array or object is
// re-parsed, and kept as the raw string when that fails. Models
// double-encode multi-select answers often enough to make this worth it.
func parseCorrectAnswer(raw json.RawMessage) AnswerValue {
	if len(raw) == 0 {
		return Null()
	}

	var v AnswerValue
	if err := v.UnmarshalJSON(raw); err != nil {
		return Null()
	}

	if v.Kind == KindString {
		inner := strings.TrimSpace(v.Str)
		if strings.HasPrefix(inner, "[") || strings.HasPrefix(inner, "{") {
			var reparsed AnswerValue
			if err := reparsed.UnmarshalJSON([]byte(inner)); err == nil {
				return reparsed
			}
			// Not actually JSON: keep the raw string.
		}
	}
	return v
}

// normalizeSubject maps whatever subject label the model used onto the
// two canonical sections. Anything mentioning math or numeracy is
// Matematika; everything else is Bahasa Indonesia.
func normalizeSubject(s string) Subject {
	lower := strings.ToLower(strings.TrimSpace(s))
	if strings.Contains(lower, "mat") || strings.Contains(lower, "num") {
		return SubjectMath
	}
	return SubjectIndonesian
}

func normalizeType(s string) QuestionType {
	switch QuestionType(strings.TrimSpace(s)) {
	case TypeMultiSelect:
		return TypeMultiSelect
	case TypeCategoryClassification:
		return TypeCategoryClassification
	default:
		return TypeSingleChoice
	}
}

func normalizeLevel(s string) CognitiveLevel {
	switch CognitiveLevel(strings.ToUpper(strings.TrimSpace(s))) {
	case LevelApplying:
		return LevelApplying
	case LevelReasoning:
		return LevelReasoning
	default:
		return LevelKnowing
	}
}
