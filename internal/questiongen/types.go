// Package questiongen generates TKA practice exams through an LLM
// provider and normalizes the model output into well-formed questions.
package questiongen

// Subject is the canonical exam section a question belongs to.
type Subject string

const (
	SubjectMath       Subject = "Matematika"
	SubjectIndonesian Subject = "Bahasa Indonesia"
)

// QuestionType determines how the learner answers.
type QuestionType string

const (
	// TypeSingleChoice: pick exactly one of the options.
	TypeSingleChoice QuestionType = "single-choice"

	// TypeMultiSelect: pick any subset of the options.
	TypeMultiSelect QuestionType = "multi-select"

	// TypeCategoryClassification: assign each option to one of the
	// question's categories.
	TypeCategoryClassification QuestionType = "category-classification"
)

// CognitiveLevel follows the national assessment framing:
// L1 comprehension, L2 application, L3 reasoning.
type CognitiveLevel string

const (
	LevelKnowing   CognitiveLevel = "L1"
	LevelApplying  CognitiveLevel = "L2"
	LevelReasoning CognitiveLevel = "L3"
)

// Question is a fully normalized exam question.
type Question struct {
	ID             string
	Subject        Subject
	Topic          string
	Type           QuestionType
	CognitiveLevel CognitiveLevel

	// Text is the question prompt. Passage, when non-empty, is a
	// reading excerpt shown above the prompt (literacy questions).
	Text    string
	Passage string

	// Options are the selectable answers. For category-classification
	// questions each option is an item to be assigned to a category.
	Options []string

	// Categories are the classification buckets, empty for other types.
	Categories []string

	CorrectAnswer AnswerValue
	Explanation   string
}
