package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert question writer for the Indonesian TKA (Tes Kemampuan Akademik) for elementary school students.

Rules:
- Write every question, passage, option, and explanation in Indonesian.
- Cover only the requested topics, spreading questions evenly across them.
- Mix cognitive levels: roughly half L1 (knowing), a third L2 (applying), the rest L3 (reasoning).
- For "single-choice": exactly 4 options, correctAnswer is the text of the one correct option. Distractors reflect common student mistakes.
- For "multi-select": 4-6 options with 2 or more correct, correctAnswer is an array of the correct option texts in the order they appear in options.
- For "category-classification": options are items to classify, categories lists the buckets, correctAnswer is an object mapping every item to its category.
- Literacy questions about a text must include the text in "passage". Numeracy questions leave passage empty.
- Use plain text for all math. No LaTeX, no special symbols.
- Respond with a JSON array only. No prose before or after it.`

// buildUserMessage asks for a full exam: numeracy questions over the
// math topics, then literacy questions over the Indonesian topics.
func buildUserMessage(p Params) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate exactly %d Matematika (numeracy) questions covering these topics:\n",
		p.NumeracyCount)
	for _, t := range p.MathTopics {
		fmt.Fprintf(&b, "- %s\n", t)
	}

	fmt.Fprintf(&b, "\nThen exactly %d Bahasa Indonesia (literacy) questions covering these topics:\n",
		p.LiteracyCount)
	for _, t := range p.LiteracyTopics {
		fmt.Fprintf(&b, "- %s\n", t)
	}

	b.WriteString("\nReturn all questions in one JSON array, Matematika first.")
	return b.String()
}
