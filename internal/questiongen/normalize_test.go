package questiongen

import (
	"errors"
	"testing"
)

const sampleArray = `[
  {
    "subject": "Matematika",
    "topic": "KPK & FPB",
    "type": "single-choice",
    "cognitiveLevel": "L1",
    "question": "Berapa KPK dari 4 dan 6?",
    "options": ["8", "12", "24", "6"],
    "correctAnswer": "12",
    "explanation": "Kelipatan persekutuan terkecil dari 4 dan 6 adalah 12."
  },
  {
    "subject": "Bahasa Indonesia",
    "topic": "Ide Pokok & Pendukung",
    "type": "multi-select",
    "cognitiveLevel": "L2",
    "question": "Pilih dua kalimat pendukung.",
    "passage": "Hutan hujan adalah rumah bagi banyak hewan.",
    "options": ["A", "B", "C", "D"],
    "correctAnswer": ["A", "C"],
    "explanation": "Kalimat A dan C mendukung ide pokok."
  }
]`

func TestParseQuestions_PlainArray(t *testing.T) {
	qs, err := ParseQuestions(sampleArray)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	if qs[0].Subject != SubjectMath || qs[1].Subject != SubjectIndonesian {
		t.Fatalf("unexpected subjects: %s / %s", qs[0].Subject, qs[1].Subject)
	}
	if !Equal(qs[0].CorrectAnswer, StringValue("12")) {
		t.Fatalf("unexpected answer: %v", qs[0].CorrectAnswer)
	}
	if !Equal(qs[1].CorrectAnswer, StringList("A", "C")) {
		t.Fatalf("unexpected multi-select answer: %v", qs[1].CorrectAnswer)
	}
}

func TestParseQuestions_FencedResponse(t *testing.T) {
	raw := "Here is your exam:\n```json\n" + sampleArray + "\n```\nGood luck!"
	qs, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
}

func TestParseQuestions_ProseAroundArray(t *testing.T) {
	raw := "Sure! " + sampleArray + " Let me know if you need more."
	qs, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
}

func TestParseQuestions_EmptyArray(t *testing.T) {
	_, err := ParseQuestions("[]")
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}
}

func TestParseQuestions_Malformed(t *testing.T) {
	_, err := ParseQuestions("I could not generate questions today.")
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
}

func TestParseQuestions_DoubleEncodedAnswer(t *testing.T) {
	raw := `[{"subject":"Matematika","topic":"t","type":"multi-select","cognitiveLevel":"L2","question":"q","options":["A","B","C"],"correctAnswer":"[\"A\",\"C\"]","explanation":"e"}]`
	qs, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(qs[0].CorrectAnswer, StringList("A", "C")) {
		t.Fatalf("double-encoded array should be re-parsed, got %v", qs[0].CorrectAnswer)
	}
}

func TestParseQuestions_TruncatedEncodedAnswerKeptRaw(t *testing.T) {
	// The inner value starts like a JSON array but never closes, so it
	// must stay a plain string.
	raw := `[{"subject":"Matematika","topic":"t","type":"single-choice","cognitiveLevel":"L1","question":"q","options":["A"],"correctAnswer":"[\"A\",\"C\"","explanation":"e"}]`
	qs, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(qs[0].CorrectAnswer, StringValue(`["A","C"`)) {
		t.Fatalf("truncated value should stay raw, got %v", qs[0].CorrectAnswer)
	}
}

func TestParseQuestions_ObjectAnswer(t *testing.T) {
	raw := `[{"subject":"Bahasa Indonesia","topic":"t","type":"category-classification","cognitiveLevel":"L3","question":"q","options":["Paus","Elang"],"categories":["Mamalia","Burung"],"correctAnswer":{"Paus":"Mamalia","Elang":"Burung"},"explanation":"e"}]`
	qs, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := StringMap(map[string]string{"Paus": "Mamalia", "Elang": "Burung"})
	if !Equal(qs[0].CorrectAnswer, want) {
		t.Fatalf("unexpected object answer: %v", qs[0].CorrectAnswer)
	}
	if qs[0].Type != TypeCategoryClassification {
		t.Fatalf("unexpected type: %s", qs[0].Type)
	}
}

func TestParseQuestions_AssignsIDWhenMissing(t *testing.T) {
	qs, err := ParseQuestions(sampleArray)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qs[0].ID == "" || qs[1].ID == "" {
		t.Fatal("questions without ids must get generated ones")
	}
	if qs[0].ID == qs[1].ID {
		t.Fatal("generated ids must be unique")
	}
}

func TestNormalizeSubject(t *testing.T) {
	cases := map[string]Subject{
		"Matematika":       SubjectMath,
		"matematika":       SubjectMath,
		"MATH":             SubjectMath,
		"Numerasi":         SubjectMath,
		"numeracy":         SubjectMath,
		"Bahasa Indonesia": SubjectIndonesian,
		"Literasi":         SubjectIndonesian,
		"IPA":              SubjectIndonesian,
		"":                 SubjectIndonesian,
	}
	for in, want := range cases {
		if got := normalizeSubject(in); got != want {
			t.Errorf("normalizeSubject(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeType_UnknownDefaultsSingleChoice(t *testing.T) {
	if got := normalizeType("true-false"); got != TypeSingleChoice {
		t.Fatalf("unknown types default to single-choice, got %s", got)
	}
}

func TestNormalizeLevel(t *testing.T) {
	if got := normalizeLevel("l3"); got != LevelReasoning {
		t.Fatalf("expected L3, got %s", got)
	}
	if got := normalizeLevel("hard"); got != LevelKnowing {
		t.Fatalf("unknown levels default to L1, got %s", got)
	}
}
