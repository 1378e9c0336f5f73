package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/edugen/tka/internal/llm"
)

func TestLLMGenerator_Generate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(sampleArray)},
	)
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), Params{
		MathTopics:     []string{"KPK & FPB"},
		LiteracyTopics: []string{"Ide Pokok & Pendukung"},
		NumeracyCount:  1,
		LiteracyCount:  1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}

	calls := mock.Calls
	if len(calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(calls))
	}
	req := calls[0]
	if req.Schema != QuestionSetSchema {
		t.Fatal("request should carry the question set schema")
	}
	if req.Temperature != 0.15 {
		t.Fatalf("expected temperature 0.15, got %v", req.Temperature)
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "KPK & FPB") || !strings.Contains(msg, "Ide Pokok & Pendukung") {
		t.Fatalf("prompt should list the selected topics, got: %s", msg)
	}
}

func TestLLMGenerator_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Params{NumeracyCount: 1, LiteracyCount: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("provider error should be preserved in the chain, got %T", err)
	}
}

func TestLLMGenerator_FencedOutput(t *testing.T) {
	fenced := "```json\n" + sampleArray + "\n```"
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(fenced)},
	)
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), Params{NumeracyCount: 1, LiteracyCount: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
}

func TestBuildUserMessage_Counts(t *testing.T) {
	msg := buildUserMessage(Params{
		MathTopics:     []string{"Aljabar Dasar"},
		LiteracyTopics: []string{"Puisi & Majas"},
		NumeracyCount:  15,
		LiteracyCount:  15,
	})
	if !strings.Contains(msg, "exactly 15 Matematika") {
		t.Fatalf("prompt missing numeracy count: %s", msg)
	}
	if !strings.Contains(msg, "exactly 15 Bahasa Indonesia") {
		t.Fatalf("prompt missing literacy count: %s", msg)
	}
}
