package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Exam.Duration != DefaultExamDuration {
		t.Fatalf("expected default duration, got %v", cfg.Exam.Duration)
	}
	if cfg.Exam.NumeracyCount != DefaultNumeracyCount || cfg.Exam.LiteracyCount != DefaultLiteracyCount {
		t.Fatalf("expected default counts, got %d/%d", cfg.Exam.NumeracyCount, cfg.Exam.LiteracyCount)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
exam:
  duration: 45m
  numeracy_count: 10
  literacy_count: 12
inactivity_window: 15m
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Exam.Duration != 45*time.Minute {
		t.Fatalf("expected 45m, got %v", cfg.Exam.Duration)
	}
	if cfg.Exam.NumeracyCount != 10 || cfg.Exam.LiteracyCount != 12 {
		t.Fatalf("unexpected counts: %d/%d", cfg.Exam.NumeracyCount, cfg.Exam.LiteracyCount)
	}
	if cfg.InactivityWindow != 15*time.Minute {
		t.Fatalf("expected 15m inactivity window, got %v", cfg.InactivityWindow)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("exam: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoad_DurationClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("exam:\n  duration: 5m\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Exam.Duration != MinExamDuration {
		t.Fatalf("expected clamp to %v, got %v", MinExamDuration, cfg.Exam.Duration)
	}

	if err := os.WriteFile(path, []byte("exam:\n  duration: 10h\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Exam.Duration != MaxExamDuration {
		t.Fatalf("expected clamp to %v, got %v", MaxExamDuration, cfg.Exam.Duration)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EDUGEN_EXAM_DURATION", "90m")
	t.Setenv("EDUGEN_NUMERACY_COUNT", "5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Exam.Duration != 90*time.Minute {
		t.Fatalf("expected 90m from env, got %v", cfg.Exam.Duration)
	}
	if cfg.Exam.NumeracyCount != 5 {
		t.Fatalf("expected 5 from env, got %d", cfg.Exam.NumeracyCount)
	}
}

func TestLoad_InvalidEnvIgnored(t *testing.T) {
	t.Setenv("EDUGEN_EXAM_DURATION", "soon")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Exam.Duration != DefaultExamDuration {
		t.Fatalf("invalid env value should be ignored, got %v", cfg.Exam.Duration)
	}
}

func TestDefaultPath_EnvWins(t *testing.T) {
	t.Setenv("EDUGEN_CONFIG", "/tmp/custom.yaml")
	if got := DefaultPath(); got != "/tmp/custom.yaml" {
		t.Fatalf("expected env path, got %q", got)
	}
}
