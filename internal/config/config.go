// Package config loads exam and runtime settings from an optional YAML
// file with environment variable overrides. Every field has a sensible
// default so the app runs with no config file at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultExamDuration is the countdown applied when no duration is
	// configured.
	DefaultExamDuration = 60 * time.Minute

	// MinExamDuration and MaxExamDuration clamp configured durations.
	MinExamDuration = 30 * time.Minute
	MaxExamDuration = 120 * time.Minute

	// DefaultInactivityWindow is how long the app may sit idle before
	// the session is reset.
	DefaultInactivityWindow = 30 * time.Minute

	// DefaultNumeracyCount and DefaultLiteracyCount are the question
	// counts requested per exam section.
	DefaultNumeracyCount = 15
	DefaultLiteracyCount = 15

	// DefaultLoadingMessageInterval is how often the generation screen
	// rotates its status message.
	DefaultLoadingMessageInterval = 2 * time.Second
)

// Exam holds the exam composition and timing settings.
type Exam struct {
	// Duration is the total countdown for one attempt. Clamped to
	// [MinExamDuration, MaxExamDuration] on load.
	Duration time.Duration `yaml:"duration"`

	// NumeracyCount and LiteracyCount are how many questions to request
	// per section.
	NumeracyCount int `yaml:"numeracy_count"`
	LiteracyCount int `yaml:"literacy_count"`
}

// Config is the top-level application configuration.
type Config struct {
	Exam Exam `yaml:"exam"`

	// InactivityWindow is the idle period after which the logged-in
	// session is cleared. Zero disables the watchdog.
	InactivityWindow time.Duration `yaml:"inactivity_window"`

	// LoadingMessageInterval controls the generation screen's status
	// message rotation.
	LoadingMessageInterval time.Duration `yaml:"loading_message_interval"`
}

// Default returns the configuration used when no file or env overrides
// are present.
func Default() Config {
	return Config{
		Exam: Exam{
			Duration:      DefaultExamDuration,
			NumeracyCount: DefaultNumeracyCount,
			LiteracyCount: DefaultLiteracyCount,
		},
		InactivityWindow:       DefaultInactivityWindow,
		LoadingMessageInterval: DefaultLoadingMessageInterval,
	}
}

// Load reads the config file at path if it exists, applies EDUGEN_*
// environment overrides, then normalizes the result. A missing file is
// not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Fine: run on defaults.
		default:
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	cfg.normalize()
	return cfg, nil
}

// DefaultPath returns the conventional config file location,
// honoring EDUGEN_CONFIG and XDG_CONFIG_HOME.
func DefaultPath() string {
	if p := os.Getenv("EDUGEN_CONFIG"); p != "" {
		return p
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "edugen.yaml"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "edugen", "config.yaml")
}

func applyEnv(cfg *Config) {
	if d, ok := envDuration("EDUGEN_EXAM_DURATION"); ok {
		cfg.Exam.Duration = d
	}
	if n, ok := envInt("EDUGEN_NUMERACY_COUNT"); ok {
		cfg.Exam.NumeracyCount = n
	}
	if n, ok := envInt("EDUGEN_LITERACY_COUNT"); ok {
		cfg.Exam.LiteracyCount = n
	}
	if d, ok := envDuration("EDUGEN_INACTIVITY_WINDOW"); ok {
		cfg.InactivityWindow = d
	}
}

// normalize clamps and backfills values so callers never see a config
// that would break the exam flow.
func (c *Config) normalize() {
	if c.Exam.Duration <= 0 {
		c.Exam.Duration = DefaultExamDuration
	}
	if c.Exam.Duration < MinExamDuration {
		c.Exam.Duration = MinExamDuration
	}
	if c.Exam.Duration > MaxExamDuration {
		c.Exam.Duration = MaxExamDuration
	}
	if c.Exam.NumeracyCount <= 0 {
		c.Exam.NumeracyCount = DefaultNumeracyCount
	}
	if c.Exam.LiteracyCount <= 0 {
		c.Exam.LiteracyCount = DefaultLiteracyCount
	}
	if c.InactivityWindow < 0 {
		c.InactivityWindow = 0
	}
	if c.LoadingMessageInterval <= 0 {
		c.LoadingMessageInterval = DefaultLoadingMessageInterval
	}
}

func envDuration(key string) (time.Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, false
	}
	return d, true
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
