// Package config provides configuration loading for auctionviz.
// It supports loading from YAML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/cloudx-io/auctionviz/core"
	"github.com/cloudx-io/auctionviz/logging"
	"github.com/cloudx-io/auctionviz/vizapi"
)

// Replay modes: how far one replay iteration moves the simulation.
const (
	ModeStep  = "step"
	ModeRound = "round"
	ModePhase = "phase"
)

// Config contains all auctionviz configuration settings.
type Config struct {
	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// ScoreLine tunes the score-line layout.
	ScoreLine ScoreLineConfig `json:"score_line" yaml:"score_line"`

	// Replay controls how the replay command drives a recording.
	Replay ReplayConfig `json:"replay" yaml:"replay"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level" env:"AUCTIONVIZ_LOG_LEVEL"`
}

// ScoreLineConfig mirrors core.ScoreLineOptions plus the marker palette.
type ScoreLineConfig struct {
	// MinSpan is the narrowest score range the axis shows.
	MinSpan float64 `json:"min_span" yaml:"min_span" env:"AUCTIONVIZ_SCORE_LINE_MIN_SPAN"`

	// Padding is the percentage kept free at both ends of the axis.
	Padding float64 `json:"padding" yaml:"padding" env:"AUCTIONVIZ_SCORE_LINE_PADDING"`

	// Baseline is the vertical offset of the first marker in a tie group.
	Baseline float64 `json:"baseline" yaml:"baseline" env:"AUCTIONVIZ_SCORE_LINE_BASELINE"`

	// StackStep is the vertical distance between tied markers.
	StackStep float64 `json:"stack_step" yaml:"stack_step" env:"AUCTIONVIZ_SCORE_LINE_STACK_STEP"`

	// Palette holds the marker colours; players cycle through it by index.
	Palette []string `json:"palette" yaml:"palette" env:"AUCTIONVIZ_SCORE_LINE_PALETTE" envSeparator:","`
}

// ReplayConfig configures the replay command.
type ReplayConfig struct {
	// Mode is one of "step", "round" or "phase".
	Mode string `json:"mode" yaml:"mode" env:"AUCTIONVIZ_REPLAY_MODE"`

	// Count is how many iterations to run; 0 runs until the recording ends.
	Count int `json:"count" yaml:"count" env:"AUCTIONVIZ_REPLAY_COUNT"`

	// Decision is the red,green,blue bid submitted whenever a single step waits for the
	// human. Empty means pass.
	Decision []int `json:"decision,omitempty" yaml:"decision,omitempty" env:"AUCTIONVIZ_REPLAY_DECISION" envSeparator:","`
}

// Default returns a Config with the stock layout constants.
func Default() *Config {
	opts := core.DefaultScoreLineOptions()
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		ScoreLine: ScoreLineConfig{
			MinSpan:   opts.MinSpan,
			Padding:   opts.Padding,
			Baseline:  opts.Baseline,
			StackStep: opts.StackStep,
			Palette:   append([]string(nil), vizapi.DefaultPalette...),
		},
		Replay: ReplayConfig{
			Mode:  ModeStep,
			Count: 0,
		},
	}
}

// Load builds the configuration.
// Order: defaults -> YAML file at path (skipped when path is empty) -> environment variables
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileConfig
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file. Keys missing from the file
// keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with the AUCTIONVIZ_* environment variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if !logging.IsValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	if c.ScoreLine.MinSpan <= 0 {
		return fmt.Errorf("min_span must be positive, got %v", c.ScoreLine.MinSpan)
	}
	if c.ScoreLine.Padding < 0 || c.ScoreLine.Padding >= 50 {
		return fmt.Errorf("padding must be in [0, 50), got %v", c.ScoreLine.Padding)
	}
	if c.ScoreLine.StackStep < 0 {
		return fmt.Errorf("stack_step must be non-negative, got %v", c.ScoreLine.StackStep)
	}
	if len(c.ScoreLine.Palette) == 0 {
		return errors.New("palette must hold at least one colour")
	}

	validModes := map[string]bool{ModeStep: true, ModeRound: true, ModePhase: true}
	if !validModes[c.Replay.Mode] {
		return fmt.Errorf("invalid replay mode: %s (valid: step, round, phase)", c.Replay.Mode)
	}
	if c.Replay.Count < 0 {
		return fmt.Errorf("replay count must be non-negative, got %d", c.Replay.Count)
	}
	if n := len(c.Replay.Decision); n != 0 && n != core.ResourceKinds {
		return fmt.Errorf("replay decision needs %d values, got %d", core.ResourceKinds, n)
	}
	for _, v := range c.Replay.Decision {
		if v < 0 {
			return fmt.Errorf("replay decision values must be non-negative, got %v", c.Replay.Decision)
		}
	}

	return nil
}

// ScoreLineOptions converts the score-line settings for core.LayoutScoreLine.
func (c *Config) ScoreLineOptions() core.ScoreLineOptions {
	return core.ScoreLineOptions{
		MinSpan:     c.ScoreLine.MinSpan,
		Padding:     c.ScoreLine.Padding,
		Baseline:    c.ScoreLine.Baseline,
		StackStep:   c.ScoreLine.StackStep,
		PaletteSize: len(c.ScoreLine.Palette),
	}
}

// ReplayDecision returns the configured human decision, or core.Pass when none is set.
// Call Validate first.
func (c *Config) ReplayDecision() core.Resources {
	var d core.Resources
	copy(d[:], c.Replay.Decision)
	return d
}
