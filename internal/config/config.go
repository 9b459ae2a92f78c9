// Package config provides configuration loading for the collatzline CLI.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/collatzline/interp"
	"github.com/katalvlaran/collatzline/interval"
	"github.com/katalvlaran/collatzline/sequence"
)

// Config contains all collatzline settings.
type Config struct {
	// Sequence selects the trajectories to trace.
	Sequence SequenceConfig `json:"sequence" yaml:"sequence"`

	// Interpolation selects how segments are filled in.
	Interpolation InterpolationConfig `json:"interpolation" yaml:"interpolation"`

	// Playback controls the pacing of the driver.
	Playback PlaybackConfig `json:"playback" yaml:"playback"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SequenceConfig selects the Collatz range [Start..N].
type SequenceConfig struct {
	// N is the last start value (inclusive), ≥ 2.
	N int `json:"n" yaml:"n"`

	// Start is the first start value (inclusive), ≥ 2.
	Start int `json:"start" yaml:"start"`

	// MaxSteps truncates trajectories after this many steps. 0 disables the cap.
	MaxSteps int `json:"max_steps,omitempty" yaml:"max_steps,omitempty"`
}

// InterpolationConfig selects the interval function and the sample density.
type InterpolationConfig struct {
	// Func is the interval function name: cosine, cubic, quadratic, quartic or expr.
	Func string `json:"func" yaml:"func"`

	// Expr is the formula used when Func is "expr".
	Expr string `json:"expr,omitempty" yaml:"expr,omitempty"`

	// Density is the number of samples per unit step.
	Density int `json:"density" yaml:"density"`

	// Fallback is the value emitted where a path has no segment.
	Fallback float64 `json:"fallback" yaml:"fallback"`
}

// PlaybackConfig controls the per-tick driver.
type PlaybackConfig struct {
	// Tick is the interval between two pulls. 0 pulls as fast as possible.
	Tick time.Duration `json:"tick" yaml:"tick"`

	// BoundaryPause is how long the driver waits on a path boundary.
	BoundaryPause time.Duration `json:"boundary_pause" yaml:"boundary_pause"`

	// LabelScale is the label offset constant z.
	LabelScale float64 `json:"label_scale" yaml:"label_scale"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "warn", "info" (default), "debug" or "trace".
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Sequence: SequenceConfig{
			N:     50,
			Start: sequence.DefaultStart,
		},
		Interpolation: InterpolationConfig{
			Func:     interval.KindQuartic.String(),
			Density:  interp.DefaultDensity,
			Fallback: interp.DefaultFallback,
		},
		Playback: PlaybackConfig{
			Tick:          20 * time.Millisecond,
			BoundaryPause: 2 * time.Second,
			LabelScale:    30,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns defaults overlaid with the YAML file at path (if path is not
// empty) and then with environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file. Missing keys
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

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Sequence.Start < sequence.DefaultStart {
		return fmt.Errorf("start must be ≥ %d, got %d", sequence.DefaultStart, c.Sequence.Start)
	}
	if c.Sequence.N < c.Sequence.Start {
		return fmt.Errorf("n must be ≥ start (%d), got %d", c.Sequence.Start, c.Sequence.N)
	}
	if c.Sequence.MaxSteps < 0 {
		return fmt.Errorf("max_steps must be non-negative, got %d", c.Sequence.MaxSteps)
	}

	kind, err := interval.ParseKind(c.Interpolation.Func)
	if err != nil {
		return err
	}
	if kind == interval.KindExpr && c.Interpolation.Expr == "" {
		return fmt.Errorf("func %q needs an expr", c.Interpolation.Func)
	}
	if c.Interpolation.Density < 1 {
		return fmt.Errorf("density must be ≥ 1, got %d", c.Interpolation.Density)
	}

	if c.Playback.Tick < 0 {
		return fmt.Errorf("tick must be non-negative, got %v", c.Playback.Tick)
	}
	if c.Playback.BoundaryPause < 0 {
		return fmt.Errorf("boundary_pause must be non-negative, got %v", c.Playback.BoundaryPause)
	}
	if c.Playback.LabelScale < 0 {
		return fmt.Errorf("label_scale must be non-negative, got %v", c.Playback.LabelScale)
	}

	validLevels := map[string]bool{"warn": true, "info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: warn, info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// Constructor resolves the configured interval function.
func (c InterpolationConfig) Constructor() (interval.Constructor, error) {
	kind, err := interval.ParseKind(c.Func)
	if err != nil {
		return nil, err
	}

	return kind.Constructor(c.Expr)
}

// GeneratorOptions maps the sequence settings to generator options.
func (c SequenceConfig) GeneratorOptions() []sequence.Option {
	opts := []sequence.Option{sequence.WithStart(c.Start)}
	if c.MaxSteps > 0 {
		opts = append(opts, sequence.WithMaxSteps(c.MaxSteps))
	}

	return opts
}

// InterpOptions maps the interpolation settings to interpolator options.
func (c InterpolationConfig) InterpOptions() []interp.Option {
	return []interp.Option{
		interp.WithDensity(c.Density),
		interp.WithFallback(c.Fallback),
	}
}

// applyEnvOverrides applies COLLATZLINE_* environment variables to the config.
func applyEnvOverrides(cfg *Config) error {
	ints := []struct {
		env string
		dst *int
	}{
		{"COLLATZLINE_N", &cfg.Sequence.N},
		{"COLLATZLINE_START", &cfg.Sequence.Start},
		{"COLLATZLINE_MAX_STEPS", &cfg.Sequence.MaxSteps},
		{"COLLATZLINE_DENSITY", &cfg.Interpolation.Density},
	}
	for _, o := range ints {
		if v := os.Getenv(o.env); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", o.env, err)
			}
			*o.dst = n
		}
	}

	durations := []struct {
		env string
		dst *time.Duration
	}{
		{"COLLATZLINE_TICK", &cfg.Playback.Tick},
		{"COLLATZLINE_BOUNDARY_PAUSE", &cfg.Playback.BoundaryPause},
	}
	for _, o := range durations {
		if v := os.Getenv(o.env); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s: %w", o.env, err)
			}
			*o.dst = d
		}
	}

	if v := os.Getenv("COLLATZLINE_FUNC"); v != "" {
		cfg.Interpolation.Func = v
	}
	if v := os.Getenv("COLLATZLINE_EXPR"); v != "" {
		cfg.Interpolation.Expr = v
	}
	if v := os.Getenv("COLLATZLINE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	return nil
}
