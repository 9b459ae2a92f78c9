package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/collatzline/internal/config"
	"github.com/katalvlaran/collatzline/internal/logging"
)

// loadSettings resolves defaults → config file → environment → flags and
// builds the logger.
func loadSettings(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("n") {
		cfg.Sequence.N, _ = flags.GetInt("n")
	}
	if flags.Changed("start") {
		cfg.Sequence.Start, _ = flags.GetInt("start")
	}
	if flags.Changed("max-steps") {
		cfg.Sequence.MaxSteps, _ = flags.GetInt("max-steps")
	}
	if flags.Changed("interval-func") {
		cfg.Interpolation.Func, _ = flags.GetString("interval-func")
	}
	if flags.Changed("expr") {
		cfg.Interpolation.Expr, _ = flags.GetString("expr")
	}
	if flags.Changed("density") {
		cfg.Interpolation.Density, _ = flags.GetInt("density")
	}
	if flags.Changed("tick") {
		cfg.Playback.Tick, _ = flags.GetDuration("tick")
	}
	if flags.Changed("pause") {
		cfg.Playback.BoundaryPause, _ = flags.GetDuration("pause")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()), nil
}

// addSequenceFlags registers the flags shared by run and paths.
func addSequenceFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("n", "n", 0, "Last start value (inclusive)")
	cmd.Flags().Int("start", 0, "First start value (inclusive)")
	cmd.Flags().Int("max-steps", 0, "Truncate trajectories after this many steps (0 = no cap)")
}
