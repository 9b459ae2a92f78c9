package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/collatzline/chain"
	"github.com/katalvlaran/collatzline/internal/driver"
	"github.com/katalvlaran/collatzline/sequence"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play the interpolated point stream",
		Long: `Play the interpolated point stream one tick at a time.

Each tick prints a point; vertices also print a label. Between two paths the
stream pauses and prints a "clear" line carrying the new display bounds.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			ctor, err := cfg.Interpolation.Constructor()
			if err != nil {
				return err
			}
			gen := sequence.NewCollatzGenerator(cfg.Sequence.GeneratorOptions()...)
			c, err := chain.FromGenerator(gen, cfg.Sequence.N, ctor, cfg.Interpolation.InterpOptions()...)
			if err != nil {
				return err
			}

			var sink interface {
				driver.Sink
				writeErr() error
			}
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				sink = jsonSink{driver.NewJSONSink(cmd.OutOrStdout())}
			} else {
				sink = textSink{driver.NewTextSink(cmd.OutOrStdout())}
			}

			d := driver.New(c, sink, driver.Options{
				Tick:          cfg.Playback.Tick,
				BoundaryPause: cfg.Playback.BoundaryPause,
				LabelScale:    cfg.Playback.LabelScale,
				Logger:        log.With("func", cfg.Interpolation.Func, "n", cfg.Sequence.N),
			})
			if err := d.Run(cmd.Context()); err != nil {
				return err
			}
			return sink.writeErr()
		},
	}
	addSequenceFlags(cmd)
	cmd.Flags().String("interval-func", "", "Interval function: cosine, cubic, quadratic, quartic, expr")
	cmd.Flags().String("expr", "", "Formula for --interval-func=expr, over x, x0, y0, x1, y1")
	cmd.Flags().Int("density", 0, "Samples per unit step")
	cmd.Flags().Duration("tick", 0, "Interval between two frames")
	cmd.Flags().Duration("pause", 0, "Pause on every path boundary")

	return cmd
}

type textSink struct{ *driver.TextSink }

func (s textSink) writeErr() error { return s.Err }

type jsonSink struct{ *driver.JSONSink }

func (s jsonSink) writeErr() error { return s.Err }
