package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/collatzline/sequence"
)

func newPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the generated trajectories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			paths, err := sequence.Collatz(cfg.Sequence.N, cfg.Sequence.GeneratorOptions()...)
			if err != nil {
				return err
			}
			log.Debug("generated paths", "count", len(paths))

			out := cmd.OutOrStdout()
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				enc := json.NewEncoder(out)
				for _, p := range paths {
					ys := make([]int64, len(p))
					for i, v := range p {
						ys[i] = v.Y
					}
					if err := enc.Encode(map[string]any{"start": p[0].Y, "steps": p.Len() - 1, "values": ys}); err != nil {
						return err
					}
				}
				return nil
			}

			for _, p := range paths {
				maxX, maxY := p.Bounds()
				if _, err := fmt.Fprintf(out, "%d: steps=%d max=%d\n", p[0].Y, maxX, maxY); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addSequenceFlags(cmd)

	return cmd
}
