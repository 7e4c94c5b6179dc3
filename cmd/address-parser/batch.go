package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ehdc-llpg/housenumber/internal/batch"
)

func createBatchCmd(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch [filename]",
		Short: "Parse a file of addresses, one per line",
		Long:  `Reads addresses from the file (or stdin when omitted), parses them concurrently and writes one JSON object per line in input order.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}

			lines, err := batch.ReadLines(in)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Batch.Workers
			}
			processor := batch.NewProcessor(a.factory, workers, a.logger, a.debug)
			outcomes, stats, err := processor.Process(cmd.Context(), lines)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, o := range outcomes {
				if err := enc.Encode(o); err != nil {
					return err
				}
			}

			a.logger.Info("batch complete",
				zap.Int("total", stats.Total),
				zap.Int("parsed", stats.Parsed),
				zap.Int("error_results", stats.ErrorResults),
				zap.Int("faults", stats.Faults),
				zap.Duration("took", stats.ProcessingTime))
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 4, "Number of addresses parsed concurrently")

	return cmd
}
