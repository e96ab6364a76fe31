package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/lemoi18/Text-Normalizer-norwegian/dataset"
	"github.com/lemoi18/Text-Normalizer-norwegian/internal/config"
	"github.com/lemoi18/Text-Normalizer-norwegian/normalize"
)

func (a *app) datasetCmd() *cobra.Command {
	defaults := config.Default().Dataset

	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Normalize the text column of an id|text|speaker dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDataset(cmd)
		},
	}

	f := cmd.Flags()
	f.String("input", defaults.Input, "dataset to read")
	f.String("output", defaults.Output, "file to write the normalized dataset to")
	f.Int("workers", defaults.Workers, "number of records normalized in parallel")
	f.Int("examples", defaults.Examples, "number of changed records to print")
	f.String("separator", defaults.Separator, "field separator")
	f.String("default-speaker", defaults.DefaultSpeaker, "speaker of records that name none")
	return cmd
}

func (a *app) runDataset(cmd *cobra.Command) error {
	cfg := a.cfg.Dataset
	log := a.log.With("input", cfg.Input)
	start := time.Now()

	records, skipped, err := dataset.ReadFile(a.fs, cfg.Input,
		dataset.WithSeparator(cfg.Separator),
		dataset.WithDefaultSpeaker(cfg.DefaultSpeaker),
	)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no records in %s", cfg.Input)
	}
	log.Info("loaded dataset", "records", len(records), "skipped", skipped)

	results, err := dataset.Process(cmd.Context(), records, normalize.Normalize, cfg.Workers)
	if err != nil {
		return err
	}
	if err := dataset.WriteFile(a.fs, cfg.Output, cfg.Separator, results); err != nil {
		return err
	}

	stats := dataset.Summarize(results)
	printExamples(cmd.OutOrStdout(), dataset.Examples(results, cfg.Examples))
	log.Info("wrote normalized dataset",
		"output", cfg.Output,
		"total", stats.Total,
		"changed", stats.Changed,
		"changed_pct", fmt.Sprintf("%.1f", stats.ChangedPercent()),
		"unchanged", stats.Unchanged,
		"recovered", stats.Recovered,
		"original_chars", stats.OriginalRunes,
		"normalized_chars", stats.NormalizedRunes,
		"ratio", fmt.Sprintf("%.2f", stats.Ratio()),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

func printExamples(w io.Writer, examples []dataset.Result) {
	for i, r := range examples {
		fmt.Fprintf(w, "Example %d (line %d, %s)\n", i+1, r.Line, r.ID)
		fmt.Fprintf(w, "  original:   %s\n", r.Text)
		fmt.Fprintf(w, "  normalized: %s\n", r.Normalized)
	}
}
