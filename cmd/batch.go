package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/vibear-app/vibear/internal/app"
	"github.com/vibear-app/vibear/internal/batch"
)

func newBatchCmd(opts *options) *cobra.Command {
	var manifestPath string
	var outputPath string
	var concurrency int
	var sampleSize int

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Analyze a manifest of room photos and write a YAML report",
		Long: `Runs every photo listed in a JSONL or Parquet manifest through the analysis pipeline
and writes one YAML report with the analysis, derived keywords and matched furniture per room.

Each manifest row needs an image_path (relative paths resolve against the manifest's
directory) and may carry id, context and query.`,
		Example: `  # Analyze 10 rooms from a JSONL manifest
  vibear batch --manifest rooms/manifest.jsonl --sample 10

  # Analyze a full Parquet manifest, four rooms at a time
  vibear batch --manifest rooms.parquet --sample -1 --concurrency 4 --output reports/full.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.settings()
			if err != nil {
				return err
			}

			loader := batch.NewLoader(manifestPath)
			rows, err := loader.Load(max(sampleSize, 0))
			if err != nil {
				return err
			}
			slog.Info("Manifest loaded", "rows", len(rows), "concurrency", concurrency)

			services, err := app.New(cmd.Context(), settings)
			if err != nil {
				return err
			}
			defer services.Close()

			start := time.Now()
			runner := batch.NewRunner(services.Pipeline, concurrency, loader.Dir())
			outcomes, runErr := runner.Run(cmd.Context(), rows)

			config := batch.ReportConfig{
				Provider:     settings.Provider,
				Model:        services.Model.Model,
				ManifestPath: manifestPath,
				SampleSize:   sampleSize,
				Concurrency:  concurrency,
				Timestamp:    start.Format("2006-01-02_15-04-05"),
			}
			report := batch.NewReport(config, outcomes)

			if outputPath == "" {
				outputPath = batch.DefaultReportPath(config.Model, config.Timestamp)
			}
			saved, err := report.Save(outputPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			heading.Fprintln(out, "Batch summary")
			printField(out, "Rooms", fmt.Sprint(report.Summary.Total))
			printField(out, "Elapsed", time.Since(start).Round(time.Millisecond).String())
			if report.Summary.Failed > 0 {
				failure.Fprintf(out, "  %d rooms could not be read\n", report.Summary.Failed)
			}
			if report.Summary.AnalysisUnavailable > 0 {
				failure.Fprintf(out, "  %d analyses unavailable\n", report.Summary.AnalysisUnavailable)
			}
			if report.Summary.LocalFallback > 0 {
				label.Fprintf(out, "  %d rooms used the bundled catalog\n", report.Summary.LocalFallback)
			}
			success.Fprintf(out, "✅ Report saved to: %s\n", saved)

			return runErr
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to a .jsonl or .parquet manifest (required)")
	cmd.Flags().StringVar(&outputPath, "output", "", "Report path (defaults to reports/<model>-<timestamp>.yaml)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 2, "Rooms analyzed at the same time")
	cmd.Flags().IntVar(&sampleSize, "sample", 10, "Number of rows to process (-1 for all)")
	_ = cmd.MarkFlagRequired("manifest")

	return cmd
}
