package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vibear-app/vibear/internal/config"
)

// options are the persistent flags shared by every subcommand
type options struct {
	configPath string
	verbose    bool
}

func (o *options) settings() (config.Settings, error) {
	return config.Load(o.configPath)
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "vibear",
		Short: "Room analysis and AR furniture suggestions powered by vision LLMs",
		Long: `VibeAR analyzes a photo of a room with a vision-capable LLM, derives furniture
search keywords from the analysis, and finds matching 3D models that can be placed in AR.

Run it as a web API for the mobile front-end, or use the one-shot commands to analyze a
photo, search the model catalog, or process a whole manifest of rooms offline.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML settings file")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Verbose logging")

	// Add subcommands
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newAnalyzeCmd(opts))
	cmd.AddCommand(newSearchCmd(opts))
	cmd.AddCommand(newModelCmd(opts))
	cmd.AddCommand(newBatchCmd(opts))

	return cmd
}
