package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vibear-app/vibear/internal/app"
	"github.com/vibear-app/vibear/internal/capture"
	"github.com/vibear-app/vibear/internal/pipeline"
)

func newAnalyzeCmd(opts *options) *cobra.Command {
	var imagePath string
	var userContext string
	var query string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a room photo and suggest furniture",
		Long: `Runs one photo through the full pipeline: the vision model describes the room,
keywords are derived from the description (and from --query when given), and the
3D model catalog is searched for matching furniture.`,
		Example: `  # Analyze a photo with Gemini
  vibear analyze --image living-room.jpg

  # Ask for something specific and print JSON
  vibear analyze --image bedroom.png --query "a reading chair by the window" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.settings()
			if err != nil {
				return err
			}

			services, err := app.New(cmd.Context(), settings)
			if err != nil {
				return err
			}
			defer services.Close()

			var photo string
			err = capture.WithView(cmd.Context(), capture.FileDevice{Path: imagePath}, capture.DefaultConstraints(), func(v *capture.View) error {
				var captureErr error
				photo, captureErr = v.Capture()
				return captureErr
			})
			if capture.IsRetryable(err) {
				return fmt.Errorf("%s: %w", capture.UnavailableMessage, err)
			}
			if err != nil {
				return err
			}

			result := services.Pipeline.Run(cmd.Context(), pipeline.Input{
				Image:   photo,
				Context: userContext,
				Query:   query,
			})

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, result)
			}

			printAnalysis(out, result.Analysis)
			fmt.Fprintln(out)
			printField(out, "Search", fmt.Sprint(result.Keywords))
			if result.Reply != "" {
				printField(out, "Reply", result.Reply)
			}
			fmt.Fprintln(out)
			printFurniture(out, result.Furniture)
			return nil
		},
	}

	cmd.Flags().StringVar(&imagePath, "image", "", "Path to the room photo (required)")
	cmd.Flags().StringVar(&userContext, "context", "", "What the user said about the room")
	cmd.Flags().StringVar(&query, "query", "", "Free-text furniture request")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}
