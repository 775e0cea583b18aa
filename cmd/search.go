package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/vibear-app/vibear/internal/app"
	"github.com/vibear-app/vibear/internal/furniture"
	"github.com/vibear-app/vibear/internal/models"
)

func newSearchCmd(opts *options) *cobra.Command {
	var keywords []string
	var category string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the 3D model catalog for furniture",
		Long: `Searches for downloadable furniture models using the same strategy ladder as the
analysis pipeline, falling back to the bundled catalog when nothing is found.`,
		Example: `  # Search by keywords
  vibear search --keywords armchair,velvet,"reading corner"

  # Browse a category
  vibear search --category lighting`,
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

			var results []models.FurnitureItem
			if category != "" {
				results = services.Matcher.Category(cmd.Context(), category)
			} else {
				results = services.Matcher.Search(cmd.Context(), keywords)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, results)
			}

			if category == "" {
				label.Fprintf(out, "Strategies: ")
				faint.Fprintln(out, strings.Join(furniture.Strategies(keywords), " | "))
			}
			printFurniture(out, results)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&keywords, "keywords", nil, "Comma-separated search keywords")
	cmd.Flags().StringVar(&category, "category", "", "Browse a furniture category instead of searching")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the results as JSON")
	cmd.MarkFlagsOneRequired("keywords", "category")
	cmd.MarkFlagsMutuallyExclusive("keywords", "category")

	return cmd
}
