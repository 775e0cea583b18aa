package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vibear-app/vibear/internal/app"
	"github.com/vibear-app/vibear/internal/models"
	"github.com/vibear-app/vibear/internal/sketchfab"
)

func newModelCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "model <id>",
		Short: "Show one furniture model and the URL AR placement would use",
		Example: `  # Look up a remote model
  vibear model 7w7pAfrCfjovwykkEeRFLGw5SXS

  # Look up a bundled model
  vibear model local-chair --json`,
		Args: cobra.ExactArgs(1),
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

			item, err := services.Matcher.Model(cmd.Context(), args[0])
			if errors.Is(err, sketchfab.ErrNotFound) {
				return fmt.Errorf("model %s not found", args[0])
			}
			if err != nil {
				return err
			}

			arURL := services.Resolver.Resolve(item)
			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, struct {
					Item  models.FurnitureItem `json:"item"`
					ARURL string               `json:"arUrl"`
				}{item, arURL})
			}

			printFurniture(out, []models.FurnitureItem{item})
			printField(out, "License", item.License)
			printField(out, "Tags", fmt.Sprint(item.Tags))
			printField(out, "AR model", arURL)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the model as JSON")

	return cmd
}
