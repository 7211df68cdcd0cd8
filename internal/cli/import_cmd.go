package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmalmgren/tempus/internal/cli/formatter"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk-import tasks from a JSON or CSV file",
		Long: `Import tasks from a .json or .csv file.

Each row needs a description, category, start date, deadline and estimated
duration; elapsed time and status are optional. Rows that do not validate or
do not fit the schedule are skipped and reported, never failing the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportFile(context.Background(), args[0])
			if err != nil {
				return err
			}

			for _, desc := range result.Scheduled {
				fmt.Printf("%s %s\n", formatter.StyleGreen.Render("scheduled"), desc)
			}
			for _, skipped := range result.Skipped {
				name := skipped.Description
				if name == "" {
					name = "(no description)"
				}
				fmt.Printf("%s %s: %s\n", formatter.StyleYellow.Render("skipped"), name, formatter.Dim(skipped.Reason))
			}

			fmt.Printf("\n%d scheduled, %d skipped\n", len(result.Scheduled), len(result.Skipped))
			return nil
		},
	}
}
