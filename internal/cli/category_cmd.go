package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmalmgren/tempus/internal/cli/formatter"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage task categories",
	}

	cmd.AddCommand(
		newCategoryListCmd(app),
		newCategoryRenameCmd(app),
		newCategoryRemoveCmd(app),
	)

	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := app.Categories.List(context.Background())
			if err != nil {
				return err
			}

			if len(categories) == 0 {
				fmt.Println("No categories yet; they are created with the first task that names them.")
				return nil
			}

			headers := []string{"ID", "NAME"}
			rows := make([][]string, 0, len(categories))
			for _, c := range categories {
				rows = append(rows, []string{formatter.Dim(c.ID[:8]), formatter.Bold(c.Name)})
			}

			fmt.Println(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newCategoryRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <category> <new-name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			category, err := resolveCategory(ctx, app, args[0])
			if err != nil {
				return err
			}

			if err := app.Categories.Rename(ctx, category.ID, args[1]); err != nil {
				return err
			}

			fmt.Printf("Renamed %q to %q\n", category.Name, args[1])
			return nil
		},
	}
}

func newCategoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <category>",
		Aliases: []string{"remove"},
		Short:   "Delete a category and its tasks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			category, err := resolveCategory(ctx, app, args[0])
			if err != nil {
				return err
			}

			if err := app.Categories.Delete(ctx, category.ID); err != nil {
				return err
			}

			fmt.Printf("Deleted %q and its tasks\n", category.Name)
			return nil
		},
	}
}
