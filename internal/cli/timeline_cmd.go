package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jmalmgren/tempus/internal/cli/formatter"
	"github.com/jmalmgren/tempus/internal/domain"
)

func newTimelineCmd(app *App) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Project every task against the weekly capacity",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Timeline.Report(context.Background())
			if errors.Is(err, domain.ErrConfigurationMissing) {
				fmt.Println("No availability profile yet. Run \"tempus avail set\" first.")
				return nil
			}
			if err != nil {
				return err
			}

			if len(report.Rows) == 0 {
				fmt.Println("No tasks to project.")
				return nil
			}

			if interactive && app.interactive() {
				model := newTimelineModel(report, time.Now())
				_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
				return err
			}

			fmt.Println(formatter.FormatTimeline(report, time.Now()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the timeline in a full-screen view")

	return cmd
}
