package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmalmgren/tempus/internal/cli/formatter"
	"github.com/jmalmgren/tempus/internal/domain"
)

func newAvailCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avail",
		Short: "Manage the weekly availability profile",
	}

	cmd.AddCommand(
		newAvailShowCmd(app),
		newAvailSetCmd(app),
	)

	return cmd
}

func newAvailShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show hours available per weekday",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Availability.Get(context.Background())
			if errors.Is(err, domain.ErrConfigurationMissing) {
				fmt.Println("No availability profile yet. Run \"tempus avail set\" first.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatAvailability(profile))
			return nil
		},
	}
}

func newAvailSetCmd(app *App) *cobra.Command {
	var hours []int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set hours available per weekday",
		Long: `Set the weekly availability profile used by every deadline check.

Pass --hours with seven comma-separated values, Monday first:

  tempus avail set --hours 8,8,8,8,8,0,0

Without the flag an interactive form asks for each day.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			profile, err := availabilityFromInput(ctx, app, cmd.Flags().Changed("hours"), hours)
			if err != nil {
				return err
			}

			if err := app.Availability.Set(ctx, profile); err != nil {
				return err
			}

			fmt.Printf("Availability set: %dh per week\n", profile.WeeklyHours())
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&hours, "hours", nil, "Seven values Monday..Sunday, e.g. 8,8,8,8,8,0,0")

	return cmd
}

func availabilityFromInput(ctx context.Context, app *App, flagged bool, hours []int) (*domain.Availability, error) {
	if flagged {
		if len(hours) != 7 {
			return nil, fmt.Errorf("--hours needs exactly 7 values (got %d)", len(hours))
		}
		return &domain.Availability{
			Monday:    hours[0],
			Tuesday:   hours[1],
			Wednesday: hours[2],
			Thursday:  hours[3],
			Friday:    hours[4],
			Saturday:  hours[5],
			Sunday:    hours[6],
		}, nil
	}

	if !app.interactive() {
		return nil, fmt.Errorf("pass --hours or run in a terminal")
	}

	// Pre-fill the form with the current profile when one exists.
	values := availabilityFormValues{}
	if current, err := app.Availability.Get(ctx); err == nil {
		existing := []int{
			current.Monday, current.Tuesday, current.Wednesday,
			current.Thursday, current.Friday, current.Saturday, current.Sunday,
		}
		for i, h := range existing {
			values.Days[i] = strconv.Itoa(h)
		}
	}

	if err := availabilityForm(&values).Run(); err != nil {
		return nil, err
	}

	parsed := make([]int, 7)
	for i, s := range values.Days {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hours for %s: %q", weekdayNames[i], s)
		}
		parsed[i] = n
	}

	return &domain.Availability{
		Monday:    parsed[0],
		Tuesday:   parsed[1],
		Wednesday: parsed[2],
		Thursday:  parsed[3],
		Friday:    parsed[4],
		Saturday:  parsed[5],
		Sunday:    parsed[6],
	}, nil
}
