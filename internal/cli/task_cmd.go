package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmalmgren/tempus/internal/cli/formatter"
	"github.com/jmalmgren/tempus/internal/domain"
	"github.com/jmalmgren/tempus/internal/service"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskUpdateCmd(app),
		newTaskLogCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

// reportConflict prints the refusal with the suggested fallback dates when
// the feasibility gate rejects a task.
func reportConflict(err error) error {
	var conflict *service.ScheduleConflictError
	if !errors.As(err, &conflict) {
		return err
	}

	fmt.Println(formatter.StyleRed.Render("Not enough time for " + strconv.Quote(conflict.Description) + " before its deadline."))
	if conflict.SuggestedDeadline != nil {
		fmt.Printf("%s %s\n", formatter.Dim("Next possible deadline:"), formatter.Bold(formatter.FormatDate(*conflict.SuggestedDeadline)))
	}
	if conflict.SuggestedStart != nil {
		fmt.Printf("%s %s\n", formatter.Dim("Possible start date:  "), formatter.Bold(formatter.FormatDate(*conflict.SuggestedStart)))
	}
	return nil
}

func newTaskAddCmd(app *App) *cobra.Command {
	var description, category, start, deadline string
	var estimated int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := taskFormValues{
				Description: description,
				Category:    category,
				Start:       start,
				Deadline:    deadline,
			}
			if cmd.Flags().Changed("hours") {
				values.Estimated = strconv.Itoa(estimated)
			}

			if values.Description == "" && app.interactive() {
				if err := taskForm(&values).Run(); err != nil {
					return err
				}
			}

			task, err := taskFromValues(&values)
			if err != nil {
				return err
			}

			if err := app.Tasks.Create(context.Background(), task, values.Category); err != nil {
				return reportConflict(err)
			}

			fmt.Printf("Scheduled %q, due %s\n", task.Description, formatter.FormatDate(task.Deadline))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "Task description")
	cmd.Flags().StringVar(&category, "category", "", "Category name (created if missing)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().IntVar(&estimated, "hours", 0, "Estimated hours")

	return cmd
}

// taskFromValues parses the form/flag strings into a task.
func taskFromValues(v *taskFormValues) (*domain.Task, error) {
	startDate, err := time.Parse("2006-01-02", v.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", v.Start, err)
	}
	deadline, err := time.Parse("2006-01-02", v.Deadline)
	if err != nil {
		return nil, fmt.Errorf("invalid deadline %q: %w", v.Deadline, err)
	}

	estimated := 0
	if v.Estimated != "" {
		estimated, err = strconv.Atoi(v.Estimated)
		if err != nil {
			return nil, fmt.Errorf("invalid estimated hours %q: %w", v.Estimated, err)
		}
	}

	return &domain.Task{
		Description:    v.Description,
		Start:          startDate,
		Deadline:       deadline,
		EstimatedHours: estimated,
	}, nil
}

func newTaskListCmd(app *App) *cobra.Command {
	var query, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by deadline",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var tasks []*domain.Task
			var err error
			if query == "" && status == "" {
				tasks, err = app.Tasks.List(ctx)
			} else {
				var st domain.TaskStatus
				if status != "" {
					if st, err = domain.ParseTaskStatus(status); err != nil {
						return err
					}
				}
				tasks, err = app.Tasks.Search(ctx, query, st)
			}
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			fmt.Println(formatter.FormatTaskList(tasks, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by description or category")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (not_started, ongoing, completed)")

	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(context.Background(), app, args[0])
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatTaskDetail(task, time.Now()))
			return nil
		},
	}
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var description, category, start, deadline string
	var estimated int

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task, re-checking its deadline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			task, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}

			values := taskFormValues{
				Description: task.Description,
				Category:    task.CategoryName,
				Start:       formatter.FormatDate(task.Start),
				Deadline:    formatter.FormatDate(task.Deadline),
				Estimated:   strconv.Itoa(task.EstimatedHours),
			}

			flagged := false
			if cmd.Flags().Changed("desc") {
				values.Description = description
				flagged = true
			}
			if cmd.Flags().Changed("category") {
				values.Category = category
				flagged = true
			}
			if cmd.Flags().Changed("start") {
				values.Start = start
				flagged = true
			}
			if cmd.Flags().Changed("deadline") {
				values.Deadline = deadline
				flagged = true
			}
			if cmd.Flags().Changed("hours") {
				values.Estimated = strconv.Itoa(estimated)
				flagged = true
			}

			if !flagged {
				if !app.interactive() {
					return fmt.Errorf("nothing to update: pass flags or run in a terminal")
				}
				if err := taskForm(&values).Run(); err != nil {
					return err
				}
			}

			updated, err := taskFromValues(&values)
			if err != nil {
				return err
			}
			updated.ID = task.ID
			updated.ActualHours = task.ActualHours
			updated.Status = task.Status
			updated.CreatedAt = task.CreatedAt

			if err := app.Tasks.Update(ctx, updated, values.Category); err != nil {
				return reportConflict(err)
			}

			fmt.Printf("Updated %q\n", updated.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "Task description")
	cmd.Flags().StringVar(&category, "category", "", "Category name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().IntVar(&estimated, "hours", 0, "Estimated hours")

	return cmd
}

func newTaskLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log <id> <hours>",
		Short: "Log elapsed hours on a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			task, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}

			hours, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid hours %q: %w", args[1], err)
			}

			updated, err := app.Tasks.LogTime(ctx, task.ID, hours)
			if err != nil {
				return err
			}

			fmt.Printf("Logged %dh on %q (%dh / %dh", hours, updated.Description, updated.ActualHours, updated.EstimatedHours)
			if left := updated.HoursLeft(); left > 0 {
				fmt.Printf(", %dh left)\n", left)
			} else {
				fmt.Println(")")
			}
			return nil
		},
	}
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			task, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}

			if err := app.Tasks.Complete(ctx, task.ID); err != nil {
				return err
			}

			fmt.Printf("Completed %q\n", task.Description)
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			task, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}

			if err := app.Tasks.Delete(ctx, task.ID); err != nil {
				return err
			}

			fmt.Printf("Deleted %q\n", task.Description)
			return nil
		},
	}
}
