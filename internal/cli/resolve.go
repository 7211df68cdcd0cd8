package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmalmgren/tempus/internal/domain"
)

// resolveTask finds a task by full UUID or unambiguous ID prefix, so the
// short IDs printed by "task list" work as command arguments.
func resolveTask(ctx context.Context, app *App, input string) (*domain.Task, error) {
	if input == "" {
		return nil, fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, t := range tasks {
		if t.ID == input {
			return t, nil
		}
	}

	var matches []*domain.Task
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveCategory finds a category by exact name, full UUID or ID prefix.
func resolveCategory(ctx context.Context, app *App, input string) (*domain.Category, error) {
	if input == "" {
		return nil, fmt.Errorf("category is required")
	}

	categories, err := app.Categories.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range categories {
		if strings.EqualFold(c.Name, input) || c.ID == input {
			return c, nil
		}
	}

	var matches []*domain.Category
	for _, c := range categories {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("category not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("category %q is ambiguous (%d matches)", input, len(matches))
	}
}
