package domain

import "fmt"

type TaskStatus string

const (
	TaskNotStarted TaskStatus = "not_started"
	TaskOngoing    TaskStatus = "ongoing"
	TaskCompleted  TaskStatus = "completed"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"not_started": true, "ongoing": true, "completed": true,
}

// ParseTaskStatus maps user-facing status spellings onto TaskStatus values.
// Accepts both the canonical snake_case form and the short labels used by
// import files ("NS", "OG", "C", "Not started", ...).
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch normalizeStatus(s) {
	case "not_started", "notstarted", "ns":
		return TaskNotStarted, nil
	case "ongoing", "on_going", "og":
		return TaskOngoing, nil
	case "completed", "c":
		return TaskCompleted, nil
	}
	return "", fmt.Errorf("unknown task status %q", s)
}

func normalizeStatus(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c+('a'-'A'))
		case c == ' ' || c == '-':
			out = append(out, '_')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

// Label returns the human-readable display form of the status.
func (s TaskStatus) Label() string {
	switch s {
	case TaskNotStarted:
		return "Not started"
	case TaskOngoing:
		return "Ongoing"
	case TaskCompleted:
		return "Completed"
	}
	return string(s)
}
