package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmalmgren/tempus/internal/domain"
	"github.com/jmalmgren/tempus/internal/service"
)

// FormatTimeline formats the schedule report: one row per task with its
// feasibility verdict and projected finish, followed by a capacity summary.
func FormatTimeline(report *service.TimelineReport, now time.Time) string {
	var b strings.Builder

	headers := []string{"DESCRIPTION", "STATUS", "LEFT", "DEADLINE", "POSSIBLE FINISH", ""}
	rows := make([][]string, 0, len(report.Rows))

	for _, row := range report.Rows {
		t := row.Task

		finish := Dim("--")
		marker := Dim("done")
		if t.Status != domain.TaskCompleted {
			if row.PossibleFinish != nil {
				finish = FormatDate(*row.PossibleFinish)
			}
			marker = FeasibilityMarker(row.Feasible)
		}

		rows = append(rows, []string{
			Bold(t.Description),
			StatusPill(t.Status),
			FormatHours(t.HoursLeft()),
			fmt.Sprintf("%s (%s)", FormatDate(t.Deadline), RelativeDateFrom(t.Deadline, now)),
			finish,
			marker,
		})
	}

	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	demand := fmt.Sprintf("%dh demanded", report.DemandHours)
	supply := fmt.Sprintf("%dh available per week", report.WeeklyHours)
	if report.DemandHours > report.WeeklyHours {
		b.WriteString(fmt.Sprintf("%s · %s\n", StyleYellow.Render(demand), StyleFg.Render(supply)))
	} else {
		b.WriteString(fmt.Sprintf("%s · %s\n", StyleGreen.Render(demand), StyleFg.Render(supply)))
	}

	return b.String()
}

// FormatAvailability formats the weekly availability profile.
func FormatAvailability(a *domain.Availability) string {
	var b strings.Builder

	b.WriteString(Header("Weekly availability"))
	b.WriteString("\n\n")

	days := []struct {
		name  string
		hours int
	}{
		{"Monday", a.Monday},
		{"Tuesday", a.Tuesday},
		{"Wednesday", a.Wednesday},
		{"Thursday", a.Thursday},
		{"Friday", a.Friday},
		{"Saturday", a.Saturday},
		{"Sunday", a.Sunday},
	}

	for _, d := range days {
		bar := strings.Repeat("█", d.hours)
		label := StyleDim.Render(fmt.Sprintf("%-10s", d.name))
		if d.hours == 0 {
			b.WriteString(fmt.Sprintf("%s %s\n", label, Dim("0h")))
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", label, StyleBlue.Render(bar), FormatHours(d.hours)))
	}

	b.WriteString(fmt.Sprintf("\n%s %s\n", StyleDim.Render("Total"), Bold(fmt.Sprintf("%dh / week", a.WeeklyHours()))))

	return b.String()
}
