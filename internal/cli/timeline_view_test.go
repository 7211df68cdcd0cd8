package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/jmalmgren/tempus/internal/domain"
	"github.com/jmalmgren/tempus/internal/service"
	"github.com/jmalmgren/tempus/internal/testutil"
)

func timelineFixture() *service.TimelineReport {
	finish := testutil.Day(2025, time.June, 4)
	late := testutil.Day(2025, time.June, 9)

	return &service.TimelineReport{
		Rows: []service.TimelineRow{
			{
				Task:           testutil.NewTestTask("write essay", testutil.WithEstimate(8)),
				Feasible:       true,
				PossibleFinish: &finish,
			},
			{
				Task: testutil.NewTestTask("paint shed",
					testutil.WithDates(testutil.Day(2025, time.June, 7), testutil.Day(2025, time.June, 8)),
					testutil.WithEstimate(6),
				),
				Feasible:       false,
				PossibleFinish: &late,
			},
		},
		WeeklyHours: 40,
		DemandHours: 14,
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTimelineModel_CursorMovesWithinBounds(t *testing.T) {
	m := newTimelineModel(timelineFixture(), testutil.Day(2025, time.June, 1))

	// Up at the top stays put.
	updated, _ := m.Update(keyMsg("k"))
	assert.Equal(t, 0, updated.(*timelineModel).cursor)

	updated, _ = m.Update(keyMsg("j"))
	assert.Equal(t, 1, updated.(*timelineModel).cursor)

	// Down at the bottom stays put.
	updated, _ = m.Update(keyMsg("j"))
	assert.Equal(t, 1, updated.(*timelineModel).cursor)
}

func TestTimelineModel_QuitKeys(t *testing.T) {
	m := newTimelineModel(timelineFixture(), testutil.Day(2025, time.June, 1))

	_, cmd := m.Update(keyMsg("q"))
	assert.NotNil(t, cmd)
}

func TestTimelineModel_ViewShowsSelectedTaskDetail(t *testing.T) {
	m := newTimelineModel(timelineFixture(), testutil.Day(2025, time.June, 1))

	out := m.View()
	assert.Contains(t, out, "TIMELINE")
	assert.Contains(t, out, "write essay")
	assert.Contains(t, out, "paint shed")
	assert.Contains(t, out, "2025-06-04")

	m.Update(keyMsg("j"))
	out = m.View()
	assert.Contains(t, out, "past deadline")
	assert.Contains(t, out, "2025-06-09")
}

func TestTimelineModel_CompletedRowShowsDone(t *testing.T) {
	report := &service.TimelineReport{
		Rows: []service.TimelineRow{
			{Task: testutil.NewTestTask("archive photos", testutil.WithStatus(domain.TaskCompleted))},
		},
		WeeklyHours: 40,
	}

	m := newTimelineModel(report, testutil.Day(2025, time.June, 1))
	assert.Contains(t, m.View(), "done")
}
