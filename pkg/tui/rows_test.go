package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/pkg/calendar"
	"almanac/pkg/goal"
)

func TestBuildRowsSections(t *testing.T) {
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)
	goals := []*goal.Goal{
		{
			ID: "run", Title: "Run", Type: goal.TypeDaily, Status: goal.StatusActive,
			StartDate: start, EndDate: end, Priority: goal.PriorityMedium,
			Subtasks: []goal.Subtask{{ID: "laps", Title: "Laps"}},
		},
		{
			ID: "review", Title: "Weekly review", Type: goal.TypeWeekly, Status: goal.StatusActive,
			StartDate: start, EndDate: end, Priority: goal.PriorityHigh,
		},
		{
			ID: "books", Title: "Read books", Type: goal.TypeMonthly, Status: goal.StatusActive,
			StartDate: start, EndDate: end, Priority: goal.PriorityLow,
			Recurrence: &goal.Recurrence{TargetCount: 2},
		},
	}

	today := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)
	month := calendar.BuildMonth(2024, time.May, goals, today)
	rows := buildRows(month, today)

	var headers []string
	for _, r := range rows {
		if r.Kind == rowHeader {
			headers = append(headers, r.Label)
		}
	}
	assert.Equal(t, []string{"Tasks", "This Week", "This Month"}, headers)

	first := firstSelectable(rows)
	require.GreaterOrEqual(t, first, 0)
	assert.Equal(t, rowDay, rows[first].Kind)
	assert.Equal(t, "run", rows[first].GoalID)

	// cursor motion skips section headers
	next := nextSelectable(rows, first, 1)
	assert.NotEqual(t, rowHeader, rows[next].Kind)
	assert.Equal(t, "review", rows[next].GoalID)
}

func TestBuildRowsOutsideGrid(t *testing.T) {
	month := calendar.BuildMonth(2024, time.May, nil, time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC))
	rows := buildRows(month, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, rows)
	assert.Equal(t, -1, firstSelectable(rows))
}

func TestParseNewGoal(t *testing.T) {
	typ, title := parseNewGoal("weekly: Clean the house")
	assert.Equal(t, goal.TypeWeekly, typ)
	assert.Equal(t, "Clean the house", title)

	typ, title = parseNewGoal("monthly:Read two books")
	assert.Equal(t, goal.TypeMonthly, typ)
	assert.Equal(t, "Read two books", title)

	typ, title = parseNewGoal("Stretch every morning")
	assert.Equal(t, goal.TypeDaily, typ)
	assert.Equal(t, "Stretch every morning", title)

	// unknown prefix stays part of the title
	typ, title = parseNewGoal("someday: learn piano")
	assert.Equal(t, goal.TypeDaily, typ)
	assert.Equal(t, "someday: learn piano", title)
}
