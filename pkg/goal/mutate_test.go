package goal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustMonthlyProgressClampsAtZero(t *testing.T) {
	g := &Goal{}

	n := g.AdjustMonthlyProgress("2024-05", -3)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, g.MonthlyProgress["2024-05"])

	g.AdjustMonthlyProgress("2024-05", 2)
	n = g.AdjustMonthlyProgress("2024-05", -5)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, g.MonthlyProgress["2024-05"])
}

func TestAdjustMonthlyProgressCounts(t *testing.T) {
	g := &Goal{}

	assert.Equal(t, 1, g.AdjustMonthlyProgress("2024-05", 1))
	assert.Equal(t, 2, g.AdjustMonthlyProgress("2024-05", 1))
	assert.Equal(t, 1, g.AdjustMonthlyProgress("2024-05", -1))

	// months are independent counters
	assert.Equal(t, 1, g.AdjustMonthlyProgress("2024-06", 1))
	assert.Equal(t, 1, g.MonthlyProgress["2024-05"])
}

func TestToggleSubtaskForDay(t *testing.T) {
	g := &Goal{Subtasks: []Subtask{{ID: "laps", Title: "Laps"}}}

	assert.True(t, g.ToggleSubtaskForDay("2024-05-15", "laps"))
	assert.True(t, g.SubtaskDoneOnDay("2024-05-15", "laps"))

	assert.False(t, g.ToggleSubtaskForDay("2024-05-15", "laps"))
	assert.False(t, g.SubtaskDoneOnDay("2024-05-15", "laps"))
	assert.Empty(t, g.DailySubtaskCompletions["2024-05-15"])

	// other days are untouched
	g.ToggleSubtaskForDay("2024-05-15", "laps")
	assert.False(t, g.SubtaskDoneOnDay("2024-05-16", "laps"))
}

func TestToggleSubtaskForWeek(t *testing.T) {
	g := &Goal{Subtasks: []Subtask{{ID: "plan", Title: "Plan"}}}

	assert.True(t, g.ToggleSubtaskForWeek("2024-05-13", "plan"))
	assert.True(t, g.SubtaskDoneInWeek("2024-05-13", "plan"))

	assert.False(t, g.ToggleSubtaskForWeek("2024-05-13", "plan"))
	assert.False(t, g.SubtaskDoneInWeek("2024-05-13", "plan"))
}

func TestToggleCompletion(t *testing.T) {
	g := &Goal{}

	assert.True(t, g.ToggleCompletion("2024-05-13"))
	assert.Equal(t, []string{"2024-05-13"}, g.Completions)

	assert.True(t, g.ToggleCompletion("2024-05-20"))
	assert.False(t, g.ToggleCompletion("2024-05-13"))
	assert.Equal(t, []string{"2024-05-20"}, g.Completions)
}

func TestAddSubtaskRejectsDuplicateID(t *testing.T) {
	g := &Goal{}

	assert.True(t, g.AddSubtask("laps", "Laps"))
	assert.False(t, g.AddSubtask("laps", "More laps"))
	assert.Len(t, g.Subtasks, 1)
	assert.Equal(t, "Laps", g.Subtasks[0].Title)
}
