package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/pkg/goal"
)

func activeDaily(id string, p goal.Priority, subtasks ...goal.Subtask) *goal.Goal {
	return &goal.Goal{
		ID:        id,
		Title:     id,
		Type:      goal.TypeDaily,
		Status:    goal.StatusActive,
		Priority:  p,
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.December, 31),
		Subtasks:  subtasks,
	}
}

func TestDayTasksExpandSubtasks(t *testing.T) {
	g := activeDaily("routine", goal.PriorityMedium,
		goal.Subtask{ID: "a", Title: "Stretch"},
		goal.Subtask{ID: "b", Title: "Journal"},
	)
	g.DailySubtaskCompletions = map[string][]string{"2024-01-10": {"b"}}

	tasks := DayTasks([]*goal.Goal{g}, date(2024, time.January, 10))
	require.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0].SubtaskID)
	assert.False(t, tasks[0].Completed)
	assert.Equal(t, "b", tasks[1].SubtaskID)
	assert.True(t, tasks[1].Completed)
}

func TestDayTasksSkipGoalsWithoutSubtasks(t *testing.T) {
	g := activeDaily("no-subtasks", goal.PriorityHigh)
	assert.Empty(t, DayTasks([]*goal.Goal{g}, date(2024, time.January, 10)))
}

func TestDayTasksPriorityOrder(t *testing.T) {
	low := activeDaily("low", goal.PriorityLow, goal.Subtask{ID: "l", Title: "L"})
	high := activeDaily("high", goal.PriorityHigh, goal.Subtask{ID: "h", Title: "H"})
	med := activeDaily("med", goal.PriorityMedium, goal.Subtask{ID: "m", Title: "M"})

	tasks := DayTasks([]*goal.Goal{low, high, med}, date(2024, time.January, 10))
	require.Len(t, tasks, 3)
	assert.Equal(t, "high", tasks[0].GoalID)
	assert.Equal(t, "med", tasks[1].GoalID)
	assert.Equal(t, "low", tasks[2].GoalID)
}

func TestDayTasksExcludePausedAndOutOfRange(t *testing.T) {
	paused := activeDaily("paused", goal.PriorityHigh, goal.Subtask{ID: "x"})
	paused.Status = goal.StatusPaused

	ended := activeDaily("ended", goal.PriorityHigh, goal.Subtask{ID: "y"})
	ended.EndDate = date(2024, time.January, 5)

	tasks := DayTasks([]*goal.Goal{paused, ended}, date(2024, time.January, 10))
	assert.Empty(t, tasks)
}

func TestWeekTasksMonthOverlapFilter(t *testing.T) {
	inJan := &goal.Goal{
		ID:        "january-only",
		Type:      goal.TypeWeekly,
		Status:    goal.StatusActive,
		Priority:  goal.PriorityMedium,
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.January, 31),
	}
	spanning := &goal.Goal{
		ID:        "jan-feb",
		Type:      goal.TypeWeekly,
		Status:    goal.StatusActive,
		Priority:  goal.PriorityMedium,
		StartDate: date(2024, time.January, 20),
		EndDate:   date(2024, time.February, 10),
	}

	week := goal.WeekOf(date(2024, time.January, 29)) // spans Jan 29 – Feb 4

	jan := WeekTasks([]*goal.Goal{inJan, spanning}, week, 2024, time.January)
	require.Len(t, jan, 2, "both goals overlap January")

	feb := WeekTasks([]*goal.Goal{inJan, spanning}, week, 2024, time.February)
	require.Len(t, feb, 1, "only the spanning goal overlaps February")
	assert.Equal(t, "jan-feb", feb[0].GoalID)
}

func TestWeekTasksCompletion(t *testing.T) {
	g := &goal.Goal{
		ID:          "review",
		Type:        goal.TypeWeekly,
		Status:      goal.StatusActive,
		Priority:    goal.PriorityMedium,
		StartDate:   date(2024, time.January, 1),
		EndDate:     date(2024, time.December, 31),
		Completions: []string{"2024-01-08"},
	}

	week := goal.WeekOf(date(2024, time.January, 10))
	tasks := WeekTasks([]*goal.Goal{g}, week, 2024, time.January)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Completed)
}

func TestMonthTasks(t *testing.T) {
	g := &goal.Goal{
		ID:              "gym",
		Type:            goal.TypeMonthly,
		Status:          goal.StatusActive,
		Priority:        goal.PriorityMedium,
		StartDate:       date(2024, time.January, 1),
		EndDate:         date(2024, time.December, 31),
		Recurrence:      &goal.Recurrence{TargetCount: 4, MinimumCount: 2},
		MonthlyProgress: map[string]int{"2024-01": 2},
	}

	tasks := MonthTasks([]*goal.Goal{g}, 2024, time.January)
	require.Len(t, tasks, 1)
	assert.Equal(t, 2, tasks[0].Current)
	assert.Equal(t, 4, tasks[0].Target)
	assert.Equal(t, 2, tasks[0].Minimum)
	assert.True(t, tasks[0].Completed)

	tasks = MonthTasks([]*goal.Goal{g}, 2024, time.February)
	require.Len(t, tasks, 1)
	assert.Equal(t, 0, tasks[0].Current)
	assert.False(t, tasks[0].Completed)
}
