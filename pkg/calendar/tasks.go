package calendar

import (
	"sort"
	"time"

	"almanac/pkg/goal"
)

// DayTasks derives the checkable task list for a date: one task per subtask
// of every active daily goal applicable that day, in priority order (ties
// keep the goals' original order). Goals without subtasks produce no tasks.
func DayTasks(goals []*goal.Goal, date time.Time) []Task {
	dayKey := goal.DayKey(date)
	var tasks []Task
	for _, g := range sortByPriority(goals) {
		if !g.ActiveOnDay(date) || !g.HasSubtasks() {
			continue
		}
		for _, st := range g.Subtasks {
			tasks = append(tasks, Task{
				GoalID:    g.ID,
				SubtaskID: st.ID,
				Title:     st.Title,
				GoalTitle: g.Title,
				Priority:  g.Priority,
				Completed: g.SubtaskDoneOnDay(dayKey, st.ID),
			})
		}
	}
	return tasks
}

// WeekTasks derives the weekly-goal entries for a week row of a month view.
// A weekly goal is attached when its range overlaps the displayed month, so
// a week spanning a month boundary can show the goal in both month views.
func WeekTasks(goals []*goal.Goal, week goal.WeekInfo, year int, month time.Month) []WeekTask {
	weekKey := week.Key()
	var tasks []WeekTask
	for _, g := range sortByPriority(goals) {
		if g.Type != goal.TypeWeekly || !g.IsActive() || !g.OverlapsMonth(year, month) {
			continue
		}
		tasks = append(tasks, WeekTask{
			GoalID:    g.ID,
			Title:     g.Title,
			Priority:  g.Priority,
			Completed: g.CompletedForWeek(weekKey),
		})
	}
	return tasks
}

// MonthTasks derives the monthly-goal counters for a displayed month.
func MonthTasks(goals []*goal.Goal, year int, month time.Month) []MonthTask {
	monthKey := goal.MonthKey(year, month)
	var tasks []MonthTask
	for _, g := range sortByPriority(goals) {
		if !g.ActiveInMonth(year, month) {
			continue
		}
		tasks = append(tasks, MonthTask{
			GoalID:    g.ID,
			Title:     g.Title,
			Priority:  g.Priority,
			Current:   g.MonthlyCount(monthKey),
			Target:    g.MonthlyTarget(),
			Minimum:   g.MonthlyMinimum(),
			Completed: g.MonthlyCompleted(monthKey),
		})
	}
	return tasks
}

// sortByPriority returns the goals ordered high, medium, low with original
// relative order preserved within each priority.
func sortByPriority(goals []*goal.Goal) []*goal.Goal {
	sorted := append([]*goal.Goal(nil), goals...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return goal.PriorityRank(sorted[i].Priority) < goal.PriorityRank(sorted[j].Priority)
	})
	return sorted
}
