package tui

import (
	"time"

	"almanac/pkg/calendar"
	"almanac/pkg/goal"
)

type rowKind int

const (
	rowHeader rowKind = iota
	rowDay
	rowWeek
	rowMonth
)

// taskRow is one line of the task panel: a section header or a selectable
// task derived from the calendar view model.
type taskRow struct {
	Kind      rowKind
	Label     string
	GoalID    string
	SubtaskID string
	Priority  goal.Priority
	Completed bool

	// monthly counter fields, rowMonth only
	Current int
	Target  int
	Minimum int
}

// buildRows flattens the selected day's tasks, its week's goals, and the
// month's counters into the panel's row list.
func buildRows(m *calendar.Month, selected time.Time) []taskRow {
	var rows []taskRow

	day, week := findDay(m, selected)

	if day != nil && len(day.Tasks) > 0 {
		rows = append(rows, taskRow{Kind: rowHeader, Label: "Tasks"})
		for _, t := range day.Tasks {
			rows = append(rows, taskRow{
				Kind:      rowDay,
				Label:     t.GoalTitle + ": " + t.Title,
				GoalID:    t.GoalID,
				SubtaskID: t.SubtaskID,
				Priority:  t.Priority,
				Completed: t.Completed,
			})
		}
	}

	if week != nil && len(week.Tasks) > 0 {
		rows = append(rows, taskRow{Kind: rowHeader, Label: "This Week"})
		for _, t := range week.Tasks {
			rows = append(rows, taskRow{
				Kind:      rowWeek,
				Label:     t.Title,
				GoalID:    t.GoalID,
				Priority:  t.Priority,
				Completed: t.Completed,
			})
		}
	}

	if len(m.MonthlyTasks) > 0 {
		rows = append(rows, taskRow{Kind: rowHeader, Label: "This Month"})
		for _, t := range m.MonthlyTasks {
			rows = append(rows, taskRow{
				Kind:      rowMonth,
				Label:     t.Title,
				GoalID:    t.GoalID,
				Priority:  t.Priority,
				Completed: t.Completed,
				Current:   t.Current,
				Target:    t.Target,
				Minimum:   t.Minimum,
			})
		}
	}

	return rows
}

// findDay locates the grid cell and its row for a date; nil when the date
// isn't in the displayed grid.
func findDay(m *calendar.Month, date time.Time) (*calendar.Day, *calendar.Week) {
	for wi := range m.Weeks {
		for di := range m.Weeks[wi].Days {
			if goal.SameDay(m.Weeks[wi].Days[di].Date, date) {
				return &m.Weeks[wi].Days[di], &m.Weeks[wi]
			}
		}
	}
	return nil, nil
}

// nextSelectable moves a cursor to the nearest non-header row in the given
// direction, returning the cursor unchanged when there is none.
func nextSelectable(rows []taskRow, from, dir int) int {
	for i := from + dir; i >= 0 && i < len(rows); i += dir {
		if rows[i].Kind != rowHeader {
			return i
		}
	}
	return from
}

// firstSelectable returns the first non-header row index, or -1.
func firstSelectable(rows []taskRow) int {
	for i, r := range rows {
		if r.Kind != rowHeader {
			return i
		}
	}
	return -1
}
