// Package calendar derives the month view model from a goal list. Everything
// here is a pure function of (goals, today); nothing is cached between calls
// and nothing is persisted — the builder runs fresh after every mutation.
package calendar

import (
	"time"

	"almanac/pkg/goal"
)

// DayStatus classifies a day's (or week's) completion state.
type DayStatus string

const (
	StatusNone       DayStatus = "none"
	StatusComplete   DayStatus = "complete"
	StatusPartial    DayStatus = "partial"
	StatusIncomplete DayStatus = "incomplete"
)

// MonthStatus is the traffic-light grade for a whole month.
type MonthStatus string

const (
	MonthNone   MonthStatus = "none"
	MonthGreen  MonthStatus = "green"
	MonthOrange MonthStatus = "orange"
	MonthRed    MonthStatus = "red"
)

// Task is one checkable item on a day: a subtask of a daily goal.
type Task struct {
	GoalID    string
	SubtaskID string
	Title     string
	GoalTitle string
	Priority  goal.Priority
	Completed bool
}

// WeekTask is a weekly goal's completion entry for one week row.
type WeekTask struct {
	GoalID    string
	Title     string
	Priority  goal.Priority
	Completed bool
}

// MonthTask is a monthly goal's counter for the displayed month.
type MonthTask struct {
	GoalID    string
	Title     string
	Priority  goal.Priority
	Current   int
	Target    int
	Minimum   int
	Completed bool
}

// Day is one grid cell.
type Day struct {
	Date    time.Time
	InMonth bool // belongs to the displayed month (not padding)
	IsToday bool
	Future  bool
	Tasks   []Task
	Status  DayStatus
}

// Week is one grid row plus the weekly goals attached to it.
type Week struct {
	Info   goal.WeekInfo
	Days   []Day
	Tasks  []WeekTask
	Status DayStatus
}

// Month is the complete view model for one displayed month.
type Month struct {
	Year          int
	Month         time.Month
	Weeks         []Week
	MonthlyTasks  []MonthTask
	Status        MonthStatus
	CompletedDays int
	TotalDays     int
}

// Days returns the flat day sequence of the grid, row by row.
func (m *Month) Days() []Day {
	var days []Day
	for _, w := range m.Weeks {
		days = append(days, w.Days...)
	}
	return days
}
