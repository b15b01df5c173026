package calendar

import (
	"time"

	"almanac/pkg/goal"
)

// BuildMonth assembles the full view model for one month: a Monday-aligned
// grid padded with the previous and next months' days, per-day task lists and
// statuses, per-week goal rows, and the month's goal counters and grade.
// today drives the future/current distinctions, so callers (and tests) pass
// it explicitly.
func BuildMonth(year int, month time.Month, goals []*goal.Goal, today time.Time) *Month {
	today = goal.Midnight(today)
	first, last := goal.MonthBounds(year, month)

	// Monday-based offset of the 1st, 0–6.
	lead := (int(first.Weekday()) + 6) % 7
	total := lead + last.Day()
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}

	start := first.AddDate(0, 0, -lead)
	days := make([]Day, 0, total)
	for i := 0; i < total; i++ {
		date := start.AddDate(0, 0, i)
		tasks := DayTasks(goals, date)
		isFuture := date.After(today)
		isToday := goal.SameDay(date, today)
		days = append(days, Day{
			Date:    date,
			InMonth: date.Month() == month && date.Year() == year,
			IsToday: isToday,
			Future:  isFuture,
			Tasks:   tasks,
			Status:  ClassifyDay(tasks, isFuture, isToday),
		})
	}

	m := &Month{Year: year, Month: month}
	for row := 0; row < total/7; row++ {
		weekDays := days[row*7 : row*7+7]
		week := Week{Days: weekDays}

		if rowTouchesMonth(weekDays) {
			week.Info = rowWeekInfo(weekDays)
			week.Tasks = WeekTasks(goals, week.Info, year, month)
			week.Status = ClassifyWeek(week.Tasks, week.Info.EndDate, today)
		} else {
			week.Status = StatusNone
		}
		m.Weeks = append(m.Weeks, week)
	}

	m.MonthlyTasks = MonthTasks(goals, year, month)
	m.Status = ClassifyMonth(days)

	for _, d := range days {
		if !d.InMonth || d.Future || len(d.Tasks) == 0 {
			continue
		}
		m.TotalDays++
		if d.Status == StatusComplete {
			m.CompletedDays++
		}
	}
	return m
}

func rowTouchesMonth(days []Day) bool {
	for _, d := range days {
		if d.InMonth {
			return true
		}
	}
	return false
}

// rowWeekInfo computes the canonical week for a grid row from its Monday.
// Rows are Monday-aligned so the first cell is normally the Monday; the
// fallback covers padding-heavy edge rows.
func rowWeekInfo(days []Day) goal.WeekInfo {
	for _, d := range days {
		if d.Date.Weekday() == time.Monday {
			return goal.WeekOf(d.Date)
		}
	}
	for _, d := range days {
		if d.InMonth {
			return goal.WeekOf(d.Date)
		}
	}
	return goal.WeekOf(days[0].Date)
}
