package calendar

import "time"

// ClassifyDay grades a day's task list. Future days are never graded, and a
// current day with nothing done yet stays at none rather than incomplete.
func ClassifyDay(tasks []Task, isFuture, isToday bool) DayStatus {
	if len(tasks) == 0 || isFuture {
		return StatusNone
	}
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	switch {
	case done == len(tasks):
		return StatusComplete
	case isToday && done == 0:
		return StatusNone
	case done > 0:
		return StatusPartial
	default:
		return StatusIncomplete
	}
}

// ClassifyWeek grades a week's weekly-goal entries against the week's end
// date. While the week is still running (end today or later), an ungraded
// week stays at none; once fully past, nothing done means incomplete.
func ClassifyWeek(tasks []WeekTask, weekEnd, today time.Time) DayStatus {
	if len(tasks) == 0 {
		return StatusNone
	}
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	if done == len(tasks) {
		return StatusComplete
	}
	if !weekEnd.Before(today) {
		if done > 0 {
			return StatusPartial
		}
		return StatusNone
	}
	if done == 0 {
		return StatusIncomplete
	}
	return StatusPartial
}

// ClassifyMonth grades a month from its qualifying days: current-month,
// non-future days with at least one task. All complete is green, at least
// half is orange, anything less red.
func ClassifyMonth(days []Day) MonthStatus {
	qualifying, complete := 0, 0
	for _, d := range days {
		if !d.InMonth || d.Future || len(d.Tasks) == 0 {
			continue
		}
		qualifying++
		if d.Status == StatusComplete {
			complete++
		}
	}
	if qualifying == 0 {
		return MonthNone
	}
	ratio := float64(complete) / float64(qualifying)
	switch {
	case ratio == 1:
		return MonthGreen
	case ratio >= 0.5:
		return MonthOrange
	default:
		return MonthRed
	}
}
