package goal

import "time"

// ActiveOnDay reports whether a daily goal applies on the given date: inside
// the goal's date range, active status, and — when the recurrence lists
// daysOfWeek — the date's weekday is one of them.
func (g *Goal) ActiveOnDay(d time.Time) bool {
	if g.Type != TypeDaily || !g.IsActive() {
		return false
	}
	d = Midnight(d)
	if d.Before(g.StartDate) || d.After(g.EndDate) {
		return false
	}
	if g.Recurrence != nil && len(g.Recurrence.DaysOfWeek) > 0 {
		for _, wd := range g.Recurrence.DaysOfWeek {
			if d.Weekday() == wd {
				return true
			}
		}
		return false
	}
	return true
}

// ActiveInWeek reports whether a weekly goal's date range overlaps the week.
func (g *Goal) ActiveInWeek(w WeekInfo) bool {
	if g.Type != TypeWeekly || !g.IsActive() {
		return false
	}
	return overlaps(g.StartDate, g.EndDate, w.StartDate, w.EndDate)
}

// ActiveInMonth reports whether a monthly goal's date range overlaps the
// calendar month.
func (g *Goal) ActiveInMonth(year int, month time.Month) bool {
	if g.Type != TypeMonthly || !g.IsActive() {
		return false
	}
	first, last := MonthBounds(year, month)
	return overlaps(g.StartDate, g.EndDate, first, last)
}

// OverlapsMonth reports whether the goal's date range intersects the calendar
// month at all, regardless of type. Weekly goals are attached to every week
// row of a month view they overlap, so a goal spanning a month boundary shows
// up in both adjacent months.
func (g *Goal) OverlapsMonth(year int, month time.Month) bool {
	first, last := MonthBounds(year, month)
	return overlaps(g.StartDate, g.EndDate, first, last)
}

// CompletedForWeek reports whole-goal completion for the week identified by
// weekKey: either the key is in Completions, or the goal has subtasks and
// every one of them is recorded complete for that week. A goal with subtasks
// and no recorded completions is not complete even when Completions is empty.
func (g *Goal) CompletedForWeek(weekKey string) bool {
	for _, k := range g.Completions {
		if k == weekKey {
			return true
		}
	}
	if !g.HasSubtasks() {
		return false
	}
	done := g.WeeklySubtaskCompletions[weekKey]
	if len(done) == 0 {
		return false
	}
	for _, st := range g.Subtasks {
		if !containsString(done, st.ID) {
			return false
		}
	}
	return true
}

// SubtaskDoneOnDay reports whether the subtask is recorded complete for the
// given day key.
func (g *Goal) SubtaskDoneOnDay(dayKey, subtaskID string) bool {
	return containsString(g.DailySubtaskCompletions[dayKey], subtaskID)
}

// SubtaskDoneInWeek reports whether the subtask is recorded complete for the
// given week key.
func (g *Goal) SubtaskDoneInWeek(weekKey, subtaskID string) bool {
	return containsString(g.WeeklySubtaskCompletions[weekKey], subtaskID)
}

// MonthlyCount returns the recorded progress count for a month key.
func (g *Goal) MonthlyCount(monthKey string) int {
	return g.MonthlyProgress[monthKey]
}

// MonthlyTarget returns the recurrence target count, defaulting to 1.
func (g *Goal) MonthlyTarget() int {
	if g.Recurrence != nil && g.Recurrence.TargetCount > 0 {
		return g.Recurrence.TargetCount
	}
	return 1
}

// MonthlyMinimum returns the count required for the month to display as
// complete, defaulting to 1.
func (g *Goal) MonthlyMinimum() int {
	if g.Recurrence != nil && g.Recurrence.MinimumCount > 0 {
		return g.Recurrence.MinimumCount
	}
	return 1
}

// MonthlyCompleted reports whether the month's count has reached the minimum.
func (g *Goal) MonthlyCompleted(monthKey string) bool {
	return g.MonthlyCount(monthKey) >= g.MonthlyMinimum()
}

func containsString(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}
