package goal

// Mutation helpers for the per-period completion state. These only update the
// entity; persistence is the store's job and happens after every mutation.

// ToggleSubtaskForDay flips a subtask's membership in the day's completion
// set and returns the new completed state.
func (g *Goal) ToggleSubtaskForDay(dayKey, subtaskID string) bool {
	if g.DailySubtaskCompletions == nil {
		g.DailySubtaskCompletions = map[string][]string{}
	}
	g.DailySubtaskCompletions[dayKey], _ = toggleMember(g.DailySubtaskCompletions[dayKey], subtaskID)
	return containsString(g.DailySubtaskCompletions[dayKey], subtaskID)
}

// ToggleSubtaskForWeek flips a subtask's membership in the week's completion
// set and returns the new completed state.
func (g *Goal) ToggleSubtaskForWeek(weekKey, subtaskID string) bool {
	if g.WeeklySubtaskCompletions == nil {
		g.WeeklySubtaskCompletions = map[string][]string{}
	}
	g.WeeklySubtaskCompletions[weekKey], _ = toggleMember(g.WeeklySubtaskCompletions[weekKey], subtaskID)
	return containsString(g.WeeklySubtaskCompletions[weekKey], subtaskID)
}

// ToggleCompletion flips a whole-goal completion key (a day key for daily
// goals, a week key for weekly ones) and returns the new state.
func (g *Goal) ToggleCompletion(key string) bool {
	var added bool
	g.Completions, added = toggleMember(g.Completions, key)
	return added
}

// AdjustMonthlyProgress adds delta to a month's counter, clamping at zero,
// and returns the new count.
func (g *Goal) AdjustMonthlyProgress(monthKey string, delta int) int {
	if g.MonthlyProgress == nil {
		g.MonthlyProgress = map[string]int{}
	}
	n := g.MonthlyProgress[monthKey] + delta
	if n < 0 {
		n = 0
	}
	g.MonthlyProgress[monthKey] = n
	return n
}

// AddSubtask appends a subtask definition. The id must be unique within the
// goal; duplicates are rejected.
func (g *Goal) AddSubtask(id, title string) bool {
	if _, exists := g.Subtask(id); exists {
		return false
	}
	g.Subtasks = append(g.Subtasks, Subtask{ID: id, Title: title})
	return true
}

func toggleMember(items []string, s string) ([]string, bool) {
	for i, it := range items {
		if it == s {
			return append(items[:i], items[i+1:]...), false
		}
	}
	return append(items, s), true
}
