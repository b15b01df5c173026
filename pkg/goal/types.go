package goal

import "time"

// Type fixes which completion-tracking fields apply to a goal.
type Type string

const (
	TypeDaily   Type = "daily"
	TypeWeekly  Type = "weekly"
	TypeMonthly Type = "monthly"
)

// Status is the lifecycle state of a goal. Only active goals generate
// calendar tasks; paused and archived goals are excluded from activity
// checks entirely.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// Priority orders goals within a day or week; it has no other effect.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recurrence narrows which days or counts inside the goal's date range count
// as active or target.
type Recurrence struct {
	Frequency    string
	DaysOfWeek   []time.Weekday // 0=Sunday..6=Saturday
	DayOfMonth   int
	TargetCount  int
	MinimumCount int
}

// Subtask is a checkable item defined on a goal. Completed here is the
// template default from the file; live per-period state lives in the goal's
// completion maps.
type Subtask struct {
	ID        string
	Title     string
	Completed bool
}

// Goal is one trackable objective, backed by a single markdown file.
type Goal struct {
	ID          string
	Title       string
	Description string

	Type      Type
	Status    Status
	StartDate time.Time // inclusive, UTC midnight
	EndDate   time.Time // inclusive, UTC midnight
	Priority  Priority

	Recurrence *Recurrence
	Subtasks   []Subtask

	// Completions marks whole-goal completion by day or week key. Weekly
	// goals use week keys; daily goals may carry legacy day keys.
	Completions []string

	DailySubtaskCompletions  map[string][]string // day key → completed subtask ids
	WeeklySubtaskCompletions map[string][]string // week key → completed subtask ids
	MonthlyProgress          map[string]int      // month key → count

	Tags     []string
	Category string
	FilePath string

	// Body is the raw markdown after the frontmatter, preserved verbatim.
	Body string
}

// IsActive reports whether the goal participates in calendar derivation.
func (g *Goal) IsActive() bool {
	return g.Status == StatusActive
}

// HasSubtasks reports whether the goal defines checkable items.
func (g *Goal) HasSubtasks() bool {
	return len(g.Subtasks) > 0
}

// Subtask returns the subtask with the given id.
func (g *Goal) Subtask(id string) (Subtask, bool) {
	for _, st := range g.Subtasks {
		if st.ID == id {
			return st, true
		}
	}
	return Subtask{}, false
}

// PriorityRank maps priorities to sort ranks: high < medium < low. Unknown
// priorities sort with medium.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}
