package goal

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"almanac/pkg/frontmatter"
)

// DefaultFarFuture is the end date assumed for goals that never specify one.
var DefaultFarFuture = time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC)

// Options carries the ambient inputs record mapping needs. Zero values fall
// back to the current date and DefaultFarFuture.
type Options struct {
	Today     time.Time
	FarFuture time.Time
}

func (o Options) fill() Options {
	if o.Today.IsZero() {
		o.Today = Midnight(time.Now())
	}
	if o.FarFuture.IsZero() {
		o.FarFuture = DefaultFarFuture
	}
	return o
}

// FromRecord builds a Goal from a parsed frontmatter record plus the raw file
// content. Missing fields default rather than error: type daily, status
// active, priority medium, startDate today, endDate far-future.
func FromRecord(rec frontmatter.Record, rawContent, filePath, category string, opts Options) *Goal {
	opts = opts.fill()
	body := frontmatter.Body(rawContent)

	g := &Goal{
		ID:        idFromPath(filePath),
		Title:     extractTitle(body),
		Type:      parseType(rec["type"].AsString()),
		Status:    parseStatus(rec["status"].AsString()),
		Priority:  parsePriority(rec["priority"].AsString()),
		StartDate: parseDayOr(rec["startDate"].AsString(), opts.Today),
		EndDate:   parseDayOr(rec["endDate"].AsString(), opts.FarFuture),
		Category:  category,
		FilePath:  filePath,
		Body:      body,
	}
	g.Description = extractDescription(body)
	g.Completions = rec["completions"].AsList()
	g.Tags = rec["tags"].AsList()
	g.Subtasks = parseSubtasks(rec["subtasks"])
	g.DailySubtaskCompletions = parseStringSetMap(rec["dailySubtaskCompletions"])
	g.WeeklySubtaskCompletions = parseStringSetMap(rec["weeklySubtaskCompletions"])
	g.MonthlyProgress = parseCountMap(rec["monthlyProgress"])
	g.Recurrence = parseRecurrence(rec["recurrence"])
	return g
}

// ToRecord converts a Goal back to its generic frontmatter form. Every field
// of the canonical order is present except monthlyProgress (omitted when
// empty) and recurrence (omitted when absent).
func ToRecord(g *Goal) frontmatter.Record {
	rec := frontmatter.Record{
		"type":      frontmatter.Scalar(string(g.Type)),
		"status":    frontmatter.Scalar(string(g.Status)),
		"startDate": frontmatter.Scalar(DayKey(g.StartDate)),
		"endDate":   frontmatter.Scalar(DayKey(g.EndDate)),
		"priority":  frontmatter.Scalar(string(g.Priority)),
	}

	rec["completions"] = frontmatter.List(g.Completions)
	rec["tags"] = frontmatter.List(g.Tags)

	objs := make([]map[string]string, 0, len(g.Subtasks))
	for _, st := range g.Subtasks {
		objs = append(objs, map[string]string{
			"id":        st.ID,
			"title":     st.Title,
			"completed": strconv.FormatBool(st.Completed),
		})
	}
	rec["subtasks"] = frontmatter.Objects(objs)

	rec["dailySubtaskCompletions"] = stringSetMapValue(g.DailySubtaskCompletions)
	rec["weeklySubtaskCompletions"] = stringSetMapValue(g.WeeklySubtaskCompletions)

	if len(g.MonthlyProgress) > 0 {
		m := make(map[string]frontmatter.Value, len(g.MonthlyProgress))
		for k, n := range g.MonthlyProgress {
			m[k] = frontmatter.Scalar(int64(n))
		}
		rec["monthlyProgress"] = frontmatter.Mapping(m)
	}

	if g.Recurrence != nil {
		rec["recurrence"] = recurrenceValue(g.Recurrence)
	}
	return rec
}

// ToMarkdown renders the full goal file. The body is the goal's preserved
// body when one exists; otherwise a minimal title/description block is
// synthesized, for goals authored in-app with no prior file.
func ToMarkdown(g *Goal) string {
	body := g.Body
	if body == "" {
		body = "# " + displayTitle(g) + "\n"
		if g.Description != "" {
			body += "\n" + g.Description + "\n"
		}
	}
	return frontmatter.Compose(ToRecord(g), body)
}

func displayTitle(g *Goal) string {
	if g.Title != "" {
		return g.Title
	}
	return "Untitled Goal"
}

func idFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// extractTitle returns the text of the first `# ` heading, or "Untitled Goal".
func extractTitle(body string) string {
	for _, line := range strings.Split(body, "\n") {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "# ") {
			return strings.TrimSpace(t[2:])
		}
	}
	return "Untitled Goal"
}

// extractDescription pulls the first plain paragraph out of the body: no
// headings, list markers, blockquotes or `**label:**` lines. Best effort —
// this feeds UI summaries, nothing round-trips through it.
func extractDescription(body string) string {
	var para []string
	for _, line := range strings.Split(body, "\n") {
		t := strings.TrimSpace(line)
		if t == "" {
			if len(para) > 0 {
				break
			}
			continue
		}
		if strings.HasPrefix(t, "#") || strings.HasPrefix(t, "-") ||
			strings.HasPrefix(t, "*") || strings.HasPrefix(t, ">") ||
			strings.HasPrefix(t, "**") {
			if len(para) > 0 {
				break
			}
			continue
		}
		para = append(para, t)
	}
	return strings.Join(para, " ")
}

func parseType(s string) Type {
	switch Type(s) {
	case TypeWeekly, TypeMonthly:
		return Type(s)
	default:
		return TypeDaily
	}
}

func parseStatus(s string) Status {
	switch Status(s) {
	case StatusPaused, StatusCompleted, StatusArchived:
		return Status(s)
	default:
		return StatusActive
	}
}

func parsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityHigh, PriorityLow:
		return Priority(s)
	default:
		return PriorityMedium
	}
}

func parseDayOr(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	d, err := ParseDay(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseSubtasks(v frontmatter.Value) []Subtask {
	if v.Kind != frontmatter.KindObjectList {
		return nil
	}
	subtasks := make([]Subtask, 0, len(v.Objects))
	for _, obj := range v.Objects {
		if obj["id"] == "" {
			continue
		}
		subtasks = append(subtasks, Subtask{
			ID:        obj["id"],
			Title:     obj["title"],
			Completed: obj["completed"] == "true",
		})
	}
	return subtasks
}

func parseStringSetMap(v frontmatter.Value) map[string][]string {
	if v.Kind != frontmatter.KindMap || len(v.Map) == 0 {
		return nil
	}
	m := make(map[string][]string, len(v.Map))
	for k, entry := range v.Map {
		m[k] = entry.AsList()
	}
	return m
}

func parseCountMap(v frontmatter.Value) map[string]int {
	if v.Kind != frontmatter.KindMap || len(v.Map) == 0 {
		return nil
	}
	m := make(map[string]int, len(v.Map))
	for k, entry := range v.Map {
		if n, ok := entry.AsInt(); ok {
			m[k] = n
		}
	}
	return m
}

func parseRecurrence(v frontmatter.Value) *Recurrence {
	if v.Kind != frontmatter.KindMap || len(v.Map) == 0 {
		return nil
	}
	r := &Recurrence{Frequency: v.Map["frequency"].AsString()}
	for _, s := range v.Map["daysOfWeek"].AsList() {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 6 {
			r.DaysOfWeek = append(r.DaysOfWeek, time.Weekday(n))
		}
	}
	if n, ok := v.Map["dayOfMonth"].AsInt(); ok {
		r.DayOfMonth = n
	}
	if n, ok := v.Map["targetCount"].AsInt(); ok {
		r.TargetCount = n
	}
	if n, ok := v.Map["minimumCount"].AsInt(); ok {
		r.MinimumCount = n
	}
	return r
}

func recurrenceValue(r *Recurrence) frontmatter.Value {
	m := map[string]frontmatter.Value{}
	if r.Frequency != "" {
		m["frequency"] = frontmatter.Scalar(r.Frequency)
	}
	if len(r.DaysOfWeek) > 0 {
		days := make([]string, 0, len(r.DaysOfWeek))
		for _, wd := range r.DaysOfWeek {
			days = append(days, strconv.Itoa(int(wd)))
		}
		m["daysOfWeek"] = frontmatter.List(days)
	}
	if r.DayOfMonth > 0 {
		m["dayOfMonth"] = frontmatter.Scalar(int64(r.DayOfMonth))
	}
	if r.TargetCount > 0 {
		m["targetCount"] = frontmatter.Scalar(int64(r.TargetCount))
	}
	if r.MinimumCount > 0 {
		m["minimumCount"] = frontmatter.Scalar(int64(r.MinimumCount))
	}
	return frontmatter.Mapping(m)
}

func stringSetMapValue(m map[string][]string) frontmatter.Value {
	if len(m) == 0 {
		return frontmatter.List(nil)
	}
	out := make(map[string]frontmatter.Value, len(m))
	for k, ids := range m {
		sorted := append([]string(nil), ids...)
		sort.Strings(sorted)
		out[k] = frontmatter.List(sorted)
	}
	return frontmatter.Mapping(out)
}
