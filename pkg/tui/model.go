package tui

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"almanac/pkg/calendar"
	"almanac/pkg/goal"
	"almanac/pkg/store"
	gsync "almanac/pkg/sync"
)

// FileChangedMsg is sent when the file watcher detects changes.
type FileChangedMsg struct{}

// SyncDoneMsg is sent when git sync completes.
type SyncDoneMsg struct {
	Err error
}

// EditorFinishedMsg is sent when $EDITOR returns.
type EditorFinishedMsg struct {
	Err error
}

// Model is the Bubble Tea model for the calendar TUI.
type Model struct {
	store   *store.Store
	dataDir string
	keys    KeyMap
	width   int
	height  int

	goals     []*goal.Goal
	today     time.Time
	viewYear  int
	viewMonth time.Month
	month     *calendar.Month
	selected  time.Time

	focusedPane int // 0 = calendar grid, 1 = task list
	rows        []taskRow
	taskCursor  int

	// Modal state
	showHelpModal     bool
	showDeleteConfirm bool
	deleteTarget      *goal.Goal

	// Input mode (for adding goals)
	isInputMode bool
	textInput   textinput.Model

	// Status message
	statusMsg     string
	statusTimeout time.Time

	// Cached glamour renderer (expensive to create)
	glamourRenderer *glamour.TermRenderer
	glamourWidth    int
}

// NewModel creates a new TUI model. dataDir is the git-backed root, used for
// sync.
func NewModel(s *store.Store, dataDir string) Model {
	ti := textinput.New()
	ti.Placeholder = "goal title (prefix with weekly: or monthly:)"
	ti.CharLimit = 96

	today := goal.Midnight(time.Now())
	m := Model{
		store:     s,
		dataDir:   dataDir,
		keys:      DefaultKeyMap(),
		textInput: ti,
		today:     today,
		viewYear:  today.Year(),
		viewMonth: today.Month(),
		selected:  today,
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		rightWidth := msg.Width - gridWidth(msg.Width) - 1 - 2
		if rightWidth < 20 {
			rightWidth = 20
		}
		m.getGlamourRenderer(rightWidth)
		m.reload()
		return m, tea.ClearScreen

	case FileChangedMsg:
		m.reload()
		return m, nil

	case SyncDoneMsg:
		if msg.Err != nil {
			m.setStatus("Sync failed: " + msg.Err.Error())
		} else {
			m.setStatus("Synced successfully")
			m.reload()
		}
		return m, nil

	case EditorFinishedMsg:
		m.reload()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.isInputMode {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Input mode handling
	if m.isInputMode {
		switch msg.Type {
		case tea.KeyEsc:
			m.isInputMode = false
			return m, nil
		case tea.KeyEnter:
			raw := strings.TrimSpace(m.textInput.Value())
			if raw != "" {
				typ, title := parseNewGoal(raw)
				g, err := m.store.CreateGoal("", title, typ)
				if err != nil {
					m.setStatus("Error: " + err.Error())
				} else {
					m.setStatus("Created: " + g.Title)
					m.reload()
				}
			}
			m.isInputMode = false
			return m, nil
		default:
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
	}

	// Help modal
	if m.showHelpModal {
		switch msg.String() {
		case "esc", "enter", "?", "q":
			m.showHelpModal = false
		}
		return m, nil
	}

	// Delete confirmation
	if m.showDeleteConfirm {
		switch msg.String() {
		case "y", "Y":
			if err := m.store.Delete(m.deleteTarget); err != nil {
				m.setStatus("Delete failed: " + err.Error())
			} else {
				m.setStatus("Deleted: " + m.deleteTarget.Title)
				m.reload()
			}
			m.showDeleteConfirm = false
			m.deleteTarget = nil
		case "n", "N", "esc":
			m.showDeleteConfirm = false
			m.deleteTarget = nil
		}
		return m, nil
	}

	// Normal mode
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.store.Flush()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.focusedPane == 1 {
			m.taskCursor = nextSelectable(m.rows, m.taskCursor, -1)
		} else {
			m.moveDay(-7)
		}

	case key.Matches(msg, m.keys.Down):
		if m.focusedPane == 1 {
			m.taskCursor = nextSelectable(m.rows, m.taskCursor, 1)
		} else {
			m.moveDay(7)
		}

	case key.Matches(msg, m.keys.Left):
		if m.focusedPane == 0 {
			m.moveDay(-1)
		}

	case key.Matches(msg, m.keys.Right):
		if m.focusedPane == 0 {
			m.moveDay(1)
		}

	case key.Matches(msg, m.keys.PrevMonth):
		m.shiftMonth(-1)

	case key.Matches(msg, m.keys.NextMonth):
		m.shiftMonth(1)

	case key.Matches(msg, m.keys.Today):
		m.today = goal.Midnight(time.Now())
		m.selected = m.today
		m.viewYear = m.today.Year()
		m.viewMonth = m.today.Month()
		m.rebuild()

	case key.Matches(msg, m.keys.Tab):
		m.focusedPane = (m.focusedPane + 1) % 2
		if m.focusedPane == 1 && (m.taskCursor < 0 || m.taskCursor >= len(m.rows)) {
			m.taskCursor = firstSelectable(m.rows)
		}

	case key.Matches(msg, m.keys.Space):
		if m.focusedPane == 0 {
			m.focusedPane = 1
			m.taskCursor = firstSelectable(m.rows)
			break
		}
		m.toggleRow()

	case key.Matches(msg, m.keys.Increment):
		m.adjustRow(1)

	case key.Matches(msg, m.keys.Decrement):
		m.adjustRow(-1)

	case key.Matches(msg, m.keys.Edit):
		if g := m.selectedGoal(); g != nil {
			return m, m.openEditor(g)
		}
		m.setStatus("Select a task first (tab)")

	case key.Matches(msg, m.keys.Add):
		m.isInputMode = true
		m.textInput.Reset()
		m.textInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		if g := m.selectedGoal(); g != nil {
			m.deleteTarget = g
			m.showDeleteConfirm = true
		} else {
			m.setStatus("Select a task first (tab)")
		}

	case key.Matches(msg, m.keys.Reload):
		m.reload()
		m.setStatus("Reloaded")

	case key.Matches(msg, m.keys.Sync):
		return m, m.doSync()

	case key.Matches(msg, m.keys.Help):
		m.showHelpModal = !m.showHelpModal
	}

	return m, nil
}

// moveDay shifts the selected date, following it into the adjacent month when
// it leaves the displayed one.
func (m *Model) moveDay(delta int) {
	m.selected = m.selected.AddDate(0, 0, delta)
	if m.selected.Month() != m.viewMonth || m.selected.Year() != m.viewYear {
		m.viewYear = m.selected.Year()
		m.viewMonth = m.selected.Month()
	}
	m.rebuild()
}

// shiftMonth moves the displayed month, keeping the selected day number where
// possible.
func (m *Model) shiftMonth(delta int) {
	first := time.Date(m.viewYear, m.viewMonth, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	m.viewYear = first.Year()
	m.viewMonth = first.Month()

	_, last := goal.MonthBounds(m.viewYear, m.viewMonth)
	day := m.selected.Day()
	if day > last.Day() {
		day = last.Day()
	}
	m.selected = time.Date(m.viewYear, m.viewMonth, day, 0, 0, 0, 0, time.UTC)
	m.rebuild()
}

// toggleRow flips the state behind the selected task row and queues a save.
func (m *Model) toggleRow() {
	row, g := m.selectedRow()
	if row == nil || g == nil {
		return
	}

	switch row.Kind {
	case rowDay:
		done := g.ToggleSubtaskForDay(goal.DayKey(m.selected), row.SubtaskID)
		if done {
			m.setStatus(row.Label + " ✓")
		} else {
			m.setStatus(row.Label + " unchecked")
		}
	case rowWeek:
		weekKey := goal.WeekOf(m.selected).Key()
		if g.ToggleCompletion(weekKey) {
			m.setStatus(g.Title + " done this week")
		} else {
			m.setStatus(g.Title + " unchecked")
		}
	case rowMonth:
		n := g.AdjustMonthlyProgress(goal.MonthKey(m.viewYear, m.viewMonth), 1)
		m.setStatus(g.Title + ": " + strconv.Itoa(n))
	}

	m.store.QueueSave(g)
	m.rebuild()
}

// adjustRow bumps a monthly counter up or down.
func (m *Model) adjustRow(delta int) {
	row, g := m.selectedRow()
	if row == nil || g == nil || row.Kind != rowMonth {
		return
	}
	n := g.AdjustMonthlyProgress(goal.MonthKey(m.viewYear, m.viewMonth), delta)
	m.setStatus(g.Title + ": " + strconv.Itoa(n))
	m.store.QueueSave(g)
	m.rebuild()
}

func (m *Model) selectedRow() (*taskRow, *goal.Goal) {
	if m.taskCursor < 0 || m.taskCursor >= len(m.rows) {
		return nil, nil
	}
	row := &m.rows[m.taskCursor]
	if row.Kind == rowHeader {
		return nil, nil
	}
	return row, m.goalByID(row.GoalID)
}

func (m *Model) selectedGoal() *goal.Goal {
	_, g := m.selectedRow()
	return g
}

func (m *Model) goalByID(id string) *goal.Goal {
	for _, g := range m.goals {
		if g.ID == id {
			return g
		}
	}
	return nil
}

func (m *Model) reload() {
	goals, err := m.store.LoadGoals()
	if err != nil {
		m.setStatus("Load error: " + err.Error())
		return
	}
	m.goals = goals
	m.today = goal.Midnight(time.Now())
	m.rebuild()
}

// rebuild rederives the month view model and task rows, keeping the task
// cursor on a selectable row.
func (m *Model) rebuild() {
	m.month = calendar.BuildMonth(m.viewYear, m.viewMonth, m.goals, m.today)
	m.rows = buildRows(m.month, m.selected)

	if m.taskCursor >= len(m.rows) {
		m.taskCursor = len(m.rows) - 1
	}
	if m.taskCursor < 0 || (m.taskCursor < len(m.rows) && m.rows[m.taskCursor].Kind == rowHeader) {
		m.taskCursor = firstSelectable(m.rows)
	}
}

// getGlamourRenderer returns a cached glamour renderer, creating one if needed
// or if the width changed.
func (m *Model) getGlamourRenderer(width int) *glamour.TermRenderer {
	if m.glamourRenderer != nil && m.glamourWidth == width {
		return m.glamourRenderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	m.glamourRenderer = r
	m.glamourWidth = width
	return r
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTimeout = time.Now().Add(3 * time.Second)
}

func (m *Model) openEditor(g *goal.Goal) tea.Cmd {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	m.store.Flush()
	c := exec.Command(editor, g.FilePath)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return EditorFinishedMsg{Err: err}
	})
}

func (m Model) doSync() tea.Cmd {
	dir := m.dataDir
	m.store.Flush()
	return func() tea.Msg {
		// silent: git output on stdout would corrupt the alt screen
		return SyncDoneMsg{Err: gsync.Sync(dir, nil, nil)}
	}
}

// parseNewGoal splits an optional "daily:"/"weekly:"/"monthly:" prefix off a
// new goal title.
func parseNewGoal(raw string) (goal.Type, string) {
	if i := strings.Index(raw, ":"); i > 0 {
		switch strings.ToLower(strings.TrimSpace(raw[:i])) {
		case "daily":
			return goal.TypeDaily, strings.TrimSpace(raw[i+1:])
		case "weekly":
			return goal.TypeWeekly, strings.TrimSpace(raw[i+1:])
		case "monthly":
			return goal.TypeMonthly, strings.TrimSpace(raw[i+1:])
		}
	}
	return goal.TypeDaily, raw
}
