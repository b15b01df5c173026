package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"almanac/pkg/calendar"
	"almanac/pkg/goal"
)

const minWidth = 60
const minHeight = 12

// gridWidth is the width of the calendar panel: a week label plus seven
// 5-wide day cells plus the week status column.
func gridWidth(total int) int {
	w := 5 + 7*5 + 2
	if w > total-22 {
		w = total / 2
	}
	return w
}

// View implements tea.Model.
func (m Model) View() string {
	w := m.width
	h := m.height
	if w < minWidth {
		w = minWidth
	}
	if h < minHeight {
		h = minHeight
	}

	if m.showHelpModal {
		return placeOverlay(m.renderHelpModal(), w, h)
	}
	if m.showDeleteConfirm {
		return placeOverlay(m.renderDeleteModal(), w, h)
	}
	if m.month == nil {
		return "loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader(w))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")

	headerLines := 2
	footerLines := 2
	if m.isInputMode {
		footerLines++
	}
	contentHeight := h - headerLines - footerLines

	leftWidth := gridWidth(w)
	rightWidth := w - leftWidth - 1

	leftPanel := m.renderCalendarPanel(leftWidth, contentHeight)
	rightPanel := m.renderTaskPanel(rightWidth, contentHeight)

	sepColor := ColorGrayDim
	if m.focusedPane == 1 {
		sepColor = ColorPurple
	}
	sep := lipgloss.NewStyle().Foreground(sepColor).Render("│")
	for i := 0; i < contentHeight; i++ {
		b.WriteString(getLine(leftPanel, i, leftWidth))
		b.WriteString(sep)
		b.WriteString(getLine(rightPanel, i, rightWidth))
		b.WriteString("\n")
	}

	if m.isInputMode {
		b.WriteString(InputPromptStyle.Render("new> "))
		b.WriteString(m.textInput.View())
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")
	b.WriteString(m.renderFooter(w))

	return b.String()
}

func (m Model) renderHeader(width int) string {
	title := HeaderStyle.Render(fmt.Sprintf("%s %d", m.viewMonth, m.viewYear))

	grade := monthGradeStyle(m.month.Status).Render(string(m.month.Status))
	stats := HeaderCountStyle.Render(fmt.Sprintf("%d/%d days complete  ", m.month.CompletedDays, m.month.TotalDays)) + grade

	status := ""
	if m.statusMsg != "" && time.Now().Before(m.statusTimeout) {
		status = "  " + lipgloss.NewStyle().Foreground(ColorCyan).Render(m.statusMsg)
	}

	gap := width - lipgloss.Width(title) - lipgloss.Width(stats) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + status + stats
}

func (m Model) renderCalendarPanel(width, height int) string {
	var lines []string

	// Weekday header, Monday first
	header := "     "
	for _, wd := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		header += fmt.Sprintf(" %s  ", wd)
	}
	lines = append(lines, WeekLabelStyle.Render(header))
	lines = append(lines, "")

	for _, week := range m.month.Weeks {
		row := "     "
		if week.Info.WeekNumber > 0 {
			row = WeekLabelStyle.Render(fmt.Sprintf(" W%02d ", week.Info.WeekNumber))
		}
		for _, day := range week.Days {
			row += m.renderDayCell(day)
		}
		row += " " + dayStyle(week.Status).Render(dayIcon(week.Status))
		lines = append(lines, row)
	}

	lines = append(lines, "")
	lines = append(lines, m.renderLegend())

	// Pad so the data dir path lands at the bottom
	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	pathLine := ""
	if m.dataDir != "" {
		pathLine = lipgloss.NewStyle().Foreground(ColorGrayDim).Render(fileHyperlink(m.dataDir))
	}
	lines = append(lines, pathLine)

	return strings.Join(lines, "\n")
}

// renderDayCell draws one 5-wide grid cell: day number plus status icon.
func (m Model) renderDayCell(day calendar.Day) string {
	text := fmt.Sprintf(" %2d%s ", day.Date.Day(), dayIcon(day.Status))

	if goal.SameDay(day.Date, m.selected) {
		return SelectedStyle.Render(text)
	}
	if day.IsToday {
		return TodayStyle.Render(text)
	}
	if !day.InMonth {
		return DayOutsideStyle.Render(text)
	}
	return dayStyle(day.Status).Render(text)
}

func (m Model) renderLegend() string {
	return DayCompleteStyle.Render(IconComplete) + FooterStyle.Render(" done  ") +
		DayPartialStyle.Render(IconPartial) + FooterStyle.Render(" partial  ") +
		DayIncompleteStyle.Render(IconIncomplete) + FooterStyle.Render(" missed")
}

func (m Model) renderTaskPanel(width, height int) string {
	var lines []string

	heading := m.selected.Format("Monday, January 2")
	lines = append(lines, " "+HeaderStyle.Render(heading))
	lines = append(lines, "")

	if len(m.rows) == 0 {
		lines = append(lines, FooterStyle.Render(" Nothing scheduled. Press 'a' to add a goal."))
	}

	for i, row := range m.rows {
		lines = append(lines, m.renderTaskRow(row, i == m.taskCursor && m.focusedPane == 1, width))
	}

	// Selected goal's notes below the rows
	if g := m.detailGoal(); g != nil && g.Body != "" {
		lines = append(lines, "")
		rendered := g.Body
		if m.glamourRenderer != nil {
			if out, err := m.glamourRenderer.Render(g.Body); err == nil {
				rendered = out
			}
		}
		rendered = strings.TrimRight(rendered, "\n ")
		lines = append(lines, strings.Split(rendered, "\n")...)
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// detailGoal is the goal whose notes fill the bottom of the task panel.
func (m Model) detailGoal() *goal.Goal {
	if m.taskCursor < 0 || m.taskCursor >= len(m.rows) {
		return nil
	}
	row := m.rows[m.taskCursor]
	if row.Kind == rowHeader {
		return nil
	}
	for _, g := range m.goals {
		if g.ID == row.GoalID {
			return g
		}
	}
	return nil
}

func (m Model) renderTaskRow(row taskRow, selected bool, width int) string {
	if row.Kind == rowHeader {
		return " " + SectionHeaderStyle.Render(row.Label)
	}

	var check, label string
	switch row.Kind {
	case rowMonth:
		if row.Completed {
			check = TaskDoneStyle.Render(IconCheckDone)
		} else {
			check = TaskPendingStyle.Render(IconCheckOpen)
		}
		label = fmt.Sprintf("%s  %s %d/%d", row.Label, progressBar(row.Current, row.Target), row.Current, row.Target)
		if row.Minimum < row.Target {
			label += fmt.Sprintf(" (min %d)", row.Minimum)
		}
	default:
		if row.Completed {
			check = TaskDoneStyle.Render(IconCheckDone)
		} else {
			check = TaskPendingStyle.Render(IconCheckOpen)
		}
		label = row.Label
	}

	switch row.Priority {
	case goal.PriorityHigh:
		label = PriorityHighStyle.Render("! ") + label
	case goal.PriorityLow:
		label = PriorityLowStyle.Render("· ") + label
	default:
		label = "  " + label
	}

	line := "   " + check + " " + label
	if selected {
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		return SelectedStyle.Render(line)
	}
	return line
}

func (m Model) renderFooter(width int) string {
	help := m.keys.ShortHelp()
	if m.isInputMode {
		help = "enter create  esc cancel  (prefix title with daily:/weekly:/monthly:)"
	} else if m.focusedPane == 1 {
		help = "↑↓ tasks  space toggle  +/- count  e $EDITOR  d delete  tab calendar  ? help"
	}
	return FooterStyle.Render(help)
}

func (m Model) renderHelpModal() string {
	var b strings.Builder

	b.WriteString(ModalTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(ColorBlue).Width(16)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	for _, binding := range m.keys.FullHelp() {
		b.WriteString(keyStyle.Render(binding[0]))
		b.WriteString(descStyle.Render(binding[1]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(FooterStyle.Render("Press Esc or ? to close"))

	return ModalStyle.Render(b.String())
}

func (m Model) renderDeleteModal() string {
	var b strings.Builder

	title := ""
	if m.deleteTarget != nil {
		title = m.deleteTarget.Title
	}

	b.WriteString(ModalTitleStyle.Render("Delete Goal"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Delete '%s' and its history?\n\n", title))
	b.WriteString(lipgloss.NewStyle().Foreground(ColorGreen).Render("[y]") + " Yes  ")
	b.WriteString(lipgloss.NewStyle().Foreground(ColorRed).Render("[n]") + " No")

	return ModalStyle.Render(b.String())
}

// progressBar renders a small filled/empty bar for a monthly counter.
func progressBar(current, target int) string {
	const cells = 8
	if target < 1 {
		target = 1
	}
	filled := current * cells / target
	if filled > cells {
		filled = cells
	}
	return DayCompleteStyle.Render(strings.Repeat("█", filled)) +
		DayOutsideStyle.Render(strings.Repeat("░", cells-filled))
}

// fileHyperlink wraps a file path in an OSC 8 terminal hyperlink so it's clickable.
func fileHyperlink(path string) string {
	url := "file://" + path
	return fmt.Sprintf("\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\", url, path)
}

func getLine(block string, idx int, width int) string {
	lines := strings.Split(block, "\n")
	if idx < len(lines) {
		line := lines[idx]
		lineWidth := lipgloss.Width(line)
		if lineWidth < width {
			return line + strings.Repeat(" ", width-lineWidth)
		}
		return line
	}
	return strings.Repeat(" ", width)
}

func placeOverlay(modal string, width, height int) string {
	modalLines := strings.Split(modal, "\n")

	topPadding := (height - len(modalLines)) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	leftPadding := (width - lipgloss.Width(modalLines[0])) / 2
	if leftPadding < 0 {
		leftPadding = 0
	}

	var result strings.Builder
	for i := 0; i < topPadding; i++ {
		result.WriteString("\n")
	}

	for _, line := range modalLines {
		result.WriteString(strings.Repeat(" ", leftPadding))
		result.WriteString(line)
		result.WriteString("\n")
	}

	return result.String()
}
