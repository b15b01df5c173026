package tui

import (
	"github.com/charmbracelet/lipgloss"

	"almanac/pkg/calendar"
)

// Color palette
var (
	ColorPurple      = lipgloss.Color("#7D56F4")
	ColorGreen       = lipgloss.Color("#25A065")
	ColorBlue        = lipgloss.Color("#4285F4")
	ColorRed         = lipgloss.Color("#E05252")
	ColorYellow      = lipgloss.Color("#E5C07B")
	ColorGray        = lipgloss.Color("#626262")
	ColorGrayDim     = lipgloss.Color("#404040")
	ColorWhite       = lipgloss.Color("#FFFFFF")
	ColorOffWhite    = lipgloss.Color("#D0D0D0")
	ColorOrange      = lipgloss.Color("#D19A66")
	ColorCyan        = lipgloss.Color("#56B6C2")
	ColorSelectionBg = lipgloss.Color("#2D3B4D")
)

// Header and footer styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	HeaderCountStyle = lipgloss.NewStyle().
				Foreground(ColorGray)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)

// Day cell styles, keyed by the day's derived status.
var (
	DayCompleteStyle   = lipgloss.NewStyle().Foreground(ColorGreen)
	DayPartialStyle    = lipgloss.NewStyle().Foreground(ColorYellow)
	DayIncompleteStyle = lipgloss.NewStyle().Foreground(ColorRed)
	DayNoneStyle       = lipgloss.NewStyle().Foreground(ColorOffWhite)
	DayOutsideStyle    = lipgloss.NewStyle().Foreground(ColorGrayDim)
	TodayStyle         = lipgloss.NewStyle().Bold(true).Foreground(ColorCyan)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorSelectionBg)

	WeekLabelStyle = lipgloss.NewStyle().Foreground(ColorGray)
)

// Task list styles
var (
	SectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPurple)

	TaskDoneStyle    = lipgloss.NewStyle().Foreground(ColorGreen)
	TaskPendingStyle = lipgloss.NewStyle().Foreground(ColorOffWhite)

	PriorityHighStyle = lipgloss.NewStyle().Foreground(ColorRed)
	PriorityLowStyle  = lipgloss.NewStyle().Foreground(ColorGray)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPurple).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)
)

// Input styles
var (
	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorPurple).
				Bold(true)
)

// Status icons
const (
	IconComplete   = "●"
	IconPartial    = "◐"
	IconIncomplete = "○"
	IconCheckDone  = "✓"
	IconCheckOpen  = "☐"
)

func dayStyle(status calendar.DayStatus) lipgloss.Style {
	switch status {
	case calendar.StatusComplete:
		return DayCompleteStyle
	case calendar.StatusPartial:
		return DayPartialStyle
	case calendar.StatusIncomplete:
		return DayIncompleteStyle
	default:
		return DayNoneStyle
	}
}

func dayIcon(status calendar.DayStatus) string {
	switch status {
	case calendar.StatusComplete:
		return IconComplete
	case calendar.StatusPartial:
		return IconPartial
	case calendar.StatusIncomplete:
		return IconIncomplete
	default:
		return " "
	}
}

func monthGradeStyle(status calendar.MonthStatus) lipgloss.Style {
	switch status {
	case calendar.MonthGreen:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case calendar.MonthOrange:
		return lipgloss.NewStyle().Foreground(ColorOrange)
	case calendar.MonthRed:
		return lipgloss.NewStyle().Foreground(ColorRed)
	default:
		return lipgloss.NewStyle().Foreground(ColorGray)
	}
}
