package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"almanac/pkg/calendar"
	"almanac/pkg/goal"
)

var monthCmd = &cobra.Command{
	Use:   "month [YYYY-MM]",
	Short: "Print the month view",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		today := goal.Midnight(time.Now())

		year, mon := today.Year(), today.Month()
		if len(args) == 1 {
			t, err := time.Parse("2006-01", args[0])
			if err != nil {
				return fmt.Errorf("invalid month %q (use YYYY-MM)", args[0])
			}
			year, mon = t.Year(), t.Month()
		}

		goals, err := st.LoadGoals()
		if err != nil {
			return err
		}
		m := calendar.BuildMonth(year, mon, goals, today)

		if jsonOut {
			return outputJSON(m)
		}

		printMonth(m)
		return nil
	},
}

func printMonth(m *calendar.Month) {
	fmt.Printf("%s %d — %s (%d/%d days complete)\n\n", m.Month, m.Year, m.Status, m.CompletedDays, m.TotalDays)
	fmt.Println("      Mo  Tu  We  Th  Fr  Sa  Su")

	for _, week := range m.Weeks {
		label := "     "
		if week.Info.WeekNumber > 0 {
			label = fmt.Sprintf(" W%02d ", week.Info.WeekNumber)
		}
		var cells []string
		for _, day := range week.Days {
			mark := statusMark(day.Status)
			if !day.InMonth {
				cells = append(cells, fmt.Sprintf(" %2d ", day.Date.Day()))
				continue
			}
			cells = append(cells, fmt.Sprintf("%2d%s ", day.Date.Day(), mark))
		}
		fmt.Printf("%s%s %s\n", label, strings.Join(cells, ""), statusMark(week.Status))
	}

	if len(m.MonthlyTasks) > 0 {
		fmt.Println("\nMonthly goals:")
		for _, t := range m.MonthlyTasks {
			mark := " "
			if t.Completed {
				mark = "✓"
			}
			fmt.Printf("  %s %s %d/%d\n", mark, t.Title, t.Current, t.Target)
		}
	}
}

func statusMark(s calendar.DayStatus) string {
	switch s {
	case calendar.StatusComplete:
		return "✓"
	case calendar.StatusPartial:
		return "~"
	case calendar.StatusIncomplete:
		return "✗"
	default:
		return " "
	}
}

func init() {
	rootCmd.AddCommand(monthCmd)
}
