package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"almanac/pkg/goal"
)

var (
	checkSubtask string
	checkDate    string
)

var checkCmd = &cobra.Command{
	Use:   "check <goal-id>",
	Short: "Mark a goal or subtask complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setChecked(args[0], true)
	},
}

var uncheckCmd = &cobra.Command{
	Use:   "uncheck <goal-id>",
	Short: "Clear a goal or subtask completion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setChecked(args[0], false)
	},
}

func setChecked(id string, want bool) error {
	g, err := loadGoal(id)
	if err != nil {
		return err
	}

	date, err := resolveDate(checkDate)
	if err != nil {
		return err
	}
	dayKey := goal.DayKey(date)
	weekKey := goal.WeekOf(date).Key()

	switch g.Type {
	case goal.TypeDaily:
		if checkSubtask == "" {
			if !g.HasSubtasks() {
				return fmt.Errorf("%s has no subtasks to check", g.Title)
			}
			return fmt.Errorf("daily goals are checked per subtask; pass --subtask <id>")
		}
		if _, ok := g.Subtask(checkSubtask); !ok {
			return fmt.Errorf("no subtask %q on %s", checkSubtask, g.Title)
		}
		if g.SubtaskDoneOnDay(dayKey, checkSubtask) != want {
			g.ToggleSubtaskForDay(dayKey, checkSubtask)
		}

	case goal.TypeWeekly:
		if checkSubtask != "" {
			if _, ok := g.Subtask(checkSubtask); !ok {
				return fmt.Errorf("no subtask %q on %s", checkSubtask, g.Title)
			}
			if g.SubtaskDoneInWeek(weekKey, checkSubtask) != want {
				g.ToggleSubtaskForWeek(weekKey, checkSubtask)
			}
		} else {
			has := false
			for _, k := range g.Completions {
				if k == weekKey {
					has = true
					break
				}
			}
			if has != want {
				g.ToggleCompletion(weekKey)
			}
		}

	case goal.TypeMonthly:
		return fmt.Errorf("monthly goals are counters; use 'almanac bump %s'", id)
	}

	if err := st.Save(g); err != nil {
		return err
	}

	if jsonOut {
		return outputJSON(goalToMap(g))
	}
	verb := "checked"
	if !want {
		verb = "unchecked"
	}
	if checkSubtask != "" {
		fmt.Printf("%s/%s %s for %s\n", g.Title, checkSubtask, verb, dayKey)
	} else {
		fmt.Printf("%s %s for week of %s\n", g.Title, verb, weekKey)
	}
	return nil
}

// resolveDate parses --date, defaulting to today.
func resolveDate(s string) (time.Time, error) {
	if s == "" {
		return goal.Midnight(time.Now()), nil
	}
	d, err := goal.ParseDay(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return d, nil
}

func init() {
	for _, c := range []*cobra.Command{checkCmd, uncheckCmd} {
		c.Flags().StringVar(&checkSubtask, "subtask", "", "subtask id")
		c.Flags().StringVar(&checkDate, "date", "", "date (YYYY-MM-DD), defaults to today")
		rootCmd.AddCommand(c)
	}
}
