package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"almanac/pkg/goal"
)

var (
	addType     string
	addCategory string
	addSubtasks []string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new goal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")

		var typ goal.Type
		switch addType {
		case "daily", "":
			typ = goal.TypeDaily
		case "weekly":
			typ = goal.TypeWeekly
		case "monthly":
			typ = goal.TypeMonthly
		default:
			return fmt.Errorf("invalid type %q (use daily, weekly, or monthly)", addType)
		}

		g, err := st.CreateGoal(addCategory, title, typ)
		if err != nil {
			return err
		}

		if len(addSubtasks) > 0 {
			for _, t := range addSubtasks {
				t = strings.TrimSpace(t)
				if t == "" {
					continue
				}
				g.AddSubtask(uuid.NewString()[:8], t)
			}
			if err := st.Save(g); err != nil {
				return err
			}
		}

		if jsonOut {
			return outputJSON(goalToMap(g))
		}
		fmt.Printf("Created: %s\n", g.FilePath)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addType, "type", "daily", "goal type (daily|weekly|monthly)")
	addCmd.Flags().StringVar(&addCategory, "category", "", "category folder")
	addCmd.Flags().StringSliceVar(&addSubtasks, "subtask", nil, "subtask title (repeatable)")
	rootCmd.AddCommand(addCmd)
}
