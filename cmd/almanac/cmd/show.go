package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"almanac/pkg/goal"
)

var showCmd = &cobra.Command{
	Use:   "show <goal-id>",
	Short: "Show a goal's details and notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGoal(args[0])
		if err != nil {
			return err
		}

		if jsonOut {
			m := goalToMap(g)
			m["body"] = g.Body
			m["subtasks"] = g.Subtasks
			return outputJSON(m)
		}

		fmt.Printf("%s [%s, %s, %s priority]\n", g.Title, g.Type, g.Status, g.Priority)
		fmt.Printf("Range: %s to %s\n", goal.DayKey(g.StartDate), goal.DayKey(g.EndDate))
		if g.Category != "" {
			fmt.Printf("Category: %s\n", g.Category)
		}
		if len(g.Tags) > 0 {
			fmt.Printf("Tags: %s\n", strings.Join(g.Tags, ", "))
		}
		if len(g.Subtasks) > 0 {
			fmt.Println("Subtasks:")
			for _, st := range g.Subtasks {
				fmt.Printf("  - %s (%s)\n", st.Title, st.ID)
			}
		}
		if g.Body != "" {
			fmt.Println()
			fmt.Println(g.Body)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
