package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"almanac/pkg/goal"
)

var (
	listType   string
	listStatus string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := st.LoadGoals()
		if err != nil {
			return err
		}

		var filtered []*goal.Goal
		for _, g := range goals {
			if listType != "" && string(g.Type) != listType {
				continue
			}
			if listStatus != "" && string(g.Status) != listStatus {
				continue
			}
			filtered = append(filtered, g)
		}

		if jsonOut {
			return outputJSON(goalsToMap(filtered))
		}

		if len(filtered) == 0 {
			fmt.Println("No goals. Run 'almanac add <title>' to create one.")
			return nil
		}

		for _, g := range filtered {
			marker := " "
			if g.Status != goal.StatusActive {
				marker = string(g.Status[0])
			}
			cat := ""
			if g.Category != "" {
				cat = " (" + g.Category + ")"
			}
			fmt.Printf("%s %-8s %s%s\n", marker, g.Type, g.Title, cat)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listType, "type", "", "filter by type (daily|weekly|monthly)")
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status")
	rootCmd.AddCommand(listCmd)
}
