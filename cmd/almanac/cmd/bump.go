package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"almanac/pkg/goal"
)

var (
	bumpMonth string
	bumpDelta int
)

var bumpCmd = &cobra.Command{
	Use:   "bump <goal-id>",
	Short: "Adjust a monthly goal's progress count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGoal(args[0])
		if err != nil {
			return err
		}
		if g.Type != goal.TypeMonthly {
			return fmt.Errorf("%s is a %s goal; bump only applies to monthly goals", g.Title, g.Type)
		}

		monthKey := bumpMonth
		if monthKey == "" {
			now := time.Now()
			monthKey = goal.MonthKey(now.Year(), now.Month())
		}

		n := g.AdjustMonthlyProgress(monthKey, bumpDelta)
		if err := st.Save(g); err != nil {
			return err
		}

		if jsonOut {
			return outputJSON(map[string]interface{}{
				"id": g.ID, "month": monthKey, "count": n, "target": g.MonthlyTarget(),
			})
		}
		fmt.Printf("%s: %d/%d for %s\n", g.Title, n, g.MonthlyTarget(), monthKey)
		return nil
	},
}

func init() {
	bumpCmd.Flags().StringVar(&bumpMonth, "month", "", "month key (YYYY-MM), defaults to current")
	bumpCmd.Flags().IntVarP(&bumpDelta, "count", "n", 1, "amount to add (negative to subtract)")
	rootCmd.AddCommand(bumpCmd)
}
