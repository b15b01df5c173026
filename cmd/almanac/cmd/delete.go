package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <goal-id>",
	Short: "Delete a goal file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGoal(args[0])
		if err != nil {
			return err
		}
		if err := st.Delete(g); err != nil {
			return err
		}
		if jsonOut {
			return outputJSON(map[string]string{"deleted": g.ID})
		}
		fmt.Printf("Deleted: %s\n", g.FilePath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
