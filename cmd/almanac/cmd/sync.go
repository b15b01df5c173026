package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"almanac/pkg/config"
	gsync "almanac/pkg/sync"
)

var initRemote string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the data directory (git repo, config file)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefault(dataDir); err == nil {
			fmt.Printf("Wrote %s\n", config.Path(dataDir))
		}
		return gsync.InitRepo(fsb.Root, initRemote)
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the data directory with its git remote",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gsync.SyncRepo(fsb.Root)
	},
}

func init() {
	initCmd.Flags().StringVar(&initRemote, "remote", "", "git remote URL")
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(syncCmd)
}
