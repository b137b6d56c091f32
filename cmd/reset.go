package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset daily counters, or everything with --all",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		all, _ := cmd.Flags().GetBool("all")
		if all {
			svc.ResetAllProgress(cmd.Context())
			fmt.Println("All progress wiped. Nickname and avatar kept.")
		} else {
			svc.ResetDailyStats(cmd.Context())
			fmt.Println("Today's counters reset.")
		}

		flushAndClose(st, svc)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Wipe XP, levels, streaks and song history")
}
