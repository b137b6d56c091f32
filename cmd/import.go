package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunm/violino/internal/export"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore progress from a JSON file",
	Long:  "Restore progress from a file written by `violino export`. The current progress is replaced.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := export.Read(args[0])
		if err != nil {
			return fmt.Errorf("read progress file: %w", err)
		}

		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}

		svc.ReplaceState(cmd.Context(), data)
		flushAndClose(st, svc)

		state := svc.State()
		fmt.Printf("Progress restored: level %d, %d XP, %d day streak\n",
			state.Level, state.XP, state.StreakDays)
		return nil
	},
}
