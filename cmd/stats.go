package cmd

import (
	"fmt"

	"github.com/arjunm/violino/internal/levels"
	"github.com/arjunm/violino/internal/songbook"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state := svc.State()

		name := state.Nickname
		if name == "" {
			name = "Player"
		}

		fmt.Printf("%s %s\n", state.AvatarEmoji, name)
		fmt.Printf("Level %d (%s)  %d XP", state.Level, levels.Name(state.Level), state.XP)
		if toNext := levels.XPToNextLevel(state.XP, state.Level); toNext > 0 {
			fmt.Printf("  (%d to next level)", toNext)
		}
		fmt.Println()
		fmt.Printf("Streak: %d days (best %d)\n", state.StreakDays, state.BestStreak)
		fmt.Printf("Pieces: %d of %d learned, %d three-starred\n",
			len(state.CompletedSongs), len(songbook.All()), len(state.ThreeStarSongs))
		fmt.Printf("Today: %d practices, %d XP\n", state.TodayPracticeCount, state.TodayXP)

		total, err := st.EventRepo().CountPractices(cmd.Context())
		if err == nil {
			fmt.Printf("All time: %d practices\n", total)
		}

		return nil
	},
}
