package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or change the player profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		avatar, _ := cmd.Flags().GetString("avatar")

		changed := false
		if name != "" {
			svc.SetNickname(cmd.Context(), name)
			changed = true
		}
		if avatar != "" {
			svc.SetAvatarEmoji(cmd.Context(), avatar)
			changed = true
		}

		state := svc.State()
		display := state.Nickname
		if display == "" {
			display = "Player"
		}
		fmt.Printf("%s %s  (best streak %d days)\n",
			state.AvatarEmoji, display, state.BestStreak)

		if changed {
			flushAndClose(st, svc)
		} else {
			_ = st.Close()
		}
		return nil
	},
}

func init() {
	profileCmd.Flags().String("name", "", "Set the nickname")
	profileCmd.Flags().String("avatar", "", "Set the avatar emoji")
}
