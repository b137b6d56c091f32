package cmd

import (
	"github.com/arjunm/violino/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "violino",
	Short: "Violin practice tracker for kids",
	Long:  "Violino — terminal companion that turns daily violin practice into levels, streaks and stars.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VIOLINO_DB env var)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then VIOLINO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
