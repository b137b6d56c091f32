package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunm/violino/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write progress to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		path := args[0]
		if err := export.Write(path, svc.ExportData()); err != nil {
			return fmt.Errorf("export progress: %w", err)
		}

		fmt.Println("Progress written to", path)
		return nil
	},
}
