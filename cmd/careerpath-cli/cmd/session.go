package cmd

import (
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage session storage",
}

var sessionEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the session, dropping cached projects, domains and the selection",
	Long: `End the current session. Cached projects, generated domains, the ikigai
summary and the selected project are discarded. Task progress is kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()

		n, err := GetServices().EndSession(ctx)
		if err != nil {
			return err
		}
		successColor.Printf("Session ended, %d cached entries removed\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionEndCmd)
}
