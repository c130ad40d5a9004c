package command

import (
	"github.com/spf13/cobra"

	"github.com/hospital-mgmt/frontdesk/auth"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	Long:  "The logout command forgets the stored session",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(cmd, logout) },
}

func logout(controller *auth.Controller) error {
	return controller.Logout()
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
