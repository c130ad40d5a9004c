package command

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hospital-mgmt/frontdesk/app"
	"github.com/hospital-mgmt/frontdesk/auth"
	"github.com/hospital-mgmt/frontdesk/guard"
	"github.com/hospital-mgmt/frontdesk/schedule"
)

var loginParams = struct {
	Username string
	Password string
}{}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in",
	Long:  "The login command exchanges a username and password for a session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginParams.Password == "" {
			password, err := newPrompter(cmd).Secret("Password: ")
			if err != nil {
				return err
			}
			loginParams.Password = password
		}
		return Run(cmd, login, app.CredentialPages())
	},
}

func login(ctx context.Context, g *guard.Guard, controller *auth.Controller, timers *schedule.Timers) error {
	if !g.Check(guard.PageLogin) {
		return nil
	}

	err := controller.SubmitLogin(ctx, auth.LoginForm{
		Username: loginParams.Username,
		Password: loginParams.Password,
	})
	if err != nil {
		return reported(err)
	}
	return timers.Wait(ctx)
}

func init() {
	loginCmd.Flags().StringVarP(&loginParams.Username, "username", "u", "", "The username")
	loginCmd.Flags().StringVarP(&loginParams.Password, "password", "p", "", "The password, read from stdin when omitted")

	rootCmd.AddCommand(loginCmd)
}
