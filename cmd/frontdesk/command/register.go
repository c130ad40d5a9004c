package command

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hospital-mgmt/frontdesk/app"
	"github.com/hospital-mgmt/frontdesk/auth"
	"github.com/hospital-mgmt/frontdesk/guard"
	"github.com/hospital-mgmt/frontdesk/schedule"
)

var registerParams = struct {
	Username        string
	Role            string
	Password        string
	ConfirmPassword string
}{}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Long:  "The register command creates a doctor or receptionist account",
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt := newPrompter(cmd)
		if registerParams.Password == "" {
			password, err := prompt.Secret("Password: ")
			if err != nil {
				return err
			}
			registerParams.Password = password
		}
		if registerParams.ConfirmPassword == "" {
			confirm, err := prompt.Secret("Confirm password: ")
			if err != nil {
				return err
			}
			registerParams.ConfirmPassword = confirm
		}
		return Run(cmd, register, app.CredentialPages())
	},
}

func register(ctx context.Context, g *guard.Guard, controller *auth.Controller, timers *schedule.Timers) error {
	if !g.Check(guard.PageRegister) {
		return nil
	}

	controller.CheckConfirmPassword(registerParams.Password, registerParams.ConfirmPassword)
	err := controller.SubmitRegistration(ctx, auth.RegistrationForm{
		Username: registerParams.Username,
		Password: registerParams.Password,
		Role:     registerParams.Role,
	}, registerParams.ConfirmPassword)
	if err != nil {
		return reported(err)
	}
	return timers.Wait(ctx)
}

func init() {
	registerCmd.Flags().StringVarP(&registerParams.Username, "username", "u", "", "The username")
	registerCmd.Flags().StringVarP(&registerParams.Role, "role", "r", "", "The role of the account (doctor or receptionist)")
	registerCmd.Flags().StringVarP(&registerParams.Password, "password", "p", "", "The password, read from stdin when omitted")
	registerCmd.Flags().StringVar(&registerParams.ConfirmPassword, "confirm-password", "", "The password again, read from stdin when omitted")

	rootCmd.AddCommand(registerCmd)
}
