package command

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hospital-mgmt/frontdesk/guard"
	"github.com/hospital-mgmt/frontdesk/patients"
	"github.com/hospital-mgmt/frontdesk/roster"
)

var patientsAddParams = patients.Draft{}

var patientsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a patient",
	Long:  "The add command is used to register a new patient",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(cmd, addPatient) },
}

func addPatient(ctx context.Context, g *guard.Guard, controller *roster.Controller) error {
	if !g.Check(guard.PageDashboard) {
		return nil
	}
	if err := requireCapability(controller, roster.ActionAdd); err != nil {
		return err
	}

	controller.ShowAddPatientModal()
	return reported(controller.HandlePatientSubmit(ctx, patientsAddParams))
}

func init() {
	flags := patientsAddCmd.Flags()
	flags.StringVar(&patientsAddParams.FirstName, "first-name", "", "The first name of the patient")
	flags.StringVar(&patientsAddParams.LastName, "last-name", "", "The last name of the patient")
	flags.StringVar(&patientsAddParams.DateOfBirth, "dob", "", "The date of birth (YYYY-MM-DD)")
	flags.StringVar(&patientsAddParams.Gender, "gender", "", "The gender (male, female or other)")
	flags.StringVar(&patientsAddParams.Phone, "phone", "", "The phone number")
	flags.StringVar(&patientsAddParams.Email, "email", "", "The email address")
	flags.StringVar(&patientsAddParams.Address, "address", "", "The postal address")

	patientsCmd.AddCommand(patientsAddCmd)
}
