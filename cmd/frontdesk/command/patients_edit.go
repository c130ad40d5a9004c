package command

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hospital-mgmt/frontdesk/guard"
	"github.com/hospital-mgmt/frontdesk/patients"
	"github.com/hospital-mgmt/frontdesk/pointer"
	"github.com/hospital-mgmt/frontdesk/roster"
)

var patientsEditParams = struct {
	PatientId int64
	Values    patients.Draft
	Changes   patients.Changes
}{}

var patientsEditCmd = &cobra.Command{
	Use:   "edit ID",
	Args:  cobra.ExactArgs(1),
	Short: "Edit a patient",
	Long:  "The edit command is used to update the given fields of a patient, keeping the others",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePatientId(args[0])
		if err != nil {
			return err
		}
		patientsEditParams.PatientId = id
		patientsEditParams.Changes = changedFields(cmd.Flags(), patientsEditParams.Values)
		return Run(cmd, editPatient)
	},
}

func editPatient(ctx context.Context, g *guard.Guard, controller *roster.Controller) error {
	if !g.Check(guard.PageDashboard) {
		return nil
	}
	if err := requireCapability(controller, roster.ActionEdit); err != nil {
		return err
	}
	if err := controller.LoadPatients(ctx); err != nil {
		return reported(err)
	}
	if err := controller.EditPatient(patientsEditParams.PatientId); err != nil {
		return reported(err)
	}

	draft := patientsEditParams.Changes.Apply(controller.Draft())
	return reported(controller.HandlePatientSubmit(ctx, draft))
}

func changedFields(flags *pflag.FlagSet, values patients.Draft) patients.Changes {
	changed := func(name string, value string) *string {
		if !flags.Changed(name) {
			return nil
		}
		return pointer.FromAny(value)
	}
	return patients.Changes{
		FirstName:   changed("first-name", values.FirstName),
		LastName:    changed("last-name", values.LastName),
		DateOfBirth: changed("dob", values.DateOfBirth),
		Gender:      changed("gender", values.Gender),
		Phone:       changed("phone", values.Phone),
		Email:       changed("email", values.Email),
		Address:     changed("address", values.Address),
	}
}

func init() {
	flags := patientsEditCmd.Flags()
	flags.StringVar(&patientsEditParams.Values.FirstName, "first-name", "", "The first name of the patient")
	flags.StringVar(&patientsEditParams.Values.LastName, "last-name", "", "The last name of the patient")
	flags.StringVar(&patientsEditParams.Values.DateOfBirth, "dob", "", "The date of birth (YYYY-MM-DD)")
	flags.StringVar(&patientsEditParams.Values.Gender, "gender", "", "The gender (male, female or other)")
	flags.StringVar(&patientsEditParams.Values.Phone, "phone", "", "The phone number")
	flags.StringVar(&patientsEditParams.Values.Email, "email", "", "The email address")
	flags.StringVar(&patientsEditParams.Values.Address, "address", "", "The postal address")

	patientsCmd.AddCommand(patientsEditCmd)
}
