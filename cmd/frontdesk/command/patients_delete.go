package command

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hospital-mgmt/frontdesk/guard"
	"github.com/hospital-mgmt/frontdesk/roster"
	"github.com/hospital-mgmt/frontdesk/view/terminal"
)

var patientsDeleteParams = struct {
	PatientId int64
	Yes       bool
}{}

var patientsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Args:  cobra.ExactArgs(1),
	Short: "Delete a patient",
	Long:  "The delete command is used to permanently remove a patient after confirmation",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePatientId(args[0])
		if err != nil {
			return err
		}
		patientsDeleteParams.PatientId = id
		return Run(cmd, deletePatient)
	},
}

func deletePatient(ctx context.Context, g *guard.Guard, controller *roster.Controller, term *terminal.Terminal) error {
	if !g.Check(guard.PageDashboard) {
		return nil
	}
	if err := requireCapability(controller, roster.ActionDelete); err != nil {
		return err
	}

	term.AssumeYes(patientsDeleteParams.Yes)
	_, err := controller.DeletePatient(ctx, patientsDeleteParams.PatientId)
	return reported(err)
}

func init() {
	patientsDeleteCmd.Flags().BoolVarP(&patientsDeleteParams.Yes, "yes", "y", false, "Do not ask for confirmation")

	patientsCmd.AddCommand(patientsDeleteCmd)
}
