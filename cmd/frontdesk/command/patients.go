package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hospital-mgmt/frontdesk/guard"
	"github.com/hospital-mgmt/frontdesk/roster"
)

var patientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "Manage patients",
	Long:  "The patients command is used to list, add, edit, delete and export patients",
}

var patientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List patients",
	Long:  "The list command is used to retrieve the list of all patients",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(cmd, listPatients) },
}

func listPatients(ctx context.Context, g *guard.Guard, controller *roster.Controller) error {
	if !g.Check(guard.PageDashboard) {
		return nil
	}
	if err := controller.LoadPatients(ctx); err != nil {
		return reported(err)
	}
	fmt.Printf("Found %v patients\n", len(controller.Patients()))
	return nil
}

// requireCapability loads the signed in user and refuses actions the dashboard would not
// offer them.
func requireCapability(controller *roster.Controller, action roster.Action) error {
	controller.LoadUserInfo()
	if !controller.Can(action) {
		return fmt.Errorf("%s is not available for your role", action)
	}
	return nil
}

func parsePatientId(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid patient id %q", arg)
	}
	return id, nil
}

func init() {
	patientsCmd.AddCommand(patientsListCmd)
	rootCmd.AddCommand(patientsCmd)
}
