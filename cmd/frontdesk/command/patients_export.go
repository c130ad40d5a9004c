package command

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hospital-mgmt/frontdesk/guard"
	"github.com/hospital-mgmt/frontdesk/roster"
	"github.com/hospital-mgmt/frontdesk/view/spreadsheet"
)

var patientsExportParams = struct {
	Path string
}{}

var patientsExportCmd = &cobra.Command{
	Use:   "export FILE",
	Args:  cobra.ExactArgs(1),
	Short: "Export patients to a spreadsheet",
	Long:  "The export command is used to write the patient list to an xlsx file",
	RunE: func(cmd *cobra.Command, args []string) error {
		patientsExportParams.Path = args[0]
		return Run(cmd, exportPatients)
	},
}

func exportPatients(ctx context.Context, g *guard.Guard, controller *roster.Controller) error {
	if !g.Check(guard.PageDashboard) {
		return nil
	}
	controller.LoadUserInfo()
	if err := controller.LoadPatients(ctx); err != nil {
		return reported(err)
	}

	rows := controller.Rows()
	if err := spreadsheet.NewReport(rows, time.Now()).Save(patientsExportParams.Path); err != nil {
		return err
	}
	fmt.Printf("Exported %v patients to %s\n", len(rows), patientsExportParams.Path)
	return nil
}

func init() {
	patientsCmd.AddCommand(patientsExportCmd)
}
