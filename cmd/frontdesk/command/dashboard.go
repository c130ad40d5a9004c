package command

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hospital-mgmt/frontdesk/guard"
	"github.com/hospital-mgmt/frontdesk/roster"
	"github.com/hospital-mgmt/frontdesk/view/html"
)

var dashboardParams = struct {
	Html string
}{}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the patient dashboard",
	Long:  "The dashboard command loads the patient list and shows it, optionally also as an HTML snapshot",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(cmd, dashboard) },
}

func dashboard(ctx context.Context, g *guard.Guard, controller *roster.Controller, page *html.Page) error {
	if !g.Check(guard.PageDashboard) {
		return nil
	}

	err := controller.Start(ctx)
	if dashboardParams.Html != "" {
		if writeErr := writePage(page, dashboardParams.Html); writeErr != nil {
			return writeErr
		}
	}
	return reported(err)
}

func writePage(page *html.Page, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	if err := page.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("unable to render dashboard: %w", err)
	}
	return f.Close()
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardParams.Html, "html", "", "Also write the dashboard to this HTML file")

	rootCmd.AddCommand(dashboardCmd)
}
