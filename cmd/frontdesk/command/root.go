package command

import (
	"context"
	stdErrors "errors"
	"fmt"
	"os"

	"github.com/DataDog/datadog-agent/pkg/util/fxutil"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/hospital-mgmt/frontdesk/app"
)

var logLevel string

// reportedError is an error the user has already been shown as a notification.
type reportedError struct {
	err error
}

func (r *reportedError) Error() string {
	return r.err.Error()
}

func (r *reportedError) Unwrap() error {
	return r.err
}

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// Run executes a given function with dependencies supplied by the frontdesk DI graph
// `f` must return an error or nothing
// `opts` can be used to supply additional arguments that are not provided by the graph
func Run(cmd *cobra.Command, f interface{}, opts ...fx.Option) error {
	deps := append(opts, fx.Provide(func() context.Context { return cmd.Context() }))
	deps = append(deps, app.Dependencies()...)
	return fxutil.OneShot(f, deps...)
}

var rootCmd = &cobra.Command{
	Use:           "frontdesk",
	Short:         "Front desk client of the hospital management API",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Overwrite zap's log level
		return os.Setenv("LOG_LEVEL", logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "v", "error", "Log Level")
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var r *reportedError
		if !stdErrors.As(err, &r) {
			fmt.Fprintln(os.Stderr, color.RedString(err.Error()))
		}
		return 1
	}
	return 0
}
