package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hospital-mgmt/frontdesk/cmd/frontdesk/command"
)

func main() {
	// cancel in-flight requests on sigint or sigterm
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(command.Execute(ctx))
}
