// Package main is the entry point for the scadparam CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/scadparam/scadparam/internal/cmd"
	oerrors "github.com/scadparam/scadparam/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()

		// Only print if the command layer hasn't already printed it
		var exitErr *oerrors.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Printed {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
