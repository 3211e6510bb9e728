// Package main provides the entry point for the rocket CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/orbitkit/rocket-go/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		// SilenceErrors suppresses Cobra output
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				os.Stderr.WriteString("Error: " + exitErr.Message + "\n")
			}
			stop()
			os.Exit(exitErr.Code)
		}
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}
