// Package main is the entry point for dungeongen.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeongen/internal/cli"
	dgerrors "github.com/samdwyer/dungeongen/internal/errors"
	"github.com/samdwyer/dungeongen/internal/telemetry"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file for local development
	// This makes HONEYCOMB_DUNGEONGEN_API_KEY available
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Tracing only runs when an exporter destination is configured
	if telemetry.ConfigureEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		return report(os.Stderr, err)
	}
	return 0
}

// report prints err for the user and returns the exit status for it.
func report(w io.Writer, err error) int {
	if errors.Is(err, context.Canceled) {
		return 130 // Standard shell convention for SIGINT
	}
	fmt.Fprintln(w, "Error:", dgerrors.UserMessage(err))
	switch dgerrors.GetCode(err) {
	case dgerrors.ErrCodeInvalidConfig, dgerrors.ErrCodeInvalidFormat:
		return 2 // usage error
	}
	return 1
}
