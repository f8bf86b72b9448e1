// Command postctl is a terminal client for the generation API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/postcraft-backend/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Run(ctx, os.Args, os.Stdout); err != nil {
		cancel()
		os.Exit(err.Code)
	}
}
