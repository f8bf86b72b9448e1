// Command generator is the reference generation worker. The API server
// dispatches runs to it over HTTP; it also claims pending runs nobody started.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/postcraft-backend/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.RunWorker(ctx); err != nil {
		log.Fatalf("generator: %v", err)
	}
}
