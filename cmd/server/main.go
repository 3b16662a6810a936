// Command server runs the wardrobe daemon: the local API, the local store
// and the background sync with the remote database.
//
// Configuration is read from CONFIG_PATH (default ./wardrobe.yaml) and the
// environment. SYNC_OWNER_ID and AUTH_JWT_SECRET are required.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/wardrobe-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
