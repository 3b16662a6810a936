// Command sync performs one full sync of both item collections and exits.
// It is meant for cron jobs and for recovering a device after a long time
// offline.
//
// Usage:
//
//	sync [--collection=self|dependent] [--timeout=2m]
//
// Exit codes: 0 = every collection synced, 1 = any failure or partial upload.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/wardrobe-backend/internal/app"
	"github.com/heartmarshall/wardrobe-backend/internal/config"
	"github.com/heartmarshall/wardrobe-backend/internal/domain"
)

func main() {
	collection := flag.String("collection", "", "sync only this collection (self or dependent)")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	if !cfg.Database.RemoteEnabled() {
		logger.Error("DATABASE_DSN is required for sync")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c, err := app.Build(ctx, cfg, logger, prometheus.NewRegistry())
	if err != nil {
		logger.Error("build components", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	if !c.RemoteEnabled() {
		logger.Error("remote database unreachable")
		os.Exit(1)
	}

	var statuses []domain.SyncStatus
	if *collection != "" {
		st, err := c.Service.Sync(ctx, domain.Collection(*collection))
		if err != nil {
			logger.Error("sync failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		statuses = append(statuses, st)
	} else {
		statuses, err = c.Service.SyncAll(ctx)
		if err != nil {
			logger.Error("sync failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	failed := false
	for _, st := range statuses {
		fmt.Printf("%-10s %-15s %s\n", st.Collection, st.State, st.Message)
		if st.State != domain.SyncStateOK {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
