package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/wardrobe-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wardrobe-backend/internal/adapter/postgres/item"
	"github.com/heartmarshall/wardrobe-backend/internal/adapter/sqlite/localstore"
	"github.com/heartmarshall/wardrobe-backend/internal/config"
	"github.com/heartmarshall/wardrobe-backend/internal/domain"
	"github.com/heartmarshall/wardrobe-backend/internal/metrics"
	"github.com/heartmarshall/wardrobe-backend/internal/service/wardrobe"
)

// Components holds everything the server and the one-shot commands share.
type Components struct {
	Local   *localstore.Store
	Pool    *pgxpool.Pool // nil when running local-only
	Repos   map[domain.Collection]*item.Repo
	Service *wardrobe.Service
	Metrics *metrics.Metrics
}

// Build opens the local store and, when a DSN is configured, the remote
// pool and item repositories, then assembles the wardrobe service.
//
// An unreachable remote is not fatal: the daemon starts local-only and
// logs why. A broken local store is fatal.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*Components, error) {
	local, err := localstore.Open(ctx, cfg.Local, logger)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	c := &Components{
		Local:   local,
		Repos:   make(map[domain.Collection]*item.Repo, 2),
		Metrics: metrics.New(reg),
	}

	if cfg.Database.RemoteEnabled() {
		if err := c.connectRemote(ctx, cfg, logger); err != nil {
			logger.WarnContext(ctx, "remote unavailable, running local-only", slog.String("error", err.Error()))
		}
	} else {
		logger.InfoContext(ctx, "no database configured, running local-only")
	}

	var remotes wardrobe.Remotes
	if r := c.Repos[domain.CollectionSelf]; r != nil {
		remotes.Self = r
	}
	if r := c.Repos[domain.CollectionDependent]; r != nil {
		remotes.Dependent = r
	}

	c.Service = wardrobe.NewService(logger, local, remotes, c.Metrics, nil, wardrobe.Options{
		OwnerID:   cfg.Sync.OwnerID,
		BatchSize: cfg.Sync.BatchSize,
	})
	return c, nil
}

func (c *Components) connectRemote(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return fmt.Errorf("migrate: %w", err)
		}
	}

	c.Pool = pool
	c.Repos[domain.CollectionSelf] = item.New(pool, cfg.Sync.SelfTable)
	c.Repos[domain.CollectionDependent] = item.New(pool, cfg.Sync.DependentTable)
	return nil
}

// RemoteEnabled reports whether the remote database is connected.
func (c *Components) RemoteEnabled() bool {
	return c.Pool != nil
}

// CollectionForTable maps a remote table back to its collection.
func (c *Components) CollectionForTable(table string) (domain.Collection, bool) {
	for col, r := range c.Repos {
		if r.Table() == table {
			return col, true
		}
	}
	return "", false
}

// Close releases the pool and the local store.
func (c *Components) Close() error {
	if c.Pool != nil {
		c.Pool.Close()
	}
	return c.Local.Close()
}
