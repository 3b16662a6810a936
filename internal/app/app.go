package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wardrobe-backend/internal/adapter/postgres/changefeed"
	"github.com/heartmarshall/wardrobe-backend/internal/auth"
	"github.com/heartmarshall/wardrobe-backend/internal/config"
	"github.com/heartmarshall/wardrobe-backend/internal/domain"
	"github.com/heartmarshall/wardrobe-backend/internal/service/wardrobe"
	"github.com/heartmarshall/wardrobe-backend/internal/transport/middleware"
	"github.com/heartmarshall/wardrobe-backend/internal/transport/rest"
	"github.com/heartmarshall/wardrobe-backend/internal/transport/ws"
)

const rateLimitCleanup = 5 * time.Minute

// Run is the daemon entry point. It loads configuration, opens the local
// store and the remote database, serves the local API and keeps both
// collections in sync with the remote until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting wardrobe daemon",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("remote", cfg.Database.RemoteEnabled()),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	c, err := Build(ctx, cfg, logger, reg)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			logger.Error("close components", slog.String("error", err.Error()))
		}
	}()

	hub := ws.NewHub(c.Service, logger, ws.Options{AllowedOrigins: splitList(cfg.CORS.AllowedOrigins)})
	defer hub.Close()
	c.Service.SetNotifier(hub)

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	handler, err := newHandler(cfg, logger, c, hub, reg, limiter)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		hub.Close()
		return srv.Shutdown(shutdownCtx)
	})

	if c.RemoteEnabled() && cfg.Sync.SyncOnStart {
		g.Go(func() error {
			syncCtx, cancel := context.WithTimeout(gctx, wardrobe.SyncTimeout)
			defer cancel()
			if _, err := c.Service.SyncAll(syncCtx); err != nil {
				logger.Warn("startup sync incomplete", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	if c.RemoteEnabled() && cfg.Sync.Watch {
		watchRemote(gctx, g, cfg, logger, c)
	}

	err = g.Wait()
	logger.Info("wardrobe daemon stopped")
	return err
}

func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	c *Components,
	hub *ws.Hub,
	reg *prometheus.Registry,
	limiter *middleware.RateLimiter,
) (http.Handler, error) {
	ownerID, err := uuid.Parse(cfg.Sync.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("owner id: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var remote interface {
		Ping(ctx context.Context) error
	}
	if r := c.Repos[domain.CollectionSelf]; r != nil {
		remote = r
	}

	return NewRouter(RouterDeps{
		Items:    rest.NewItemsHandler(c.Service, logger),
		Sync:     rest.NewSyncHandler(c.Service, logger),
		Health:   rest.NewHealthHandler(c.Local, remote, BuildVersion()),
		Feed:     hub,
		Gatherer: reg,
		Common: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID,
			middleware.Logger(logger),
			middleware.Metrics(c.Metrics),
			middleware.CORS(cfg.CORS),
		},
		Auth:      middleware.Auth(jwtManager),
		OwnerID:   ownerID,
		SyncLimit: limiter.Limit(cfg.Server.SyncRateLimit),
	}), nil
}

// watchRemote subscribes to the change feed of both remote tables. A
// subscription that cannot be opened is logged and the collection falls
// back to explicit syncs. After a reconnect the collection is re-synced,
// since notifications sent while the feed was down are lost.
func watchRemote(ctx context.Context, g *errgroup.Group, cfg *config.Config, logger *slog.Logger, c *Components) {
	feed := changefeed.New(c.Pool, logger)
	feed.OnReconnect = func(table string) {
		col, ok := c.CollectionForTable(table)
		if !ok {
			return
		}
		go func() {
			syncCtx, cancel := context.WithTimeout(ctx, wardrobe.SyncTimeout)
			defer cancel()
			if _, err := c.Service.Sync(syncCtx, col); err != nil {
				logger.Warn("resync after reconnect failed",
					slog.String("collection", col.String()),
					slog.String("error", err.Error()),
				)
			}
		}()
	}

	for col, repo := range c.Repos {
		sub, err := feed.Subscribe(ctx, repo.Table(), cfg.Sync.OwnerID)
		if err != nil {
			logger.Warn("change feed unavailable",
				slog.String("collection", col.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		g.Go(func() error {
			defer sub.Close()
			return c.Service.Watch(ctx, col, sub.Changes())
		})
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
