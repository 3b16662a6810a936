package app

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/wardrobe-backend/internal/transport/middleware"
	"github.com/heartmarshall/wardrobe-backend/internal/transport/rest"
	"github.com/heartmarshall/wardrobe-backend/internal/transport/ws"
)

// RouterDeps lists the handlers and policies the HTTP router mounts.
type RouterDeps struct {
	Items    *rest.ItemsHandler
	Sync     *rest.SyncHandler
	Health   *rest.HealthHandler
	Feed     *ws.Hub
	Gatherer prometheus.Gatherer

	Common    []middleware.Middleware // outermost first, applied to every route
	Auth      middleware.Middleware
	OwnerID   uuid.UUID
	SyncLimit middleware.Middleware
}

// NewRouter builds the HTTP handler of the local API. Probes and metrics
// are public; everything under /v1 requires the owner's token.
func NewRouter(d RouterDeps) http.Handler {
	protected := middleware.Chain(d.Auth, middleware.Owner(d.OwnerID))

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))

	mux.Handle("GET /v1/{collection}/items", protected(http.HandlerFunc(d.Items.List)))
	mux.Handle("POST /v1/{collection}/items", protected(http.HandlerFunc(d.Items.Add)))
	mux.Handle("GET /v1/{collection}/items/{id}", protected(http.HandlerFunc(d.Items.Get)))
	mux.Handle("PATCH /v1/{collection}/items/{id}", protected(http.HandlerFunc(d.Items.Update)))
	mux.Handle("DELETE /v1/{collection}/items/{id}", protected(http.HandlerFunc(d.Items.Delete)))
	mux.Handle("POST /v1/{collection}/items/{id}/retire", protected(http.HandlerFunc(d.Items.Retire)))

	mux.Handle("POST /v1/sync", middleware.Chain(protected, d.SyncLimit)(http.HandlerFunc(d.Sync.Sync)))
	mux.Handle("GET /v1/sync/status", protected(http.HandlerFunc(d.Sync.Status)))

	mux.Handle("GET /v1/feed", protected(d.Feed))

	return middleware.Chain(d.Common...)(mux)
}
