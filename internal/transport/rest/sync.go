package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wardrobe-backend/internal/domain"
	"github.com/heartmarshall/wardrobe-backend/internal/service/wardrobe"
	"github.com/heartmarshall/wardrobe-backend/pkg/ctxutil"
)

type syncService interface {
	Sync(ctx context.Context, c domain.Collection) (domain.SyncStatus, error)
	SyncAll(ctx context.Context) ([]domain.SyncStatus, error)
	Statuses() []domain.SyncStatus
}

// SyncHandler serves the sync trigger and status endpoints.
type SyncHandler struct {
	svc syncService
	log *slog.Logger
}

// NewSyncHandler creates a SyncHandler.
func NewSyncHandler(svc syncService, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{svc: svc, log: logger.With("handler", "sync")}
}

type statusResponse struct {
	Collections []domain.SyncStatus `json:"collections"`
}

// Sync handles POST /v1/sync. With ?collection=self|dependent only that
// collection is synced. The sync is detached from the request so a client
// disconnect does not abort it halfway.
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(ctxutil.Detach(r.Context()), wardrobe.SyncTimeout)
	defer cancel()

	var (
		statuses []domain.SyncStatus
		err      error
	)
	if name := r.URL.Query().Get("collection"); name != "" {
		var st domain.SyncStatus
		st, err = h.svc.Sync(ctx, domain.Collection(name))
		statuses = []domain.SyncStatus{st}
	} else {
		statuses, err = h.svc.SyncAll(ctx)
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Collections: statuses})
}

// Status handles GET /v1/sync/status.
func (h *SyncHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Collections: h.svc.Statuses()})
}
