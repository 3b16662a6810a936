package wardrobe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wardrobe-backend/internal/domain"
)

// Status returns the current sync status of one collection.
func (s *Service) Status(c domain.Collection) domain.SyncStatus {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status[c]
}

// Statuses returns the sync status of every collection.
func (s *Service) Statuses() []domain.SyncStatus {
	out := make([]domain.SyncStatus, 0, len(domain.Collections))
	for _, c := range domain.Collections {
		out = append(out, s.Status(c))
	}
	return out
}

func (s *Service) setStatus(c domain.Collection, state domain.SyncState, msg string, synced bool) domain.SyncStatus {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()

	now := s.now().UTC()
	st := s.status[c]
	st.Collection = c
	st.State = state
	st.Message = msg
	st.UpdatedAt = now
	if synced {
		st.LastSyncedAt = &now
	}
	s.status[c] = st
	return st
}

// remoteFailed records a remote I/O failure. A missing table gets its own
// state and a message telling the user what to do.
func (s *Service) remoteFailed(ctx context.Context, c domain.Collection, err error) domain.SyncStatus {
	table := ""
	if r := s.remotes[c]; r != nil {
		table = r.Table()
	}

	s.log.WarnContext(ctx, "remote sync failed",
		slog.String("collection", c.String()),
		slog.String("table", table),
		slog.String("error", err.Error()),
	)

	if errors.Is(err, domain.ErrSchemaMissing) {
		return s.setStatus(c, domain.SyncStateSchemaMissing,
			fmt.Sprintf("remote table %s is missing; run migrations", table), false)
	}
	return s.setStatus(c, domain.SyncStateError, err.Error(), false)
}
