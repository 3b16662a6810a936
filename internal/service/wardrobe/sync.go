package wardrobe

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wardrobe-backend/internal/codec"
	"github.com/heartmarshall/wardrobe-backend/internal/domain"
	"github.com/heartmarshall/wardrobe-backend/internal/merge"
)

// SyncTimeout bounds a sync triggered in the background.
const SyncTimeout = 2 * time.Minute

// Sync reconciles one collection with its remote table: download, merge
// with the local snapshot, persist the result locally and upload it. Remote
// failures are reported through the returned status; the error is non-nil
// only when the local snapshot could not be read or written.
func (s *Service) Sync(ctx context.Context, c domain.Collection) (domain.SyncStatus, error) {
	if err := s.validCollection(c); err != nil {
		return domain.SyncStatus{}, err
	}

	remote := s.remotes[c]
	if remote == nil {
		return s.Status(c), nil
	}

	start := s.now()
	s.setStatus(c, domain.SyncStateSyncing, "", false)

	recs, err := remote.Download(ctx, s.ownerID)
	if err != nil {
		st := s.remoteFailed(ctx, c, fmt.Errorf("download: %w", err))
		s.metrics.SyncCompleted(c, st.State, s.now().Sub(start))
		return st, nil
	}

	merged, err := s.mutate(ctx, c, merge.MergeOp{Remote: codec.FromRemoteAll(recs)})
	if err != nil {
		s.setStatus(c, domain.SyncStateError, err.Error(), false)
		s.metrics.SyncCompleted(c, domain.SyncStateError, s.now().Sub(start))
		return s.Status(c), err
	}

	res := s.Upload(ctx, c, merged)

	var st domain.SyncStatus
	switch {
	case res.Partial:
		st = s.setStatus(c, domain.SyncStatePartial,
			fmt.Sprintf("uploaded %d of %d records: %v", res.Count, len(merged), res.Err), false)
	case res.Success:
		st = s.setStatus(c, domain.SyncStateOK, "", true)
	default:
		st = s.remoteFailed(ctx, c, fmt.Errorf("upload: %w", res.Err))
	}
	s.metrics.SyncCompleted(c, st.State, s.now().Sub(start))

	s.log.InfoContext(ctx, "collection synced",
		slog.String("collection", c.String()),
		slog.String("table", remote.Table()),
		slog.Int("downloaded", len(recs)),
		slog.Int("merged", len(merged)),
		slog.Int("uploaded", res.Count),
		slog.String("state", st.State.String()),
		slog.Duration("took", s.now().Sub(start)),
	)
	return st, nil
}

// SyncAll syncs both collections concurrently and returns their statuses
// in collection order.
func (s *Service) SyncAll(ctx context.Context) ([]domain.SyncStatus, error) {
	out := make([]domain.SyncStatus, len(domain.Collections))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range domain.Collections {
		g.Go(func() error {
			st, err := s.Sync(gctx, c)
			out[i] = st
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, nil
}
