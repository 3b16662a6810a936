package wardrobe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wardrobe-backend/internal/codec"
	"github.com/heartmarshall/wardrobe-backend/internal/domain"
)

// Upload pushes items to the collection's remote table in batches. A failed
// batch does not stop the remaining ones. If at least one batch landed the
// upload still counts as a success, flagged Partial with the last error. Cancellation stops the upload.
func (s *Service) Upload(ctx context.Context, c domain.Collection, items []domain.Item) UploadResult {
	remote := s.remotes[c]
	if remote == nil {
		return UploadResult{Err: fmt.Errorf("%s: %w", c, domain.ErrRemote)}
	}
	if len(items) == 0 {
		return UploadResult{Success: true}
	}

	recs := codec.ToRemoteAll(items, s.ownerID)

	var (
		res    UploadResult
		failed int
	)
	for start := 0; start < len(recs); start += s.batchSize {
		if err := ctx.Err(); err != nil {
			res.Err = err
			failed++
			break
		}

		batch := recs[start:min(start+s.batchSize, len(recs))]
		_, err := remote.UpsertBatch(ctx, batch)
		s.metrics.UploadBatch(c, len(batch), err)
		if err != nil {
			failed++
			res.Err = err
			s.log.WarnContext(ctx, "upload batch failed",
				slog.String("collection", c.String()),
				slog.String("table", remote.Table()),
				slog.Int("offset", start),
				slog.Int("size", len(batch)),
				slog.String("error", err.Error()),
			)
			continue
		}
		res.Count += len(batch)
	}

	res.Partial = failed > 0 && res.Count > 0
	res.Success = failed == 0 || res.Partial
	return res
}

// push uploads a single changed item. Failures only affect the sync status.
func (s *Service) push(ctx context.Context, c domain.Collection, it domain.Item) {
	if s.remotes[c] == nil {
		return
	}
	if res := s.Upload(ctx, c, []domain.Item{it}); res.Err != nil {
		s.remoteFailed(ctx, c, fmt.Errorf("push %s: %w", it.ID, res.Err))
	}
}
