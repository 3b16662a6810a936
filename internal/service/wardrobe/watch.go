package wardrobe

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/wardrobe-backend/internal/domain"
	"github.com/heartmarshall/wardrobe-backend/internal/merge"
)

// ApplyRemoteChange folds one remote change notification into the local
// collection with the same per-item rule used by a full sync.
func (s *Service) ApplyRemoteChange(ctx context.Context, c domain.Collection, ch domain.Change) error {
	if err := s.validCollection(c); err != nil {
		return err
	}
	if !ch.Type.IsValid() || ch.Item.ID == "" {
		return domain.NewValidationError("change", "unknown type or missing id")
	}

	if _, err := s.mutate(ctx, c, merge.RemoteChangeOp{Change: ch}); err != nil {
		return err
	}
	s.metrics.RemoteChangeApplied(c, ch.Type)

	s.log.DebugContext(ctx, "remote change applied",
		slog.String("collection", c.String()),
		slog.String("op", ch.Type.String()),
		slog.String("item_id", ch.Item.ID),
	)
	return nil
}

// Watch applies changes until the channel is closed or ctx ends. A change
// that cannot be applied is logged and skipped.
func (s *Service) Watch(ctx context.Context, c domain.Collection, changes <-chan domain.Change) error {
	if err := s.validCollection(c); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "watching remote changes", slog.String("collection", c.String()))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ch, ok := <-changes:
			if !ok {
				return nil
			}
			if err := s.ApplyRemoteChange(ctx, c, ch); err != nil {
				s.log.WarnContext(ctx, "remote change dropped",
					slog.String("collection", c.String()),
					slog.String("item_id", ch.Item.ID),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
