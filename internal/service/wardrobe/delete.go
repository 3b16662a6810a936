package wardrobe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wardrobe-backend/internal/domain"
	"github.com/heartmarshall/wardrobe-backend/internal/merge"
)

// Delete removes an item locally, then issues one remote delete for it.
// A failed remote delete is recorded in the sync status; the local removal
// stands either way.
func (s *Service) Delete(ctx context.Context, c domain.Collection, id string) error {
	if err := s.validCollection(c); err != nil {
		return err
	}
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	if _, err := s.mutate(ctx, c, merge.DeleteOp{ID: id}); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("collection", c.String()),
		slog.String("item_id", id),
	)

	remote := s.remotes[c]
	if remote == nil {
		return nil
	}
	if err := remote.DeleteByID(ctx, s.ownerID, id); err != nil {
		s.remoteFailed(ctx, c, fmt.Errorf("delete %s: %w", id, err))
	}
	return nil
}
