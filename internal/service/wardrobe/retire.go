package wardrobe

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/wardrobe-backend/internal/domain"
	"github.com/heartmarshall/wardrobe-backend/internal/merge"
)

// Retire marks an item as gone from the wardrobe. The item stays in the
// collection; only its end reason and date are set.
func (s *Service) Retire(ctx context.Context, c domain.Collection, input RetireInput) (domain.Item, error) {
	if err := s.validCollection(c); err != nil {
		return domain.Item{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Item{}, err
	}

	op := merge.RetireOp{ID: input.ID, Reason: input.Reason, At: s.now()}
	if input.Date != nil {
		op.Date = *input.Date
	}

	items, err := s.mutate(ctx, c, op)
	if err != nil {
		return domain.Item{}, err
	}
	it, _ := findItem(items, input.ID)

	s.log.InfoContext(ctx, "item retired",
		slog.String("collection", c.String()),
		slog.String("item_id", it.ID),
		slog.String("reason", it.EndReason),
	)

	s.push(ctx, c, it)
	return it, nil
}
