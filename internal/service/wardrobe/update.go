package wardrobe

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wardrobe-backend/internal/codec"
	"github.com/heartmarshall/wardrobe-backend/internal/domain"
	"github.com/heartmarshall/wardrobe-backend/internal/merge"
)

// Update edits an item and pushes the new version to the remote table.
func (s *Service) Update(ctx context.Context, c domain.Collection, input UpdateInput) (domain.Item, error) {
	if err := s.validCollection(c); err != nil {
		return domain.Item{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Item{}, err
	}

	changes := merge.Changes{
		Name:         trimmed(input.Name),
		MainCategory: trimmed(input.MainCategory),
		SubCategory:  trimmed(input.SubCategory),
		PurchaseDate: trimmed(input.PurchaseDate),
		Price:        input.Price,
		ClearPrice:   input.ClearPrice,
		Color:        trimmed(input.Color),
	}
	if input.Season != nil {
		season := domain.NormalizeSeason(*input.Season)
		changes.Season = &season
	}
	if input.Frequency != nil {
		freq := domain.NormalizeFrequency(*input.Frequency)
		changes.Frequency = &freq
	}

	items, err := s.mutate(ctx, c, merge.UpdateOp{ID: input.ID, Changes: changes, At: s.now()})
	if err != nil {
		return domain.Item{}, err
	}
	it, _ := findItem(items, input.ID)
	it = codec.NormalizeItem(it)

	s.log.InfoContext(ctx, "item updated",
		slog.String("collection", c.String()),
		slog.String("item_id", it.ID),
	)

	s.push(ctx, c, it)
	return it, nil
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}
