package wardrobe

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wardrobe-backend/internal/codec"
	"github.com/heartmarshall/wardrobe-backend/internal/domain"
	"github.com/heartmarshall/wardrobe-backend/internal/merge"
)

// Add records a new item locally and pushes it to the remote table.
func (s *Service) Add(ctx context.Context, c domain.Collection, input AddInput) (domain.Item, error) {
	if err := s.validCollection(c); err != nil {
		return domain.Item{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Item{}, err
	}

	now := s.now().UTC()
	it := codec.NormalizeItem(domain.Item{
		ID:           s.newID(),
		Name:         strings.TrimSpace(input.Name),
		MainCategory: orDefault(input.MainCategory, domain.DefaultMainCategory),
		SubCategory:  strings.TrimSpace(input.SubCategory),
		Season:       domain.Season(input.Season),
		PurchaseDate: strings.TrimSpace(input.PurchaseDate),
		Price:        input.Price,
		Frequency:    domain.Frequency(input.Frequency),
		Color:        strings.TrimSpace(input.Color),
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	if _, err := s.mutate(ctx, c, merge.AddOp{Item: it}); err != nil {
		return domain.Item{}, err
	}

	s.log.InfoContext(ctx, "item added",
		slog.String("collection", c.String()),
		slog.String("item_id", it.ID),
	)

	s.push(ctx, c, it)
	return it, nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
