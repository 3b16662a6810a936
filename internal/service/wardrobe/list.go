package wardrobe

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/wardrobe-backend/internal/domain"
)

// List returns a collection in display order: items still in the wardrobe
// first, retired items last, each group newest first.
func (s *Service) List(ctx context.Context, c domain.Collection) ([]domain.Item, error) {
	if err := s.validCollection(c); err != nil {
		return nil, err
	}

	items, err := s.local.Read(ctx, c.LocalKey())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c, err)
	}
	return displayOrder(items), nil
}

// Get returns one item of a collection.
func (s *Service) Get(ctx context.Context, c domain.Collection, id string) (domain.Item, error) {
	if err := s.validCollection(c); err != nil {
		return domain.Item{}, err
	}

	items, err := s.local.Read(ctx, c.LocalKey())
	if err != nil {
		return domain.Item{}, fmt.Errorf("read %s: %w", c, err)
	}
	it, ok := findItem(items, id)
	if !ok {
		return domain.Item{}, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return it, nil
}

func displayOrder(items []domain.Item) []domain.Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b domain.Item) int {
		if a.Retired() != b.Retired() {
			if a.Retired() {
				return 1
			}
			return -1
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}
