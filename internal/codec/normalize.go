package codec

import (
	"strings"

	"github.com/heartmarshall/wardrobe-backend/internal/domain"
)

// NormalizeItem repairs drift inside the local shape: season and frequency
// are mapped to the current vocabulary, a missing subcategory is derived
// from the main category, an absent or contradictory colour hex is rebuilt
// from the colour name, and invalid prices are dropped. Applying it twice
// is a no-op.
func NormalizeItem(it domain.Item) domain.Item {
	out := it.Clone()

	out.Season = domain.NormalizeSeason(string(it.Season))
	out.Frequency = domain.NormalizeFrequency(string(it.Frequency))

	if strings.TrimSpace(out.SubCategory) == "" {
		out.SubCategory = domain.DefaultSubCategory(out.MainCategory)
	}

	if strings.TrimSpace(out.Color) != "" && !domain.IsTrustedHex(out.ColorHex, out.Color) {
		out.ColorHex = domain.ColorHex(out.Color)
	}

	out.Price = sanitizePrice(out.Price)
	out.CreatedAt = normalizeTime(out.CreatedAt)
	out.UpdatedAt = normalizeTime(out.UpdatedAt)
	out.EndDate = normalizeTimePtr(out.EndDate)

	return out
}

// NormalizeItems applies NormalizeItem to every element.
func NormalizeItems(items []domain.Item) []domain.Item {
	out := make([]domain.Item, len(items))
	for i, it := range items {
		out[i] = NormalizeItem(it)
	}
	return out
}
