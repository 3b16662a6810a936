// Package merge reconciles item collections. All functions are pure: they
// never mutate their inputs and carry no state between calls.
package merge

import (
	"strings"

	"github.com/heartmarshall/wardrobe-backend/internal/domain"
)

// Collections reconciles a local and a remote collection of the same kind.
//
// Remote items form the baseline. A local item whose id is unknown remotely
// is kept as is. When both sides hold an id, Item decides the outcome.
// The result is ordered remote-first, then local-only items, each in input
// order; callers sort for display.
func Collections(local, remote []domain.Item) []domain.Item {
	byID := make(map[string]int, len(remote)+len(local))
	out := make([]domain.Item, 0, len(remote)+len(local))

	for _, r := range remote {
		if i, ok := byID[r.ID]; ok {
			out[i] = r.Clone()
			continue
		}
		byID[r.ID] = len(out)
		out = append(out, r.Clone())
	}

	for _, l := range local {
		i, ok := byID[l.ID]
		if !ok {
			byID[l.ID] = len(out)
			out = append(out, l.Clone())
			continue
		}
		out[i] = Item(l, out[i])
	}

	return out
}

// Item resolves one id present on both sides.
//
// If the local version is strictly newer it replaces the remote one.
// Otherwise (remote newer or tied) the remote item is the base and every
// field it lacks is filled from the local item. Retirement markers are
// never dropped, whichever side wins.
func Item(local, remote domain.Item) domain.Item {
	if local.Version().After(remote.Version()) {
		out := local.Clone()
		keepRetirement(&out, remote)
		return out
	}
	return patch(remote, local)
}

// patch fills the gaps of base from donor. Name, id, timestamps and
// frequency always come from base.
func patch(base, donor domain.Item) domain.Item {
	out := base.Clone()

	out.PurchaseDate = firstNonBlank(base.PurchaseDate, donor.PurchaseDate)
	out.SubCategory = firstNonBlank(base.SubCategory, donor.SubCategory)
	out.MainCategory = firstNonBlank(base.MainCategory, donor.MainCategory)
	out.Color = firstNonBlank(base.Color, donor.Color)

	if out.Season == "" {
		out.Season = donor.Season
	}
	if out.Price == nil && donor.Price != nil {
		p := *donor.Price
		out.Price = &p
	}

	// A missing or placeholder hex on the base gives way to a real colour
	// from the donor, as long as the donor describes the same colour name.
	if !domain.IsTrustedHex(base.ColorHex, base.Color) {
		switch {
		case domain.IsTrustedHex(donor.ColorHex, donor.Color) && (base.Color == "" || base.Color == donor.Color):
			out.ColorHex = donor.ColorHex
		case out.Color != "":
			out.ColorHex = domain.ColorHex(out.Color)
		}
	}

	keepRetirement(&out, donor)
	return out
}

// keepRetirement copies retirement fields from other when dst has none.
func keepRetirement(dst *domain.Item, other domain.Item) {
	dst.EndReason = firstNonBlank(dst.EndReason, other.EndReason)
	if dst.EndDate == nil && other.EndDate != nil {
		d := *other.EndDate
		dst.EndDate = &d
	}
}

func firstNonBlank(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
