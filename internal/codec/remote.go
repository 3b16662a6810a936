package codec

import (
	"strings"
	"time"

	"github.com/heartmarshall/wardrobe-backend/internal/domain"
)

// now is replaced in tests.
var now = time.Now

// ToRemote converts a local item into a row for the owner's remote table.
//
// The season is stored as a one-element list, a year-month purchase date
// gets a day appended, an unparseable or missing creation time becomes
// "now", and a missing colour hex is filled from the colour table. The
// item's own UpdatedAt is kept so that uploading never makes a record look
// newer than the edit that produced it.
func ToRemote(it domain.Item, ownerID string) RemoteRecord {
	n := NormalizeItem(it)

	created := n.CreatedAt
	if created.IsZero() {
		created = normalizeTime(now())
	}
	updated := n.UpdatedAt
	if updated.IsZero() {
		updated = created
	}

	hex := n.ColorHex
	if hex == "" && strings.TrimSpace(n.Color) != "" {
		hex = domain.ColorHex(n.Color)
	}

	return RemoteRecord{
		ID:           n.ID,
		UserID:       ownerID,
		Name:         strings.TrimSpace(n.Name),
		MainCategory: n.MainCategory,
		SubCategory:  n.SubCategory,
		Season:       SeasonList{string(n.Season)},
		PurchaseDate: remotePurchaseDate(n.PurchaseDate),
		Price:        n.Price,
		Frequency:    string(n.Frequency),
		Color:        n.Color,
		ColorHex:     hex,
		CreatedAt:    created,
		UpdatedAt:    updated,
		EndReason:    n.EndReason,
		EndDate:      n.EndDate,
	}
}

// ToRemoteAll converts a whole collection for one owner.
func ToRemoteAll(items []domain.Item, ownerID string) []RemoteRecord {
	out := make([]RemoteRecord, len(items))
	for i, it := range items {
		out[i] = ToRemote(it, ownerID)
	}
	return out
}

// FromRemote converts a remote row into the local shape. The first stored
// season wins, full purchase dates are truncated to year-month, and missing
// subcategory or colour hex values are derived from the lookup tables.
func FromRemote(rec RemoteRecord) domain.Item {
	var season domain.Season
	if len(rec.Season) > 0 {
		season = domain.Season(rec.Season[0])
	}

	return NormalizeItem(domain.Item{
		ID:           rec.ID,
		Name:         rec.Name,
		MainCategory: rec.MainCategory,
		SubCategory:  rec.SubCategory,
		Season:       season,
		PurchaseDate: localPurchaseDate(rec.PurchaseDate),
		Price:        rec.Price,
		Frequency:    domain.Frequency(rec.Frequency),
		Color:        rec.Color,
		ColorHex:     rec.ColorHex,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
		EndReason:    rec.EndReason,
		EndDate:      rec.EndDate,
	})
}

// FromRemoteAll converts every downloaded row.
func FromRemoteAll(recs []RemoteRecord) []domain.Item {
	out := make([]domain.Item, len(recs))
	for i, rec := range recs {
		out[i] = FromRemote(rec)
	}
	return out
}
