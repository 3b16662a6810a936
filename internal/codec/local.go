package codec

import (
	"encoding/json"
	"strings"

	"github.com/heartmarshall/wardrobe-backend/internal/domain"
)

// localRecord is the permissive decoding target for persisted snapshots.
// Every client version wrote the same keys, but not always the same types.
type localRecord struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	MainCategory string      `json:"mainCategory"`
	SubCategory  string      `json:"subCategory"`
	Season       SeasonList  `json:"season"`
	PurchaseDate string      `json:"purchaseDate"`
	Price        looseNumber `json:"price"`
	Frequency    string      `json:"frequency"`
	Color        string      `json:"color"`
	ColorHex     string      `json:"colorHex"`
	CreatedAt    string      `json:"createdAt"`
	UpdatedAt    string      `json:"updatedAt"`
	EndReason    string      `json:"endReason"`
	EndDate      string      `json:"endDate"`
}

// DecodeLocal parses a persisted collection snapshot. A corrupt or empty
// snapshot yields an empty collection; elements that cannot be decoded or
// have no id are skipped. The result is normalised.
func DecodeLocal(data []byte) []domain.Item {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return []domain.Item{}
	}

	items := make([]domain.Item, 0, len(raw))
	for _, el := range raw {
		var rec localRecord
		if err := json.Unmarshal(el, &rec); err != nil {
			continue
		}
		if strings.TrimSpace(rec.ID) == "" {
			continue
		}
		items = append(items, rec.toItem())
	}
	return items
}

func (r localRecord) toItem() domain.Item {
	it := domain.Item{
		ID:           r.ID,
		Name:         r.Name,
		MainCategory: r.MainCategory,
		SubCategory:  r.SubCategory,
		Season:       domain.NormalizeSeason(r.Season...),
		PurchaseDate: strings.TrimSpace(r.PurchaseDate),
		Price:        r.Price.v,
		Frequency:    domain.Frequency(r.Frequency),
		Color:        r.Color,
		ColorHex:     r.ColorHex,
		CreatedAt:    parseTimestamp(r.CreatedAt),
		UpdatedAt:    parseTimestamp(r.UpdatedAt),
		EndReason:    r.EndReason,
	}
	if end := parseTimestamp(r.EndDate); !end.IsZero() {
		it.EndDate = &end
	}
	return NormalizeItem(it)
}

// EncodeLocal serialises a collection in the local JSON shape.
func EncodeLocal(items []domain.Item) ([]byte, error) {
	if items == nil {
		items = []domain.Item{}
	}
	return json.Marshal(items)
}
