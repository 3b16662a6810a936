package domain

import "time"

// Item is one tracked clothing piece. The JSON shape is the device-local
// representation; the remote shape lives in the codec package.
type Item struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	MainCategory string     `json:"mainCategory,omitempty"`
	SubCategory  string     `json:"subCategory,omitempty"`
	Season       Season     `json:"season,omitempty"`
	PurchaseDate string     `json:"purchaseDate,omitempty"` // "2006-01" or "2006-01-02"; empty means unknown
	Price        *float64   `json:"price,omitempty"`
	Frequency    Frequency  `json:"frequency,omitempty"`
	Color        string     `json:"color,omitempty"`
	ColorHex     string     `json:"colorHex,omitempty"`
	CreatedAt    time.Time  `json:"createdAt,omitzero"`
	UpdatedAt    time.Time  `json:"updatedAt,omitzero"`
	EndReason    string     `json:"endReason,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
}

// Version returns the timestamp that decides conflicts: UpdatedAt, else
// CreatedAt, else the zero time.
func (it Item) Version() time.Time {
	if !it.UpdatedAt.IsZero() {
		return it.UpdatedAt
	}
	return it.CreatedAt
}

// Retired reports whether the item carries a retirement marker.
func (it Item) Retired() bool {
	return it.EndReason != "" || it.EndDate != nil
}

// Clone returns a deep copy so callers can mutate pointer fields safely.
func (it Item) Clone() Item {
	out := it
	if it.Price != nil {
		p := *it.Price
		out.Price = &p
	}
	if it.EndDate != nil {
		d := *it.EndDate
		out.EndDate = &d
	}
	return out
}

// Collection names one of the two independent item collections.
type Collection string

const (
	CollectionSelf      Collection = "self"
	CollectionDependent Collection = "dependent"
)

// Collections lists every collection in a stable order.
var Collections = []Collection{CollectionSelf, CollectionDependent}

func (c Collection) String() string { return string(c) }

func (c Collection) IsValid() bool {
	switch c {
	case CollectionSelf, CollectionDependent:
		return true
	}
	return false
}

// LocalKey is the key under which the collection is persisted on device.
func (c Collection) LocalKey() string {
	return "wardrobe." + string(c) + ".v1"
}
