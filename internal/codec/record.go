// Package codec converts items between the device-local shape and the
// remote table shape, and repairs vocabulary and field drift on the way.
// Nothing in this package returns an error for malformed data: every
// unparseable value degrades to a documented default.
package codec

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// RemoteRecord is one row of a remote item table. Empty strings and nil
// pointers are stored as NULL.
type RemoteRecord struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Name         string     `json:"name"`
	MainCategory string     `json:"main_category"`
	SubCategory  string     `json:"sub_category"`
	Season       SeasonList `json:"season"`
	PurchaseDate string     `json:"purchase_date"`
	Price        *float64   `json:"price"`
	Frequency    string     `json:"frequency"`
	Color        string     `json:"color"`
	ColorHex     string     `json:"color_hex"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	EndReason    string     `json:"end_reason"`
	EndDate      *time.Time `json:"end_date"`
}

// UnmarshalJSON decodes a row as emitted by row_to_json. Timestamps and the
// price go through the same lenient parsing as local snapshots: a value
// that cannot be parsed is left absent instead of failing the whole row.
func (r *RemoteRecord) UnmarshalJSON(data []byte) error {
	type plain RemoteRecord
	var aux struct {
		plain
		Price     looseNumber `json:"price"`
		CreatedAt looseTime   `json:"created_at"`
		UpdatedAt looseTime   `json:"updated_at"`
		EndDate   looseTime   `json:"end_date"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*r = RemoteRecord(aux.plain)
	r.Price = aux.Price.v
	r.CreatedAt = aux.CreatedAt.t
	r.UpdatedAt = aux.UpdatedAt.t
	r.EndDate = nil
	if !aux.EndDate.t.IsZero() {
		end := aux.EndDate.t
		r.EndDate = &end
	}
	return nil
}

// SeasonList holds a season as stored by any client version: a list
// (current remote schema), a bare string (local and legacy rows) or null.
type SeasonList []string

// UnmarshalJSON accepts a string, an array of strings or null. Other shapes
// and non-string array elements are dropped rather than reported.
func (s *SeasonList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*s = nil

	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err == nil && strings.TrimSpace(v) != "" {
			*s = SeasonList{v}
		}
		return nil
	case data[0] == '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
		for _, el := range raw {
			var v string
			if err := json.Unmarshal(el, &v); err == nil {
				*s = append(*s, v)
			}
		}
	}
	return nil
}

// looseNumber decodes a price written as a number, a numeric string or
// null. Anything unparseable, negative or non-finite becomes absent.
type looseNumber struct {
	v *float64
}

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	n.v = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var text string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return nil
		}
	} else {
		text = string(data)
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil
	}
	n.v = sanitizePrice(&f)
	return nil
}

func sanitizePrice(p *float64) *float64 {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) || *p < 0 {
		return nil
	}
	v := *p
	return &v
}

// looseTime decodes a timestamp string in any layout parseTimestamp knows.
// Null, non-string and unparseable values become the zero time.
type looseTime struct {
	t time.Time
}

func (lt *looseTime) UnmarshalJSON(data []byte) error {
	lt.t = time.Time{}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return nil
	}
	lt.t = parseTimestamp(text)
	return nil
}
