package merge

import (
	"fmt"
	"time"

	"github.com/heartmarshall/wardrobe-backend/internal/domain"
)

// Op is a local mutation expressed as a pure function of the collection.
type Op interface {
	apply(items []domain.Item) ([]domain.Item, error)
}

// Reduce applies op to items and returns the new collection. The input
// slice is never modified.
func Reduce(items []domain.Item, op Op) ([]domain.Item, error) {
	return op.apply(items)
}

// AddOp inserts a new item at the front of the collection.
type AddOp struct {
	Item domain.Item
}

func (op AddOp) apply(items []domain.Item) ([]domain.Item, error) {
	if indexOf(items, op.Item.ID) >= 0 {
		return nil, fmt.Errorf("item %s: %w", op.Item.ID, domain.ErrAlreadyExists)
	}
	out := make([]domain.Item, 0, len(items)+1)
	out = append(out, op.Item.Clone())
	for _, it := range items {
		out = append(out, it.Clone())
	}
	return out, nil
}

// Changes lists the fields an edit sets; nil fields are left untouched.
type Changes struct {
	Name         *string
	MainCategory *string
	SubCategory  *string
	Season       *domain.Season
	PurchaseDate *string
	Price        *float64
	ClearPrice   bool
	Frequency    *domain.Frequency
	Color        *string
	ColorHex     *string
}

// UpdateOp edits one item and stamps it with At.
type UpdateOp struct {
	ID      string
	Changes Changes
	At      time.Time
}

func (op UpdateOp) apply(items []domain.Item) ([]domain.Item, error) {
	return replaceOne(items, op.ID, func(it domain.Item) domain.Item {
		c := op.Changes
		setIf(&it.Name, c.Name)
		setIf(&it.MainCategory, c.MainCategory)
		setIf(&it.SubCategory, c.SubCategory)
		setIf(&it.PurchaseDate, c.PurchaseDate)
		if c.Season != nil {
			it.Season = *c.Season
		}
		if c.Frequency != nil {
			it.Frequency = *c.Frequency
		}
		switch {
		case c.ClearPrice:
			it.Price = nil
		case c.Price != nil:
			p := *c.Price
			it.Price = &p
		}
		if c.Color != nil {
			it.Color = *c.Color
			it.ColorHex = domain.ColorHex(*c.Color)
		}
		setIf(&it.ColorHex, c.ColorHex)
		it.UpdatedAt = stamp(it, op.At)
		return it
	})
}

// RetireOp marks an item as no longer in the wardrobe. A zero Date means At.
type RetireOp struct {
	ID     string
	Reason string
	Date   time.Time
	At     time.Time
}

func (op RetireOp) apply(items []domain.Item) ([]domain.Item, error) {
	return replaceOne(items, op.ID, func(it domain.Item) domain.Item {
		end := op.Date
		if end.IsZero() {
			end = op.At
		}
		end = end.UTC()
		it.EndReason = op.Reason
		it.EndDate = &end
		it.UpdatedAt = stamp(it, op.At)
		return it
	})
}

// DeleteOp removes an item.
type DeleteOp struct {
	ID string
}

func (op DeleteOp) apply(items []domain.Item) ([]domain.Item, error) {
	if indexOf(items, op.ID) < 0 {
		return nil, fmt.Errorf("item %s: %w", op.ID, domain.ErrNotFound)
	}
	return without(items, op.ID), nil
}

// ReplaceOp swaps the whole collection, e.g. for a merge result.
type ReplaceOp struct {
	Items []domain.Item
}

func (op ReplaceOp) apply(_ []domain.Item) ([]domain.Item, error) {
	out := make([]domain.Item, len(op.Items))
	for i, it := range op.Items {
		out[i] = it.Clone()
	}
	return out, nil
}

// MergeOp reconciles the collection with a downloaded remote collection.
type MergeOp struct {
	Remote []domain.Item
}

func (op MergeOp) apply(items []domain.Item) ([]domain.Item, error) {
	return Collections(items, op.Remote), nil
}

// RemoteChangeOp folds a remote notification in via ApplyChange.
type RemoteChangeOp struct {
	Change domain.Change
}

func (op RemoteChangeOp) apply(items []domain.Item) ([]domain.Item, error) {
	return ApplyChange(items, op.Change), nil
}

// stamp returns the new UpdatedAt for an edit at. It is strictly later than
// the item's current version so the edit wins a later merge against the
// state it was based on.
func stamp(it domain.Item, at time.Time) time.Time {
	at = at.UTC().Truncate(time.Microsecond)
	if prev := it.Version(); !at.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return at
}

func replaceOne(items []domain.Item, id string, fn func(domain.Item) domain.Item) ([]domain.Item, error) {
	idx := indexOf(items, id)
	if idx < 0 {
		return nil, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	out := make([]domain.Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	out[idx] = fn(out[idx])
	return out, nil
}

func indexOf(items []domain.Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
