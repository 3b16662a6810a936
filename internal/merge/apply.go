package merge

import (
	"github.com/heartmarshall/wardrobe-backend/internal/domain"
)

// ApplyChange folds one remote change notification into the current local
// collection. Inserts and updates are treated as a merge against a
// singleton remote collection; deletes remove the item unconditionally.
func ApplyChange(local []domain.Item, ch domain.Change) []domain.Item {
	if ch.Type == domain.ChangeDelete {
		return without(local, ch.Item.ID)
	}
	return Collections(local, []domain.Item{ch.Item})
}

func without(items []domain.Item, id string) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it.Clone())
		}
	}
	return out
}
