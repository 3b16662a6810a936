package domain

import (
	"testing"
	"time"
)

func TestItem_Version(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	if got := (Item{CreatedAt: created, UpdatedAt: updated}).Version(); !got.Equal(updated) {
		t.Errorf("Version with updatedAt = %v, want %v", got, updated)
	}
	if got := (Item{CreatedAt: created}).Version(); !got.Equal(created) {
		t.Errorf("Version without updatedAt = %v, want %v", got, created)
	}
	if got := (Item{}).Version(); !got.IsZero() {
		t.Errorf("Version of empty item = %v, want zero", got)
	}
}

func TestItem_Retired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	if (Item{}).Retired() {
		t.Error("empty item should not be retired")
	}
	if !(Item{EndReason: EndReasonSold}).Retired() {
		t.Error("item with end reason should be retired")
	}
	if !(Item{EndDate: &now}).Retired() {
		t.Error("item with end date should be retired")
	}
}

func TestItem_CloneIsDeep(t *testing.T) {
	t.Parallel()

	price := 10.0
	end := time.Now()
	orig := Item{ID: "a", Price: &price, EndDate: &end}

	cp := orig.Clone()
	*cp.Price = 20
	*cp.EndDate = end.Add(time.Hour)

	if *orig.Price != 10 {
		t.Errorf("original price changed to %v", *orig.Price)
	}
	if !orig.EndDate.Equal(end) {
		t.Error("original end date changed")
	}
}

func TestCollection(t *testing.T) {
	t.Parallel()

	if !CollectionSelf.IsValid() || !CollectionDependent.IsValid() {
		t.Fatal("known collections must be valid")
	}
	if Collection("other").IsValid() {
		t.Error("unknown collection reported valid")
	}
	if CollectionSelf.LocalKey() == CollectionDependent.LocalKey() {
		t.Error("collections must not share a local key")
	}
}
