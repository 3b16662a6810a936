package domain

import "time"

// ChangeType is the kind of a remote change notification.
type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"
)

func (t ChangeType) String() string { return string(t) }

func (t ChangeType) IsValid() bool {
	switch t {
	case ChangeInsert, ChangeUpdate, ChangeDelete:
		return true
	}
	return false
}

// Change is one remote change notification, already decoded into the local
// item shape. For deletes only Item.ID is meaningful.
type Change struct {
	Type ChangeType
	Item Item
}

// SyncState describes the outcome of the last remote interaction of a collection.
type SyncState string

const (
	SyncStateIdle          SyncState = "idle"
	SyncStateSyncing       SyncState = "syncing"
	SyncStateOK            SyncState = "ok"
	SyncStatePartial       SyncState = "partial"
	SyncStateError         SyncState = "error"
	SyncStateSchemaMissing SyncState = "schema_missing"
	SyncStateOffline       SyncState = "offline"
)

func (s SyncState) String() string { return string(s) }

// SyncStatus is the user-visible sync state of one collection.
type SyncStatus struct {
	Collection   Collection `json:"collection"`
	State        SyncState  `json:"state"`
	Message      string     `json:"message,omitempty"`
	LastSyncedAt *time.Time `json:"lastSyncedAt,omitempty"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
