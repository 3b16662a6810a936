// Package wardrobe is the application service over the two item
// collections. It owns every read-modify-write of the local snapshots and
// keeps the remote tables in step on a best-effort basis: remote failures
// are recorded in the sync status and never block local work.
package wardrobe

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wardrobe-backend/internal/codec"
	"github.com/heartmarshall/wardrobe-backend/internal/domain"
	"github.com/heartmarshall/wardrobe-backend/internal/merge"
)

// DefaultBatchSize is the number of records per upsert round trip.
const DefaultBatchSize = 50

type localStore interface {
	Read(ctx context.Context, key string) ([]domain.Item, error)
	Write(ctx context.Context, key string, items []domain.Item) error
}

type remoteStore interface {
	Table() string
	Download(ctx context.Context, ownerID string) ([]codec.RemoteRecord, error)
	UpsertBatch(ctx context.Context, recs []codec.RemoteRecord) (int, error)
	DeleteByID(ctx context.Context, ownerID, id string) error
}

// notifier receives the full collection after every local write.
type notifier interface {
	Publish(c domain.Collection, items []domain.Item)
}

type recorder interface {
	SyncCompleted(c domain.Collection, state domain.SyncState, d time.Duration)
	UploadBatch(c domain.Collection, records int, err error)
	RemoteChangeApplied(c domain.Collection, op domain.ChangeType)
	LocalWrite(c domain.Collection)
}

// Remotes binds each collection to its remote table. A nil field leaves
// that collection local-only.
type Remotes struct {
	Self      remoteStore
	Dependent remoteStore
}

// Options configures a Service.
type Options struct {
	OwnerID   string
	BatchSize int
}

// Service provides wardrobe operations.
type Service struct {
	local     localStore
	remotes   map[domain.Collection]remoteStore
	notify    notifier
	metrics   recorder
	log       *slog.Logger
	ownerID   string
	batchSize int

	now   func() time.Time
	newID func() string

	locks map[domain.Collection]*sync.Mutex

	statusMu sync.RWMutex
	status   map[domain.Collection]domain.SyncStatus
}

// NewService creates a new wardrobe service. notify may be nil.
func NewService(
	log *slog.Logger,
	local localStore,
	remotes Remotes,
	metrics recorder,
	notify notifier,
	opts Options,
) *Service {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}

	s := &Service{
		local:     local,
		remotes:   make(map[domain.Collection]remoteStore, 2),
		notify:    notify,
		metrics:   metrics,
		log:       log.With("service", "wardrobe"),
		ownerID:   opts.OwnerID,
		batchSize: opts.BatchSize,
		now:       time.Now,
		newID:     uuid.NewString,
		locks:     make(map[domain.Collection]*sync.Mutex, 2),
		status:    make(map[domain.Collection]domain.SyncStatus, 2),
	}
	if remotes.Self != nil {
		s.remotes[domain.CollectionSelf] = remotes.Self
	}
	if remotes.Dependent != nil {
		s.remotes[domain.CollectionDependent] = remotes.Dependent
	}

	for _, c := range domain.Collections {
		s.locks[c] = &sync.Mutex{}
		state := domain.SyncStateIdle
		if s.remotes[c] == nil {
			state = domain.SyncStateOffline
		}
		s.status[c] = domain.SyncStatus{Collection: c, State: state, UpdatedAt: s.now().UTC()}
	}
	return s
}

// SetNotifier replaces the snapshot subscriber. Call it before the service
// is shared between goroutines.
func (s *Service) SetNotifier(n notifier) {
	s.notify = n
}

// mutate reads a collection, applies op and writes the result back while
// holding the collection lock. Subscribers see the new snapshot afterwards.
func (s *Service) mutate(ctx context.Context, c domain.Collection, op merge.Op) ([]domain.Item, error) {
	mu := s.locks[c]
	mu.Lock()
	defer mu.Unlock()

	items, err := s.local.Read(ctx, c.LocalKey())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c, err)
	}

	next, err := merge.Reduce(items, op)
	if err != nil {
		return nil, err
	}

	if err := s.local.Write(ctx, c.LocalKey(), next); err != nil {
		return nil, fmt.Errorf("write %s: %w", c, err)
	}
	s.metrics.LocalWrite(c)

	if s.notify != nil {
		s.notify.Publish(c, displayOrder(next))
	}
	return next, nil
}

func (s *Service) validCollection(c domain.Collection) error {
	if !c.IsValid() {
		return domain.NewValidationError("collection", "must be self or dependent")
	}
	return nil
}

func findItem(items []domain.Item, id string) (domain.Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.Item{}, false
}
