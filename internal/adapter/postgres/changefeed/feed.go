// Package changefeed delivers row-level changes of the remote item tables.
// Triggers publish every insert, update and delete on the channel
// "<table>_changes"; a subscription holds one pooled connection in LISTEN
// mode and decodes the notifications into domain changes.
package changefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wardrobe-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wardrobe-backend/internal/codec"
	"github.com/heartmarshall/wardrobe-backend/internal/domain"
)

const (
	bufferSize = 64
	minBackoff = time.Second
	maxBackoff = 30 * time.Second
)

// Channel returns the notification channel for table.
func Channel(table string) string {
	return table + "_changes"
}

// Feed opens subscriptions on a connection pool.
type Feed struct {
	pool *pgxpool.Pool
	log  *slog.Logger

	// OnReconnect, if set, is called after a dropped LISTEN connection has
	// been re-established. Notifications sent while it was down are lost.
	OnReconnect func(table string)
}

// New creates a Feed.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Feed {
	return &Feed{pool: pool, log: logger.With("component", "changefeed")}
}

// Subscription is a live stream of changes for one owner in one table.
type Subscription struct {
	changes chan domain.Change
	cancel  context.CancelFunc
	done    chan struct{}
	once    sync.Once
}

// Changes returns the change stream. It is closed after Close or when the
// subscribing context ends.
func (s *Subscription) Changes() <-chan domain.Change { return s.changes }

// Close stops the subscription and waits for its connection to be released.
func (s *Subscription) Close() {
	s.once.Do(s.cancel)
	<-s.done
}

// Subscribe starts listening for changes to ownerID's rows in table. The
// first LISTEN happens synchronously so configuration errors surface here;
// later connection failures are retried with backoff.
func (f *Feed) Subscribe(ctx context.Context, table, ownerID string) (*Subscription, error) {
	conn, err := f.listen(ctx, table)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		changes: make(chan domain.Change, bufferSize),
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	go f.run(ctx, sub, conn, table, ownerID)
	return sub, nil
}

func (f *Feed) listen(ctx context.Context, table string) (*pgxpool.Conn, error) {
	conn, err := f.pool.Acquire(ctx)
	if err != nil {
		return nil, postgres.MapError(fmt.Errorf("acquire listen connection: %w", err), table, "")
	}
	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{Channel(table)}.Sanitize()); err != nil {
		conn.Release()
		return nil, postgres.MapError(fmt.Errorf("listen: %w", err), table, "")
	}
	return conn, nil
}

func (f *Feed) run(ctx context.Context, sub *Subscription, conn *pgxpool.Conn, table, ownerID string) {
	defer close(sub.done)
	defer close(sub.changes)

	log := f.log.With(slog.String("table", table))
	backoff := minBackoff

	for {
		err := f.consume(ctx, sub, conn, ownerID, log)
		// A connection left in LISTEN state must not go back to the pool.
		_ = conn.Conn().Close(context.Background())
		conn.Release()

		if ctx.Err() != nil {
			return
		}
		log.WarnContext(ctx, "change feed interrupted", slog.String("error", err.Error()))

		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			conn, err = f.listen(ctx, table)
			if err == nil {
				break
			}
			if ctx.Err() != nil {
				return
			}
			backoff = min(backoff*2, maxBackoff)
			log.WarnContext(ctx, "change feed reconnect failed",
				slog.String("error", err.Error()), slog.Duration("retry_in", backoff))
		}

		backoff = minBackoff
		log.InfoContext(ctx, "change feed reconnected")
		if f.OnReconnect != nil {
			f.OnReconnect(table)
		}
	}
}

func (f *Feed) consume(ctx context.Context, sub *Subscription, conn *pgxpool.Conn, ownerID string, log *slog.Logger) error {
	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}

		ch, ok, err := decode(n.Payload, ownerID)
		if err != nil {
			log.WarnContext(ctx, "undecodable change notification", slog.String("error", err.Error()))
			continue
		}
		if !ok {
			continue
		}

		select {
		case sub.changes <- ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

type notification struct {
	Op     domain.ChangeType  `json:"op"`
	Record codec.RemoteRecord `json:"record"`
}

// decode parses one notification payload. ok is false for rows of other
// owners.
func decode(payload, ownerID string) (domain.Change, bool, error) {
	var n notification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		return domain.Change{}, false, fmt.Errorf("decode payload: %w", err)
	}
	if !n.Op.IsValid() {
		return domain.Change{}, false, fmt.Errorf("unknown op %q", n.Op)
	}
	if strings.TrimSpace(n.Record.ID) == "" {
		return domain.Change{}, false, errors.New("record without id")
	}
	if !strings.EqualFold(n.Record.UserID, ownerID) {
		return domain.Change{}, false, nil
	}

	ch := domain.Change{Type: n.Op}
	if n.Op == domain.ChangeDelete {
		ch.Item = domain.Item{ID: n.Record.ID}
	} else {
		ch.Item = codec.FromRemote(n.Record)
	}
	return ch, true, nil
}
