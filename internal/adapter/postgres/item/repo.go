// Package item implements the remote store for one item table. The same
// code serves both collections; only the table name differs.
package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/wardrobe-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wardrobe-backend/internal/codec"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// columns in scan order. Nullable text is coalesced so rows scan into plain
// strings; a missing column surfaces as undefined_column.
var selectColumns = []string{
	"id",
	"user_id::text",
	"COALESCE(name, '')",
	"COALESCE(main_category, '')",
	"COALESCE(sub_category, '')",
	"COALESCE(season, '{}'::text[])",
	"COALESCE(purchase_date::text, '')",
	"price::float8",
	"COALESCE(frequency, '')",
	"COALESCE(color, '')",
	"COALESCE(color_hex, '')",
	"created_at",
	"updated_at",
	"COALESCE(end_reason, '')",
	"end_date",
}

var upsertColumns = []string{
	"id", "user_id", "name", "main_category", "sub_category", "season",
	"purchase_date", "price", "frequency", "color", "color_hex",
	"created_at", "updated_at", "end_reason", "end_date",
}

// Repo reads and writes one remote item table.
type Repo struct {
	q      postgres.Querier
	table  string
	quoted string
	upsert string
}

// New creates a repository over table. The name is quoted on use, so any
// identifier is safe; config validation keeps it to plain names anyway.
func New(q postgres.Querier, table string) *Repo {
	quoted := postgres.QuoteTable(table)

	sets := make([]string, 0, len(upsertColumns)-1)
	for _, c := range upsertColumns[1:] {
		if c == "user_id" {
			continue
		}
		sets = append(sets, c+" = EXCLUDED."+c)
	}
	upsert := fmt.Sprintf(
		"ON CONFLICT (id) DO UPDATE SET %s WHERE %s.user_id = EXCLUDED.user_id AND %s.updated_at <= EXCLUDED.updated_at",
		strings.Join(sets, ", "), quoted, quoted)

	return &Repo{q: q, table: table, quoted: quoted, upsert: upsert}
}

// Table returns the unquoted table name.
func (r *Repo) Table() string { return r.table }

// Download returns every row owned by ownerID, newest first.
func (r *Repo) Download(ctx context.Context, ownerID string) ([]codec.RemoteRecord, error) {
	query, args, err := builder.
		Select(selectColumns...).
		From(r.quoted).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build download query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, r.table, "")
	}

	recs, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, postgres.MapError(err, r.table, "")
	}
	return recs, nil
}

// UpsertBatch writes recs in one round trip. Rows whose id exists are
// updated in place unless they belong to another owner or are newer than
// the incoming record, so remote versions never move backwards. It returns the
// number of rows written; the batch runs in one implicit transaction, so a
// failing row rejects the whole batch.
func (r *Repo) UpsertBatch(ctx context.Context, recs []codec.RemoteRecord) (int, error) {
	if len(recs) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, rec := range recs {
		query, args, err := builder.
			Insert(r.quoted).
			Columns(upsertColumns...).
			Values(
				rec.ID,
				rec.UserID,
				nullString(rec.Name),
				nullString(rec.MainCategory),
				nullString(rec.SubCategory),
				[]string(rec.Season),
				nullString(rec.PurchaseDate),
				rec.Price,
				nullString(rec.Frequency),
				nullString(rec.Color),
				nullString(rec.ColorHex),
				rec.CreatedAt,
				rec.UpdatedAt,
				nullString(rec.EndReason),
				rec.EndDate,
			).
			Suffix(r.upsert).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build upsert for %s: %w", rec.ID, err)
		}
		batch.Queue(query, args...)
	}

	return r.sendBatchExec(ctx, batch)
}

// DeleteByID removes one of the owner's rows. Deleting a row that does not
// exist is not an error.
func (r *Repo) DeleteByID(ctx context.Context, ownerID, id string) error {
	query, args, err := builder.
		Delete(r.quoted).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, r.table, id)
	}
	return nil
}

// Ping checks that the table is reachable and has the expected columns.
func (r *Repo) Ping(ctx context.Context) error {
	query, args, err := builder.Select(selectColumns...).From(r.quoted).Limit(0).ToSql()
	if err != nil {
		return fmt.Errorf("build ping query: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, r.table, "")
	}
	rows.Close()
	return postgres.MapError(rows.Err(), r.table, "")
}

func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	results := r.q.SendBatch(ctx, batch)
	defer results.Close()

	var written int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return written, postgres.MapError(fmt.Errorf("batch exec: %w", err), r.table, "")
		}
		written += int(tag.RowsAffected())
	}

	return written, nil
}

func scanRecord(row pgx.CollectableRow) (codec.RemoteRecord, error) {
	var (
		rec     codec.RemoteRecord
		season  []string
		created time.Time
		updated time.Time
	)
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Name,
		&rec.MainCategory,
		&rec.SubCategory,
		&season,
		&rec.PurchaseDate,
		&rec.Price,
		&rec.Frequency,
		&rec.Color,
		&rec.ColorHex,
		&created,
		&updated,
		&rec.EndReason,
		&rec.EndDate,
	)
	if err != nil {
		return rec, err
	}
	rec.Season = codec.SeasonList(season)
	rec.CreatedAt = created
	rec.UpdatedAt = updated
	return rec, nil
}

func nullString(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
