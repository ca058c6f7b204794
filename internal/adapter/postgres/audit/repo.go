// Package audit implements the append-only sound_events log using PostgreSQL.
package audit

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/soundboard/internal/adapter/postgres"
	"github.com/heartmarshall/soundboard/internal/domain"
)

const table = "sound_events"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts one audit record. It joins the transaction carried by ctx,
// so callers get the mutation and its audit row committed together.
func (r *Repo) Append(ctx context.Context, kind domain.AuditKind, filename string, extra *string) error {
	if !kind.IsValid() {
		return fmt.Errorf("audit: %w", domain.NewValidationError("kind", "unknown audit kind "+kind.String()))
	}

	query, args, err := psql.Insert(table).
		Columns("kind", "filename", "extra").
		Values(kind.String(), filename, extra).
		ToSql()
	if err != nil {
		return fmt.Errorf("audit: build insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "sound_event", filename)
	}

	return nil
}

// DeleteOlderThan removes records created before threshold and returns how
// many rows were removed.
func (r *Repo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	query, args, err := psql.Delete(table).
		Where(sq.Lt{"created_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("audit: build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("prune sound_events: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListRecent returns up to limit records, newest first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	if limit <= 0 {
		return []domain.AuditRecord{}, nil
	}

	query, args, err := psql.Select("id", "created_at", "kind", "filename", "extra").
		From(table).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("audit: build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sound_events: %w", err)
	}

	records, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("scan sound_events: %w", err)
	}

	return records, nil
}

func scanRecord(row pgx.CollectableRow) (domain.AuditRecord, error) {
	var (
		rec  domain.AuditRecord
		kind string
	)
	if err := row.Scan(&rec.ID, &rec.CreatedAt, &kind, &rec.Filename, &rec.Extra); err != nil {
		return domain.AuditRecord{}, err
	}
	rec.Kind = domain.AuditKind(kind)
	return rec, nil
}
