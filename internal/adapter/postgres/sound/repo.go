// Package sound implements the sound library repository using PostgreSQL.
// Every mutation writes its audit record in the same transaction.
package sound

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/soundboard/internal/adapter/postgres"
	"github.com/heartmarshall/soundboard/internal/domain"
)

const table = "sounds"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const existsSQL = `SELECT EXISTS(SELECT 1 FROM sounds WHERE filename = $1)`

// auditLog appends one record inside the caller's transaction.
type auditLog interface {
	Append(ctx context.Context, kind domain.AuditKind, filename string, extra *string) error
}

// Repo provides sound persistence backed by PostgreSQL.
type Repo struct {
	db    postgres.Querier
	txm   *postgres.TxManager
	audit auditLog
}

// New creates a new sound repository.
func New(db postgres.Querier, txm *postgres.TxManager, audit auditLog) *Repo {
	return &Repo{db: db, txm: txm, audit: audit}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListFilenames returns every filename in alphabetical order.
func (r *Repo) ListFilenames(ctx context.Context) ([]string, error) {
	query, args, err := psql.Select("filename").From(table).OrderBy("filename ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("sound: build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sounds: %w", err)
	}

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan sounds: %w", err)
	}

	return names, nil
}

// Count returns the number of stored sounds.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("sound: build count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sounds: %w", err)
	}

	return n, nil
}

// GetRandom returns a uniformly random sound, or domain.ErrNotFound when the
// library is empty.
func (r *Repo) GetRandom(ctx context.Context) (*domain.Sound, error) {
	query, args, err := psql.Select("id", "filename", "data", "created_at").
		From(table).
		OrderBy("random()").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sound: build select: %w", err)
	}

	return r.scanOne(ctx, "random", query, args...)
}

// GetByFilename returns the full sound, or domain.ErrNotFound.
func (r *Repo) GetByFilename(ctx context.Context, filename string) (*domain.Sound, error) {
	query, args, err := psql.Select("id", "filename", "data", "created_at").
		From(table).
		Where(sq.Eq{"filename": filename}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sound: build select: %w", err)
	}

	return r.scanOne(ctx, filename, query, args...)
}

// GetDataByFilename returns only the payload, or domain.ErrNotFound.
func (r *Repo) GetDataByFilename(ctx context.Context, filename string) ([]byte, error) {
	query, args, err := psql.Select("data").From(table).Where(sq.Eq{"filename": filename}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("sound: build select: %w", err)
	}

	var data []byte
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&data); err != nil {
		return nil, postgres.MapError(err, "sound", filename)
	}

	return data, nil
}

// Exists reports whether a sound with filename is stored.
func (r *Repo) Exists(ctx context.Context, filename string) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, existsSQL, filename).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "sound", filename)
	}

	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new sound. Returns domain.ErrAlreadyExists when filename
// is taken.
func (r *Repo) Create(ctx context.Context, filename string, data []byte) (*domain.Sound, error) {
	query, args, err := psql.Insert(table).
		Columns("filename", "data").
		Values(filename, data).
		Suffix("RETURNING id, filename, data, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sound: build insert: %w", err)
	}

	return r.writeOne(ctx, filename, query, args)
}

// Upsert inserts the sound or replaces the payload of an existing one. The
// row keeps its id and created_at on replace.
func (r *Repo) Upsert(ctx context.Context, filename string, data []byte) (*domain.Sound, error) {
	query, args, err := psql.Insert(table).
		Columns("filename", "data").
		Values(filename, data).
		Suffix("ON CONFLICT (filename) DO UPDATE SET data = EXCLUDED.data RETURNING id, filename, data, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sound: build upsert: %w", err)
	}

	return r.writeOne(ctx, filename, query, args)
}

// Rename changes a sound's filename. Returns false when oldName is absent and
// domain.ErrAlreadyExists when newName is taken; neither case writes audit.
func (r *Repo) Rename(ctx context.Context, oldName, newName string) (bool, error) {
	query, args, err := psql.Update(table).
		Set("filename", newName).
		Where(sq.Eq{"filename": oldName}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("sound: build rename: %w", err)
	}

	var renamed bool
	err = r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		tag, err := postgres.QuerierFromCtx(txCtx, r.db).Exec(txCtx, query, args...)
		if err != nil {
			return postgres.MapError(err, "sound", newName)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		renamed = true
		return r.audit.Append(txCtx, domain.AuditRename, oldName, &newName)
	})
	if err != nil {
		return false, err
	}

	return renamed, nil
}

// Delete removes a sound. Returns false when filename is absent.
func (r *Repo) Delete(ctx context.Context, filename string) (bool, error) {
	query, args, err := psql.Delete(table).Where(sq.Eq{"filename": filename}).ToSql()
	if err != nil {
		return false, fmt.Errorf("sound: build delete: %w", err)
	}

	var deleted bool
	err = r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		tag, err := postgres.QuerierFromCtx(txCtx, r.db).Exec(txCtx, query, args...)
		if err != nil {
			return postgres.MapError(err, "sound", filename)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		deleted = true
		return r.audit.Append(txCtx, domain.AuditDelete, filename, nil)
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) writeOne(ctx context.Context, filename, query string, args []any) (*domain.Sound, error) {
	var s domain.Sound
	err := r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		row := postgres.QuerierFromCtx(txCtx, r.db).QueryRow(txCtx, query, args...)
		if err := row.Scan(&s.ID, &s.Filename, &s.Data, &s.CreatedAt); err != nil {
			return postgres.MapError(err, "sound", filename)
		}
		return r.audit.Append(txCtx, domain.AuditUpload, filename, nil)
	})
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *Repo) scanOne(ctx context.Context, key, query string, args ...any) (*domain.Sound, error) {
	var s domain.Sound
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	if err := row.Scan(&s.ID, &s.Filename, &s.Data, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sound %q: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get sound %q: %w", key, err)
	}

	return &s, nil
}
