// Package setting implements the interval and volume configuration scalars
// using PostgreSQL. Each scalar is a singleton row in the settings table.
package setting

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/soundboard/internal/adapter/postgres"
	"github.com/heartmarshall/soundboard/internal/domain"
)

const (
	keyInterval = "interval"
	keyVolume   = "volume"
)

const (
	getSettingSQL    = `SELECT value FROM settings WHERE key = $1`
	seedSettingSQL   = `INSERT INTO settings (key, value) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING`
	lockSettingSQL   = `SELECT value FROM settings WHERE key = $1 FOR UPDATE`
	updateSettingSQL = `UPDATE settings SET value = $2, updated_at = now() WHERE key = $1`
)

// auditLog appends one record inside the caller's transaction.
type auditLog interface {
	Append(ctx context.Context, kind domain.AuditKind, filename string, extra *string) error
}

// Defaults are returned when a setting row is missing, and seed the row on
// its first write.
type Defaults struct {
	Interval int
	Volume   int
}

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	db       postgres.Querier
	txm      *postgres.TxManager
	audit    auditLog
	defaults Defaults
}

// New creates a new settings repository.
func New(db postgres.Querier, txm *postgres.TxManager, audit auditLog, defaults Defaults) *Repo {
	return &Repo{db: db, txm: txm, audit: audit, defaults: defaults}
}

// GetInterval returns the playback interval in seconds.
func (r *Repo) GetInterval(ctx context.Context) (int, error) {
	return r.get(ctx, keyInterval, r.defaults.Interval)
}

// SetInterval stores v and returns the previous interval.
func (r *Repo) SetInterval(ctx context.Context, v int) (int, error) {
	return r.set(ctx, keyInterval, v, r.defaults.Interval, domain.AuditIntervalChange)
}

// GetVolume returns the playback volume in percent.
func (r *Repo) GetVolume(ctx context.Context) (int, error) {
	return r.get(ctx, keyVolume, r.defaults.Volume)
}

// SetVolume stores v and returns the previous volume.
func (r *Repo) SetVolume(ctx context.Context, v int) (int, error) {
	return r.set(ctx, keyVolume, v, r.defaults.Volume, domain.AuditVolumeChange)
}

func (r *Repo) get(ctx context.Context, key string, def int) (int, error) {
	var v int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getSettingSQL, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return 0, postgres.MapError(err, "setting", key)
	}

	return v, nil
}

// set seeds a missing row with def before locking it, so concurrent first
// writes serialize on the row and each sees the other's value as previous.
func (r *Repo) set(ctx context.Context, key string, v, def int, kind domain.AuditKind) (int, error) {
	var prev int
	err := r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		q := postgres.QuerierFromCtx(txCtx, r.db)

		if _, err := q.Exec(txCtx, seedSettingSQL, key, def); err != nil {
			return postgres.MapError(err, "setting", key)
		}
		if err := q.QueryRow(txCtx, lockSettingSQL, key).Scan(&prev); err != nil {
			return postgres.MapError(err, "setting", key)
		}
		if _, err := q.Exec(txCtx, updateSettingSQL, key, v); err != nil {
			return postgres.MapError(err, "setting", key)
		}

		old := strconv.Itoa(prev)
		return r.audit.Append(txCtx, kind, strconv.Itoa(v), &old)
	})
	if err != nil {
		return 0, fmt.Errorf("set %s: %w", key, err)
	}

	return prev, nil
}
