package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/soundboard/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueFilename returns "<base>-<suffix>.mp3", unique across parallel tests.
func UniqueFilename(base string) string {
	return base + "-" + uniqueSuffix() + domain.SoundExtension
}

// SeedSound inserts a sound directly, bypassing the repository and its
// audit trail. Returns the stored row.
func SeedSound(t *testing.T, pool *pgxpool.Pool, filename string, data []byte) domain.Sound {
	t.Helper()

	s := domain.Sound{Filename: filename, Data: data}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO sounds (filename, data) VALUES ($1, $2) RETURNING id, created_at`,
		filename, data,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSound %q: %v", filename, err)
	}

	return s
}

// CountAuditRecords returns how many audit rows reference filename.
func CountAuditRecords(t *testing.T, pool *pgxpool.Pool, kind domain.AuditKind, filename string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM sound_events WHERE kind = $1 AND filename = $2`,
		string(kind), filename,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountAuditRecords: %v", err)
	}

	return n
}
