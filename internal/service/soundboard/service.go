// Package soundboard is the single place where the web panel and slash
// commands read and mutate the sound library and playback settings.
package soundboard

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/soundboard/internal/domain"
	"github.com/heartmarshall/soundboard/internal/eventbus"
)

// DefaultActivityLimit bounds RecentActivity when the caller passes 0.
const DefaultActivityLimit = 20

type soundRepo interface {
	ListFilenames(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
	GetDataByFilename(ctx context.Context, filename string) ([]byte, error)
	Upsert(ctx context.Context, filename string, data []byte) (*domain.Sound, error)
	Rename(ctx context.Context, oldName, newName string) (bool, error)
	Delete(ctx context.Context, filename string) (bool, error)
}

type settingRepo interface {
	GetInterval(ctx context.Context) (int, error)
	SetInterval(ctx context.Context, v int) (int, error)
	GetVolume(ctx context.Context) (int, error)
	SetVolume(ctx context.Context, v int) (int, error)
}

type auditReader interface {
	ListRecent(ctx context.Context, limit int) ([]domain.AuditRecord, error)
}

type publisher interface {
	Publish(ctx context.Context, e eventbus.Event)
}

// Limits are the configured input bounds.
type Limits struct {
	MinInterval    int
	MaxInterval    int
	MaxUploadBytes int64
}

// Service provides sound library and settings operations.
type Service struct {
	sounds   soundRepo
	settings settingRepo
	audit    auditReader
	bus      publisher
	limits   Limits
	log      *slog.Logger
}

// NewService creates a new soundboard service.
func NewService(
	log *slog.Logger,
	sounds soundRepo,
	settings settingRepo,
	audit auditReader,
	bus publisher,
	limits Limits,
) *Service {
	return &Service{
		sounds:   sounds,
		settings: settings,
		audit:    audit,
		bus:      bus,
		limits:   limits,
		log:      log.With("service", "soundboard"),
	}
}

// Limits returns the configured input bounds.
func (s *Service) Limits() Limits { return s.limits }
