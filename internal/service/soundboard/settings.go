package soundboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/soundboard/internal/domain"
	"github.com/heartmarshall/soundboard/internal/eventbus"
)

// Interval returns the stored playback interval in seconds.
func (s *Service) Interval(ctx context.Context) (int, error) {
	v, err := s.settings.GetInterval(ctx)
	if err != nil {
		return 0, fmt.Errorf("get interval: %w", err)
	}
	return v, nil
}

// Volume returns the stored playback volume in percent.
func (s *Service) Volume(ctx context.Context) (int, error) {
	v, err := s.settings.GetVolume(ctx)
	if err != nil {
		return 0, fmt.Errorf("get volume: %w", err)
	}
	return v, nil
}

// SetInterval stores a new interval and returns the previous one.
func (s *Service) SetInterval(ctx context.Context, origin eventbus.Origin, seconds int) (int, error) {
	if err := validateInterval(seconds, s.limits); err != nil {
		return 0, err
	}

	old, err := s.settings.SetInterval(ctx, seconds)
	if err != nil {
		return 0, fmt.Errorf("set interval: %w", err)
	}

	s.log.InfoContext(ctx, "interval changed",
		slog.Int("old", old),
		slog.Int("new", seconds),
		slog.String("origin", string(origin)),
	)
	s.bus.Publish(ctx, eventbus.NewIntervalChanged(origin, seconds, old))

	return old, nil
}

// SetVolume stores a new volume and returns the previous one.
func (s *Service) SetVolume(ctx context.Context, origin eventbus.Origin, percent int) (int, error) {
	if err := validateVolume(percent); err != nil {
		return 0, err
	}

	old, err := s.settings.SetVolume(ctx, percent)
	if err != nil {
		return 0, fmt.Errorf("set volume: %w", err)
	}

	s.log.InfoContext(ctx, "volume changed",
		slog.Int("old", old),
		slog.Int("new", percent),
		slog.String("origin", string(origin)),
	)
	s.bus.Publish(ctx, eventbus.NewVolumeChanged(origin, percent, old))

	return old, nil
}

// RecentActivity returns the newest audit records first.
func (s *Service) RecentActivity(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	records, err := s.audit.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return records, nil
}
