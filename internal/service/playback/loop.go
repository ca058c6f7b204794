package playback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/soundboard/internal/domain"
	"github.com/heartmarshall/soundboard/internal/metrics"
)

// Tick outcomes, used as the metrics label.
const (
	outcomePlayed      = "played"
	outcomeNoSounds    = "no_sounds"
	outcomeNoListeners = "no_listeners"
	outcomeBusy        = "busy"
	outcomeNoSound     = "sound_missing"
	outcomeError       = "error"
)

func (s *Service) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		outcome, err := s.tick(ctx)
		metrics.PlaybackTicks.WithLabelValues(outcome).Inc()
		if err != nil && ctx.Err() == nil {
			s.log.ErrorContext(ctx, "tick failed", slog.String("error", err.Error()))
		} else {
			s.log.DebugContext(ctx, "tick finished", slog.String("outcome", outcome))
		}

		if !s.wait(ctx) {
			return
		}
	}
}

// wait blocks for the cached interval. It returns early, with true, when
// the interval changes, and with false once ctx is cancelled.
func (s *Service) wait(ctx context.Context) bool {
	select {
	case <-s.wake:
	default:
	}

	d := time.Duration(s.Interval()) * time.Second
	if d <= 0 {
		d = time.Second
	}

	s.mu.Lock()
	s.nextTickAt = time.Now().Add(d)
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.nextTickAt = time.Time{}
		s.mu.Unlock()
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	case <-s.wake:
		return ctx.Err() == nil
	}
}

func (s *Service) tick(ctx context.Context) (string, error) {
	count, err := s.sounds.Count(ctx)
	if err != nil {
		return outcomeError, fmt.Errorf("count sounds: %w", err)
	}
	if count == 0 {
		return outcomeNoSounds, nil
	}

	room, ok := s.busiestRoom(ctx)
	if !ok {
		return outcomeNoListeners, nil
	}

	if s.transport.Connected(room.GuildID) || !s.claim(room.GuildID) {
		return outcomeBusy, nil
	}
	defer s.release(room.GuildID)

	conn, err := s.transport.Join(ctx, room)
	if err != nil {
		return outcomeError, fmt.Errorf("join %s/%s: %w", room.GuildID, room.ChannelID, err)
	}

	joined := time.Now()
	defer func() {
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.DisconnectTimeout)
		defer cancel()
		if err := s.transport.Disconnect(dctx, conn); err != nil {
			s.log.ErrorContext(ctx, "disconnect failed",
				slog.String("guild_id", conn.GuildID),
				slog.String("error", err.Error()))
		}
		metrics.PlaybackDuration.Observe(time.Since(joined).Seconds())
	}()

	sound, err := s.sounds.GetRandom(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return outcomeNoSound, nil
	}
	if err != nil {
		return outcomeError, fmt.Errorf("pick sound: %w", err)
	}

	volume := float64(s.Volume()) / 100
	if err := s.transport.Play(ctx, conn, sound.Data, volume); err != nil {
		return outcomeError, fmt.Errorf("play %s: %w", sound.Filename, err)
	}

	s.log.InfoContext(ctx, "playing sound",
		slog.String("filename", sound.Filename),
		slog.String("guild_id", room.GuildID),
		slog.String("channel", room.Name),
		slog.Int("occupants", room.Occupants),
		slog.Float64("volume", volume),
	)

	s.awaitPlayback(ctx, conn)
	return outcomePlayed, nil
}

// busiestRoom returns the room with the strictly greatest occupant count.
// Guilds are visited in ascending ID order and rooms in transport order,
// so the first room seen wins a tie. Empty rooms never win.
func (s *Service) busiestRoom(ctx context.Context) (domain.VoiceRoom, bool) {
	var best domain.VoiceRoom
	found := false

	for _, guildID := range sortedGuilds(s.transport.Guilds()) {
		rooms, err := s.transport.ListJoinableRooms(ctx, guildID)
		if err != nil {
			s.log.WarnContext(ctx, "list voice rooms failed",
				slog.String("guild_id", guildID),
				slog.String("error", err.Error()))
			continue
		}
		for _, r := range rooms {
			if r.Occupants > 0 && (!found || r.Occupants > best.Occupants) {
				best, found = r, true
			}
		}
	}

	return best, found
}

// awaitPlayback returns when the stream ends, ctx is done, or MaxPlayback
// elapses. The caller's disconnect stops a stream that is still running.
func (s *Service) awaitPlayback(ctx context.Context, conn domain.VoiceConn) {
	ticker := time.NewTicker(s.opts.PollInterval)
	defer ticker.Stop()
	deadline := time.NewTimer(s.opts.MaxPlayback)
	defer deadline.Stop()

	for s.transport.IsPlaying(conn) {
		select {
		case <-ctx.Done():
			return
		case <-deadline.C:
			s.log.WarnContext(ctx, "playback exceeded limit, abandoning stream",
				slog.String("guild_id", conn.GuildID),
				slog.Duration("limit", s.opts.MaxPlayback))
			return
		case <-ticker.C:
		}
	}
}

func (s *Service) claim(guildID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[guildID] {
		return false
	}
	s.inFlight[guildID] = true
	return true
}

func (s *Service) release(guildID string) {
	s.mu.Lock()
	delete(s.inFlight, guildID)
	s.mu.Unlock()
}
