// Package playback runs the background loop that periodically joins the
// busiest voice room and plays a random sound there.
package playback

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/heartmarshall/soundboard/internal/domain"
	"github.com/heartmarshall/soundboard/internal/eventbus"
)

type voiceTransport interface {
	Guilds() []string
	ListJoinableRooms(ctx context.Context, guildID string) ([]domain.VoiceRoom, error)
	Connected(guildID string) bool
	Join(ctx context.Context, room domain.VoiceRoom) (domain.VoiceConn, error)
	Play(ctx context.Context, conn domain.VoiceConn, audio []byte, volume float64) error
	IsPlaying(conn domain.VoiceConn) bool
	Disconnect(ctx context.Context, conn domain.VoiceConn) error
}

type soundSource interface {
	Count(ctx context.Context) (int, error)
	GetRandom(ctx context.Context) (*domain.Sound, error)
}

type settingsSource interface {
	GetInterval(ctx context.Context) (int, error)
	GetVolume(ctx context.Context) (int, error)
}

type eventSubscriber interface {
	Subscribe(kind eventbus.Kind, h eventbus.Handler) eventbus.Subscription
	Unsubscribe(sub eventbus.Subscription) bool
}

// State is the lifecycle state of the scheduler.
type State int

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Options tune the scheduler.
type Options struct {
	// PollInterval is how often IsPlaying is checked during playback.
	PollInterval time.Duration
	// DisconnectTimeout bounds the voice disconnect after each tick.
	DisconnectTimeout time.Duration
	// MaxPlayback bounds how long one tick waits for a stream to finish.
	MaxPlayback time.Duration
}

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = 500 * time.Millisecond
	}
	if o.DisconnectTimeout <= 0 {
		o.DisconnectTimeout = 10 * time.Second
	}
	if o.MaxPlayback <= 0 {
		o.MaxPlayback = 2 * time.Minute
	}
	return o
}

// Service is the playback scheduler.
type Service struct {
	transport voiceTransport
	sounds    soundSource
	settings  settingsSource
	bus       eventSubscriber
	opts      Options
	log       *slog.Logger

	// wake is buffered so a signal sent while the loop is busy is kept
	// until the next wait drains it.
	wake chan struct{}

	mu         sync.Mutex
	state      State
	interval   int
	volume     int
	nextTickAt time.Time
	inFlight   map[string]bool
	cancel     context.CancelFunc
	done       chan struct{}
	subs       []eventbus.Subscription
}

// NewService creates a stopped scheduler.
func NewService(
	log *slog.Logger,
	transport voiceTransport,
	sounds soundSource,
	settings settingsSource,
	bus eventSubscriber,
	opts Options,
) *Service {
	return &Service{
		transport: transport,
		sounds:    sounds,
		settings:  settings,
		bus:       bus,
		opts:      opts.withDefaults(),
		log:       log.With("service", "playback"),
		wake:      make(chan struct{}, 1),
		inFlight:  make(map[string]bool),
	}
}

// Start loads the settings cache, subscribes to setting changes, and spawns
// the loop. Calling Start on a scheduler that is not stopped does nothing.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateStopped {
		s.mu.Unlock()
		return nil
	}
	s.state = StateStarting
	s.mu.Unlock()

	interval, err := s.settings.GetInterval(ctx)
	if err == nil {
		var volume int
		volume, err = s.settings.GetVolume(ctx)
		if err == nil {
			s.mu.Lock()
			s.interval, s.volume = interval, volume
			s.mu.Unlock()
		}
	}
	if err != nil {
		s.setState(StateStopped)
		return fmt.Errorf("playback: load settings: %w", err)
	}

	subs := []eventbus.Subscription{
		s.bus.Subscribe(eventbus.IntervalChanged, s.onIntervalChanged),
		s.bus.Subscribe(eventbus.VolumeChanged, s.onVolumeChanged),
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})

	s.mu.Lock()
	s.cancel, s.done, s.subs = cancel, done, subs
	s.state = StateRunning
	s.mu.Unlock()

	go s.run(loopCtx, done)

	s.log.InfoContext(ctx, "scheduler started",
		slog.Int("interval", interval),
		slog.Int("volume", s.Volume()),
	)
	return nil
}

// Stop cancels the loop, wakes a pending wait, and waits for the loop to
// exit or for ctx to end, whichever comes first. Both subscriptions are
// removed either way.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return nil
	}
	s.state = StateStopping
	cancel, done, subs := s.cancel, s.done, s.subs
	s.mu.Unlock()

	cancel()
	s.signalWake()

	var err error
	select {
	case <-done:
	case <-ctx.Done():
		err = fmt.Errorf("playback: wait for loop: %w", ctx.Err())
	}

	for _, sub := range subs {
		s.bus.Unsubscribe(sub)
	}

	s.mu.Lock()
	s.state = StateStopped
	s.subs = nil
	s.nextTickAt = time.Time{}
	s.mu.Unlock()

	s.log.InfoContext(ctx, "scheduler stopped")
	return err
}

// State returns the lifecycle state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsRunning reports whether the loop is active.
func (s *Service) IsRunning() bool { return s.State() == StateRunning }

// Interval returns the cached interval in seconds.
func (s *Service) Interval() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// Volume returns the cached volume in percent.
func (s *Service) Volume() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// NextTickAt returns when the pending wait ends. The zero time means no
// wait is pending, either because a tick is running or the loop is stopped.
func (s *Service) NextTickAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextTickAt
}

func (s *Service) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

func (s *Service) signalWake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Service) onIntervalChanged(ctx context.Context, e eventbus.Event) error {
	s.mu.Lock()
	old := s.interval
	s.interval = e.Value
	s.mu.Unlock()

	s.log.InfoContext(ctx, "interval updated", slog.Int("old", old), slog.Int("new", e.Value))
	s.signalWake()
	return nil
}

func (s *Service) onVolumeChanged(ctx context.Context, e eventbus.Event) error {
	s.mu.Lock()
	old := s.volume
	s.volume = e.Value
	s.mu.Unlock()

	s.log.InfoContext(ctx, "volume updated", slog.Int("old", old), slog.Int("new", e.Value))
	return nil
}

// compareSnowflakes orders Discord IDs numerically without parsing them.
func compareSnowflakes(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

func sortedGuilds(guilds []string) []string {
	out := slices.Clone(guilds)
	slices.SortFunc(out, compareSnowflakes)
	return out
}
