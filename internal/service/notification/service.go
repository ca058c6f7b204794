// Package notification posts a chat message for every library or settings
// change published on the event bus.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/soundboard/internal/domain"
	"github.com/heartmarshall/soundboard/internal/eventbus"
	"github.com/heartmarshall/soundboard/internal/metrics"
)

type messenger interface {
	FetchChannel(ctx context.Context, channelID string) (domain.Channel, error)
	SendMessage(ctx context.Context, channelID, text string) error
}

type eventSubscriber interface {
	Subscribe(kind eventbus.Kind, h eventbus.Handler) eventbus.Subscription
	Unsubscribe(sub eventbus.Subscription) bool
}

// Service is the notification dispatcher.
type Service struct {
	messenger messenger
	bus       eventSubscriber
	channelID string
	log       *slog.Logger

	resolve singleflight.Group

	mu      sync.Mutex
	channel *domain.Channel
	subs    []eventbus.Subscription
}

// NewService creates a dispatcher for channelID. An empty channelID turns
// the dispatcher into a no-op.
func NewService(log *slog.Logger, messenger messenger, bus eventSubscriber, channelID string) *Service {
	return &Service{
		messenger: messenger,
		bus:       bus,
		channelID: channelID,
		log:       log.With("service", "notification"),
	}
}

// Start subscribes to every change event.
func (s *Service) Start(ctx context.Context) error {
	if s.channelID == "" {
		s.log.InfoContext(ctx, "no notification channel configured, skipping")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.subs) > 0 {
		return nil
	}

	for kind, format := range formats {
		s.subs = append(s.subs, s.bus.Subscribe(kind, s.handler(format)))
	}

	s.log.InfoContext(ctx, "listening for events", slog.String("channel_id", s.channelID))
	return nil
}

// Stop removes every subscription made by Start.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for _, sub := range subs {
		s.bus.Unsubscribe(sub)
	}
	return nil
}

var formats = map[eventbus.Kind]func(eventbus.Event) string{
	eventbus.SoundUploaded: func(e eventbus.Event) string {
		return "uploaded: " + e.Filename
	},
	eventbus.SoundDeleted: func(e eventbus.Event) string {
		return "deleted: " + e.Filename
	},
	eventbus.SoundRenamed: func(e eventbus.Event) string {
		return fmt.Sprintf("renamed: %s → %s", e.Filename, e.NewFilename)
	},
	eventbus.IntervalChanged: func(e eventbus.Event) string {
		return fmt.Sprintf("interval changed to %d seconds", e.Value)
	},
	eventbus.VolumeChanged: func(e eventbus.Event) string {
		return fmt.Sprintf("volume changed to %d%%", e.Value)
	},
}

// Format renders the message posted for e, or "" for kinds that are not
// announced.
func Format(e eventbus.Event) string {
	f, ok := formats[e.Kind]
	if !ok {
		return ""
	}
	return f(e)
}

// handler never returns an error; delivery failures are logged here.
func (s *Service) handler(format func(eventbus.Event) string) eventbus.Handler {
	return func(ctx context.Context, e eventbus.Event) error {
		s.notify(ctx, e.Kind, format(e))
		return nil
	}
}

func (s *Service) notify(ctx context.Context, kind eventbus.Kind, text string) {
	ch, err := s.channelHandle(ctx)
	if err != nil {
		metrics.NotificationsSent.WithLabelValues("no_channel").Inc()
		s.log.ErrorContext(ctx, "resolve notification channel failed",
			slog.String("channel_id", s.channelID),
			slog.String("error", err.Error()))
		return
	}

	if err := s.messenger.SendMessage(ctx, ch.ID, text); err != nil {
		metrics.NotificationsSent.WithLabelValues("failed").Inc()
		s.log.ErrorContext(ctx, "send notification failed",
			slog.String("kind", kind.String()),
			slog.String("error", err.Error()))
		return
	}

	metrics.NotificationsSent.WithLabelValues("sent").Inc()
	s.log.DebugContext(ctx, "notification sent", slog.String("kind", kind.String()))
}

// channelHandle resolves the channel once. Concurrent callers share one
// fetch, and a failed fetch is retried by the next caller.
func (s *Service) channelHandle(ctx context.Context) (domain.Channel, error) {
	s.mu.Lock()
	if s.channel != nil {
		ch := *s.channel
		s.mu.Unlock()
		return ch, nil
	}
	s.mu.Unlock()

	v, err, _ := s.resolve.Do(s.channelID, func() (any, error) {
		s.mu.Lock()
		cached := s.channel
		s.mu.Unlock()
		if cached != nil {
			return *cached, nil
		}

		ch, err := s.messenger.FetchChannel(ctx, s.channelID)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.channel = &ch
		s.mu.Unlock()
		return ch, nil
	})
	if err != nil {
		return domain.Channel{}, err
	}
	return v.(domain.Channel), nil
}
