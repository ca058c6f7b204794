// Package lifecycle starts and stops the long-running services of the bot
// in a fixed order.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/soundboard/internal/eventbus"
)

// Service is anything the host can start.
type Service interface {
	Start(ctx context.Context) error
}

// Stopper is implemented by services that hold resources.
type Stopper interface {
	Stop(ctx context.Context) error
}

type publisher interface {
	Publish(ctx context.Context, e eventbus.Event)
}

type entry struct {
	name string
	svc  Service
}

// Host owns the ordered service list.
type Host struct {
	bus publisher
	log *slog.Logger

	mu       sync.Mutex
	services []entry
	started  bool
}

// NewHost creates an empty host.
func NewHost(log *slog.Logger, bus publisher) *Host {
	return &Host{
		bus: bus,
		log: log.With("component", "lifecycle"),
	}
}

// Register appends svc. Services start in registration order.
func (h *Host) Register(name string, svc Service) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.services = append(h.services, entry{name: name, svc: svc})
}

// Started reports whether Start completed.
func (h *Host) Started() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.started
}

// Start starts every service and then publishes BotReady. If a service
// fails, the ones already started are stopped in reverse order. A second
// call after a successful Start does nothing.
func (h *Host) Start(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.started {
		return nil
	}

	for i, e := range h.services {
		if err := e.svc.Start(ctx); err != nil {
			h.log.ErrorContext(ctx, "service failed to start",
				slog.String("name", e.name),
				slog.String("error", err.Error()))
			h.rollback(ctx, h.services[:i])
			return fmt.Errorf("start %s: %w", e.name, err)
		}
		h.log.InfoContext(ctx, "service started", slog.String("name", e.name))
	}

	h.started = true
	h.bus.Publish(ctx, eventbus.NewBotReady())
	return nil
}

// Stop publishes Shutdown and then stops every service in registration
// order. All stop errors are returned joined.
func (h *Host) Stop(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.started {
		return nil
	}
	h.started = false

	h.bus.Publish(ctx, eventbus.NewShutdown())

	var errs []error
	for _, e := range h.services {
		if err := stop(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *Host) rollback(ctx context.Context, started []entry) {
	for i := len(started) - 1; i >= 0; i-- {
		if err := stop(ctx, started[i]); err != nil {
			h.log.ErrorContext(ctx, "rollback stop failed",
				slog.String("name", started[i].name),
				slog.String("error", err.Error()))
		}
	}
}

func stop(ctx context.Context, e entry) error {
	s, ok := e.svc.(Stopper)
	if !ok {
		return nil
	}
	if err := s.Stop(ctx); err != nil {
		return fmt.Errorf("stop %s: %w", e.name, err)
	}
	return nil
}
