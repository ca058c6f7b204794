// Package eventbus is an in-process publish/subscribe hub. Publish fans an
// event out to every handler of its kind concurrently and waits for all of
// them; a failing handler is logged and never affects the others or the
// publisher. Nothing is persisted or retried.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"
	"time"

	"github.com/heartmarshall/soundboard/internal/metrics"
)

// DefaultHandlerTimeout bounds each handler invocation.
const DefaultHandlerTimeout = 30 * time.Second

// Handler reacts to one event. A returned error is logged by the bus.
type Handler func(ctx context.Context, e Event) error

// Subscription identifies one registration. Handlers are funcs and cannot
// be compared, so the subscription is the handle passed to Unsubscribe.
type Subscription struct {
	kind Kind
	id   uint64
}

// Kind returns the event kind the subscription listens to.
func (s Subscription) Kind() Kind { return s.kind }

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus routes events to subscribed handlers.
type Bus struct {
	log     *slog.Logger
	timeout time.Duration

	mu       sync.RWMutex
	handlers map[Kind][]subscriber
	nextID   uint64
}

// New creates an empty bus.
func New(log *slog.Logger) *Bus {
	return &Bus{
		log:      log.With("component", "eventbus"),
		timeout:  DefaultHandlerTimeout,
		handlers: make(map[Kind][]subscriber),
	}
}

// Subscribe appends h to the handlers of kind. Registering the same func
// twice yields two independent subscriptions.
func (b *Bus) Subscribe(kind Kind, h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[kind] = append(b.handlers[kind], subscriber{id: b.nextID, handler: h})

	return Subscription{kind: kind, id: b.nextID}
}

// Unsubscribe removes the subscription and reports whether it was present.
func (b *Bus) Unsubscribe(sub Subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[sub.kind]
	i := slices.IndexFunc(subs, func(s subscriber) bool { return s.id == sub.id })
	if i < 0 {
		return false
	}

	subs = slices.Delete(slices.Clone(subs), i, i+1)
	if len(subs) == 0 {
		delete(b.handlers, sub.kind)
	} else {
		b.handlers[sub.kind] = subs
	}

	return true
}

// WithHandlerTimeout replaces DefaultHandlerTimeout.
func (b *Bus) WithHandlerTimeout(d time.Duration) *Bus {
	b.timeout = d
	return b
}

// Publish invokes every handler subscribed to e.Kind at the time of the
// call, each in its own goroutine, and returns once all have finished.
// Handler errors and panics are logged and counted, never returned.
//
// Handlers get ctx's values but not its cancellation: a state change that
// was already committed is delivered even if the publishing request has
// gone away. Each handler runs under the bus timeout instead.
func (b *Bus) Publish(ctx context.Context, e Event) {
	b.mu.RLock()
	subs := b.handlers[e.Kind]
	b.mu.RUnlock()

	metrics.EventsPublished.WithLabelValues(e.Kind.String()).Inc()

	if len(subs) == 0 {
		return
	}

	hctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(len(subs))
	for _, s := range subs {
		go func(s subscriber) {
			defer wg.Done()
			b.invoke(hctx, s, e)
		}(s)
	}
	wg.Wait()
}

// Len returns the number of handlers subscribed to kind.
func (b *Bus) Len(kind Kind) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[kind])
}

// Clear drops every subscription.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = make(map[Kind][]subscriber)
}

func (b *Bus) invoke(ctx context.Context, s subscriber, e Event) {
	defer func() {
		if r := recover(); r != nil {
			metrics.HandlerFailures.WithLabelValues(e.Kind.String()).Inc()
			b.log.ErrorContext(ctx, "event handler panicked",
				slog.String("kind", e.Kind.String()),
				slog.Uint64("subscription", s.id),
				slog.String("error", fmt.Sprint(r)),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	if err := s.handler(ctx, e); err != nil {
		metrics.HandlerFailures.WithLabelValues(e.Kind.String()).Inc()
		b.log.ErrorContext(ctx, "event handler failed",
			slog.String("kind", e.Kind.String()),
			slog.Uint64("subscription", s.id),
			slog.String("origin", string(e.Origin)),
			slog.String("error", err.Error()),
		)
	}
}
