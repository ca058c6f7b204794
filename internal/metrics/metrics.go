// Package metrics registers the bot's Prometheus collectors on the default
// registry. They are exposed on /metrics by the web server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "soundboard"

// HTTP
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Admin panel HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Admin panel HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Event bus
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bus",
			Name:      "events_published_total",
			Help:      "Events published on the in-process bus, by kind.",
		},
		[]string{"kind"},
	)

	HandlerFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bus",
			Name:      "handler_failures_total",
			Help:      "Subscriber callbacks that returned an error or panicked, by kind.",
		},
		[]string{"kind"},
	)
)

// Playback
var (
	PlaybackTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "playback",
			Name:      "ticks_total",
			Help:      "Scheduler ticks by outcome.",
		},
		[]string{"outcome"},
	)

	PlaybackDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "playback",
			Name:      "duration_seconds",
			Help:      "Time from voice join to disconnect.",
			Buckets:   []float64{1, 2, 5, 10, 20, 30, 60, 120},
		},
	)
)

// Notifications
var NotificationsSent = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "notification",
		Name:      "messages_total",
		Help:      "Notification messages by result.",
	},
	[]string{"result"},
)

// Commands
var CommandsHandled = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "command",
		Name:      "handled_total",
		Help:      "Slash commands dispatched, by name and result.",
	},
	[]string{"command", "result"},
)
