// Package web serves the admin panel: Discord login, the sound library,
// and the playback settings.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/soundboard/internal/auth"
	"github.com/heartmarshall/soundboard/internal/domain"
	"github.com/heartmarshall/soundboard/internal/eventbus"
	"github.com/heartmarshall/soundboard/internal/service/soundboard"
	"github.com/heartmarshall/soundboard/internal/transport/middleware"
	"github.com/heartmarshall/soundboard/internal/transport/rest"
)

// loginRatePerMinute bounds /login and /callback per client IP.
const loginRatePerMinute = 20

type soundboardService interface {
	List(ctx context.Context) ([]string, error)
	Download(ctx context.Context, filename string) ([]byte, error)
	Upload(ctx context.Context, origin eventbus.Origin, input soundboard.UploadInput) (*domain.Sound, error)
	Rename(ctx context.Context, origin eventbus.Origin, input soundboard.RenameInput) (string, error)
	Delete(ctx context.Context, origin eventbus.Origin, filename string) error
	Interval(ctx context.Context) (int, error)
	Volume(ctx context.Context) (int, error)
	SetInterval(ctx context.Context, origin eventbus.Origin, seconds int) (int, error)
	SetVolume(ctx context.Context, origin eventbus.Origin, percent int) (int, error)
	RecentActivity(ctx context.Context, limit int) ([]domain.AuditRecord, error)
	Limits() soundboard.Limits
}

type oauthVerifier interface {
	AuthorizeURL(state string) string
	VerifyCode(ctx context.Context, code string) (*auth.OAuthIdentity, error)
}

type sessionManager interface {
	Issue(identity auth.OAuthIdentity) (string, error)
	Validate(token string) (auth.OAuthIdentity, error)
	TTL() time.Duration
}

// Config holds panel settings that do not come from collaborators.
type Config struct {
	// RootPath mounts the panel below a prefix, e.g. "/soundboard".
	RootPath      string
	SecureCookies bool
	// IsUserAllowed gates login. Nil admits everyone.
	IsUserAllowed func(userID string) bool
}

// Handler serves the admin panel.
type Handler struct {
	svc      soundboardService
	verifier oauthVerifier
	sessions sessionManager
	health   *rest.HealthHandler
	limiter  *middleware.RateLimiter
	cfg      Config
	log      *slog.Logger
}

// NewHandler creates a Handler. limiter may be nil.
func NewHandler(
	cfg Config,
	svc soundboardService,
	verifier oauthVerifier,
	sessions sessionManager,
	health *rest.HealthHandler,
	limiter *middleware.RateLimiter,
	logger *slog.Logger,
) *Handler {
	cfg.RootPath = strings.TrimRight(cfg.RootPath, "/")
	if cfg.IsUserAllowed == nil {
		cfg.IsUserAllowed = func(string) bool { return true }
	}
	return &Handler{
		svc:      svc,
		verifier: verifier,
		sessions: sessions,
		health:   health,
		limiter:  limiter,
		cfg:      cfg,
		log:      logger.With("handler", "web"),
	}
}

// Routes builds the router, mounted under RootPath when one is set.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Session(h.sessions),
		middleware.Logger(h.log),
		middleware.Recovery(h.log),
		middleware.Metrics,
	)

	r.Get("/live", h.health.Live)
	r.Get("/ready", h.health.Ready)
	r.Get("/health", h.health.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if h.limiter != nil {
			r.Use(h.limiter.Limit(loginRatePerMinute))
		}
		r.Get("/login", h.login)
		r.Get("/callback", h.callback)
	})
	r.Get("/logout", h.logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(h.path("/login")))
		r.Get("/", h.index)
		r.Post("/upload", h.upload)
		r.Post("/rename", h.rename)
		r.Post("/delete", h.remove)
		r.Get("/download/{filename}", h.download)
		r.Post("/set-interval", h.setInterval)
		r.Post("/set-volume", h.setVolume)
	})

	if h.cfg.RootPath == "" {
		return r
	}
	root := chi.NewRouter()
	root.Mount(h.cfg.RootPath, r)
	return root
}

// path prefixes p with RootPath.
func (h *Handler) path(p string) string {
	return h.cfg.RootPath + p
}

func (h *Handler) cookiePath() string {
	if h.cfg.RootPath == "" {
		return "/"
	}
	return h.cfg.RootPath
}
