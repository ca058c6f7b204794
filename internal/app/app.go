package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/heartmarshall/soundboard/internal/adapter/discord"
	"github.com/heartmarshall/soundboard/internal/adapter/postgres"
	"github.com/heartmarshall/soundboard/internal/adapter/postgres/audit"
	"github.com/heartmarshall/soundboard/internal/adapter/postgres/setting"
	"github.com/heartmarshall/soundboard/internal/adapter/postgres/sound"
	discordoauth "github.com/heartmarshall/soundboard/internal/adapter/provider/discord"
	"github.com/heartmarshall/soundboard/internal/auth"
	"github.com/heartmarshall/soundboard/internal/command"
	"github.com/heartmarshall/soundboard/internal/config"
	"github.com/heartmarshall/soundboard/internal/eventbus"
	"github.com/heartmarshall/soundboard/internal/lifecycle"
	"github.com/heartmarshall/soundboard/internal/service/notification"
	"github.com/heartmarshall/soundboard/internal/service/playback"
	"github.com/heartmarshall/soundboard/internal/service/soundboard"
	"github.com/heartmarshall/soundboard/internal/transport/middleware"
	"github.com/heartmarshall/soundboard/internal/transport/rest"
	"github.com/heartmarshall/soundboard/internal/transport/web"
	"github.com/heartmarshall/soundboard/migrations"
)

// shutdownBudget bounds the whole shutdown sequence after a signal.
const shutdownBudget = 20 * time.Second

// Run wires every component, connects to Discord, and blocks until SIGINT
// or SIGTERM. Services start on the first gateway Ready event.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.InfoContext(ctx, "starting soundboard",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
			return err
		}
	}

	bus := eventbus.New(logger)

	txm := postgres.NewTxManager(pool)
	auditRepo := audit.New(pool)
	soundRepo := sound.New(pool, txm, auditRepo)
	settingRepo := setting.New(pool, txm, auditRepo, setting.Defaults{
		Interval: cfg.Soundboard.DefaultInterval,
		Volume:   cfg.Soundboard.DefaultVolume,
	})

	admin := soundboard.NewService(logger, soundRepo, settingRepo, auditRepo, bus, soundboard.Limits{
		MinInterval:    cfg.Soundboard.MinInterval,
		MaxInterval:    cfg.Soundboard.MaxInterval,
		MaxUploadBytes: cfg.Soundboard.MaxUploadBytes,
	})

	gateway, err := discord.New(discord.Options{
		Token:      cfg.Discord.Token,
		GuildID:    cfg.Discord.GuildID,
		FFmpegPath: cfg.Soundboard.FFmpegPath,
	}, logger)
	if err != nil {
		return err
	}

	scheduler := playback.NewService(logger, gateway, soundRepo, settingRepo, bus, playback.Options{
		PollInterval: cfg.Soundboard.PollInterval,
		MaxPlayback:  cfg.Soundboard.MaxPlayback,
	})
	notifier := notification.NewService(logger, gateway, bus, cfg.Discord.NotifyChannelID)

	registry, err := command.NewRegistry(command.Builtins(command.Deps{
		Admin:     admin,
		Scheduler: scheduler,
		Gateway:   gateway,
	}))
	if err != nil {
		return err
	}

	host := lifecycle.NewHost(logger, bus)
	host.Register("playback", scheduler)
	host.Register("notification", notifier)

	if cfg.Web.Enabled {
		limiter := middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()

		health := rest.NewHealthHandler(pool, BuildVersion()).
			WithComponent("playback", func(context.Context) error {
				if !scheduler.IsRunning() {
					return errors.New("scheduler is " + scheduler.State().String())
				}
				return nil
			})

		panel := web.NewHandler(
			web.Config{
				RootPath:      cfg.Web.RootPath,
				SecureCookies: cfg.Auth.SecureCookies,
				IsUserAllowed: cfg.Auth.IsUserAllowed,
			},
			admin,
			discordoauth.NewVerifier(cfg.Auth.ClientID, cfg.Auth.ClientSecret, cfg.Auth.RedirectURI, logger),
			auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionIssuer, cfg.Auth.SessionTTL),
			health,
			limiter,
			logger,
		)
		host.Register("web", NewHTTPServer(cfg.Web, panel.Routes(), logger))
	}

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := make(chan error, 1)
	var startOnce sync.Once
	gateway.OnReady(func(rctx context.Context) {
		if err := gateway.RegisterCommands(rctx, registry); err != nil {
			logger.ErrorContext(rctx, "register slash commands", slog.String("error", err.Error()))
		}
		if sigCtx.Err() != nil {
			return
		}
		startOnce.Do(func() { started <- host.Start(ctx) })
	})

	if err := gateway.Open(); err != nil {
		return err
	}

	var runErr error
	select {
	case <-sigCtx.Done():
	case err := <-started:
		if err != nil {
			runErr = fmt.Errorf("start services: %w", err)
			break
		}
		logger.InfoContext(ctx, "soundboard ready")
		<-sigCtx.Done()
	}

	logger.InfoContext(ctx, "shutting down")
	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownBudget)
	defer cancel()

	if err := host.Stop(stopCtx); err != nil {
		logger.ErrorContext(stopCtx, "stop services", slog.String("error", err.Error()))
	}
	if err := gateway.Close(stopCtx); err != nil {
		logger.ErrorContext(stopCtx, "close gateway", slog.String("error", err.Error()))
	}

	return runErr
}
