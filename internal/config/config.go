package config

import (
	"net"
	"slices"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Discord    DiscordConfig    `yaml:"discord"`
	Database   DatabaseConfig   `yaml:"database"`
	Web        WebConfig        `yaml:"web"`
	Auth       AuthConfig       `yaml:"auth"`
	Soundboard SoundboardConfig `yaml:"soundboard"`
	Log        LogConfig        `yaml:"log"`
}

// DiscordConfig holds bot credentials and the guild commands are synced to.
type DiscordConfig struct {
	Token           string `yaml:"token"             env:"DISCORD_BOT_TOKEN"            env-required:"true"`
	GuildID         string `yaml:"guild_id"          env:"GUILD_ID"                     env-required:"true"`
	NotifyChannelID string `yaml:"notify_channel_id" env:"SOUNDBOARD_NOTIFY_CHANNEL_ID"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// WebConfig holds admin panel HTTP server settings.
type WebConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"SOUNDBOARD_WEB_ENABLED"          env-default:"true"`
	Host            string        `yaml:"host"             env:"SOUNDBOARD_WEB_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SOUNDBOARD_WEB_PORT"             env-default:"8000"`
	RootPath        string        `yaml:"root_path"        env:"SOUNDBOARD_WEB_ROOT_PATH"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SOUNDBOARD_WEB_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SOUNDBOARD_WEB_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SOUNDBOARD_WEB_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SOUNDBOARD_WEB_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Addr returns the listen address.
func (c WebConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// AuthConfig holds Discord OAuth and admin session settings.
type AuthConfig struct {
	ClientID       string        `yaml:"client_id"        env:"DISCORD_CLIENT_ID"`
	ClientSecret   string        `yaml:"client_secret"    env:"DISCORD_CLIENT_SECRET"`
	RedirectURI    string        `yaml:"redirect_uri"     env:"DISCORD_REDIRECT_URI"`
	SessionSecret  string        `yaml:"session_secret"   env:"SESSION_SECRET"`
	SessionTTL     time.Duration `yaml:"session_ttl"      env:"SESSION_TTL"              env-default:"24h"`
	SessionIssuer  string        `yaml:"session_issuer"   env:"SESSION_ISSUER"           env-default:"soundboard"`
	SecureCookies  bool          `yaml:"secure_cookies"   env:"SESSION_SECURE_COOKIES"   env-default:"false"`
	AllowedUserIDs []string      `yaml:"allowed_user_ids" env:"ADMIN_ALLOWED_USER_IDS"   env-separator:","`
}

// IsUserAllowed reports whether a Discord user may use the admin panel.
// An empty allow-list admits every user that completes OAuth.
func (c AuthConfig) IsUserAllowed(userID string) bool {
	if len(c.AllowedUserIDs) == 0 {
		return true
	}
	return slices.Contains(c.AllowedUserIDs, userID)
}

// SoundboardConfig holds playback and upload rules.
type SoundboardConfig struct {
	DefaultInterval int           `yaml:"interval"         env:"SOUNDBOARD_INTERVAL"         env-default:"30"`
	DefaultVolume   int           `yaml:"volume"           env:"SOUNDBOARD_VOLUME"           env-default:"100"`
	MinInterval     int           `yaml:"min_interval"     env:"SOUNDBOARD_MIN_INTERVAL"     env-default:"5"`
	MaxInterval     int           `yaml:"max_interval"     env:"SOUNDBOARD_MAX_INTERVAL"     env-default:"3600"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SOUNDBOARD_MAX_UPLOAD_BYTES" env-default:"1048576"`
	PollInterval    time.Duration `yaml:"poll_interval"    env:"SOUNDBOARD_POLL_INTERVAL"    env-default:"500ms"`
	MaxPlayback     time.Duration `yaml:"max_playback"     env:"SOUNDBOARD_MAX_PLAYBACK"     env-default:"2m"`
	FFmpegPath      string        `yaml:"ffmpeg_path"      env:"FFMPEG_PATH"                 env-default:"ffmpeg"`

	// ActivityRetentionDays is how long the activity log is kept by cmd/cleanup.
	ActivityRetentionDays int `yaml:"activity_retention_days" env:"SOUNDBOARD_ACTIVITY_RETENTION_DAYS" env-default:"90"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
