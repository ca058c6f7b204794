package command

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/heartmarshall/soundboard/internal/domain"
	"github.com/heartmarshall/soundboard/internal/eventbus"
	"github.com/heartmarshall/soundboard/internal/service/soundboard"
)

const (
	listChunkSize = 15
	listMaxChunks = 3

	colorBlurple = 0x5865F2
	colorGreen   = 0x57F287
	colorRed     = 0xED4245
)

type admin interface {
	List(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
	SetVolume(ctx context.Context, origin eventbus.Origin, percent int) (int, error)
	SetInterval(ctx context.Context, origin eventbus.Origin, seconds int) (int, error)
	Limits() soundboard.Limits
}

type scheduler interface {
	IsRunning() bool
	Interval() int
	Volume() int
	NextTickAt() time.Time
}

type gateway interface {
	Latency() time.Duration
	ActiveVoice() (domain.VoiceRoom, bool)
}

// Deps are the collaborators of the built-in commands.
type Deps struct {
	Admin     admin
	Scheduler scheduler
	Gateway   gateway
	// Now defaults to time.Now.
	Now func() time.Time
}

// Builtins returns the command table of the bot.
func Builtins(d Deps) []Command {
	if d.Now == nil {
		d.Now = time.Now
	}
	limits := d.Admin.Limits()

	return []Command{
		{
			Name:        "ping",
			Description: "Ping the bot and get a response.",
			Handle:      d.ping,
		},
		{
			Name:        "status",
			Description: "Show the soundboard bot's current status",
			Handle:      d.status,
		},
		{
			Name:        "list",
			Description: "Show all available sounds in the soundboard",
			Handle:      d.list,
		},
		{
			Name:        "volume",
			Description: "Set the soundboard playback volume",
			Options: []Option{
				{Name: "level", Description: "Volume level (0-100)", Required: true, Min: 0, Max: 100},
			},
			Handle: d.volume,
		},
		{
			Name:        "interval",
			Description: "Set the time between sounds",
			Options: []Option{
				{
					Name:        "seconds",
					Description: fmt.Sprintf("Seconds between sounds (%d-%d)", limits.MinInterval, limits.MaxInterval),
					Required:    true,
					Min:         limits.MinInterval,
					Max:         limits.MaxInterval,
				},
			},
			Handle: d.interval,
		},
		{
			Name:        "nextsound",
			Description: "Show time left until next sound is played.",
			Handle:      d.nextSound,
		},
	}
}

func (d Deps) ping(_ context.Context, req Request) (Response, error) {
	return Response{
		Content: fmt.Sprintf("🔊 Pong! Soundboard is ready, <@%s>! (%dms)", req.UserID, d.Gateway.Latency().Milliseconds()),
	}, nil
}

func (d Deps) status(ctx context.Context, _ Request) (Response, error) {
	count, err := d.Admin.Count(ctx)
	if err != nil {
		return Response{}, err
	}

	running := d.Scheduler.IsRunning()
	color, state := colorRed, "🔴 Stopped"
	if running {
		color, state = colorGreen, "🟢 Active"
	}

	voice := "🔇 Not connected"
	if room, ok := d.Gateway.ActiveVoice(); ok {
		voice = fmt.Sprintf("🔊 Connected to **%s**", room.Name)
	}

	return Response{Embed: &Embed{
		Title: "📊 Soundboard Status",
		Color: color,
		Fields: []EmbedField{
			{Name: "Service Status", Value: state, Inline: true},
			{Name: "Voice Connection", Value: voice},
			{Name: "⏱️ Interval", Value: fmt.Sprintf("%d seconds", d.Scheduler.Interval()), Inline: true},
			{Name: "🔊 Volume", Value: fmt.Sprintf("%d%%", d.Scheduler.Volume()), Inline: true},
			{Name: "🎵 Sounds", Value: fmt.Sprintf("%d available", count), Inline: true},
		},
		Footer: fmt.Sprintf("Bot Latency: %dms", d.Gateway.Latency().Milliseconds()),
	}}, nil
}

func (d Deps) list(ctx context.Context, _ Request) (Response, error) {
	names, err := d.Admin.List(ctx)
	if err != nil {
		return Response{}, err
	}
	if len(names) == 0 {
		return Response{
			Content:   "🔇 No sounds available. Upload some sounds via the web interface!",
			Ephemeral: true,
		}, nil
	}

	embed := &Embed{
		Title:       "🎵 Sound Library",
		Description: fmt.Sprintf("**%d** sounds available", len(names)),
		Color:       colorBlurple,
	}

	shown := min(len(names), listChunkSize*listMaxChunks)
	for i := 0; i < shown; i += listChunkSize {
		chunk := names[i:min(i+listChunkSize, shown)]
		lines := make([]string, len(chunk))
		for j, n := range chunk {
			lines[j] = "• `" + n + "`"
		}
		title := "Sounds"
		if i > 0 {
			title = "Sounds (cont.)"
		}
		embed.Fields = append(embed.Fields, EmbedField{Name: title, Value: strings.Join(lines, "\n")})
	}
	if rest := len(names) - shown; rest > 0 {
		embed.Footer = fmt.Sprintf("... and %d more sounds", rest)
	}

	return Response{Embed: embed}, nil
}

func (d Deps) volume(ctx context.Context, req Request) (Response, error) {
	level, ok := req.Int("level")
	if !ok {
		return Response{}, domain.NewValidationError("level", "Volume level is required.")
	}

	old, err := d.Admin.SetVolume(ctx, eventbus.OriginCommand, level)
	if err != nil {
		return Response{}, err
	}

	return Response{
		Content: fmt.Sprintf("%s Volume changed from **%d%%** to **%d%%**", volumeEmoji(level), old, level),
	}, nil
}

func (d Deps) interval(ctx context.Context, req Request) (Response, error) {
	seconds, ok := req.Int("seconds")
	if !ok {
		return Response{}, domain.NewValidationError("seconds", "Interval is required.")
	}

	old, err := d.Admin.SetInterval(ctx, eventbus.OriginCommand, seconds)
	if err != nil {
		return Response{}, err
	}

	return Response{
		Content: fmt.Sprintf("⏱️ Interval changed from %d to %d seconds", old, seconds),
	}, nil
}

func (d Deps) nextSound(_ context.Context, _ Request) (Response, error) {
	if !d.Scheduler.IsRunning() {
		return Response{Content: "The soundboard is not running.", Ephemeral: true}, nil
	}

	next := d.Scheduler.NextTickAt()
	left := next.Sub(d.Now())
	if next.IsZero() || left <= 0 {
		return Response{Content: "A sound can be played now!"}, nil
	}
	return Response{
		Content: fmt.Sprintf("Next sound in %d seconds.", int(math.Ceil(left.Seconds()))),
	}, nil
}

func volumeEmoji(level int) string {
	switch {
	case level == 0:
		return "🔇"
	case level < 33:
		return "🔈"
	case level < 66:
		return "🔉"
	default:
		return "🔊"
	}
}
