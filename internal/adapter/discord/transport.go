// Package discord connects the bot to the Discord gateway. It implements
// the voice, messaging, and slash command surfaces used by the services.
package discord

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/heartmarshall/soundboard/internal/domain"
)

// Options configure a Transport.
type Options struct {
	Token      string
	GuildID    string
	FFmpegPath string
}

// Transport wraps one gateway session.
type Transport struct {
	session *discordgo.Session
	guildID string
	ffmpeg  string
	log     *slog.Logger

	mu                 sync.Mutex
	streams            map[string]*stream
	removeInteractions func()
}

// New creates a session with the intents the bot needs. The gateway is not
// contacted until Open.
func New(opts Options, log *slog.Logger) (*Transport, error) {
	s, err := discordgo.New("Bot " + opts.Token)
	if err != nil {
		return nil, fmt.Errorf("discord: create session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates
	s.StateEnabled = true

	ffmpeg := opts.FFmpegPath
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}

	return &Transport{
		session: s,
		guildID: opts.GuildID,
		ffmpeg:  ffmpeg,
		log:     log.With("adapter", "discord"),
		streams: make(map[string]*stream),
	}, nil
}

// OnReady registers fn for every Ready event. Reconnects fire it again.
func (t *Transport) OnReady(fn func(ctx context.Context)) {
	t.session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		t.log.Info("gateway ready",
			slog.String("user", r.User.Username),
			slog.Int("guilds", len(r.Guilds)))
		fn(context.Background())
	})
}

// Open connects to the gateway.
func (t *Transport) Open() error {
	if err := t.session.Open(); err != nil {
		return fmt.Errorf("%w: open gateway: %w", domain.ErrTransport, err)
	}
	return nil
}

// Close stops all streams, leaves every voice channel, and closes the
// gateway connection.
func (t *Transport) Close(ctx context.Context) error {
	for _, vc := range t.voiceConnections() {
		if err := t.Disconnect(ctx, domain.VoiceConn{GuildID: vc.GuildID, ChannelID: vc.ChannelID}); err != nil {
			t.log.WarnContext(ctx, "voice disconnect on close failed",
				slog.String("guild_id", vc.GuildID),
				slog.String("error", err.Error()))
		}
	}
	if err := t.session.Close(); err != nil {
		return fmt.Errorf("%w: close gateway: %w", domain.ErrTransport, err)
	}
	return nil
}

// Latency is the last heartbeat round trip.
func (t *Transport) Latency() time.Duration {
	return t.session.HeartbeatLatency()
}

func (t *Transport) botUserID() string {
	if t.session.State == nil || t.session.State.User == nil {
		return ""
	}
	return t.session.State.User.ID
}

// Guilds returns the IDs of every guild the bot is in.
func (t *Transport) Guilds() []string {
	st := t.session.State
	st.RLock()
	defer st.RUnlock()

	ids := make([]string, 0, len(st.Guilds))
	for _, g := range st.Guilds {
		ids = append(ids, g.ID)
	}
	return ids
}

// ListJoinableRooms returns the voice channels of guildID the bot may
// connect to, ordered by position, with the number of other users in each.
func (t *Transport) ListJoinableRooms(_ context.Context, guildID string) ([]domain.VoiceRoom, error) {
	st := t.session.State
	g, err := st.Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("%w: guild %s: %w", domain.ErrTransport, guildID, err)
	}

	st.RLock()
	channels := slices.Clone(g.Channels)
	states := slices.Clone(g.VoiceStates)
	st.RUnlock()

	botID := t.botUserID()
	return joinableRooms(guildID, channels, states, botID, func(channelID string) bool {
		perms, err := st.UserChannelPermissions(botID, channelID)
		return err == nil && perms&discordgo.PermissionVoiceConnect != 0
	}), nil
}

// joinableRooms filters channels down to voice rooms that canConnect
// allows and counts the voice states in each, ignoring botID.
func joinableRooms(
	guildID string,
	channels []*discordgo.Channel,
	states []*discordgo.VoiceState,
	botID string,
	canConnect func(channelID string) bool,
) []domain.VoiceRoom {
	occupants := make(map[string]int, len(states))
	for _, vs := range states {
		if vs.UserID == botID || vs.ChannelID == "" {
			continue
		}
		occupants[vs.ChannelID]++
	}

	voice := make([]*discordgo.Channel, 0, len(channels))
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildVoice && canConnect(ch.ID) {
			voice = append(voice, ch)
		}
	}
	slices.SortStableFunc(voice, func(a, b *discordgo.Channel) int {
		return cmp.Compare(a.Position, b.Position)
	})

	rooms := make([]domain.VoiceRoom, 0, len(voice))
	for _, ch := range voice {
		rooms = append(rooms, domain.VoiceRoom{
			GuildID:   guildID,
			ChannelID: ch.ID,
			Name:      ch.Name,
			Occupants: occupants[ch.ID],
		})
	}
	return rooms
}

// Connected reports whether the bot holds a voice connection in guildID.
func (t *Transport) Connected(guildID string) bool {
	return t.voice(guildID) != nil
}

// Join connects to room, self-deafened.
func (t *Transport) Join(ctx context.Context, room domain.VoiceRoom) (domain.VoiceConn, error) {
	vc, err := t.session.ChannelVoiceJoin(room.GuildID, room.ChannelID, false, true)
	if err != nil {
		return domain.VoiceConn{}, fmt.Errorf("%w: join %s: %w", domain.ErrTransport, room.Name, err)
	}
	t.log.DebugContext(ctx, "joined voice",
		slog.String("guild_id", room.GuildID),
		slog.String("channel", room.Name))
	return domain.VoiceConn{GuildID: vc.GuildID, ChannelID: vc.ChannelID}, nil
}

// Disconnect stops any stream in the guild and leaves the voice channel.
func (t *Transport) Disconnect(ctx context.Context, conn domain.VoiceConn) error {
	t.stopStream(ctx, conn.GuildID)

	vc := t.voice(conn.GuildID)
	if vc == nil {
		return nil
	}
	if err := vc.Disconnect(); err != nil {
		return fmt.Errorf("%w: disconnect %s: %w", domain.ErrTransport, conn.GuildID, err)
	}
	return nil
}

// ActiveVoice returns the first voice channel the bot is connected to.
func (t *Transport) ActiveVoice() (domain.VoiceRoom, bool) {
	for _, vc := range t.voiceConnections() {
		room := domain.VoiceRoom{GuildID: vc.GuildID, ChannelID: vc.ChannelID, Name: vc.ChannelID}
		if ch, err := t.session.State.Channel(vc.ChannelID); err == nil {
			room.Name = ch.Name
		}
		return room, true
	}
	return domain.VoiceRoom{}, false
}

func (t *Transport) voice(guildID string) *discordgo.VoiceConnection {
	t.session.RLock()
	defer t.session.RUnlock()
	return t.session.VoiceConnections[guildID]
}

func (t *Transport) voiceConnections() []*discordgo.VoiceConnection {
	t.session.RLock()
	defer t.session.RUnlock()

	out := make([]*discordgo.VoiceConnection, 0, len(t.session.VoiceConnections))
	for _, vc := range t.session.VoiceConnections {
		out = append(out, vc)
	}
	slices.SortFunc(out, func(a, b *discordgo.VoiceConnection) int {
		return cmp.Compare(a.GuildID, b.GuildID)
	})
	return out
}

// FetchChannel resolves a text channel, preferring the gateway cache.
func (t *Transport) FetchChannel(ctx context.Context, channelID string) (domain.Channel, error) {
	ch, err := t.session.State.Channel(channelID)
	if err != nil {
		ch, err = t.session.Channel(channelID, discordgo.WithContext(ctx))
		if err != nil {
			return domain.Channel{}, fmt.Errorf("%w: fetch channel %s: %w", domain.ErrTransport, channelID, err)
		}
	}
	switch ch.Type {
	case discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews:
	default:
		return domain.Channel{}, fmt.Errorf("%w: channel %s is not a text channel", domain.ErrTransport, channelID)
	}
	return domain.Channel{ID: ch.ID, Name: ch.Name}, nil
}

// SendMessage posts text to channelID.
func (t *Transport) SendMessage(ctx context.Context, channelID, text string) error {
	if _, err := t.session.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("%w: send message: %w", domain.ErrTransport, err)
	}
	return nil
}
