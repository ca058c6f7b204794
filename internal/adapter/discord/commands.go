package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/heartmarshall/soundboard/internal/command"
	"github.com/heartmarshall/soundboard/internal/domain"
)

// Discord drops interactions that are not answered within three seconds.
const interactionTimeout = 3 * time.Second

const replyFailed = "Something went wrong. Please try again later."

type dispatcher interface {
	Commands() []command.Command
	Dispatch(ctx context.Context, req command.Request) (command.Response, error)
}

// RegisterCommands replaces the guild's slash commands with the registry
// table and starts answering interactions. Call it after Ready.
func (t *Transport) RegisterCommands(ctx context.Context, reg dispatcher) error {
	appID := t.botUserID()
	if appID == "" {
		return fmt.Errorf("%w: register commands before ready", domain.ErrTransport)
	}

	cmds := toApplicationCommands(reg.Commands())
	if _, err := t.session.ApplicationCommandBulkOverwrite(appID, t.guildID, cmds, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("%w: register commands: %w", domain.ErrTransport, err)
	}

	t.mu.Lock()
	if t.removeInteractions != nil {
		t.removeInteractions()
	}
	t.removeInteractions = t.session.AddHandler(t.interactionHandler(reg))
	t.mu.Unlock()

	t.log.InfoContext(ctx, "slash commands registered",
		slog.String("guild_id", t.guildID),
		slog.Int("count", len(cmds)))
	return nil
}

func (t *Transport) interactionHandler(reg dispatcher) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
		defer cancel()

		req := requestFromInteraction(i)
		resp, err := reg.Dispatch(ctx, req)
		if err != nil {
			resp = command.Response{Content: replyFailed, Ephemeral: true}
			if errors.Is(err, command.ErrUnknownCommand) {
				resp.Content = "Unknown command."
				t.log.WarnContext(ctx, "unknown command", slog.String("command", req.Name))
			} else {
				t.log.ErrorContext(ctx, "command failed",
					slog.String("command", req.Name),
					slog.String("user_id", req.UserID),
					slog.String("error", err.Error()))
			}
		}

		rctx, rcancel := context.WithTimeout(context.WithoutCancel(ctx), interactionTimeout)
		defer rcancel()
		if err := s.InteractionRespond(i.Interaction, toInteractionResponse(resp), discordgo.WithContext(rctx)); err != nil {
			t.log.ErrorContext(rctx, "interaction respond failed",
				slog.String("command", req.Name),
				slog.String("error", err.Error()))
		}
	}
}

func toApplicationCommands(cmds []command.Command) []*discordgo.ApplicationCommand {
	out := make([]*discordgo.ApplicationCommand, 0, len(cmds))
	for _, c := range cmds {
		ac := &discordgo.ApplicationCommand{
			Name:        c.Name,
			Description: c.Description,
		}
		for _, o := range c.Options {
			minValue := float64(o.Min)
			ac.Options = append(ac.Options, &discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        o.Name,
				Description: o.Description,
				Required:    o.Required,
				MinValue:    &minValue,
				MaxValue:    float64(o.Max),
			})
		}
		out = append(out, ac)
	}
	return out
}

func requestFromInteraction(i *discordgo.InteractionCreate) command.Request {
	data := i.ApplicationCommandData()
	req := command.Request{
		Name:    data.Name,
		Options: make(map[string]int64, len(data.Options)),
	}
	for _, o := range data.Options {
		if o.Type == discordgo.ApplicationCommandOptionInteger {
			req.Options[o.Name] = o.IntValue()
		}
	}

	switch {
	case i.Member != nil && i.Member.User != nil:
		req.UserID = i.Member.User.ID
	case i.User != nil:
		req.UserID = i.User.ID
	}
	return req
}

func toInteractionResponse(r command.Response) *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{Content: r.Content}
	if r.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	if e := r.Embed; e != nil {
		me := &discordgo.MessageEmbed{
			Title:       e.Title,
			Description: e.Description,
			Color:       e.Color,
		}
		for _, f := range e.Fields {
			me.Fields = append(me.Fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
		}
		if e.Footer != "" {
			me.Footer = &discordgo.MessageEmbedFooter{Text: e.Footer}
		}
		data.Embeds = []*discordgo.MessageEmbed{me}
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}
