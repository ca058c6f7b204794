package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"github.com/heartmarshall/soundboard/internal/domain"
)

// stream is one ffmpeg process feeding a voice connection.
type stream struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (s *stream) running() bool {
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

// ffmpegArgs converts mp3 on stdin into 48 kHz stereo Opus in an Ogg
// container on stdout, with 20 ms frames as Discord expects.
func ffmpegArgs(volume float64) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "warning",
		"-i", "pipe:0",
		"-af", fmt.Sprintf("volume=%.2f", volume),
		"-ar", "48000",
		"-ac", "2",
		"-c:a", "libopus",
		"-b:a", "128000",
		"-frame_duration", "20",
		"-application", "audio",
		"-f", "ogg",
		"-page_duration", "20000",
		"pipe:1",
	}
}

// Play starts streaming audio into the guild's voice connection and returns
// once ffmpeg is running. IsPlaying reports when the stream ends.
func (t *Transport) Play(ctx context.Context, conn domain.VoiceConn, audio []byte, volume float64) error {
	vc := t.voice(conn.GuildID)
	if vc == nil {
		return fmt.Errorf("%w: not connected in guild %s", domain.ErrTransport, conn.GuildID)
	}
	return t.startStream(ctx, conn.GuildID, audio, volume, vc.OpusSend, vc.Speaking)
}

// startStream runs ffmpeg and forwards its packets to out until the audio
// ends, the stream is stopped, or the Ogg output cannot be read.
func (t *Transport) startStream(
	ctx context.Context,
	guildID string,
	audio []byte,
	volume float64,
	out chan<- []byte,
	speaking func(bool) error,
) error {
	t.stopStream(ctx, guildID)

	sctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(sctx, t.ffmpeg, ffmpegArgs(volume)...)
	cmd.Stdin = bytes.NewReader(audio)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return fmt.Errorf("%w: ffmpeg stdout: %w", domain.ErrTransport, err)
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return fmt.Errorf("%w: start ffmpeg: %w", domain.ErrTransport, err)
	}

	s := &stream{cancel: cancel, done: make(chan struct{})}
	t.mu.Lock()
	t.streams[guildID] = s
	t.mu.Unlock()

	go func() {
		defer close(s.done)
		defer cancel()

		if err := speaking(true); err != nil {
			t.log.WarnContext(sctx, "set speaking failed", slog.String("error", err.Error()))
		}
		sent, err := sendPackets(sctx, stdout, out)
		interrupted := sctx.Err() != nil
		if err != nil {
			// Nothing reads stdout from here on, so ffmpeg must be killed
			// before Wait or it blocks on a full pipe.
			cancel()
		}
		if err := speaking(false); err != nil {
			t.log.DebugContext(sctx, "clear speaking failed", slog.String("error", err.Error()))
		}

		werr := cmd.Wait()
		switch {
		case interrupted:
			t.log.DebugContext(sctx, "stream interrupted", slog.Int("packets", sent))
		case err != nil:
			t.log.ErrorContext(sctx, "stream failed",
				slog.String("guild_id", guildID),
				slog.Int("packets", sent),
				slog.String("error", err.Error()),
				slog.String("stderr", stderr.String()))
		case werr != nil:
			t.log.ErrorContext(sctx, "ffmpeg exited with error",
				slog.String("guild_id", guildID),
				slog.String("error", werr.Error()),
				slog.String("stderr", stderr.String()))
		default:
			t.log.DebugContext(sctx, "stream finished", slog.Int("packets", sent))
		}
	}()

	return nil
}

// IsPlaying reports whether a stream is still sending audio in the guild.
func (t *Transport) IsPlaying(conn domain.VoiceConn) bool {
	t.mu.Lock()
	s := t.streams[conn.GuildID]
	t.mu.Unlock()
	return s != nil && s.running()
}

// stopStream cancels the guild's stream and waits for it to exit or for
// ctx to end.
func (t *Transport) stopStream(ctx context.Context, guildID string) {
	t.mu.Lock()
	s := t.streams[guildID]
	delete(t.streams, guildID)
	t.mu.Unlock()

	if s == nil {
		return
	}
	s.cancel()
	select {
	case <-s.done:
	case <-ctx.Done():
	}
}

// sendPackets forwards the Opus audio packets of an Ogg stream to out,
// skipping the stream headers. It returns the number of packets sent.
func sendPackets(ctx context.Context, r io.Reader, out chan<- []byte) (int, error) {
	ogg := newOggReader(r)
	sent := 0
	for {
		p, err := ogg.Next()
		if errors.Is(err, io.EOF) {
			return sent, nil
		}
		if err != nil {
			return sent, err
		}
		if isOpusHeader(p) {
			continue
		}

		select {
		case out <- p:
			sent++
		case <-ctx.Done():
			return sent, ctx.Err()
		}
	}
}

