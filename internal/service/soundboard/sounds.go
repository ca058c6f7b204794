package soundboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/soundboard/internal/domain"
	"github.com/heartmarshall/soundboard/internal/eventbus"
)

// List returns all sound filenames in ascending order.
func (s *Service) List(ctx context.Context) ([]string, error) {
	names, err := s.sounds.ListFilenames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sounds: %w", err)
	}
	return names, nil
}

// Count returns the number of stored sounds.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.sounds.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count sounds: %w", err)
	}
	return n, nil
}

// Download returns the audio bytes of filename or domain.ErrNotFound.
func (s *Service) Download(ctx context.Context, filename string) ([]byte, error) {
	data, err := s.sounds.GetDataByFilename(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("download sound: %w", err)
	}
	return data, nil
}

// Upload stores a sound, replacing any sound with the same filename.
func (s *Service) Upload(ctx context.Context, origin eventbus.Origin, input UploadInput) (*domain.Sound, error) {
	if err := input.Validate(s.limits.MaxUploadBytes); err != nil {
		return nil, err
	}

	sound, err := s.sounds.Upsert(ctx, input.Filename, input.Data)
	if err != nil {
		s.log.ErrorContext(ctx, "upload failed",
			slog.String("filename", input.Filename),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("upload sound: %w", err)
	}

	s.log.InfoContext(ctx, "sound uploaded",
		slog.String("filename", sound.Filename),
		slog.Int("bytes", len(input.Data)),
		slog.String("origin", string(origin)),
	)
	s.bus.Publish(ctx, eventbus.NewSoundUploaded(origin, sound.Filename))

	return sound, nil
}

// Rename changes a sound's filename and returns the normalized new name.
// Returns domain.ErrNotFound when OldName is absent and
// domain.ErrAlreadyExists when the new name is taken.
func (s *Service) Rename(ctx context.Context, origin eventbus.Origin, input RenameInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	renamed, err := s.sounds.Rename(ctx, input.OldName, input.NewName)
	if err != nil {
		return "", fmt.Errorf("rename sound: %w", err)
	}
	if !renamed {
		return "", fmt.Errorf("rename sound %q: %w", input.OldName, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "sound renamed",
		slog.String("filename", input.OldName),
		slog.String("new_filename", input.NewName),
		slog.String("origin", string(origin)),
	)
	s.bus.Publish(ctx, eventbus.NewSoundRenamed(origin, input.OldName, input.NewName))

	return input.NewName, nil
}

// Delete removes a sound. Returns domain.ErrNotFound when it is absent.
func (s *Service) Delete(ctx context.Context, origin eventbus.Origin, filename string) error {
	if filename == "" {
		return domain.NewValidationError("filename", "Filename is required.")
	}

	deleted, err := s.sounds.Delete(ctx, filename)
	if err != nil {
		return fmt.Errorf("delete sound: %w", err)
	}
	if !deleted {
		return fmt.Errorf("delete sound %q: %w", filename, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "sound deleted",
		slog.String("filename", filename),
		slog.String("origin", string(origin)),
	)
	s.bus.Publish(ctx, eventbus.NewSoundDeleted(origin, filename))

	return nil
}
