package soundboard

import (
	"fmt"
	"path"
	"strings"

	"github.com/heartmarshall/soundboard/internal/domain"
)

// UploadInput is a sound file received from the web panel.
type UploadInput struct {
	Filename string
	Data     []byte
}

// Validate checks the extension, name, and size. Filename is reduced to its
// base name first since browsers may send a client-side path.
func (i *UploadInput) Validate(maxBytes int64) error {
	i.Filename = path.Base(strings.ReplaceAll(strings.TrimSpace(i.Filename), `\`, "/"))

	if !strings.HasSuffix(strings.ToLower(i.Filename), domain.SoundExtension) {
		return domain.NewValidationError("file", "Only .mp3 files are supported.")
	}
	if !domain.IsSafeFilename(i.Filename) {
		return domain.NewValidationError("file", "Invalid filename.")
	}
	if len(i.Data) == 0 {
		return domain.NewValidationError("file", "File is empty.")
	}
	if int64(len(i.Data)) > maxBytes {
		return domain.NewValidationError("file", fmt.Sprintf("File too large. Max size is %s.", humanBytes(maxBytes)))
	}
	return nil
}

// RenameInput renames OldName to NewName.
type RenameInput struct {
	OldName string
	NewName string
}

// Validate normalizes NewName and checks that it is a safe filename.
func (i *RenameInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.OldName) == "" {
		errs = append(errs, domain.FieldError{Field: "old_name", Message: "Old filename is required."})
	}

	i.NewName = domain.NormalizeFilename(i.NewName)
	if !domain.IsSafeFilename(i.NewName) {
		errs = append(errs, domain.FieldError{Field: "new_name", Message: "Invalid new filename."})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateInterval(v int, l Limits) error {
	if v < l.MinInterval || v > l.MaxInterval {
		return domain.NewValidationError("interval",
			fmt.Sprintf("Interval must be between %d and %d seconds.", l.MinInterval, l.MaxInterval))
	}
	return nil
}

func validateVolume(v int) error {
	if v < 0 || v > 100 {
		return domain.NewValidationError("volume", "Volume must be between 0 and 100.")
	}
	return nil
}

func humanBytes(n int64) string {
	const mib = 1 << 20
	const kib = 1 << 10
	switch {
	case n >= mib && n%mib == 0:
		return fmt.Sprintf("%dMB", n/mib)
	case n >= kib && n%kib == 0:
		return fmt.Sprintf("%dKB", n/kib)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
