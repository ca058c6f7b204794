package domain

import (
	"strings"
	"time"
)

// Sound is an uploaded audio clip. Filename is unique and case-sensitive.
type Sound struct {
	ID        int64
	Filename  string
	Data      []byte
	CreatedAt time.Time
}

// SoundExtension is the only file extension accepted for uploads.
const SoundExtension = ".mp3"

// MaxFilenameLength bounds filenames accepted by rename.
const MaxFilenameLength = 64

// NormalizeFilename trims whitespace and appends the .mp3 extension when it
// is missing.
func NormalizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if !strings.HasSuffix(strings.ToLower(name), SoundExtension) {
		name += SoundExtension
	}
	return name
}

// IsSafeFilename reports whether name can be stored and served as-is.
func IsSafeFilename(name string) bool {
	if name == "" || len(name) > MaxFilenameLength {
		return false
	}
	return !strings.Contains(name, "/") && !strings.Contains(name, `\`) && !strings.Contains(name, "..")
}
