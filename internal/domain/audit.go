package domain

import "time"

// AuditKind tags an audit record with the mutation it describes.
type AuditKind string

const (
	AuditUpload         AuditKind = "upload"
	AuditRename         AuditKind = "rename"
	AuditDelete         AuditKind = "delete"
	AuditIntervalChange AuditKind = "interval_change"
	AuditVolumeChange   AuditKind = "volume_change"
)

func (k AuditKind) String() string { return string(k) }

func (k AuditKind) IsValid() bool {
	switch k {
	case AuditUpload, AuditRename, AuditDelete, AuditIntervalChange, AuditVolumeChange:
		return true
	}
	return false
}

// AuditRecord is one append-only row of the mutation log.
//
// Filename holds the affected sound, or the new value as text for config
// changes. Extra holds the new filename on rename and the previous value on
// config changes.
type AuditRecord struct {
	ID        int64
	CreatedAt time.Time
	Kind      AuditKind
	Filename  string
	Extra     *string
}
