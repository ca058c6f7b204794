package eventbus

// Kind identifies an event type. Handlers subscribe per kind.
type Kind string

const (
	SoundUploaded   Kind = "sound_uploaded"
	SoundDeleted    Kind = "sound_deleted"
	SoundRenamed    Kind = "sound_renamed"
	IntervalChanged Kind = "interval_changed"
	VolumeChanged   Kind = "volume_changed"
	BotReady        Kind = "bot_ready"
	Shutdown        Kind = "shutdown"
)

func (k Kind) String() string { return string(k) }

// Origin tags who produced an event. Empty means the system itself.
type Origin string

const (
	OriginSystem  Origin = ""
	OriginWeb     Origin = "web"
	OriginCommand Origin = "command"
)

// Event is a transient notification that something changed. Only the fields
// relevant to Kind are set:
//
//	SoundUploaded, SoundDeleted   Filename
//	SoundRenamed                  Filename, NewFilename
//	IntervalChanged               Value, OldValue (seconds)
//	VolumeChanged                 Value, OldValue (percent)
//	BotReady, Shutdown            none
type Event struct {
	Kind        Kind
	Origin      Origin
	Filename    string
	NewFilename string
	Value       int
	OldValue    int
}

func NewSoundUploaded(origin Origin, filename string) Event {
	return Event{Kind: SoundUploaded, Origin: origin, Filename: filename}
}

func NewSoundDeleted(origin Origin, filename string) Event {
	return Event{Kind: SoundDeleted, Origin: origin, Filename: filename}
}

func NewSoundRenamed(origin Origin, oldName, newName string) Event {
	return Event{Kind: SoundRenamed, Origin: origin, Filename: oldName, NewFilename: newName}
}

func NewIntervalChanged(origin Origin, value, old int) Event {
	return Event{Kind: IntervalChanged, Origin: origin, Value: value, OldValue: old}
}

func NewVolumeChanged(origin Origin, value, old int) Event {
	return Event{Kind: VolumeChanged, Origin: origin, Value: value, OldValue: old}
}

func NewBotReady() Event { return Event{Kind: BotReady} }

func NewShutdown() Event { return Event{Kind: Shutdown} }
