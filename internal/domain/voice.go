package domain

// VoiceRoom is a voice channel the bot is allowed to join.
type VoiceRoom struct {
	GuildID   string
	ChannelID string
	Name      string
	Occupants int
}

// VoiceConn identifies an active voice connection. The transport owns the
// underlying connection; callers only pass the handle back.
type VoiceConn struct {
	GuildID   string
	ChannelID string
}

// Channel is a resolved text channel used for notifications.
type Channel struct {
	ID   string
	Name string
}
