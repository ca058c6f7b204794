package playback

import (
	"context"
	"sync"

	"github.com/heartmarshall/soundboard/internal/domain"
)

var _ voiceTransport = &voiceTransportMock{}

type voiceTransportMock struct {
	GuildsFunc            func() []string
	ListJoinableRoomsFunc func(ctx context.Context, guildID string) ([]domain.VoiceRoom, error)
	ConnectedFunc         func(guildID string) bool
	JoinFunc              func(ctx context.Context, room domain.VoiceRoom) (domain.VoiceConn, error)
	PlayFunc              func(ctx context.Context, conn domain.VoiceConn, audio []byte, volume float64) error
	IsPlayingFunc         func(conn domain.VoiceConn) bool
	DisconnectFunc        func(ctx context.Context, conn domain.VoiceConn) error

	calls struct {
		Guilds            []struct{}
		ListJoinableRooms []struct {
			Ctx     context.Context
			GuildID string
		}
		Connected []struct {
			GuildID string
		}
		Join []struct {
			Ctx  context.Context
			Room domain.VoiceRoom
		}
		Play []struct {
			Ctx    context.Context
			Conn   domain.VoiceConn
			Audio  []byte
			Volume float64
		}
		IsPlaying []struct {
			Conn domain.VoiceConn
		}
		Disconnect []struct {
			Ctx  context.Context
			Conn domain.VoiceConn
		}
	}
	lockGuilds            sync.RWMutex
	lockListJoinableRooms sync.RWMutex
	lockConnected         sync.RWMutex
	lockJoin              sync.RWMutex
	lockPlay              sync.RWMutex
	lockIsPlaying         sync.RWMutex
	lockDisconnect        sync.RWMutex
}

func (mock *voiceTransportMock) Guilds() []string {
	if mock.GuildsFunc == nil {
		panic("voiceTransportMock.GuildsFunc: method is nil but voiceTransport.Guilds was just called")
	}
	mock.lockGuilds.Lock()
	mock.calls.Guilds = append(mock.calls.Guilds, struct{}{})
	mock.lockGuilds.Unlock()
	return mock.GuildsFunc()
}

func (mock *voiceTransportMock) GuildsCalls() []struct{} {
	mock.lockGuilds.RLock()
	calls := mock.calls.Guilds
	mock.lockGuilds.RUnlock()
	return calls
}

func (mock *voiceTransportMock) ListJoinableRooms(ctx context.Context, guildID string) ([]domain.VoiceRoom, error) {
	if mock.ListJoinableRoomsFunc == nil {
		panic("voiceTransportMock.ListJoinableRoomsFunc: method is nil but voiceTransport.ListJoinableRooms was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		GuildID string
	}{Ctx: ctx, GuildID: guildID}
	mock.lockListJoinableRooms.Lock()
	mock.calls.ListJoinableRooms = append(mock.calls.ListJoinableRooms, callInfo)
	mock.lockListJoinableRooms.Unlock()
	return mock.ListJoinableRoomsFunc(ctx, guildID)
}

func (mock *voiceTransportMock) ListJoinableRoomsCalls() []struct {
	Ctx     context.Context
	GuildID string
} {
	mock.lockListJoinableRooms.RLock()
	calls := mock.calls.ListJoinableRooms
	mock.lockListJoinableRooms.RUnlock()
	return calls
}

func (mock *voiceTransportMock) Connected(guildID string) bool {
	if mock.ConnectedFunc == nil {
		panic("voiceTransportMock.ConnectedFunc: method is nil but voiceTransport.Connected was just called")
	}
	callInfo := struct {
		GuildID string
	}{GuildID: guildID}
	mock.lockConnected.Lock()
	mock.calls.Connected = append(mock.calls.Connected, callInfo)
	mock.lockConnected.Unlock()
	return mock.ConnectedFunc(guildID)
}

func (mock *voiceTransportMock) ConnectedCalls() []struct {
	GuildID string
} {
	mock.lockConnected.RLock()
	calls := mock.calls.Connected
	mock.lockConnected.RUnlock()
	return calls
}

func (mock *voiceTransportMock) Join(ctx context.Context, room domain.VoiceRoom) (domain.VoiceConn, error) {
	if mock.JoinFunc == nil {
		panic("voiceTransportMock.JoinFunc: method is nil but voiceTransport.Join was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Room domain.VoiceRoom
	}{Ctx: ctx, Room: room}
	mock.lockJoin.Lock()
	mock.calls.Join = append(mock.calls.Join, callInfo)
	mock.lockJoin.Unlock()
	return mock.JoinFunc(ctx, room)
}

func (mock *voiceTransportMock) JoinCalls() []struct {
	Ctx  context.Context
	Room domain.VoiceRoom
} {
	mock.lockJoin.RLock()
	calls := mock.calls.Join
	mock.lockJoin.RUnlock()
	return calls
}

func (mock *voiceTransportMock) Play(ctx context.Context, conn domain.VoiceConn, audio []byte, volume float64) error {
	if mock.PlayFunc == nil {
		panic("voiceTransportMock.PlayFunc: method is nil but voiceTransport.Play was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Conn   domain.VoiceConn
		Audio  []byte
		Volume float64
	}{Ctx: ctx, Conn: conn, Audio: audio, Volume: volume}
	mock.lockPlay.Lock()
	mock.calls.Play = append(mock.calls.Play, callInfo)
	mock.lockPlay.Unlock()
	return mock.PlayFunc(ctx, conn, audio, volume)
}

func (mock *voiceTransportMock) PlayCalls() []struct {
	Ctx    context.Context
	Conn   domain.VoiceConn
	Audio  []byte
	Volume float64
} {
	mock.lockPlay.RLock()
	calls := mock.calls.Play
	mock.lockPlay.RUnlock()
	return calls
}

func (mock *voiceTransportMock) IsPlaying(conn domain.VoiceConn) bool {
	if mock.IsPlayingFunc == nil {
		panic("voiceTransportMock.IsPlayingFunc: method is nil but voiceTransport.IsPlaying was just called")
	}
	callInfo := struct {
		Conn domain.VoiceConn
	}{Conn: conn}
	mock.lockIsPlaying.Lock()
	mock.calls.IsPlaying = append(mock.calls.IsPlaying, callInfo)
	mock.lockIsPlaying.Unlock()
	return mock.IsPlayingFunc(conn)
}

func (mock *voiceTransportMock) IsPlayingCalls() []struct {
	Conn domain.VoiceConn
} {
	mock.lockIsPlaying.RLock()
	calls := mock.calls.IsPlaying
	mock.lockIsPlaying.RUnlock()
	return calls
}

func (mock *voiceTransportMock) Disconnect(ctx context.Context, conn domain.VoiceConn) error {
	if mock.DisconnectFunc == nil {
		panic("voiceTransportMock.DisconnectFunc: method is nil but voiceTransport.Disconnect was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Conn domain.VoiceConn
	}{Ctx: ctx, Conn: conn}
	mock.lockDisconnect.Lock()
	mock.calls.Disconnect = append(mock.calls.Disconnect, callInfo)
	mock.lockDisconnect.Unlock()
	return mock.DisconnectFunc(ctx, conn)
}

func (mock *voiceTransportMock) DisconnectCalls() []struct {
	Ctx  context.Context
	Conn domain.VoiceConn
} {
	mock.lockDisconnect.RLock()
	calls := mock.calls.Disconnect
	mock.lockDisconnect.RUnlock()
	return calls
}

var _ soundSource = &soundSourceMock{}

type soundSourceMock struct {
	CountFunc     func(ctx context.Context) (int, error)
	GetRandomFunc func(ctx context.Context) (*domain.Sound, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
		GetRandom []struct {
			Ctx context.Context
		}
	}
	lockCount     sync.RWMutex
	lockGetRandom sync.RWMutex
}

func (mock *soundSourceMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("soundSourceMock.CountFunc: method is nil but soundSource.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *soundSourceMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *soundSourceMock) GetRandom(ctx context.Context) (*domain.Sound, error) {
	if mock.GetRandomFunc == nil {
		panic("soundSourceMock.GetRandomFunc: method is nil but soundSource.GetRandom was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetRandom.Lock()
	mock.calls.GetRandom = append(mock.calls.GetRandom, callInfo)
	mock.lockGetRandom.Unlock()
	return mock.GetRandomFunc(ctx)
}

func (mock *soundSourceMock) GetRandomCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetRandom.RLock()
	calls := mock.calls.GetRandom
	mock.lockGetRandom.RUnlock()
	return calls
}

var _ settingsSource = &settingsSourceMock{}

type settingsSourceMock struct {
	GetIntervalFunc func(ctx context.Context) (int, error)
	GetVolumeFunc   func(ctx context.Context) (int, error)

	calls struct {
		GetInterval []struct {
			Ctx context.Context
		}
		GetVolume []struct {
			Ctx context.Context
		}
	}
	lockGetInterval sync.RWMutex
	lockGetVolume   sync.RWMutex
}

func (mock *settingsSourceMock) GetInterval(ctx context.Context) (int, error) {
	if mock.GetIntervalFunc == nil {
		panic("settingsSourceMock.GetIntervalFunc: method is nil but settingsSource.GetInterval was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetInterval.Lock()
	mock.calls.GetInterval = append(mock.calls.GetInterval, callInfo)
	mock.lockGetInterval.Unlock()
	return mock.GetIntervalFunc(ctx)
}

func (mock *settingsSourceMock) GetIntervalCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetInterval.RLock()
	calls := mock.calls.GetInterval
	mock.lockGetInterval.RUnlock()
	return calls
}

func (mock *settingsSourceMock) GetVolume(ctx context.Context) (int, error) {
	if mock.GetVolumeFunc == nil {
		panic("settingsSourceMock.GetVolumeFunc: method is nil but settingsSource.GetVolume was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetVolume.Lock()
	mock.calls.GetVolume = append(mock.calls.GetVolume, callInfo)
	mock.lockGetVolume.Unlock()
	return mock.GetVolumeFunc(ctx)
}

func (mock *settingsSourceMock) GetVolumeCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetVolume.RLock()
	calls := mock.calls.GetVolume
	mock.lockGetVolume.RUnlock()
	return calls
}
