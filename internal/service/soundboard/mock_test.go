package soundboard

import (
	"context"
	"sync"

	"github.com/heartmarshall/soundboard/internal/domain"
	"github.com/heartmarshall/soundboard/internal/eventbus"
)

var _ soundRepo = &soundRepoMock{}

type soundRepoMock struct {
	ListFilenamesFunc     func(ctx context.Context) ([]string, error)
	CountFunc             func(ctx context.Context) (int, error)
	GetDataByFilenameFunc func(ctx context.Context, filename string) ([]byte, error)
	UpsertFunc            func(ctx context.Context, filename string, data []byte) (*domain.Sound, error)
	RenameFunc            func(ctx context.Context, oldName string, newName string) (bool, error)
	DeleteFunc            func(ctx context.Context, filename string) (bool, error)

	calls struct {
		ListFilenames []struct {
			Ctx context.Context
		}
		Count []struct {
			Ctx context.Context
		}
		GetDataByFilename []struct {
			Ctx      context.Context
			Filename string
		}
		Upsert []struct {
			Ctx      context.Context
			Filename string
			Data     []byte
		}
		Rename []struct {
			Ctx     context.Context
			OldName string
			NewName string
		}
		Delete []struct {
			Ctx      context.Context
			Filename string
		}
	}
	lockListFilenames     sync.RWMutex
	lockCount             sync.RWMutex
	lockGetDataByFilename sync.RWMutex
	lockUpsert            sync.RWMutex
	lockRename            sync.RWMutex
	lockDelete            sync.RWMutex
}

func (mock *soundRepoMock) ListFilenames(ctx context.Context) ([]string, error) {
	if mock.ListFilenamesFunc == nil {
		panic("soundRepoMock.ListFilenamesFunc: method is nil but soundRepo.ListFilenames was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListFilenames.Lock()
	mock.calls.ListFilenames = append(mock.calls.ListFilenames, callInfo)
	mock.lockListFilenames.Unlock()
	return mock.ListFilenamesFunc(ctx)
}

func (mock *soundRepoMock) ListFilenamesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListFilenames.RLock()
	calls := mock.calls.ListFilenames
	mock.lockListFilenames.RUnlock()
	return calls
}

func (mock *soundRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("soundRepoMock.CountFunc: method is nil but soundRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *soundRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *soundRepoMock) GetDataByFilename(ctx context.Context, filename string) ([]byte, error) {
	if mock.GetDataByFilenameFunc == nil {
		panic("soundRepoMock.GetDataByFilenameFunc: method is nil but soundRepo.GetDataByFilename was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Filename string
	}{Ctx: ctx, Filename: filename}
	mock.lockGetDataByFilename.Lock()
	mock.calls.GetDataByFilename = append(mock.calls.GetDataByFilename, callInfo)
	mock.lockGetDataByFilename.Unlock()
	return mock.GetDataByFilenameFunc(ctx, filename)
}

func (mock *soundRepoMock) GetDataByFilenameCalls() []struct {
	Ctx      context.Context
	Filename string
} {
	mock.lockGetDataByFilename.RLock()
	calls := mock.calls.GetDataByFilename
	mock.lockGetDataByFilename.RUnlock()
	return calls
}

func (mock *soundRepoMock) Upsert(ctx context.Context, filename string, data []byte) (*domain.Sound, error) {
	if mock.UpsertFunc == nil {
		panic("soundRepoMock.UpsertFunc: method is nil but soundRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Filename string
		Data     []byte
	}{Ctx: ctx, Filename: filename, Data: data}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, filename, data)
}

func (mock *soundRepoMock) UpsertCalls() []struct {
	Ctx      context.Context
	Filename string
	Data     []byte
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *soundRepoMock) Rename(ctx context.Context, oldName string, newName string) (bool, error) {
	if mock.RenameFunc == nil {
		panic("soundRepoMock.RenameFunc: method is nil but soundRepo.Rename was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OldName string
		NewName string
	}{Ctx: ctx, OldName: oldName, NewName: newName}
	mock.lockRename.Lock()
	mock.calls.Rename = append(mock.calls.Rename, callInfo)
	mock.lockRename.Unlock()
	return mock.RenameFunc(ctx, oldName, newName)
}

func (mock *soundRepoMock) RenameCalls() []struct {
	Ctx     context.Context
	OldName string
	NewName string
} {
	mock.lockRename.RLock()
	calls := mock.calls.Rename
	mock.lockRename.RUnlock()
	return calls
}

func (mock *soundRepoMock) Delete(ctx context.Context, filename string) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("soundRepoMock.DeleteFunc: method is nil but soundRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Filename string
	}{Ctx: ctx, Filename: filename}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, filename)
}

func (mock *soundRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	Filename string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ settingRepo = &settingRepoMock{}

type settingRepoMock struct {
	GetIntervalFunc func(ctx context.Context) (int, error)
	SetIntervalFunc func(ctx context.Context, v int) (int, error)
	GetVolumeFunc   func(ctx context.Context) (int, error)
	SetVolumeFunc   func(ctx context.Context, v int) (int, error)

	calls struct {
		GetInterval []struct {
			Ctx context.Context
		}
		SetInterval []struct {
			Ctx context.Context
			V   int
		}
		GetVolume []struct {
			Ctx context.Context
		}
		SetVolume []struct {
			Ctx context.Context
			V   int
		}
	}
	lockGetInterval sync.RWMutex
	lockSetInterval sync.RWMutex
	lockGetVolume   sync.RWMutex
	lockSetVolume   sync.RWMutex
}

func (mock *settingRepoMock) GetInterval(ctx context.Context) (int, error) {
	if mock.GetIntervalFunc == nil {
		panic("settingRepoMock.GetIntervalFunc: method is nil but settingRepo.GetInterval was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetInterval.Lock()
	mock.calls.GetInterval = append(mock.calls.GetInterval, callInfo)
	mock.lockGetInterval.Unlock()
	return mock.GetIntervalFunc(ctx)
}

func (mock *settingRepoMock) GetIntervalCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetInterval.RLock()
	calls := mock.calls.GetInterval
	mock.lockGetInterval.RUnlock()
	return calls
}

func (mock *settingRepoMock) SetInterval(ctx context.Context, v int) (int, error) {
	if mock.SetIntervalFunc == nil {
		panic("settingRepoMock.SetIntervalFunc: method is nil but settingRepo.SetInterval was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   int
	}{Ctx: ctx, V: v}
	mock.lockSetInterval.Lock()
	mock.calls.SetInterval = append(mock.calls.SetInterval, callInfo)
	mock.lockSetInterval.Unlock()
	return mock.SetIntervalFunc(ctx, v)
}

func (mock *settingRepoMock) SetIntervalCalls() []struct {
	Ctx context.Context
	V   int
} {
	mock.lockSetInterval.RLock()
	calls := mock.calls.SetInterval
	mock.lockSetInterval.RUnlock()
	return calls
}

func (mock *settingRepoMock) GetVolume(ctx context.Context) (int, error) {
	if mock.GetVolumeFunc == nil {
		panic("settingRepoMock.GetVolumeFunc: method is nil but settingRepo.GetVolume was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetVolume.Lock()
	mock.calls.GetVolume = append(mock.calls.GetVolume, callInfo)
	mock.lockGetVolume.Unlock()
	return mock.GetVolumeFunc(ctx)
}

func (mock *settingRepoMock) GetVolumeCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetVolume.RLock()
	calls := mock.calls.GetVolume
	mock.lockGetVolume.RUnlock()
	return calls
}

func (mock *settingRepoMock) SetVolume(ctx context.Context, v int) (int, error) {
	if mock.SetVolumeFunc == nil {
		panic("settingRepoMock.SetVolumeFunc: method is nil but settingRepo.SetVolume was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   int
	}{Ctx: ctx, V: v}
	mock.lockSetVolume.Lock()
	mock.calls.SetVolume = append(mock.calls.SetVolume, callInfo)
	mock.lockSetVolume.Unlock()
	return mock.SetVolumeFunc(ctx, v)
}

func (mock *settingRepoMock) SetVolumeCalls() []struct {
	Ctx context.Context
	V   int
} {
	mock.lockSetVolume.RLock()
	calls := mock.calls.SetVolume
	mock.lockSetVolume.RUnlock()
	return calls
}

var _ auditReader = &auditReaderMock{}

type auditReaderMock struct {
	ListRecentFunc func(ctx context.Context, limit int) ([]domain.AuditRecord, error)

	calls struct {
		ListRecent []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockListRecent sync.RWMutex
}

func (mock *auditReaderMock) ListRecent(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	if mock.ListRecentFunc == nil {
		panic("auditReaderMock.ListRecentFunc: method is nil but auditReader.ListRecent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

func (mock *auditReaderMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

var _ publisher = &publisherMock{}

type publisherMock struct {
	PublishFunc func(ctx context.Context, e eventbus.Event)

	calls struct {
		Publish []struct {
			Ctx context.Context
			E   eventbus.Event
		}
	}
	lockPublish sync.RWMutex
}

func (mock *publisherMock) Publish(ctx context.Context, e eventbus.Event) {
	if mock.PublishFunc == nil {
		panic("publisherMock.PublishFunc: method is nil but publisher.Publish was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   eventbus.Event
	}{Ctx: ctx, E: e}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	mock.PublishFunc(ctx, e)
}

func (mock *publisherMock) PublishCalls() []struct {
	Ctx context.Context
	E   eventbus.Event
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
