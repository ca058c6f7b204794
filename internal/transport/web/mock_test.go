package web

import (
	"context"
	"sync"

	"github.com/heartmarshall/soundboard/internal/auth"
	"github.com/heartmarshall/soundboard/internal/domain"
	"github.com/heartmarshall/soundboard/internal/eventbus"
	"github.com/heartmarshall/soundboard/internal/service/soundboard"
)

var _ soundboardService = &soundboardServiceMock{}

type soundboardServiceMock struct {
	ListFunc           func(ctx context.Context) ([]string, error)
	DownloadFunc       func(ctx context.Context, filename string) ([]byte, error)
	UploadFunc         func(ctx context.Context, origin eventbus.Origin, input soundboard.UploadInput) (*domain.Sound, error)
	RenameFunc         func(ctx context.Context, origin eventbus.Origin, input soundboard.RenameInput) (string, error)
	DeleteFunc         func(ctx context.Context, origin eventbus.Origin, filename string) error
	IntervalFunc       func(ctx context.Context) (int, error)
	VolumeFunc         func(ctx context.Context) (int, error)
	SetIntervalFunc    func(ctx context.Context, origin eventbus.Origin, seconds int) (int, error)
	SetVolumeFunc      func(ctx context.Context, origin eventbus.Origin, percent int) (int, error)
	RecentActivityFunc func(ctx context.Context, limit int) ([]domain.AuditRecord, error)
	LimitsFunc         func() soundboard.Limits

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Download []struct {
			Ctx      context.Context
			Filename string
		}
		Upload []struct {
			Ctx    context.Context
			Origin eventbus.Origin
			Input  soundboard.UploadInput
		}
		Rename []struct {
			Ctx    context.Context
			Origin eventbus.Origin
			Input  soundboard.RenameInput
		}
		Delete []struct {
			Ctx      context.Context
			Origin   eventbus.Origin
			Filename string
		}
		Interval []struct {
			Ctx context.Context
		}
		Volume []struct {
			Ctx context.Context
		}
		SetInterval []struct {
			Ctx     context.Context
			Origin  eventbus.Origin
			Seconds int
		}
		SetVolume []struct {
			Ctx     context.Context
			Origin  eventbus.Origin
			Percent int
		}
		RecentActivity []struct {
			Ctx   context.Context
			Limit int
		}
		Limits []struct{}
	}
	lockList           sync.RWMutex
	lockDownload       sync.RWMutex
	lockUpload         sync.RWMutex
	lockRename         sync.RWMutex
	lockDelete         sync.RWMutex
	lockInterval       sync.RWMutex
	lockVolume         sync.RWMutex
	lockSetInterval    sync.RWMutex
	lockSetVolume      sync.RWMutex
	lockRecentActivity sync.RWMutex
	lockLimits         sync.RWMutex
}

func (mock *soundboardServiceMock) List(ctx context.Context) ([]string, error) {
	if mock.ListFunc == nil {
		panic("soundboardServiceMock.ListFunc: method is nil but soundboardService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *soundboardServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *soundboardServiceMock) Download(ctx context.Context, filename string) ([]byte, error) {
	if mock.DownloadFunc == nil {
		panic("soundboardServiceMock.DownloadFunc: method is nil but soundboardService.Download was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Filename string
	}{Ctx: ctx, Filename: filename}
	mock.lockDownload.Lock()
	mock.calls.Download = append(mock.calls.Download, callInfo)
	mock.lockDownload.Unlock()
	return mock.DownloadFunc(ctx, filename)
}

func (mock *soundboardServiceMock) DownloadCalls() []struct {
	Ctx      context.Context
	Filename string
} {
	mock.lockDownload.RLock()
	calls := mock.calls.Download
	mock.lockDownload.RUnlock()
	return calls
}

func (mock *soundboardServiceMock) Upload(ctx context.Context, origin eventbus.Origin, input soundboard.UploadInput) (*domain.Sound, error) {
	if mock.UploadFunc == nil {
		panic("soundboardServiceMock.UploadFunc: method is nil but soundboardService.Upload was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Origin eventbus.Origin
		Input  soundboard.UploadInput
	}{Ctx: ctx, Origin: origin, Input: input}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, origin, input)
}

func (mock *soundboardServiceMock) UploadCalls() []struct {
	Ctx    context.Context
	Origin eventbus.Origin
	Input  soundboard.UploadInput
} {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}

func (mock *soundboardServiceMock) Rename(ctx context.Context, origin eventbus.Origin, input soundboard.RenameInput) (string, error) {
	if mock.RenameFunc == nil {
		panic("soundboardServiceMock.RenameFunc: method is nil but soundboardService.Rename was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Origin eventbus.Origin
		Input  soundboard.RenameInput
	}{Ctx: ctx, Origin: origin, Input: input}
	mock.lockRename.Lock()
	mock.calls.Rename = append(mock.calls.Rename, callInfo)
	mock.lockRename.Unlock()
	return mock.RenameFunc(ctx, origin, input)
}

func (mock *soundboardServiceMock) RenameCalls() []struct {
	Ctx    context.Context
	Origin eventbus.Origin
	Input  soundboard.RenameInput
} {
	mock.lockRename.RLock()
	calls := mock.calls.Rename
	mock.lockRename.RUnlock()
	return calls
}

func (mock *soundboardServiceMock) Delete(ctx context.Context, origin eventbus.Origin, filename string) error {
	if mock.DeleteFunc == nil {
		panic("soundboardServiceMock.DeleteFunc: method is nil but soundboardService.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Origin   eventbus.Origin
		Filename string
	}{Ctx: ctx, Origin: origin, Filename: filename}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, origin, filename)
}

func (mock *soundboardServiceMock) DeleteCalls() []struct {
	Ctx      context.Context
	Origin   eventbus.Origin
	Filename string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *soundboardServiceMock) Interval(ctx context.Context) (int, error) {
	if mock.IntervalFunc == nil {
		panic("soundboardServiceMock.IntervalFunc: method is nil but soundboardService.Interval was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockInterval.Lock()
	mock.calls.Interval = append(mock.calls.Interval, callInfo)
	mock.lockInterval.Unlock()
	return mock.IntervalFunc(ctx)
}

func (mock *soundboardServiceMock) IntervalCalls() []struct {
	Ctx context.Context
} {
	mock.lockInterval.RLock()
	calls := mock.calls.Interval
	mock.lockInterval.RUnlock()
	return calls
}

func (mock *soundboardServiceMock) Volume(ctx context.Context) (int, error) {
	if mock.VolumeFunc == nil {
		panic("soundboardServiceMock.VolumeFunc: method is nil but soundboardService.Volume was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockVolume.Lock()
	mock.calls.Volume = append(mock.calls.Volume, callInfo)
	mock.lockVolume.Unlock()
	return mock.VolumeFunc(ctx)
}

func (mock *soundboardServiceMock) VolumeCalls() []struct {
	Ctx context.Context
} {
	mock.lockVolume.RLock()
	calls := mock.calls.Volume
	mock.lockVolume.RUnlock()
	return calls
}

func (mock *soundboardServiceMock) SetInterval(ctx context.Context, origin eventbus.Origin, seconds int) (int, error) {
	if mock.SetIntervalFunc == nil {
		panic("soundboardServiceMock.SetIntervalFunc: method is nil but soundboardService.SetInterval was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Origin  eventbus.Origin
		Seconds int
	}{Ctx: ctx, Origin: origin, Seconds: seconds}
	mock.lockSetInterval.Lock()
	mock.calls.SetInterval = append(mock.calls.SetInterval, callInfo)
	mock.lockSetInterval.Unlock()
	return mock.SetIntervalFunc(ctx, origin, seconds)
}

func (mock *soundboardServiceMock) SetIntervalCalls() []struct {
	Ctx     context.Context
	Origin  eventbus.Origin
	Seconds int
} {
	mock.lockSetInterval.RLock()
	calls := mock.calls.SetInterval
	mock.lockSetInterval.RUnlock()
	return calls
}

func (mock *soundboardServiceMock) SetVolume(ctx context.Context, origin eventbus.Origin, percent int) (int, error) {
	if mock.SetVolumeFunc == nil {
		panic("soundboardServiceMock.SetVolumeFunc: method is nil but soundboardService.SetVolume was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Origin  eventbus.Origin
		Percent int
	}{Ctx: ctx, Origin: origin, Percent: percent}
	mock.lockSetVolume.Lock()
	mock.calls.SetVolume = append(mock.calls.SetVolume, callInfo)
	mock.lockSetVolume.Unlock()
	return mock.SetVolumeFunc(ctx, origin, percent)
}

func (mock *soundboardServiceMock) SetVolumeCalls() []struct {
	Ctx     context.Context
	Origin  eventbus.Origin
	Percent int
} {
	mock.lockSetVolume.RLock()
	calls := mock.calls.SetVolume
	mock.lockSetVolume.RUnlock()
	return calls
}

func (mock *soundboardServiceMock) RecentActivity(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	if mock.RecentActivityFunc == nil {
		panic("soundboardServiceMock.RecentActivityFunc: method is nil but soundboardService.RecentActivity was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockRecentActivity.Lock()
	mock.calls.RecentActivity = append(mock.calls.RecentActivity, callInfo)
	mock.lockRecentActivity.Unlock()
	return mock.RecentActivityFunc(ctx, limit)
}

func (mock *soundboardServiceMock) RecentActivityCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockRecentActivity.RLock()
	calls := mock.calls.RecentActivity
	mock.lockRecentActivity.RUnlock()
	return calls
}

func (mock *soundboardServiceMock) Limits() soundboard.Limits {
	if mock.LimitsFunc == nil {
		panic("soundboardServiceMock.LimitsFunc: method is nil but soundboardService.Limits was just called")
	}
	mock.lockLimits.Lock()
	mock.calls.Limits = append(mock.calls.Limits, struct{}{})
	mock.lockLimits.Unlock()
	return mock.LimitsFunc()
}

func (mock *soundboardServiceMock) LimitsCalls() []struct{} {
	mock.lockLimits.RLock()
	calls := mock.calls.Limits
	mock.lockLimits.RUnlock()
	return calls
}

var _ oauthVerifier = &oauthVerifierMock{}

type oauthVerifierMock struct {
	AuthorizeURLFunc func(state string) string
	VerifyCodeFunc   func(ctx context.Context, code string) (*auth.OAuthIdentity, error)

	calls struct {
		AuthorizeURL []struct {
			State string
		}
		VerifyCode []struct {
			Ctx  context.Context
			Code string
		}
	}
	lockAuthorizeURL sync.RWMutex
	lockVerifyCode   sync.RWMutex
}

func (mock *oauthVerifierMock) AuthorizeURL(state string) string {
	if mock.AuthorizeURLFunc == nil {
		panic("oauthVerifierMock.AuthorizeURLFunc: method is nil but oauthVerifier.AuthorizeURL was just called")
	}
	callInfo := struct {
		State string
	}{State: state}
	mock.lockAuthorizeURL.Lock()
	mock.calls.AuthorizeURL = append(mock.calls.AuthorizeURL, callInfo)
	mock.lockAuthorizeURL.Unlock()
	return mock.AuthorizeURLFunc(state)
}

func (mock *oauthVerifierMock) AuthorizeURLCalls() []struct {
	State string
} {
	mock.lockAuthorizeURL.RLock()
	calls := mock.calls.AuthorizeURL
	mock.lockAuthorizeURL.RUnlock()
	return calls
}

func (mock *oauthVerifierMock) VerifyCode(ctx context.Context, code string) (*auth.OAuthIdentity, error) {
	if mock.VerifyCodeFunc == nil {
		panic("oauthVerifierMock.VerifyCodeFunc: method is nil but oauthVerifier.VerifyCode was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
	}{Ctx: ctx, Code: code}
	mock.lockVerifyCode.Lock()
	mock.calls.VerifyCode = append(mock.calls.VerifyCode, callInfo)
	mock.lockVerifyCode.Unlock()
	return mock.VerifyCodeFunc(ctx, code)
}

func (mock *oauthVerifierMock) VerifyCodeCalls() []struct {
	Ctx  context.Context
	Code string
} {
	mock.lockVerifyCode.RLock()
	calls := mock.calls.VerifyCode
	mock.lockVerifyCode.RUnlock()
	return calls
}
