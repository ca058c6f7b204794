package middleware

import (
	"sync"

	"github.com/heartmarshall/soundboard/internal/auth"
)

var _ sessionValidator = &sessionValidatorMock{}

type sessionValidatorMock struct {
	ValidateFunc func(token string) (auth.OAuthIdentity, error)

	calls struct {
		Validate []struct {
			Token string
		}
	}
	lockValidate sync.RWMutex
}

func (mock *sessionValidatorMock) Validate(token string) (auth.OAuthIdentity, error) {
	if mock.ValidateFunc == nil {
		panic("sessionValidatorMock.ValidateFunc: method is nil but sessionValidator.Validate was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidate.Lock()
	mock.calls.Validate = append(mock.calls.Validate, callInfo)
	mock.lockValidate.Unlock()
	return mock.ValidateFunc(token)
}

func (mock *sessionValidatorMock) ValidateCalls() []struct {
	Token string
} {
	mock.lockValidate.RLock()
	calls := mock.calls.Validate
	mock.lockValidate.RUnlock()
	return calls
}
