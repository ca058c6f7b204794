package notification

import (
	"context"
	"sync"

	"github.com/heartmarshall/soundboard/internal/domain"
)

var _ messenger = &messengerMock{}

type messengerMock struct {
	FetchChannelFunc func(ctx context.Context, channelID string) (domain.Channel, error)
	SendMessageFunc  func(ctx context.Context, channelID string, text string) error

	calls struct {
		FetchChannel []struct {
			Ctx       context.Context
			ChannelID string
		}
		SendMessage []struct {
			Ctx       context.Context
			ChannelID string
			Text      string
		}
	}
	lockFetchChannel sync.RWMutex
	lockSendMessage  sync.RWMutex
}

func (mock *messengerMock) FetchChannel(ctx context.Context, channelID string) (domain.Channel, error) {
	if mock.FetchChannelFunc == nil {
		panic("messengerMock.FetchChannelFunc: method is nil but messenger.FetchChannel was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ChannelID string
	}{Ctx: ctx, ChannelID: channelID}
	mock.lockFetchChannel.Lock()
	mock.calls.FetchChannel = append(mock.calls.FetchChannel, callInfo)
	mock.lockFetchChannel.Unlock()
	return mock.FetchChannelFunc(ctx, channelID)
}

func (mock *messengerMock) FetchChannelCalls() []struct {
	Ctx       context.Context
	ChannelID string
} {
	mock.lockFetchChannel.RLock()
	calls := mock.calls.FetchChannel
	mock.lockFetchChannel.RUnlock()
	return calls
}

func (mock *messengerMock) SendMessage(ctx context.Context, channelID string, text string) error {
	if mock.SendMessageFunc == nil {
		panic("messengerMock.SendMessageFunc: method is nil but messenger.SendMessage was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ChannelID string
		Text      string
	}{Ctx: ctx, ChannelID: channelID, Text: text}
	mock.lockSendMessage.Lock()
	mock.calls.SendMessage = append(mock.calls.SendMessage, callInfo)
	mock.lockSendMessage.Unlock()
	return mock.SendMessageFunc(ctx, channelID, text)
}

func (mock *messengerMock) SendMessageCalls() []struct {
	Ctx       context.Context
	ChannelID string
	Text      string
} {
	mock.lockSendMessage.RLock()
	calls := mock.calls.SendMessage
	mock.lockSendMessage.RUnlock()
	return calls
}
