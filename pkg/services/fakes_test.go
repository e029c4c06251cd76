package services

import (
	"context"
	"errors"

	"github.com/dskvich/telemage/pkg/domain"
)

type sentText struct {
	chatID int64
	text   string
}

type sentPhoto struct {
	chatID   int64
	caption  string
	filename string
	data     []byte
}

type fakeMessenger struct {
	texts  []sentText
	photos []sentPhoto
	err    error
}

func (f *fakeMessenger) SendText(_ context.Context, chatID int64, text string) error {
	f.texts = append(f.texts, sentText{chatID: chatID, text: text})
	return f.err
}

func (f *fakeMessenger) SendPhoto(_ context.Context, chatID int64, caption, filename string, data []byte) error {
	f.photos = append(f.photos, sentPhoto{chatID: chatID, caption: caption, filename: filename, data: data})
	return f.err
}

type fakeGenerator struct {
	gen     domain.Generation
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateImage(_ context.Context, prompt string) (domain.Generation, error) {
	f.prompts = append(f.prompts, prompt)
	return f.gen, f.err
}

type fakeDrive struct {
	blobs map[string][]byte
	err   error
}

func (f *fakeDrive) Put(_ context.Context, name string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	if f.blobs == nil {
		f.blobs = map[string][]byte{}
	}
	f.blobs[name] = data
	return nil
}

type allowAll struct{}

func (allowAll) IsAuthorized(int64) bool { return true }

type denyAll struct{}

func (denyAll) IsAuthorized(int64) bool { return false }

type fakeWebhookAPI struct {
	url         string
	err         error
	setURL      string
	setSecret   string
	setResponse bool
}

func (f *fakeWebhookAPI) WebhookURL(context.Context) (string, error) {
	return f.url, f.err
}

func (f *fakeWebhookAPI) SetWebhook(_ context.Context, url, secretToken string) (bool, error) {
	f.setURL, f.setSecret = url, secretToken
	return f.setResponse, f.err
}

var errOffline = errors.New("connection refused")
