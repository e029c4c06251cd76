package services

import (
	"context"
	"testing"

	"github.com/dskvich/telemage/pkg/domain"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name      string
		botToken  string
		openAIKey string
		api       *fakeWebhookAPI
		expected  domain.Status
	}{
		{"placeholder bot token", domain.PlaceholderKey, "sk-1", &fakeWebhookAPI{url: "https://x/open"}, domain.StatusSetupEnvs},
		{"placeholder openai key", "123:abc", domain.PlaceholderKey, &fakeWebhookAPI{url: "https://x/open"}, domain.StatusSetupEnvs},
		{"webhook registered", "123:abc", "sk-1", &fakeWebhookAPI{url: "https://x/open"}, domain.StatusReady},
		{"webhook missing", "123:abc", "sk-1", &fakeWebhookAPI{}, domain.StatusSetupWebhook},
		{"platform error", "123:abc", "sk-1", &fakeWebhookAPI{err: errOffline}, domain.StatusError},
	}

	for _, test := range tests {
		got := NewStatusService(test.botToken, test.openAIKey, test.api).Status(context.Background())
		if got != test.expected {
			t.Errorf("%s: expected %s, got %s", test.name, test.expected, got)
		}
	}
}

func TestRegister(t *testing.T) {
	api := &fakeWebhookAPI{setResponse: true}
	svc := NewWebhookService("telemage.example.com", "s3cret", 0, api, &fakeMessenger{})

	reg, err := svc.Register(context.Background())
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if api.setURL != "https://telemage.example.com/open" || api.setSecret != "s3cret" {
		t.Errorf("unexpected setWebhook call url=%q secret=%q", api.setURL, api.setSecret)
	}
	if reg != (domain.Registration{OK: true, URL: "https://telemage.example.com/open"}) {
		t.Errorf("unexpected registration %+v", reg)
	}
}

func TestRegisterFailure(t *testing.T) {
	svc := NewWebhookService("telemage.example.com", "", 0, &fakeWebhookAPI{err: errOffline}, &fakeMessenger{})

	reg, err := svc.Register(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if reg.OK || reg.URL != "https://telemage.example.com/open" || reg.Description == "" {
		t.Errorf("unexpected registration %+v", reg)
	}
}

func TestPing(t *testing.T) {
	messenger := &fakeMessenger{err: errOffline}
	svc := NewWebhookService("telemage.example.com", "", 0, &fakeWebhookAPI{}, messenger)

	svc.Ping(context.Background())

	if len(messenger.texts) != 1 || messenger.texts[0] != (sentText{chatID: domain.NoRecipient, text: "pong"}) {
		t.Errorf("unexpected messages %+v", messenger.texts)
	}
}
