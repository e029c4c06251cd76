package services

import (
	"context"
	"log/slog"

	"github.com/dskvich/telemage/pkg/domain"
	"github.com/dskvich/telemage/pkg/logger"
)

type WebhookSetter interface {
	SetWebhook(ctx context.Context, url, secretToken string) (bool, error)
}

type webhookService struct {
	hostname    string
	secretToken string
	pingChatID  int64
	setter      WebhookSetter
	messenger   Messenger
}

func NewWebhookService(
	hostname string,
	secretToken string,
	pingChatID int64,
	setter WebhookSetter,
	messenger Messenger,
) *webhookService {
	return &webhookService{
		hostname:    hostname,
		secretToken: secretToken,
		pingChatID:  pingChatID,
		setter:      setter,
		messenger:   messenger,
	}
}

// Register points the Telegram webhook at this service's /open endpoint.
func (s *webhookService) Register(ctx context.Context) (domain.Registration, error) {
	url := domain.WebhookURL(s.hostname)

	slog.InfoContext(ctx, "Registering webhook", "url", url)

	ok, err := s.setter.SetWebhook(ctx, url, s.secretToken)
	if err != nil {
		return domain.Registration{URL: url, Description: err.Error()}, err
	}

	return domain.Registration{OK: ok, URL: url}, nil
}

// Ping sends "pong" to check that Telegram is reachable. Delivery failures are only logged.
func (s *webhookService) Ping(ctx context.Context) {
	if err := s.messenger.SendText(ctx, s.pingChatID, domain.PongText); err != nil {
		slog.WarnContext(ctx, "Pong not delivered", "chatID", s.pingChatID, logger.Err(err))
		return
	}
	slog.InfoContext(ctx, "Pong delivered", "chatID", s.pingChatID)
}
