package services

import (
	"context"
	"log/slog"

	"github.com/dskvich/telemage/pkg/domain"
	"github.com/dskvich/telemage/pkg/logger"
)

type WebhookInfoProvider interface {
	WebhookURL(ctx context.Context) (string, error)
}

type statusService struct {
	botToken  string
	openAIKey string
	provider  WebhookInfoProvider
}

func NewStatusService(botToken, openAIKey string, provider WebhookInfoProvider) *statusService {
	return &statusService{
		botToken:  botToken,
		openAIKey: openAIKey,
		provider:  provider,
	}
}

func (s *statusService) Status(ctx context.Context) domain.Status {
	if s.botToken == domain.PlaceholderKey || s.openAIKey == domain.PlaceholderKey {
		return domain.StatusSetupEnvs
	}

	url, err := s.provider.WebhookURL(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Fetching webhook info", logger.Err(err))
		return domain.StatusError
	}

	if url == "" {
		return domain.StatusSetupWebhook
	}
	return domain.StatusReady
}
