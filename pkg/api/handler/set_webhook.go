package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dskvich/telemage/pkg/domain"
	"github.com/dskvich/telemage/pkg/logger"
)

type WebhookRegisterer interface {
	Register(ctx context.Context) (domain.Registration, error)
}

type setWebhook struct {
	registerer WebhookRegisterer
}

func NewSetWebhook(registerer WebhookRegisterer) *setWebhook {
	return &setWebhook{registerer: registerer}
}

func (s *setWebhook) Handle(c echo.Context) error {
	reg, err := s.registerer.Register(c.Request().Context())
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "Registering webhook", logger.Err(err))
		return c.JSON(http.StatusBadGateway, reg)
	}
	return c.JSON(http.StatusOK, reg)
}
