package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-telegram/bot/models"
	"github.com/labstack/echo/v4"

	"github.com/dskvich/telemage/pkg/api/response"
	"github.com/dskvich/telemage/pkg/domain"
	"github.com/dskvich/telemage/pkg/logger"
)

// SecretTokenHeader carries the secret_token given to setWebhook on every delivery.
const SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update *models.Update) (domain.Result, error)
}

type open struct {
	handler     UpdateHandler
	secretToken string
}

func NewOpen(handler UpdateHandler, secretToken string) *open {
	return &open{
		handler:     handler,
		secretToken: secretToken,
	}
}

func (o *open) Handle(c echo.Context) error {
	if o.secretToken != "" && c.Request().Header.Get(SecretTokenHeader) != o.secretToken {
		slog.WarnContext(c.Request().Context(), "Rejected webhook call", "remoteIP", c.RealIP())
		return response.WriteError(c, http.StatusForbidden, domain.ErrForbidden.Error())
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.WriteError(c, http.StatusBadRequest, "reading request body")
	}

	// anything that is not an update is handled like an update without a message
	var update models.Update
	if err := json.Unmarshal(body, &update); err != nil {
		slog.WarnContext(c.Request().Context(), "Malformed update payload", "payload", string(body), logger.Err(err))
		update = models.Update{}
	}

	ctx := logger.ContextWithUpdateID(c.Request().Context(), update.ID)

	result, err := o.handler.HandleUpdate(ctx, &update)
	if err != nil {
		slog.ErrorContext(ctx, "Handling update", logger.Err(err))
		return response.WriteError(c, http.StatusInternalServerError, err.Error())
	}

	return response.WriteSuccess(c, result)
}
