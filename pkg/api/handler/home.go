package handler

import (
	"context"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dskvich/telemage/pkg/domain"
	"github.com/dskvich/telemage/pkg/render"
)

const HomePage = "index.html"

type StatusProvider interface {
	Status(ctx context.Context) domain.Status
}

type HomePageData struct {
	Status  domain.Status
	Details template.HTML
}

var statusDetails = map[domain.Status]string{
	domain.StatusSetupEnvs:    "Set the `TELEGRAM` bot token and the `OPEN_AI` API key, then restart the service.",
	domain.StatusSetupWebhook: "The keys are in place. Open [/set_webhook](/set_webhook) so Telegram delivers messages to `/open`.",
	domain.StatusReady:        "**Telemage is ready.** Send your bot a prompt and it will answer with a picture.",
	domain.StatusError:        "Telegram did not return the webhook configuration. Check the bot token and try again.",
}

type home struct {
	provider StatusProvider
}

func NewHome(provider StatusProvider) *home {
	return &home{provider: provider}
}

func (h *home) Handle(c echo.Context) error {
	status := h.provider.Status(c.Request().Context())

	return c.Render(http.StatusOK, HomePage, HomePageData{
		Status:  status,
		Details: render.ToHTML(statusDetails[status]),
	})
}
