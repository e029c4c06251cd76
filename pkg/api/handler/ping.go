package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/dskvich/telemage/pkg/api/response"
)

type Pinger interface {
	Ping(ctx context.Context)
}

type ping struct {
	pinger Pinger
}

func NewPing(pinger Pinger) *ping {
	return &ping{pinger: pinger}
}

func (p *ping) Handle(c echo.Context) error {
	p.pinger.Ping(c.Request().Context())
	return response.WriteSuccess(c, nil)
}
