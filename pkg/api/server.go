package api

import (
	"embed"
	"html/template"
	"io"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dskvich/telemage/pkg/domain"
	"github.com/dskvich/telemage/pkg/logger"
)

// MaxBodySize caps request bodies; Telegram updates are a few kilobytes.
const MaxBodySize = "1M"

//go:embed views/*.html
var viewsFS embed.FS

type Template struct {
	templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

// Routes are the handlers mounted by NewServer.
type Routes struct {
	Open       echo.HandlerFunc
	Home       echo.HandlerFunc
	Ping       echo.HandlerFunc
	SetWebhook echo.HandlerFunc
}

func NewServer(publicDir string, routes Routes) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Renderer = &Template{
		templates: template.Must(template.New("").ParseFS(viewsFS, "views/*.html")),
	}

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogLatency:  true,
		LogMethod:   true,
		LogURI:      true,
		LogError:    true,
		LogRemoteIP: true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remoteIP", v.RemoteIP,
			}
			if v.Error != nil {
				slog.ErrorContext(c.Request().Context(), "HTTP request failed", append(attrs, logger.Err(v.Error))...)
				return nil
			}
			slog.InfoContext(c.Request().Context(), "HTTP request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(MaxBodySize))

	e.POST(domain.WebhookPath, routes.Open)
	e.GET("/", routes.Home)
	e.GET("/ping", routes.Ping)
	e.GET("/set_webhook", routes.SetWebhook)
	e.Static("/public", publicDir)

	return e
}
