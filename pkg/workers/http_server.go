package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const shutdownTimeout = 10 * time.Second

// Worker runs until ctx is cancelled or it fails.
type Worker interface {
	Name() string
	Start(ctx context.Context) error
}

type httpServer struct {
	server *echo.Echo
	addr   string
}

func NewHTTPServer(server *echo.Echo, addr string) (*httpServer, error) {
	if server == nil {
		return nil, errors.New("http server is nil")
	}
	return &httpServer{
		server: server,
		addr:   addr,
	}, nil
}

func (h *httpServer) Name() string { return "http_server" }

func (h *httpServer) Start(ctx context.Context) error {
	slog.Info("Starting worker", "name", h.Name(), "addr", h.addr)
	defer slog.Info("Worker stopped", "name", h.Name())

	errCh := make(chan error, 1)
	go func() {
		if err := h.server.Start(h.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
