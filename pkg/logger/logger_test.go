package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(NewHandler(buf, &Options{
		Level:      slog.LevelInfo,
		TimeFormat: "15:04",
		MsgPrefix:  "| ",
		NoColor:    true,
	}))
}

func TestHandlerWritesUpdateIDAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	ctx := ContextWithUpdateID(context.Background(), 42)
	log.InfoContext(ctx, "image stored", "filename", "1 - cat.png", Err(errors.New("boom")))

	out := buf.String()
	for _, want := range []string{"42 ", "INFO", "| image stored", "filename=1 - cat.png", "err=boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no ANSI escapes, got %q", out)
	}
}

func TestHandlerSkipsLowerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	log.Debug("hidden")

	if buf.Len() != 0 {
		t.Errorf("expected debug record to be dropped, got %q", buf.String())
	}
}

func TestHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf).WithGroup("storage").With("driver", "sqlite")

	log.Info("opened")

	if !strings.Contains(buf.String(), "storage.driver=sqlite") {
		t.Errorf("expected grouped attr, got %q", buf.String())
	}
}

func TestUpdateIDFromContextMissing(t *testing.T) {
	if _, ok := UpdateIDFromContext(context.Background()); ok {
		t.Error("expected no update id in empty context")
	}
}
