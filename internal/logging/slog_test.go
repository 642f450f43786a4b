package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "restore", "source", "durable")
	log.Info(ctx, "login", "persistence", "session")
	log.Warn(ctx, "profile", "status", 401)
	log.Error(ctx, "transport", "path", "/users/me")

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		attr  string
	}{
		{"DEBUG", "restore", "source=durable"},
		{"INFO", "login", "persistence=session"},
		{"WARN", "profile", "status=401"},
		{"ERROR", "transport", "path=/users/me"},
	}

	for _, tc := range tests {
		assert.Contains(t, out, "level="+tc.level)
		assert.Contains(t, out, "msg="+tc.msg)
		assert.Contains(t, out, tc.attr)
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("view", "feed", "request_id", "abc").Info(context.Background(), "loaded", "items", 3)

	out := buf.String()
	for _, s := range []string{"level=INFO", "msg=loaded", "view=feed", "request_id=abc", "items=3"} {
		assert.Contains(t, out, s)
	}
}

func TestNop_Discards(t *testing.T) {
	l := Nop()
	l.Error(context.TODO(), "ignored")
	l.With("k", "v").Info(context.TODO(), "ignored")
}

func TestNewSlogLogger_NilUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	orig := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(orig) })

	NewSlogLogger(nil).Warn(nil, "fallback", "k", 1)
	assert.Contains(t, buf.String(), "msg=fallback")
	assert.Contains(t, buf.String(), "k=1")
}
