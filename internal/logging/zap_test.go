package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewZapLogger(&buf)

	log.Info(context.Background(), "fetched", "user_id", "42")
	log.Debug(context.Background(), "hidden")

	out := buf.String()
	assert.Contains(t, out, `"msg":"fetched"`)
	assert.Contains(t, out, `"user_id":"42"`)
	assert.NotContains(t, out, "hidden")
}

func TestZapLogger_LevelsAndWith(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewZapLoggerFrom(zap.New(core))
	ctx := context.Background()

	child := log.With("route", "/feed")
	child.Debug(ctx, "d")
	child.Info(ctx, "i")
	child.Warn(ctx, "w")
	child.Error(ctx, "e", "code", 401)

	require.Equal(t, 4, logs.Len())
	entries := logs.All()
	assert.Equal(t, "e", entries[3].Message)
	assert.Equal(t, "/feed", entries[3].ContextMap()["route"])
	assert.EqualValues(t, 401, entries[3].ContextMap()["code"])
}

func TestNew_SelectsAdapter(t *testing.T) {
	var buf bytes.Buffer

	l, err := New(FormatText, &buf)
	require.NoError(t, err)
	assert.IsType(t, &SlogLogger{}, l)

	l, err = New(FormatJSON, &buf)
	require.NoError(t, err)
	l.Info(context.Background(), "json-line")
	assert.Contains(t, buf.String(), `"msg":"json-line"`)

	l, err = New(FormatZap, &buf)
	require.NoError(t, err)
	assert.IsType(t, &ZapLogger{}, l)

	_, err = New("xml", &buf)
	require.Error(t, err)
}
