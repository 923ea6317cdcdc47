package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestNewLogger_Fields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(logOptions{serviceName: "gocontact", level: slog.LevelInfo, out: &buf})

	ctx := SetCorrelationID(context.Background(), "cid-1")
	logger.InfoContext(ctx, "email sent", "provider", "smtp")

	line := decodeLine(t, &buf)
	assert.Equal(t, "email sent", line["msg"])
	assert.Equal(t, "INFO", line["severity"])
	assert.Equal(t, "cid-1", line["_cID"])
	assert.Equal(t, "gocontact", line["service"])
	assert.Equal(t, "smtp", line["provider"])
	assert.Contains(t, line, "ts")
	assert.Contains(t, line["file"], "internal/pkg/instrument/logging_test.go:")
}

func TestNewLogger_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(logOptions{level: ParseLevel("warn"), out: &buf})

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.Equal(t, "kept", decodeLine(t, &buf)["msg"])
}

func TestNewLogger_Mask(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(logOptions{maskFields: []string{" Password ", "api_key", ""}, out: &buf})

	logger.Info("config",
		"password", "secret",
		slog.Group("resend", "API_KEY", "re_live"),
		"body", `{"email":"a@b.c","password":"p"}`,
		"extra", map[string]string{"api_key": "x", "host": "smtp.gmail.com"},
	)

	line := decodeLine(t, &buf)
	assert.Equal(t, maskedValue, line["password"])
	assert.Equal(t, map[string]any{"API_KEY": maskedValue}, line["resend"])
	assert.JSONEq(t, `{"email":"a@b.c","password":"***"}`, line["body"].(string))
	assert.Equal(t, map[string]any{"api_key": maskedValue, "host": "smtp.gmail.com"}, line["extra"])
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelError, ParseLevel(" ERROR "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetCorrelationID(context.Background()))
	assert.Equal(t, "abc", GetCorrelationID(SetCorrelationID(context.Background(), "abc")))
}

func TestNew_DisabledShutdown(t *testing.T) {
	inst, err := New(context.Background(), &Config{ServiceName: "gocontact"})
	require.NoError(t, err)
	require.NoError(t, inst.Shutdown(context.Background()))

	_, span := inst.Tracer("test").Start(context.Background(), "noop")
	span.End()
	assert.False(t, span.SpanContext().IsValid())
}
