package mail

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResendServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestResend_Send(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := newResendServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"abc123"}`))
	})

	r, err := NewResend(ResendConfig{APIKey: "re_test", From: "Portfolio <onboarding@resend.dev>", BaseURL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, DriverResend, r.Name())
	assert.Equal(t, "Portfolio <onboarding@resend.dev>", r.From())

	msg := testMessage()
	msg.From = ""

	id, err := r.Send(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	assert.Equal(t, "Portfolio <onboarding@resend.dev>", got["from"])
	assert.Equal(t, []any{"owner@example.com"}, got["to"])
	assert.Equal(t, "Portfolio Contact: Hi", got["subject"])
	assert.Equal(t, "<p>Hello there</p>", got["html"])
	assert.Equal(t, "Message:\nHello there", got["text"])
	assert.Contains(t, []any{"jane@example.com", []any{"jane@example.com"}}, got["reply_to"])
}

func TestResend_Send_Errors(t *testing.T) {
	t.Parallel()

	statusServer := func(t *testing.T, status int) string {
		return newResendServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"statusCode":` + strconv.Itoa(status) + `,"name":"error","message":"nope"}`))
		}).URL
	}

	t.Run("Unauthorized", func(t *testing.T) {
		t.Parallel()

		r, err := NewResend(ResendConfig{APIKey: "re_bad", From: "a@example.com", BaseURL: statusServer(t, http.StatusUnauthorized)})
		require.NoError(t, err)

		_, err = r.Send(context.Background(), testMessage())
		require.ErrorIs(t, err, ErrAuth)
	})

	t.Run("Forbidden", func(t *testing.T) {
		t.Parallel()

		r, err := NewResend(ResendConfig{APIKey: "re_bad", From: "a@example.com", BaseURL: statusServer(t, http.StatusForbidden)})
		require.NoError(t, err)

		_, err = r.Send(context.Background(), testMessage())
		require.ErrorIs(t, err, ErrAuth)
	})

	t.Run("Unprocessable", func(t *testing.T) {
		t.Parallel()

		r, err := NewResend(ResendConfig{APIKey: "re_test", From: "a@example.com", BaseURL: statusServer(t, http.StatusUnprocessableEntity)})
		require.NoError(t, err)

		_, err = r.Send(context.Background(), testMessage())
		require.ErrorIs(t, err, ErrRejected)
	})

	t.Run("Timeout", func(t *testing.T) {
		t.Parallel()

		done := make(chan struct{})
		url := newResendServer(t, func(_ http.ResponseWriter, r *http.Request) {
			_, _ = io.Copy(io.Discard, r.Body)
			select {
			case <-done:
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
		}).URL
		// runs before the server's Close so the blocked handler can return
		t.Cleanup(func() { close(done) })

		r, err := NewResend(ResendConfig{APIKey: "re_test", From: "a@example.com", BaseURL: url, Timeout: 100 * time.Millisecond})
		require.NoError(t, err)

		_, err = r.Send(context.Background(), testMessage())
		require.ErrorIs(t, err, ErrTimeout)
	})

	t.Run("MissingAPIKey", func(t *testing.T) {
		t.Parallel()

		r, err := NewResend(ResendConfig{From: "a@example.com"})
		require.NoError(t, err)

		_, err = r.Send(context.Background(), testMessage())
		require.ErrorIs(t, err, ErrConfigMissing)
		require.ErrorIs(t, r.Verify(context.Background()), ErrConfigMissing)
	})

	t.Run("MissingSender", func(t *testing.T) {
		t.Parallel()

		r, err := NewResend(ResendConfig{APIKey: "re_test"})
		require.NoError(t, err)

		msg := testMessage()
		msg.From = ""

		_, err = r.Send(context.Background(), msg)
		require.ErrorIs(t, err, ErrConfigMissing)
	})
}

func TestResend_Verify(t *testing.T) {
	t.Parallel()

	r, err := NewResend(ResendConfig{APIKey: "re_test"})
	require.NoError(t, err)
	require.NoError(t, r.Verify(context.Background()))
	require.NoError(t, r.Close())
}

func TestNewResend_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	_, err := NewResend(ResendConfig{APIKey: "re_test", BaseURL: "://bad"})
	require.Error(t, err)
}
