package inbound

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/gocontact/internal/contact/usecase"
	"github.com/shandysiswandi/gocontact/internal/pkg/config"
	"github.com/shandysiswandi/gocontact/internal/pkg/instrument"
	"github.com/shandysiswandi/gocontact/internal/pkg/mail"
	"github.com/shandysiswandi/gocontact/internal/pkg/router"
	"github.com/shandysiswandi/gocontact/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTransport struct {
	mock.Mock
}

func (m *mockTransport) Name() string { return "smtp" }
func (m *mockTransport) From() string { return "portfolio@example.com" }

func (m *mockTransport) Send(ctx context.Context, msg mail.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func (m *mockTransport) Verify(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func newTestServer(t *testing.T) (http.Handler, *mockTransport) {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("mail:\n  to: owner@example.com\n"))
	require.NoError(t, err)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	transport := &mockTransport{}
	uc := usecase.NewContact(usecase.Dependency{
		Config:     cfg,
		Clock:      fixedClock{},
		Validator:  v,
		RepoMail:   transport,
		Instrument: instrument.NewNoop(),
	})

	r := router.NewRouter(router.Config{Config: cfg, UUID: fixedID("cid"), Instrument: instrument.NewNoop()})
	RegisterHTTPEndpoint(r, uc)

	return r, transport
}

func do(t *testing.T, h http.Handler, req *http.Request) (int, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body
}

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHTTPEndpoint_Health(t *testing.T) {
	t.Parallel()

	h, transport := newTestServer(t)

	code, body := do(t, h, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"status": "ok", "message": "Portfolio Email API is running"}, body)
	transport.AssertNotCalled(t, "Verify", mock.Anything)
}

func TestHTTPEndpoint_SendEmail(t *testing.T) {
	t.Parallel()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		h, transport := newTestServer(t)
		transport.On("Send", mock.Anything, mock.MatchedBy(func(msg mail.Message) bool {
			return msg.Subject == "Portfolio Contact: Hi" &&
				strings.Contains(msg.TextBody, "Name: Jane Doe") &&
				strings.Contains(msg.TextBody, "Hello there")
		})).Return("abc123", nil).Once()

		code, body := do(t, h, jsonRequest(`{"name":"Jane Doe","email":"jane@example.com","subject":"Hi","message":"Hello there"}`))
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, map[string]any{
			"success":   true,
			"message":   "Message sent successfully!",
			"messageId": "abc123",
		}, body)
		transport.AssertExpectations(t)
	})

	t.Run("FormEncoded", func(t *testing.T) {
		t.Parallel()

		h, transport := newTestServer(t)
		transport.On("Send", mock.Anything, mock.Anything).Return("form-id", nil).Once()

		form := url.Values{"name": {"Jane"}, "email": {"jane@example.com"}, "subject": {"Hi"}, "message": {"Hello"}}
		req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		code, body := do(t, h, req)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "form-id", body["messageId"])
	})

	t.Run("EmptyName", func(t *testing.T) {
		t.Parallel()

		h, transport := newTestServer(t)

		code, body := do(t, h, jsonRequest(`{"name":"","email":"jane@example.com","subject":"Hi","message":"Hello"}`))
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "All fields are required: name, email, subject, message", body["message"])
		assert.Contains(t, body["fields"], "name")
		transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("NullField", func(t *testing.T) {
		t.Parallel()

		h, transport := newTestServer(t)

		code, body := do(t, h, jsonRequest(`{"name":"Jane","email":"jane@example.com","subject":null,"message":"Hello"}`))
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "All fields are required: name, email, subject, message", body["message"])
		transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		t.Parallel()

		h, _ := newTestServer(t)

		code, body := do(t, h, jsonRequest(""))
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "All fields are required: name, email, subject, message", body["message"])
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		t.Parallel()

		h, transport := newTestServer(t)

		code, body := do(t, h, jsonRequest(`{"name":"Jane","email":"not-an-email","subject":"Hi","message":"Hello"}`))
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Please provide a valid email address", body["message"])
		transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		t.Parallel()

		h, _ := newTestServer(t)

		code, body := do(t, h, jsonRequest(`{"name":`))
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, map[string]any{"success": false, "message": "Invalid request body"}, body)
	})

	t.Run("TransportTimeout", func(t *testing.T) {
		t.Parallel()

		h, transport := newTestServer(t)
		transport.On("Send", mock.Anything, mock.Anything).
			Return("", fmt.Errorf("%w: smtp greeting: read tcp: i/o timeout", mail.ErrTimeout)).Once()

		code, body := do(t, h, jsonRequest(`{"name":"Jane","email":"jane@example.com","subject":"Hi","message":"Hello"}`))
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Failed to send message. Please try again later.", body["message"])
		assert.Equal(t, "mail: transport timeout: smtp greeting: read tcp: i/o timeout", body["error"])
	})
}
