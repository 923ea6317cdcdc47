package mail

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v3"
)

const defaultResendTimeout = 30 * time.Second

// Resend is a Mail implementation backed by the Resend HTTPS API.
type Resend struct {
	client      *resend.Client
	apiKey      string
	defaultFrom string
}

// ResendConfig configures the Resend implementation.
type ResendConfig struct {
	// APIKey authenticates against the Resend API.
	APIKey string
	// From is the default sender when Message.From is empty.
	From string
	// Timeout bounds a single API call; defaults to 30s.
	Timeout time.Duration
	// BaseURL overrides the API endpoint; empty keeps the SDK default.
	BaseURL string
}

// NewResend constructs a Resend mail sender.
//
// A missing API key is not an error here; it surfaces as ErrConfigMissing on
// Send and Verify.
func NewResend(cfg ResendConfig) (*Resend, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultResendTimeout
	}

	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: &statusTransport{next: http.DefaultTransport},
	}

	client := resend.NewCustomClient(httpClient, cfg.APIKey)
	if cfg.BaseURL != "" {
		base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("mail: invalid resend base url: %w", err)
		}
		client.BaseURL = base
	}

	return &Resend{
		client:      client,
		apiKey:      cfg.APIKey,
		defaultFrom: cfg.From,
	}, nil
}

// Name implements Mail.
func (r *Resend) Name() string {
	return DriverResend
}

// From implements Mail.
func (r *Resend) From() string {
	return r.defaultFrom
}

// Send delivers a message through the Resend API and returns the provider id.
func (r *Resend) Send(ctx context.Context, msg Message) (string, error) {
	if r.apiKey == "" {
		return "", fmt.Errorf("%w: resend api key not set", ErrConfigMissing)
	}

	from := msg.From
	if from == "" {
		from = r.defaultFrom
	}
	if from == "" {
		return "", fmt.Errorf("%w: no sender provided", ErrConfigMissing)
	}

	if len(msg.To) == 0 {
		return "", fmt.Errorf("%w: no recipients provided", ErrConfigMissing)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTMLBody,
		Text:    msg.TextBody,
		ReplyTo: msg.ReplyTo,
	}

	rec := &statusRecord{}
	resp, err := r.client.Emails.SendWithContext(withStatusRecord(ctx, rec), req)
	if err != nil {
		return "", classifyResend(rec.code, err)
	}

	if resp == nil || resp.Id == "" {
		return "", fmt.Errorf("%w: resend returned no message id", ErrRejected)
	}

	return resp.Id, nil
}

// Verify only checks that an API key is configured; the API has no cheap
// credential probe that does not consume quota.
func (r *Resend) Verify(context.Context) error {
	if r.apiKey == "" {
		return fmt.Errorf("%w: resend api key not set", ErrConfigMissing)
	}
	return nil
}

// Close implements io.Closer for interface compatibility.
func (r *Resend) Close() error {
	return nil
}

func classifyResend(status int, err error) error {
	switch {
	case isTimeout(err):
		return fmt.Errorf("%w: resend: %w", ErrTimeout, err)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: resend status %d: %w", ErrAuth, status, err)
	case status >= http.StatusBadRequest:
		return fmt.Errorf("%w: resend status %d: %w", ErrRejected, status, err)
	default:
		return fmt.Errorf("resend: %w", err)
	}
}

type statusRecordKey struct{}

// statusRecord captures the HTTP status of the last response for one call.
// The SDK flattens API failures into plain errors, so the status is the only
// reliable signal for classification.
type statusRecord struct {
	code int
}

func withStatusRecord(ctx context.Context, rec *statusRecord) context.Context {
	return context.WithValue(ctx, statusRecordKey{}, rec)
}

type statusTransport struct {
	next http.RoundTripper
}

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if rec, ok := req.Context().Value(statusRecordKey{}).(*statusRecord); ok && rec != nil {
		rec.code = resp.StatusCode
	}

	return resp, nil
}
