package mail

import (
	"context"
	"io"
)

// Message is one outgoing email, independent of the transport that sends it.
type Message struct {
	// From overrides the transport's configured sender when set.
	From string
	// To must hold at least one address.
	To []string
	// ReplyTo is an optional address replies should go to.
	ReplyTo string
	// Subject is encoded as RFC 2047 when it is not plain ASCII.
	Subject string
	// TextBody is the plain-text body; preferred when HTMLBody is empty.
	TextBody string
	// HTMLBody is the optional HTML body.
	HTMLBody string
}

// Mail is implemented by SMTP and Resend. Both are safe for concurrent use.
type Mail interface {
	io.Closer
	// Name returns the driver name, e.g. "smtp".
	Name() string
	// From returns the sender identity used when Message.From is empty.
	From() string
	// Send dispatches the given message and returns the provider message id.
	Send(ctx context.Context, msg Message) (string, error)
	// Verify checks that the transport can reach and authenticate with its
	// provider without sending anything.
	Verify(ctx context.Context) error
}
