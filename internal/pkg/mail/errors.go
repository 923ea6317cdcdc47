package mail

import (
	"context"
	"errors"
	"net"
	"os"
)

var (
	// ErrTimeout is returned when a transport exceeds one of its timeout budgets.
	ErrTimeout = errors.New("mail: transport timeout")
	// ErrAuth is returned when the provider rejects the configured credentials.
	ErrAuth = errors.New("mail: authentication failed")
	// ErrConfigMissing is returned when required transport configuration is absent.
	ErrConfigMissing = errors.New("mail: transport configuration missing")
	// ErrRejected is returned when the provider refuses the message or the session.
	ErrRejected = errors.New("mail: provider rejected")
)

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
