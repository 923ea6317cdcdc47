package mail

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DriverSMTP selects the direct SMTP transport.
	DriverSMTP = "smtp"
	// DriverResend selects the Resend HTTPS API transport.
	DriverResend = "resend"
)

// ErrUnknownDriver indicates an unsupported mail driver.
var ErrUnknownDriver = errors.New("mail: unknown driver")

// FactoryOptions groups configuration for mail drivers.
type FactoryOptions struct {
	// SMTP configures the SMTP transport.
	SMTP SMTPConfig
	// Resend configures the Resend transport.
	Resend ResendConfig
}

// NewFromDriver constructs a Mail implementation by driver name.
func NewFromDriver(driver string, opts FactoryOptions) (Mail, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverSMTP:
		return NewSMTP(opts.SMTP), nil
	case DriverResend:
		return NewResend(opts.Resend)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
