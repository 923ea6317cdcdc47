// Package mail defines the contracts for sending email messages and ships
// the two delivery mechanisms the service can run with.
//
// The rest of the application depends on the Mail interface and the Message
// payload only. A deployment picks exactly one implementation at startup
// through NewFromDriver:
//
//   - SMTP opens its own connection to a submission server, upgrades it with
//     STARTTLS and authenticates with a username and secret. Connection,
//     greeting and data phases have independent timeouts.
//   - Resend delivers through the Resend HTTPS API with a static API key,
//     which keeps working where outbound submission ports are blocked.
//
// Both implementations report failures through the same sentinel errors
// (ErrTimeout, ErrAuth, ErrConfigMissing, ErrRejected) so callers can map
// them without knowing which transport is active. A transport whose
// credentials are missing still constructs; only Send and Verify fail.
package mail
