package goerror

import (
	"fmt"
	"net/http"
)

// Type classifies errors into high-level buckets used by the application.
type Type int

const (
	// TypeServer represents server-side or upstream failures.
	TypeServer Type = iota
	// TypeValidation represents input validation failures.
	TypeValidation
)

// String returns the string representation of the error type.
func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to HTTP status codes.
type Code int

const (
	// CodeInternal represents an internal or unspecified error.
	CodeInternal Code = iota
	// CodeInvalidFormat indicates the request body could not be decoded.
	CodeInvalidFormat
	// CodeMissingField indicates one or more required fields are absent or blank.
	CodeMissingField
	// CodeInvalidEmailFormat indicates the submitted email is not syntactically valid.
	CodeInvalidEmailFormat
	// CodeTransportTimeout indicates the mail transport exceeded a timeout budget.
	CodeTransportTimeout
	// CodeTransportAuth indicates the mail transport rejected our credentials.
	CodeTransportAuth
	// CodeTransportConfigMissing indicates the mail transport lacks required configuration.
	CodeTransportConfigMissing
	// CodeProviderRejected indicates the upstream provider refused the message.
	CodeProviderRejected
)

var codeNames = map[Code]string{
	CodeInternal:               "ERROR_CODE_INTERNAL",
	CodeInvalidFormat:          "ERROR_CODE_INVALID_FORMAT",
	CodeMissingField:           "ERROR_CODE_MISSING_FIELD",
	CodeInvalidEmailFormat:     "ERROR_CODE_INVALID_EMAIL_FORMAT",
	CodeTransportTimeout:       "ERROR_CODE_TRANSPORT_TIMEOUT",
	CodeTransportAuth:          "ERROR_CODE_TRANSPORT_AUTH_FAILURE",
	CodeTransportConfigMissing: "ERROR_CODE_TRANSPORT_CONFIGURATION_MISSING",
	CodeProviderRejected:       "ERROR_CODE_PROVIDER_REJECTED",
}

// String returns the log name of the code. Unknown codes read as internal.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return codeNames[CodeInternal]
}

// Error carries a caller-facing message, a Type, a Code and, for validation
// failures, a field to reason map. The router turns it into the JSON envelope.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
	fields  map[string]string
}

// Error implements the error interface. The wrapped cause wins over the
// caller-facing message.
func (e *Error) Error() string {
	switch {
	case e.err != nil:
		return e.err.Error()
	case e.msg != "":
		return e.msg
	case e.errType == TypeValidation:
		return "Validation violation"
	default:
		return "Internal error"
	}
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msg,
		e.err,
	)
}

// Msg returns the user-facing error message, if set.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Fields returns validation errors (field to message map), if any.
func (e *Error) Fields() map[string]string {
	return e.fields
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// Detail returns the underlying error text for operator diagnosis, if any.
func (e *Error) Detail() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

// StatusCode maps the error code to an HTTP status code. Only client-side
// codes produce 400; everything else, transport failures included, is 500.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidFormat, CodeMissingField, CodeInvalidEmailFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func new(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer creates a server-type error with the provided error.
func NewServer(err error) error {
	return new(err, "Internal server error", TypeServer, CodeInternal)
}

// NewTransport creates a server-type error for a failed upstream send.
//
// msg is the stable caller-facing guidance; err carries the raw detail.
func NewTransport(err error, msg string, code Code) error {
	return new(err, msg, TypeServer, code)
}

// NewInvalidInput creates a validation error with the given code and message.
//
// kv is an optional list of field/reason pairs reported back to the caller.
func NewInvalidInput(msg string, code Code, kv ...string) error {
	if len(kv)%2 != 0 {
		return new(nil, "Invalid request body", TypeValidation, CodeInvalidFormat)
	}

	e := &Error{msg: msg, errType: TypeValidation, code: code}
	for i := 0; i < len(kv); i += 2 {
		if e.fields == nil {
			e.fields = make(map[string]string, len(kv)/2)
		}
		e.fields[kv[i]] = kv[i+1]
	}

	return e
}

// NewInvalidFormat creates a validation error for an invalid request body format.
func NewInvalidFormat(msgs ...string) error {
	if len(msgs) == 0 {
		return new(nil, "Invalid request body", TypeValidation, CodeInvalidFormat)
	}
	return new(nil, msgs[0], TypeValidation, CodeInvalidFormat)
}
