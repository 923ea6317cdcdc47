package entity

// Submission is a contact-form submission after trimming and validation.
type Submission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// OutgoingMessage is the composed email handed to the transport.
type OutgoingMessage struct {
	From     string
	To       string
	ReplyTo  string
	Subject  string
	TextBody string
	HTMLBody string
}

// DispatchResult is the outcome of one dispatch attempt.
type DispatchResult struct {
	Success           bool
	ProviderMessageID string
	ErrorDetail       string
}
