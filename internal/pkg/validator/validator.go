package validator

// Validator validates a struct using its `validate` tags.
type Validator interface {
	// Validate returns nil when data is valid, or a V10ValidationError describing
	// every violated rule.
	Validate(data any) error
}
