// Package validator checks contact submissions against struct tags.
//
// V10Validator wraps go-playground/validator v10 with English messages and
// reports violations in struct field order, which the contact use case relies
// on to pick the response message.
package validator
