package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/gocontact/internal/contact/entity"
	"github.com/shandysiswandi/gocontact/internal/pkg/goerror"
	"github.com/shandysiswandi/gocontact/internal/pkg/validator"
)

const (
	msgMissingField = "All fields are required: name, email, subject, message"
	msgInvalidEmail = "Please provide a valid email address"
)

// submissionRule is what the validator sees: every field trimmed, in the
// order missing fields are reported.
type submissionRule struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,contactemail"`
	Subject string `validate:"required"`
	Message string `validate:"required"`
}

// validateSubmission checks presence and email shape. Blank fields count as
// missing. Name and subject are trimmed, the email shape is matched on the
// value as submitted, and the message keeps its original whitespace.
func (s *Usecase) validateSubmission(ctx context.Context, in SendEmailInput) (entity.Submission, error) {
	email := in.Email
	if strings.TrimSpace(email) == "" {
		email = ""
	}

	rule := submissionRule{
		Name:    strings.TrimSpace(in.Name),
		Email:   email,
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}

	err := s.validator.Validate(rule)
	if err == nil {
		return entity.Submission{
			Name:    rule.Name,
			Email:   rule.Email,
			Subject: rule.Subject,
			Message: in.Message,
		}, nil
	}

	var verr validator.V10ValidationError
	if !errors.As(err, &verr) {
		slog.ErrorContext(ctx, "failed to validate submission", "error", err)
		return entity.Submission{}, goerror.NewServer(err)
	}

	reasons := verr.Values()
	if missing := verr.FieldsWithTag("required"); len(missing) > 0 {
		slog.WarnContext(ctx, "submission rejected", "code", goerror.CodeMissingField.String(), "fields", missing)
		return entity.Submission{}, goerror.NewInvalidInput(msgMissingField, goerror.CodeMissingField, fieldPairs(missing, reasons)...)
	}

	if invalid := verr.FieldsWithTag("contactemail"); len(invalid) > 0 {
		slog.WarnContext(ctx, "submission rejected", "code", goerror.CodeInvalidEmailFormat.String(), "fields", invalid)
		return entity.Submission{}, goerror.NewInvalidInput(msgInvalidEmail, goerror.CodeInvalidEmailFormat, fieldPairs(invalid, reasons)...)
	}

	slog.WarnContext(ctx, "submission rejected", "code", goerror.CodeInvalidFormat.String(), "error", err)
	return entity.Submission{}, goerror.NewInvalidInput("Invalid request body", goerror.CodeInvalidFormat, fieldPairs(lo.Map(verr.Violations(), func(v validator.Violation, _ int) string { return v.Field }), reasons)...)
}

func fieldPairs(fields []string, reasons map[string]string) []string {
	return lo.FlatMap(fields, func(field string, _ int) []string {
		return []string{field, reasons[field]}
	})
}
