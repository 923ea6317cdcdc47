package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gocontact/internal/contact/entity"
	"github.com/shandysiswandi/gocontact/internal/pkg/goerror"
	"github.com/shandysiswandi/gocontact/internal/pkg/mail"
)

type SendEmailInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SendEmail validates a submission, composes the notification email and
// hands it to the active transport. Validation failures never reach the
// transport.
func (s *Usecase) SendEmail(ctx context.Context, in SendEmailInput) (*entity.DispatchResult, error) {
	ctx, span := s.startSpan(ctx, "SendEmail")
	defer span.End()

	sub, err := s.validateSubmission(ctx, in)
	if err != nil {
		return nil, err
	}

	msg, err := s.compose(composeInput{
		Submission: sub,
		From:       s.repoMail.From(),
		To:         s.cfg.GetString("mail.to"),
		Prefix:     subjectPrefix(s.cfg.GetString("mail.subject_prefix")),
		Policy:     entity.HTMLPolicyFromString(s.cfg.GetString("modules.contact.html_policy")),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to compose contact email", "error", err)
		return nil, goerror.NewServer(err)
	}

	var to []string
	if msg.To != "" {
		to = []string{msg.To}
	}

	start := s.clock.Now()

	// The caller hanging up must not abort a send already in flight; the
	// transport's own timeouts bound it.
	id, err := s.repoMail.Send(context.WithoutCancel(ctx), mail.Message{
		From:     msg.From,
		To:       to,
		ReplyTo:  msg.ReplyTo,
		Subject:  msg.Subject,
		TextBody: msg.TextBody,
		HTMLBody: msg.HTMLBody,
	})
	if err != nil {
		code := transportCode(err)
		slog.ErrorContext(ctx, "failed to send contact email",
			"provider", s.repoMail.Name(),
			"code", code.String(),
			"latency_ms", s.clock.Now().Sub(start).Milliseconds(),
			"error", err,
		)
		return nil, goerror.NewTransport(err, msgSendFailed, code)
	}

	slog.InfoContext(ctx, "contact email sent",
		"provider", s.repoMail.Name(),
		"message_id", id,
		"latency_ms", s.clock.Now().Sub(start).Milliseconds(),
	)

	return &entity.DispatchResult{Success: true, ProviderMessageID: id}, nil
}

func transportCode(err error) goerror.Code {
	switch {
	case errors.Is(err, mail.ErrTimeout):
		return goerror.CodeTransportTimeout
	case errors.Is(err, mail.ErrAuth):
		return goerror.CodeTransportAuth
	case errors.Is(err, mail.ErrConfigMissing):
		return goerror.CodeTransportConfigMissing
	case errors.Is(err, mail.ErrRejected):
		return goerror.CodeProviderRejected
	default:
		return goerror.CodeInternal
	}
}
