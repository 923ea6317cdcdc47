package usecase

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/shandysiswandi/gocontact/internal/contact/entity"
	"github.com/shandysiswandi/gocontact/internal/pkg/sanitizer"
)

const textBodyTemplate = `New message from your portfolio website:

Name: {{.Name}}
Email: {{.Email}}
Subject: {{.Subject}}

Message:
{{.Message}}

---
This message was sent through your portfolio contact form.
`

const htmlBodyTemplate = `<h2>New Portfolio Contact Message</h2>
<div style="background: #f5f5f5; padding: 20px; border-radius: 8px;">
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Subject:</strong> {{.Subject}}</p>
  <hr style="border: none; border-top: 1px solid #ddd; margin: 20px 0;">
  <p><strong>Message:</strong></p>
  <p style="background: white; padding: 15px; border-radius: 4px; border-left: 4px solid #007bff; white-space: pre-wrap;">{{.Message}}</p>
  <hr style="border: none; border-top: 1px solid #ddd; margin: 20px 0;">
  <p style="color: #666; font-size: 12px;">This message was sent through your portfolio contact form.</p>
</div>
`

type composeInput struct {
	Submission entity.Submission
	From       string
	To         string
	Prefix     string
	Policy     entity.HTMLPolicy
}

type htmlFields struct {
	Name    any
	Email   any
	Subject any
	Message any
}

func (s *Usecase) compose(in composeInput) (entity.OutgoingMessage, error) {
	var text bytes.Buffer
	if err := s.textTpl.Execute(&text, in.Submission); err != nil {
		return entity.OutgoingMessage{}, err
	}

	var html bytes.Buffer
	if err := s.htmlTpl.Execute(&html, htmlValues(in.Submission, in.Policy)); err != nil {
		return entity.OutgoingMessage{}, err
	}

	return entity.OutgoingMessage{
		From:     in.From,
		To:       in.To,
		ReplyTo:  in.Submission.Email,
		Subject:  in.Prefix + in.Submission.Subject,
		TextBody: text.String(),
		HTMLBody: html.String(),
	}, nil
}

// htmlValues prepares submission fields for html/template. Plain strings are
// escaped by the template; template.HTML values are written as given.
func htmlValues(sub entity.Submission, policy entity.HTMLPolicy) htmlFields {
	conv := func(v string) any {
		switch policy {
		case entity.HTMLPolicyEscape:
			return v
		case entity.HTMLPolicySanitize:
			//nolint:gosec // output of a strict policy carries no markup
			return template.HTML(sanitizer.StripTags(v))
		default:
			//nolint:gosec // verbatim interpolation is the configured policy
			return template.HTML(v)
		}
	}

	return htmlFields{
		Name:    conv(sub.Name),
		Email:   conv(sub.Email),
		Subject: conv(sub.Subject),
		Message: conv(sub.Message),
	}
}

// subjectPrefix falls back to DefaultSubjectPrefix when the key is blank.
func subjectPrefix(configured string) string {
	if strings.TrimSpace(configured) == "" {
		return DefaultSubjectPrefix
	}
	return configured
}
