package usecase

import (
	"context"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/shandysiswandi/gocontact/internal/pkg/clock"
	"github.com/shandysiswandi/gocontact/internal/pkg/config"
	"github.com/shandysiswandi/gocontact/internal/pkg/instrument"
	"github.com/shandysiswandi/gocontact/internal/pkg/mail"
	"github.com/shandysiswandi/gocontact/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultSubjectPrefix is prepended to the submitted subject.
	DefaultSubjectPrefix = "Portfolio Contact: "

	msgSendFailed = "Failed to send message. Please try again later."
)

type repoMail interface {
	Name() string
	From() string
	Send(ctx context.Context, msg mail.Message) (string, error)
	Verify(ctx context.Context) error
}

type Usecase struct {
	cfg       config.Config
	clock     clock.Clocker
	validator validator.Validator
	repoMail  repoMail
	ins       instrument.Instrumentation
	textTpl   *texttemplate.Template
	htmlTpl   *htmltemplate.Template
}

type Dependency struct {
	Config     config.Config
	Clock      clock.Clocker
	Validator  validator.Validator
	RepoMail   repoMail
	Instrument instrument.Instrumentation
}

func NewContact(dep Dependency) *Usecase {
	return &Usecase{
		cfg:       dep.Config,
		clock:     dep.Clock,
		validator: dep.Validator,
		repoMail:  dep.RepoMail,
		ins:       dep.Instrument,
		textTpl:   texttemplate.Must(texttemplate.New("text").Parse(textBodyTemplate)),
		htmlTpl:   htmltemplate.Must(htmltemplate.New("html").Parse(htmlBodyTemplate)),
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("contact.usecase").Start(ctx, name)
}
