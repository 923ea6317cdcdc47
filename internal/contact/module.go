package contact

import (
	"context"

	"github.com/shandysiswandi/gocontact/internal/contact/inbound"
	"github.com/shandysiswandi/gocontact/internal/contact/outbound/email"
	"github.com/shandysiswandi/gocontact/internal/contact/usecase"
	"github.com/shandysiswandi/gocontact/internal/pkg/clock"
	"github.com/shandysiswandi/gocontact/internal/pkg/config"
	"github.com/shandysiswandi/gocontact/internal/pkg/goroutine"
	"github.com/shandysiswandi/gocontact/internal/pkg/instrument"
	"github.com/shandysiswandi/gocontact/internal/pkg/mail"
	"github.com/shandysiswandi/gocontact/internal/pkg/router"
	"github.com/shandysiswandi/gocontact/internal/pkg/validator"
)

type Dependency struct {
	Ctx        context.Context
	Config     config.Config
	Instrument instrument.Instrumentation
	Clock      clock.Clocker
	Goroutine  *goroutine.Manager
	Validator  validator.Validator
	Router     *router.Router
	Mail       mail.Mail
}

func New(dep Dependency) error {
	repoMail := email.New(dep.Mail, dep.Instrument)

	uc := usecase.NewContact(usecase.Dependency{
		Config:     dep.Config,
		Clock:      dep.Clock,
		Validator:  dep.Validator,
		RepoMail:   repoMail,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	if dep.Ctx != nil && dep.Goroutine != nil && dep.Config.GetBool("mail.verify_on_startup") {
		dep.Goroutine.Go(dep.Ctx, "mail-verify", uc.VerifyTransport)
	}

	return nil
}
