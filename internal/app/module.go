package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/gocontact/internal/contact"
)

func (a *App) initModules() {
	if err := contact.New(contact.Dependency{
		Ctx:        a.ctx,
		Config:     a.config,
		Instrument: a.ins,
		Clock:      a.clock,
		Goroutine:  a.goroutine,
		Validator:  a.validator,
		Router:     a.router,
		Mail:       a.mail,
	}); err != nil {
		slog.Error("failed to init module contact", "error", err)
		os.Exit(1)
	}
}
