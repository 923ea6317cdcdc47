package inbound

import (
	"context"

	"github.com/shandysiswandi/gocontact/internal/contact/entity"
	"github.com/shandysiswandi/gocontact/internal/contact/usecase"
)

type uc interface {
	SendEmail(ctx context.Context, in usecase.SendEmailInput) (*entity.DispatchResult, error)
}
