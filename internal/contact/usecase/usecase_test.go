package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shandysiswandi/gocontact/internal/pkg/config"
	"github.com/shandysiswandi/gocontact/internal/pkg/instrument"
	"github.com/shandysiswandi/gocontact/internal/pkg/mail"
	"github.com/shandysiswandi/gocontact/internal/pkg/validator"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepoMail struct {
	mock.Mock
}

func (m *mockRepoMail) Name() string { return "smtp" }
func (m *mockRepoMail) From() string { return "portfolio@example.com" }

func (m *mockRepoMail) Send(ctx context.Context, msg mail.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func (m *mockRepoMail) Verify(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

const testConfig = `
mail:
  to: owner@example.com
  subject_prefix: "Portfolio Contact: "
modules:
  contact:
    html_policy: raw
`

func newTestUsecase(t *testing.T, yaml string) (*Usecase, *mockRepoMail) {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	require.NoError(t, err)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	repo := &mockRepoMail{}
	uc := NewContact(Dependency{
		Config:     cfg,
		Clock:      fixedClock{},
		Validator:  v,
		RepoMail:   repo,
		Instrument: instrument.NewNoop(),
	})

	return uc, repo
}
