package usecase

import (
	"context"
	"fmt"
	"log/slog"
)

// VerifyTransport runs the transport self-check once. It is meant for a
// background goroutine at startup and never gates serving.
func (s *Usecase) VerifyTransport(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "VerifyTransport")
	defer span.End()

	if err := s.repoMail.Verify(ctx); err != nil {
		return fmt.Errorf("email transporter verification failed: %w", err)
	}

	slog.InfoContext(ctx, "email transporter is ready to send messages", "provider", s.repoMail.Name())
	return nil
}
