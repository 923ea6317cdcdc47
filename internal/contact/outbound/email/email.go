package email

import (
	"context"

	"github.com/shandysiswandi/gocontact/internal/pkg/instrument"
	"github.com/shandysiswandi/gocontact/internal/pkg/mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Mail struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Mail {
	return &Mail{client: client, ins: ins}
}

func (m *Mail) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return m.ins.Tracer("contact.outbound.email").Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("mail.provider", m.client.Name())),
	)
}

func (m *Mail) Name() string {
	return m.client.Name()
}

func (m *Mail) From() string {
	return m.client.From()
}

func (m *Mail) Send(ctx context.Context, msg mail.Message) (string, error) {
	ctx, span := m.startSpan(ctx, "Send")
	defer span.End()

	id, err := m.client.Send(ctx, msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	span.SetAttributes(attribute.String("mail.message_id", id))
	return id, nil
}

func (m *Mail) Verify(ctx context.Context) error {
	ctx, span := m.startSpan(ctx, "Verify")
	defer span.End()

	if err := m.client.Verify(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
