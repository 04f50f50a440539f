package contact

import (
	"context"
	"log/slog"

	"naukariwala-site/internal/domain"
)

// Sink is whoever receives a validated message. Delivery is best effort.
type Sink interface {
	Deliver(ctx context.Context, m domain.Message) error
}

type SinkFunc func(ctx context.Context, m domain.Message) error

func (f SinkFunc) Deliver(ctx context.Context, m domain.Message) error { return f(ctx, m) }

// LogSink acknowledges by writing the submission to the log.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Deliver(ctx context.Context, m domain.Message) error {
	l := s.Logger
	if l == nil {
		l = slog.Default()
	}
	l.InfoContext(ctx, "contact form submitted",
		"name", m.Name,
		"email", m.Email,
		"subject", m.Subject,
		"message_len", len(m.Message),
	)
	return nil
}
