// Package contact accepts messages from the site's contact form.
package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"naukariwala-site/internal/domain"
)

var (
	ErrRateLimited = errors.New("too many submissions")
	ErrInvalid     = errors.New("invalid contact message")
)

// ValidationError carries per-field problems; it matches ErrInvalid.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid contact message: %d field(s)", len(e.Fields))
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

// Ack is returned to the visitor once a message has been handed off.
// ResetAfterMS tells the page when to swap the success banner back for the form.
type Ack struct {
	ID           string    `json:"id"`
	ReceivedAt   time.Time `json:"received_at"`
	ResetAfterMS int64     `json:"reset_after_ms"`
}

type Options struct {
	MaxMessageLen int
	ResetAfter    time.Duration
}

type Service struct {
	sink    Sink
	limiter *ClientLimiter
	opts    Options
	now     func() time.Time
}

func NewService(sink Sink, limiter *ClientLimiter, opts Options) *Service {
	return &Service{sink: sink, limiter: limiter, opts: opts, now: time.Now}
}

// Submit validates m, applies the per-client limit and hands m to the sink.
func (s *Service) Submit(ctx context.Context, clientKey string, m domain.Message) (Ack, domain.Message, error) {
	m = Normalize(m)
	if fe := Validate(m, s.opts.MaxMessageLen); !fe.OK() {
		return Ack{}, m, &ValidationError{Fields: fe}
	}
	if s.limiter != nil && !s.limiter.Allow(clientKey) {
		return Ack{}, m, ErrRateLimited
	}
	if err := s.sink.Deliver(ctx, m); err != nil {
		return Ack{}, m, fmt.Errorf("deliver contact message: %w", err)
	}
	return Ack{
		ID:           uuid.NewString(),
		ReceivedAt:   s.now().UTC(),
		ResetAfterMS: s.opts.ResetAfter.Milliseconds(),
	}, m, nil
}

// Limiter exposes the limiter so the server can run its janitor.
func (s *Service) Limiter() *ClientLimiter { return s.limiter }
