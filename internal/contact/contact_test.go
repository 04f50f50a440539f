package contact

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naukariwala-site/internal/domain"
)

func validMessage() domain.Message {
	return domain.Message{
		Name:    "John Doe",
		Email:   "john@example.com",
		Subject: "Hiring",
		Message: "We'd like to post a job.",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Message)
		field  string
	}{
		{"missing name", func(m *domain.Message) { m.Name = "" }, "name"},
		{"missing email", func(m *domain.Message) { m.Email = "" }, "email"},
		{"bad email", func(m *domain.Message) { m.Email = "not-an-email" }, "email"},
		{"display name email", func(m *domain.Message) { m.Email = "John <john@example.com>" }, "email"},
		{"missing subject", func(m *domain.Message) { m.Subject = "" }, "subject"},
		{"missing message", func(m *domain.Message) { m.Message = "" }, "message"},
		{"too long", func(m *domain.Message) { m.Message = strings.Repeat("a", 101) }, "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMessage()
			tt.mutate(&m)
			fe := Validate(m, 100)
			require.False(t, fe.OK())
			assert.Contains(t, fe, tt.field)
			assert.Len(t, fe, 1)
		})
	}

	assert.True(t, Validate(validMessage(), 0).OK())
}

func TestNormalize(t *testing.T) {
	m := Normalize(domain.Message{Name: "  A ", Email: " a@b.co ", Subject: "\tS\n", Message: " M "})
	assert.Equal(t, domain.Message{Name: "A", Email: "a@b.co", Subject: "S", Message: "M"}, m)
}

func TestService_SubmitDeliversAndAcks(t *testing.T) {
	var got []domain.Message
	sink := SinkFunc(func(_ context.Context, m domain.Message) error {
		got = append(got, m)
		return nil
	})
	svc := NewService(sink, NewClientLimiter(1, 5), Options{MaxMessageLen: 5000, ResetAfter: 3 * time.Second})

	in := validMessage()
	in.Name = "  John Doe  "
	ack, msg, err := svc.Submit(context.Background(), "10.0.0.1", in)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(ack.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, int64(3000), ack.ResetAfterMS)
	assert.False(t, ack.ReceivedAt.IsZero())
	assert.Equal(t, "John Doe", msg.Name)
	require.Len(t, got, 1)
	assert.Equal(t, "John Doe", got[0].Name)
}

func TestService_SubmitInvalid(t *testing.T) {
	called := false
	sink := SinkFunc(func(context.Context, domain.Message) error { called = true; return nil })
	svc := NewService(sink, nil, Options{})

	_, _, err := svc.Submit(context.Background(), "k", domain.Message{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Fields, 4)
	assert.False(t, called)
}

func TestService_SubmitRateLimited(t *testing.T) {
	sink := SinkFunc(func(context.Context, domain.Message) error { return nil })
	svc := NewService(sink, NewClientLimiter(0.001, 2), Options{})

	for i := 0; i < 2; i++ {
		_, _, err := svc.Submit(context.Background(), "1.2.3.4", validMessage())
		require.NoError(t, err)
	}
	_, _, err := svc.Submit(context.Background(), "1.2.3.4", validMessage())
	assert.ErrorIs(t, err, ErrRateLimited)

	_, _, err = svc.Submit(context.Background(), "5.6.7.8", validMessage())
	assert.NoError(t, err, "other clients have their own bucket")
}

func TestService_SubmitSinkFailure(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(SinkFunc(func(context.Context, domain.Message) error { return boom }), nil, Options{})

	_, _, err := svc.Submit(context.Background(), "k", validMessage())
	assert.ErrorIs(t, err, boom)
}

func TestClientLimiter_Prune(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cl := NewClientLimiter(1, 1)
	cl.now = func() time.Time { return now }

	cl.Allow("a")
	now = now.Add(10 * time.Minute)
	cl.Allow("b")

	assert.Equal(t, 1, cl.Prune(5*time.Minute))
	assert.Equal(t, 1, cl.Len())
}

func TestClientLimiter_RunJanitorStopsOnCancel(t *testing.T) {
	cl := NewClientLimiter(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cl.RunJanitor(ctx, time.Millisecond, time.Hour) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	s := LogSink{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	require.NoError(t, s.Deliver(context.Background(), validMessage()))
	out := buf.String()
	assert.Contains(t, out, "contact form submitted")
	assert.Contains(t, out, "email=john@example.com")
}
