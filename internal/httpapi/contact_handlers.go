package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"naukariwala-site/internal/contact"
	"naukariwala-site/internal/domain"
	"naukariwala-site/internal/events"
	"naukariwala-site/internal/logger"
)

const maxContactBody = 64 << 10

type ContactHandler struct {
	Service *contact.Service
	Hub     *events.Hub
}

func (h ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxContactBody))
	dec.DisallowUnknownFields()

	var msg domain.Message
	if err := dec.Decode(&msg); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_request", "invalid JSON: "+err.Error())
		return
	}
	if dec.More() {
		WriteError(w, r, http.StatusBadRequest, "invalid_request", "invalid JSON: trailing data")
		return
	}

	ack, _, err := h.Service.Submit(r.Context(), ClientIP(r), msg)
	if err != nil {
		writeContactError(w, r, err)
		return
	}

	PublishContactReceived(h.Hub, logger.RequestIDFrom(r.Context()), ack)
	WriteJSON(w, http.StatusAccepted, ack)
}

func writeContactError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *contact.ValidationError
	switch {
	case errors.As(err, &ve):
		writeErrorFields(w, r, http.StatusBadRequest, "validation_failed", "please correct the highlighted fields", ve.Fields)
	case errors.Is(err, contact.ErrRateLimited):
		w.Header().Set("Retry-After", strconv.Itoa(1))
		WriteError(w, r, http.StatusTooManyRequests, "rate_limited", "too many messages, try again shortly")
	default:
		slog.ErrorContext(r.Context(), "contact delivery failed", "err", err)
		WriteError(w, r, http.StatusBadGateway, "delivery_failed", "message could not be delivered")
	}
}

// PublishContactReceived tells SSE listeners a message arrived. The visitor's
// details stay out of the event.
func PublishContactReceived(hub *events.Hub, reqID string, ack contact.Ack) {
	if hub == nil {
		return
	}
	hub.Publish(events.MakeEvent(reqID, events.TypeContactReceived, 1, map[string]any{
		"id":          ack.ID,
		"received_at": ack.ReceivedAt,
	}))
}
