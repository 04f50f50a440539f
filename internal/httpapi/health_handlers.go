package httpapi

import (
	"net/http"
	"time"

	"naukariwala-site/internal/catalog"
	"naukariwala-site/internal/events"
)

type HealthHandler struct {
	Catalog   *catalog.Catalog
	Hub       *events.Hub
	StartedAt time.Time
}

func (h HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	resp := HealthResponse{
		OK:   true,
		Time: now.Format(time.RFC3339),
	}
	if !h.StartedAt.IsZero() {
		resp.Uptime = now.Sub(h.StartedAt).Truncate(time.Second).String()
	}
	if h.Catalog != nil {
		resp.Jobs = h.Catalog.Len()
	}
	if h.Hub != nil {
		resp.Listeners = h.Hub.Len()
	}
	writeJSON(w, resp)
}
