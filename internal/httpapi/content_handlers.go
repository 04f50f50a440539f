package httpapi

import (
	"net/http"

	"naukariwala-site/internal/content"
)

type ContentHandler struct {
	Site content.Site
}

func (h ContentHandler) SiteContent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Site)
}

func (h ContentHandler) Privacy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, PrivacyResponse{Blocks: content.PrivacyBlocks()})
}
