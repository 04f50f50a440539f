// Package web renders the public HTML pages.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"naukariwala-site/internal/catalog"
	"naukariwala-site/internal/contact"
	"naukariwala-site/internal/content"
	"naukariwala-site/internal/events"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type Deps struct {
	Catalog *catalog.Catalog
	Site    content.Site
	Contact *contact.Service
	Hub     *events.Hub

	// ResetAfter is how long the success banner stays before the form returns.
	ResetAfter time.Duration
}

type Handler struct {
	d     Deps
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"glyph": Glyph,
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
	"plural": func(n int, one, many string) string {
		if n == 1 {
			return one
		}
		return many
	},
	"stars": func(r float64) string { return fmt.Sprintf("%.1f", r) },
	"lower": strings.ToLower,
}

// New parses every page against the shared layout.
func New(d Deps) (*Handler, error) {
	h := &Handler{d: d, pages: map[string]*template.Template{}}
	for _, name := range []string{"index", "privacy", "delete_account"} {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		h.pages[name] = t
	}
	return h, nil
}

// Mount registers the pages on mux. API routes registered on the same mux
// take precedence because they are more specific.
func (h *Handler) Mount(mux *http.ServeMux) {
	static, _ := fs.Sub(staticFS, "static")
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	mux.HandleFunc("/", h.Index)
	mux.HandleFunc("/privacy", h.Privacy)
	mux.HandleFunc("/delete-account", h.DeleteAccount)
	mux.HandleFunc("/contact", h.Contact)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := h.pages[page].Execute(&buf, data); err != nil {
		slog.ErrorContext(r.Context(), "render page", "page", page, "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
