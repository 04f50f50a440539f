package web

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"naukariwala-site/internal/contact"
	"naukariwala-site/internal/content"
	"naukariwala-site/internal/domain"
	"naukariwala-site/internal/httpapi"
	"naukariwala-site/internal/logger"
	"naukariwala-site/internal/search"
)

const maxFormBytes = 64 << 10

type tab struct {
	search.Category
	Count  int
	Active bool
}

type contactForm struct {
	Values domain.Message
	Errors contact.FieldErrors
	Notice string // problems not tied to a field
}

type indexPage struct {
	Title string
	Site  content.Site
	State search.State
	Tabs  []tab
	Jobs  []domain.Job
	Total int
	Form  contactForm

	Sent         *contact.Ack
	ResetSeconds int
}

type privacyPage struct {
	Title  string
	Site   content.Site
	Blocks []content.Block
}

type deleteAccountPage struct {
	Title string
	Site  content.Site
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	st := search.State{Category: q.Get("category"), Query: q.Get("q")}
	h.render(w, r, http.StatusOK, "index", h.indexData(st, contactForm{}, nil))
}

func (h *Handler) indexData(st search.State, form contactForm, sent *contact.Ack) indexPage {
	st = st.Normalize()
	all := h.d.Catalog.Jobs()
	jobs := search.Apply(all, st)
	counts := search.Counts(all, st.Query)

	cats := search.Categories()
	tabs := make([]tab, 0, len(cats))
	for _, c := range cats {
		tabs = append(tabs, tab{Category: c, Count: counts[c.ID], Active: c.ID == st.Category})
	}

	return indexPage{
		Title:        h.d.Site.Brand,
		Site:         h.d.Site,
		State:        st,
		Tabs:         tabs,
		Jobs:         jobs,
		Total:        len(jobs),
		Form:         form,
		Sent:         sent,
		ResetSeconds: int(h.d.ResetAfter / time.Second),
	}
}

func (h *Handler) Privacy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.render(w, r, http.StatusOK, "privacy", privacyPage{
		Title:  "Privacy Policy | " + h.d.Site.Brand,
		Site:   h.d.Site,
		Blocks: content.PrivacyBlocks(),
	})
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.render(w, r, http.StatusOK, "delete_account", deleteAccountPage{
		Title: "Delete Account | " + h.d.Site.Brand,
		Site:  h.d.Site,
	})
}

// Contact handles the form post. On success the page shows the banner and
// refreshes back to the form after ResetAfter.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/#contact", http.StatusSeeOther)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	msg := domain.Message{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Subject: r.PostForm.Get("subject"),
		Message: r.PostForm.Get("message"),
	}

	ack, msg, err := h.d.Contact.Submit(r.Context(), httpapi.ClientIP(r), msg)
	if err != nil {
		if !errors.Is(err, contact.ErrInvalid) && !errors.Is(err, contact.ErrRateLimited) {
			slog.ErrorContext(r.Context(), "contact delivery failed", "err", err)
		}
		status, form := formError(err, msg)
		h.render(w, r, status, "index", h.indexData(search.State{}, form, nil))
		return
	}

	httpapi.PublishContactReceived(h.d.Hub, logger.RequestIDFrom(r.Context()), ack)
	h.render(w, r, http.StatusOK, "index", h.indexData(search.State{}, contactForm{}, &ack))
}

func formError(err error, msg domain.Message) (int, contactForm) {
	form := contactForm{Values: msg}
	var ve *contact.ValidationError
	switch {
	case errors.As(err, &ve):
		form.Errors = ve.Fields
		return http.StatusBadRequest, form
	case errors.Is(err, contact.ErrRateLimited):
		form.Notice = "You're sending messages too quickly. Please wait a moment and try again."
		return http.StatusTooManyRequests, form
	default:
		form.Notice = "Sorry, we couldn't send your message right now. Please try again later."
		return http.StatusBadGateway, form
	}
}
