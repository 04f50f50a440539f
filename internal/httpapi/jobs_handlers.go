package httpapi

import (
	"net/http"
	"strings"

	"naukariwala-site/internal/catalog"
	"naukariwala-site/internal/search"
)

type JobsHandler struct {
	Catalog *catalog.Catalog
}

// List filters the catalog by ?category= and ?q=. Unknown categories show everything.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	st := search.State{Category: q.Get("category"), Query: q.Get("q")}.Normalize()

	all := h.Catalog.Jobs()
	jobs := search.Apply(all, st)
	writeJSON(w, JobsResponse{
		Jobs:     jobs,
		Total:    len(jobs),
		Category: st.Category,
		Query:    st.Query,
		Counts:   search.Counts(all, st.Query),
	})
}

func (h JobsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/jobs/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}
	job, ok := h.Catalog.ByID(id)
	if !ok {
		WriteError(w, r, http.StatusNotFound, "not_found", "job not found")
		return
	}
	writeJSON(w, job)
}

func (h JobsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	writeJSON(w, CategoriesResponse{
		Categories: search.Categories(),
		Counts:     search.Counts(h.Catalog.Jobs(), q),
	})
}
