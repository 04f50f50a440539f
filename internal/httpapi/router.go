package httpapi

import "net/http"

// NewMux returns the raw mux so main() can mount the HTML pages on "/".
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Jobs
	jh := JobsHandler{Catalog: d.Catalog}
	mux.HandleFunc("/api/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/api/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.GetByPath, // expects /api/jobs/{id}
	}))
	mux.HandleFunc("/api/categories", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Categories,
	}))

	// Contact
	cth := ContactHandler{Service: d.Contact, Hub: d.Hub}
	mux.HandleFunc("/api/contact", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: cth.Submit,
	}))

	// Static copy
	sh := ContentHandler{Site: d.Site}
	mux.HandleFunc("/api/site", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.SiteContent,
	}))
	mux.HandleFunc("/api/privacy", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Privacy,
	}))

	// Config (local only)
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
		ApplyCfg:    d.ApplyCfg,
		Hub:         d.Hub,
	}
	mux.HandleFunc("/api/config", LocalOnly(methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	})))
	mux.HandleFunc("/api/config/path", LocalOnly(methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	})))
	mux.HandleFunc("/api/config/validate", LocalOnly(methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	})))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	hh := HealthHandler{Catalog: d.Catalog, Hub: d.Hub, StartedAt: d.StartedAt}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Get,
	}))

	return mux
}
