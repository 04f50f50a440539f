package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naukariwala-site/internal/catalog"
	"naukariwala-site/internal/contact"
	"naukariwala-site/internal/content"
	"naukariwala-site/internal/domain"
	"naukariwala-site/internal/events"
)

func newTestMux(t *testing.T, sink contact.Sink, burst int) (*http.ServeMux, *events.Hub) {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)
	site, err := content.Default()
	require.NoError(t, err)
	if sink == nil {
		sink = contact.SinkFunc(func(context.Context, domain.Message) error { return nil })
	}

	hub := events.NewHub()
	h, err := New(Deps{
		Catalog:    cat,
		Site:       site,
		Contact:    contact.NewService(sink, contact.NewClientLimiter(0.001, burst), contact.Options{MaxMessageLen: 5000, ResetAfter: 3 * time.Second}),
		Hub:        hub,
		ResetAfter: 3 * time.Second,
	})
	require.NoError(t, err)

	mux := http.NewServeMux()
	h.Mount(mux)
	return mux, hub
}

func get(t *testing.T, mux http.Handler, target string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return rec, doc
}

func postForm(t *testing.T, mux http.Handler, form url.Values) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return rec, doc
}

func jobIDs(doc *goquery.Document) []string {
	ids := []string{}
	doc.Find("article.job-card").Each(func(_ int, s *goquery.Selection) {
		ids = append(ids, s.AttrOr("data-id", ""))
	})
	return ids
}

func TestIndex_ListsEveryJobByDefault(t *testing.T) {
	mux, _ := newTestMux(t, nil, 5)
	rec, doc := get(t, mux, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, jobIDs(doc))
	assert.Equal(t, "all", doc.Find(".tab.active").AttrOr("data-category", ""))
	assert.Equal(t, "Frontend Developer", doc.Find("article.job-card .job-title").First().Text())
	assert.Equal(t, 5, doc.Find(".tabs .tab").Length())
}

func TestIndex_FiltersFromQueryString(t *testing.T) {
	mux, _ := newTestMux(t, nil, 5)

	tests := []struct {
		name   string
		target string
		want   []string
		active string
	}{
		{"query", "/?q=react", []string{"1", "6"}, "all"},
		{"contract tab", "/?category=contract", []string{"6"}, "contract"},
		{"tab and query", "/?category=full-time&q=data", []string{"5"}, "full-time"},
		{"unknown tab", "/?category=freelance", []string{"1", "2", "3", "4", "5", "6"}, "all"},
		{"no match", "/?q=cobol", []string{}, "all"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, doc := get(t, mux, tt.target)
			assert.Equal(t, tt.want, jobIDs(doc))
			assert.Equal(t, tt.active, doc.Find(".tab.active").AttrOr("data-category", ""))
		})
	}
}

func TestIndex_EmptyStateAndCounts(t *testing.T) {
	mux, _ := newTestMux(t, nil, 5)
	_, doc := get(t, mux, "/?q=cobol")

	assert.Contains(t, doc.Find(".empty").Text(), "No jobs found")
	assert.Contains(t, doc.Find(".result-count").Text(), "0 jobs found")

	_, doc = get(t, mux, "/?q=developer")
	counts := map[string]string{}
	doc.Find(".tabs .tab").Each(func(_ int, s *goquery.Selection) {
		counts[s.AttrOr("data-category", "")] = s.Find(".count").Text()
	})
	assert.Equal(t, "2", counts["all"])
	assert.Equal(t, "1", counts["contract"])
	assert.Equal(t, "0", counts["remote"])
}

func TestIndex_TabLinksKeepQuery(t *testing.T) {
	mux, _ := newTestMux(t, nil, 5)
	_, doc := get(t, mux, "/?q=data")

	href, ok := doc.Find(`.tab[data-category="contract"]`).Attr("href")
	require.True(t, ok)
	u, err := url.Parse(href)
	require.NoError(t, err)
	assert.Equal(t, "contract", u.Query().Get("category"))
	assert.Equal(t, "data", u.Query().Get("q"))
}

func TestIndex_EscapesQuery(t *testing.T) {
	mux, _ := newTestMux(t, nil, 5)
	rec, doc := get(t, mux, "/?q="+url.QueryEscape("<script>x</script>"))

	assert.NotContains(t, rec.Body.String(), "<script>x</script>")
	assert.Equal(t, "<script>x</script>", doc.Find(`.search input[name="q"]`).AttrOr("value", ""))
}

func TestIndex_UnknownPathIs404(t *testing.T) {
	mux, _ := newTestMux(t, nil, 5)
	rec, _ := get(t, mux, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPrivacy_RendersBlocks(t *testing.T) {
	mux, _ := newTestMux(t, nil, 5)
	rec, doc := get(t, mux, "/privacy")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Privacy Policy", doc.Find(".legal h1").First().Text())
	assert.Equal(t, 8, doc.Find(".legal h2").Length())
	assert.Equal(t, "Effective Date: October 3, 2025", doc.Find(".legal p strong").First().Text())
	assert.Positive(t, doc.Find(".legal li").Length())
	// inline bold inside a list item is not markdown here
	assert.Contains(t, doc.Find(".legal li").First().Text(), "**Personal Information**")
}

func TestDeleteAccount(t *testing.T) {
	mux, _ := newTestMux(t, nil, 5)
	rec, doc := get(t, mux, "/delete-account")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, doc.Find("ol.steps li").Length())
	assert.Equal(t, "mailto:support@naukariwala.com", doc.Find(`a[href^="mailto:support"]`).AttrOr("href", ""))
}

func TestStaticCSS(t *testing.T) {
	mux, _ := newTestMux(t, nil, 5)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, rec.Body.String(), ".job-card")
}

func validForm() url.Values {
	return url.Values{
		"name":    {"Asha"},
		"email":   {"asha@example.com"},
		"subject": {"Hiring"},
		"message": {"Hello"},
	}
}

func TestContact_SuccessShowsBannerAndRefreshes(t *testing.T) {
	mux, hub := newTestMux(t, nil, 5)
	sub, cancel := hub.Subscribe()
	defer cancel()

	rec, doc := postForm(t, mux, validForm())
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, doc.Find(".success").Text(), "Message Sent!")
	assert.Equal(t, 0, doc.Find("form.contact-form").Length())
	assert.Equal(t, "3;url=/#contact", doc.Find(`meta[http-equiv="refresh"]`).AttrOr("content", ""))

	select {
	case evt := <-sub:
		assert.Contains(t, evt, events.TypeContactReceived)
	default:
		t.Fatal("expected contact_received event")
	}
}

func TestContact_ValidationKeepsValues(t *testing.T) {
	mux, _ := newTestMux(t, nil, 5)

	form := validForm()
	form.Set("email", "not-an-email")
	form.Set("subject", "   ")

	rec, doc := postForm(t, mux, form)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, "Asha", doc.Find(`input[name="name"]`).AttrOr("value", ""))
	assert.Equal(t, "not-an-email", doc.Find(`input[name="email"]`).AttrOr("value", ""))
	assert.Equal(t, "Please enter a valid email address.", doc.Find(`.field-error[data-field="email"]`).Text())
	assert.Equal(t, 1, doc.Find(`.field-error[data-field="subject"]`).Length())
	assert.Equal(t, 0, doc.Find(`.field-error[data-field="name"]`).Length())
	assert.Equal(t, 0, doc.Find(`meta[http-equiv="refresh"]`).Length())
}

func TestContact_RateLimited(t *testing.T) {
	mux, _ := newTestMux(t, nil, 1)

	rec, _ := postForm(t, mux, validForm())
	require.Equal(t, http.StatusOK, rec.Code)

	rec, doc := postForm(t, mux, validForm())
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, doc.Find(".notice").Text(), "too quickly")
}

func TestContact_SinkFailure(t *testing.T) {
	sink := contact.SinkFunc(func(context.Context, domain.Message) error { return errors.New("down") })
	mux, _ := newTestMux(t, sink, 5)

	rec, doc := postForm(t, mux, validForm())
	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, doc.Find(".notice").Text(), "couldn't send")
}

func TestContact_GetRedirects(t *testing.T) {
	mux, _ := newTestMux(t, nil, 5)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#contact", rec.Header().Get("Location"))
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "✉️", Glyph(content.IconMail))
	assert.Equal(t, "•", Glyph(content.Icon("unknown")))
}
