// Package search narrows the job catalog to what a visitor asked for.
package search

import (
	"strings"

	"naukariwala-site/internal/domain"
)

// State is the visitor's current tab and search box contents.
type State struct {
	Category string `json:"category"`
	Query    string `json:"query"`
}

// Normalize fills defaults: unknown tabs become "all", the query is trimmed.
func (s State) Normalize() State {
	return State{
		Category: LookupCategory(s.Category).ID,
		Query:    strings.TrimSpace(s.Query),
	}
}

// Filter returns the jobs passing both the tab and the text filter, in catalog
// order. It never fails and never returns nil.
func Filter(jobs []domain.Job, category, query string) []domain.Job {
	cat := LookupCategory(category)
	needle := strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if !matchesCategory(cat, j) {
			continue
		}
		if !matchesText(needle, j) {
			continue
		}
		out = append(out, j)
	}
	return out
}

// Apply is Filter driven by a State.
func Apply(jobs []domain.Job, s State) []domain.Job {
	return Filter(jobs, s.Category, s.Query)
}

// Counts reports how many jobs each tab would show for query.
func Counts(jobs []domain.Job, query string) map[string]int {
	out := make(map[string]int, len(categories))
	for _, c := range categories {
		out[c.ID] = len(Filter(jobs, c.ID, query))
	}
	return out
}

func matchesCategory(c Category, j domain.Job) bool {
	if c.ID == AllCategory {
		return true
	}
	return domain.NormalizeType(string(j.EmploymentType)) == domain.NormalizeType(string(c.Type))
}

// needle must already be lowercased.
func matchesText(needle string, j domain.Job) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(j.Title), needle) ||
		strings.Contains(strings.ToLower(j.Company), needle) {
		return true
	}
	for _, tag := range j.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
