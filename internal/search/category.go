package search

import (
	"strings"

	"naukariwala-site/internal/domain"
)

// AllCategory is the tab that shows every listing.
const AllCategory = "all"

// Category is one filter tab. Type is empty for the "all" tab.
type Category struct {
	ID    string                `json:"id"`
	Label string                `json:"label"`
	Type  domain.EmploymentType `json:"type,omitempty"`
}

var categories = []Category{
	{ID: AllCategory, Label: "All Jobs"},
	{ID: "remote", Label: "Remote", Type: domain.Remote},
	{ID: "full-time", Label: "Full Time", Type: domain.FullTime},
	{ID: "part-time", Label: "Part Time", Type: domain.PartTime},
	{ID: "contract", Label: "Contract", Type: domain.Contract},
}

// Categories returns the tabs in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// LookupCategory resolves a tab by id. A type label ("Contract") is accepted too.
// Anything unknown falls back to the "all" tab.
func LookupCategory(id string) Category {
	key := domain.NormalizeType(id)
	if key == "" {
		return categories[0]
	}
	for _, c := range categories {
		if domain.NormalizeType(c.ID) == key || strings.EqualFold(c.Label, strings.TrimSpace(id)) {
			return c
		}
	}
	return categories[0]
}
