package domain

import "strings"

// EmploymentType is the coarse classification a listing is filtered by.
type EmploymentType string

const (
	FullTime EmploymentType = "Full Time"
	PartTime EmploymentType = "Part Time"
	Contract EmploymentType = "Contract"
	Remote   EmploymentType = "Remote"
)

var employmentTypes = []EmploymentType{FullTime, PartTime, Contract, Remote}

// EmploymentTypes lists every known type in display order.
func EmploymentTypes() []EmploymentType {
	out := make([]EmploymentType, len(employmentTypes))
	copy(out, employmentTypes)
	return out
}

// ParseEmploymentType accepts any casing and "-"/"_" as word separators,
// so "full-time" and "FULL TIME" both resolve to FullTime.
func ParseEmploymentType(s string) (EmploymentType, bool) {
	key := NormalizeType(s)
	for _, t := range employmentTypes {
		if NormalizeType(string(t)) == key {
			return t, true
		}
	}
	return "", false
}

// NormalizeType lowercases and collapses separators. Two types are the same
// category iff their normalized forms are equal.
func NormalizeType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

type Job struct {
	ID             string         `json:"id" yaml:"id"`
	Title          string         `json:"title" yaml:"title"`
	Company        string         `json:"company" yaml:"company"`
	Location       string         `json:"location" yaml:"location"`
	EmploymentType EmploymentType `json:"type" yaml:"type"`
	Salary         string         `json:"salary" yaml:"salary"`
	Experience     string         `json:"experience" yaml:"experience"`
	Tags           []string       `json:"tags" yaml:"tags"`
	Featured       bool           `json:"featured" yaml:"featured"`
	Description    string         `json:"description" yaml:"description"`
	Logo           string         `json:"logo" yaml:"logo"`
	Rating         float64        `json:"rating" yaml:"rating"`
}

// Clone returns a deep copy so the tag slice is never shared.
func (j Job) Clone() Job {
	if j.Tags != nil {
		tags := make([]string, len(j.Tags))
		copy(tags, j.Tags)
		j.Tags = tags
	}
	return j
}
