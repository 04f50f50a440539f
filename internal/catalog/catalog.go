// Package catalog holds the fixed, ordered list of job postings shown on the site.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"naukariwala-site/internal/domain"
)

//go:embed jobs.yml
var defaultDoc []byte

var (
	ErrDuplicateID = errors.New("duplicate job id")
	ErrMissingID   = errors.New("job id is required")
	ErrUnknownType = errors.New("unknown employment type")
)

// Catalog is immutable once built. All accessors hand out copies.
type Catalog struct {
	jobs []domain.Job
	byID map[string]int
}

type document struct {
	Jobs []domain.Job `yaml:"jobs"`
}

// New validates jobs and freezes them in the given order.
func New(jobs []domain.Job) (*Catalog, error) {
	c := &Catalog{
		jobs: make([]domain.Job, 0, len(jobs)),
		byID: make(map[string]int, len(jobs)),
	}
	for i, j := range jobs {
		j.ID = strings.TrimSpace(j.ID)
		if j.ID == "" {
			return nil, fmt.Errorf("jobs[%d]: %w", i, ErrMissingID)
		}
		if _, dup := c.byID[j.ID]; dup {
			return nil, fmt.Errorf("jobs[%d] id=%q: %w", i, j.ID, ErrDuplicateID)
		}
		t, ok := domain.ParseEmploymentType(string(j.EmploymentType))
		if !ok {
			return nil, fmt.Errorf("jobs[%d] type=%q: %w", i, j.EmploymentType, ErrUnknownType)
		}
		j.EmploymentType = t
		c.byID[j.ID] = len(c.jobs)
		c.jobs = append(c.jobs, j.Clone())
	}
	return c, nil
}

func Parse(b []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Jobs)
}

func Load(r io.Reader) (*Catalog, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(b)
}

// LoadFile reads a catalog from disk, falling back to the embedded one when path is empty.
func LoadFile(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(defaultDoc)
	})
	return defaultCat, defaultErr
}

func (c *Catalog) Len() int { return len(c.jobs) }

// Jobs returns the postings in catalog order.
func (c *Catalog) Jobs() []domain.Job {
	out := make([]domain.Job, len(c.jobs))
	for i, j := range c.jobs {
		out[i] = j.Clone()
	}
	return out
}

func (c *Catalog) ByID(id string) (domain.Job, bool) {
	i, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return domain.Job{}, false
	}
	return c.jobs[i].Clone(), true
}
