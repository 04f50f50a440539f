package httpapi

import (
	"naukariwala-site/internal/content"
	"naukariwala-site/internal/domain"
	"naukariwala-site/internal/search"
)

type JobsResponse struct {
	Jobs     []domain.Job   `json:"jobs"`
	Total    int            `json:"total"`
	Category string         `json:"category"`
	Query    string         `json:"query"`
	Counts   map[string]int `json:"counts"`
}

type CategoriesResponse struct {
	Categories []search.Category `json:"categories"`
	Counts     map[string]int    `json:"counts"`
}

type PrivacyResponse struct {
	Blocks []content.Block `json:"blocks"`
}

type HealthResponse struct {
	OK        bool   `json:"ok"`
	Time      string `json:"time"`
	Uptime    string `json:"uptime"`
	Jobs      int    `json:"jobs"`
	Listeners int    `json:"listeners"`
}
