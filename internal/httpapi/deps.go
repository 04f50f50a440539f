package httpapi

import (
	"sync/atomic"
	"time"

	"naukariwala-site/internal/catalog"
	"naukariwala-site/internal/config"
	"naukariwala-site/internal/contact"
	"naukariwala-site/internal/content"
	"naukariwala-site/internal/events"
)

type Deps struct {
	Catalog *catalog.Catalog
	Site    content.Site
	Contact *contact.Service

	Hub *events.Hub

	// Atomic stores
	CfgVal *atomic.Value // stores config.Config

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
	// ApplyCfg puts a freshly stored config into effect (logging).
	ApplyCfg func(prev, next config.Config)

	StartedAt time.Time
}
