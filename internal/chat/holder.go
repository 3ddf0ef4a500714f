package chat

import (
	"sync"

	"joyasbot/internal/model"
)

// CatalogHolder guarda el snapshot del catálogo vigente. El crawler
// construye un catálogo nuevo y se intercambia completo; nunca se hace
// merge incremental entre escaneos.
type CatalogHolder struct {
	mu      sync.RWMutex
	catalog *model.Catalog
}

func (h *CatalogHolder) Get() *model.Catalog {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.catalog
}

func (h *CatalogHolder) Set(c *model.Catalog) {
	h.mu.Lock()
	h.catalog = c
	h.mu.Unlock()
}
