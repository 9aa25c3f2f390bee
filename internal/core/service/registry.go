package service

import (
	"sync"

	"github.com/vralabs/wardrobe/internal/core/domain"
)

// TemplateRegistry holds the preloaded template per garment id.
// Preload goroutines write while wear lookups read, so access is
// guarded; a missing entry is a normal degraded state, never an error.
type TemplateRegistry struct {
	mu        sync.RWMutex
	templates map[string]domain.Template
}

func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{templates: make(map[string]domain.Template)}
}

// Put records the template for a garment id, replacing any previous one.
func (r *TemplateRegistry) Put(id string, tmpl domain.Template) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[id] = tmpl
}

// Get returns the template for id, reporting whether one is registered.
func (r *TemplateRegistry) Get(id string) (domain.Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tmpl, ok := r.templates[id]
	return tmpl, ok
}

// Len returns the number of instantiable garments.
func (r *TemplateRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}
