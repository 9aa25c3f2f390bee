package domain

import (
	"errors"
	"fmt"
)

var ErrDuplicateGarmentID = errors.New("duplicate garment id")

// Catalog is the ordered, read-only set of selectable garments.
// Iteration order drives menu layout and must stay stable, so the
// insertion order of the source document is preserved.
type Catalog struct {
	title string
	order []string
	byID  map[string]GarmentDescriptor
}

// NewCatalog builds a catalog from descriptors in presentation order.
func NewCatalog(title string, garments []GarmentDescriptor) (*Catalog, error) {
	c := &Catalog{
		title: title,
		order: make([]string, 0, len(garments)),
		byID:  make(map[string]GarmentDescriptor, len(garments)),
	}
	for _, g := range garments {
		if g.ID == "" {
			return nil, errors.New("garment with empty id")
		}
		if _, exists := c.byID[g.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateGarmentID, g.ID)
		}
		c.order = append(c.order, g.ID)
		c.byID[g.ID] = g
	}
	return c, nil
}

func (c *Catalog) Title() string {
	return c.title
}

func (c *Catalog) Len() int {
	return len(c.order)
}

// Get returns the descriptor for id. A miss means the id did not come
// from IDs() and signals catalog corruption upstream.
func (c *Catalog) Get(id string) (GarmentDescriptor, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// IDs returns the garment ids in presentation order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}
