// Package catalog loads the garment catalog document. The document is
// a trusted, externally supplied YAML file; structural problems
// (missing ids, duplicates) fail the load so corruption surfaces at
// startup instead of at wear time.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/vralabs/wardrobe/internal/core/domain"
)

const defaultTitle = "Wardrobe"

type document struct {
	Title    string  `yaml:"title"`
	Garments []entry `yaml:"garments"`
}

// entry uses list form rather than a YAML map so document order is the
// menu order.
type entry struct {
	ID       string      `yaml:"id"`
	Name     string      `yaml:"name"`
	Model    string      `yaml:"model"`
	Position [3]float32  `yaml:"position"`
	Rotation [3]float32  `yaml:"rotation"`
	Scale    *[3]float32 `yaml:"scale"`
}

// Load reads and parses the catalog document at path.
func Load(path string) (*domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML document bytes.
func Parse(data []byte) (*domain.Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Garments) == 0 {
		return nil, errors.New("catalog has no garments")
	}
	if doc.Title == "" {
		doc.Title = defaultTitle
	}

	garments := make([]domain.GarmentDescriptor, 0, len(doc.Garments))
	for i, e := range doc.Garments {
		if e.ID == "" {
			return nil, fmt.Errorf("garment %d: missing id", i)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("garment %q: missing name", e.ID)
		}

		scale := [3]float32{1, 1, 1}
		if e.Scale != nil {
			scale = *e.Scale
		}
		garments = append(garments, domain.GarmentDescriptor{
			ID:    e.ID,
			Name:  e.Name,
			Model: domain.NewModelRef(e.Model),
			Transform: domain.Transform{
				Position:    mgl32.Vec3(e.Position),
				RotationDeg: mgl32.Vec3(e.Rotation),
				Scale:       mgl32.Vec3(scale),
			},
		})
	}
	return domain.NewCatalog(doc.Title, garments)
}
