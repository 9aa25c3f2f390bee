package service

import (
	"context"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/vralabs/wardrobe/internal/core/domain"
	"github.com/vralabs/wardrobe/internal/port"
)

// Menu layout: entries stack downward from the start offset, the title
// sits one extra gap below the last entry. Meters.
const (
	menuStartY   float32 = 0.5
	menuSpacingY float32 = 0.15
	menuTitleGap float32 = 0.1
)

// MenuBuilder renders the selection menu from the catalog: one button
// per entry in catalog order, each bound to a wear of that entry, then
// a title label. Purely derived from the catalog; keeps no state after
// construction (the host scene owns the created elements).
type MenuBuilder struct {
	catalog  *domain.Catalog
	wardrobe *WardrobeService
	ui       port.UI
	logger   zerolog.Logger
}

func NewMenuBuilder(catalog *domain.Catalog, wardrobe *WardrobeService, ui port.UI, logger zerolog.Logger) *MenuBuilder {
	return &MenuBuilder{catalog: catalog, wardrobe: wardrobe, ui: ui, logger: logger}
}

// Build creates the menu controls. Click failures end here: a wear
// that the host rejects is logged, never crashes the session.
func (m *MenuBuilder) Build(ctx context.Context) error {
	y := menuStartY
	for _, id := range m.catalog.IDs() {
		desc, _ := m.catalog.Get(id)

		garmentID := id
		_, err := m.ui.CreateButton(ctx, desc.Name, mgl32.Vec3{0, y, 0}, func(ctx context.Context, userID string) {
			if err := m.wardrobe.Wear(ctx, garmentID, userID); err != nil {
				m.logger.Error().Err(err).
					Str("garment", garmentID).
					Str("user", userID).
					Msg("wear failed")
			}
		})
		if err != nil {
			return fmt.Errorf("create button %q: %w", id, err)
		}
		y -= menuSpacingY
	}

	if _, err := m.ui.CreateLabel(ctx, m.catalog.Title(), mgl32.Vec3{0, y - menuTitleGap, 0}); err != nil {
		return fmt.Errorf("create title label: %w", err)
	}
	return nil
}
