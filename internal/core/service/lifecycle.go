package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vralabs/wardrobe/internal/core/domain"
)

// Lifecycle bridges host session events into the core: startup wires
// preload and menu construction, departure forces cleanup.
type Lifecycle struct {
	preloader    *Preloader
	menu         *MenuBuilder
	wardrobe     *WardrobeService
	catalog      *domain.Catalog
	startupDelay time.Duration
	logger       zerolog.Logger
}

func NewLifecycle(
	preloader *Preloader,
	menu *MenuBuilder,
	wardrobe *WardrobeService,
	catalog *domain.Catalog,
	startupDelay time.Duration,
	logger zerolog.Logger,
) *Lifecycle {
	return &Lifecycle{
		preloader:    preloader,
		menu:         menu,
		wardrobe:     wardrobe,
		catalog:      catalog,
		startupDelay: startupDelay,
		logger:       logger,
	}
}

// OnStarted runs the startup sequence: optional delay (debugger
// reattachment), preload issuance, then menu construction. The menu is
// never built before every load has been issued, but it does not wait
// for loads to finish; a selection racing a load degrades to unworn.
func (l *Lifecycle) OnStarted(ctx context.Context) error {
	if l.startupDelay > 0 {
		l.logger.Info().Dur("delay", l.startupDelay).Msg("delaying startup")
		select {
		case <-time.After(l.startupDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	done, err := l.preloader.Start(ctx, l.catalog)
	if err != nil {
		return fmt.Errorf("preload: %w", err)
	}
	go func() {
		<-done
		l.logger.Info().
			Int("garments", l.catalog.Len()).
			Msg("preload settled")
	}()

	if err := l.menu.Build(ctx); err != nil {
		return fmt.Errorf("build menu: %w", err)
	}
	l.logger.Info().Int("entries", l.catalog.Len()).Msg("menu ready")
	return nil
}

// OnUserLeft clears whatever the departing user wore. Unconditional:
// removing from an unworn user is already a no-op.
func (l *Lifecycle) OnUserLeft(ctx context.Context, userID string) error {
	if err := l.wardrobe.Remove(ctx, userID); err != nil {
		return fmt.Errorf("cleanup for departed user %q: %w", userID, err)
	}
	return nil
}
