package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vralabs/wardrobe/internal/core/domain"
	"github.com/vralabs/wardrobe/internal/port"
)

var (
	ErrNilCatalog  = errors.New("preload on nil catalog")
	ErrNilRegistry = errors.New("preload on nil template registry")
)

// Preloader loads every wearable catalog entry's bundle up front so a
// later selection instantiates without a fetch. One broken asset never
// affects the others.
type Preloader struct {
	loader   port.AssetLoader
	registry *TemplateRegistry
	logger   zerolog.Logger
}

func NewPreloader(loader port.AssetLoader, registry *TemplateRegistry, logger zerolog.Logger) *Preloader {
	return &Preloader{loader: loader, registry: registry, logger: logger}
}

// Start issues one independent load per wearable catalog entry and
// returns a channel that closes once every load has settled, success
// or failure. Issuance is complete when Start returns, so callers may
// build the menu immediately; selections racing an unfinished load
// fall back to the wear path's missing-template handling.
//
// Individual load failures are logged and skipped. Start itself only
// fails on misuse.
func (p *Preloader) Start(ctx context.Context, catalog *domain.Catalog) (<-chan struct{}, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	if p.registry == nil {
		return nil, ErrNilRegistry
	}

	var wg sync.WaitGroup
	for _, id := range catalog.IDs() {
		desc, _ := catalog.Get(id)
		if !desc.Wearable() {
			continue
		}
		wg.Add(1)
		go func(desc domain.GarmentDescriptor) {
			defer wg.Done()
			p.load(ctx, desc)
		}(desc)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	return done, nil
}

func (p *Preloader) load(ctx context.Context, desc domain.GarmentDescriptor) {
	templates, err := p.loader.LoadBundle(ctx, desc.Model)
	if err != nil {
		p.logger.Error().Err(err).
			Str("garment", desc.ID).
			Str("model", desc.Model.String()).
			Msg("preload failed, garment stays non-instantiable")
		return
	}
	if len(templates) == 0 {
		p.logger.Warn().
			Str("garment", desc.ID).
			Str("model", desc.Model.String()).
			Msg("bundle has no instantiable templates")
		return
	}

	tmpl := templates[0]
	tmpl.GarmentID = desc.ID
	p.registry.Put(desc.ID, tmpl)
	p.logger.Debug().Str("garment", desc.ID).Msg("template preloaded")
}
