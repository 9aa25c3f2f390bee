package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/zerolog"

	"github.com/vralabs/wardrobe/internal/adapter/asset"
	catalogfile "github.com/vralabs/wardrobe/internal/adapter/catalog"
	"github.com/vralabs/wardrobe/internal/adapter/handler"
	"github.com/vralabs/wardrobe/internal/adapter/host"
	"github.com/vralabs/wardrobe/internal/config"
	"github.com/vralabs/wardrobe/internal/core/domain"
	"github.com/vralabs/wardrobe/internal/core/service"
)

func main() {
	logger := initLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	policy, err := domain.ParseRewearPolicy(cfg.RewearPolicy)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid rewear policy")
	}

	catalog, err := catalogfile.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("failed to load catalog")
	}
	logger.Info().Int("garments", catalog.Len()).Str("title", catalog.Title()).Msg("catalog loaded")

	loader := asset.NewGLTFLoader(cfg.AssetsDir, cfg.AssetBaseURL)

	// One wardrobe per host session; the pointer tracks the live one so
	// the inspection endpoint can read it.
	var live atomic.Pointer[service.WardrobeService]

	factory := func(sess *host.Session) host.App {
		registry := service.NewTemplateRegistry()
		preloader := service.NewPreloader(loader, registry, logger)
		wardrobe := service.NewWardrobeService(catalog, registry, sess, policy, cfg.AttachPoint, logger)
		menu := service.NewMenuBuilder(catalog, wardrobe, sess, logger)
		live.Store(wardrobe)
		return service.NewLifecycle(preloader, menu, wardrobe, catalog, cfg.StartupDelay, logger)
	}

	bridge := host.NewBridge(factory, logger)
	httpHandler := handler.NewHTTPHandler(catalog, liveSource{&live})
	router := handler.NewRouter(httpHandler, bridge, cfg.AssetsDir)

	h := handlers.RecoveryHandler()(router)
	h = handlers.LoggingHandler(os.Stdout, h)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: h,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("server listening")
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
	logger.Info().Msg("server stopped")
}

func initLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", "wardrobe").Logger()
}

// liveSource adapts the live-session pointer to the inspection
// endpoint's interface.
type liveSource struct {
	p *atomic.Pointer[service.WardrobeService]
}

func (s liveSource) Attachments() []domain.Attachment {
	svc := s.p.Load()
	if svc == nil {
		return nil
	}
	return svc.Attachments()
}
