package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from the environment once
// at startup.
type Config struct {
	HTTPAddr     string        `env:"HTTP_ADDR" envDefault:":8080"`
	CatalogPath  string        `env:"CATALOG_PATH" envDefault:"catalog.yaml"`
	AssetsDir    string        `env:"ASSETS_DIR" envDefault:"assets"`
	AssetBaseURL string        `env:"ASSET_BASE_URL" envDefault:"/assets"`
	AttachPoint  string        `env:"ATTACH_POINT" envDefault:"spine"`
	// StartupDelay postpones the session start sequence, giving an
	// attached debugger time to reconnect after a restart.
	StartupDelay time.Duration `env:"STARTUP_DELAY" envDefault:"0s"`
	RewearPolicy string        `env:"REWEAR_POLICY" envDefault:"replace"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
