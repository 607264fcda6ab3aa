package main

import (
	"fmt"
	"time"

	"board-catalog/catalog"

	"github.com/caarlos0/env/v11"
)

// Config is read from CATALOG_* environment variables; command flags win.
type Config struct {
	Addr       string        `env:"CATALOG_ADDR" envDefault:":8080"`
	Title      string        `env:"CATALOG_TITLE" envDefault:"Board Games"`
	DataPath   string        `env:"CATALOG_DATA_PATH" envDefault:"data.json"`
	DataURL    string        `env:"CATALOG_DATA_URL"`
	SQLitePath string        `env:"CATALOG_SQLITE_PATH"`
	VolumePath string        `env:"RAILWAY_VOLUME_MOUNT_PATH"`
	ImagesDir  string        `env:"CATALOG_IMAGES_DIR" envDefault:"images"`
	ProbeImgs  bool          `env:"CATALOG_PROBE_IMAGES" envDefault:"false"`
	CacheTTL   time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"10m"`

	CarouselCount    int    `env:"CATALOG_CAROUSEL_COUNT" envDefault:"3"`
	CarouselExt      string `env:"CATALOG_CAROUSEL_EXT" envDefault:"webp"`
	CarouselFallback string `env:"CATALOG_CAROUSEL_FALLBACK" envDefault:"placeholder"`
	CarouselDrag     string `env:"CATALOG_CAROUSEL_DRAG" envDefault:"live"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Carousel builds and validates the carousel settings.
func (c Config) Carousel() (catalog.CarouselConfig, error) {
	cc := catalog.CarouselConfig{
		Count:    c.CarouselCount,
		Ext:      c.CarouselExt,
		Fallback: catalog.FallbackMode(c.CarouselFallback),
		Drag:     catalog.DragMode(c.CarouselDrag),
	}
	if err := cc.Validate(); err != nil {
		return catalog.CarouselConfig{}, err
	}
	return cc, nil
}
