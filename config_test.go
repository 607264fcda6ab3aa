package main

import (
	"path/filepath"
	"testing"
	"time"

	"board-catalog/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	c, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "data.json", c.DataPath)
	assert.Equal(t, 10*time.Minute, c.CacheTTL)

	cc, err := c.Carousel()
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultCarousel, cc)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CATALOG_CAROUSEL_COUNT", "5")
	t.Setenv("CATALOG_CAROUSEL_EXT", "jpg")
	t.Setenv("CATALOG_CAROUSEL_FALLBACK", "remove")
	t.Setenv("CATALOG_CAROUSEL_DRAG", "end")

	c, err := loadConfig()
	require.NoError(t, err)
	cc, err := c.Carousel()
	require.NoError(t, err)
	assert.Equal(t, catalog.CarouselConfig{Count: 5, Ext: "jpg", Fallback: catalog.FallbackRemove, Drag: catalog.DragEnd}, cc)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Setenv("CATALOG_CAROUSEL_COUNT", "many")
	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestCarouselRejectsUnknownMode(t *testing.T) {
	c := Config{CarouselCount: 3, CarouselExt: "webp", CarouselFallback: "hide", CarouselDrag: "live"}
	_, err := c.Carousel()
	assert.Error(t, err)
}

func TestSQLitePathUsesVolume(t *testing.T) {
	vol := t.TempDir()
	assert.Equal(t, filepath.Join(vol, "catalog.db"), sqlitePath(Config{SQLitePath: "catalog.db", VolumePath: vol}))
	assert.Equal(t, "catalog.db", sqlitePath(Config{SQLitePath: "catalog.db"}))
	assert.Equal(t, ":memory:", sqlitePath(Config{SQLitePath: ":memory:", VolumePath: vol}))
	assert.Equal(t, "/data/games.db", sqlitePath(Config{SQLitePath: "/data/games.db", VolumePath: vol}))
}

func TestNewSourceSelection(t *testing.T) {
	src, closeSrc, err := newSource(Config{DataURL: "http://example.invalid/data.json", DataPath: "data.json"})
	require.NoError(t, err)
	assert.IsType(t, catalog.HTTPSource{}, src)
	require.NoError(t, closeSrc())

	src, closeSrc, err = newSource(Config{SQLitePath: ":memory:"})
	require.NoError(t, err)
	assert.IsType(t, catalog.SQLiteSource{}, src)
	require.NoError(t, closeSrc())

	src, closeSrc, err = newSource(Config{DataPath: "data.json"})
	require.NoError(t, err)
	assert.Equal(t, catalog.FileSource{Path: "data.json"}, src)
	require.NoError(t, closeSrc())
}
