package catalog

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2))))
}

func TestImageSlots(t *testing.T) {
	slots := ImageSlots("Catan", DefaultCarousel)
	assert.Equal(t, []Slot{
		{File: "Catan1.webp", Src: "./images/Catan1.webp", Alt: "Catan 1"},
		{File: "Catan2.webp", Src: "./images/Catan2.webp", Alt: "Catan 2"},
		{File: "Catan3.webp", Src: "./images/Catan3.webp", Alt: "Catan 3"},
	}, slots)

	jpg := CarouselConfig{Count: 5, Ext: "jpg", Fallback: FallbackRemove, Drag: DragEnd}
	slots = ImageSlots("Go", jpg)
	require.Len(t, slots, 5)
	assert.Equal(t, "./images/Go5.jpg", slots[4].Src)
}

func TestCarouselConfigValidate(t *testing.T) {
	c := CarouselConfig{Count: 5, Ext: ".jpg", Fallback: FallbackRemove, Drag: DragEnd}
	require.NoError(t, c.Validate())
	assert.Equal(t, "jpg", c.Ext)

	bad := []CarouselConfig{
		{Count: 0, Ext: "jpg", Fallback: FallbackRemove, Drag: DragEnd},
		{Count: 3, Ext: "", Fallback: FallbackRemove, Drag: DragEnd},
		{Count: 3, Ext: "jpg", Fallback: "hide", Drag: DragEnd},
		{Count: 3, Ext: "jpg", Fallback: FallbackRemove, Drag: "momentum"},
	}
	for _, c := range bad {
		assert.Error(t, c.Validate(), "%+v", c)
	}
}

func TestProberPlaceholder(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "Root1.png"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Root2.png"), []byte("not an image"), 0o644))

	cfg := CarouselConfig{Count: 3, Ext: "png", Fallback: FallbackPlaceholder, Drag: DragLive}
	got := Prober{Dir: dir}.Resolve(ImageSlots("Root", cfg), cfg)

	require.Len(t, got, 3)
	assert.Equal(t, "./images/Root1.png", got[0].Src)
	assert.Equal(t, "./images/placeholder.png", got[1].Src)
	assert.Equal(t, "./images/placeholder.png", got[2].Src)
	assert.Equal(t, "Root 3", got[2].Alt)
}

func TestProberRemove(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "Root2.png"))

	cfg := CarouselConfig{Count: 3, Ext: "png", Fallback: FallbackRemove, Drag: DragEnd}
	got := Prober{Dir: dir}.Resolve(ImageSlots("Root", cfg), cfg)

	require.Len(t, got, 1)
	assert.Equal(t, "./images/Root2.png", got[0].Src)
}
