package catalog

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

// ImagePath is the URL prefix carousel images are served under.
const ImagePath = "./images/"

// FallbackMode decides what happens to a carousel image that cannot load.
type FallbackMode string

const (
	FallbackPlaceholder FallbackMode = "placeholder"
	FallbackRemove      FallbackMode = "remove"
)

// DragMode decides whether a carousel follows the finger while swiping.
type DragMode string

const (
	DragLive DragMode = "live"
	DragEnd  DragMode = "end"
)

// CarouselConfig parameterizes the image carousel of every cell.
type CarouselConfig struct {
	Count    int
	Ext      string
	Fallback FallbackMode
	Drag     DragMode
}

// DefaultCarousel is three webp slots with placeholder substitution and live
// drag feedback.
var DefaultCarousel = CarouselConfig{
	Count:    3,
	Ext:      "webp",
	Fallback: FallbackPlaceholder,
	Drag:     DragLive,
}

// Validate normalizes the extension and rejects unknown modes.
func (c *CarouselConfig) Validate() error {
	c.Ext = strings.TrimPrefix(strings.TrimSpace(c.Ext), ".")
	if c.Count <= 0 {
		return fmt.Errorf("carousel image count must be positive, got %d", c.Count)
	}
	if c.Ext == "" {
		return fmt.Errorf("carousel image extension is required")
	}
	switch c.Fallback {
	case FallbackPlaceholder, FallbackRemove:
	default:
		return fmt.Errorf("unknown carousel fallback %q", c.Fallback)
	}
	switch c.Drag {
	case DragLive, DragEnd:
	default:
		return fmt.Errorf("unknown carousel drag mode %q", c.Drag)
	}
	return nil
}

// Placeholder is the image substituted for a missing slot.
func (c CarouselConfig) Placeholder() string {
	return ImagePath + "placeholder." + c.Ext
}

// Slot is one candidate carousel image.
type Slot struct {
	File string
	Src  string
	Alt  string
}

// ImageSlots builds the candidate images for an item: <name><i>.<ext> for
// i = 1..Count.
func ImageSlots(name string, cfg CarouselConfig) []Slot {
	slots := make([]Slot, 0, cfg.Count)
	for i := 1; i <= cfg.Count; i++ {
		file := fmt.Sprintf("%s%d.%s", name, i, cfg.Ext)
		slots = append(slots, Slot{
			File: file,
			Src:  ImagePath + file,
			Alt:  fmt.Sprintf("%s %d", name, i),
		})
	}
	return slots
}

// Prober resolves carousel slots against an images directory so broken
// images are handled before the page reaches the browser.
type Prober struct {
	Dir string
}

// Resolve applies cfg.Fallback to every slot whose file is missing or does
// not decode as an image.
func (p Prober) Resolve(slots []Slot, cfg CarouselConfig) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if p.usable(s.File) {
			out = append(out, s)
			continue
		}
		if cfg.Fallback == FallbackPlaceholder {
			s.Src = cfg.Placeholder()
			out = append(out, s)
		}
	}
	return out
}

func (p Prober) usable(file string) bool {
	f, err := os.Open(filepath.Join(p.Dir, filepath.FromSlash(file)))
	if err != nil {
		return false
	}
	defer f.Close()
	_, _, err = image.DecodeConfig(f)
	return err == nil
}
