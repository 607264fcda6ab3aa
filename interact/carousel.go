package interact

import "board-catalog/catalog"

// SwipeThreshold is the horizontal travel, in pixels, needed to change slide.
const SwipeThreshold = 50

// Carousel tracks one image carousel's active slide and the touch in flight.
type Carousel struct {
	slides  int
	current int
	mode    catalog.DragMode

	startX   float64
	baseX    float64
	touching bool
}

// NewCarousel builds a carousel over slides images.
func NewCarousel(slides int, mode catalog.DragMode) *Carousel {
	return &Carousel{slides: slides, mode: mode}
}

// Current is the active slide index.
func (c *Carousel) Current() int { return c.current }

// Slides is the slide count.
func (c *Carousel) Slides() int { return c.slides }

// Translate is the resting horizontal offset in percent.
func (c *Carousel) Translate() float64 {
	return float64(-c.current * 100)
}

// TouchStart records where the finger went down.
func (c *Carousel) TouchStart(x float64) {
	c.startX = x
	c.baseX = c.Translate()
	c.touching = true
}

// TouchMove returns the live drag offset in percent of width. In end-only
// mode, or without a touch in progress, ok is false.
func (c *Carousel) TouchMove(x, width float64) (translate float64, ok bool) {
	if !c.touching || c.mode != catalog.DragLive || width <= 0 {
		return 0, false
	}
	return c.baseX + (x-c.startX)/width*100, true
}

// TouchEnd settles the swipe ending at x and returns the new slide index.
// Travel beyond SwipeThreshold to the left advances, to the right retreats,
// wrapping around; anything shorter snaps back.
func (c *Carousel) TouchEnd(x float64) int {
	if !c.touching {
		return c.current
	}
	c.touching = false
	if c.slides <= 0 {
		return c.current
	}

	diff := x - c.startX
	switch {
	case diff > SwipeThreshold:
		c.current = (c.current - 1 + c.slides) % c.slides
	case diff < -SwipeThreshold:
		c.current = (c.current + 1) % c.slides
	}
	return c.current
}
