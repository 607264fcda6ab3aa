package interact

import (
	"testing"

	"board-catalog/catalog"

	"github.com/stretchr/testify/assert"
)

func swipe(c *Carousel, from, to float64) int {
	c.TouchStart(from)
	return c.TouchEnd(to)
}

func TestCarouselSwipeLeftAdvances(t *testing.T) {
	c := NewCarousel(3, catalog.DragLive)
	assert.Equal(t, 1, swipe(c, 300, 240))
	assert.Equal(t, 2, swipe(c, 300, 200))
	assert.Equal(t, 0, swipe(c, 300, 100), "wraps past the last slide")
}

func TestCarouselSwipeRightRetreats(t *testing.T) {
	c := NewCarousel(5, catalog.DragEnd)
	assert.Equal(t, 4, swipe(c, 100, 151), "wraps before the first slide")
	assert.Equal(t, 3, swipe(c, 100, 200))
}

func TestCarouselShortSwipeSnapsBack(t *testing.T) {
	c := NewCarousel(3, catalog.DragLive)
	for _, end := range []float64{250, 300, 350, 280} {
		assert.Equal(t, 0, swipe(c, 300, end))
	}
	assert.Equal(t, float64(0), c.Translate())
}

func TestCarouselTranslate(t *testing.T) {
	c := NewCarousel(3, catalog.DragLive)
	swipe(c, 300, 0)
	assert.Equal(t, float64(-100), c.Translate())
}

func TestCarouselLiveDrag(t *testing.T) {
	c := NewCarousel(3, catalog.DragLive)
	swipe(c, 300, 0)

	c.TouchStart(200)
	got, ok := c.TouchMove(150, 200)
	assert.True(t, ok)
	assert.Equal(t, float64(-125), got)
	c.TouchEnd(150)

	_, ok = c.TouchMove(100, 200)
	assert.False(t, ok, "no touch in progress")
}

func TestCarouselEndOnlyIgnoresMove(t *testing.T) {
	c := NewCarousel(3, catalog.DragEnd)
	c.TouchStart(200)
	_, ok := c.TouchMove(100, 200)
	assert.False(t, ok)
	assert.Equal(t, 1, c.TouchEnd(100))
}

func TestCarouselNoSlides(t *testing.T) {
	c := NewCarousel(0, catalog.DragLive)
	assert.Equal(t, 0, swipe(c, 300, 0))
}

func TestCarouselEndWithoutStart(t *testing.T) {
	c := NewCarousel(3, catalog.DragLive)
	assert.Equal(t, 0, c.TouchEnd(0))
}
